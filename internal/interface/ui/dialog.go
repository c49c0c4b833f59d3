// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"fmt"
	"sync"

	"github.com/sqweek/dialog"

	"DropScope/internal/infrastructure/logging"
)

// Notifier はユーザーにエラーを知らせる機能です
type Notifier interface {
	Error(title, message string)
}

type nativeNotifier struct{}

// Error はネイティブのエラーダイアログを表示します
func (nativeNotifier) Error(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

// NativeNotifier はネイティブダイアログを使う Notifier を返します
func NativeNotifier() Notifier {
	return nativeNotifier{}
}

// FatalReporter は初期化の失敗を 1 度だけ利用者に知らせます
type FatalReporter struct {
	notifier Notifier
	logger   logging.Logger
	title    string
	once     sync.Once
}

// NewFatalReporter は新しい FatalReporter インスタンスを作成します
func NewFatalReporter(notifier Notifier, logger logging.Logger, title string) *FatalReporter {
	if notifier == nil {
		notifier = NativeNotifier()
	}
	return &FatalReporter{notifier: notifier, logger: logger, title: title}
}

// Report は失敗をログに記録し、初回だけダイアログで表示します。
// 引数のエラーに段階名を付けて返します
func (r *FatalReporter) Report(stage string, err error) error {
	wrapped := fmt.Errorf("%sに失敗しました: %w", stage, err)
	r.once.Do(func() {
		if r.logger != nil {
			r.logger.Log("ERROR", stage+"に失敗しました", err)
		}
		r.notifier.Error(r.title, wrapped.Error())
	})
	return wrapped
}
