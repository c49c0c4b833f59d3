// Package filesystem はローカルファイルシステムの操作を提供します
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"DropScope/internal/infrastructure/logging"
)

// FileScheme はローカルファイルの URI スキームです
const FileScheme = "file"

// Lister は file スキームの URI を os パッケージで一覧します
type Lister struct {
	logger logging.Logger
}

// NewLister は新しい Lister インスタンスを作成します
func NewLister(logger logging.Logger) *Lister {
	return &Lister{logger: logger}
}

// CanList はパスがディレクトリであるかどうかを返します
func (l *Lister) CanList(u fyne.URI) (bool, error) {
	if u.Scheme() != FileScheme {
		return false, fmt.Errorf("未対応のスキームです: %s", u.Scheme())
	}

	info, err := os.Stat(u.Path())
	if err != nil {
		return false, fmt.Errorf("パス '%s' の情報を取得できません: %w", u.Path(), err)
	}
	return info.IsDir(), nil
}

// List はディレクトリ直下の要素を名前順に返します
func (l *Lister) List(u fyne.URI) ([]fyne.URI, error) {
	if u.Scheme() != FileScheme {
		return nil, fmt.Errorf("未対応のスキームです: %s", u.Scheme())
	}

	entries, err := os.ReadDir(u.Path())
	if err != nil {
		l.logger.Log("WARN", fmt.Sprintf("ディレクトリ '%s' の読み込みに失敗", u.Path()), err)
		return nil, fmt.Errorf("ディレクトリの読み込みに失敗しました: %w", err)
	}

	children := make([]fyne.URI, 0, len(entries))
	for _, entry := range entries {
		children = append(children, storage.NewFileURI(filepath.Join(u.Path(), entry.Name())))
	}
	return children, nil
}
