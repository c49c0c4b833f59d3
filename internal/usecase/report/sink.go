// Package report は走査結果を出力先へ送る機能を提供します
package report

import (
	"fmt"
	"io"
	"sync"

	"DropScope/internal/infrastructure/logging"
)

// ReadyMessage は初期化完了時に出力する行です
const ReadyMessage = "DropScope initialized, ready for drag and drop"

// Sink は 1 行ずつテキストを受け取る出力先です。
// 呼び出し側は Emit が失敗しないものとして扱います。
type Sink interface {
	Emit(line string)
}

// SinkFunc は関数を Sink として扱うためのアダプタです
type SinkFunc func(line string)

// Emit は関数を呼び出します
func (f SinkFunc) Emit(line string) {
	f(line)
}

// WriterSink は io.Writer に 1 行ずつ書き出す Sink です
type WriterSink struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewWriterSink は新しい WriterSink を作成します
func NewWriterSink(writer io.Writer) *WriterSink {
	return &WriterSink{writer: writer}
}

// Emit は行を改行付きで書き出します。書き込みエラーは無視します
func (s *WriterSink) Emit(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.writer, line)
}

// MultiSink は複数の Sink に同じ行を送ります
type MultiSink []Sink

// Emit はすべての Sink に行を送ります
func (m MultiSink) Emit(line string) {
	for _, s := range m {
		if s != nil {
			s.Emit(line)
		}
	}
}

// LoggingSink は出力行をロガーにも記録する Sink です
type LoggingSink struct {
	logger logging.Logger
	level  string
}

// NewLoggingSink は指定レベルで行を記録する LoggingSink を作成します
func NewLoggingSink(logger logging.Logger, level string) *LoggingSink {
	return &LoggingSink{logger: logger, level: level}
}

// Emit は行をログに記録します
func (s *LoggingSink) Emit(line string) {
	s.logger.Log(s.level, line, nil)
}
