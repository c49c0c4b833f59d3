// Package logging はロギング機能を提供します
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// Config はロガーの設定です
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // json, console
	Output string // stdout, stderr またはファイルパス
}

// ZapLogger は zap を使ってログを出力するロガーです
type ZapLogger struct {
	logger *zap.Logger
}

// NewJSONLogger は JSON フォーマットで出力するロガーを作成します
func NewJSONLogger(writer io.Writer) *ZapLogger {
	return newZapLogger(writer, FormatJSON, zapcore.DebugLevel)
}

// NewConsoleLogger は人が読みやすい形式で出力するロガーを作成します
func NewConsoleLogger(writer io.Writer) *ZapLogger {
	return newZapLogger(writer, FormatConsole, zapcore.DebugLevel)
}

// New は設定に従ってロガーを作成します
func New(cfg Config) (*ZapLogger, error) {
	var writer io.Writer
	switch cfg.Output {
	case "", "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("ログ出力先を開けません: %w", err)
		}
		writer = f
	}

	switch cfg.Format {
	case "", FormatJSON, FormatConsole:
	default:
		return nil, fmt.Errorf("未対応のログフォーマットです: %s", cfg.Format)
	}

	return newZapLogger(writer, cfg.Format, parseLevel(cfg.Level)), nil
}

// Nop は何も出力しないロガーを返します
func Nop() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

func newZapLogger(writer io.Writer, format string, level zapcore.Level) *ZapLogger {
	if writer == nil {
		writer = os.Stdout
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if format == FormatConsole {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), zap.NewAtomicLevelAt(level))
	return &ZapLogger{logger: zap.New(core)}
}

// parseLevel は未知のレベルを INFO として扱います
func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// Log は指定されたレベルでメッセージを出力します
func (l *ZapLogger) Log(level, message string, err error) {
	var fields []zap.Field
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if ce := l.logger.Check(parseLevel(level), message); ce != nil {
		ce.Write(fields...)
	}
}

// Sync はバッファされたログを書き出します
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
