// Package config は設定の読み込みを提供します
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// DefaultConfigFile はカレントディレクトリで探す設定ファイル名です
	DefaultConfigFile = "dropscope.yaml"
	// EnvPrefix は環境変数の接頭辞です
	EnvPrefix = "DROPSCOPE_"

	DefaultWindowTitle  = "DropScope"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// WindowConfig はウィンドウの設定です
type WindowConfig struct {
	Title  string `koanf:"title"`
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
}

// LogConfig はロガーの設定です
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Output string `koanf:"output"`
}

// Config はアプリケーション全体の設定です
type Config struct {
	Window WindowConfig `koanf:"window"`
	Log    LogConfig    `koanf:"log"`
	// Echo は出力行を標準出力にも書き出すかどうかです
	Echo bool `koanf:"echo"`
}

// flagKeys はフラグ名と設定キーの対応です
var flagKeys = map[string]string{
	"title":      "window.title",
	"width":      "window.width",
	"height":     "window.height",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-output": "log.output",
	"echo":       "echo",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"window.title":  DefaultWindowTitle,
		"window.width":  DefaultWindowWidth,
		"window.height": DefaultWindowHeight,
		"log.level":     "INFO",
		"log.format":    "json",
		"log.output":    "stderr",
		"echo":          false,
	}
}

// Default はデフォルト値だけの設定を返します
func Default() *Config {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	var cfg Config
	_ = k.Unmarshal("", &cfg)
	return &cfg
}

// Load は設定を読み込みます。
// 優先順位はフラグ > 環境変数 > 設定ファイル > デフォルト値です
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("デフォルト値の読み込みに失敗しました: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("設定ファイル %s の読み込みに失敗しました: %w", cfgFile, err)
		}
	}

	// DROPSCOPE_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("環境変数の読み込みに失敗しました: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("フラグの読み込みに失敗しました: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("設定の変換に失敗しました: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate は設定値が有効であることを確認します
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("ウィンドウサイズが不正です: %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("未対応のログフォーマットです: %s", c.Log.Format)
	}
	return nil
}

// RegisterFlags は設定を上書きするフラグを登録します
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("title", DefaultWindowTitle, "ウィンドウのタイトル")
	flags.Int("width", DefaultWindowWidth, "ウィンドウの幅")
	flags.Int("height", DefaultWindowHeight, "ウィンドウの高さ")
	flags.String("log-level", "INFO", "ログレベル (DEBUG, INFO, WARN, ERROR)")
	flags.String("log-format", "json", "ログフォーマット (json, console)")
	flags.String("log-output", "stderr", "ログの出力先 (stdout, stderr またはファイルパス)")
	flags.Bool("echo", false, "出力行を標準出力にも書き出す")
}
