// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"DropScope/internal/gui"
	"DropScope/internal/infrastructure/config"
	"DropScope/internal/infrastructure/logging"
	"DropScope/internal/interface/ui"
	"DropScope/internal/usecase/report"
)

// AppID は fyne アプリケーションの識別子です
const AppID = "dropscope.desktop"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "dropscope",
		Short:         "ドロップされたファイルとフォルダの一覧を表示します",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := ui.NewFatalReporter(ui.NativeNotifier(), nil, config.DefaultWindowTitle)

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return reporter.Report("設定の読み込み", err)
			}

			logger, err := logging.New(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cfg.Log.Output,
			})
			if err != nil {
				return reporter.Report("ロガーの初期化", err)
			}
			defer logger.Sync()

			return run(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", fmt.Sprintf("設定ファイルのパス (省略時は %s)", config.DefaultConfigFile))
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg *config.Config, logger *logging.ZapLogger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Log("INFO", "DropScope を起動します", nil)

	var extra []report.Sink
	if cfg.Echo {
		extra = append(extra, report.NewWriterSink(os.Stdout))
	}
	extra = append(extra, report.NewLoggingSink(logger, "DEBUG"))

	window := gui.NewDropWindow(ctx, app.NewWithID(AppID), cfg.Window, logger, extra...)
	window.ShowAndRun()
	window.Wait()

	logger.Log("INFO", "処理が完了しました", nil)
	return nil
}
