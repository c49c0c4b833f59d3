//go:build js && wasm

// Package main はブラウザ向けのエントリーポイントを提供します
package main

import (
	"context"
	"os"

	"DropScope/internal/infrastructure/config"
	"DropScope/internal/infrastructure/jshost"
	"DropScope/internal/infrastructure/logging"
	"DropScope/internal/usecase/ingest"
)

func main() {
	cfg := config.Default()
	logger := logging.NewConsoleLogger(os.Stdout)
	if l, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: logging.FormatConsole, Output: "stdout"}); err == nil {
		logger = l
	}

	page, err := jshost.Open()
	if err != nil {
		logger.Log("ERROR", "初期化に失敗しました", err)
		return
	}

	in := ingest.New(page.Sink(), logger)
	page.Attach(context.Background(), in, logger)
	in.Ready()

	select {}
}
