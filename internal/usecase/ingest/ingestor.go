package ingest

import (
	"context"
	"fmt"

	"DropScope/internal/domain/model"
	"DropScope/internal/infrastructure/logging"
	"DropScope/internal/usecase/report"
)

// Mode はドロップの処理方式です
type Mode int

const (
	// ModeNone は処理対象の項目がない状態です
	ModeNone Mode = iota
	// ModeHandles はハンドルを取得してディレクトリを再帰的に展開します
	ModeHandles
	// ModeFiles はファイル参照だけを取得し、再帰はしません
	ModeFiles
)

func (m Mode) String() string {
	switch m {
	case ModeHandles:
		return "handles"
	case ModeFiles:
		return "files"
	default:
		return "none"
	}
}

// Ingestor はドロップされた項目を受け付けて走査ジョブを作成します
type Ingestor struct {
	sink     report.Sink
	logger   logging.Logger
	expander *Expander
}

// New は新しい Ingestor を作成します
func New(sink report.Sink, logger logging.Logger) *Ingestor {
	return &Ingestor{
		sink:     sink,
		logger:   logger,
		expander: NewExpander(logger),
	}
}

// Ready は初期化完了の行を出力します
func (in *Ingestor) Ready() {
	in.sink.Emit(report.ReadyMessage)
}

// Accept はドロップイベントのハンドラ内で同期的に呼び出します。
// ホストの項目が無効になる前に、必要な要求をすべて発行しておきます
func (in *Ingestor) Accept(items model.ItemList) *Job {
	count := 0
	if items != nil {
		count = items.Len()
	}
	in.sink.Emit(fmt.Sprintf("Items: %d", count))

	normalized := Normalize(items)
	job := &Job{ingestor: in, items: len(normalized)}

	switch {
	case len(normalized) == 0:
		job.mode = ModeNone
	case HandleCapable(normalized):
		job.mode = ModeHandles
		job.pending = in.expander.RequestHandles(normalized)
	default:
		job.mode = ModeFiles
		job.files = captureFiles(normalized)
	}

	in.logger.Log("INFO", fmt.Sprintf("ドロップを受け付けました: %d 件中 %d 件 (%s)", count, job.items, job.mode), nil)
	return job
}

// Job は受け付け済みのドロップ 1 回分の走査です
type Job struct {
	ingestor *Ingestor
	mode     Mode
	items    int
	pending  []PendingHandle
	files    []fileOutcome
}

// Mode はジョブの処理方式を返します
func (j *Job) Mode() Mode {
	return j.mode
}

// Run はハンドルを待ち、走査を最後まで実行します。
// 途中の失敗はすべて出力先の診断行になり、エラーとしては返しません
func (j *Job) Run(ctx context.Context) Stats {
	in := j.ingestor

	var stats Stats
	switch j.mode {
	case ModeHandles:
		seed := in.expander.AwaitHandles(ctx, j.pending)
		stats = NewWalker(in.expander, in.sink).Walk(ctx, seed)
	case ModeFiles:
		stats = emitFiles(in.sink, j.files)
	}

	in.logger.Log("INFO", fmt.Sprintf("走査が完了しました: files=%d directories=%d diagnostics=%d",
		stats.Files, stats.Directories, stats.Diagnostics), nil)
	return stats
}
