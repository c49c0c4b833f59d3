package ingest

import (
	"context"
	"fmt"

	"DropScope/internal/domain/model"
	"DropScope/internal/usecase/report"
)

// Stats は 1 回の走査の集計です
type Stats struct {
	// Popped はスタックから取り出した単位の数です
	Popped      int
	Files       int
	Directories int
	Diagnostics int
}

// Walker は (ハンドル, 接頭辞) のスタックを使ってツリーを反復的に走査します。
// ホストのファイルシステムは非巡回であることを前提とし、循環の検出は行いません
type Walker struct {
	expander *Expander
	sink     report.Sink
	stack    []model.TraversalUnit
	stats    Stats
}

// NewWalker は新しい Walker を作成します
func NewWalker(expander *Expander, sink report.Sink) *Walker {
	return &Walker{expander: expander, sink: sink}
}

// Walk は seed から始めてスタックが空になるまで走査します
func (w *Walker) Walk(ctx context.Context, seed []model.TraversalUnit) Stats {
	w.stack = append(w.stack[:0], seed...)
	w.stats = Stats{}

	for len(w.stack) > 0 {
		unit := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.stats.Popped++

		w.visit(ctx, unit)
	}

	return w.stats
}

// visit は 1 つの単位を処理します。失敗はすべて診断エントリに変換されます
func (w *Walker) visit(ctx context.Context, unit model.TraversalUnit) {
	defer func() {
		if r := recover(); r != nil {
			w.emit(model.Diagnostic(unit.Prefix, fmt.Sprintf("failed processing handle: %v", r)))
		}
	}()

	name, err := unit.Handle.Name()
	if err != nil {
		w.emit(model.Diagnostic(unit.Prefix, fmt.Sprintf("failed reading handle name: %v", err)))
		return
	}
	kind, err := unit.Handle.Kind()
	if err != nil {
		w.emit(model.Diagnostic(unit.Prefix, fmt.Sprintf("failed reading kind of %s: %v", name, err)))
		return
	}

	switch model.ParseHandleKind(kind) {
	case model.HandleFile:
		w.emit(model.FileEntry(unit.Prefix, name))

	case model.HandleDirectory:
		w.emit(model.DirectoryEntry(unit.Prefix, name))

		childPrefix := unit.Prefix + name + "/"
		children, err := w.expander.Children(ctx, unit.Handle)
		if err != nil {
			w.emit(model.Diagnostic(unit.Prefix, fmt.Sprintf("failed getting directory handle values for %s: %v", name, err)))
			return
		}
		for _, child := range children {
			w.stack = append(w.stack, model.TraversalUnit{Handle: child, Prefix: childPrefix})
		}

	default:
		w.emit(model.Diagnostic(unit.Prefix, "unknown kind: "+kind))
	}
}

func (w *Walker) emit(e model.Entry) {
	switch e.Kind {
	case model.EntryFile:
		w.stats.Files++
	case model.EntryDirectory:
		w.stats.Directories++
	default:
		w.stats.Diagnostics++
	}
	w.sink.Emit(e.Line())
}
