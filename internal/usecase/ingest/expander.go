package ingest

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"DropScope/internal/domain/model"
	"DropScope/internal/infrastructure/logging"
)

// RootPrefix はドロップ項目 i を起点とするパス接頭辞を返します
func RootPrefix(i int) string {
	return fmt.Sprintf("Handles [%d] /", i)
}

// PendingHandle は要求済みでまだ待っていないハンドル取得です
type PendingHandle struct {
	// Index はフィルタ後の並びにおける項目の位置です
	Index  int
	future model.Future[model.Handle]
	err    error
}

// Expander はハンドルの取得とディレクトリの子要素の列挙を行います
type Expander struct {
	logger logging.Logger
}

// NewExpander は新しい Expander を作成します
func NewExpander(logger logging.Logger) *Expander {
	return &Expander{logger: logger}
}

// RequestHandles はすべての項目にハンドル取得を要求します。
// 1 つも待たずに全項目分の要求を発行し終えてから戻ります
func (e *Expander) RequestHandles(items []model.DropItem) []PendingHandle {
	pending := make([]PendingHandle, len(items))
	for i, item := range items {
		pending[i].Index = i
		src, ok := item.(model.HandleSource)
		if !ok {
			pending[i].err = model.ErrNoHandleCapability
			continue
		}
		pending[i].future, pending[i].err = src.GetAsFileSystemHandle()
		if pending[i].err == nil && pending[i].future == nil {
			pending[i].err = model.ErrMissingItem
		}
	}
	return pending
}

// AwaitHandles は要求済みのハンドル取得をまとめて待ち、走査の初期単位を返します。
// 失敗した項目はハンドルを 1 つも生まなかったものとして扱います
func (e *Expander) AwaitHandles(ctx context.Context, pending []PendingHandle) []model.TraversalUnit {
	handles := make([]model.Handle, len(pending))
	errs := make([]error, len(pending))

	var g errgroup.Group
	for i, p := range pending {
		i, p := i, p
		if p.err != nil {
			errs[i] = p.err
			continue
		}
		g.Go(func() error {
			h, err := p.future.Await(ctx)
			if err != nil {
				errs[i] = err
				return nil
			}
			handles[i] = h
			return nil
		})
	}
	_ = g.Wait()

	units := make([]model.TraversalUnit, 0, len(pending))
	for i, p := range pending {
		if errs[i] != nil {
			level := "DEBUG"
			if errors.Is(errs[i], model.ErrNoHandleCapability) {
				level = "WARN"
			}
			e.logger.Log(level, fmt.Sprintf("Handles [%d] のハンドルを取得できませんでした", p.Index), errs[i])
			continue
		}
		if handles[i] == nil {
			continue
		}
		units = append(units, model.TraversalUnit{Handle: handles[i], Prefix: RootPrefix(p.Index)})
	}
	return units
}

// Children はディレクトリハンドルの子要素をすべて列挙して返します。
// 途中で失敗した場合はそのディレクトリの展開だけを中止し、再試行はしません
func (e *Expander) Children(ctx context.Context, h model.Handle) ([]model.Handle, error) {
	dir, ok := h.(model.DirectoryHandle)
	if !ok {
		return nil, model.ErrNotDirectory
	}

	cursor, err := dir.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed calling values on handle: %w", err)
	}

	var children []model.Handle
	for {
		// 一部のホストは名前に引用符を含む子要素を返さない
		next, err := cursor.Next()
		if err != nil {
			return nil, fmt.Errorf("error iterating directory handle values(): %w", err)
		}

		step, err := next.Await(ctx)
		if err != nil {
			return nil, fmt.Errorf("promise for directory handle values() iterator next() failed: %w", err)
		}
		if step.Done {
			break
		}
		if step.Value == nil {
			return nil, model.ErrEmptyStep
		}
		children = append(children, step.Value)
	}

	return children, nil
}
