package model

import (
	"context"
	"errors"
)

var (
	// ErrMissingItem はドロップ項目の取得に失敗したことを示します
	ErrMissingItem = errors.New("drop item is missing")
	// ErrNoHandleCapability は項目がハンドル取得機能を持たないことを示します
	ErrNoHandleCapability = errors.New("item has no getAsFileSystemHandle capability")
	// ErrNotDirectory はハンドルが子要素の列挙機能を持たないことを示します
	ErrNotDirectory = errors.New("handle has no values function")
	// ErrEmptyStep は完了していない列挙ステップが値を持たないことを示します
	ErrEmptyStep = errors.New("iterator step has no value")
)

// HandleKind はハンドルの種別です
type HandleKind string

const (
	HandleFile      HandleKind = "file"
	HandleDirectory HandleKind = "directory"
	HandleUnknown   HandleKind = "unknown"
)

// ParseHandleKind はホストが報告した種別文字列を解釈します。
// 既知の値以外は HandleUnknown になり、エラーにはなりません。
func ParseHandleKind(raw string) HandleKind {
	switch HandleKind(raw) {
	case HandleFile, HandleDirectory:
		return HandleKind(raw)
	default:
		return HandleUnknown
	}
}

// Handle はファイルまたはディレクトリへの参照です
type Handle interface {
	Name() (string, error)
	// Kind はホストが報告した種別文字列をそのまま返します
	Kind() (string, error)
}

// DirectoryHandle は子要素を列挙できるハンドルです
type DirectoryHandle interface {
	Handle
	Values(ctx context.Context) (Cursor, error)
}

// Step は列挙カーソルの 1 ステップ分の結果です
type Step struct {
	Value Handle
	Done  bool
}

// Cursor は遅延評価され、再開できない有限の子ハンドル列です。
// Next はステップを要求し、その結果は Future を待って受け取ります。
type Cursor interface {
	Next() (Future[Step], error)
}

// TraversalUnit は未処理の (ハンドル, パス接頭辞) の組です
type TraversalUnit struct {
	Handle Handle
	Prefix string
}
