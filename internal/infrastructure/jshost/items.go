//go:build js && wasm

package jshost

import (
	"context"
	"fmt"
	"syscall/js"

	"DropScope/internal/domain/model"
)

// ItemList は DataTransferItemList です
type ItemList struct {
	v js.Value
}

// NewItemList は DataTransferItemList を包みます
func NewItemList(v js.Value) *ItemList {
	return &ItemList{v: v}
}

// Len は項目数を返します
func (l *ItemList) Len() int {
	if l.v.Type() != js.TypeObject {
		return 0
	}
	n := l.v.Get("length")
	if n.Type() != js.TypeNumber {
		return 0
	}
	return n.Int()
}

// Item は i 番目の項目を返します
func (l *ItemList) Item(i int) (dropItem model.DropItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Items [%d] failed get(): %v", i, r)
		}
	}()
	v := l.v.Index(i)
	if v.Type() != js.TypeObject {
		return nil, fmt.Errorf("Items [%d]: %w", i, model.ErrMissingItem)
	}
	if hasFunc(v, "getAsFileSystemHandle") {
		return &handleItem{item{v: v}}, nil
	}
	return &item{v: v}, nil
}

// item は DataTransferItem です
type item struct {
	v js.Value
}

func (it *item) Kind() string {
	kind, err := getString(it.v, "kind", "Item")
	if err != nil {
		return ""
	}
	return kind
}

func (it *item) GetAsFile() (model.File, error) {
	f, err := call(it.v, "getAsFile")
	if err != nil {
		return nil, err
	}
	if f.IsNull() || f.IsUndefined() {
		return nil, nil
	}
	name, err := getString(f, "name", "File")
	if err != nil {
		return nil, err
	}
	return file(name), nil
}

type file string

func (f file) Name() string { return string(f) }

// handleItem は getAsFileSystemHandle を持つ DataTransferItem です
type handleItem struct {
	item
}

// GetAsFileSystemHandle は同期的に Promise を取得します。待つのは後で行います
func (it *handleItem) GetAsFileSystemHandle() (model.Future[model.Handle], error) {
	p, err := call(it.v, "getAsFileSystemHandle")
	if err != nil {
		return nil, err
	}
	return model.FutureFunc[model.Handle](func(ctx context.Context) (model.Handle, error) {
		v, err := promise{v: p}.Await(ctx)
		if err != nil {
			return nil, err
		}
		if v.IsNull() || v.IsUndefined() {
			return nil, fmt.Errorf("getAsFileSystemHandle() resolved to %s", v.Type())
		}
		return &Handle{v: v}, nil
	}), nil
}
