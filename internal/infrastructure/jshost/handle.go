//go:build js && wasm

package jshost

import (
	"context"
	"fmt"
	"syscall/js"

	"DropScope/internal/domain/model"
)

// Handle は FileSystemHandle です
type Handle struct {
	v js.Value
}

func (h *Handle) Name() (string, error) {
	return getString(h.v, "name", "Handle")
}

func (h *Handle) Kind() (string, error) {
	return getString(h.v, "kind", "Handle")
}

// Values は FileSystemDirectoryHandle.values() の非同期イテレータを返します
func (h *Handle) Values(ctx context.Context) (model.Cursor, error) {
	if !hasFunc(h.v, "values") {
		return nil, model.ErrNotDirectory
	}
	it, err := call(h.v, "values")
	if err != nil {
		return nil, err
	}
	if !hasFunc(it, "next") {
		return nil, fmt.Errorf("not AsyncIterator from values on handle")
	}
	return &cursor{it: it}, nil
}

// cursor は非同期イテレータを 1 ステップずつ進めます
type cursor struct {
	it js.Value
}

func (c *cursor) Next() (model.Future[model.Step], error) {
	p, err := call(c.it, "next")
	if err != nil {
		return nil, err
	}
	return model.FutureFunc[model.Step](func(ctx context.Context) (model.Step, error) {
		res, err := promise{v: p}.Await(ctx)
		if err != nil {
			return model.Step{}, err
		}
		if res.Type() != js.TypeObject {
			return model.Step{}, fmt.Errorf("iterator result is %s", res.Type())
		}
		if res.Get("done").Truthy() {
			return model.Step{Done: true}, nil
		}
		v := res.Get("value")
		if v.Type() != js.TypeObject {
			return model.Step{}, nil
		}
		return model.Step{Value: &Handle{v: v}}, nil
	}), nil
}
