//go:build js && wasm

// Package jshost はブラウザの DataTransfer と File System Access API をドロップ項目として扱います
package jshost

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

// call はメソッドを呼び出し、JavaScript の例外をエラーに変換します
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s() threw: %v", method, r)
		}
	}()
	return v.Call(method, args...), nil
}

// getString は文字列プロパティを読み取ります
func getString(v js.Value, prop, what string) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s has no '%s' property", what, prop)
		}
	}()
	p := v.Get(prop)
	if p.Type() != js.TypeString {
		return "", fmt.Errorf("%s property '%s' is not string", what, prop)
	}
	return p.String(), nil
}

// hasFunc はプロパティが関数であるかどうかを返します
func hasFunc(v js.Value, name string) bool {
	if v.Type() != js.TypeObject {
		return false
	}
	return v.Get(name).Type() == js.TypeFunction
}

func jsError(v js.Value) error {
	if v.Type() == js.TypeObject {
		if msg := v.Get("message"); msg.Type() == js.TypeString {
			return errors.New(msg.String())
		}
	}
	return errors.New(v.String())
}

// promise は JavaScript の Promise を待つ Future です
type promise struct {
	v js.Value
}

type settled struct {
	v   js.Value
	err error
}

// Await は Promise が確定するまでゴルーチンを止めます。
// イベントハンドラのゴルーチンから呼んではいけません
func (p promise) Await(ctx context.Context) (js.Value, error) {
	done := make(chan settled, 1)

	onFulfilled := js.FuncOf(func(_ js.Value, args []js.Value) any {
		v := js.Undefined()
		if len(args) > 0 {
			v = args[0]
		}
		done <- settled{v: v}
		return nil
	})
	onRejected := js.FuncOf(func(_ js.Value, args []js.Value) any {
		err := errors.New("promise rejected")
		if len(args) > 0 {
			err = jsError(args[0])
		}
		done <- settled{err: err}
		return nil
	})
	release := func() {
		onFulfilled.Release()
		onRejected.Release()
	}

	if _, err := call(p.v, "then", onFulfilled, onRejected); err != nil {
		release()
		return js.Undefined(), err
	}

	select {
	case s := <-done:
		release()
		return s.v, s.err
	case <-ctx.Done():
		go func() {
			<-done
			release()
		}()
		return js.Undefined(), ctx.Err()
	}
}
