package model

import "context"

// Future は非同期に得られる値です
type Future[T any] interface {
	Await(ctx context.Context) (T, error)
}

// FutureFunc は関数を Future として扱うためのアダプタです
type FutureFunc[T any] func(ctx context.Context) (T, error)

// Await は関数を呼び出して結果を返します
func (f FutureFunc[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// Resolved は値がすでに確定した Future を返します
func Resolved[T any](v T) Future[T] {
	return FutureFunc[T](func(context.Context) (T, error) {
		return v, nil
	})
}

// Rejected は失敗が確定した Future を返します
func Rejected[T any](err error) Future[T] {
	return FutureFunc[T](func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}
