package inline

import (
	"context"

	"github.com/tr-88/futo/pkg/fut"
	"github.com/tr-88/futo/pkg/fut/canon"
)

// Run executes action on the calling goroutine and wraps its result in a
// void future. An already-canceled ctx short-circuits to the canonical
// canceled future without invoking action. Errors and panics from action
// become a failed future; they never escape Run itself.
func Run(ctx context.Context, action func(ctx context.Context) error) *fut.Future[fut.Void] {
	if ctx.Err() != nil {
		return canon.Canceled()
	}
	if err := guard(ctx, action); err != nil {
		return canon.Failed(err)
	}
	return canon.Completed()
}

// RunValue executes fn on the calling goroutine and wraps its value in a
// future, with the same cancellation pre-check and panic capture as Run.
func RunValue[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *fut.Future[T] {
	if ctx.Err() != nil {
		return canon.CanceledOf[T]()
	}
	var v T
	err := guard(ctx, func(ctx context.Context) (err error) {
		v, err = fn(ctx)
		return err
	})
	if err != nil {
		return canon.FailedOf[T](err)
	}
	return canon.CompletedOf(v)
}

// RunFuture executes fn on the calling goroutine and returns its future
// directly, settled or not. A panic while fn constructs the future becomes a
// failed future; a nil future fails with fut.ErrNilFuture.
func RunFuture[T any](ctx context.Context, fn func(ctx context.Context) *fut.Future[T]) *fut.Future[T] {
	if ctx.Err() != nil {
		return canon.CanceledOf[T]()
	}
	var f *fut.Future[T]
	err := guard(ctx, func(ctx context.Context) error {
		f = fn(ctx)
		return nil
	})
	if err != nil {
		return canon.FailedOf[T](err)
	}
	if f == nil {
		return canon.FailedOf[T](fut.ErrNilFuture)
	}
	return f
}

func guard(ctx context.Context, body func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fut.PanicError(r)
		}
	}()
	return body(ctx)
}
