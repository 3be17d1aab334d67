package canon

import (
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tr-88/futo/pkg/fut"
)

var (
	completedOnce sync.Once
	completedVoid *fut.Future[fut.Void]

	nullOnce   sync.Once
	nullFuture *fut.Future[any]

	canceledCache sync.Map // reflect.Type -> *fut.Future[T]
	canceledGroup singleflight.Group
)

// Completed returns the process-wide succeeded void future.
func Completed() *fut.Future[fut.Void] {
	completedOnce.Do(func() {
		completedVoid = CompletedOf(fut.Void{})
	})
	return completedVoid
}

// CompletedOf creates and settles a fresh future with v.
func CompletedOf[T any](v T) *fut.Future[T] {
	p := fut.NewPromise[T]()
	p.TrySucceed(v)
	return p.Future()
}

// Canceled returns the process-wide canceled void future.
func Canceled() *fut.Future[fut.Void] {
	return CanceledOf[fut.Void]()
}

// CanceledOf returns the canceled future cached for T. The future is built
// lazily, at most once per distinct T for the process lifetime, and shared
// read-only by all callers.
func CanceledOf[T any]() *fut.Future[T] {
	key := reflect.TypeOf((*T)(nil))
	if v, ok := canceledCache.Load(key); ok {
		return v.(*fut.Future[T])
	}

	v, _, _ := canceledGroup.Do(key.String(), func() (any, error) {
		if v, ok := canceledCache.Load(key); ok {
			return v, nil
		}
		p := fut.NewPromise[T]()
		p.TryCancel()
		canceledCache.Store(key, p.Future())
		return p.Future(), nil
	})
	return v.(*fut.Future[T])
}

// Failed creates a fresh failed void future. Failed futures are never cached,
// each call keeps its own cause identity.
func Failed(cause error) *fut.Future[fut.Void] {
	return FailedOf[fut.Void](cause)
}

func FailedOf[T any](cause error) *fut.Future[T] {
	p := fut.NewPromise[T]()
	p.TryFail(cause)
	return p.Future()
}

func FailedMany(causes []error) *fut.Future[fut.Void] {
	return FailedManyOf[fut.Void](causes)
}

func FailedManyOf[T any](causes []error) *fut.Future[T] {
	p := fut.NewPromise[T]()
	p.TryFail(causes...)
	return p.Future()
}

// NullResult returns the process-wide Future[any] succeeded with nil.
func NullResult() *fut.Future[any] {
	nullOnce.Do(func() {
		nullFuture = CompletedOf[any](nil)
	})
	return nullFuture
}
