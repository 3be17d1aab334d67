package fut

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrCanceled is reported by Await and Err when a future terminated by
// cancellation. Canceled futures carry no cause list.
var ErrCanceled = errors.New("future canceled")

// ErrFailed substitutes for a failure settled without any usable cause.
var ErrFailed = errors.New("future failed")

// ErrNilFuture reports a future-producing function that returned nil.
var ErrNilFuture = errors.New("nil future")

// Void is the value type of futures that carry no result.
type Void struct{}

type State int

const (
	Pending State = iota
	Succeeded
	Failed
	Canceled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Future is the consumer side of a single asynchronous value. It settles
// exactly once into Succeeded, Failed or Canceled; terminal state and value
// never change afterwards.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}

	mu     sync.Mutex
	state  State
	value  T
	causes []error
	subs   []func(*Future[T])
}

// Promise is the producer side of a Future. All try-operations follow
// first-settlement-wins: they report whether this call performed the
// settlement and never overwrite an earlier one.
type Promise[T any] struct {
	f *Future[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{f: &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}}
}

// Future returns the consumer handle associated with this promise.
func (p *Promise[T]) Future() *Future[T] {
	return p.f
}

func (p *Promise[T]) TrySucceed(v T) bool {
	return p.f.settle(Succeeded, v, nil)
}

// TryFail settles the future as failed with the given causes. Nil causes are
// dropped and aggregates built with errors.Join are flattened so that every
// individual cause stays observable, in order. With no usable cause left the
// failure carries ErrFailed.
func (p *Promise[T]) TryFail(causes ...error) bool {
	flat := make([]error, 0, len(causes))
	for _, c := range causes {
		if IsNil(c) {
			continue
		}
		flat = append(flat, GetErrors(c)...)
	}
	if len(flat) == 0 {
		flat = append(flat, ErrFailed)
	}
	var zero T
	return p.f.settle(Failed, zero, flat)
}

func (p *Promise[T]) TryCancel() bool {
	var zero T
	return p.f.settle(Canceled, zero, nil)
}

func (f *Future[T]) settle(s State, v T, causes []error) bool {
	f.mu.Lock()
	if f.state != Pending {
		f.mu.Unlock()
		return false
	}
	f.state = s
	f.value = v
	f.causes = causes
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range subs {
		cb(f)
	}
	return true
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

// CreatedAt time creation (UTC)
func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Future[T]) IsPending() bool {
	return f.State() == Pending
}

func (f *Future[T]) IsTerminal() bool {
	return f.State() != Pending
}

func (f *Future[T]) IsSuccess() bool {
	return f.State() == Succeeded
}

func (f *Future[T]) IsFailure() bool {
	return f.State() == Failed
}

func (f *Future[T]) IsCancel() bool {
	return f.State() == Canceled
}

// Value returns the successful result value, or the zero value while the
// future is unsettled or not succeeded.
func (f *Future[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Causes returns a copy of the failure causes in the order they were settled.
// It is empty for any state other than Failed.
func (f *Future[T]) Causes() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]error, len(f.causes))
	copy(out, f.causes)
	return out
}

// PrimaryCause returns the first failure cause, or nil.
func (f *Future[T]) PrimaryCause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.causes) == 0 {
		return nil
	}
	return f.causes[0]
}

// Err collapses the terminal state to a single error: nil on success or while
// pending, ErrCanceled on cancellation, and the joined cause list on failure.
func (f *Future[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case Failed:
		return errors.Join(f.causes...)
	case Canceled:
		return ErrCanceled
	default:
		return nil
	}
}

// Done is closed when the future settles. It suits select-based consumers.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done, whichever comes
// first, and returns the value together with Err.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	if err := f.Err(); err != nil {
		var zero T
		return zero, err
	}
	return f.Value(), nil
}

// OnSettled registers cb to run once the future settles. A callback attached
// to an already-settled future runs synchronously on the calling goroutine;
// otherwise it runs on the goroutine that performs the settlement.
func (f *Future[T]) OnSettled(cb func(*Future[T])) {
	if cb == nil {
		return
	}
	f.mu.Lock()
	if f.state == Pending {
		f.subs = append(f.subs, cb)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	cb(f)
}
