package retry

import (
	"github.com/tr-88/futo/pkg/fut"
	"github.com/tr-88/futo/pkg/fut/canon"
	"github.com/tr-88/futo/pkg/fut/xfer"
)

// DefaultMaxAttempts is the retry budget used when no option overrides it:
// one initial attempt plus up to five retries.
const DefaultMaxAttempts = 5

// Policy controls when a failed attempt is retried. ShouldRetry receives the
// primary cause of the failure only, not the full aggregate.
type Policy struct {
	MaxAttempts int
	ShouldRetry func(cause error) bool
}

type Option func(*Policy)

// WithMaxAttempts sets the number of retries after the initial attempt.
// Zero means exactly one attempt. Negative values are clamped to zero.
func WithMaxAttempts(n int) Option {
	return func(p *Policy) {
		p.MaxAttempts = n
	}
}

// WithShouldRetry sets the predicate consulted on each retryable failure.
func WithShouldRetry(pred func(cause error) bool) Option {
	return func(p *Policy) {
		p.ShouldRetry = pred
	}
}

func retryAlways(error) bool {
	return true
}

// Do invokes producer until an attempt succeeds, an attempt is canceled, the
// retry budget runs out, or the policy rejects the failure cause. The
// returned future settles exactly once with the outcome of the last attempt
// made.
//
// Attempts are strictly sequential: the next attempt starts only after the
// previous one settled as a retryable failure, and no goroutine blocks a
// thread while waiting. Retries are immediate, without delay. A canceled
// attempt stops the loop regardless of remaining budget.
//
// A panic thrown synchronously by producer, and a nil future returned by it,
// are both converted into failed attempts: they consume budget and their
// cause is passed to ShouldRetry like any other failure.
func Do[T any](producer func() *fut.Future[T], opts ...Option) *fut.Future[T] {
	policy := Policy{
		MaxAttempts: DefaultMaxAttempts,
		ShouldRetry: retryAlways,
	}
	for _, opt := range opts {
		opt(&policy)
	}
	if policy.MaxAttempts < 0 {
		policy.MaxAttempts = 0
	}
	if policy.ShouldRetry == nil {
		policy.ShouldRetry = retryAlways
	}

	p := fut.NewPromise[T]()

	go func() {
		remaining := policy.MaxAttempts
		for {
			attempt := invoke(producer)
			<-attempt.Done()

			if attempt.IsFailure() && remaining > 0 && policy.ShouldRetry(attempt.PrimaryCause()) {
				remaining--
				continue
			}
			// success, cancellation, or a failure that is final
			xfer.Outcome(attempt, p)
			return
		}
	}()

	return p.Future()
}

func invoke[T any](producer func() *fut.Future[T]) (f *fut.Future[T]) {
	defer func() {
		if r := recover(); r != nil {
			f = canon.FailedOf[T](fut.PanicError(r))
		}
	}()
	f = producer()
	if f == nil {
		f = canon.FailedOf[T](fut.ErrNilFuture)
	}
	return f
}
