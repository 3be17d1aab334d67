package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tr-88/futo/pkg/fut"
	"github.com/tr-88/futo/pkg/fut/canon"
	"github.com/tr-88/futo/pkg/fut/inline"
	"github.com/tr-88/futo/pkg/fut/retry"
	"github.com/tr-88/futo/pkg/fut/xfer"
)

// TestRetryOverInlineProducer runs the combinators end to end: an inline
// producer that fails twice before succeeding, driven by the retry loop, with
// the final outcome transferred into an independently owned promise.
func TestRetryOverInlineProducer(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int32
	result := retry.Do(func() *fut.Future[string] {
		return inline.RunValue(ctx, func(ctx context.Context) (string, error) {
			if calls.Add(1) < 3 {
				return "", errors.New("transient")
			}
			return "ready", nil
		})
	}, retry.WithMaxAttempts(5))

	v, err := result.Await(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "ready", v)
	assert.Equal(t, int32(3), calls.Load())

	// re-home the settled outcome into a fresh handle
	dst := fut.NewPromise[string]()
	assert.True(t, xfer.Outcome(result, dst))
	assert.Equal(t, "ready", dst.Future().Value())
	assert.False(t, xfer.Outcome(result, dst), "second transfer must not settle again")
}

func TestCanceledTokenShortCircuitsWholePipeline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	result := retry.Do(func() *fut.Future[int] {
		return inline.RunValue(ctx, func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 1, nil
		})
	}, retry.WithMaxAttempts(5))

	<-result.Done()
	assert.True(t, result.IsCancel(), "canceled attempt must stop the retry loop")
	assert.Equal(t, int32(0), calls.Load(), "body must never run under a canceled token")
}

func TestFailureAggregateSurvivesTransferChain(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	src := canon.FailedManyOf[int]([]error{errA, errB})

	first := fut.NewPromise[int]()
	assert.True(t, xfer.Outcome(src, first))

	second := fut.NewPromise[int]()
	assert.True(t, xfer.Outcome(first.Future(), second))

	causes := second.Future().Causes()
	assert.Equal(t, []error{errA, errB}, causes)
	assert.True(t, errors.Is(second.Future().Err(), errA))
	assert.True(t, errors.Is(second.Future().Err(), errB))
}

func TestCanonicalIdentityAcrossCallers(t *testing.T) {
	assert.Same(t, canon.Completed(), canon.Completed())
	assert.Same(t, canon.CanceledOf[int](), canon.CanceledOf[int]())
	assert.Same(t, canon.NullResult(), canon.NullResult())

	assert.NotSame(t, canon.FailedOf[int](errors.New("x")), canon.FailedOf[int](errors.New("x")))
}
