// Package retry re-invokes a future-producing function until it succeeds or
// the retry budget and predicate reject further attempts.
//
// Key operations:
// - Do: run the sequential retry loop, returning a single result future
// - WithMaxAttempts/WithShouldRetry: functional options over Policy
//
// The loop is iterative, driven by one goroutine parked on each attempt's
// Done channel, so a large budget cannot grow the call stack. Cancellation
// is honored by stopping on a canceled attempt; the combinator does not
// consult a cancellation token of its own.
package retry
