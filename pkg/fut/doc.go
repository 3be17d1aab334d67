// Package fut contains the single-value future core: Future[T] on the
// consumer side and Promise[T] on the producer side, with an exactly-once
// settlement discipline shared by every combinator package.
//
// Highlights:
// - NewPromise/Future: create an unsettled future with its settlement handle
// - TrySucceed/TryFail/TryCancel: first-settlement-wins try operations
// - Await/Done/OnSettled: blocking, select-based and continuation consumers
// - Causes/PrimaryCause/Err: failure causes, preserved as a full aggregate
// - GetErrors/IsCancellationError: cause-list and cancellation helpers
//
// Subpackages build on this core: canon (canonical cached futures), xfer
// (settlement transfer), inline (synchronous execution shortcut) and retry.
package fut
