// Package canon provides canonical futures: pure accessors with no side
// effect beyond one-time lazy construction of the shared instances.
//
// Key constructs:
// - Completed/Canceled: cached void futures, one per process
// - CanceledOf: the canceled future cached per distinct value type
// - CompletedOf: a fresh settled future for a value
// - Failed/FailedOf/FailedMany/FailedManyOf: fresh failed futures, never cached
// - NullResult: cached Future[any] succeeded with nil
//
// Cached instances are immutable after construction and safe for concurrent
// use without synchronization. Callers must not depend on identity beyond
// equality of outcome.
package canon
