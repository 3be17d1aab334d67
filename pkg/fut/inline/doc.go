// Package inline runs bodies that are expected to complete immediately on
// the calling goroutine, producing a proper future without a scheduler
// round-trip. Callers cannot distinguish the result from an asynchronously
// produced one.
//
// Unified contract across Run, RunValue and RunFuture:
// - an already-canceled context returns the canonical canceled future
//   before the body is invoked
// - errors and panics from the body are captured into a failed future and
//   never propagate out of the call
// - cancellation is checked only on entry; a body that has started is not
//   interrupted and must observe the context itself to stop early
package inline
