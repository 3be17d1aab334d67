package xfer

import (
	"github.com/tr-88/futo/pkg/fut"
)

// Outcome copies the terminal outcome of src into dst: cancellation stays
// cancellation, failure carries the full cause list in order, success carries
// the value. It reports whether this call performed the settlement; false
// means dst was already settled by someone else.
//
// src must be terminal. Calling Outcome on a pending source is a usage error
// and leaves dst untouched, reporting false.
func Outcome[T any](src *fut.Future[T], dst *fut.Promise[T]) bool {
	switch src.State() {
	case fut.Canceled:
		return dst.TryCancel()
	case fut.Failed:
		return dst.TryFail(src.Causes()...)
	case fut.Succeeded:
		return dst.TrySucceed(src.Value())
	default:
		return false
	}
}

// OutcomeAny copies the terminal outcome of an untyped source into dst.
// Cancellation and failure transfer exactly as in Outcome. On success the
// stored value is settled into dst when it is assignable to T; this covers
// both a plain T value and an inner future when T is itself a future type,
// in which case dst becomes a future of a future and the inner future is not
// unwrapped. Any other value settles dst with the zero value of T.
//
// The zero-value fallback loses the source value. It is kept as a separate,
// explicitly named operation so the lossy behavior is always opted into.
func OutcomeAny[T any](src *fut.Future[any], dst *fut.Promise[T]) bool {
	switch src.State() {
	case fut.Canceled:
		return dst.TryCancel()
	case fut.Failed:
		return dst.TryFail(src.Causes()...)
	case fut.Succeeded:
		if v, ok := src.Value().(T); ok {
			return dst.TrySucceed(v)
		}
		var zero T
		return dst.TrySucceed(zero)
	default:
		return false
	}
}
