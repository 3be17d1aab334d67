package fut

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithCauses defines an interface for types that can report failure causes
type WithCauses[T any] interface {
	ValueProvider[T]
	// Causes returns the failure causes if the computation failed
	Causes() []error
	// PrimaryCause returns the first failure cause
	PrimaryCause() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
}

// WithCancel extends WithCauses with cancellation support
type WithCancel[T any] interface {
	WithCauses[T]
	// IsCancel returns true if the computation was cancelled
	IsCancel() bool
}
