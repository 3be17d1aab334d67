// Package xfer moves settled outcomes between independently created futures.
// It is the primitive the canonical constructors and composition code rely on
// to re-home a terminal state without re-running the computation.
//
// Key operations:
// - Outcome: same-type transfer, cause aggregate preserved in full
// - OutcomeAny: untyped transfer with a documented lossy zero-value fallback
//
// Both report whether the call performed the settlement, so racing writers
// can detect that the target was already settled.
package xfer
