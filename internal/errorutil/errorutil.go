package errorutil

import "errors"

// ErrContractViolation is the base error for broken instrumentation
// invariants, such as an exit without a matching enter. These are never
// recoverable: they mean the aggregated statistics can no longer be trusted.
var ErrContractViolation = errors.New("contract violation")

// ErrClock represents a clock reading that cannot be turned into a duration.
var ErrClock = errors.New("clock failure")

// ErrDataIntegrity means an exported profile failed its own consistency checks.
var ErrDataIntegrity = errors.New("data integrity error")
