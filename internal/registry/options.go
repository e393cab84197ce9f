package registry

import (
	"github.com/rs/zerolog"

	"github.com/getsentry/scopeprof/internal/timeutil"
)

// Option configures a Registry constructed by New.
type Option func(*Registry)

// WithClock replaces the host clock, mostly for tests.
func WithClock(c timeutil.Clock) Option {
	return func(r *Registry) {
		if c != nil {
			r.clock = c
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithViolationHandler sets the function told about contract violations
// before the registry panics with the same error. Returning from the handler
// does not cancel the panic.
func WithViolationHandler(fn func(error)) Option {
	return func(r *Registry) {
		if fn != nil {
			r.onViolation = fn
		}
	}
}
