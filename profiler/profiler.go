//go:build !noprofile

package profiler

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/getsentry/scopeprof/internal/envutil"
	"github.com/getsentry/scopeprof/internal/registry"
	"github.com/getsentry/scopeprof/internal/render"
)

// Enabled is false when the package is built with the noprofile tag.
const Enabled = true

var (
	setup sync.Once
	reg   *registry.Registry
	cfg   envutil.Config
)

func global() *registry.Registry {
	setup.Do(func() {
		c, err := envutil.Load()
		if err != nil {
			log.Warn().Err(err).Msg("invalid profiler configuration, using defaults")
			c = envutil.Default()
		}
		cfg = c
		reg = registry.New(registry.WithLogger(log.With().Str("component", "profiler").Logger()))
	})
	return reg
}

// Scope enters a scope named name on the calling goroutine. Close it with
// Exit, usually deferred. It returns nil, whose Exit does nothing, when
// SCOPEPROF_ENABLED is false.
func Scope(name string) *Guard {
	r := global()
	if !cfg.Enabled {
		return nil
	}
	return r.Scope(name)
}

// Do runs fn inside a scope named name.
func Do(name string, fn func()) {
	r := global()
	if !cfg.Enabled {
		fn()
		return
	}
	r.Do(name, fn)
}

// Snapshot returns the current call tree.
func Snapshot() Report {
	return global().Summary()
}

// Summary prints the call tree to stdout in the configured format.
func Summary() {
	global()
	format, err := cfg.ReportFormat()
	if err != nil {
		format = FormatText
	}
	if err := WriteSummary(os.Stdout, format); err != nil {
		log.Error().Err(err).Msg("can't print profiler summary")
	}
}

// WriteSummary writes the call tree to w in the given format. It writes
// nothing when SCOPEPROF_ENABLED is false, and colors the text format when
// SCOPEPROF_COLOR is true.
func WriteSummary(w io.Writer, format Format) error {
	r := global()
	if !cfg.Enabled {
		return nil
	}
	return render.Write(w, r.Summary(), format, render.Options{Color: cfg.Color})
}

// Reset forgets every recorded scope. Scopes open at the time of the reset
// can no longer be exited.
func Reset() {
	global().Reset()
}
