package profiler

import (
	"github.com/getsentry/scopeprof/internal/errorutil"
	"github.com/getsentry/scopeprof/internal/registry"
	"github.com/getsentry/scopeprof/internal/report"
)

type (
	// Guard keeps a scope open until its Exit method is called.
	Guard = registry.Guard
	// Report is the call tree flattened depth-first.
	Report = report.Report
	// Entry is one node of a Report.
	Entry  = report.Entry
	Format = report.Format
)

const (
	FormatText       = report.FormatText
	FormatJSON       = report.FormatJSON
	FormatSpeedscope = report.FormatSpeedscope
)

// ErrContractViolation is wrapped by every error the profiler panics with.
var ErrContractViolation = errorutil.ErrContractViolation

// ParseFormat converts "text", "json" or "speedscope" to a Format.
func ParseFormat(s string) (Format, error) {
	return report.ParseFormat(s)
}
