package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"github.com/getsentry/scopeprof/internal/errorutil"
	"github.com/getsentry/scopeprof/internal/flamegraph"
	"github.com/getsentry/scopeprof/internal/report"
	"github.com/getsentry/scopeprof/internal/timeutil"
)

// Options tune the text renderer. The other formats ignore them.
type Options struct {
	Color bool
}

// Write renders r to w in the requested format.
func Write(w io.Writer, r report.Report, format report.Format, opts Options) error {
	switch format {
	case report.FormatText:
		return Text(w, r, opts)
	case report.FormatJSON:
		return JSON(w, r)
	case report.FormatSpeedscope:
		return Speedscope(w, r)
	default:
		return fmt.Errorf("render: unknown format %v", format)
	}
}

const indentWidth = 2

// Text writes one line per node, indented by depth:
//
//	scope            count     elapsed
//	foo                  2   300.00 ms
//	  foo-inner          2   100.00 ms
func Text(w io.Writer, r report.Report, opts Options) error {
	if len(r.Entries) == 0 {
		_, err := io.WriteString(w, "no scopes recorded\n")
		return err
	}

	header := color.New(color.Bold)
	root := color.New(color.FgCyan, color.Bold)
	child := color.New(color.FgCyan)
	count := color.New(color.FgYellow)
	elapsed := color.New(color.FgGreen)
	if opts.Color {
		for _, c := range []*color.Color{header, root, child, count, elapsed} {
			c.EnableColor()
		}
	} else {
		for _, c := range []*color.Color{header, root, child, count, elapsed} {
			c.DisableColor()
		}
	}

	width := runewidth.StringWidth("scope")
	for _, e := range r.Entries {
		if lw := e.Depth*indentWidth + runewidth.StringWidth(e.Name); lw > width {
			width = lw
		}
	}

	var sb strings.Builder
	sb.WriteString(header.Sprint(runewidth.FillRight("scope", width)))
	sb.WriteString(header.Sprintf(" %8s %12s\n", "count", "elapsed"))
	for _, e := range r.Entries {
		label := strings.Repeat(" ", e.Depth*indentWidth) + e.Name
		padding := strings.Repeat(" ", width-runewidth.StringWidth(label))
		name := child
		if e.Depth == 0 {
			name = root
		}
		sb.WriteString(name.Sprint(label))
		sb.WriteString(padding)
		sb.WriteString(count.Sprintf(" %8d", e.Count))
		sb.WriteString(elapsed.Sprintf(" %9.2f ms", timeutil.ToMillis(e.Elapsed)))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonReport struct {
	ID       string         `json:"id"`
	TotalNS  int64          `json:"total_ns"`
	Children []*report.Node `json:"children"`
}

// JSON writes the report as a nested tree.
func JSON(w io.Writer, r report.Report) error {
	children := r.Tree()
	if children == nil {
		children = []*report.Node{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		ID:       r.ID,
		TotalNS:  int64(r.Total()),
		Children: children,
	})
}

// Speedscope writes the report as a speedscope evented profile.
func Speedscope(w io.Writer, r report.Report) error {
	o := flamegraph.ToSpeedscope(r)
	for _, p := range o.Profiles {
		if !p.Balanced() {
			return fmt.Errorf("render: %w: profile %q has unbalanced frame events", errorutil.ErrDataIntegrity, p.Name)
		}
	}
	return json.NewEncoder(w).Encode(o)
}
