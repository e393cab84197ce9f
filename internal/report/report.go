package report

import (
	"fmt"
	"strings"
	"time"
)

type (
	// Entry is one node of the call tree, as seen by a depth-first traversal.
	Entry struct {
		Depth   int           `json:"depth"`
		Name    string        `json:"name"`
		Count   uint64        `json:"count"`
		Elapsed time.Duration `json:"elapsed_ns"`
	}

	// Report lists every node of a registry in depth-first order, siblings in
	// first-seen order.
	Report struct {
		ID         string    `json:"id"`
		CapturedAt time.Time `json:"captured_at"`
		Entries    []Entry   `json:"entries"`
	}

	// Node is an entry nested back into a tree.
	Node struct {
		Name      string  `json:"name"`
		Count     uint64  `json:"count"`
		ElapsedNS int64   `json:"elapsed_ns"`
		Children  []*Node `json:"children,omitempty"`
	}
)

// Tree rebuilds the call tree from the depth annotations of the entries.
func (r Report) Tree() []*Node {
	var roots []*Node
	var path []*Node
	for _, e := range r.Entries {
		n := &Node{Name: e.Name, Count: e.Count, ElapsedNS: int64(e.Elapsed)}
		if e.Depth > len(path) {
			// a gap in depth cannot come from a traversal; attach to the deepest open node
			e.Depth = len(path)
		}
		path = path[:e.Depth]
		if e.Depth == 0 {
			roots = append(roots, n)
		} else {
			parent := path[e.Depth-1]
			parent.Children = append(parent.Children, n)
		}
		path = append(path, n)
	}
	return roots
}

// Total is the sum of the elapsed time of the top-level entries.
func (r Report) Total() time.Duration {
	var total time.Duration
	for _, e := range r.Entries {
		if e.Depth == 0 {
			total += e.Elapsed
		}
	}
	return total
}

// Format selects a renderer.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
	FormatSpeedscope
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatSpeedscope:
		return "speedscope"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "speedscope":
		return FormatSpeedscope, nil
	default:
		return FormatText, fmt.Errorf("invalid report format: %q (expected: text|json|speedscope)", s)
	}
}
