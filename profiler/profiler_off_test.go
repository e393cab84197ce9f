//go:build noprofile

package profiler

import (
	"bytes"
	"testing"
)

func TestDisabled(t *testing.T) {
	if Enabled {
		t.Fatal("expected the profiler to be disabled")
	}
	ran := false
	Do("foo", func() { ran = true })
	if !ran {
		t.Fatal("expected Do to run the block")
	}
	defer Scope("bar").Exit()
	if n := len(Snapshot().Entries); n != 0 {
		t.Fatalf("expected no entries, got %d", n)
	}
	var buf bytes.Buffer
	if err := WriteSummary(&buf, FormatText); err != nil || buf.Len() != 0 {
		t.Fatalf("expected no output, got %q (err %v)", buf.String(), err)
	}
}
