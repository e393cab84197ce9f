package flamegraph

import (
	"testing"

	"github.com/getsentry/scopeprof/internal/report"
	"github.com/getsentry/scopeprof/internal/speedscope"
	"github.com/getsentry/scopeprof/internal/testutil"
)

func TestToSpeedscope(t *testing.T) {
	tests := []struct {
		name       string
		entries    []report.Entry
		wantFrames []speedscope.Frame
		wantEvents []speedscope.Event
		wantEnd    uint64
	}{
		{
			name:       "empty report",
			wantFrames: []speedscope.Frame{},
			wantEvents: []speedscope.Event{},
		},
		{
			name: "children laid out sequentially",
			entries: []report.Entry{
				{Depth: 0, Name: "foo", Count: 2, Elapsed: 300},
				{Depth: 1, Name: "foo-inner", Count: 2, Elapsed: 100},
				{Depth: 1, Name: "foo-double", Count: 2, Elapsed: 50},
				{Depth: 0, Name: "bar", Count: 1, Elapsed: 200},
			},
			wantFrames: []speedscope.Frame{
				{Name: "foo"},
				{Name: "foo-inner"},
				{Name: "foo-double"},
				{Name: "bar"},
			},
			wantEvents: []speedscope.Event{
				{Type: speedscope.EventTypeOpenFrame, Frame: 0, At: 0},
				{Type: speedscope.EventTypeOpenFrame, Frame: 1, At: 0},
				{Type: speedscope.EventTypeCloseFrame, Frame: 1, At: 100},
				{Type: speedscope.EventTypeOpenFrame, Frame: 2, At: 100},
				{Type: speedscope.EventTypeCloseFrame, Frame: 2, At: 150},
				{Type: speedscope.EventTypeCloseFrame, Frame: 0, At: 300},
				{Type: speedscope.EventTypeOpenFrame, Frame: 3, At: 300},
				{Type: speedscope.EventTypeCloseFrame, Frame: 3, At: 500},
			},
			wantEnd: 500,
		},
		{
			name: "same label under two parents shares a frame",
			entries: []report.Entry{
				{Depth: 0, Name: "a", Count: 1, Elapsed: 10},
				{Depth: 1, Name: "x", Count: 1, Elapsed: 5},
				{Depth: 0, Name: "b", Count: 1, Elapsed: 10},
				{Depth: 1, Name: "x", Count: 1, Elapsed: 5},
			},
			wantFrames: []speedscope.Frame{
				{Name: "a"},
				{Name: "x"},
				{Name: "b"},
			},
			wantEvents: []speedscope.Event{
				{Type: speedscope.EventTypeOpenFrame, Frame: 0, At: 0},
				{Type: speedscope.EventTypeOpenFrame, Frame: 1, At: 0},
				{Type: speedscope.EventTypeCloseFrame, Frame: 1, At: 5},
				{Type: speedscope.EventTypeCloseFrame, Frame: 0, At: 10},
				{Type: speedscope.EventTypeOpenFrame, Frame: 2, At: 10},
				{Type: speedscope.EventTypeOpenFrame, Frame: 1, At: 10},
				{Type: speedscope.EventTypeCloseFrame, Frame: 1, At: 15},
				{Type: speedscope.EventTypeCloseFrame, Frame: 2, At: 20},
			},
			wantEnd: 20,
		},
		{
			name: "parent stretched to cover its children",
			entries: []report.Entry{
				{Depth: 0, Name: "open", Count: 0, Elapsed: 0},
				{Depth: 1, Name: "done", Count: 1, Elapsed: 40},
			},
			wantFrames: []speedscope.Frame{
				{Name: "open"},
				{Name: "done"},
			},
			wantEvents: []speedscope.Event{
				{Type: speedscope.EventTypeOpenFrame, Frame: 0, At: 0},
				{Type: speedscope.EventTypeOpenFrame, Frame: 1, At: 0},
				{Type: speedscope.EventTypeCloseFrame, Frame: 1, At: 40},
				{Type: speedscope.EventTypeCloseFrame, Frame: 0, At: 40},
			},
			wantEnd: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ToSpeedscope(report.Report{ID: "run", Entries: tt.entries})
			if len(out.Profiles) != 1 {
				t.Fatalf("wanted 1 profile, got %d", len(out.Profiles))
			}
			p := out.Profiles[0]
			if diff := testutil.Diff(out.Shared.Frames, tt.wantFrames); diff != "" {
				t.Fatalf("Frames mismatch: got - want +\n%s", diff)
			}
			if diff := testutil.Diff(p.Events, tt.wantEvents); diff != "" {
				t.Fatalf("Events mismatch: got - want +\n%s", diff)
			}
			if p.EndValue != tt.wantEnd {
				t.Fatalf("wanted end value %d, got %d", tt.wantEnd, p.EndValue)
			}
			if !p.Balanced() {
				t.Fatal("expected balanced events")
			}
		})
	}
}
