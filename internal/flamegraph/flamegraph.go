package flamegraph

import (
	"github.com/getsentry/scopeprof/internal/report"
	"github.com/getsentry/scopeprof/internal/speedscope"
)

const exporter = "scopeprof"

type flamegraph struct {
	frames      []speedscope.Frame
	framesIndex map[string]int
	events      []speedscope.Event
	endValue    uint64
}

// ToSpeedscope lays the aggregated call tree out as a single evented profile.
// Each node opens where its previous sibling closed (or where its parent
// opened) and stays open for its aggregated elapsed time. Aggregation loses the
// real timeline, so a node whose children add up to more than its own time is
// stretched to cover them.
func ToSpeedscope(r report.Report) speedscope.Output {
	f := &flamegraph{
		frames:      make([]speedscope.Frame, 0),
		framesIndex: make(map[string]int),
		events:      make([]speedscope.Event, 0, 2*len(r.Entries)),
	}
	var cursor uint64
	for _, root := range r.Tree() {
		cursor = f.visit(root, cursor)
	}
	f.endValue = cursor

	return speedscope.Output{
		Schema:   speedscope.Schema,
		Exporter: exporter,
		Name:     r.ID,
		Profiles: []speedscope.EventedProfile{
			{
				EndValue:   f.endValue,
				Events:     f.events,
				Name:       r.ID,
				StartValue: 0,
				Type:       speedscope.ProfileTypeEvented,
				Unit:       speedscope.ValueUnitNanoseconds,
			},
		},
		Shared: speedscope.SharedData{
			Frames: f.frames,
		},
	}
}

func (f *flamegraph) frameIndex(name string) int {
	if i, exists := f.framesIndex[name]; exists {
		return i
	}
	i := len(f.frames)
	f.framesIndex[name] = i
	f.frames = append(f.frames, speedscope.Frame{Name: name})
	return i
}

// visit emits the events of n starting at `at` and returns where n closes.
func (f *flamegraph) visit(n *report.Node, at uint64) uint64 {
	frame := f.frameIndex(n.Name)
	f.events = append(f.events, speedscope.Event{Type: speedscope.EventTypeOpenFrame, Frame: frame, At: at})

	cursor := at
	for _, child := range n.Children {
		cursor = f.visit(child, cursor)
	}

	end := at
	if n.ElapsedNS > 0 {
		end += uint64(n.ElapsedNS)
	}
	if end < cursor {
		end = cursor
	}
	f.events = append(f.events, speedscope.Event{Type: speedscope.EventTypeCloseFrame, Frame: frame, At: end})
	return end
}
