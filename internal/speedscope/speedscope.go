package speedscope

const (
	Schema = "https://www.speedscope.app/file-format-schema.json"

	ValueUnitNanoseconds ValueUnit = "nanoseconds"

	EventTypeOpenFrame  EventType = "O"
	EventTypeCloseFrame EventType = "C"

	ProfileTypeEvented ProfileType = "evented"
)

type (
	Frame struct {
		Name string `json:"name"`
	}

	Event struct {
		Type  EventType `json:"type"`
		Frame int       `json:"frame"`
		At    uint64    `json:"at"`
	}

	EventedProfile struct {
		EndValue   uint64      `json:"endValue"`
		Events     []Event     `json:"events"`
		Name       string      `json:"name"`
		StartValue uint64      `json:"startValue"`
		Type       ProfileType `json:"type"`
		Unit       ValueUnit   `json:"unit"`
	}

	SharedData struct {
		Frames []Frame `json:"frames"`
	}

	EventType   string
	ProfileType string
	ValueUnit   string

	Output struct {
		Schema             string           `json:"$schema"`
		ActiveProfileIndex int              `json:"activeProfileIndex"`
		Exporter           string           `json:"exporter"`
		Name               string           `json:"name"`
		Profiles           []EventedProfile `json:"profiles"`
		Shared             SharedData       `json:"shared"`
	}
)

// Balanced reports whether every close event matches the most recent
// unmatched open event and no frame is left open.
func (p EventedProfile) Balanced() bool {
	var open []int
	var last uint64
	for _, ev := range p.Events {
		if ev.At < last {
			return false
		}
		last = ev.At
		switch ev.Type {
		case EventTypeOpenFrame:
			open = append(open, ev.Frame)
		case EventTypeCloseFrame:
			if len(open) == 0 || open[len(open)-1] != ev.Frame {
				return false
			}
			open = open[:len(open)-1]
		}
	}
	return len(open) == 0
}
