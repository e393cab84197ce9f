package speedscope

import "testing"

func TestBalanced(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   bool
	}{
		{
			name: "empty",
			want: true,
		},
		{
			name: "nested",
			events: []Event{
				{Type: EventTypeOpenFrame, Frame: 0, At: 0},
				{Type: EventTypeOpenFrame, Frame: 1, At: 0},
				{Type: EventTypeCloseFrame, Frame: 1, At: 10},
				{Type: EventTypeCloseFrame, Frame: 0, At: 20},
			},
			want: true,
		},
		{
			name: "crossed",
			events: []Event{
				{Type: EventTypeOpenFrame, Frame: 0, At: 0},
				{Type: EventTypeOpenFrame, Frame: 1, At: 0},
				{Type: EventTypeCloseFrame, Frame: 0, At: 10},
				{Type: EventTypeCloseFrame, Frame: 1, At: 20},
			},
			want: false,
		},
		{
			name: "left open",
			events: []Event{
				{Type: EventTypeOpenFrame, Frame: 0, At: 0},
			},
			want: false,
		},
		{
			name: "time goes backwards",
			events: []Event{
				{Type: EventTypeOpenFrame, Frame: 0, At: 10},
				{Type: EventTypeCloseFrame, Frame: 0, At: 5},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (EventedProfile{Events: tt.events}).Balanced(); got != tt.want {
				t.Fatalf("wanted: %v, got: %v", tt.want, got)
			}
		})
	}
}
