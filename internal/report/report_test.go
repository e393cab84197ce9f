package report

import (
	"testing"
	"time"

	"github.com/getsentry/scopeprof/internal/testutil"
)

func TestTree(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    []*Node
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "two roots",
			entries: []Entry{
				{Depth: 0, Name: "foo", Count: 1, Elapsed: 100},
				{Depth: 0, Name: "bar", Count: 1, Elapsed: 50},
			},
			want: []*Node{
				{Name: "foo", Count: 1, ElapsedNS: 100},
				{Name: "bar", Count: 1, ElapsedNS: 50},
			},
		},
		{
			name: "nested",
			entries: []Entry{
				{Depth: 0, Name: "foo", Count: 2, Elapsed: 300},
				{Depth: 1, Name: "foo-inner", Count: 2, Elapsed: 200},
				{Depth: 2, Name: "foo-inner-inner", Count: 2, Elapsed: 100},
				{Depth: 1, Name: "foo-double", Count: 2, Elapsed: 50},
				{Depth: 0, Name: "bar", Count: 1, Elapsed: 20},
				{Depth: 1, Name: "bar-inner", Count: 1, Elapsed: 10},
			},
			want: []*Node{
				{
					Name: "foo", Count: 2, ElapsedNS: 300,
					Children: []*Node{
						{
							Name: "foo-inner", Count: 2, ElapsedNS: 200,
							Children: []*Node{
								{Name: "foo-inner-inner", Count: 2, ElapsedNS: 100},
							},
						},
						{Name: "foo-double", Count: 2, ElapsedNS: 50},
					},
				},
				{
					Name: "bar", Count: 1, ElapsedNS: 20,
					Children: []*Node{
						{Name: "bar-inner", Count: 1, ElapsedNS: 10},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Report{Entries: tt.entries}.Tree()
			if diff := testutil.Diff(got, tt.want); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	r := Report{Entries: []Entry{
		{Depth: 0, Name: "foo", Elapsed: 300 * time.Millisecond},
		{Depth: 1, Name: "foo-inner", Elapsed: 100 * time.Millisecond},
		{Depth: 0, Name: "bar", Elapsed: 200 * time.Millisecond},
	}}
	if got := r.Total(); got != 500*time.Millisecond {
		t.Fatalf("wanted: %v, got: %v", 500*time.Millisecond, got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatText, FormatJSON, FormatSpeedscope} {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", f, err)
		}
		if got != f {
			t.Fatalf("wanted: %v, got: %v", f, got)
		}
	}
	if got, err := ParseFormat("JSON"); err != nil || got != FormatJSON {
		t.Fatalf("wanted json, got %v (err %v)", got, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
