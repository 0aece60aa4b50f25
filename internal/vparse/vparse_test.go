package vparse

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Components
	}{
		{
			name: "plain three segments",
			raw:  "0.5.2",
			want: Components{Major: "0", Minor: "5", Patch: "2"},
		},
		{
			name: "describe suffix collapses into components",
			raw:  "0.5-2-034f",
			want: Components{Major: "0", Minor: "5", Patch: "2"},
		},
		{
			name: "distance and hash dropped past third token",
			raw:  "1.2.3-4-abcd",
			want: Components{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name: "dirty suffix dropped",
			raw:  "1.2.3-dirty",
			want: Components{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name: "two segments leave patch empty",
			raw:  "1.2",
			want: Components{Major: "1", Minor: "2", Patch: ""},
		},
		{
			name: "single segment",
			raw:  "7",
			want: Components{Major: "7", Minor: "", Patch: ""},
		},
		{
			name: "unknown sentinel propagates",
			raw:  Unknown,
			want: Components{Major: Unknown, Minor: Unknown, Patch: Unknown},
		},
		{
			name: "empty string yields empty components",
			raw:  "",
			want: Components{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.raw)
			if got != tt.want {
				t.Errorf("Split(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
