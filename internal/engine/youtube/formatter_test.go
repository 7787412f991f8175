package youtube

import "testing"

func TestFormatPlain(t *testing.T) {
	segments := []Segment{{Text: "a"}, {Text: "b"}}
	if got := Format(segments, false); got != "a b" {
		t.Errorf("Format() = %q, want %q", got, "a b")
	}
}

func TestFormatTimestamped(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		want  string
	}{
		{"zero", 0, "[00:00] x"},
		{"over a minute", 65, "[01:05] x"},
		{"fractional seconds floored", 65.9, "[01:05] x"},
		{"over ten minutes", 754, "[12:34] x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format([]Segment{{Text: "x", Start: tt.start}}, true)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTimestampedMultiline(t *testing.T) {
	segments := []Segment{
		{Text: "first", Start: 0},
		{Text: "second", Start: 61},
	}
	want := "[00:00] first\n[01:01] second"
	if got := Format(segments, true); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, false); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(nil, true); got != "" {
		t.Errorf("Format(nil, timestamps) = %q, want empty", got)
	}
}
