package youtube

import (
	"fmt"
	"strings"
)

// Format renders segments as readable text. Plain mode joins segment texts
// with single spaces; timestamped mode emits one "[MM:SS] text" line per
// segment. Neither mode merges or reorders segments.
func Format(segments []Segment, includeTimestamps bool) string {
	if includeTimestamps {
		lines := make([]string, 0, len(segments))
		for _, seg := range segments {
			s := int(seg.Start)
			lines = append(lines, fmt.Sprintf("[%02d:%02d] %s", s/60, s%60, seg.Text))
		}
		return strings.Join(lines, "\n")
	}

	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	return strings.Join(texts, " ")
}
