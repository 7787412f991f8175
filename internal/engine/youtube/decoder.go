package youtube

import (
	"encoding/json"
	"strings"
)

// json3 subtitle payload: {"events": [{"tStartMs": ..., "dDurationMs": ...,
// "segs": [{"utf8": "..."}]}]}. All fields optional.

type timedTextPayload struct {
	Events []timedTextEvent `json:"events"`
}

type timedTextEvent struct {
	TStartMs    int64          `json:"tStartMs"`
	DDurationMs int64          `json:"dDurationMs"`
	Segs        []timedTextSeg `json:"segs"`
}

type timedTextSeg struct {
	UTF8 string `json:"utf8"`
}

// decodeSegments parses a json3 payload into ordered transcript segments.
// Events without segs, and events whose concatenated text is blank, are
// skipped — not an error. Segment order is the order emitted by the source;
// it is never re-sorted. Zero surviving segments is KindEmptyTranscript.
func decodeSegments(payload []byte) ([]Segment, *Error) {
	var tt timedTextPayload
	if err := json.Unmarshal(payload, &tt); err != nil {
		return nil, &Error{Kind: KindMalformedPayload, Detail: err.Error()}
	}

	var segments []Segment
	for _, event := range tt.Events {
		if len(event.Segs) == 0 {
			continue
		}
		var sb strings.Builder
		for _, seg := range event.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    float64(event.TStartMs) / 1000.0,
			Duration: float64(event.DDurationMs) / 1000.0,
		})
	}

	if len(segments) == 0 {
		return nil, &Error{Kind: KindEmptyTranscript}
	}
	return segments, nil
}
