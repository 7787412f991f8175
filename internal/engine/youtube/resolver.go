package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// maxSubtitleBytes caps the subtitle JSON payload read.
const maxSubtitleBytes = 8 * 1024 * 1024

// subtitleRetryInterval is the initial backoff wait; tests shorten it.
var subtitleRetryInterval = 1 * time.Second

// Segment is one timed transcript line. Immutable once decoded.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // seconds
	Duration float64 `json:"duration"` // seconds
}

// Result is a successful transcript retrieval. A Result always carries at
// least one segment; an empty parse surfaces as KindEmptyTranscript instead.
type Result struct {
	Segments []Segment
	Message  string
}

// GetTranscript fetches and decodes the English transcript for a video.
// Failures come back as *Error with a Kind defined in errors.go.
func GetTranscript(ctx context.Context, videoID string) (*Result, *Error) {
	engine.IncrTranscriptRequests()

	md, err := FetchMetadata(ctx, videoID)
	if err != nil {
		return nil, ClassifyExtractorErr(err)
	}

	subtitleURL, yerr := selectSubtitleURL(md)
	if yerr != nil {
		return nil, yerr
	}

	payload, yerr := fetchSubtitleJSON(ctx, subtitleURL)
	if yerr != nil {
		return nil, yerr
	}

	segments, yerr := decodeSegments(payload)
	if yerr != nil {
		return nil, yerr
	}

	return &Result{
		Segments: segments,
		Message:  "Transcript retrieved successfully!",
	}, nil
}

// selectSubtitleURL picks the subtitle entry to download. Track selection
// precedes format selection: the manually-authored English track wins over
// the automatic one; within the selected track only the json3 entry is
// acceptable. A track with no json3 rendition is UnsupportedFormat, which is
// distinct from having no English track at all.
func selectSubtitleURL(md *Metadata) (string, *Error) {
	entries, ok := md.Subtitles["en"]
	if !ok || len(entries) == 0 {
		entries, ok = md.AutomaticCaptions["en"]
	}
	if !ok || len(entries) == 0 {
		return "", &Error{Kind: KindNoCaptions}
	}
	for _, e := range entries {
		if e.Ext == "json3" {
			return e.URL, nil
		}
	}
	return "", &Error{Kind: KindUnsupportedFormat}
}

// fetchSubtitleJSON GETs the subtitle payload with bounded exponential
// backoff: 3 total attempts, retrying 429/500/502/503/504 and transport
// errors; every other status is permanent and classified immediately.
func fetchSubtitleJSON(ctx context.Context, subtitleURL string) ([]byte, *Error) {
	engine.IncrSubtitleFetches()

	lastStatus := 0
	operation := func() ([]byte, error) {
		lastStatus = 0
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, subtitleURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", engine.UserAgentScraper)

		resp, err := engine.Cfg.SubtitleClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if engine.IsRetryableStatus(resp.StatusCode) {
			lastStatus = resp.StatusCode
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, backoff.Permanent(classifyStatus(resp.StatusCode))
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxSubtitleBytes))
		if err != nil {
			return nil, err
		}
		return body, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = subtitleRetryInterval
	bo.MaxInterval = 10 * time.Second

	body, err := backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3), backoff.WithMaxElapsedTime(90*time.Second))
	if err != nil {
		var yerr *Error
		if errors.As(err, &yerr) {
			return nil, yerr
		}
		if lastStatus != 0 {
			return nil, classifyStatus(lastStatus)
		}
		return nil, classifyTransportErr(err)
	}
	return body, nil
}
