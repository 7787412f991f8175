package youtube

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind classifies a transcript retrieval failure.
type Kind string

const (
	KindInvalidURL        Kind = "invalid_url"
	KindNoCaptions        Kind = "no_captions"
	KindUnsupportedFormat Kind = "unsupported_format"
	KindTimeout           Kind = "timeout"
	KindConnectionFailed  Kind = "connection_failed"
	KindRateLimited       Kind = "rate_limited"
	KindAccessDenied      Kind = "access_denied"
	KindHTTPError         Kind = "http_error"
	KindMalformedPayload  Kind = "malformed_payload"
	KindEmptyTranscript   Kind = "empty_transcript"
	KindVideoUnavailable  Kind = "video_unavailable"
	KindUnknown           Kind = "unknown"
)

// Error is a Kind-tagged retrieval failure with a user-facing message.
type Error struct {
	Kind   Kind
	Detail string // extractor message for KindUnknown, extra context otherwise
	Code   int    // HTTP status for KindHTTPError
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return "Invalid YouTube URL format. Please check the URL and try again."
	case KindNoCaptions:
		return "No English transcript or captions available for this video."
	case KindUnsupportedFormat:
		return "JSON subtitle format not available. This video may only have VTT/SRT captions."
	case KindTimeout:
		return "Connection timed out while fetching subtitles. Please try again."
	case KindConnectionFailed:
		return "Network connection failed. Please check your internet connection."
	case KindRateLimited:
		return "Rate limited by YouTube. Please wait a few minutes and try again."
	case KindAccessDenied:
		return "Access denied. Video may be age-restricted or geo-blocked."
	case KindHTTPError:
		return fmt.Sprintf("HTTP error %d while fetching subtitles.", e.Code)
	case KindMalformedPayload:
		return "Invalid subtitle format received."
	case KindEmptyTranscript:
		return "Could not parse transcript data."
	case KindVideoUnavailable:
		return "Video is unavailable. It may be private, deleted, or restricted."
	default:
		return "Error: " + e.Detail
	}
}

// classifyTransportErr maps a transport-level error from the subtitle fetch
// to Timeout or ConnectionFailed.
func classifyTransportErr(err error) *Error {
	var yerr *Error
	if errors.As(err, &yerr) {
		return yerr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Detail: err.Error()}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Detail: err.Error()}
	}
	return &Error{Kind: KindConnectionFailed, Detail: err.Error()}
}

// classifyStatus maps a non-success HTTP status from the subtitle fetch.
func classifyStatus(code int) *Error {
	switch code {
	case 429:
		return &Error{Kind: KindRateLimited, Code: code}
	case 403:
		return &Error{Kind: KindAccessDenied, Code: code}
	default:
		return &Error{Kind: KindHTTPError, Code: code}
	}
}

// ClassifyExtractorErr maps an error raised while obtaining video metadata.
// Messages mentioning a private or removed video become VideoUnavailable;
// everything else is Unknown with the message preserved.
func ClassifyExtractorErr(err error) *Error {
	var yerr *Error
	if errors.As(err, &yerr) {
		return yerr
	}
	msg := err.Error()
	if strings.Contains(msg, "Private video") || strings.Contains(msg, "This video is unavailable") {
		return &Error{Kind: KindVideoUnavailable, Detail: msg}
	}
	return &Error{Kind: KindUnknown, Detail: msg}
}
