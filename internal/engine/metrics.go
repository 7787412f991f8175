package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests atomic.Int64
	MetadataFetches    atomic.Int64
	SubtitleFetches    atomic.Int64
	SavedTranscripts   atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	ListFetches        atomic.Int64
	ListSaves          atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"metadata_fetches":    metrics.MetadataFetches.Load(),
		"subtitle_fetches":    metrics.SubtitleFetches.Load(),
		"saved_transcripts":   metrics.SavedTranscripts.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"list_fetches":        metrics.ListFetches.Load(),
		"list_saves":          metrics.ListSaves.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"transcript_requests", "metadata_fetches", "subtitle_fetches",
		"saved_transcripts",
		"llm_calls", "llm_errors",
		"list_fetches", "list_saves",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube sub-package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrMetadataFetches()    { metrics.MetadataFetches.Add(1) }
func IncrSubtitleFetches()    { metrics.SubtitleFetches.Add(1) }
func IncrSavedTranscripts()   { metrics.SavedTranscripts.Add(1) }
