package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	stealth "github.com/anatolykoptev/go-stealth"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMMaxTokens       int
	LLMClient          *llm.Client

	ListsAPIBase string // list-management API base URL; "" = list sync disabled

	TranscriptDir      string // directory for saved transcript files
	MaxTranscriptChars int    // transcript budget per extraction prompt

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient     *http.Client           // metadata and list API calls
	SubtitleClient *http.Client           // subtitle JSON fetches: 10s connect, 30s total
	BrowserClient  *stealth.BrowserClient // nil = watch page fetched with HTTPClient
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (youtube, transcriptserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

// ExtrasConfigured reports whether the extraction and list-sync features are
// usable. Both the LLM credential and the lists API base must be set; transcript
// retrieval itself needs neither.
func ExtrasConfigured() bool {
	return cfg.LLMAPIKey != "" && cfg.ListsAPIBase != ""
}
