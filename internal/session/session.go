// Package session holds the per-session results of the most recent
// transcript extraction. One instance serves one user session and is passed
// explicitly to tool registration — there is no package-global state. The
// whole State is replaced on each new extraction, never patched in place.
package session

import (
	"sync"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/youtube"
)

// State is a snapshot of the latest extraction.
type State struct {
	VideoID   string
	URL       string
	Segments  []youtube.Segment
	PlainText string // plain-formatted transcript, used for LLM extraction
	ListName  string
	Items     []engine.ExtractedItem
}

// Store guards the current session state.
type Store struct {
	mu    sync.Mutex
	state *State
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the latest state, or nil when nothing was extracted yet.
func (s *Store) Current() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Replace swaps in a new state wholesale.
func (s *Store) Replace(st *State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}
