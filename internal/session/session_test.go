package session

import (
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine/youtube"
)

func TestStoreReplaceWholesale(t *testing.T) {
	s := NewStore()
	if s.Current() != nil {
		t.Fatal("fresh store should have no state")
	}

	first := &State{
		VideoID:   "abc",
		ListName:  "Books",
		Segments:  []youtube.Segment{{Text: "hi"}},
		PlainText: "hi",
	}
	s.Replace(first)
	if got := s.Current(); got.VideoID != "abc" || got.ListName != "Books" {
		t.Errorf("unexpected state after replace: %+v", got)
	}

	// Replacing drops everything from the previous state, including fields
	// the new state leaves unset.
	s.Replace(&State{VideoID: "def", PlainText: "other"})
	got := s.Current()
	if got.VideoID != "def" {
		t.Errorf("video id = %q, want %q", got.VideoID, "def")
	}
	if got.ListName != "" || got.Items != nil {
		t.Errorf("stale fields survived replace: %+v", got)
	}
}
