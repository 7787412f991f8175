package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// PersonalList is one destination collection in the list-management API.
// Read-only from this system's perspective.
type PersonalList struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

// ListItem is one entry in a batch save request.
type ListItem struct {
	Content string `json:"content"`
	Notes   string `json:"notes"`
}

// SaveError reports a non-success response from the batch save endpoint.
type SaveError struct {
	StatusCode int
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("list API returned HTTP %d while saving items", e.StatusCode)
}

// FetchLists returns the caller's destination lists from the list-management
// API. An empty or failed fetch degrades to an empty slice — logged, never a
// hard error.
func FetchLists(ctx context.Context) []PersonalList {
	if cfg.ListsAPIBase == "" {
		return nil
	}
	metrics.ListFetches.Add(1)

	url := strings.TrimRight(cfg.ListsAPIBase, "/") + "/api/personal-lists"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("lists: bad request", slog.Any("error", err))
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		slog.Warn("lists: fetch failed", slog.Any("error", err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("lists: fetch failed", slog.Int("status", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		slog.Warn("lists: read failed", slog.Any("error", err))
		return nil
	}

	var lists []PersonalList
	if err := json.Unmarshal(body, &lists); err != nil {
		slog.Warn("lists: decode failed", slog.Any("error", err))
		return nil
	}
	return lists
}

// SaveItems POSTs items to a list as one atomic batch. The remote endpoint is
// all-or-nothing: a non-success response is surfaced as a SaveError with its
// status code, with no partial-success tracking.
func SaveItems(ctx context.Context, listID string, items []ListItem) error {
	if cfg.ListsAPIBase == "" {
		return fmt.Errorf("list API base URL is not configured")
	}
	if listID == "" {
		return fmt.Errorf("list ID is required")
	}
	if len(items) == 0 {
		return fmt.Errorf("no items to save")
	}
	metrics.ListSaves.Add(1)

	payload, err := json.Marshal(map[string][]ListItem{"items": items})
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}

	url := strings.TrimRight(cfg.ListsAPIBase, "/") + "/api/personal-lists/" + listID + "/items/batch"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build batch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("batch request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SaveError{StatusCode: resp.StatusCode}
	}
	return nil
}
