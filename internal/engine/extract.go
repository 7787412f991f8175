package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ExtractedItem is one item pulled out of a transcript by the LLM.
// Notes always ends with a "Source: <video URL>" line, appended here —
// never by the model.
type ExtractedItem struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// ExtractionParseError reports a model response that was not a valid JSON array.
type ExtractionParseError struct {
	Raw string
}

func (e *ExtractionParseError) Error() string {
	return fmt.Sprintf("could not parse extraction response as JSON: %s", Truncate(e.Raw, 200))
}

// SelectHints picks the extraction hint and item hint for a list name using
// the ordered category rules. First keyword match wins; no match falls back
// to the generic "notable items" hints.
func SelectHints(listName string) (hint, itemHint string) {
	name := strings.ToLower(listName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.hint, rule.itemHint
			}
		}
	}
	return defaultHint, defaultItemHint
}

// ExtractItems sends the transcript through the LLM and parses the response
// into normalized items. The canonical video URL is appended to each item's
// notes as a "Source:" line.
func ExtractItems(ctx context.Context, transcript, listName, videoURL string) ([]ExtractedItem, error) {
	hint, itemHint := SelectHints(listName)

	note := ""
	if utf8.RuneCountInString(transcript) > cfg.MaxTranscriptChars {
		transcript = TruncateRunes(transcript, cfg.MaxTranscriptChars, "")
		note = truncationNote
	}

	prompt := fmt.Sprintf(extractPrompt, hint, listName, itemHint, note, transcript)

	raw, err := CallLLM(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}

	return ParseItems(raw, videoURL)
}

// ParseItems normalizes a model response into ExtractedItems. Entries may be
// objects with a name field or bare strings; anything else in the array is
// skipped. Malformed JSON yields an ExtractionParseError.
func ParseItems(raw, videoURL string) ([]ExtractedItem, error) {
	raw = stripFences(raw)

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, &ExtractionParseError{Raw: raw}
	}

	sourceLine := "Source: " + videoURL

	items := make([]ExtractedItem, 0, len(entries))
	for _, entry := range entries {
		var item ExtractedItem
		if err := json.Unmarshal(entry, &item); err != nil {
			// Bare string entry: treat the string as the name.
			var name string
			if err := json.Unmarshal(entry, &name); err != nil {
				continue
			}
			item = ExtractedItem{Name: name}
		}
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		item.Notes = strings.TrimSpace(item.Notes)
		if item.Notes != "" {
			item.Notes += "\n"
		}
		item.Notes += sourceLine
		items = append(items, item)
	}
	return items, nil
}
