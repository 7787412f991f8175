package engine

// --- Tool input types ---

type TranscriptInput struct {
	URL               string `json:"url" jsonschema:"YouTube video URL (watch, youtu.be, or embed form)"`
	IncludeTimestamps bool   `json:"include_timestamps,omitempty" jsonschema:"Prefix each line with a [MM:SS] timestamp"`
	Save              bool   `json:"save,omitempty" jsonschema:"Also save the transcript as a text file under the transcripts directory"`
}

type ExtractInput struct {
	URL      string `json:"url,omitempty" jsonschema:"Video URL; omit to reuse the transcript from the last get_transcript call"`
	ListName string `json:"list_name" jsonschema:"Destination list name — used to decide what kind of items to extract (restaurants, recipes, books, movies, drinks)"`
}

type SaveItemsInput struct {
	ListID string          `json:"list_id" jsonschema:"Destination list ID (see list_personal_lists)"`
	Items  []ExtractedItem `json:"items,omitempty" jsonschema:"Items to save; omit to save the items from the last extract_items call"`
}

// --- Tool output types (JSON responses) ---

type TranscriptOutput struct {
	VideoID    string `json:"video_id"`
	URL        string `json:"url"`
	Transcript string `json:"transcript"`
	WordCount  int    `json:"word_count"`
	SavedTo    string `json:"saved_to,omitempty"`
	Message    string `json:"message"`
}

type ExtractOutput struct {
	VideoID  string          `json:"video_id"`
	URL      string          `json:"url"`
	ListName string          `json:"list_name"`
	Items    []ExtractedItem `json:"items"`
}

type ListListsOutput struct {
	Lists []PersonalList `json:"lists"`
}

type SaveItemsOutput struct {
	ListID  string `json:"list_id"`
	Saved   int    `json:"saved"`
	Message string `json:"message"`
}
