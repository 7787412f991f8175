package engine

// LLM prompt templates and category rules — data only, no logic.

// categoryRule maps list-name keywords to extraction hints.
// Rules are tried in order; the first rule with a matching keyword wins.
type categoryRule struct {
	keywords []string
	hint     string // what the model should look for
	itemHint string // how to describe one item
}

// categoryRules is an ordered first-match-wins rule list, not a dispatch hierarchy.
var categoryRules = []categoryRule{
	{
		keywords: []string{"restaurant", "food", "eat", "dining", "cafe", "brunch"},
		hint:     "restaurants, cafes, food spots, and specific dishes worth ordering",
		itemHint: "a restaurant or food spot (use the exact name mentioned)",
	},
	{
		keywords: []string{"recipe", "cook", "baking", "meal"},
		hint:     "recipes and dishes being prepared, with key ingredients or techniques",
		itemHint: "a recipe or dish",
	},
	{
		keywords: []string{"book", "read", "reading", "novel"},
		hint:     "books, authors, and written works recommended or discussed",
		itemHint: "a book (include the author in notes when mentioned)",
	},
	{
		keywords: []string{"movie", "film", "show", "series", "watch"},
		hint:     "movies, TV shows, and series recommended or discussed",
		itemHint: "a movie or show",
	},
	{
		keywords: []string{"drink", "bar", "cocktail", "wine", "coffee", "beer"},
		hint:     "drinks, bars, and drinking spots mentioned",
		itemHint: "a drink or bar",
	},
}

// defaultHint is used when no category keyword matches the list name.
const (
	defaultHint     = "notable items mentioned that someone would want to remember"
	defaultItemHint = "a notable item"
)

// extractPrompt asks for a bare JSON array of {name, notes} items.
// Args: extraction hint, list name, item hint, truncation note, transcript.
const extractPrompt = `Extract %s from the following YouTube video transcript. The results will be saved to a list called "%s".

Respond with ONLY a JSON array — no markdown fence, no commentary:
[{"name": "...", "notes": "..."}]

Rules:
- Each entry is %s
- name: short and specific, exactly as mentioned in the transcript
- notes: one sentence of useful context from the transcript (why it was mentioned, what was said about it)
- Only include items actually mentioned — do NOT invent entries
- If nothing qualifies, return []

%sTranscript:
%s`

// truncationNote is inserted into the prompt when the transcript was cut
// to fit the character budget.
const truncationNote = "Note: the transcript was truncated to fit the size limit; extract from the portion below.\n\n"
