package transcriptserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/session"
)

func registerExtractItems(server *mcp.Server, sessions *session.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_items",
		Description: "Extract structured items (restaurants, recipes, books, movies, drinks, or other notables) from a video transcript using the LLM. The destination list name decides what kind of items to look for. Reuses the transcript from the last get_transcript call when no URL is given.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ExtractInput) (*mcp.CallToolResult, engine.ExtractOutput, error) {
		if input.ListName == "" {
			return nil, engine.ExtractOutput{}, fmt.Errorf("list_name is required")
		}
		if !engine.ExtrasConfigured() {
			return nil, engine.ExtractOutput{}, fmt.Errorf("extraction is not configured: set LLM_API_KEY and LISTS_API_BASE")
		}

		st, err := fetchPlainTranscript(ctx, sessions, input.URL)
		if err != nil {
			return nil, engine.ExtractOutput{}, err
		}

		items, err := engine.ExtractItems(ctx, st.PlainText, input.ListName, st.URL)
		if err != nil {
			slog.Warn("extract_items failed",
				slog.String("video_id", st.VideoID),
				slog.Any("error", err))
			return nil, engine.ExtractOutput{}, err
		}

		sessions.Replace(&session.State{
			VideoID:   st.VideoID,
			URL:       st.URL,
			Segments:  st.Segments,
			PlainText: st.PlainText,
			ListName:  input.ListName,
			Items:     items,
		})

		slog.Info("items extracted",
			slog.String("video_id", st.VideoID),
			slog.String("list", input.ListName),
			slog.Int("count", len(items)))
		return nil, engine.ExtractOutput{
			VideoID:  st.VideoID,
			URL:      st.URL,
			ListName: input.ListName,
			Items:    items,
		}, nil
	})
}
