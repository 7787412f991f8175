package transcriptserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/session"
	"github.com/anatolykoptev/go_transcript/internal/toolutil"
)

func registerListPersonalLists(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_personal_lists",
		Description: "List the destination collections available in the configured list-management API. Returns an empty list when the API is unreachable or not configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, engine.ListListsOutput, error) {
		cacheKey := engine.CacheKey("personal_lists", engine.Cfg.ListsAPIBase)
		if lists, ok := toolutil.CacheLoadJSON[[]engine.PersonalList](ctx, cacheKey); ok {
			return nil, engine.ListListsOutput{Lists: lists}, nil
		}

		lists := engine.FetchLists(ctx)
		if len(lists) > 0 {
			toolutil.CacheStoreJSON(ctx, cacheKey, lists)
		}
		return nil, engine.ListListsOutput{Lists: lists}, nil
	})
}

func registerSaveItems(server *mcp.Server, sessions *session.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_items",
		Description: "Save extracted items to a personal list as one atomic batch. Uses the items from the last extract_items call unless items are passed explicitly.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SaveItemsInput) (*mcp.CallToolResult, engine.SaveItemsOutput, error) {
		if input.ListID == "" {
			return nil, engine.SaveItemsOutput{}, fmt.Errorf("list_id is required")
		}
		if !engine.ExtrasConfigured() {
			return nil, engine.SaveItemsOutput{}, fmt.Errorf("list sync is not configured: set LLM_API_KEY and LISTS_API_BASE")
		}

		items := input.Items
		if len(items) == 0 {
			if st := sessions.Current(); st != nil {
				items = st.Items
			}
		}
		if len(items) == 0 {
			return nil, engine.SaveItemsOutput{}, fmt.Errorf("no items to save: run extract_items first or pass items explicitly")
		}

		batch := make([]engine.ListItem, 0, len(items))
		for _, item := range items {
			batch = append(batch, engine.ListItem{Content: item.Name, Notes: item.Notes})
		}

		if err := engine.SaveItems(ctx, input.ListID, batch); err != nil {
			slog.Warn("save_items failed", slog.String("list_id", input.ListID), slog.Any("error", err))
			return nil, engine.SaveItemsOutput{}, fmt.Errorf("failed to save items: %w", err)
		}

		slog.Info("items saved", slog.String("list_id", input.ListID), slog.Int("count", len(batch)))
		return nil, engine.SaveItemsOutput{
			ListID:  input.ListID,
			Saved:   len(batch),
			Message: fmt.Sprintf("Saved %d items.", len(batch)),
		}, nil
	})
}
