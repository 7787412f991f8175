// Package transcriptserver wires the transcript pipeline into MCP tools:
// get_transcript, extract_items, list_personal_lists, save_items.
package transcriptserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/session"
)

// RegisterTools registers all transcript tools on the given MCP server.
// The session store carries the latest transcript and extracted items between
// tool calls; it is replaced wholesale on each new extraction.
func RegisterTools(server *mcp.Server, sessions *session.Store) {
	registerGetTranscript(server, sessions)
	registerExtractItems(server, sessions)
	registerListPersonalLists(server)
	registerSaveItems(server, sessions)
}
