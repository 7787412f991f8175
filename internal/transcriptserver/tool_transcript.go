package transcriptserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/youtube"
	"github.com/anatolykoptev/go_transcript/internal/session"
)

func registerGetTranscript(server *mcp.Server, sessions *session.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch the English transcript of a YouTube video as plain or timestamped text. Accepts watch, youtu.be, and embed URLs. Prefers manually-authored captions over auto-generated ones. Optionally saves the transcript to a text file.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptOutput, error) {
		if input.URL == "" {
			return nil, engine.TranscriptOutput{}, fmt.Errorf("url is required")
		}

		videoID, ok := youtube.ExtractVideoID(input.URL)
		if !ok {
			return nil, engine.TranscriptOutput{}, &youtube.Error{Kind: youtube.KindInvalidURL}
		}

		result, yerr := youtube.GetTranscript(ctx, videoID)
		if yerr != nil {
			slog.Warn("get_transcript failed",
				slog.String("video_id", videoID),
				slog.String("kind", string(yerr.Kind)))
			return nil, engine.TranscriptOutput{}, yerr
		}

		text := youtube.Format(result.Segments, input.IncludeTimestamps)

		out := engine.TranscriptOutput{
			VideoID:    videoID,
			URL:        youtube.WatchURL(videoID),
			Transcript: text,
			WordCount:  engine.WordCount(text),
			Message:    result.Message,
		}

		if input.Save {
			path, err := youtube.SaveTranscript(videoID, text, engine.Cfg.TranscriptDir)
			if err != nil {
				slog.Warn("transcript save failed", slog.String("video_id", videoID), slog.Any("error", err))
				out.Message += fmt.Sprintf(" (could not save to file: %v)", err)
			} else {
				out.SavedTo = path
			}
		}

		sessions.Replace(&session.State{
			VideoID:   videoID,
			URL:       out.URL,
			Segments:  result.Segments,
			PlainText: youtube.Format(result.Segments, false),
		})

		slog.Info("transcript fetched",
			slog.String("video_id", videoID),
			slog.Int("segments", len(result.Segments)),
			slog.Int("words", out.WordCount))
		return nil, out, nil
	})
}

// fetchPlainTranscript resolves a video URL to its plain-formatted transcript,
// reusing the session state when it already holds this video.
func fetchPlainTranscript(ctx context.Context, sessions *session.Store, rawURL string) (*session.State, error) {
	if rawURL == "" {
		st := sessions.Current()
		if st == nil || st.PlainText == "" {
			return nil, errors.New("no transcript in this session yet: call get_transcript first or pass a url")
		}
		return st, nil
	}

	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return nil, &youtube.Error{Kind: youtube.KindInvalidURL}
	}

	if st := sessions.Current(); st != nil && st.VideoID == videoID {
		return st, nil
	}

	result, yerr := youtube.GetTranscript(ctx, videoID)
	if yerr != nil {
		return nil, yerr
	}
	return &session.State{
		VideoID:   videoID,
		URL:       youtube.WatchURL(videoID),
		Segments:  result.Segments,
		PlainText: youtube.Format(result.Segments, false),
	}, nil
}
