package youtube

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// SaveTranscript writes a transcript to {dir}/{videoID}_{timestamp}.txt with
// a fixed 4-line header, creating the directory if needed. Returns the path
// of the written file.
func SaveTranscript(videoID, transcriptText, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create transcript dir: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s_%s.txt", videoID, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	var sb strings.Builder
	fmt.Fprintf(&sb, "YouTube Video ID: %s\n", videoID)
	fmt.Fprintf(&sb, "Downloaded: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Video URL: %s\n", WatchURL(videoID))
	sb.WriteString(strings.Repeat("-", 80) + "\n\n")
	sb.WriteString(transcriptText)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write transcript file: %w", err)
	}

	engine.IncrSavedTranscripts()
	return path, nil
}
