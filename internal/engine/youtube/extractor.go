package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Video metadata extraction.
// Primary:  scrape watch page ytInitialPlayerResponse (works from any IP)
// Fallback: ANDROID Innertube /player → captionTracks
//
// Both paths are single-attempt; the only retry in the pipeline is the
// subtitle JSON fetch in resolver.go.

// FormatEntry is one downloadable rendition of a caption track.
type FormatEntry struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// Metadata holds the subtitle sections of a video's metadata: manually
// authored subtitles and automatically generated captions, keyed by language
// code, each listing the available formats.
type Metadata struct {
	Subtitles         map[string][]FormatEntry
	AutomaticCaptions map[string][]FormatEntry
}

// subtitleFormats are the renditions reported per track, derived from the
// caption baseUrl. Only json3 is consumed downstream.
var subtitleFormats = []string{"json3", "srv1", "vtt"}

// FetchMetadata obtains subtitle-track metadata for a video without
// downloading any media. A video that plays fine but has no captions yields
// empty maps, not an error.
func FetchMetadata(ctx context.Context, videoID string) (*Metadata, error) {
	engine.IncrMetadataFetches()

	tracks, err := fetchTracksViaWatchPage(ctx, videoID)
	if err != nil {
		tracks, err = fetchTracksViaPlayer(ctx, videoID)
		if err != nil {
			return nil, err
		}
	}

	md := &Metadata{
		Subtitles:         make(map[string][]FormatEntry),
		AutomaticCaptions: make(map[string][]FormatEntry),
	}
	for _, t := range tracks {
		if needsPoToken(t.BaseURL) {
			continue
		}
		entries := make([]FormatEntry, 0, len(subtitleFormats))
		for _, ext := range subtitleFormats {
			entries = append(entries, FormatEntry{Ext: ext, URL: t.BaseURL + "&fmt=" + ext})
		}
		if t.Kind == "asr" {
			md.AutomaticCaptions[t.LanguageCode] = append(md.AutomaticCaptions[t.LanguageCode], entries...)
		} else {
			md.Subtitles[t.LanguageCode] = append(md.Subtitles[t.LanguageCode], entries...)
		}
	}
	return md, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken
// (browser-only). Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// fetchTracksViaWatchPage scrapes the watch page HTML and reads the caption
// tracks out of ytInitialPlayerResponse.
func fetchTracksViaWatchPage(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := fetchWatchPage(ctx, WatchURL(videoID))
	if err != nil {
		return nil, err
	}

	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return tracksFromPlayerResp(&playerResp)
}

// fetchWatchPage fetches the watch page HTML, through the stealth browser
// client when configured, otherwise with the plain HTTP client.
func fetchWatchPage(ctx context.Context, watchURL string) ([]byte, error) {
	if bc := engine.Cfg.BrowserClient; bc != nil {
		headers := engine.ChromeHeaders()
		headers["accept-language"] = "en-US,en;q=0.9"
		data, _, status, err := bc.Do(http.MethodGet, watchURL, headers, nil)
		if err != nil {
			return nil, fmt.Errorf("watch page: %w", err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("watch page: HTTP %d", status)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page: HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
}

// fetchTracksViaPlayer uses the ANDROID Innertube /player endpoint.
func fetchTracksViaPlayer(ctx context.Context, videoID string) ([]captionTrack, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ytInnertubeURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	defer resp.Body.Close()

	var playerResp innertubePlayerResp
	if err := json.NewDecoder(resp.Body).Decode(&playerResp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return tracksFromPlayerResp(&playerResp)
}

// tracksFromPlayerResp pulls caption tracks out of a player response.
// An unplayable video becomes an error carrying the playability reason so
// that ClassifyExtractorErr can recognize private/removed videos; a playable
// video without captions yields an empty track list.
func tracksFromPlayerResp(playerResp *innertubePlayerResp) ([]captionTrack, error) {
	if ps := playerResp.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		reason := ps.Reason
		lower := strings.ToLower(reason)
		switch {
		case strings.Contains(lower, "private"):
			return nil, fmt.Errorf("Private video: %s", reason)
		case strings.Contains(lower, "unavailable") || strings.Contains(lower, "removed") || strings.Contains(lower, "terminated"):
			return nil, fmt.Errorf("This video is unavailable: %s", reason)
		case reason != "":
			return nil, fmt.Errorf("video not playable: %s", reason)
		default:
			return nil, fmt.Errorf("video not playable: %s", ps.Status)
		}
	}
	if playerResp.Captions == nil {
		return nil, nil
	}
	return playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}
