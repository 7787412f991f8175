package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchWatchPage(t *testing.T) {
	initTestEngine(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("watch page request missing User-Agent")
		}
		if !strings.HasPrefix(r.Header.Get("Accept-Language"), "en-US") {
			t.Errorf("Accept-Language = %q", r.Header.Get("Accept-Language"))
		}
		w.Write([]byte("<html>page</html>"))
	}))
	defer srv.Close()

	body, err := fetchWatchPage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "<html>page</html>" {
		t.Errorf("body = %q", body)
	}
}

func TestFetchWatchPageNon200(t *testing.T) {
	initTestEngine(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := fetchWatchPage(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-200 watch page")
	}
}

func playerRespFromJSON(t *testing.T, raw string) *innertubePlayerResp {
	t.Helper()
	var resp innertubePlayerResp
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("decode player response: %v", err)
	}
	return &resp
}

func TestTracksFromPlayerResp(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantTracks int
		wantErrSub string
	}{
		{
			name: "playable with tracks",
			raw: `{"playabilityStatus":{"status":"OK"},
				"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
					{"baseUrl":"http://x/timedtext","languageCode":"en"}]}}}`,
			wantTracks: 1,
		},
		{
			name:       "playable without captions",
			raw:        `{"playabilityStatus":{"status":"OK"}}`,
			wantTracks: 0,
		},
		{
			name:       "private video",
			raw:        `{"playabilityStatus":{"status":"LOGIN_REQUIRED","reason":"This is a private video"}}`,
			wantErrSub: "Private video",
		},
		{
			name:       "removed video",
			raw:        `{"playabilityStatus":{"status":"ERROR","reason":"This video has been removed by the uploader"}}`,
			wantErrSub: "This video is unavailable",
		},
		{
			name:       "other unplayable reason",
			raw:        `{"playabilityStatus":{"status":"AGE_CHECK_REQUIRED","reason":"Sign in to confirm your age"}}`,
			wantErrSub: "video not playable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tracksFromPlayerResp(playerRespFromJSON(t, tt.raw))
			if tt.wantErrSub != "" {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.wantErrSub) {
					t.Errorf("error %q does not contain %q", err, tt.wantErrSub)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantTracks {
				t.Errorf("got %d tracks, want %d", len(got), tt.wantTracks)
			}
		})
	}
}

func TestTracksFromPlayerRespErrorsClassify(t *testing.T) {
	resp := playerRespFromJSON(t, `{"playabilityStatus":{"status":"LOGIN_REQUIRED","reason":"This is a private video"}}`)
	_, err := tracksFromPlayerResp(resp)
	if err == nil {
		t.Fatal("expected error")
	}
	if yerr := ClassifyExtractorErr(err); yerr.Kind != KindVideoUnavailable {
		t.Errorf("kind = %v, want %v", yerr.Kind, KindVideoUnavailable)
	}
}

func TestNeedsPoToken(t *testing.T) {
	if !needsPoToken("https://www.youtube.com/api/timedtext?v=x&exp=xpe&lang=en") {
		t.Error("expected exp=xpe track to require PoToken")
	}
	if needsPoToken("https://www.youtube.com/api/timedtext?v=x&lang=en") {
		t.Error("plain track should not require PoToken")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":2}}rest`, `{"a":{"b":2}}`},
		{"brace in string", `{"a":"}{"}tail`, `{"a":"}{"}`},
		{"escaped quote", `{"a":"\"}"}tail`, `{"a":"\"}"}`},
		{"unterminated", `{"a":1`, ""},
		{"not an object", `[1,2]`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.in))
			if string(got) != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
