package youtube

import "regexp"

// Video-ID extraction from heterogeneous URL shapes.
//
// Two pattern families, tried in order; the fallback query-scan is partially
// redundant with the primary family for some inputs, and the order is load
// bearing — first pattern list, first match.
var videoIDPatterns = []*regexp.Regexp{
	// watch?v=, youtu.be/, embed/ (hostname prefix like www. or m. is irrelevant)
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	// v= anywhere after watch?
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractVideoID pulls a video identifier out of a YouTube URL. The captured
// substring stops at the next '&', newline, '?', or '#'. No shape validation
// is performed on the identifier itself. Returns false when nothing matches.
func ExtractVideoID(rawURL string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) >= 2 {
			return m[1], true
		}
	}
	return "", false
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
