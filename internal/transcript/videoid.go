package transcript

import "regexp"

// bareVideoID matches a standalone 11-character YouTube video ID.
var bareVideoID = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// urlPatterns cover the YouTube URL forms the service accepts: standard
// watch URLs, short youtu.be links, embed URLs, and v= anywhere in the query.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`watch\?v=([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`[?&]v=([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID extracts the video ID from a YouTube URL. A bare video ID
// is accepted as-is. Returns false when no ID can be found.
func ExtractVideoID(raw string) (string, bool) {
	if bareVideoID.MatchString(raw) {
		return raw, true
	}
	for _, pattern := range urlPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	return "", false
}
