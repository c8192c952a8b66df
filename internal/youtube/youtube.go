// Package youtube extracts video ids from the YouTube URL shapes the
// authoring form accepts and builds the canonical embed and cover URLs.
package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

// YouTube ids are 11 characters from this alphabet. Validating the shape
// keeps arbitrary path segments from being mistaken for ids.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID extracts the video id from the supported URL forms:
// watch?v=ID, youtu.be/ID and /embed/ID. The boolean is false when the
// URL is not a YouTube URL or no valid id is present.
func ParseVideoID(rawURL string) (string, bool) {
	if !IsYouTubeURL(rawURL) {
		return "", false
	}

	var candidate string

	switch {
	case strings.Contains(rawURL, "v="):
		candidate = after(rawURL, "v=")
	case strings.Contains(rawURL, "youtu.be/"):
		candidate = after(rawURL, "youtu.be/")
	case strings.Contains(rawURL, "embed/"):
		candidate = after(rawURL, "embed/")
	default:
		return "", false
	}

	candidate = trimAt(candidate, '&')
	candidate = trimAt(candidate, '?')
	candidate = trimAt(candidate, '/')
	candidate = trimAt(candidate, '#')

	if !idPattern.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

// IsYouTubeURL reports whether the URL points at a known YouTube host.
func IsYouTubeURL(rawURL string) bool {
	return strings.Contains(rawURL, "youtube.com") || strings.Contains(rawURL, "youtu.be")
}

// EmbedURL returns the canonical embed form for a video id.
func EmbedURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
}

// CoverURL returns the predictable max-resolution cover image for a
// video id.
func CoverURL(id string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}

func after(s, sep string) string {
	idx := strings.Index(s, sep)
	return s[idx+len(sep):]
}

func trimAt(s string, c byte) string {
	if idx := strings.IndexByte(s, c); idx >= 0 {
		return s[:idx]
	}
	return s
}
