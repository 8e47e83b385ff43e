package youtube

import (
	"fmt"
	"regexp"
)

// Matches the two link forms the site accepts: watch URLs carrying a
// v=<id> query parameter and short youtu.be/<id> URLs.
var idPattern = regexp.MustCompile(`(?:v=|youtu\.be/)([A-Za-z0-9_-]+)`)

// ExtractID returns the YouTube video id embedded in link, or "" when
// the link matches neither recognized form.
func ExtractID(link string) string {
	m := idPattern.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// ThumbnailURL returns the canonical YouTube thumbnail for a video id.
func ThumbnailURL(id string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
}
