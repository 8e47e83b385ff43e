package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/abc123", "abc123"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=abc_DEF-123&t=42s", "abc_DEF-123"},
		{"short url with query", "https://youtu.be/xyz789?si=tracker", "xyz789"},
		{"no scheme", "youtu.be/plainid", "plainid"},
		{"not youtube", "https://example.com/watch", ""},
		{"empty", "", ""},
		{"bare id", "dQw4w9WgXcQ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractID(tt.link))
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", ThumbnailURL("abc123"))
}
