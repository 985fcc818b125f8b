package naming

import (
	"fmt"
	"regexp"
	"strings"

	"tubeqr/internal/config"
)

var forbiddenChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\x7f]`)

// SanitizeTitle maps an arbitrary title to a fragment usable inside a file name.
// Surrounding whitespace is dropped, forbidden characters become "_", and the
// result is cut to the configured rune limit and trimmed again.
func SanitizeTitle(title string) string {
	limit := config.Defaults().MaxTitleLength
	s := forbiddenChars.ReplaceAllString(strings.TrimSpace(title), "_")
	r := []rune(s)
	if len(r) > limit {
		s = string(r[:limit])
	}
	return strings.TrimSpace(s)
}

// FileName returns the image file name for the video at 1-based position idx.
func FileName(idx int, title string) string {
	return fmt.Sprintf("%02d_%s.png", idx, SanitizeTitle(title))
}
