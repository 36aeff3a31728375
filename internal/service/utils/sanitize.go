package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all HTML from user-supplied text before it is stored.
// Plain text passes through unchanged.
func SanitizeText(text string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(text))
}
