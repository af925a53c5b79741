package utils

import "github.com/microcosm-cc/bluemonday"

// Sighting fields are plain text, so the strict policy drops all markup.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips HTML from user-submitted content to prevent XSS when the
// feed renders it back.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
