package ocr

import "strings"

// Normalize collapses all interior whitespace (including line breaks
// from multi-line recognition) to single spaces and trims the ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
