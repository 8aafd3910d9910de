package search

import "strings"

// DescriptionLength is the cut-off for descriptions taken from long text columns
const DescriptionLength = 200

// Slugify lower-cases and trims name and joins its whitespace separated words
// with single hyphens. Punctuation is left alone.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// Truncate keeps the first n characters of s
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
