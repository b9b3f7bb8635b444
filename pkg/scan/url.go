package scan

import "regexp"

// urlPattern matches an http or https URL up to the next whitespace.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// ExtractURL returns the first http(s):// substring in text, or "" if none.
// Only the first match is used; any further URLs in the same text are
// ignored. Known limitation: a message carrying one safe link and one scam
// link is judged by the first.
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}
