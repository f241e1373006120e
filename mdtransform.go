package marku

import "regexp"

// Line ending normalization, applied before parsing so rendered output
// (always \n) can be compared against the input for change detection.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
