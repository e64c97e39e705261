package llm

import (
	"regexp"
	"strings"
)

var (
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText collapses all line-ending variants to \n, squashes runs of
// three or more newlines down to a single blank line, and trims surrounding
// whitespace. Normalizing already-normalized text is a no-op.
func NormalizeText(s string) string {
	s = lineEndings.Replace(s)
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
