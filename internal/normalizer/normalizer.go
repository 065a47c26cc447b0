// Package normalizer canonicalizes raw OCR text before field extraction runs.
package normalizer

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reHSpace     = regexp.MustCompile(`[ \t\x{3000}]+`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// fullWidthFolding maps full-width digits and punctuation to their half-width
// equivalents. Downstream patterns only ever see half-width characters.
var fullWidthFolding = strings.NewReplacer(
	"０", "0", "１", "1", "２", "2", "３", "3", "４", "4",
	"５", "5", "６", "6", "７", "7", "８", "8", "９", "9",
	"，", ",", "．", ".",
)

// Normalize canonicalizes raw OCR text: folds full-width digits and
// comma/period to half-width, collapses runs of horizontal whitespace to a
// single space, trims trailing spaces per line, and collapses consecutive
// blank lines to one. Line boundaries are preserved because field patterns
// downstream anchor on them.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return text
	}

	text = reCRLF.ReplaceAllString(text, "\n")
	text = fullWidthFolding.Replace(text)
	text = reHSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	text = strings.Join(lines, "\n")

	text = reMultiBlank.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
