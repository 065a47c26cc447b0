package extractor

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateSeparators are the characters that may separate year, month and day in
// OCR'd receipt dates.
const dateSeparators = "/-年月日 "

// NormalizeDate converts a matched date substring into canonical YYYY-MM-DD
// form. Two-digit years are assumed to be 20YY; a month/day pair without a
// year gets the current processing year. The result is not validated against
// a real calendar: OCR noise produces dates like day 32, and rejecting them
// would also reject genuine variants still useful for sorting and display.
func NormalizeDate(raw string) (string, bool) {
	return normalizeDateAt(raw, time.Now().Year())
}

func normalizeDateAt(raw string, currentYear int) (string, bool) {
	tokens := splitDateTokens(raw)

	switch {
	case len(tokens) >= 3:
		year := tokens[0]
		if len(year) == 2 {
			year = "20" + year
		}
		month, ok := padDatePart(tokens[1])
		if !ok {
			return "", false
		}
		day, ok := padDatePart(tokens[2])
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s-%s-%s", year, month, day), true

	case len(tokens) == 2:
		month, ok := padDatePart(tokens[0])
		if !ok {
			return "", false
		}
		day, ok := padDatePart(tokens[1])
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%d-%s-%s", currentYear, month, day), true

	default:
		return "", false
	}
}

// splitDateTokens splits a raw date on any separator character, discarding
// empty tokens ("2024年3月5日" splits cleanly even with the trailing 日).
func splitDateTokens(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(dateSeparators, r)
	})

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// padDatePart zero-pads a month or day token to width 2.
func padDatePart(token string) (string, bool) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}
