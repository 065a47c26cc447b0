package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyTokenPattern matches a currency-marked number anywhere in the text:
// a digit group preceded by a yen sign or followed by the currency unit word.
var currencyTokenPattern = regexp.MustCompile(`[¥￥]\s*(\d[\d,]*)|(\d[\d,]*)\s*円`)

// ParseAmount converts a matched digit group (possibly with thousands
// separators) into a non-negative integer amount, rendered back as a decimal
// string for the extraction engine.
func ParseAmount(raw string) (string, bool) {
	n, ok := parseAmountToken(raw)
	if !ok {
		return "", false
	}
	return strconv.Itoa(n), true
}

// parseAmountToken strips thousands separators and parses the remainder.
// Fractional yen do not exist on receipts; anything after a decimal point is
// OCR noise and gets truncated.
func parseAmountToken(raw string) (int, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return 0, false
	}
	return int(d.IntPart()), true
}

// MaxCurrencyToken scans the whole text for every currency-marked number and
// returns the maximum value found, or 0 when none exist. Used as the amount
// field's whole-text fallback: on a receipt with no recognizable total label
// the largest printed price is the best available guess.
func MaxCurrencyToken(text string) (string, bool) {
	max := 0
	for _, m := range currencyTokenPattern.FindAllStringSubmatch(text, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if n, ok := parseAmountToken(token); ok && n > max {
			max = n
		}
	}
	return strconv.Itoa(max), true
}
