package extractor

import (
	"regexp"
	"strings"

	"fjacquet/receipt-csv/internal/models"
)

// itemLinePattern matches a fully itemized purchase line: item name, integer
// quantity, currency-marked unit price, currency-marked total price, all
// separated by whitespace. A line either matches completely or contributes
// nothing; there is no partial recovery.
var itemLinePattern = regexp.MustCompile(`^(\S.*?)\s+(\d+)\s*(?:点|個|コ)?\s+[¥￥]\s*(\d[\d,]*)\s+[¥￥]\s*(\d[\d,]*)$`)

// ParseItems runs an independent pass over the normalized text and recovers
// itemized purchases, one per matching line, in line order.
func ParseItems(text string) []models.ReceiptItem {
	var items []models.ReceiptItem

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matches := itemLinePattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		quantity, ok := parseAmountToken(matches[2])
		if !ok || quantity <= 0 {
			continue
		}
		unitPrice, ok := parseAmountToken(matches[3])
		if !ok {
			continue
		}
		totalPrice, ok := parseAmountToken(matches[4])
		if !ok {
			continue
		}

		items = append(items, models.ReceiptItem{
			Name:       strings.TrimSpace(matches[1]),
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
		})
	}

	return items
}
