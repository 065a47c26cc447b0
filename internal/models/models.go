// Package models defines the core data structures shared across the application.
package models

// Receipt represents one structured record extracted from a single OCR'd
// receipt image. A Receipt is assembled once and never mutated afterwards;
// exporters only project it into other formats.
type Receipt struct {
	ID            string        `json:"id"`
	StoreName     string        `json:"store_name"`
	Date          string        `json:"date"`
	Amount        int           `json:"amount"`
	Items         []ReceiptItem `json:"items"`
	TaxAmount     *int          `json:"tax_amount,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	RawText       string        `json:"raw_text"`
	Category      string        `json:"category"`
}

// ReceiptItem represents a single itemized purchase line on a receipt.
// Quantity * UnitPrice is intentionally not reconciled against TotalPrice:
// OCR digits are taken at face value.
type ReceiptItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unit_price"`
	TotalPrice int    `json:"total_price"`
}

// HasTax reports whether a tax amount was recovered from the receipt text.
// An absent tax amount is distinct from a zero tax amount.
func (r *Receipt) HasTax() bool {
	return r.TaxAmount != nil
}

// CategoryConfig represents a category keyword configuration entry,
// loadable from a YAML file to extend the built-in keyword tables.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the root structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
