// Package receiptparser assembles structured receipt records from raw OCR
// text. It is the only package aware of the full record shape: it wires the
// normalizer, the per-field extraction tables, the line-item parser and the
// category classifier together, one invocation per receipt image.
package receiptparser

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"fjacquet/receipt-csv/internal/categorizer"
	"fjacquet/receipt-csv/internal/extractor"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/normalizer"
	"fjacquet/receipt-csv/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parser builds Receipt records from OCR text.
type Parser struct {
	categorizer *categorizer.Categorizer
}

// New creates a Parser with the built-in keyword categorizer.
func New() *Parser {
	return &Parser{categorizer: categorizer.New()}
}

// NewWithCategorizer creates a Parser with a custom-configured categorizer.
func NewWithCategorizer(c *categorizer.Categorizer) *Parser {
	return &Parser{categorizer: c}
}

// ParseText builds one Receipt from raw OCR text and a source identifier.
// Field-level failures degrade to sentinel or absent values; the only error
// this returns is EmptyOCRError when there is no text to work with.
func (p *Parser) ParseText(ctx context.Context, sourceID, rawText string) (models.Receipt, error) {
	text := normalizer.Normalize(rawText)
	if text == "" {
		return models.Receipt{}, &parsererror.EmptyOCRError{SourceID: sourceID}
	}

	receipt := models.Receipt{
		ID:      sourceID,
		RawText: text,
	}

	if store, ok := extractor.StoreNameField.Extract(text); ok {
		receipt.StoreName = store
	} else {
		receipt.StoreName = models.UnknownStore
	}

	if date, ok := extractor.DateField.Extract(text); ok {
		receipt.Date = date
	} else {
		receipt.Date = models.UnknownDate
	}

	if raw, ok := extractor.AmountField.Extract(text); ok {
		receipt.Amount = mustAtoi(raw)
	}

	if raw, ok := extractor.TaxAmountField.Extract(text); ok {
		tax := mustAtoi(raw)
		receipt.TaxAmount = &tax
	}

	if method, ok := extractor.PaymentMethodField.Extract(text); ok {
		receipt.PaymentMethod = method
	}

	receipt.Items = extractor.ParseItems(text)
	receipt.Category = p.categorizer.CategorizeStore(ctx, receipt.StoreName)

	log.WithFields(logrus.Fields{
		"receipt_id": receipt.ID,
		"store":      receipt.StoreName,
		"date":       receipt.Date,
		"amount":     receipt.Amount,
		"items":      len(receipt.Items),
		"category":   receipt.Category,
	}).Debug("Assembled receipt record")

	return receipt, nil
}

// SourceID derives a receipt identifier from an image path: the filename
// stem, unique within a run but not globally enforced.
func SourceID(imagePath string) string {
	base := filepath.Base(imagePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// mustAtoi parses integers the amount processor already validated.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
