// Package common provides the shared export functionality for receipt records.
package common

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fjacquet/receipt-csv/internal/accounting"
	"fjacquet/receipt-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Delimiter is the global CSV delimiter, configurable via RECEIPT_CSV_DELIMITER.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("RECEIPT_CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReceiptRow is the default tabular export shape. Line items are not
// flattened into this table.
type ReceiptRow struct {
	ID            string `csv:"ID"`
	Date          string `csv:"日付"`
	StoreName     string `csv:"店舗名"`
	Amount        int    `csv:"金額"`
	TaxAmount     string `csv:"消費税"`
	Category      string `csv:"カテゴリ"`
	PaymentMethod string `csv:"支払方法"`
}

// JournalRow is the accounting-oriented export shape.
type JournalRow struct {
	Date              string `csv:"日付"`
	Description       string `csv:"摘要"`
	AccountName       string `csv:"勘定科目"`
	Amount            int    `csv:"金額"`
	Note              string `csv:"備考"`
	TaxClassification string `csv:"税区分"`
	TaxAmount         int    `csv:"消費税額"`
}

// estimatedTaxRate is applied when no tax amount was recovered from the
// receipt: floor(amount x 0.1), the standard consumption tax rate.
var estimatedTaxRate = decimal.NewFromFloat(0.1)

// WriteReceiptsToCSV writes receipts in the default tabular format.
func WriteReceiptsToCSV(receipts []models.Receipt, csvFile string) error {
	if receipts == nil {
		return fmt.Errorf("cannot write nil receipts to CSV")
	}

	rows := make([]ReceiptRow, 0, len(receipts))
	for _, r := range receipts {
		tax := ""
		if r.TaxAmount != nil {
			tax = strconv.Itoa(*r.TaxAmount)
		}
		rows = append(rows, ReceiptRow{
			ID:            r.ID,
			Date:          r.Date,
			StoreName:     r.StoreName,
			Amount:        r.Amount,
			TaxAmount:     tax,
			Category:      r.Category,
			PaymentMethod: r.PaymentMethod,
		})
	}

	return marshalRowsToCSV(rows, csvFile, len(receipts))
}

// WriteJournalToCSV writes receipts in the accounting-oriented format, one
// journal line per receipt with the mapped ledger account.
func WriteJournalToCSV(receipts []models.Receipt, csvFile string) error {
	if receipts == nil {
		return fmt.Errorf("cannot write nil receipts to CSV")
	}

	rows := make([]JournalRow, 0, len(receipts))
	for _, r := range receipts {
		rows = append(rows, JournalRow{
			Date:              r.Date,
			Description:       r.StoreName,
			AccountName:       accounting.AccountFor(r.Category),
			Amount:            r.Amount,
			Note:              fmt.Sprintf("Receipt ID: %s", r.ID),
			TaxClassification: models.TaxClassificationTaxable,
			TaxAmount:         journalTaxAmount(r),
		})
	}

	return marshalRowsToCSV(rows, csvFile, len(receipts))
}

// journalTaxAmount returns the extracted tax amount, or the estimated
// floor(amount x 0.1) when the receipt carried none.
func journalTaxAmount(r models.Receipt) int {
	if r.TaxAmount != nil {
		return *r.TaxAmount
	}
	return int(decimal.NewFromInt(int64(r.Amount)).Mul(estimatedTaxRate).Floor().IntPart())
}

// WriteRawTextCSV writes only the receipt IDs and their single-line-collapsed
// raw OCR text. Embedded quotes are doubled per standard CSV escaping and
// embedded newlines replaced with a single space.
func WriteRawTextCSV(receipts []models.Receipt, csvFile string) error {
	if receipts == nil {
		return fmt.Errorf("cannot write nil receipts to CSV")
	}

	var sb strings.Builder
	sb.WriteString("ID,RawText\n")
	for _, r := range receipts {
		sb.WriteString(EscapeCSVField(r.ID))
		sb.WriteByte(byte(Delimiter))
		sb.WriteString(EscapeCSVField(CollapseRawText(r.RawText)))
		sb.WriteByte('\n')
	}

	if err := writeOutputFile(csvFile, []byte(sb.String())); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(receipts),
	}).Info("Wrote raw text CSV file")
	return nil
}

// WriteReceiptsToJSON writes the full receipt records, items included.
func WriteReceiptsToJSON(receipts []models.Receipt, jsonFile string) error {
	if receipts == nil {
		return fmt.Errorf("cannot write nil receipts to JSON")
	}

	data, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling receipts to JSON: %w", err)
	}

	if err := writeOutputFile(jsonFile, append(data, '\n')); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":  jsonFile,
		"count": len(receipts),
	}).Info("Wrote receipts JSON file")
	return nil
}

// CollapseRawText replaces embedded newlines with single spaces so raw OCR
// text fits one CSV record.
func CollapseRawText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "\r", " ")
}

// EscapeCSVField quotes a field, doubling embedded quote characters.
func EscapeCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// marshalRowsToCSV writes any gocsv-taggable row slice to a file with the
// configured delimiter.
func marshalRowsToCSV[TRow any](rows []TRow, csvFile string, count int) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": count,
	}).Info("Wrote CSV file")
	return nil
}

// writeOutputFile creates parent directories and writes the file.
func writeOutputFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionOutputFile); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}
