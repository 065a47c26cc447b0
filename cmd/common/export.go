// Package common contains shared functionality for command handlers
package common

import (
	"path/filepath"

	"fjacquet/receipt-csv/internal/common"
	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/parsererror"
)

// ExportOptions selects which export files a run produces beyond the default
// tabular and journal CSVs.
type ExportOptions struct {
	RawText bool
	JSON    bool
}

// WriteExports writes the selected export files for a batch of receipts into
// the output directory. The first failing export aborts the rest.
func WriteExports(receipts []models.Receipt, outputDir string, opts ExportOptions, log logging.Logger) error {
	exports := []struct {
		filename string
		enabled  bool
		write    func([]models.Receipt, string) error
	}{
		{"receipts.csv", true, common.WriteReceiptsToCSV},
		{"journal.csv", true, common.WriteJournalToCSV},
		{"raw.csv", opts.RawText, common.WriteRawTextCSV},
		{"receipts.json", opts.JSON, common.WriteReceiptsToJSON},
	}

	for _, export := range exports {
		if !export.enabled {
			continue
		}

		path := filepath.Join(outputDir, export.filename)
		if err := export.write(receipts, path); err != nil {
			log.Error("Export failed",
				logging.Field{Key: logging.FieldOutputFile, Value: path})
			return &parsererror.ExportError{FilePath: path, Err: err}
		}

		log.Info("Export written",
			logging.Field{Key: logging.FieldOutputFile, Value: path},
			logging.Field{Key: logging.FieldCount, Value: len(receipts)})
	}

	return nil
}
