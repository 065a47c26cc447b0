// Package batch contains the command that processes a whole directory of
// receipt images.
package batch

import (
	cmdcommon "fjacquet/receipt-csv/cmd/common"
	"fjacquet/receipt-csv/cmd/root"
	"fjacquet/receipt-csv/internal/batch"
	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/receiptparser"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
	withRaw   bool
	withJSON  bool
)

// Cmd is the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Process all receipt images in a directory",
	Long: `Run OCR over every supported receipt image in a directory, extract
structured records and write the tabular CSV, the accounting journal CSV and
optionally raw-text CSV and JSON exports. Images that fail OCR or yield no
text are skipped; the run only fails when the directory is missing or holds
no images at all.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory containing receipt images (required)")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for export files (required)")
	Cmd.Flags().BoolVar(&withRaw, "raw", false, "Also write raw OCR text CSV")
	Cmd.Flags().BoolVar(&withJSON, "json", false, "Also write full records as JSON")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func batchFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.WithField("input", inputDir).Info("Batch command called")

	ctx := cmd.Context()

	cat, cleanup := root.NewCategorizer(ctx)
	defer cleanup()

	processor := batch.NewProcessor(root.NewOCRClient(), receiptparser.NewWithCategorizer(cat))
	receipts, err := processor.ProcessDirectory(ctx, inputDir)
	if err != nil {
		root.Exit(err)
	}

	opts := cmdcommon.ExportOptions{RawText: withRaw, JSON: withJSON}
	if err := cmdcommon.WriteExports(receipts, outputDir, opts, logging.NewLogrusAdapterFromLogger(log)); err != nil {
		root.Exit(err)
	}

	log.WithField("count", len(receipts)).Info("Batch processing completed successfully")
}
