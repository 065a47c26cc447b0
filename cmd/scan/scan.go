// Package scan contains the command that processes a single receipt.
package scan

import (
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/receipt-csv/cmd/root"
	"fjacquet/receipt-csv/internal/common"
	"fjacquet/receipt-csv/internal/fileutils"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/receiptparser"

	"github.com/spf13/cobra"
)

var (
	imageFile string
	textFile  string
	csvFile   string
)

// Cmd is the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract a structured record from one receipt",
	Long: `Extract the structured record from a single receipt image (via OCR) or
from an already-OCR'd text file, and print it as JSON or append it to a CSV
file.`,
	Run: scanFunc,
}

func init() {
	Cmd.Flags().StringVarP(&imageFile, "image", "i", "", "Receipt image to OCR and parse")
	Cmd.Flags().StringVarP(&textFile, "text", "t", "", "Pre-OCR'd text file to parse")
	Cmd.Flags().StringVarP(&csvFile, "csv", "o", "", "Optional output CSV file (prints JSON to stdout when omitted)")
	Cmd.MarkFlagsOneRequired("image", "text")
	Cmd.MarkFlagsMutuallyExclusive("image", "text")
}

func scanFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	ctx := cmd.Context()

	var (
		sourcePath string
		text       string
	)

	if imageFile != "" {
		sourcePath = imageFile
		extracted, err := root.NewOCRClient().ExtractText(ctx, imageFile)
		if err != nil {
			root.Exit(err)
		}
		text = extracted
	} else {
		sourcePath = textFile
		data, err := fileutils.ReadFile(textFile)
		if err != nil {
			root.Exit(err)
		}
		text = string(data)
	}

	cat, cleanup := root.NewCategorizer(ctx)
	defer cleanup()

	parser := receiptparser.NewWithCategorizer(cat)
	receipt, err := parser.ParseText(ctx, receiptparser.SourceID(sourcePath), text)
	if err != nil {
		root.Exit(err)
	}

	if csvFile != "" {
		if err := common.WriteReceiptsToCSV([]models.Receipt{receipt}, csvFile); err != nil {
			root.Exit(err)
		}
		log.WithField("file", csvFile).Info("Receipt written to CSV")
		return
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(receipt); err != nil {
		root.Exit(fmt.Errorf("failed to encode receipt: %w", err))
	}
}
