// Package root contains the root command for the application
package root

import (
	"context"
	"os"
	"time"

	"fjacquet/receipt-csv/internal/batch"
	"fjacquet/receipt-csv/internal/categorizer"
	"fjacquet/receipt-csv/internal/common"
	"fjacquet/receipt-csv/internal/config"
	"fjacquet/receipt-csv/internal/extractor"
	"fjacquet/receipt-csv/internal/fileutils"
	"fjacquet/receipt-csv/internal/ocr"
	"fjacquet/receipt-csv/internal/receiptparser"
	"fjacquet/receipt-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "receipt-csv",
		Short: "A CLI tool to turn OCR'd receipt images into structured CSV records.",
		Long: `receipt-csv extracts structured fields (store, date, total, tax, line
items, payment method) from noisy receipt OCR text and exports them as CSV,
including an accounting-oriented journal with ledger account mapping.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to receipt-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			// Propagate the configured logger to all packages
			extractor.SetLogger(Log)
			receiptparser.SetLogger(Log)
			categorizer.SetLogger(Log)
			store.SetLogger(Log)
			ocr.SetLogger(Log)
			batch.SetLogger(Log)
			common.SetLogger(Log)
			fileutils.SetLogger(Log)

			if delim := Cfg.CSV.Delimiter; delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().String("config", "", "Config file (default searches ., .receipt-csv, $HOME/.receipt-csv)")
}

// NewOCRClient builds the OCR collaborator from configuration.
func NewOCRClient() *ocr.Client {
	return ocr.NewClient(
		Cfg.OCR.Command,
		Cfg.OCR.Language,
		time.Duration(Cfg.OCR.TimeoutSeconds)*time.Second,
	)
}

// NewCategorizer builds the categorizer from configuration: custom keyword
// rules layered over the built-in table, with the optional AI fallback.
// The returned cleanup function releases the AI client, if any.
func NewCategorizer(ctx context.Context) (*categorizer.Categorizer, func()) {
	cat := categorizer.NewWithStore(store.NewCategoryStore(Cfg.Categorization.KeywordsFile))
	cleanup := func() {}

	if Cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(ctx, Cfg.AI.APIKey, Cfg.AI.Model)
		if err != nil {
			Log.WithError(err).Warn("AI categorization unavailable, using keywords only")
		} else {
			cat = cat.WithAI(client)
			cleanup = func() {
				if err := client.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close AI client")
				}
			}
		}
	}

	return cat, cleanup
}

// Exit terminates the run with a non-zero status after logging the error.
func Exit(err error) {
	Log.Error(err.Error())
	os.Exit(1)
}
