// Package categorize contains the command that resolves a store name to a
// spending category and ledger account, useful for debugging keyword rules.
package categorize

import (
	"fjacquet/receipt-csv/cmd/root"
	"fjacquet/receipt-csv/internal/accounting"

	"github.com/spf13/cobra"
)

var storeName string

// Cmd is the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a store name",
	Long:  `Resolve a store name to its spending category and ledger account using the configured keyword rules.`,
	Run:   categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&storeName, "store", "s", "", "Store name to categorize (required)")
	_ = Cmd.MarkFlagRequired("store")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	cat, cleanup := root.NewCategorizer(cmd.Context())
	defer cleanup()

	category := cat.CategorizeStore(cmd.Context(), storeName)

	log.Infof("Store: %s", storeName)
	log.Infof("Category: %s", category)
	log.Infof("Account: %s", accounting.AccountFor(category))
}
