// Package accounting maps spending categories to ledger account names for
// the accounting-oriented export.
package accounting

import "fjacquet/receipt-csv/internal/models"

// accountTable is the closed category-to-account lookup. It covers every
// label the classifier can produce; anything else falls through to 雑費.
var accountTable = map[string]string{
	models.CategoryDining:     models.AccountEntertainment,
	models.CategoryGroceries:  models.AccountWelfare,
	models.CategoryTransport:  models.AccountTravel,
	models.CategoryLodging:    models.AccountTravel,
	models.CategoryStationery: models.AccountSupplies,
	models.CategoryHealthcare: models.AccountWelfare,
	models.CategoryOther:      models.AccountMisc,
}

// AccountFor returns the ledger account name (勘定科目) for a spending
// category. Total: unrecognized categories map to the catch-all account.
func AccountFor(category string) string {
	if account, ok := accountTable[category]; ok {
		return account
	}
	return models.AccountMisc
}
