package models

// Sentinel values used when a field cannot be recovered from the OCR text.
// Field-level extraction failures degrade to these values instead of errors.
const (
	UnknownStore = "不明な店舗"
	UnknownDate  = "不明な日付"
)

// Spending categories. The classifier is total: every store name maps to
// exactly one of these labels.
const (
	CategoryDining     = "飲食費"
	CategoryGroceries  = "食料品"
	CategoryTransport  = "交通費"
	CategoryLodging    = "宿泊費"
	CategoryStationery = "消耗品"
	CategoryHealthcare = "医療費"
	CategoryOther      = "その他"
)

// Ledger account names (勘定科目) for the accounting-oriented export.
const (
	AccountEntertainment = "接待交際費"
	AccountSupplies      = "消耗品費"
	AccountTravel        = "旅費交通費"
	AccountWelfare       = "福利厚生費"
	AccountMisc          = "雑費"
)

// TaxClassificationTaxable is the constant tax classification emitted by the
// accounting export.
const TaxClassificationTaxable = "課税"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
