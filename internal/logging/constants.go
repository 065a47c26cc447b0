package logging

// Standardized field names for structured logging. These keep log output
// consistent and easy to filter across commands and parsers.
const (
	FieldFile       = "file_path"
	FieldReceiptID  = "receipt_id"
	FieldFieldName  = "field"
	FieldCategory   = "category"
	FieldAccount    = "account"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputDir   = "input_dir"
	FieldOutputFile = "output_file"
)
