package i18nx

// Date label keys
const (
	KeyDateNoDate  = "date_no_date"
	KeyDateYear    = "date_year"
	KeyDateInvalid = "date_invalid"
)

// Error message keys
const (
	KeyInvalid               = "invalid"
	KeyValidationFailed      = "validation_failed"
	KeyValidationFailedField = "validation_failed_field"
	KeyMalformedJSON         = "malformed_json"
	KeyUnsupportedKind       = "unsupported_kind"
	KeyInternalError         = "internal_error"
	KeyInputUnreadable       = "input_unreadable"
	KeyViewModeUnknown       = "view_mode_unknown"
)

// Validation message keys
const (
	ValidationIsTitle = "validation_is_title"
)

// Template argument keys
const (
	ArgYear  = "Year"
	ArgField = "Field"
	ArgKind  = "Kind"
	ArgPath  = "Path"
	ArgMode  = "Mode"
)
