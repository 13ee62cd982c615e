package errorx

type Code string

func (c Code) String() string {
	return string(c)
}

const (
	CodeInvalid          Code = "INVALID"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeMalformedJSON    Code = "MALFORMED_JSON"
	CodeUnsupportedKind  Code = "UNSUPPORTED_KIND"
	CodeInternal         Code = "INTERNAL_ERROR"
)

// ExitCode maps an error code to a process exit status.
func ExitCode(code Code) int {
	switch code {
	case CodeInvalid, CodeValidationFailed, CodeMalformedJSON, CodeUnsupportedKind:
		return 2
	default:
		return 1
	}
}
