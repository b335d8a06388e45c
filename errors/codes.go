package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeParse indicates malformed JSON, a non-object top-level value,
	// or a reserved key found in the parsed structure.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeValidation indicates caller-supplied validation rejected the data.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// File errors
const (
	// ErrCodeFileRead indicates an I/O failure while reading file content.
	ErrCodeFileRead ErrorCode = "FILE_READ_ERROR"
	// ErrCodeFileTooLarge indicates the file exceeds the configured size limit.
	ErrCodeFileTooLarge ErrorCode = "FILE_TOO_LARGE"
	// ErrCodeInvalidFileType indicates the file is not JSON by extension or
	// media type, or no JSON file was found among dropped items.
	ErrCodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
)

var knownCodes = map[ErrorCode]bool{
	ErrCodeParse:           true,
	ErrCodeValidation:      true,
	ErrCodeFileRead:        true,
	ErrCodeFileTooLarge:    true,
	ErrCodeInvalidFileType: true,
}

// IsKnownCode returns true if the code is one of the five fill error kinds.
func IsKnownCode(code ErrorCode) bool {
	return knownCodes[code]
}
