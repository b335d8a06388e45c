package errors

import (
	"fmt"
)

// AppError is the unified fill error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// Parse creates a new AppError for malformed or unsafe input.
func Parse(reason string) *AppError {
	return &AppError{Code: ErrCodeParse, Message: reason}
}

// ReservedKey creates a new AppError for a reserved key found in parsed input.
func ReservedKey(key string) *AppError {
	return &AppError{
		Code: ErrCodeParse, Message: fmt.Sprintf("reserved key %q is not allowed", key),
		Details: map[string]any{"key": key},
	}
}

// Validation creates a new AppError for data rejected by validation.
func Validation(message string) *AppError {
	if message == "" {
		message = "Validation failed"
	}
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// FileRead creates a new AppError for an I/O failure reading file content.
func FileRead(name string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeFileRead, Message: fmt.Sprintf("Failed to read file %s.", name),
		Details: map[string]any{"file": name}, Cause: cause,
	}
}

// FileTooLarge creates a new AppError for a file exceeding the size limit.
func FileTooLarge(name string, size, limit int64) *AppError {
	return &AppError{
		Code: ErrCodeFileTooLarge, Message: fmt.Sprintf("File %s exceeds the maximum size of %d bytes.", name, limit),
		Details: map[string]any{"file": name, "size": size, "limit": limit},
	}
}

// InvalidFileType creates a new AppError for a non-JSON file.
func InvalidFileType(name, contentType string) *AppError {
	details := map[string]any{"file": name}
	if contentType != "" {
		details["content_type"] = contentType
	}
	return &AppError{
		Code: ErrCodeInvalidFileType, Message: fmt.Sprintf("File %s is not a JSON file.", name),
		Details: details,
	}
}

// NoJSONFiles creates a new AppError for a drop containing no JSON files.
func NoJSONFiles() *AppError {
	return &AppError{
		Code: ErrCodeInvalidFileType, Message: "No JSON files found among the dropped items.",
	}
}
