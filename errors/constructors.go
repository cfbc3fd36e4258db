package errors

import "fmt"

// New creates a CodedError with the given code and message.
// The classification is derived from the code's default mapping.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "project not found")
func New(code ErrorCode, message string) CodedError {
	return &codedError{
		code:           code,
		classification: defaultClassification(code),
		message:        message,
	}
}

// Newf creates a CodedError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "unknown merge request state %q", raw)
func Newf(code ErrorCode, format string, args ...any) CodedError {
	return &codedError{
		code:           code,
		classification: defaultClassification(code),
		message:        fmt.Sprintf(format, args...),
	}
}
