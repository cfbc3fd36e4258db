package errors

import "fmt"

// CodedError extends the standard error interface with a stable code, a retry
// classification, and optional context metadata.
//
// CodedError values stay compatible with the standard library: they can be
// inspected with errors.Is and errors.As and participate in Unwrap chains.
type CodedError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]any

	// Unwrap returns the wrapped error, or nil when nothing is wrapped.
	Unwrap() error
}

// codedError is the concrete implementation of CodedError.
// It is private to enforce construction through package functions.
type codedError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error formats as "[CODE] message", with ": cause" appended when a wrapped
// error is present.
func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *codedError) Code() ErrorCode { return e.code }

func (e *codedError) Classification() ErrorClassification { return e.classification }

func (e *codedError) Message() string { return e.message }

// Context returns a copy of the metadata map. Mutating the returned map does
// not affect the error.
func (e *codedError) Context() map[string]any {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]any, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *codedError) Unwrap() error { return e.cause }
