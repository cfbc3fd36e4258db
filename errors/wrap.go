package errors

import (
	stderrors "errors"
	"fmt"
)

// Wrap wraps an error with a code and message while keeping the original
// error reachable through Unwrap. If the wrapped error is itself a
// CodedError its classification carries over; otherwise the code's default
// classification applies.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := provider.GetMergeRequest(ctx, project, iid)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "failed to fetch merge request")
//	}
func Wrap(err error, code ErrorCode, message string) CodedError {
	if err == nil {
		return nil
	}

	classification := defaultClassification(code)
	var coded CodedError
	if stderrors.As(err, &coded) {
		classification = coded.Classification()
	}

	return &codedError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) CodedError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
