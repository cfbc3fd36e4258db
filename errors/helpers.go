package errors

import stderrors "errors"

// Is reports whether any error in err's chain matches target.
// Convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error. It reports the code of the
// outermost CodedError in the chain.
// Returns CodeUnknown if the error is nil or not a CodedError.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle the missing resource.
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded.Code()
	}
	return CodeUnknown
}

// GetClassification extracts the classification from an error.
// Returns ClassificationPermanent if the error is nil or not a CodedError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether the error is classified as retryable.
// Returns false if the error is nil or not a CodedError.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
