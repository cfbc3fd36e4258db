package errors

import stderrors "errors"

// toCoded returns the CodedError in err's chain, converting plain errors to
// CodeUnknown.
func toCoded(err error) CodedError {
	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded
	}
	return &codedError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}

// WithContext returns a new error with one context field added.
// Existing fields are preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "project", "group/app")
//	err = errors.WithContext(err, "merge_request_iid", 42)
func WithContext(err error, key string, value any) CodedError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]any{key: value})
}

// WithContextMap returns a new error with the given fields merged into its
// context. New fields override existing ones with the same key.
//
// Returns nil if err is nil.
func WithContextMap(err error, fields map[string]any) CodedError {
	if err == nil {
		return nil
	}

	coded := toCoded(err)

	merged := make(map[string]any)
	for k, v := range coded.Context() {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &codedError{
		code:           coded.Code(),
		classification: coded.Classification(),
		message:        coded.Message(),
		context:        merged,
		cause:          coded.Unwrap(),
	}
}

// WithClassification returns a new error with its classification overridden.
// Useful when a normally permanent failure is known to be transient in a
// specific call path, or the reverse.
//
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) CodedError {
	if err == nil {
		return nil
	}

	coded := toCoded(err)

	return &codedError{
		code:           coded.Code(),
		classification: classification,
		message:        coded.Message(),
		context:        coded.Context(),
		cause:          coded.Unwrap(),
	}
}
