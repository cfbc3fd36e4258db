package errors

// ErrorClassification indicates whether the operation that produced an error
// may succeed if retried.
type ErrorClassification string

const (
	// ClassificationRetryable marks temporary failures such as network
	// errors, timeouts, and rate limits.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will not succeed on retry,
	// such as validation errors and permission denials.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable reports whether the classification allows a retry.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Temporary failures.
	CodeTimeout:     ClassificationRetryable,
	CodeNetwork:     ClassificationRetryable,
	CodeRateLimit:   ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,

	// Will not succeed on retry.
	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyExists:   ClassificationPermanent,
	CodeConflict:        ClassificationPermanent,
	CodeUnauthorized:    ClassificationPermanent,
	CodeForbidden:       ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeInvalidConfig:   ClassificationPermanent,
	CodeExecutionFailed: ClassificationPermanent,
	CodeNotImplemented:  ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// defaultClassification returns the default classification for a code.
// Unmapped codes fall back to permanent.
func defaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
