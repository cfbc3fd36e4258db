package gitlab

import (
	"fmt"
	"net/http"

	"github.com/aviz92/gitlab-plus/errors"
)

// GitLab-specific error codes (use existing codes from the errors package).
// These are convenience aliases for readability in GitLab context.
const (
	// ErrCodeNotFound indicates the requested resource does not exist.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeAuthenticationFailed indicates missing or rejected credentials.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates the user may not perform the operation.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeRateLimited indicates the API rate limit has been exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeInvalidInput indicates malformed parameters or data.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeConflict indicates a conflict (e.g., a merge request that cannot be merged).
	ErrCodeConflict = errors.CodeConflict

	// ErrCodeTimeout indicates an operation exceeded its time bound.
	ErrCodeTimeout = errors.CodeTimeout

	// ErrCodeNetwork indicates a failed network operation.
	ErrCodeNetwork = errors.CodeNetwork

	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal = errors.CodeInternal
)

// httpStatusCodes maps GitLab API response statuses to error codes.
// Statuses outside the map classify as network failures at 500 and above
// and internal errors below.
var httpStatusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:          errors.CodeInvalidInput,
	http.StatusUnauthorized:        errors.CodeUnauthorized,
	http.StatusForbidden:           errors.CodeForbidden,
	http.StatusNotFound:            errors.CodeNotFound,
	http.StatusConflict:            errors.CodeConflict,
	http.StatusUnprocessableEntity: errors.CodeInvalidInput,
	http.StatusTooManyRequests:     errors.CodeRateLimit,
}

// WrapHTTPError wraps an error based on the HTTP status code from the
// GitLab API. A zero status keeps whatever code err already carries, so
// errors that were classified by a provider pass through unchanged.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}

	if statusCode == 0 {
		return errors.Wrap(err, errors.GetCode(err), message)
	}

	code, ok := httpStatusCodes[statusCode]
	if !ok {
		if statusCode >= 500 {
			code = errors.CodeNetwork
		} else {
			code = errors.CodeInternal
		}
	}

	return errors.Wrap(err, code, message)
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	err = errors.WithContext(err, "reason", reason)
	return err
}

// newAuthenticationFailedError creates an authentication failed error with context.
func newAuthenticationFailedError(message string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, errors.CodeUnauthorized, message)
	}
	return errors.New(errors.CodeUnauthorized, message)
}
