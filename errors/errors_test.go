package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodedError_Error(t *testing.T) {
	err := New(CodeNotFound, "merge request not found")
	require.Equal(t, "[NOT_FOUND] merge request not found", err.Error())
}

func TestCodedError_Error_WithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, CodeNetwork, "failed to reach gitlab")

	require.Equal(t, "[NETWORK_ERROR] failed to reach gitlab: connection refused", err.Error())
}

func TestCodedError_Code(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
	}{
		{"not found", CodeNotFound},
		{"conflict", CodeConflict},
		{"unauthorized", CodeUnauthorized},
		{"timeout", CodeTimeout},
		{"execution failed", CodeExecutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test message")
			require.Equal(t, tt.code, err.Code())
		})
	}
}

func TestCodedError_Classification(t *testing.T) {
	tests := []struct {
		name          string
		code          ErrorCode
		wantRetryable bool
	}{
		{"timeout is retryable", CodeTimeout, true},
		{"network is retryable", CodeNetwork, true},
		{"rate limit is retryable", CodeRateLimit, true},
		{"unavailable is retryable", CodeUnavailable, true},
		{"not found is permanent", CodeNotFound, false},
		{"conflict is permanent", CodeConflict, false},
		{"unauthorized is permanent", CodeUnauthorized, false},
		{"invalid input is permanent", CodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			require.Equal(t, tt.wantRetryable, err.Classification().IsRetryable())
		})
	}
}

func TestCodedError_Message(t *testing.T) {
	err := Newf(CodeInvalidInput, "unknown merge request state %q", "unknown")
	require.Equal(t, `unknown merge request state "unknown"`, err.Message())
}

func TestCodedError_Context_Nil(t *testing.T) {
	err := New(CodeInternal, "internal error")
	require.Nil(t, err.Context())
}

func TestCodedError_Context_ReturnsCopy(t *testing.T) {
	err := New(CodeConflict, "merge request has conflicts")
	err = WithContext(err, "merge_request_iid", 17)

	ctx := err.Context()
	require.Equal(t, 17, ctx["merge_request_iid"])

	ctx["merge_request_iid"] = 99
	ctx["injected"] = true

	ctx2 := err.Context()
	require.Equal(t, 17, ctx2["merge_request_iid"])
	require.NotContains(t, ctx2, "injected")
}

func TestCodedError_Unwrap(t *testing.T) {
	cause := stderrors.New("original error")
	err := Wrap(cause, CodeNetwork, "request failed")

	require.Equal(t, cause, err.Unwrap())
}

func TestCodedError_Unwrap_NoWrap(t *testing.T) {
	err := New(CodeNotFound, "not found")
	require.Nil(t, err.Unwrap())
}

func TestCodedError_Unwrap_Chain(t *testing.T) {
	original := stderrors.New("root cause")
	inner := Wrap(original, CodeNetwork, "request failed")
	outer := Wrap(inner, CodeInternal, "refresh failed")

	require.Equal(t, inner, outer.Unwrap())
	require.True(t, stderrors.Is(outer, original))
}
