package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil error", nil, CodeUnknown},
		{"plain error", stderrors.New("plain"), CodeUnknown},
		{"coded error", New(CodeNotFound, "missing"), CodeNotFound},
		{"wrapped coded error", fmt.Errorf("outer: %w", New(CodeConflict, "conflict")), CodeConflict},
		{"outermost code wins", Wrap(New(CodeNotFound, "inner"), CodeInternal, "outer"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestGetClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil error", nil, ClassificationPermanent},
		{"plain error", stderrors.New("plain"), ClassificationPermanent},
		{"retryable", New(CodeRateLimit, "slow down"), ClassificationRetryable},
		{"permanent", New(CodeForbidden, "denied"), ClassificationPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetClassification(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	require.False(t, IsRetryable(nil))
	require.False(t, IsRetryable(stderrors.New("plain")))
	require.True(t, IsRetryable(New(CodeTimeout, "deadline")))
	require.False(t, IsRetryable(New(CodeUnauthorized, "bad token")))
}

func TestIs_TraversesChain(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := Wrap(Wrap(sentinel, CodeNetwork, "inner"), CodeInternal, "outer")

	require.True(t, Is(err, sentinel))
	require.False(t, Is(err, stderrors.New("other")))
}

func TestAs_FindsCodedError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(CodeInvalidConfig, "missing token"))

	var coded CodedError
	require.True(t, As(err, &coded))
	require.Equal(t, CodeInvalidConfig, coded.Code())
}
