package gitlab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviz92/gitlab-plus/errors"
)

func TestParseGitLabTime(t *testing.T) {
	t.Parallel()

	t.Run("UTC timestamp", func(t *testing.T) {
		t.Parallel()

		parsed, err := ParseGitLabTime("2024-01-03T10:30:00Z")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.January, 3, 10, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("timestamp with offset", func(t *testing.T) {
		t.Parallel()

		parsed, err := ParseGitLabTime("2024-01-03T10:30:00+02:00")

		require.NoError(t, err)
		_, offset := parsed.Zone()
		assert.Equal(t, 2*60*60, offset)
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		t.Parallel()

		_, err := ParseGitLabTime("January 3rd")

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()

		_, err := ParseGitLabTime("")

		require.Error(t, err)
	})
}
