package gitlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviz92/gitlab-plus/errors"
)

func TestFileData_Decode(t *testing.T) {
	t.Parallel()

	t.Run("base64 content", func(t *testing.T) {
		t.Parallel()

		file := &FileData{
			Content:  "cmVwbGljYXM6IDM=",
			Encoding: "base64",
		}

		content, err := file.Decode()

		require.NoError(t, err)
		assert.Equal(t, []byte("replicas: 3"), content)
	})

	t.Run("empty encoding treated as base64", func(t *testing.T) {
		t.Parallel()

		file := &FileData{Content: "aGVsbG8="}

		content, err := file.Decode()

		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), content)
	})

	t.Run("invalid base64 content", func(t *testing.T) {
		t.Parallel()

		file := &FileData{
			Content:  "not base64!!!",
			Encoding: "base64",
		}

		_, err := file.Decode()

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("unsupported encoding", func(t *testing.T) {
		t.Parallel()

		file := &FileData{
			Content:  "plain text",
			Encoding: "text",
		}

		_, err := file.Decode()

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		assert.Contains(t, err.Error(), "unsupported file encoding")
	})
}
