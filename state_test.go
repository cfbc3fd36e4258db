package gitlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviz92/gitlab-plus/errors"
)

func TestParseState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		want      MergeRequestState
		wantError bool
	}{
		{
			name: "opened",
			raw:  "opened",
			want: StateOpened,
		},
		{
			name: "closed",
			raw:  "closed",
			want: StateClosed,
		},
		{
			name: "merged",
			raw:  "merged",
			want: StateMerged,
		},
		{
			name: "locked",
			raw:  "locked",
			want: StateLocked,
		},
		{
			name: "display label",
			raw:  "Merged",
			want: StateMerged,
		},
		{
			name: "mixed case",
			raw:  "oPeNeD",
			want: StateOpened,
		},
		{
			name:      "unknown state",
			raw:       "hibernating",
			wantError: true,
		},
		{
			name:      "empty string",
			raw:       "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state, err := ParseState(tt.raw)

			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestMergeRequestState_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Opened", StateOpened.Label())
	assert.Equal(t, "Closed", StateClosed.Label())
	assert.Equal(t, "Merged", StateMerged.Label())
	assert.Equal(t, "Locked", StateLocked.Label())

	// Unknown states fall back to their raw value.
	assert.Equal(t, "hibernating", MergeRequestState("hibernating").Label())
}

func TestMergeRequestState_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, StateOpened.Valid())
	assert.True(t, StateClosed.Valid())
	assert.True(t, StateMerged.Valid())
	assert.True(t, StateLocked.Valid())
	assert.False(t, MergeRequestState("hibernating").Valid())
	assert.False(t, MergeRequestState("").Valid())
}

func TestMergeRequestState_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, StateOpened.IsTerminal())
	assert.True(t, StateClosed.IsTerminal())
	assert.True(t, StateMerged.IsTerminal())
	assert.True(t, StateLocked.IsTerminal())
}

func TestMergeRequestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "opened", StateOpened.String())
	assert.Equal(t, "merged", StateMerged.String())
}
