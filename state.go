package gitlab

import (
	"strings"

	"github.com/aviz92/gitlab-plus/errors"
)

// MergeRequestState is the lifecycle state of a merge request as reported
// by the GitLab API.
type MergeRequestState string

// Merge request states.
const (
	// StateOpened indicates the merge request is open and may still change.
	StateOpened MergeRequestState = "opened"

	// StateClosed indicates the merge request was closed without merging.
	StateClosed MergeRequestState = "closed"

	// StateMerged indicates the merge request has been merged.
	StateMerged MergeRequestState = "merged"

	// StateLocked indicates the merge request is locked by GitLab,
	// usually mid-merge.
	StateLocked MergeRequestState = "locked"
)

// stateLabels maps each state to its display label.
var stateLabels = map[MergeRequestState]string{
	StateOpened: "Opened",
	StateClosed: "Closed",
	StateMerged: "Merged",
	StateLocked: "Locked",
}

// String returns the wire value of the state.
func (s MergeRequestState) String() string {
	return string(s)
}

// Label returns the display label for the state ("Opened", "Closed",
// "Merged", "Locked"). Unknown states return their raw value.
func (s MergeRequestState) Label() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether s is one of the four states GitLab reports.
func (s MergeRequestState) Valid() bool {
	_, ok := stateLabels[s]
	return ok
}

// IsTerminal reports whether the state is final. A merge request in a
// terminal state will not transition again without user action.
func (s MergeRequestState) IsTerminal() bool {
	switch s {
	case StateClosed, StateMerged, StateLocked:
		return true
	default:
		return false
	}
}

// ParseState converts a raw state string into a MergeRequestState.
// Matching is case-insensitive, so both wire values ("opened") and display
// labels ("Opened") parse. An unrecognized value means the API returned
// something outside its own contract and yields an ErrCodeInvalidInput error.
func ParseState(raw string) (MergeRequestState, error) {
	state := MergeRequestState(strings.ToLower(raw))
	if !state.Valid() {
		err := errors.Newf(errors.CodeInvalidInput, "unrecognized merge request state: %q", raw)
		return "", errors.WithContext(err, "state", raw)
	}
	return state, nil
}
