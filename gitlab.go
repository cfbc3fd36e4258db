// Package gitlab provides a clean, idiomatic wrapper around GitLab operations.
package gitlab

import (
	"time"

	"github.com/aviz92/gitlab-plus/errors"
)

// ParseGitLabTime parses a timestamp string from the GitLab API.
// GitLab uses RFC3339 format for timestamps.
func ParseGitLabTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse timestamp")
	}
	return t, nil
}
