package gitlab

import "time"

// This file contains option types and helper functions for the options
// pattern used throughout the library. Options provide a flexible way to
// configure operations without requiring large parameter lists.

// defaultPollInterval is how often Wait polls when no interval is configured.
const defaultPollInterval = 10 * time.Second

// waitConfig holds the resolved configuration for a single Wait call.
type waitConfig struct {
	pollInterval time.Duration
	timeout      time.Duration
}

// WaitOption configures a Wait call.
type WaitOption func(*waitConfig)

// WithPollInterval sets how often Wait fetches a fresh snapshot.
// Values less than or equal to zero fall back to the 10 second default.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(cfg *waitConfig) {
		cfg.pollInterval = interval
	}
}

// WithWaitTimeout bounds the total wall-clock time Wait is allowed to poll.
// Zero (the default) means no bound.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(cfg *waitConfig) {
		cfg.timeout = timeout
	}
}

// TagOption configures tag creation.
type TagOption func(*CreateTagOptions)

// WithTagMessage sets the annotation message, creating an annotated tag
// instead of a lightweight one.
func WithTagMessage(message string) TagOption {
	return func(opts *CreateTagOptions) {
		opts.Message = message
	}
}

// MergeRequestFilterOption configures merge request filtering.
type MergeRequestFilterOption func(*ListMergeRequestsOptions)

// WithMRState filters merge requests by state ("opened", "closed", "merged",
// "locked", "all").
func WithMRState(state string) MergeRequestFilterOption {
	return func(opts *ListMergeRequestsOptions) {
		opts.State = state
	}
}

// WithSourceBranch filters merge requests by source branch.
func WithSourceBranch(branch string) MergeRequestFilterOption {
	return func(opts *ListMergeRequestsOptions) {
		opts.SourceBranch = branch
	}
}

// WithTargetBranch filters merge requests by target branch.
func WithTargetBranch(branch string) MergeRequestFilterOption {
	return func(opts *ListMergeRequestsOptions) {
		opts.TargetBranch = branch
	}
}

// WithMRLabels filters merge requests by labels (all must match).
func WithMRLabels(labels ...string) MergeRequestFilterOption {
	return func(opts *ListMergeRequestsOptions) {
		opts.Labels = labels
	}
}

// WithAuthor filters merge requests by the author's username.
func WithAuthor(username string) MergeRequestFilterOption {
	return func(opts *ListMergeRequestsOptions) {
		opts.AuthorUsername = username
	}
}
