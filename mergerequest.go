package gitlab

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aviz92/gitlab-plus/errors"
)

// MergeRequest represents a GitLab merge request.
//
// MergeRequest instances are typically created through a Project:
//
//	project := client.Project()
//	mr, err := project.CreateMergeRequest(ctx, gitlab.CreateMergeRequestOptions{
//	    Title:        "Add new feature",
//	    SourceBranch: "feature-branch",
//	    TargetBranch: "main",
//	})
//
// Or by retrieving existing merge requests:
//
//	mrs, err := project.ListMergeRequests(ctx, gitlab.WithMRState("opened"))
//	for _, mr := range mrs {
//	    fmt.Println(mr.Title())
//	}
type MergeRequest struct {
	client  *Client
	project string
	data    *MergeRequestData
}

// Refresh refreshes the merge request data from GitLab.
func (mr *MergeRequest) Refresh(ctx context.Context) error {
	data, err := mr.client.provider.GetMergeRequest(ctx, mr.project, mr.data.IID)
	if err != nil {
		return WrapHTTPError(err, 0, "failed to refresh merge request")
	}
	mr.data = data
	return nil
}

// HasConflicts reports whether the merge request currently has merge
// conflicts. The explicit conflicts flag is checked first; when it is
// absent or false the detailed merge status is consulted. Absence of both
// signals means no conflict, not unknown.
func (mr *MergeRequest) HasConflicts() bool {
	conflict := (mr.data.HasConflicts != nil && *mr.data.HasConflicts) ||
		mr.data.DetailedMergeStatus == MergeStatusConflicts ||
		mr.data.DetailedMergeStatus == MergeStatusCannotBeMerged

	if conflict {
		mr.client.logger.Error("merge request has conflicts",
			zap.Int("iid", mr.data.IID),
			zap.String("detailed_merge_status", mr.data.DetailedMergeStatus),
		)
	}

	return conflict
}

// IsMerged returns true if the merge request has been merged.
// The outcome is also logged for caller visibility.
func (mr *MergeRequest) IsMerged() bool {
	if mr.data.State == StateMerged {
		mr.client.logger.Info("merge request is merged", zap.Int("iid", mr.data.IID))
		return true
	}

	mr.client.logger.Error("merge request is not merged",
		zap.Int("iid", mr.data.IID),
		zap.String("state", mr.data.State.Label()),
	)
	return false
}

// IsOpen returns true if the merge request is open.
// The outcome is also logged for caller visibility.
func (mr *MergeRequest) IsOpen() bool {
	if mr.data.State == StateOpened {
		mr.client.logger.Info("merge request is open", zap.Int("iid", mr.data.IID))
		return true
	}

	mr.client.logger.Error("merge request is not open",
		zap.Int("iid", mr.data.IID),
		zap.String("state", mr.data.State.Label()),
	)
	return false
}

// IsClosed returns true if the merge request was closed without merging.
func (mr *MergeRequest) IsClosed() bool {
	return mr.data.State == StateClosed
}

// IsLocked returns true if the merge request is locked.
func (mr *MergeRequest) IsLocked() bool {
	return mr.data.State == StateLocked
}

// IsFinished returns true once the merge request has reached a terminal
// state (closed, merged, or locked).
func (mr *MergeRequest) IsFinished() bool {
	return mr.data.State.IsTerminal()
}

// Wait polls the merge request until it reaches a terminal state.
//
// Each cycle first enforces the timeout, then refreshes the snapshot and
// inspects it: a detected conflict fails with an ErrCodeConflict error, a
// terminal state returns nil, and anything else suspends for the poll
// interval. Collaborator failures during refresh propagate immediately.
// The caller interprets the outcome from the final snapshot:
//
//	err := mr.Wait(ctx,
//	    gitlab.WithPollInterval(10*time.Second),
//	    gitlab.WithWaitTimeout(15*time.Minute),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if mr.IsMerged() {
//	    fmt.Println("merged")
//	}
//
// Without WithWaitTimeout the wait is unbounded; cancel the context to
// stop it externally.
func (mr *MergeRequest) Wait(ctx context.Context, opts ...WaitOption) error {
	cfg := waitConfig{pollInterval: defaultPollInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pollInterval <= 0 {
		cfg.pollInterval = defaultPollInterval
	}

	mr.client.logger.Info("waiting for merge request to finish",
		zap.Int("iid", mr.data.IID),
		zap.Duration("poll_interval", cfg.pollInterval),
		zap.Duration("timeout", cfg.timeout),
	)

	ticker := time.NewTicker(cfg.pollInterval)
	defer ticker.Stop()

	start := time.Now()
	for {
		// The timeout is enforced before the fetch: the cycle on which the
		// elapsed time first exceeds the bound performs no further work.
		if cfg.timeout > 0 && time.Since(start) > cfg.timeout {
			err := errors.Newf(errors.CodeTimeout, "timed out waiting for merge request !%d after %s", mr.data.IID, cfg.timeout)
			return errors.WithContext(err, "iid", mr.data.IID)
		}

		if err := mr.Refresh(ctx); err != nil {
			return err
		}

		mr.client.logger.Debug("polled merge request",
			zap.Int("iid", mr.data.IID),
			zap.String("state", mr.data.State.Label()),
		)

		if mr.HasConflicts() {
			err := errors.Newf(errors.CodeConflict, "merge request !%d has conflicts", mr.data.IID)
			return errors.WithContext(err, "iid", mr.data.IID)
		}

		if mr.data.State.IsTerminal() {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), errors.CodeTimeout, "merge request wait cancelled or timed out")
		case <-ticker.C:
		}
	}
}

// IID returns the project-scoped merge request IID.
func (mr *MergeRequest) IID() int {
	return mr.data.IID
}

// Title returns the merge request title.
func (mr *MergeRequest) Title() string {
	return mr.data.Title
}

// Description returns the merge request description.
func (mr *MergeRequest) Description() string {
	return mr.data.Description
}

// State returns the merge request state.
func (mr *MergeRequest) State() MergeRequestState {
	return mr.data.State
}

// SourceBranch returns the branch the changes come from.
func (mr *MergeRequest) SourceBranch() string {
	return mr.data.SourceBranch
}

// TargetBranch returns the branch the changes merge into.
func (mr *MergeRequest) TargetBranch() string {
	return mr.data.TargetBranch
}

// Author returns the username of the merge request author.
func (mr *MergeRequest) Author() string {
	return mr.data.Author
}

// Labels returns the list of labels applied to the merge request.
func (mr *MergeRequest) Labels() []string {
	return mr.data.Labels
}

// IsDraft returns true if the merge request is a draft.
func (mr *MergeRequest) IsDraft() bool {
	return mr.data.Draft
}

// SHA returns the HEAD commit SHA of the source branch.
func (mr *MergeRequest) SHA() string {
	return mr.data.SHA
}

// WebURL returns the URL to view the merge request on GitLab.
func (mr *MergeRequest) WebURL() string {
	return mr.data.WebURL
}

// Data returns the underlying merge request data.
// This provides access to all merge request fields including timestamps.
func (mr *MergeRequest) Data() *MergeRequestData {
	return mr.data
}
