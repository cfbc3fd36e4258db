package gitlab

import "context"

// Branch represents a branch in a GitLab project.
//
// Branch instances are typically created through a Project:
//
//	branch, err := project.CreateBranch(ctx, "release-1.2", "main")
//
// Or by retrieving an existing branch:
//
//	branch, err := project.GetBranch(ctx, "main")
//	fmt.Println(branch.CommitSHA())
type Branch struct {
	client  *Client
	project string
	data    *BranchData
}

// Refresh refreshes the branch data from GitLab.
func (b *Branch) Refresh(ctx context.Context) error {
	data, err := b.client.provider.GetBranch(ctx, b.project, b.data.Name)
	if err != nil {
		return WrapHTTPError(err, 0, "failed to refresh branch")
	}
	b.data = data
	return nil
}

// Name returns the branch name.
func (b *Branch) Name() string {
	return b.data.Name
}

// IsDefault returns true if this is the project's default branch.
func (b *Branch) IsDefault() bool {
	return b.data.Default
}

// IsMerged returns true if the branch has been merged into the default branch.
func (b *Branch) IsMerged() bool {
	return b.data.Merged
}

// IsProtected returns true if the branch is protected.
func (b *Branch) IsProtected() bool {
	return b.data.Protected
}

// CommitSHA returns the SHA of the commit the branch points at.
// Returns empty string if the provider did not report a commit.
func (b *Branch) CommitSHA() string {
	if b.data.Commit == nil {
		return ""
	}
	return b.data.Commit.SHA
}

// WebURL returns the URL to view the branch on GitLab.
func (b *Branch) WebURL() string {
	return b.data.WebURL
}

// Data returns the underlying branch data.
// This provides access to all branch fields including the commit.
func (b *Branch) Data() *BranchData {
	return b.data
}
