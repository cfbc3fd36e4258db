package gitlab

import (
	"encoding/base64"
	"time"

	"github.com/aviz92/gitlab-plus/errors"
)

// UserData contains information about a GitLab user.
type UserData struct {
	// Identification
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`

	// Metadata
	Email string `json:"email"`
	State string `json:"state"`

	// URL
	WebURL string `json:"web_url"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
}

// ProjectData contains project information from the provider.
type ProjectData struct {
	// Identification
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Path              string `json:"path"`
	PathWithNamespace string `json:"path_with_namespace"`

	// Metadata
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Visibility    string `json:"visibility"`
	Archived      bool   `json:"archived"`

	// URLs
	HTTPURL string `json:"http_url_to_repo"`
	SSHURL  string `json:"ssh_url_to_repo"`
	WebURL  string `json:"web_url"`

	// Timestamps
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// CommitData contains the commit a branch or tag points at.
type CommitData struct {
	// Identification
	SHA      string `json:"sha"`
	ShortSHA string `json:"short_sha"`

	// Content
	Title   string `json:"title"`
	Message string `json:"message"`

	// Authorship
	AuthorName string `json:"author_name"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
}

// BranchData contains branch information from the provider.
type BranchData struct {
	// Identification
	Name string `json:"name"`

	// State
	Default bool `json:"default"`
	Merged  bool `json:"merged"`

	// Protection
	Protected          bool `json:"protected"`
	DevelopersCanPush  bool `json:"developers_can_push"`
	DevelopersCanMerge bool `json:"developers_can_merge"`

	// Commit the branch currently points at
	Commit *CommitData `json:"commit,omitempty"`

	// URL
	WebURL string `json:"web_url"`
}

// TagData contains tag information from the provider.
type TagData struct {
	// Identification
	Name string `json:"name"`

	// Content
	Message string `json:"message"`

	// Protection
	Protected bool `json:"protected"`

	// Commit the tag points at
	Commit *CommitData `json:"commit,omitempty"`
}

// MergeRequestData contains merge request information from the provider.
// It is a point-in-time snapshot: Refresh replaces the whole value rather
// than mutating it.
type MergeRequestData struct {
	// Identification
	IID       int   `json:"iid"`
	ProjectID int64 `json:"project_id"`

	// Content
	Title       string `json:"title"`
	Description string `json:"description"`

	// Branch information
	SourceBranch string `json:"source_branch"`
	TargetBranch string `json:"target_branch"`
	SHA          string `json:"sha"`

	// State and metadata
	State               MergeRequestState `json:"state"`
	DetailedMergeStatus string            `json:"detailed_merge_status,omitempty"`
	HasConflicts        *bool             `json:"has_conflicts,omitempty"`
	Author              string            `json:"author"`
	Labels              []string          `json:"labels"`
	Draft               bool              `json:"draft"`

	// URL
	WebURL string `json:"web_url"`

	// Timestamps
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// Detailed merge status values that signal a conflict.
const (
	// MergeStatusConflicts indicates the source branch conflicts with the target.
	MergeStatusConflicts = "conflicts"

	// MergeStatusCannotBeMerged is the legacy status GitLab reports for
	// merge requests that cannot be merged.
	MergeStatusCannotBeMerged = "cannot_be_merged"
)

// FileData contains repository file content and metadata.
// Content is encoded as reported by the API; use Decode to read it.
type FileData struct {
	// Identification
	Path string `json:"file_path"`
	Name string `json:"file_name"`
	Ref  string `json:"ref"`

	// Content
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	Size     int    `json:"size"`

	// Blob information
	BlobID       string `json:"blob_id"`
	CommitID     string `json:"commit_id"`
	LastCommitID string `json:"last_commit_id"`
}

// Decode returns the decoded file content.
// GitLab serves file content base64-encoded; any other declared encoding
// yields an ErrCodeInvalidInput error.
func (f *FileData) Decode() ([]byte, error) {
	if f.Encoding != "" && f.Encoding != "base64" {
		return nil, errors.Newf(errors.CodeInvalidInput, "unsupported file encoding: %s", f.Encoding)
	}
	content, err := base64.StdEncoding.DecodeString(f.Content)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to decode file content")
	}
	return content, nil
}

// ListOptions contains options for list operations.
type ListOptions struct {
	// Page is the page number for pagination (1-indexed)
	Page int

	// PerPage is the number of items per page
	PerPage int
}

// CreateBranchOptions contains options for creating a branch.
type CreateBranchOptions struct {
	// Name is the name of the branch to create (required)
	Name string

	// Ref is the branch name or commit SHA to create the branch from (required)
	Ref string
}

// CreateTagOptions contains options for creating a tag.
type CreateTagOptions struct {
	// Name is the tag name (required)
	Name string

	// Ref is the branch name or commit SHA to create the tag from (required)
	Ref string

	// Message creates an annotated tag when non-empty
	Message string
}

// CreateMergeRequestOptions contains options for creating a merge request.
type CreateMergeRequestOptions struct {
	// Title is the merge request title (required)
	Title string

	// Description is the merge request description
	Description string

	// SourceBranch is the branch containing the changes (required)
	SourceBranch string

	// TargetBranch is the branch to merge into (required)
	TargetBranch string

	// Labels is the list of labels to apply
	Labels []string

	// Draft creates the merge request as a draft
	Draft bool

	// RemoveSourceBranch deletes the source branch once merged
	RemoveSourceBranch bool

	// Squash squashes the commits into a single commit when merging
	Squash bool
}

// ListMergeRequestsOptions contains options for listing merge requests.
type ListMergeRequestsOptions struct {
	// State filters by state ("opened", "closed", "merged", "locked", "all")
	State string

	// SourceBranch filters by source branch
	SourceBranch string

	// TargetBranch filters by target branch
	TargetBranch string

	// Labels filters by labels (all must match)
	Labels []string

	// AuthorUsername filters by the author's username
	AuthorUsername string

	// ListOptions for pagination
	ListOptions
}

// StateAll lists merge requests in every state.
const StateAll = "all"
