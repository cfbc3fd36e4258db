package gitlab

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider defines the interface for interacting with GitLab.
// Implementations include SDKProvider (using the official GitLab Go SDK)
// and CLIProvider (using the glab CLI).
//
// The provider interface abstracts the underlying GitLab API implementation,
// allowing users to choose between the official SDK or the glab CLI tool
// based on their needs. This design enables easy testing through mock
// implementations and provides flexibility in authentication and deployment
// scenarios.
//
// All methods accept a context.Context as the first parameter for cancellation
// and timeout control. Projects are addressed by a numeric ID ("42") or a full
// path ("group/project"). Methods return structured data types (e.g.,
// ProjectData, MergeRequestData) that are independent of the underlying
// implementation.
//
// Example using SDK provider:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("glpat-..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	project, err := provider.GetProject(ctx, "group/project")
//
// Example using CLI provider:
//
//	provider, err := cli.NewCLIProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mrs, err := provider.ListMergeRequests(ctx, "group/project", gitlab.ListMergeRequestsOptions{State: "opened"})
type Provider interface {
	// User operations

	// CurrentUser returns the user the provider is authenticated as.
	// Returns an ErrCodeAuthenticationFailed error when credentials are
	// missing or invalid.
	CurrentUser(ctx context.Context) (*UserData, error)

	// Project operations

	// GetProject retrieves project information.
	// Returns an ErrCodeNotFound error if the project doesn't exist.
	// Returns an ErrCodePermissionDenied error if the user lacks access.
	GetProject(ctx context.Context, project string) (*ProjectData, error)

	// Repository file operations

	// GetFile retrieves file metadata together with its encoded content
	// at the given ref.
	// Returns an ErrCodeNotFound error if the file or ref doesn't exist.
	GetFile(ctx context.Context, project, ref, path string) (*FileData, error)

	// GetRawFile retrieves the raw content of a file at the given ref.
	// Returns an ErrCodeNotFound error if the file or ref doesn't exist.
	GetRawFile(ctx context.Context, project, ref, path string) ([]byte, error)

	// Branch operations

	// GetBranch retrieves a branch by name.
	// Returns an ErrCodeNotFound error if the branch doesn't exist.
	GetBranch(ctx context.Context, project, name string) (*BranchData, error)

	// CreateBranch creates a new branch from the given ref.
	// Returns an ErrCodeInvalidInput error if the branch already exists or
	// the ref is unknown (GitLab reports both as a validation failure).
	CreateBranch(ctx context.Context, project string, opts CreateBranchOptions) (*BranchData, error)

	// Tag operations

	// GetTag retrieves a tag by name.
	// Returns an ErrCodeNotFound error if the tag doesn't exist.
	GetTag(ctx context.Context, project, name string) (*TagData, error)

	// CreateTag creates a new tag from the given ref, annotated when a
	// message is set.
	CreateTag(ctx context.Context, project string, opts CreateTagOptions) (*TagData, error)

	// Merge request operations

	// GetMergeRequest retrieves a merge request by its project-scoped IID.
	// Returns an ErrCodeNotFound error if the merge request doesn't exist.
	GetMergeRequest(ctx context.Context, project string, iid int) (*MergeRequestData, error)

	// CreateMergeRequest creates a new merge request.
	// Returns an ErrCodeConflict error if an open merge request already
	// exists for the source branch.
	CreateMergeRequest(ctx context.Context, project string, opts CreateMergeRequestOptions) (*MergeRequestData, error)

	// ListMergeRequests lists merge requests for a project with optional
	// filtering. Returns an empty slice if nothing matches.
	ListMergeRequests(ctx context.Context, project string, opts ListMergeRequestsOptions) ([]*MergeRequestData, error)
}
