package gitlab

import (
	"context"

	"go.uber.org/zap"
)

// Project represents a GitLab project and provides project-scoped operations.
//
// Project instances are typically created through a Client:
//
//	client := gitlab.NewClient(provider, "group/project")
//	project := client.Project()
//
// Call Get() to fetch the project data:
//
//	if err := project.Get(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Project:", project.PathWithNamespace())
type Project struct {
	client  *Client
	project string
	data    *ProjectData
}

// Get fetches the project data from GitLab.
// Returns an ErrCodeNotFound error if the project doesn't exist.
func (p *Project) Get(ctx context.Context) error {
	data, err := p.client.provider.GetProject(ctx, p.project)
	if err != nil {
		return WrapHTTPError(err, 0, "failed to get project")
	}
	p.data = data
	return nil
}

// Refresh refreshes the project data from GitLab.
// This is an alias for Get() that makes the intent clearer when updating existing data.
func (p *Project) Refresh(ctx context.Context) error {
	return p.Get(ctx)
}

// ID returns the numeric project ID.
// Returns zero if project data hasn't been fetched yet.
func (p *Project) ID() int64 {
	if p.data == nil {
		return 0
	}
	return p.data.ID
}

// Name returns the project display name.
// Returns empty string if project data hasn't been fetched yet.
func (p *Project) Name() string {
	if p.data == nil {
		return ""
	}
	return p.data.Name
}

// PathWithNamespace returns the full project path (group/project).
// If project data has been fetched, returns the data's path. Otherwise,
// returns the identifier the handle was created with.
func (p *Project) PathWithNamespace() string {
	if p.data != nil {
		return p.data.PathWithNamespace
	}
	return p.project
}

// Description returns the project description.
// Returns empty string if project data hasn't been fetched yet.
func (p *Project) Description() string {
	if p.data == nil {
		return ""
	}
	return p.data.Description
}

// DefaultBranch returns the default branch name.
// Returns empty string if project data hasn't been fetched yet.
func (p *Project) DefaultBranch() string {
	if p.data == nil {
		return ""
	}
	return p.data.DefaultBranch
}

// WebURL returns the URL to view the project on GitLab.
// Returns empty string if project data hasn't been fetched yet.
func (p *Project) WebURL() string {
	if p.data == nil {
		return ""
	}
	return p.data.WebURL
}

// IsArchived returns true if the project is archived.
// Returns false if project data hasn't been fetched yet.
func (p *Project) IsArchived() bool {
	if p.data == nil {
		return false
	}
	return p.data.Archived
}

// Data returns the underlying project data.
// Returns nil if project data hasn't been fetched yet.
// This provides access to all project fields including timestamps.
func (p *Project) Data() *ProjectData {
	return p.data
}

// File operations

// GetFileContent retrieves the raw content of a file at the given ref.
//
// Example:
//
//	content, err := project.GetFileContent(ctx, "main", "config/app.yaml")
func (p *Project) GetFileContent(ctx context.Context, ref, path string) ([]byte, error) {
	content, err := p.client.provider.GetRawFile(ctx, p.project, ref, path)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to get file content")
	}

	return content, nil
}

// GetFile retrieves file metadata and encoded content at the given ref.
// Use Decode on the returned data to read the content.
//
// Example:
//
//	file, err := project.GetFile(ctx, "main", "config/app.yaml")
//	content, err := file.Decode()
func (p *Project) GetFile(ctx context.Context, ref, path string) (*FileData, error) {
	data, err := p.client.provider.GetFile(ctx, p.project, ref, path)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to get file")
	}

	return data, nil
}

// Branch operations

// CreateBranch creates a new branch from the given ref.
//
// Example:
//
//	branch, err := project.CreateBranch(ctx, "release-1.2", "main")
func (p *Project) CreateBranch(ctx context.Context, name, ref string) (*Branch, error) {
	data, err := p.client.provider.CreateBranch(ctx, p.project, CreateBranchOptions{
		Name: name,
		Ref:  ref,
	})
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to create branch")
	}

	p.client.logger.Info("created branch",
		zap.String("project", p.project),
		zap.String("branch", data.Name),
		zap.String("ref", ref),
	)

	return &Branch{
		client:  p.client,
		project: p.project,
		data:    data,
	}, nil
}

// GetBranch retrieves a branch by name.
//
// Example:
//
//	branch, err := project.GetBranch(ctx, "main")
func (p *Project) GetBranch(ctx context.Context, name string) (*Branch, error) {
	data, err := p.client.provider.GetBranch(ctx, p.project, name)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to get branch")
	}

	return &Branch{
		client:  p.client,
		project: p.project,
		data:    data,
	}, nil
}

// Tag operations

// CreateTag creates a new tag from the given ref.
//
// Example:
//
//	tag, err := project.CreateTag(ctx, "v1.2.0", "main",
//	    gitlab.WithTagMessage("Release 1.2.0"),
//	)
func (p *Project) CreateTag(ctx context.Context, name, ref string, opts ...TagOption) (*Tag, error) {
	createOpts := CreateTagOptions{
		Name: name,
		Ref:  ref,
	}

	for _, opt := range opts {
		opt(&createOpts)
	}

	data, err := p.client.provider.CreateTag(ctx, p.project, createOpts)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to create tag")
	}

	p.client.logger.Info("created tag",
		zap.String("project", p.project),
		zap.String("tag", data.Name),
		zap.String("ref", ref),
	)

	return &Tag{
		client:  p.client,
		project: p.project,
		data:    data,
	}, nil
}

// GetTag retrieves a tag by name.
//
// Example:
//
//	tag, err := project.GetTag(ctx, "v1.2.0")
func (p *Project) GetTag(ctx context.Context, name string) (*Tag, error) {
	data, err := p.client.provider.GetTag(ctx, p.project, name)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to get tag")
	}

	return &Tag{
		client:  p.client,
		project: p.project,
		data:    data,
	}, nil
}

// Merge request operations

// CreateMergeRequest creates a new merge request in the project.
//
// Example:
//
//	mr, err := project.CreateMergeRequest(ctx, gitlab.CreateMergeRequestOptions{
//	    Title:        "Add new feature",
//	    Description:  "This MR adds...",
//	    SourceBranch: "feature-branch",
//	    TargetBranch: "main",
//	})
func (p *Project) CreateMergeRequest(ctx context.Context, opts CreateMergeRequestOptions) (*MergeRequest, error) {
	data, err := p.client.provider.CreateMergeRequest(ctx, p.project, opts)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to create merge request")
	}

	p.client.logger.Info("created merge request",
		zap.String("project", p.project),
		zap.Int("iid", data.IID),
		zap.String("source_branch", data.SourceBranch),
		zap.String("target_branch", data.TargetBranch),
	)

	return &MergeRequest{
		client:  p.client,
		project: p.project,
		data:    data,
	}, nil
}

// GetMergeRequest retrieves a merge request by its project-scoped IID.
//
// Example:
//
//	mr, err := project.GetMergeRequest(ctx, 42)
func (p *Project) GetMergeRequest(ctx context.Context, iid int) (*MergeRequest, error) {
	data, err := p.client.provider.GetMergeRequest(ctx, p.project, iid)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to get merge request")
	}

	return &MergeRequest{
		client:  p.client,
		project: p.project,
		data:    data,
	}, nil
}

// ListMergeRequests lists merge requests in the project with optional filtering.
//
// Example:
//
//	mrs, err := project.ListMergeRequests(ctx,
//	    gitlab.WithMRState("opened"),
//	    gitlab.WithTargetBranch("main"),
//	)
func (p *Project) ListMergeRequests(ctx context.Context, opts ...MergeRequestFilterOption) ([]*MergeRequest, error) {
	listOpts := ListMergeRequestsOptions{
		State: string(StateOpened), // default to opened
	}

	for _, opt := range opts {
		opt(&listOpts)
	}

	dataList, err := p.client.provider.ListMergeRequests(ctx, p.project, listOpts)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to list merge requests")
	}

	mrs := make([]*MergeRequest, len(dataList))
	for i, data := range dataList {
		mrs[i] = &MergeRequest{
			client:  p.client,
			project: p.project,
			data:    data,
		}
	}

	return mrs, nil
}
