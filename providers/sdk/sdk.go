// Package sdk provides a GitLab provider implementation using the official client-go SDK.
//
// This package implements the Provider interface by wrapping the
// gitlab.com/gitlab-org/api/client-go SDK, providing a consistent API for
// interacting with GitLab projects, repository files, branches, tags, and
// merge requests.
package sdk

import (
	"context"
	"os"
	"strings"

	gitlab "github.com/aviz92/gitlab-plus"
	"github.com/aviz92/gitlab-plus/errors"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// tokenEnvVar is consulted when no token is configured explicitly.
const tokenEnvVar = "GITLAB_ACCESS_TOKEN"

// SDKProvider implements Provider using the client-go SDK.
type SDKProvider struct {
	client *gl.Client
}

// NewSDKProvider creates a provider using the GitLab SDK.
//
// When no token is configured, the GITLAB_ACCESS_TOKEN environment variable
// is used. A missing token does not fail construction; authentication errors
// surface from the first API call instead.
//
// Example with token authentication:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("glpat-..."))
//
// Example with a self-managed instance:
//
//	provider, err := sdk.NewSDKProvider(
//	    sdk.WithToken("glpat-..."),
//	    sdk.WithBaseURL("https://gitlab.example.com"),
//	)
//
// Example with custom client:
//
//	glClient, err := gl.NewClient("glpat-...", gl.WithBaseURL("https://gitlab.example.com"))
//	provider, err := sdk.NewSDKProvider(sdk.WithClient(glClient))
func NewSDKProvider(opts ...Option) (*SDKProvider, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// If no client was provided, create a default one
	if cfg.client == nil {
		token := cfg.token
		if token == "" {
			token = os.Getenv(tokenEnvVar)
		}

		var clientOpts []gl.ClientOptionFunc
		if cfg.baseURL != "" {
			clientOpts = append(clientOpts, gl.WithBaseURL(cfg.baseURL))
		}

		client, err := gl.NewClient(token, clientOpts...)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to create gitlab client")
		}
		cfg.client = client
	}

	return &SDKProvider{
		client: cfg.client,
	}, nil
}

// config holds configuration for SDKProvider.
type config struct {
	client  *gl.Client
	token   string
	baseURL string
}

// Option configures the SDK provider.
type Option func(*config) error

// WithToken sets the authentication token for the SDK provider.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithBaseURL sets the API base URL for the SDK provider.
// Use this for self-managed GitLab instances; the default is gitlab.com.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			err := errors.New(errors.CodeInvalidInput, "base URL cannot be empty")
			return errors.WithContext(err, "field", "baseURL")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithClient sets a custom GitLab client for the SDK provider.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings.
func WithClient(client *gl.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// CurrentUser retrieves the user the configured credentials belong to.
func (s *SDKProvider) CurrentUser(ctx context.Context) (*gitlab.UserData, error) {
	user, resp, err := s.client.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get current user")
	}

	return s.convertUser(user), nil
}

// convertUser converts a client-go User to UserData.
func (s *SDKProvider) convertUser(user *gl.User) *gitlab.UserData {
	if user == nil {
		return nil
	}

	data := &gitlab.UserData{
		ID:       int64(user.ID),
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		State:    user.State,
		WebURL:   user.WebURL,
	}

	if user.CreatedAt != nil {
		data.CreatedAt = *user.CreatedAt
	}

	return data
}

// GetProject retrieves project information.
// The project identifier is either the numeric ID or the full path
// (group/project); the SDK handles encoding either form.
func (s *SDKProvider) GetProject(ctx context.Context, project string) (*gitlab.ProjectData, error) {
	glProject, resp, err := s.client.Projects.GetProject(project, nil, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get project")
	}

	return s.convertProject(glProject), nil
}

// convertProject converts a client-go Project to ProjectData.
func (s *SDKProvider) convertProject(project *gl.Project) *gitlab.ProjectData {
	if project == nil {
		return nil
	}

	data := &gitlab.ProjectData{
		ID:                int64(project.ID),
		Name:              project.Name,
		Path:              project.Path,
		PathWithNamespace: project.PathWithNamespace,
		Description:       project.Description,
		DefaultBranch:     project.DefaultBranch,
		Visibility:        string(project.Visibility),
		Archived:          project.Archived,
		HTTPURL:           project.HTTPURLToRepo,
		SSHURL:            project.SSHURLToRepo,
		WebURL:            project.WebURL,
	}

	// Set timestamps
	if project.CreatedAt != nil {
		data.CreatedAt = *project.CreatedAt
	}
	if project.LastActivityAt != nil {
		data.LastActivityAt = *project.LastActivityAt
	}

	return data
}

// wrapError wraps client-go errors with appropriate error codes.
func (s *SDKProvider) wrapError(err error, resp *gl.Response, message string) error {
	if err == nil {
		return nil
	}

	// Extract status code from response
	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}

	// Try to get status code from ErrorResponse
	var glErr *gl.ErrorResponse
	if errors.As(err, &glErr) && glErr.Response != nil {
		statusCode = glErr.Response.StatusCode
	}

	if statusCode != 0 {
		return gitlab.WrapHTTPError(err, statusCode, message)
	}

	// Fallback to network error for unknown errors
	return errors.Wrap(err, errors.CodeNetwork, message)
}

// File operations

// GetFile retrieves file metadata and encoded content at the given ref.
func (s *SDKProvider) GetFile(ctx context.Context, project, ref, path string) (*gitlab.FileData, error) {
	opt := &gl.GetFileOptions{
		Ref: gl.Ptr(ref),
	}

	file, resp, err := s.client.RepositoryFiles.GetFile(project, path, opt, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get file")
	}

	return s.convertFile(file), nil
}

// GetRawFile retrieves the raw content of a file at the given ref.
func (s *SDKProvider) GetRawFile(ctx context.Context, project, ref, path string) ([]byte, error) {
	opt := &gl.GetRawFileOptions{
		Ref: gl.Ptr(ref),
	}

	content, resp, err := s.client.RepositoryFiles.GetRawFile(project, path, opt, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get raw file")
	}

	return content, nil
}

// convertFile converts a client-go File to FileData.
func (s *SDKProvider) convertFile(file *gl.File) *gitlab.FileData {
	if file == nil {
		return nil
	}

	return &gitlab.FileData{
		Path:         file.FilePath,
		Name:         file.FileName,
		Ref:          file.Ref,
		Content:      file.Content,
		Encoding:     file.Encoding,
		Size:         file.Size,
		BlobID:       file.BlobID,
		CommitID:     file.CommitID,
		LastCommitID: file.LastCommitID,
	}
}

// Branch operations

// CreateBranch creates a new branch from the given ref.
func (s *SDKProvider) CreateBranch(ctx context.Context, project string, opts gitlab.CreateBranchOptions) (*gitlab.BranchData, error) {
	createOpts := &gl.CreateBranchOptions{
		Branch: gl.Ptr(opts.Name),
		Ref:    gl.Ptr(opts.Ref),
	}

	branch, resp, err := s.client.Branches.CreateBranch(project, createOpts, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to create branch")
	}

	return s.convertBranch(branch), nil
}

// GetBranch retrieves a branch by name.
func (s *SDKProvider) GetBranch(ctx context.Context, project, name string) (*gitlab.BranchData, error) {
	branch, resp, err := s.client.Branches.GetBranch(project, name, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get branch")
	}

	return s.convertBranch(branch), nil
}

// convertBranch converts a client-go Branch to BranchData.
func (s *SDKProvider) convertBranch(branch *gl.Branch) *gitlab.BranchData {
	if branch == nil {
		return nil
	}

	return &gitlab.BranchData{
		Name:               branch.Name,
		Default:            branch.Default,
		Merged:             branch.Merged,
		Protected:          branch.Protected,
		DevelopersCanPush:  branch.DevelopersCanPush,
		DevelopersCanMerge: branch.DevelopersCanMerge,
		Commit:             s.convertCommit(branch.Commit),
		WebURL:             branch.WebURL,
	}
}

// convertCommit converts a client-go Commit to CommitData.
func (s *SDKProvider) convertCommit(commit *gl.Commit) *gitlab.CommitData {
	if commit == nil {
		return nil
	}

	data := &gitlab.CommitData{
		SHA:        commit.ID,
		ShortSHA:   commit.ShortID,
		Title:      commit.Title,
		Message:    commit.Message,
		AuthorName: commit.AuthorName,
	}

	if commit.CreatedAt != nil {
		data.CreatedAt = *commit.CreatedAt
	}

	return data
}

// Tag operations

// CreateTag creates a new tag from the given ref.
func (s *SDKProvider) CreateTag(ctx context.Context, project string, opts gitlab.CreateTagOptions) (*gitlab.TagData, error) {
	createOpts := &gl.CreateTagOptions{
		TagName: gl.Ptr(opts.Name),
		Ref:     gl.Ptr(opts.Ref),
	}

	// Only set a message for annotated tags; sending an empty message
	// would still create an annotated tag on some GitLab versions.
	if opts.Message != "" {
		createOpts.Message = gl.Ptr(opts.Message)
	}

	tag, resp, err := s.client.Tags.CreateTag(project, createOpts, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to create tag")
	}

	return s.convertTag(tag), nil
}

// GetTag retrieves a tag by name.
func (s *SDKProvider) GetTag(ctx context.Context, project, name string) (*gitlab.TagData, error) {
	tag, resp, err := s.client.Tags.GetTag(project, name, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get tag")
	}

	return s.convertTag(tag), nil
}

// convertTag converts a client-go Tag to TagData.
func (s *SDKProvider) convertTag(tag *gl.Tag) *gitlab.TagData {
	if tag == nil {
		return nil
	}

	return &gitlab.TagData{
		Name:      tag.Name,
		Message:   tag.Message,
		Protected: tag.Protected,
		Commit:    s.convertCommit(tag.Commit),
	}
}

// Merge request operations

// CreateMergeRequest creates a new merge request.
func (s *SDKProvider) CreateMergeRequest(ctx context.Context, project string, opts gitlab.CreateMergeRequestOptions) (*gitlab.MergeRequestData, error) {
	// GitLab has no draft field on the create endpoint; drafts are
	// expressed through the title prefix.
	title := opts.Title
	if opts.Draft && !strings.HasPrefix(title, "Draft: ") {
		title = "Draft: " + title
	}

	createOpts := &gl.CreateMergeRequestOptions{
		Title:              gl.Ptr(title),
		Description:        gl.Ptr(opts.Description),
		SourceBranch:       gl.Ptr(opts.SourceBranch),
		TargetBranch:       gl.Ptr(opts.TargetBranch),
		RemoveSourceBranch: gl.Ptr(opts.RemoveSourceBranch),
		Squash:             gl.Ptr(opts.Squash),
	}

	// Only set labels if they're non-empty
	if len(opts.Labels) > 0 {
		labels := gl.LabelOptions(opts.Labels)
		createOpts.Labels = &labels
	}

	mr, resp, err := s.client.MergeRequests.CreateMergeRequest(project, createOpts, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to create merge request")
	}

	return s.convertMergeRequest(mr)
}

// GetMergeRequest retrieves a specific merge request by IID.
func (s *SDKProvider) GetMergeRequest(ctx context.Context, project string, iid int) (*gitlab.MergeRequestData, error) {
	mr, resp, err := s.client.MergeRequests.GetMergeRequest(project, iid, nil, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get merge request")
	}

	return s.convertMergeRequest(mr)
}

// ListMergeRequests lists merge requests for a project with optional filtering.
func (s *SDKProvider) ListMergeRequests(ctx context.Context, project string, opts gitlab.ListMergeRequestsOptions) ([]*gitlab.MergeRequestData, error) {
	listOpts := &gl.ListProjectMergeRequestsOptions{
		ListOptions: gl.ListOptions{
			Page:    opts.Page,
			PerPage: opts.PerPage,
		},
	}

	// GitLab returns every state when the parameter is omitted
	if opts.State != "" && opts.State != gitlab.StateAll {
		listOpts.State = gl.Ptr(opts.State)
	}
	if opts.SourceBranch != "" {
		listOpts.SourceBranch = gl.Ptr(opts.SourceBranch)
	}
	if opts.TargetBranch != "" {
		listOpts.TargetBranch = gl.Ptr(opts.TargetBranch)
	}
	if opts.AuthorUsername != "" {
		listOpts.AuthorUsername = gl.Ptr(opts.AuthorUsername)
	}
	if len(opts.Labels) > 0 {
		labels := gl.LabelOptions(opts.Labels)
		listOpts.Labels = &labels
	}

	mrs, resp, err := s.client.MergeRequests.ListProjectMergeRequests(project, listOpts, gl.WithContext(ctx))
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to list merge requests")
	}

	result := make([]*gitlab.MergeRequestData, len(mrs))
	for i, mr := range mrs {
		data, err := s.convertMergeRequest(mr)
		if err != nil {
			return nil, err
		}
		result[i] = data
	}

	return result, nil
}

// convertMergeRequest converts a client-go MergeRequest to MergeRequestData.
// It fails when the wire state is not one of the states GitLab documents.
func (s *SDKProvider) convertMergeRequest(mr *gl.MergeRequest) (*gitlab.MergeRequestData, error) {
	if mr == nil {
		return nil, nil
	}

	state, err := gitlab.ParseState(mr.State)
	if err != nil {
		return nil, err
	}

	data := &gitlab.MergeRequestData{
		IID:                 mr.IID,
		ProjectID:           int64(mr.ProjectID),
		Title:               mr.Title,
		Description:         mr.Description,
		SourceBranch:        mr.SourceBranch,
		TargetBranch:        mr.TargetBranch,
		SHA:                 mr.SHA,
		State:               state,
		DetailedMergeStatus: mr.DetailedMergeStatus,
		HasConflicts:        gl.Ptr(mr.HasConflicts),
		Labels:              []string(mr.Labels),
		Draft:               mr.Draft,
		WebURL:              mr.WebURL,
	}

	// Extract author
	if author := mr.Author; author != nil {
		data.Author = author.Username
	}

	// Set timestamps
	if mr.CreatedAt != nil {
		data.CreatedAt = *mr.CreatedAt
	}
	if mr.UpdatedAt != nil {
		data.UpdatedAt = *mr.UpdatedAt
	}
	if mr.MergedAt != nil {
		t := *mr.MergedAt
		data.MergedAt = &t
	}
	if mr.ClosedAt != nil {
		t := *mr.ClosedAt
		data.ClosedAt = &t
	}

	return data, nil
}
