//nolint:contextcheck // Context is passed via CommandWrapper.WithContext() but the linter cannot verify it
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	gitlab "github.com/aviz92/gitlab-plus"
	"github.com/aviz92/gitlab-plus/errors"
	"github.com/aviz92/gitlab-plus/exec"
)

// Option configures the CLI provider.
type Option func(*CLIProvider) error

// CLIProvider implements Provider using the glab CLI.
type CLIProvider struct {
	wrapper *exec.CommandWrapper
}

// NewCLIProvider creates a provider using the glab CLI.
// Inherits authentication from glab CLI configuration.
//
// Example:
//
//	provider, err := cli.NewCLIProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewCLIProvider(opts ...Option) (*CLIProvider, error) {
	// Default executor
	executor := exec.New(exec.WithInheritEnv())

	provider := &CLIProvider{
		wrapper: exec.NewWrapper(executor, "glab"),
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(provider); err != nil {
			return nil, err
		}
	}

	// Verify glab is installed and authenticated
	result, err := provider.wrapper.Run("auth", "status")
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return provider, nil
}

// CreateBranch creates a new branch from the given ref.
func (c *CLIProvider) CreateBranch(ctx context.Context, project string, opts gitlab.CreateBranchOptions) (*gitlab.BranchData, error) {
	endpoint := fmt.Sprintf("projects/%s/repository/branches", url.PathEscape(project))

	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", endpoint, "--method", "POST",
		"--raw-field", "branch="+opts.Name,
		"--raw-field", "ref="+opts.Ref)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to create branch")
	}

	var apiResp apiBranch
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertBranch(apiResp), nil
}

// CreateMergeRequest creates a new merge request.
func (c *CLIProvider) CreateMergeRequest(ctx context.Context, project string, opts gitlab.CreateMergeRequestOptions) (*gitlab.MergeRequestData, error) {
	// GitLab has no draft field on the create endpoint; drafts are
	// expressed through the title prefix.
	title := opts.Title
	if opts.Draft && !strings.HasPrefix(title, "Draft: ") {
		title = "Draft: " + title
	}

	endpoint := fmt.Sprintf("projects/%s/merge_requests", url.PathEscape(project))
	args := []string{"api", endpoint, "--method", "POST",
		"--raw-field", "title=" + title,
		"--raw-field", "source_branch=" + opts.SourceBranch,
		"--raw-field", "target_branch=" + opts.TargetBranch,
	}

	if opts.Description != "" {
		args = append(args, "--raw-field", "description="+opts.Description)
	}
	if len(opts.Labels) > 0 {
		args = append(args, "--raw-field", "labels="+strings.Join(opts.Labels, ","))
	}
	if opts.RemoveSourceBranch {
		args = append(args, "--field", "remove_source_branch=true")
	}
	if opts.Squash {
		args = append(args, "--field", "squash=true")
	}

	result, err := c.wrapper.Clone().WithContext(ctx).Run(args...)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to create merge request")
	}

	var apiResp apiMergeRequest
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertMergeRequest(apiResp)
}

// CreateTag creates a new tag from the given ref.
func (c *CLIProvider) CreateTag(ctx context.Context, project string, opts gitlab.CreateTagOptions) (*gitlab.TagData, error) {
	endpoint := fmt.Sprintf("projects/%s/repository/tags", url.PathEscape(project))
	args := []string{"api", endpoint, "--method", "POST",
		"--raw-field", "tag_name=" + opts.Name,
		"--raw-field", "ref=" + opts.Ref,
	}

	if opts.Message != "" {
		args = append(args, "--raw-field", "message="+opts.Message)
	}

	result, err := c.wrapper.Clone().WithContext(ctx).Run(args...)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to create tag")
	}

	var apiResp apiTag
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertTag(apiResp), nil
}

// CurrentUser retrieves the user the glab CLI is authenticated as.
func (c *CLIProvider) CurrentUser(ctx context.Context) (*gitlab.UserData, error) {
	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", "user")
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get current user")
	}

	var apiResp apiUser
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertUser(apiResp), nil
}

// GetBranch retrieves a branch by name.
func (c *CLIProvider) GetBranch(ctx context.Context, project, name string) (*gitlab.BranchData, error) {
	endpoint := fmt.Sprintf("projects/%s/repository/branches/%s", url.PathEscape(project), url.PathEscape(name))

	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", endpoint)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get branch")
	}

	var apiResp apiBranch
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertBranch(apiResp), nil
}

// GetFile retrieves file metadata and encoded content at the given ref.
func (c *CLIProvider) GetFile(ctx context.Context, project, ref, path string) (*gitlab.FileData, error) {
	endpoint := fmt.Sprintf("projects/%s/repository/files/%s?ref=%s",
		url.PathEscape(project), url.PathEscape(path), url.QueryEscape(ref))

	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", endpoint)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get file")
	}

	var apiResp apiFile
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertFile(apiResp), nil
}

// GetMergeRequest retrieves a specific merge request by IID.
func (c *CLIProvider) GetMergeRequest(ctx context.Context, project string, iid int) (*gitlab.MergeRequestData, error) {
	endpoint := fmt.Sprintf("projects/%s/merge_requests/%d", url.PathEscape(project), iid)

	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", endpoint)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get merge request")
	}

	var apiResp apiMergeRequest
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertMergeRequest(apiResp)
}

// GetProject retrieves project information.
func (c *CLIProvider) GetProject(ctx context.Context, project string) (*gitlab.ProjectData, error) {
	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", "projects/"+url.PathEscape(project))
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get project")
	}

	var apiResp apiProject
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertProject(apiResp), nil
}

// GetRawFile retrieves the raw content of a file at the given ref.
func (c *CLIProvider) GetRawFile(ctx context.Context, project, ref, path string) ([]byte, error) {
	endpoint := fmt.Sprintf("projects/%s/repository/files/%s/raw?ref=%s",
		url.PathEscape(project), url.PathEscape(path), url.QueryEscape(ref))

	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", endpoint)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get raw file")
	}

	return []byte(result.Stdout), nil
}

// GetTag retrieves a tag by name.
func (c *CLIProvider) GetTag(ctx context.Context, project, name string) (*gitlab.TagData, error) {
	endpoint := fmt.Sprintf("projects/%s/repository/tags/%s", url.PathEscape(project), url.PathEscape(name))

	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", endpoint)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get tag")
	}

	var apiResp apiTag
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	return c.convertTag(apiResp), nil
}

// ListMergeRequests lists merge requests for a project with optional filtering.
func (c *CLIProvider) ListMergeRequests(ctx context.Context, project string, opts gitlab.ListMergeRequestsOptions) ([]*gitlab.MergeRequestData, error) {
	query := url.Values{}

	// GitLab returns every state when the parameter is omitted
	if opts.State != "" && opts.State != gitlab.StateAll {
		query.Set("state", opts.State)
	}
	if opts.SourceBranch != "" {
		query.Set("source_branch", opts.SourceBranch)
	}
	if opts.TargetBranch != "" {
		query.Set("target_branch", opts.TargetBranch)
	}
	if opts.AuthorUsername != "" {
		query.Set("author_username", opts.AuthorUsername)
	}
	if len(opts.Labels) > 0 {
		query.Set("labels", strings.Join(opts.Labels, ","))
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	endpoint := fmt.Sprintf("projects/%s/merge_requests", url.PathEscape(project))
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	result, err := c.wrapper.Clone().WithContext(ctx).Run("api", endpoint)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to list merge requests")
	}

	var apiResp []apiMergeRequest
	if err := c.parseJSON(result, &apiResp); err != nil {
		return nil, err
	}

	mrs := make([]*gitlab.MergeRequestData, len(apiResp))
	for i, apiMR := range apiResp {
		data, err := c.convertMergeRequest(apiMR)
		if err != nil {
			return nil, err
		}
		mrs[i] = data
	}

	return mrs, nil
}

// API response shapes for the GitLab REST endpoints reached through glab api.
// Timestamps stay strings here; the converters parse them.

type apiUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	State     string `json:"state"`
	WebURL    string `json:"web_url"`
	CreatedAt string `json:"created_at"`
}

type apiProject struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Path              string `json:"path"`
	PathWithNamespace string `json:"path_with_namespace"`
	Description       string `json:"description"`
	DefaultBranch     string `json:"default_branch"`
	Visibility        string `json:"visibility"`
	Archived          bool   `json:"archived"`
	HTTPURLToRepo     string `json:"http_url_to_repo"`
	SSHURLToRepo      string `json:"ssh_url_to_repo"`
	WebURL            string `json:"web_url"`
	CreatedAt         string `json:"created_at"`
	LastActivityAt    string `json:"last_activity_at"`
}

type apiCommit struct {
	ID         string `json:"id"`
	ShortID    string `json:"short_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	AuthorName string `json:"author_name"`
	CreatedAt  string `json:"created_at"`
}

type apiBranch struct {
	Name               string     `json:"name"`
	Default            bool       `json:"default"`
	Merged             bool       `json:"merged"`
	Protected          bool       `json:"protected"`
	DevelopersCanPush  bool       `json:"developers_can_push"`
	DevelopersCanMerge bool       `json:"developers_can_merge"`
	Commit             *apiCommit `json:"commit"`
	WebURL             string     `json:"web_url"`
}

type apiTag struct {
	Name      string     `json:"name"`
	Message   string     `json:"message"`
	Protected bool       `json:"protected"`
	Commit    *apiCommit `json:"commit"`
}

type apiFile struct {
	FileName     string `json:"file_name"`
	FilePath     string `json:"file_path"`
	Size         int    `json:"size"`
	Encoding     string `json:"encoding"`
	Content      string `json:"content"`
	Ref          string `json:"ref"`
	BlobID       string `json:"blob_id"`
	CommitID     string `json:"commit_id"`
	LastCommitID string `json:"last_commit_id"`
}

type apiMergeRequest struct {
	IID                 int      `json:"iid"`
	ProjectID           int64    `json:"project_id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	State               string   `json:"state"`
	DetailedMergeStatus string   `json:"detailed_merge_status"`
	HasConflicts        *bool    `json:"has_conflicts"`
	SourceBranch        string   `json:"source_branch"`
	TargetBranch        string   `json:"target_branch"`
	SHA                 string   `json:"sha"`
	Labels              []string `json:"labels"`
	Draft               bool     `json:"draft"`
	WebURL              string   `json:"web_url"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
	MergedAt            string   `json:"merged_at"`
	ClosedAt            string   `json:"closed_at"`
	Author              struct {
		Username string `json:"username"`
	} `json:"author"`
}

// convertUser converts an API user response to UserData.
func (c *CLIProvider) convertUser(apiResp apiUser) *gitlab.UserData {
	data := &gitlab.UserData{
		ID:       apiResp.ID,
		Username: apiResp.Username,
		Name:     apiResp.Name,
		Email:    apiResp.Email,
		State:    apiResp.State,
		WebURL:   apiResp.WebURL,
	}

	if t, err := gitlab.ParseGitLabTime(apiResp.CreatedAt); err == nil {
		data.CreatedAt = t
	}

	return data
}

// convertProject converts an API project response to ProjectData.
func (c *CLIProvider) convertProject(apiResp apiProject) *gitlab.ProjectData {
	data := &gitlab.ProjectData{
		ID:                apiResp.ID,
		Name:              apiResp.Name,
		Path:              apiResp.Path,
		PathWithNamespace: apiResp.PathWithNamespace,
		Description:       apiResp.Description,
		DefaultBranch:     apiResp.DefaultBranch,
		Visibility:        apiResp.Visibility,
		Archived:          apiResp.Archived,
		HTTPURL:           apiResp.HTTPURLToRepo,
		SSHURL:            apiResp.SSHURLToRepo,
		WebURL:            apiResp.WebURL,
	}

	if t, err := gitlab.ParseGitLabTime(apiResp.CreatedAt); err == nil {
		data.CreatedAt = t
	}
	if t, err := gitlab.ParseGitLabTime(apiResp.LastActivityAt); err == nil {
		data.LastActivityAt = t
	}

	return data
}

// convertCommit converts an API commit response to CommitData.
func (c *CLIProvider) convertCommit(apiResp *apiCommit) *gitlab.CommitData {
	if apiResp == nil {
		return nil
	}

	data := &gitlab.CommitData{
		SHA:        apiResp.ID,
		ShortSHA:   apiResp.ShortID,
		Title:      apiResp.Title,
		Message:    apiResp.Message,
		AuthorName: apiResp.AuthorName,
	}

	if t, err := gitlab.ParseGitLabTime(apiResp.CreatedAt); err == nil {
		data.CreatedAt = t
	}

	return data
}

// convertBranch converts an API branch response to BranchData.
func (c *CLIProvider) convertBranch(apiResp apiBranch) *gitlab.BranchData {
	return &gitlab.BranchData{
		Name:               apiResp.Name,
		Default:            apiResp.Default,
		Merged:             apiResp.Merged,
		Protected:          apiResp.Protected,
		DevelopersCanPush:  apiResp.DevelopersCanPush,
		DevelopersCanMerge: apiResp.DevelopersCanMerge,
		Commit:             c.convertCommit(apiResp.Commit),
		WebURL:             apiResp.WebURL,
	}
}

// convertTag converts an API tag response to TagData.
func (c *CLIProvider) convertTag(apiResp apiTag) *gitlab.TagData {
	return &gitlab.TagData{
		Name:      apiResp.Name,
		Message:   apiResp.Message,
		Protected: apiResp.Protected,
		Commit:    c.convertCommit(apiResp.Commit),
	}
}

// convertFile converts an API file response to FileData.
func (c *CLIProvider) convertFile(apiResp apiFile) *gitlab.FileData {
	return &gitlab.FileData{
		Path:         apiResp.FilePath,
		Name:         apiResp.FileName,
		Ref:          apiResp.Ref,
		Content:      apiResp.Content,
		Encoding:     apiResp.Encoding,
		Size:         apiResp.Size,
		BlobID:       apiResp.BlobID,
		CommitID:     apiResp.CommitID,
		LastCommitID: apiResp.LastCommitID,
	}
}

// convertMergeRequest converts an API merge request response to MergeRequestData.
// It fails when the wire state is not one of the states GitLab documents.
func (c *CLIProvider) convertMergeRequest(apiResp apiMergeRequest) (*gitlab.MergeRequestData, error) {
	state, err := gitlab.ParseState(apiResp.State)
	if err != nil {
		return nil, err
	}

	data := &gitlab.MergeRequestData{
		IID:                 apiResp.IID,
		ProjectID:           apiResp.ProjectID,
		Title:               apiResp.Title,
		Description:         apiResp.Description,
		SourceBranch:        apiResp.SourceBranch,
		TargetBranch:        apiResp.TargetBranch,
		SHA:                 apiResp.SHA,
		State:               state,
		DetailedMergeStatus: apiResp.DetailedMergeStatus,
		HasConflicts:        apiResp.HasConflicts,
		Author:              apiResp.Author.Username,
		Labels:              apiResp.Labels,
		Draft:               apiResp.Draft,
		WebURL:              apiResp.WebURL,
	}

	if t, err := gitlab.ParseGitLabTime(apiResp.CreatedAt); err == nil {
		data.CreatedAt = t
	}
	if t, err := gitlab.ParseGitLabTime(apiResp.UpdatedAt); err == nil {
		data.UpdatedAt = t
	}
	if t, err := gitlab.ParseGitLabTime(apiResp.MergedAt); err == nil {
		data.MergedAt = &t
	}
	if t, err := gitlab.ParseGitLabTime(apiResp.ClosedAt); err == nil {
		data.ClosedAt = &t
	}

	return data, nil
}

// getErrorCodeFromResult determines the error code based on the result.
// glab reports failures through exit code 1, so the classification
// comes from the message on stderr.
func (c *CLIProvider) getErrorCodeFromResult(result *exec.Result) errors.ErrorCode {
	stderr := strings.ToLower(result.Stderr)
	if strings.Contains(stderr, "404") || strings.Contains(stderr, "not found") {
		return errors.CodeNotFound
	}
	if strings.Contains(stderr, "401") || strings.Contains(stderr, "unauthorized") || strings.Contains(stderr, "authentication") {
		return errors.CodeUnauthorized
	}
	if strings.Contains(stderr, "403") || strings.Contains(stderr, "forbidden") {
		return errors.CodeForbidden
	}
	if strings.Contains(stderr, "409") || strings.Contains(stderr, "already exists") {
		return errors.CodeConflict
	}
	if strings.Contains(stderr, "429") || strings.Contains(stderr, "rate limit") {
		return errors.CodeRateLimit
	}
	return errors.CodeExecutionFailed
}

// parseJSON unmarshals JSON from result stdout into the target.
func (c *CLIProvider) parseJSON(result *exec.Result, target any) error {
	if err := json.Unmarshal([]byte(result.Stdout), target); err != nil {
		wrappedErr := errors.Wrap(err, errors.CodeInvalidInput, "failed to parse JSON response")
		wrappedErr = errors.WithContext(wrappedErr, "stdout", result.Stdout)
		return wrappedErr
	}
	return nil
}

// wrapCLIError wraps CLI execution errors with appropriate error types.
func (c *CLIProvider) wrapCLIError(err error, result *exec.Result, message string) error {
	if err == nil {
		return nil
	}

	// Default to execution failed
	code := errors.CodeExecutionFailed

	// Map the captured output to error types
	if result != nil {
		code = c.getErrorCodeFromResult(result)
	}

	wrappedErr := errors.Wrap(err, code, message)

	// Include stderr in error details if available
	if result != nil && result.Stderr != "" {
		wrappedErr = errors.WithContext(wrappedErr, "stderr", result.Stderr)
		wrappedErr = errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
	}

	return wrappedErr
}

// WithExecutor sets a custom executor for the CLI provider.
// This is primarily useful for testing with a mock executor.
func WithExecutor(executor exec.Executor) Option {
	return func(p *CLIProvider) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		p.wrapper = exec.NewWrapper(executor, "glab")
		return nil
	}
}

// wrapAuthError wraps authentication errors from glab CLI.
func wrapAuthError(err error, result *exec.Result) error {
	authErr := errors.Wrap(err, errors.CodeUnauthorized, "glab CLI not authenticated")
	authErr = errors.WithContext(authErr, "hint", "Run 'glab auth login' to authenticate")
	if result != nil && result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", result.Stderr)
	}
	return authErr
}
