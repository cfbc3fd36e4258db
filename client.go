package gitlab

import (
	"context"

	"go.uber.org/zap"
)

// Client provides high-level GitLab operations.
// It serves as the main entry point for interacting with GitLab resources.
//
// Example usage:
//
//	// Create provider
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("glpat-..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create GitLab client bound to a default project
//	client := gitlab.NewClient(provider, "group/project")
//
//	// Access the project
//	project := client.Project()
type Client struct {
	provider Provider
	project  string // default project (ID or full path) for operations
	logger   *zap.Logger
	data     *ProjectData // populated by Connect
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger the client and its resource handles emit
// observations through. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new GitLab client with the specified provider.
// The project parameter sets the default project for operations; it may be
// a numeric ID ("42") or a full path ("group/project").
//
// NewClient performs no network calls. Use Connect to build a client that
// verifies authentication and fetches the project up front.
func NewClient(provider Provider, project string, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		project:  project,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Connect creates a client and verifies it can talk to GitLab.
// It authenticates via CurrentUser, fetches the default project, and returns
// a client whose Project handle is already populated. An authentication
// failure yields an ErrCodeAuthenticationFailed error; it is fatal and never
// retried. The authentication check runs before the project fetch.
func Connect(ctx context.Context, provider Provider, project string, opts ...ClientOption) (*Client, error) {
	if project == "" {
		return nil, newInvalidInputError("project", "cannot be empty")
	}

	c := NewClient(provider, project, opts...)

	user, err := c.provider.CurrentUser(ctx)
	if err != nil {
		return nil, newAuthenticationFailedError("gitlab authentication failed", err)
	}

	data, err := c.provider.GetProject(ctx, project)
	if err != nil {
		return nil, WrapHTTPError(err, 0, "failed to get project")
	}
	c.data = data

	c.logger.Info("connected to gitlab",
		zap.String("user", user.Username),
		zap.String("project", data.PathWithNamespace),
		zap.Int64("project_id", data.ID),
	)

	return c, nil
}

// Project returns a Project handle for the client's default project.
// Clients built with NewClient return a handle with no data until Get is
// called; clients built with Connect return a handle that is already
// populated.
func (c *Client) Project() *Project {
	return &Project{
		client:  c,
		project: c.project,
		data:    c.data,
	}
}

// ProjectRef returns a Project handle for a project other than the client
// default. The identifier may be a numeric ID or a full path.
//
// Note: This method does not validate that the project exists. Call Get()
// on the returned Project to fetch its data and ensure it exists.
func (c *Client) ProjectRef(project string) *Project {
	return &Project{
		client:  c,
		project: project,
		data:    nil,
	}
}

// Provider returns the underlying Provider.
// This is an escape hatch that allows direct access to the provider
// for operations not covered by the high-level Client API.
func (c *Client) Provider() Provider {
	return c.provider
}

// ProjectPath returns the default project identifier for this client.
func (c *Client) ProjectPath() string {
	return c.project
}
