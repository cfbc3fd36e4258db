package mocks_test

import (
	"context"
	"testing"

	gitlab "github.com/aviz92/gitlab-plus"
	"github.com/aviz92/gitlab-plus/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Example test showing how to use the ProviderMock
func TestExampleUsingMock(t *testing.T) {
	ctx := context.Background()

	// Create and configure mock provider
	mock := &mocks.ProviderMock{
		GetProjectFunc: func(ctx context.Context, project string) (*gitlab.ProjectData, error) {
			return &gitlab.ProjectData{
				ID:                123,
				Name:              "widgets",
				Path:              "widgets",
				PathWithNamespace: project,
				DefaultBranch:     "main",
			}, nil
		},
	}

	// Use the mock
	client := gitlab.NewClient(mock, "acme/widgets")
	project := client.Project()
	err := project.Get(ctx)

	// Assert behavior
	require.NoError(t, err)
	assert.Equal(t, int64(123), project.ID())
	assert.Equal(t, "acme/widgets", project.PathWithNamespace())
	assert.Equal(t, "main", project.DefaultBranch())
}
