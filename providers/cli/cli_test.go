//nolint:contextcheck // Context is passed via CommandWrapper.WithContext() but the linter cannot verify it
package cli

import (
	"context"
	"testing"
	"time"

	gitlab "github.com/aviz92/gitlab-plus"
	"github.com/aviz92/gitlab-plus/errors"
	"github.com/aviz92/gitlab-plus/exec"
	"github.com/aviz92/gitlab-plus/exec/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockExecutor creates a mock executor with proper method chaining for testing.
func setupMockExecutor(t *testing.T, runFunc func(args ...string) (*exec.Result, error)) *mocks.ExecutorMock {
	t.Helper()

	var mockExec *mocks.ExecutorMock
	mockExec = &mocks.ExecutorMock{
		WithEnvFunc: func(env map[string]string) exec.Executor {
			return mockExec
		},
		WithDirFunc: func(dir string) exec.Executor {
			return mockExec
		},
		WithContextFunc: func(ctx context.Context) exec.Executor {
			return mockExec
		},
		WithTimeoutFunc: func(timeout time.Duration) exec.Executor {
			return mockExec
		},
		WithDisableColorsFunc: func() exec.Executor {
			return mockExec
		},
		WithInheritEnvFunc: func() exec.Executor {
			return mockExec
		},
		CloneFunc: func() exec.Executor {
			return mockExec
		},
		RunFunc: runFunc,
	}

	return mockExec
}

func TestNewCLIProvider(t *testing.T) {
	t.Run("success with custom executor", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			// Should call: glab auth status
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{
					Stdout:   "Logged in to gitlab.com",
					Stderr:   "",
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))

		require.NoError(t, err)
		assert.NotNil(t, provider)
	})

	t.Run("fails when auth status check fails", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{
					Stdout:   "",
					Stderr:   "No GitLab hosts configured",
					ExitCode: 1,
				}, errors.New(errors.CodeExecutionFailed, "exit status 1")
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))

		assert.Error(t, err)
		assert.Nil(t, provider)
		assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
	})

	t.Run("fails with nil executor option", func(t *testing.T) {

		provider, err := NewCLIProvider(WithExecutor(nil))

		assert.Error(t, err)
		assert.Nil(t, provider)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestCLIProvider_CurrentUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{
					Stdout: `{
						"id": 7,
						"username": "release-bot",
						"name": "Release Bot",
						"email": "bot@example.com",
						"state": "active",
						"web_url": "https://gitlab.com/release-bot",
						"created_at": "2023-06-01T00:00:00Z"
					}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		data, err := provider.CurrentUser(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"glab", "api", "user"}, gotArgs)
		assert.Equal(t, int64(7), data.ID)
		assert.Equal(t, "release-bot", data.Username)
		assert.Equal(t, "Release Bot", data.Name)
		assert.Equal(t, "active", data.State)
		assert.False(t, data.CreatedAt.IsZero())
	})
}

func TestCLIProvider_GetProject(t *testing.T) {
	tests := []struct {
		name      string
		project   string
		runFunc   func(args ...string) (*exec.Result, error)
		wantData  *gitlab.ProjectData
		wantError bool
		errorCode errors.ErrorCode
	}{
		{
			name:    "success",
			project: "acme/widgets",
			runFunc: func(args ...string) (*exec.Result, error) {
				// Auth status check
				if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
					return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
				}
				// Get project with the path URL-encoded
				if len(args) >= 3 && args[0] == "glab" && args[1] == "api" && args[2] == "projects/acme%2Fwidgets" {
					return &exec.Result{
						Stdout: `{
							"id": 42,
							"name": "widgets",
							"path": "widgets",
							"path_with_namespace": "acme/widgets",
							"description": "Widget factory",
							"default_branch": "main",
							"visibility": "private",
							"archived": false,
							"http_url_to_repo": "https://gitlab.com/acme/widgets.git",
							"ssh_url_to_repo": "git@gitlab.com:acme/widgets.git",
							"web_url": "https://gitlab.com/acme/widgets",
							"created_at": "2023-01-01T00:00:00Z",
							"last_activity_at": "2024-01-05T00:00:00Z"
						}`,
						ExitCode: 0,
					}, nil
				}
				return &exec.Result{}, nil
			},
			wantData: &gitlab.ProjectData{
				ID:                42,
				Name:              "widgets",
				Path:              "widgets",
				PathWithNamespace: "acme/widgets",
				Description:       "Widget factory",
				DefaultBranch:     "main",
			},
			wantError: false,
		},
		{
			name:    "project not found",
			project: "acme/missing",
			runFunc: func(args ...string) (*exec.Result, error) {
				if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
					return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
				}
				if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
					return &exec.Result{
						Stdout:   "",
						Stderr:   "404 Project Not Found",
						ExitCode: 1,
					}, errors.New(errors.CodeExecutionFailed, "exit status 1")
				}
				return &exec.Result{}, nil
			},
			wantData:  nil,
			wantError: true,
			errorCode: errors.CodeNotFound,
		},
		{
			name:    "forbidden",
			project: "acme/private",
			runFunc: func(args ...string) (*exec.Result, error) {
				if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
					return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
				}
				if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
					return &exec.Result{
						Stdout:   "",
						Stderr:   "403 Forbidden",
						ExitCode: 1,
					}, errors.New(errors.CodeExecutionFailed, "exit status 1")
				}
				return &exec.Result{}, nil
			},
			wantData:  nil,
			wantError: true,
			errorCode: errors.CodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			mock := setupMockExecutor(t, tt.runFunc)
			provider, err := NewCLIProvider(WithExecutor(mock))
			require.NoError(t, err)

			data, err := provider.GetProject(context.Background(), tt.project)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorCode != "" {
					assert.Equal(t, tt.errorCode, errors.GetCode(err))
				}
				assert.Nil(t, data)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, data)
				assert.Equal(t, tt.wantData.ID, data.ID)
				assert.Equal(t, tt.wantData.Name, data.Name)
				assert.Equal(t, tt.wantData.PathWithNamespace, data.PathWithNamespace)
				assert.Equal(t, tt.wantData.Description, data.Description)
				assert.Equal(t, tt.wantData.DefaultBranch, data.DefaultBranch)
			}
		})
	}
}

func TestCLIProvider_GetFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{
					Stdout: `{
						"file_name": "app.yaml",
						"file_path": "config/app.yaml",
						"size": 58,
						"encoding": "base64",
						"content": "cmVwbGljYXM6IDM=",
						"ref": "main",
						"blob_id": "79f7bbd25901e8334750839545a9bd021f0e4c83",
						"commit_id": "d5a3ff139356ce33e37e73add446f16869741b50",
						"last_commit_id": "570e7b2abdd848b95f2f578043fc23bd6f6fd24d"
					}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		data, err := provider.GetFile(context.Background(), "acme/widgets", "main", "config/app.yaml")

		require.NoError(t, err)
		assert.Equal(t, []string{"glab", "api", "projects/acme%2Fwidgets/repository/files/config%2Fapp.yaml?ref=main"}, gotArgs)
		assert.Equal(t, "config/app.yaml", data.Path)
		assert.Equal(t, "app.yaml", data.Name)
		assert.Equal(t, "base64", data.Encoding)

		content, err := data.Decode()
		require.NoError(t, err)
		assert.Equal(t, []byte("replicas: 3"), content)
	})
}

func TestCLIProvider_GetRawFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{Stdout: "replicas: 3\n", ExitCode: 0}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		content, err := provider.GetRawFile(context.Background(), "acme/widgets", "release-1.2", "config/app.yaml")

		require.NoError(t, err)
		assert.Equal(t, []string{"glab", "api", "projects/acme%2Fwidgets/repository/files/config%2Fapp.yaml/raw?ref=release-1.2"}, gotArgs)
		assert.Equal(t, []byte("replicas: 3\n"), content)
	})

	t.Run("file not found", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				return &exec.Result{
					Stderr:   "404 File Not Found",
					ExitCode: 1,
				}, errors.New(errors.CodeExecutionFailed, "exit status 1")
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.GetRawFile(context.Background(), "acme/widgets", "main", "missing.txt")

		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestCLIProvider_CreateBranch(t *testing.T) {
	t.Run("success", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{
					Stdout: `{
						"name": "release-1.2",
						"merged": false,
						"protected": false,
						"default": false,
						"developers_can_push": false,
						"developers_can_merge": false,
						"commit": {"id": "7b5c3cc8be40ee161ae89a06bba6229da1032a0c", "short_id": "7b5c3cc"},
						"web_url": "https://gitlab.com/acme/widgets/-/tree/release-1.2"
					}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		branch, err := provider.CreateBranch(context.Background(), "acme/widgets", gitlab.CreateBranchOptions{
			Name: "release-1.2",
			Ref:  "main",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"glab", "api", "projects/acme%2Fwidgets/repository/branches", "--method", "POST",
			"--raw-field", "branch=release-1.2",
			"--raw-field", "ref=main",
		}, gotArgs)
		assert.Equal(t, "release-1.2", branch.Name)
		require.NotNil(t, branch.Commit)
		assert.Equal(t, "7b5c3cc", branch.Commit.ShortSHA)
	})
}

func TestCLIProvider_CreateTag(t *testing.T) {
	t.Run("annotated tag", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{
					Stdout: `{
						"name": "v1.2.0",
						"message": "Release 1.2.0",
						"protected": false,
						"commit": {"id": "7b5c3cc8be40ee161ae89a06bba6229da1032a0c", "short_id": "7b5c3cc"}
					}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		tag, err := provider.CreateTag(context.Background(), "acme/widgets", gitlab.CreateTagOptions{
			Name:    "v1.2.0",
			Ref:     "release-1.2",
			Message: "Release 1.2.0",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"glab", "api", "projects/acme%2Fwidgets/repository/tags", "--method", "POST",
			"--raw-field", "tag_name=v1.2.0",
			"--raw-field", "ref=release-1.2",
			"--raw-field", "message=Release 1.2.0",
		}, gotArgs)
		assert.Equal(t, "v1.2.0", tag.Name)
		assert.Equal(t, "Release 1.2.0", tag.Message)
	})
}

func TestCLIProvider_GetMergeRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 3 && args[0] == "glab" && args[1] == "api" && args[2] == "projects/acme%2Fwidgets/merge_requests/7" {
				return &exec.Result{
					Stdout: `{
						"iid": 7,
						"project_id": 42,
						"title": "Fix widget assembly",
						"description": "Corrects the assembly order.",
						"state": "merged",
						"detailed_merge_status": "not_open",
						"has_conflicts": false,
						"source_branch": "fix-assembly",
						"target_branch": "main",
						"sha": "570e7b2abdd848b95f2f578043fc23bd6f6fd24d",
						"labels": ["bug"],
						"draft": false,
						"author": {"id": 3, "username": "dev"},
						"web_url": "https://gitlab.com/acme/widgets/-/merge_requests/7",
						"created_at": "2024-01-01T00:00:00Z",
						"updated_at": "2024-01-03T00:00:00Z",
						"merged_at": "2024-01-03T00:00:00Z",
						"closed_at": null
					}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		data, err := provider.GetMergeRequest(context.Background(), "acme/widgets", 7)

		require.NoError(t, err)
		assert.Equal(t, 7, data.IID)
		assert.Equal(t, gitlab.StateMerged, data.State)
		assert.Equal(t, "not_open", data.DetailedMergeStatus)
		require.NotNil(t, data.HasConflicts)
		assert.False(t, *data.HasConflicts)
		assert.Equal(t, "dev", data.Author)
		assert.NotNil(t, data.MergedAt)
		assert.Nil(t, data.ClosedAt)
	})

	t.Run("conflict flag absent in older payloads", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				return &exec.Result{
					Stdout: `{
						"iid": 8,
						"title": "Older payload",
						"state": "opened",
						"detailed_merge_status": "mergeable",
						"source_branch": "feature",
						"target_branch": "main"
					}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		data, err := provider.GetMergeRequest(context.Background(), "acme/widgets", 8)

		require.NoError(t, err)
		assert.Nil(t, data.HasConflicts)
		assert.Equal(t, gitlab.StateOpened, data.State)
	})

	t.Run("unrecognized state", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				return &exec.Result{
					Stdout:   `{"iid": 9, "state": "hibernating"}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.GetMergeRequest(context.Background(), "acme/widgets", 9)

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				return &exec.Result{Stdout: "not json", ExitCode: 0}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.GetMergeRequest(context.Background(), "acme/widgets", 7)

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestCLIProvider_CreateMergeRequest(t *testing.T) {
	t.Run("draft with labels and flags", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{
					Stdout: `{
						"iid": 43,
						"title": "Draft: Add feature",
						"state": "opened",
						"draft": true,
						"source_branch": "feature",
						"target_branch": "main",
						"labels": ["backend", "feature"]
					}`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		mr, err := provider.CreateMergeRequest(context.Background(), "acme/widgets", gitlab.CreateMergeRequestOptions{
			Title:              "Add feature",
			Description:        "Adds the feature.",
			SourceBranch:       "feature",
			TargetBranch:       "main",
			Labels:             []string{"backend", "feature"},
			Draft:              true,
			RemoveSourceBranch: true,
			Squash:             true,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"glab", "api", "projects/acme%2Fwidgets/merge_requests", "--method", "POST",
			"--raw-field", "title=Draft: Add feature",
			"--raw-field", "source_branch=feature",
			"--raw-field", "target_branch=main",
			"--raw-field", "description=Adds the feature.",
			"--raw-field", "labels=backend,feature",
			"--field", "remove_source_branch=true",
			"--field", "squash=true",
		}, gotArgs)
		assert.Equal(t, 43, mr.IID)
		assert.True(t, mr.Draft)
	})

	t.Run("conflict when merge request already exists", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				return &exec.Result{
					Stderr:   "409 Conflict: Another open merge request already exists for this source branch",
					ExitCode: 1,
				}, errors.New(errors.CodeExecutionFailed, "exit status 1")
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.CreateMergeRequest(context.Background(), "acme/widgets", gitlab.CreateMergeRequestOptions{
			Title:        "Release 1.2",
			SourceBranch: "release-1.2",
			TargetBranch: "main",
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeConflict, errors.GetCode(err))
	})
}

func TestCLIProvider_ListMergeRequests(t *testing.T) {
	t.Run("success with filters", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{
					Stdout: `[
						{"iid": 1, "title": "First", "state": "opened", "target_branch": "main"},
						{"iid": 2, "title": "Second", "state": "opened", "target_branch": "main"}
					]`,
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		mrs, err := provider.ListMergeRequests(context.Background(), "acme/widgets", gitlab.ListMergeRequestsOptions{
			State:        "opened",
			TargetBranch: "main",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"glab", "api", "projects/acme%2Fwidgets/merge_requests?state=opened&target_branch=main"}, gotArgs)
		assert.Len(t, mrs, 2)
		assert.Equal(t, 1, mrs[0].IID)
		assert.Equal(t, "Second", mrs[1].Title)
	})

	t.Run("no filters requests the bare endpoint", func(t *testing.T) {

		var gotArgs []string
		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "glab" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in", ExitCode: 0}, nil
			}
			if len(args) >= 2 && args[0] == "glab" && args[1] == "api" {
				gotArgs = args
				return &exec.Result{Stdout: `[]`, ExitCode: 0}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		mrs, err := provider.ListMergeRequests(context.Background(), "acme/widgets", gitlab.ListMergeRequestsOptions{
			State: gitlab.StateAll,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"glab", "api", "projects/acme%2Fwidgets/merge_requests"}, gotArgs)
		assert.Empty(t, mrs)
	})
}
