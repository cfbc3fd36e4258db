// Package gitlab provides a clean, idiomatic wrapper around GitLab operations.
//
// This library provides two pluggable backend implementations: one using the
// official GitLab Go SDK (gitlab.com/gitlab-org/api/client-go) and another using
// the glab CLI tool. The provider abstraction allows users to choose the
// implementation that best fits their needs while providing a consistent,
// high-level API for GitLab operations.
//
// # Architecture
//
// The library is built on several key principles:
//
//  1. Provider abstraction through the Provider interface
//  2. Two concrete provider implementations (SDK and CLI)
//  3. High-level types (Client, Project, Branch, Tag, MergeRequest)
//  4. Escape hatches for accessing underlying implementations
//  5. Consistent error handling using the errors package
//  6. Context support for cancellation and timeouts
//
// # Core Types
//
// Client is the main entry point and is bound to a default project.
//
// Project represents a GitLab project with methods for file, branch, tag, and
// merge request operations.
//
// MergeRequest carries the polling state machine: Wait blocks until the merge
// request reaches a terminal state, a conflict is detected, or a timeout fires.
//
// Provider interface abstracts the underlying implementation (SDK or CLI).
//
// # Provider Implementations
//
// ## SDK Provider
//
// Uses the official GitLab Go SDK for API operations.
// Best for applications that need fine-grained control or are already using
// client-go.
//
// Authentication options:
//   - Personal access token (explicit, or the GITLAB_ACCESS_TOKEN environment
//     variable)
//   - Custom GitLab client (for advanced setups such as OAuth or job tokens)
//
// ## CLI Provider
//
// Uses the glab CLI tool for GitLab operations.
// Best for scripts, automation, or environments where glab is already
// configured. Inherits authentication from glab CLI configuration.
//
// # Usage Examples
//
// ## Example 1: Connecting and Waiting for a Merge Request
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//	    "time"
//
//	    gitlab "github.com/aviz92/gitlab-plus"
//	    "github.com/aviz92/gitlab-plus/providers/sdk"
//	)
//
//	func main() {
//	    provider, err := sdk.NewSDKProvider(
//	        sdk.WithToken("glpat-xxxxxxxxxxxx"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Connect verifies authentication and fetches the project up front
//	    ctx := context.Background()
//	    client, err := gitlab.Connect(ctx, provider, "group/project")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    project := client.Project()
//	    mr, err := project.GetMergeRequest(ctx, 42)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    err = mr.Wait(ctx,
//	        gitlab.WithPollInterval(10*time.Second),
//	        gitlab.WithWaitTimeout(15*time.Minute),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if mr.IsMerged() {
//	        fmt.Println("merge request merged")
//	    }
//	}
//
// ## Example 2: Creating Branches, Tags, and Merge Requests
//
//	func release(ctx context.Context, client *gitlab.Client) error {
//	    project := client.Project()
//
//	    branch, err := project.CreateBranch(ctx, "release-1.2", "main")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("branch %s at %s\n", branch.Name(), branch.CommitSHA())
//
//	    _, err = project.CreateTag(ctx, "v1.2.0", branch.Name(),
//	        gitlab.WithTagMessage("Release 1.2.0"),
//	    )
//	    if err != nil {
//	        return err
//	    }
//
//	    mr, err := project.CreateMergeRequest(ctx, gitlab.CreateMergeRequestOptions{
//	        Title:              "Release 1.2",
//	        SourceBranch:       "release-1.2",
//	        TargetBranch:       "main",
//	        RemoveSourceBranch: true,
//	    })
//	    if err != nil {
//	        return err
//	    }
//
//	    fmt.Printf("created %s\n", mr.WebURL())
//	    return nil
//	}
//
// ## Example 3: Fetching File Content
//
//	func readConfig(ctx context.Context, client *gitlab.Client) ([]byte, error) {
//	    project := client.Project()
//
//	    // Raw content in one call
//	    content, err := project.GetFileContent(ctx, "main", "config/app.yaml")
//	    if err != nil {
//	        return nil, err
//	    }
//
//	    // Or with metadata
//	    file, err := project.GetFile(ctx, "main", "config/app.yaml")
//	    if err != nil {
//	        return nil, err
//	    }
//	    decoded, err := file.Decode()
//	    if err != nil {
//	        return nil, err
//	    }
//	    _ = decoded
//
//	    return content, nil
//	}
//
// ## Example 4: Using the CLI Provider
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    gitlab "github.com/aviz92/gitlab-plus"
//	    "github.com/aviz92/gitlab-plus/providers/cli"
//	)
//
//	func main() {
//	    // Uses glab CLI authentication
//	    provider, err := cli.NewCLIProvider()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    client := gitlab.NewClient(provider, "group/project")
//
//	    ctx := context.Background()
//	    mrs, err := client.Project().ListMergeRequests(ctx,
//	        gitlab.WithMRState("opened"),
//	        gitlab.WithTargetBranch("main"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for _, mr := range mrs {
//	        fmt.Printf("!%d %s\n", mr.IID(), mr.Title())
//	    }
//	}
//
// # Error Handling
//
// The library uses the errors package for consistent error handling.
// All errors are wrapped with appropriate error codes:
//
//   - ErrCodeNotFound: project, branch, tag, file, or merge request not found
//   - ErrCodeAuthenticationFailed: invalid or missing authentication
//   - ErrCodePermissionDenied: insufficient permissions
//   - ErrCodeRateLimited: API rate limit exceeded
//   - ErrCodeInvalidInput: invalid parameters or malformed data
//   - ErrCodeConflict: merge request has conflicts
//   - ErrCodeTimeout: Wait exceeded its time bound
//   - ErrCodeNetwork: network or connectivity issues
//   - ErrCodeInternal: internal errors or unexpected responses
//
// Example error handling:
//
//	err := mr.Wait(ctx, gitlab.WithWaitTimeout(5*time.Minute))
//	if err != nil {
//	    switch errors.GetCode(err) {
//	    case errors.CodeConflict:
//	        fmt.Println("merge request has conflicts")
//	    case errors.CodeTimeout:
//	        fmt.Println("gave up waiting")
//	    default:
//	        return err
//	    }
//	}
//
// # Context and Cancellation
//
// All operations that interact with GitLab accept a context.Context parameter
// for cancellation and timeout control:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	project := client.Project()
//	if err := project.Get(ctx); err != nil {
//	    return err
//	}
//
// Cancelling the context also interrupts a Wait that is suspended between
// polls.
//
// # Testing
//
// The mocks package contains a generated mock of the Provider interface:
//
//	provider := &mocks.ProviderMock{
//	    GetMergeRequestFunc: func(ctx context.Context, project string, iid int) (*gitlab.MergeRequestData, error) {
//	        return &gitlab.MergeRequestData{IID: iid, State: gitlab.StateMerged}, nil
//	    },
//	}
//
//	client := gitlab.NewClient(provider, "group/project")
//
// For testing the CLI provider without glab installed, inject a mock executor:
//
//	executor := &execmocks.ExecutorMock{...}
//	provider, err := cli.NewCLIProvider(cli.WithExecutor(executor))
//
// # Provider Interface
//
// The Provider interface allows direct access to lower-level operations:
//
//	provider := client.Provider()
//
//	mrs, err := provider.ListMergeRequests(ctx, "group/project", gitlab.ListMergeRequestsOptions{
//	    State:       "all",
//	    ListOptions: gitlab.ListOptions{PerPage: 50},
//	})
//
// # Dependencies
//
// This library depends on:
//   - gitlab.com/gitlab-org/api/client-go - Official GitLab SDK (for SDKProvider)
//   - go.uber.org/zap - Structured logging
//   - github.com/aviz92/gitlab-plus/errors - Coded errors
//   - github.com/aviz92/gitlab-plus/exec - Command execution (for CLIProvider)
//
// # References
//
// For more information:
//   - GitLab REST API: https://docs.gitlab.com/ee/api/
//   - client-go SDK: https://pkg.go.dev/gitlab.com/gitlab-org/api/client-go
//   - glab CLI: https://gitlab.com/gitlab-org/cli
package gitlab
