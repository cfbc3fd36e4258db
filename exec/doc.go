// Package exec runs external commands with captured output.
//
// It wraps os/exec with a fluent, mockable API. The zero-configuration path
// is a single call:
//
//	result, err := exec.New().Run("glab", "auth", "status")
//
// Settings come in two scopes. Base settings are fixed at construction:
//
//	runner := exec.New(
//	    exec.WithInheritEnv(),
//	    exec.WithDisableColors(),
//	)
//
// One-shot settings apply to the next Run only and reset afterwards:
//
//	result, err := runner.
//	    WithContext(ctx).
//	    WithEnv(map[string]string{"GITLAB_HOST": "gitlab.example.com"}).
//	    Run("glab", "api", "user")
//
// CommandWrapper binds an executor to a fixed command name, which suits tools
// invoked repeatedly with different arguments:
//
//	glab := exec.NewWrapper(exec.New(exec.WithInheritEnv()), "glab")
//	result, err := glab.Run("api", "projects/42")
//
// Failures surface as *ExecError carrying the argv, exit code, and captured
// output. The Executor interface has a generated mock in the mocks package
// for testing callers without spawning processes.
package exec
