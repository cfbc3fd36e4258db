package exec

import (
	"context"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the interface for running commands with captured output.
// Configuration methods return the Executor for chaining.
type Executor interface {
	// WithEnv sets environment variables for the next run.
	// These override any base environment variables with the same name.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next run.
	WithDir(dir string) Executor

	// WithContext sets the context for the command.
	// The command is killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the next run. Zero or negative means no timeout.
	WithTimeout(timeout time.Duration) Executor

	// WithDisableColors sets NO_COLOR and related variables so tools emit
	// plain output that is safe to parse.
	WithDisableColors() Executor

	// WithInheritEnv passes the parent process environment to the command.
	WithInheritEnv() Executor

	// Run executes the command given as argv.
	// It returns a Result with the captured output and exit code.
	Run(args ...string) (*Result, error)

	// Clone returns an independent copy with the same base configuration.
	Clone() Executor
}

// Result holds the outcome of a command execution.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Combined interleaves stdout and stderr in arrival order.
	Combined string

	// ExitCode is the exit code returned by the command.
	// It is -1 when the command did not start.
	ExitCode int
}

// Option configures a Command's base settings at construction time.
// Base settings persist across runs; the With* methods override them for a
// single run.
type Option func(*Command)

// WithEnv returns an Option that sets base environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.base.env[k] = v
		}
	}
}

// WithDir returns an Option that sets the base working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.base.dir = dir
	}
}

// WithContext returns an Option that sets the base context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithTimeout returns an Option that bounds every run.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Command) {
		c.base.timeout = timeout
	}
}

// WithDisableColors returns an Option that disables color output for every run.
func WithDisableColors() Option {
	return func(c *Command) {
		c.base.disableColors = true
	}
}

// WithInheritEnv returns an Option that enables environment inheritance for
// every run.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.base.inheritEnv = true
	}
}
