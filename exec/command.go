package exec

import (
	"context"
	"io"
	"os"
	osexec "os/exec"
	"time"
)

// Command is the concrete Executor backed by os/exec.
type Command struct {
	base    *settings
	pending *settings // overrides for the next run only, nil when unset
	ctx     context.Context
}

// New creates a Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		base: newSettings(),
		ctx:  context.Background(),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// next returns the settings the upcoming run will use, materializing the
// one-shot copy of the base settings on first use.
func (c *Command) next() *settings {
	if c.pending == nil {
		c.pending = c.base.copy()
	}
	return c.pending
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	s := c.next()
	for k, v := range env {
		s.env[k] = v
	}
	return c
}

// WithDir sets the working directory for the next run.
func (c *Command) WithDir(dir string) Executor {
	c.next().dir = dir
	return c
}

// WithContext sets the context for the command.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithTimeout bounds the next run.
func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.next().timeout = timeout
	return c
}

// WithDisableColors disables color output for the next run.
func (c *Command) WithDisableColors() Executor {
	c.next().disableColors = true
	return c
}

// WithInheritEnv enables environment inheritance for the next run.
func (c *Command) WithInheritEnv() Executor {
	c.next().inheritEnv = true
	return c
}

// Run executes the command given as argv and captures its output.
// One-shot settings are consumed by the run and discarded afterwards.
func (c *Command) Run(args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	run := c.base
	if c.pending != nil {
		run = c.pending
		c.pending = nil
	}

	ctx := c.ctx
	if run.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, run.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)

	if run.dir != "" {
		cmd.Dir = run.dir
	}

	if run.inheritEnv {
		cmd.Env = os.Environ()
	}
	for k, v := range run.environ() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	// Stdout and stderr are written from separate pipe goroutines, so the
	// combined buffer must be safe for concurrent writes.
	var stdout, stderr, combined syncBuffer
	cmd.Stdout = io.MultiWriter(&stdout, &combined)
	cmd.Stderr = io.MultiWriter(&stderr, &combined)

	err := cmd.Run()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: exitCode,
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// Clone returns an independent copy carrying the base configuration.
// Pending one-shot settings are not copied.
func (c *Command) Clone() Executor {
	return &Command{
		base: c.base.copy(),
		ctx:  c.ctx,
	}
}
