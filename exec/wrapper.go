package exec

import (
	"context"
	"time"
)

// CommandWrapper binds an Executor to a fixed command name, prepending it to
// every Run. It suits tools invoked repeatedly with different arguments, such
// as glab or git. CommandWrapper itself implements Executor, so it can stand
// in wherever one is expected, including behind further wrappers.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a CommandWrapper around the given executor. The executor
// may be any Executor implementation, including the generated mock.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// WithEnv sets environment variables for the next run.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the next run.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the command.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithTimeout bounds the next run.
func (w *CommandWrapper) WithTimeout(timeout time.Duration) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

// WithDisableColors disables color output for the next run.
func (w *CommandWrapper) WithDisableColors() Executor {
	w.executor = w.executor.WithDisableColors()
	return w
}

// WithInheritEnv enables environment inheritance for the next run.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// Run executes the wrapped command with the given arguments.
// The bound command name is prepended to argv.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.executor.Run(fullArgs...)
}

// Clone returns a copy of the wrapper over a clone of its executor.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}
