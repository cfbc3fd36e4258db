package exec

import "fmt"

// ExecError is returned when a command fails. It carries the argv, the exit
// code, and the captured output so callers can report or parse failures.
type ExecError struct {
	// Command is the full argv that was executed.
	Command []string

	// ExitCode is the exit code returned by the command.
	// It is -1 when the command did not start.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Err is the underlying error from the execution.
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
