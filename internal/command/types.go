package command

import "context"

// Command represents a shell command to be executed
type Command struct {
	Name    string   // Command name (e.g., "sh")
	Args    []string // Command arguments
	WorkDir string   // Optional working directory
}

// Output holds the captured streams and exit status of a finished process
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status zero
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// CommandResult represents the result of a single command execution.
// Error is set only when the process could not be started; a nonzero
// exit is reported through Output.ExitCode.
type CommandResult struct {
	Command Command
	Output  Output
	Error   error
}

// ExecutionResult represents the result of executing multiple commands
type ExecutionResult struct {
	Results []CommandResult
}

// ShellExecutor interface abstracts the actual command execution
type ShellExecutor interface {
	Execute(ctx context.Context, name string, args []string, workDir string) (Output, error)
}

// Executor interface defines how commands are executed
type Executor interface {
	Execute(ctx context.Context, commands []Command) (*ExecutionResult, error)
}
