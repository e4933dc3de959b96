package command

import "context"

// executor implements Executor interface
type executor struct {
	shell ShellExecutor
}

// NewExecutor creates a new command executor with the given shell executor
func NewExecutor(shell ShellExecutor) Executor {
	return &executor{
		shell: shell,
	}
}

// NewRealExecutor creates an executor backed by os/exec
func NewRealExecutor() Executor {
	return NewExecutor(NewRealShellExecutor())
}

// Execute executes the given commands in sequence and returns the results
func (e *executor) Execute(ctx context.Context, commands []Command) (*ExecutionResult, error) {
	result := &ExecutionResult{
		Results: make([]CommandResult, 0, len(commands)),
	}

	for _, cmd := range commands {
		output, err := e.shell.Execute(ctx, cmd.Name, cmd.Args, cmd.WorkDir)

		commandResult := CommandResult{
			Command: cmd,
			Output:  output,
			Error:   err,
		}

		result.Results = append(result.Results, commandResult)
	}

	return result, nil
}
