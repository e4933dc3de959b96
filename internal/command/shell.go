package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// realShellExecutor implements ShellExecutor using os/exec
type realShellExecutor struct{}

// NewRealShellExecutor creates a new shell executor that executes real commands
func NewRealShellExecutor() ShellExecutor {
	return &realShellExecutor{}
}

// Execute runs the command using os/exec and captures stdout and stderr separately.
// A nonzero exit is not an error; only a failure to start the process is.
func (s *realShellExecutor) Execute(ctx context.Context, name string, args []string, workDir string) (Output, error) {
	// #nosec G204 - executing user-typed command lines is the purpose of this tool
	cmd := exec.CommandContext(ctx, name, args...)

	if workDir != "" {
		cmd.Dir = workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return output, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		output.ExitCode = exitErr.ExitCode()
		return output, nil
	}

	return output, err
}
