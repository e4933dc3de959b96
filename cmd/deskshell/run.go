package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/deskshell/internal/tui"
)

// NewRunCommand creates the interactive terminal command definition
func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Start the interactive terminal (default)",
		Description: "Start an interactive terminal backed by the gateway.\n\n" +
			"Keys:\n" +
			"  Enter   run the line\n" +
			"  Tab     complete the current word\n" +
			"  Ctrl+C  discard the line\n" +
			"  Ctrl+D  quit (or type 'exit')",
		Action: runTerminal,
	}
}

func runTerminal(_ context.Context, cmd *cli.Command) error {
	// Log records would corrupt the screen, so only a configured file receives them
	env, err := loadEnvironment(cmd, nil)
	if err != nil {
		return err
	}
	defer env.Close()

	return tui.Run(env.newGateway(), env.cfg.Prompt)
}
