package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewCompleteCommand creates the complete command definition
func NewCompleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "complete",
		Usage: "Print completion suggestions for a partial word",
		Description: "Print one suggestion per line.\n\n" +
			"When the full line is omitted the partial word is completed as a command name.\n\n" +
			"Examples:\n" +
			"  deskshell complete gi\n" +
			"  deskshell complete ~/Doc 'ls ~/Doc'",
		ArgsUsage: "<partial> [full line]",
		Action:    completeCommand,
	}
}

func completeCommand(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() == 0 {
		return fmt.Errorf("partial word is required\n\nUsage: deskshell complete <partial> [full line]")
	}

	partial := args.Get(0)
	fullLine := partial
	if args.Len() > 1 {
		fullLine = args.Get(1)
	}

	env, err := loadEnvironment(cmd, verboseSink(cmd))
	if err != nil {
		return err
	}
	defer env.Close()

	suggestions, err := env.newGateway().Completions(ctx, partial, fullLine)
	if err != nil {
		return err
	}

	w := writer(cmd)
	for _, s := range suggestions {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
