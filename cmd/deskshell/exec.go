package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

// NewExecCommand creates the exec command definition
func NewExecCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Execute a command line once from the home directory",
		UsageText: "deskshell exec -- <command line...>",
		ArgsUsage: "<command line...>",
		Action:    execCommand,
	}
}

func execCommand(ctx context.Context, cmd *cli.Command) error {
	line := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(line) == "" {
		return fmt.Errorf("command line is required\n\nUsage: deskshell exec -- <command line...>")
	}

	env, err := loadEnvironment(cmd, verboseSink(cmd))
	if err != nil {
		return err
	}
	defer env.Close()

	reply, err := env.newGateway().Execute(ctx, line)
	if err != nil {
		return err
	}

	w := writer(cmd)
	if reply.Shutdown {
		// Nothing to shut down in a one-shot run; show the acknowledgement only
		_, err = fmt.Fprintln(w, reply.Output)
		return err
	}

	_, err = fmt.Fprint(w, reply.Output)
	return err
}
