package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewPwdCommand creates the pwd command definition
func NewPwdCommand() *cli.Command {
	return &cli.Command{
		Name:   "pwd",
		Usage:  "Print the directory a new session starts in",
		Action: pwdCommand,
	}
}

func pwdCommand(_ context.Context, cmd *cli.Command) error {
	env, err := loadEnvironment(cmd, verboseSink(cmd))
	if err != nil {
		return err
	}
	defer env.Close()

	_, err = fmt.Fprintln(writer(cmd), env.newGateway().CurrentDirectory())
	return err
}
