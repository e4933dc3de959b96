package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/deskshell/internal/config"
	"github.com/satococoa/deskshell/internal/errors"
)

const configFileMode = 0o600

// NewInitCommand creates the init command definition
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration file",
		Description: "Creates a commented configuration file at the --config path " +
			"(default ~/" + config.ConfigFileName + ").",
		Action: initCommand,
	}
}

func initCommand(_ context.Context, cmd *cli.Command) error {
	path := configPath(cmd)

	// Check if config file already exists
	if _, err := os.Stat(path); err == nil {
		return errors.ConfigAlreadyExists(path)
	}

	if err := os.WriteFile(path, []byte(config.Template()), configFileMode); err != nil {
		return errors.ConfigWriteFailed(path, err)
	}

	w := writer(cmd)
	fmt.Fprintf(w, "Configuration file created: %s\n", path)
	fmt.Fprintln(w, "Edit this file to choose shells and logging.")
	return nil
}
