package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/satococoa/deskshell/internal/ipc"
)

// NewServeCommand creates the serve command definition
func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the gateway as JSON lines over stdin/stdout",
		Description: "Read one JSON request per line from stdin and write one JSON response per line " +
			"to stdout. All requests share one session, so cd persists between them.\n\n" +
			"Requests:\n" +
			`  {"id":1,"method":"execute","command":"ls -la"}` + "\n" +
			`  {"id":2,"method":"current_directory"}` + "\n" +
			`  {"id":3,"method":"completions","partial":"sr","full_line":"cd sr"}` + "\n\n" +
			"The server stops after answering an 'exit' command with \"shutdown\": true.",
		Action: serveCommand,
	}
}

func serveCommand(ctx context.Context, cmd *cli.Command) error {
	// stdout carries the protocol, so diagnostics always go to stderr
	env, err := loadEnvironment(cmd, errWriter(cmd))
	if err != nil {
		return err
	}
	defer env.Close()

	gw := env.newGateway()
	env.logger.Info("serving", zap.String("dir", gw.CurrentDirectory()))

	return ipc.NewServer(gw, env.logger).Serve(ctx, reader(cmd), writer(cmd))
}
