package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/satococoa/deskshell/internal/config"
	"github.com/satococoa/deskshell/internal/errors"
	"github.com/satococoa/deskshell/internal/gateway"
	"github.com/satococoa/deskshell/internal/logging"
	"github.com/satococoa/deskshell/internal/session"
)

func createApp() *cli.Command {
	return &cli.Command{
		Name:  "deskshell",
		Usage: "Embeddable shell command gateway",
		Description: "deskshell runs command lines through a system shell, keeps a working directory " +
			"across invocations, and offers command and path completion. Run without a subcommand " +
			"for an interactive terminal, or use 'serve' to embed it in a desktop host.",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file (default: ~/" + config.ConfigFileName + ")",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Write diagnostic logs to stderr",
			},
		},
		Action: runTerminal,
		Commands: []*cli.Command{
			NewRunCommand(),
			NewExecCommand(),
			NewCompleteCommand(),
			NewPwdCommand(),
			NewServeCommand(),
			NewInitCommand(),
		},
	}
}

// environment bundles the configuration and logger shared by subcommands
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	close  func() error
}

func configPath(cmd *cli.Command) string {
	if path := cmd.String("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

// loadEnvironment loads the configuration and builds a logger writing to logSink
// (or to the configured log file). A nil logSink discards records.
func loadEnvironment(cmd *cli.Command, logSink io.Writer) (*environment, error) {
	path := configPath(cmd)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	logger, closeFn, err := logging.New(cfg.Log, logSink)
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	return &environment{cfg: cfg, logger: logger, close: closeFn}, nil
}

func (e *environment) Close() {
	_ = e.logger.Sync()
	_ = e.close()
}

// newGateway starts a fresh session in the home directory
func (e *environment) newGateway() *gateway.Gateway {
	return gateway.New(
		session.New(),
		gateway.WithConfig(e.cfg),
		gateway.WithLogger(e.logger),
	)
}

// verboseSink returns stderr when --verbose is set
func verboseSink(cmd *cli.Command) io.Writer {
	if !cmd.Bool("verbose") {
		return nil
	}
	return errWriter(cmd)
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
