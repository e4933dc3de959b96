package gateway

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/satococoa/deskshell/internal/command"
	"github.com/satococoa/deskshell/internal/errors"
	"github.com/satococoa/deskshell/internal/session"
)

// Execute runs line in the session directory and returns its stdout.
//
// "exit" spawns nothing and returns a Reply with Shutdown set. A cd line is
// handled by the session and only changes state on success. Anything else is
// passed verbatim to "<shell> -c". A nonzero exit becomes an error carrying
// stderr, or a status message when stderr is empty; stderr of a zero exit is
// discarded.
func (g *Gateway) Execute(ctx context.Context, line string) (Reply, error) {
	g.logger.Info("executing command", zap.String("command", line))

	if strings.TrimSpace(line) == "exit" {
		return Reply{Output: ExitAcknowledgement, Shutdown: true}, nil
	}

	if session.IsChangeDirectory(line) {
		return g.changeDirectory(line)
	}

	// The directory is read once; the command itself runs outside the lock
	dir := g.session.Dir()
	cmd := command.ShellLine(g.shell, line, dir)

	result, err := g.executor.Execute(ctx, []command.Command{cmd})
	if err != nil {
		g.logger.Error("command error", zap.Error(err))
		return Reply{}, errors.TransportFailed(err)
	}

	res := result.Results[0]
	if res.Error != nil {
		g.logger.Error("command error", zap.Error(res.Error))
		return Reply{}, errors.TransportFailed(res.Error)
	}

	g.logger.Info("command finished",
		zap.String("dir", dir),
		zap.Int("status", res.Output.ExitCode),
		zap.String("stdout", res.Output.Stdout),
		zap.String("stderr", res.Output.Stderr))

	if !res.Output.Success() {
		return Reply{}, errors.CommandFailed(res.Output.Stderr, res.Output.ExitCode)
	}

	return Reply{Output: res.Output.Stdout}, nil
}

func (g *Gateway) changeDirectory(line string) (Reply, error) {
	out, err := g.session.ChangeDirectory(line)
	if err != nil {
		g.logger.Info("cd rejected", zap.Error(err))
		return Reply{}, err
	}

	g.logger.Info("changed directory", zap.String("dir", g.session.Dir()))
	return Reply{Output: out}, nil
}
