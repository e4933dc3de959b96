// Package gateway implements the shell command gateway: it runs command lines
// through a system shell in the session directory, intercepts cd and exit, and
// answers completion requests through the shell's compgen builtin.
package gateway

import (
	"go.uber.org/zap"

	"github.com/satococoa/deskshell/internal/command"
	"github.com/satococoa/deskshell/internal/config"
	"github.com/satococoa/deskshell/internal/session"
)

// ExitAcknowledgement is returned for the exit request before the host shuts down
const ExitAcknowledgement = "Exiting..."

// Reply is a successful Execute outcome.
// Shutdown asks the host to terminate once Output has been rendered.
type Reply struct {
	Output   string
	Shutdown bool
}

// Gateway exposes execute, current-directory and completion operations to a host
type Gateway struct {
	session         *session.Session
	executor        command.Executor
	shell           string
	completionShell string
	logger          *zap.Logger
}

// Option configures a Gateway
type Option func(*Gateway)

// WithLogger sets the diagnostic logger
func WithLogger(logger *zap.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithExecutor replaces the os/exec backed executor
func WithExecutor(executor command.Executor) Option {
	return func(g *Gateway) {
		if executor != nil {
			g.executor = executor
		}
	}
}

// WithConfig takes the shell binaries from cfg
func WithConfig(cfg *config.Config) Option {
	return func(g *Gateway) {
		if cfg == nil {
			return
		}
		if cfg.Shell != "" {
			g.shell = cfg.Shell
		}
		if cfg.CompletionShell != "" {
			g.completionShell = cfg.CompletionShell
		}
	}
}

// New creates a gateway over sess
func New(sess *session.Session, opts ...Option) *Gateway {
	g := &Gateway{
		session:         sess,
		executor:        command.NewRealExecutor(),
		shell:           config.DefaultShell,
		completionShell: config.DefaultCompletionShell,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("session", sess.ID()))
	return g
}

// CurrentDirectory returns the session working directory as display text
func (g *Gateway) CurrentDirectory() string {
	return g.session.Dir()
}
