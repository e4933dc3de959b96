// Package logging builds the diagnostic zap logger shared by deskshell hosts.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/satococoa/deskshell/internal/config"
)

const logFilePermissions = 0o600

// New creates a console-encoded logger at the configured level.
// Records go to cfg.File when set, otherwise to fallback. A nil fallback
// with no file yields a no-op logger.
// The returned close function releases the log file, if any.
func New(cfg config.Log, fallback io.Writer) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	closeFn := func() error { return nil }
	sink := fallback

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sink = f
		closeFn = f.Close
	}

	if sink == nil {
		return zap.NewNop(), closeFn, nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(sink),
		level,
	)

	return zap.New(core), closeFn, nil
}
