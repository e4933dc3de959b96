package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

// appRun runs the CLI with HOME and --config pointed at a temp directory
type appRun struct {
	home   string
	stdout bytes.Buffer
	stderr bytes.Buffer
	stdin  io.Reader
}

func newAppRun(t *testing.T) *appRun {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return &appRun{home: home, stdin: strings.NewReader("")}
}

func (r *appRun) configPath() string {
	return filepath.Join(r.home, "deskshell.yml")
}

func (r *appRun) run(args ...string) error {
	app := createApp()
	app.Writer = &r.stdout
	app.ErrWriter = &r.stderr
	app.Reader = r.stdin

	argv := append([]string{"deskshell", "--config", r.configPath()}, args...)
	return app.Run(context.Background(), argv)
}
