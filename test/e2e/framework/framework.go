package framework

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const (
	dirPerm  = 0755
	filePerm = 0600

	configFileName = "deskshell.yml"
)

type TestEnvironment struct {
	t               *testing.T
	tmpDir          string
	home            string
	deskshellBinary string
	cleanup         []func()
}

func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tmpDir := t.TempDir()
	env := &TestEnvironment{
		t:       t,
		tmpDir:  tmpDir,
		home:    filepath.Join(tmpDir, "home"),
		cleanup: []func(){},
	}

	if err := os.MkdirAll(env.home, dirPerm); err != nil {
		t.Fatalf("Failed to create home directory: %v", err)
	}

	env.buildDeskshell()

	return env
}

func (e *TestEnvironment) buildDeskshell() {
	e.t.Helper()

	binary := filepath.Join(e.tmpDir, "deskshell")
	if prebuilt := os.Getenv("DESKSHELL_E2E_BINARY"); prebuilt != "" {
		binary = prebuilt
		if _, err := os.Stat(binary); err != nil {
			e.t.Fatalf("Specified deskshell binary not found: %s", binary)
		}
	} else {
		projectRoot := e.findProjectRoot()
		cmd := exec.Command("go", "build", "-o", binary, "./cmd/deskshell")
		cmd.Dir = projectRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			e.t.Fatalf("Failed to build deskshell binary: %v\nOutput: %s", err, output)
		}
	}

	binary = filepath.Clean(binary)
	if !filepath.IsAbs(binary) {
		absPath, err := filepath.Abs(binary)
		if err != nil {
			e.t.Fatalf("Failed to get absolute path for binary: %v", err)
		}
		binary = absPath
	}

	e.deskshellBinary = binary
}

func (e *TestEnvironment) findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			e.t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Home is the HOME every invocation runs with; sessions start here
func (e *TestEnvironment) Home() string {
	return e.home
}

func (e *TestEnvironment) ConfigPath() string {
	return filepath.Join(e.home, configFileName)
}

func (e *TestEnvironment) TmpDir() string {
	return e.tmpDir
}

// RunDeskshell runs the binary and returns combined output
func (e *TestEnvironment) RunDeskshell(args ...string) (string, error) {
	cmd := e.command(args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// RunDeskshellWithInput feeds stdin and returns stdout and stderr separately
func (e *TestEnvironment) RunDeskshellWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := e.command(args...)
	cmd.Stdin = strings.NewReader(input)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = runWithTimeout(cmd, 30*time.Second)
	return outBuf.String(), errBuf.String(), err
}

// Serve sends one JSON request per line and decodes one response per line
func (e *TestEnvironment) Serve(requests ...map[string]any) ([]map[string]any, error) {
	var input strings.Builder
	for _, req := range requests {
		line, err := json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		input.Write(line)
		input.WriteByte('\n')
	}

	stdout, stderr, err := e.RunDeskshellWithInput(input.String(), "serve")
	if err != nil {
		return nil, fmt.Errorf("serve failed: %w\nstderr: %s", err, stderr)
	}

	var responses []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		if line == "" {
			continue
		}
		var resp map[string]any
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			return nil, fmt.Errorf("failed to decode response %q: %w", line, err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (e *TestEnvironment) command(args ...string) *exec.Cmd {
	argv := append([]string{"--config", e.ConfigPath()}, args...)
	cmd := createSafeCommand(e.deskshellBinary, argv...)
	cmd.Dir = e.tmpDir
	cmd.Env = append(os.Environ(), "HOME="+e.home)
	return cmd
}

func (e *TestEnvironment) Mkdir(rel string) string {
	e.t.Helper()

	path := filepath.Join(e.home, rel)
	if err := os.MkdirAll(path, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

func (e *TestEnvironment) WriteFile(rel, content string) {
	e.t.Helper()

	path := filepath.Join(e.home, rel)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func (e *TestEnvironment) ReadFile(rel string) string {
	e.t.Helper()

	content, err := os.ReadFile(filepath.Join(e.home, rel))
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", rel, err)
	}
	return string(content)
}

func (e *TestEnvironment) FileExists(rel string) bool {
	_, err := os.Stat(filepath.Join(e.home, rel))
	return err == nil
}

func (e *TestEnvironment) Cleanup() {
	for _, fn := range e.cleanup {
		fn()
	}
}

func runWithTimeout(cmd *exec.Cmd, timeout time.Duration) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	timer := time.AfterFunc(timeout, func() {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	})
	defer timer.Stop()

	return cmd.Wait()
}

// createSafeCommand creates an exec.Cmd with a validated binary path
func createSafeCommand(binary string, args ...string) *exec.Cmd {
	// The binary path has already been validated during initialization
	return exec.Command(binary, args...)
}
