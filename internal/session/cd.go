package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/satococoa/deskshell/internal/errors"
)

// IsChangeDirectory reports whether line is a cd request: "cd" alone or
// "cd" followed by whitespace
func IsChangeDirectory(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "cd" {
		return true
	}
	return len(trimmed) > 2 && strings.HasPrefix(trimmed, "cd") && unicode.IsSpace(rune(trimmed[2]))
}

// ChangeDirectory resolves a cd line against the session and adopts the result.
// On failure the session directory is left untouched.
// The home case returns an informational message; every other success is silent.
func (s *Session) ChangeDirectory(line string) (string, error) {
	arg := cdArgument(line)
	home := HomeDir()

	isHome := arg == "" || arg == "~"

	var target string
	switch {
	case isHome:
		target = home
	case strings.HasPrefix(arg, "~/"):
		target = joinRaw(home, arg[2:])
	case strings.HasPrefix(arg, "/"):
		target = arg
	default:
		// "~foo" is not a user-home form and resolves relative to the session
		target = joinRaw(s.Dir(), arg)
	}

	// Existence is checked before canonicalization
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return "", errors.NoSuchDirectory(arg)
	}

	canonical, err := canonicalize(target)
	if err != nil {
		return "", errors.PathResolutionFailed(err)
	}

	s.setDir(canonical)

	if isHome {
		return fmt.Sprintf("Changed directory to %s", home), nil
	}
	return "", nil
}

// cdArgument returns the trimmed remainder after the cd keyword
func cdArgument(line string) string {
	trimmed := strings.TrimSpace(line)
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "cd"))
}

// joinRaw joins without lexical cleaning so ".." is applied after symlinks
// are resolved, matching what the kernel does for the existence check
func joinRaw(base, rel string) string {
	if rel == "" {
		return base
	}
	return strings.TrimSuffix(base, string(filepath.Separator)) + string(filepath.Separator) + rel
}

// canonicalize resolves symlinks, "." and ".." and returns an absolute path
func canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
