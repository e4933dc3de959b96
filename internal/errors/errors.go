package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies gateway failures so hosts can tell them apart without string matching
type Kind int

const (
	// KindUnknown is reported for errors not produced by this package
	KindUnknown Kind = iota
	// KindTransport means the subprocess could not be started at all
	KindTransport
	// KindCommand means the subprocess ran and exited nonzero
	KindCommand
	// KindValidation means a cd target was rejected
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindCommand:
		return "command"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the tagged error returned by gateway operations.
// Error() yields exactly the text shown to the user.
type Error struct {
	Kind     Kind
	Message  string
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return KindUnknown
}

// Subprocess Errors
func TransportFailed(cause error) error {
	return &Error{
		Kind:    KindTransport,
		Message: cause.Error(),
		Err:     cause,
	}
}

func CommandFailed(stderr string, exitCode int) error {
	msg := stderr
	if msg == "" {
		msg = fmt.Sprintf("command failed with status %d", exitCode)
	}
	return &Error{
		Kind:     KindCommand,
		Message:  msg,
		ExitCode: exitCode,
	}
}

func CompletionFailed(stderr string, exitCode int) error {
	msg := stderr
	if msg == "" {
		msg = fmt.Sprintf("completion failed with status %d", exitCode)
	}
	return &Error{
		Kind:     KindCommand,
		Message:  msg,
		ExitCode: exitCode,
	}
}

// Directory Errors
func NoSuchDirectory(target string) error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("cd: no such directory: %s", target),
	}
}

func PathResolutionFailed(cause error) error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("failed to resolve path: %v", cause),
		Err:     cause,
	}
}

// Configuration Errors
func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "yaml") || strings.Contains(parseErrorStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solutions:
  • Check YAML syntax and indentation
  • Run 'deskshell init' in an empty location to see a valid example`
	} else if strings.Contains(parseErrorStr, "log level") {
		msg += `

Cause: Unsupported log level
Solution: Use one of debug, info, warn, error`
	} else if strings.Contains(parseErrorStr, "permission denied") {
		msg += fmt.Sprintf(`

Cause: Permission denied reading configuration file
Solution: Check file permissions with 'ls -la %s'`, configPath)
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return errors.New(msg)
}

func ConfigAlreadyExists(configPath string) error {
	msg := fmt.Sprintf(`configuration file already exists: %s

Options:
  • Edit the existing file manually
  • Delete it and run 'deskshell init' again
  • Use 'deskshell --config <path> init' to write somewhere else`, configPath)
	return errors.New(msg)
}

func ConfigWriteFailed(configPath string, originalError error) error {
	msg := fmt.Sprintf("failed to write configuration file: %s", configPath)

	if strings.Contains(originalError.Error(), "permission denied") {
		msg += `

Cause: Permission denied
Solutions:
  • Check directory permissions
  • Choose another location with --config`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", originalError)
	return errors.New(msg)
}

// Protocol Errors
func UnknownMethod(method string, supported []string) error {
	msg := fmt.Sprintf("unknown method: %s", method)

	if len(supported) > 0 {
		msg += "\n\nSupported methods:"
		for _, m := range supported {
			msg += fmt.Sprintf("\n  • %s", m)
		}
	}

	return errors.New(msg)
}
