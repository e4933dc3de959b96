package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err, "Expected error containing '%s', but got no error", expected)
	if err != nil {
		assert.Contains(t, err.Error(), expected, "Expected error containing '%s', got: %v", expected, err)
	}
}

func AssertOutputContains(t *testing.T, output, expected string) {
	t.Helper()
	assert.Contains(t, output, expected, "Expected output containing '%s', got: %s", expected, output)
}

func AssertMultipleStringsInOutput(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		assert.Contains(t, output, exp, "Expected output to contain '%s', got: %s", exp, output)
	}
}

func AssertNoError(t *testing.T, err error) {
	t.Helper()
	assert.NoError(t, err)
}

func AssertError(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
}

// AssertExitCode checks the process exit status of a failed run
func AssertExitCode(t *testing.T, err error, expected int) {
	t.Helper()
	exitErr, ok := err.(interface{ ExitCode() int })
	if !assert.True(t, ok, "Expected an exit error, got: %v", err) {
		return
	}
	assert.Equal(t, expected, exitErr.ExitCode())
}

func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	assert.Equal(t, expected, actual)
}

func AssertTrue(t *testing.T, condition bool, message string) {
	t.Helper()
	assert.True(t, condition, message)
}

func AssertFalse(t *testing.T, condition bool, message string) {
	t.Helper()
	assert.False(t, condition, message)
}
