package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWord(t *testing.T) {
	tests := []struct {
		line     string
		expected string
	}{
		{line: "gi", expected: "gi"},
		{line: "cd ~/pro", expected: "~/pro"},
		{line: "ls ", expected: ""},
		{line: "cat\tfi", expected: "fi"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, currentWord(tt.line))
		})
	}
}

func TestApplyCompletion(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		suggestions []string
		expected    string
	}{
		{name: "no suggestions", line: "ls x", suggestions: nil, expected: "ls x"},
		{name: "single command", line: "gi", suggestions: []string{"git"}, expected: "git"},
		{name: "single path", line: "cd sr", suggestions: []string{"src/"}, expected: "cd src/"},
		{name: "home display form", line: "ls ~/Do", suggestions: []string{"~/Documents"}, expected: "ls ~/Documents"},
		{name: "shared prefix", line: "vim ma", suggestions: []string{"main.go", "makefile"}, expected: "vim ma"},
		{name: "longer shared prefix", line: "vim m", suggestions: []string{"main.go", "main_test.go"}, expected: "vim main"},
		{name: "accented names sharing a lead byte", line: "ls ", suggestions: []string{"é.txt", "è.txt"}, expected: "ls "},
		{name: "accented shared prefix", line: "cat ré", suggestions: []string{"résumé.txt", "résumé.md"}, expected: "cat résumé."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, applyCompletion(tt.line, tt.suggestions))
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "main", commonPrefix([]string{"main.go", "main_test.go"}))
	assert.Equal(t, "", commonPrefix([]string{"abc", "xyz"}))
	assert.Equal(t, "same", commonPrefix([]string{"same", "same"}))
	assert.Equal(t, "", commonPrefix([]string{"é.txt", "è.txt"}))
	assert.Equal(t, "caf", commonPrefix([]string{"café", "cafè"}))
	assert.Equal(t, "日本", commonPrefix([]string{"日本語", "日本酒"}))

	for _, values := range [][]string{{"é.txt", "è.txt"}, {"日本語", "日本人"}, {"ünï", "üñ"}} {
		assert.True(t, utf8.ValidString(commonPrefix(values)), "prefix of %v must be valid UTF-8", values)
	}
}

func TestFormatColumns(t *testing.T) {
	t.Run("fits several per row", func(t *testing.T) {
		rows := formatColumns([]string{"a", "bb", "ccc", "d"}, 10)

		// column width is 5, so two per row
		assert.Equal(t, []string{"a    bb", "ccc  d"}, rows)
	})

	t.Run("narrow width still shows one per row", func(t *testing.T) {
		rows := formatColumns([]string{"verylongname", "x"}, 4)

		assert.Equal(t, []string{"verylongname", "x"}, rows)
	})
}
