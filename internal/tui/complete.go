package tui

import (
	"strings"
	"unicode/utf8"
)

// currentWord returns the token under completion: everything after the last blank
func currentWord(line string) string {
	idx := strings.LastIndexAny(line, " \t")
	return line[idx+1:]
}

// applyCompletion replaces the current word with the single suggestion, or
// extends it to the longest prefix shared by all suggestions
func applyCompletion(line string, suggestions []string) string {
	if len(suggestions) == 0 {
		return line
	}

	idx := strings.LastIndexAny(line, " \t")
	head, word := line[:idx+1], line[idx+1:]

	replacement := suggestions[0]
	if len(suggestions) > 1 {
		replacement = commonPrefix(suggestions)
		if len(replacement) <= len(word) {
			return line
		}
	}
	return head + replacement
}

// commonPrefix returns the longest prefix shared by values, never splitting a rune
func commonPrefix(values []string) string {
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
		}
		if prefix == "" {
			break
		}
	}
	return prefix
}

// formatColumns lays suggestions out in rows of padded columns fitting width
func formatColumns(suggestions []string, width int) []string {
	maxLen := 0
	for _, s := range suggestions {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	colWidth := maxLen + 2
	perRow := width / colWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(suggestions); i += perRow {
		end := i + perRow
		if end > len(suggestions) {
			end = len(suggestions)
		}

		var sb strings.Builder
		for _, s := range suggestions[i:end] {
			sb.WriteString(s)
			sb.WriteString(strings.Repeat(" ", colWidth-len(s)))
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}
	return rows
}
