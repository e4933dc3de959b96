package command

import (
	"fmt"
	"strings"
)

// ShellLine builds a command that runs line verbatim through shell -c
func ShellLine(shell, line, workDir string) Command {
	return Command{
		Name:    shell,
		Args:    []string{"-c", line},
		WorkDir: workDir,
	}
}

// CompgenCommands builds a command-name enumeration, sorted and deduplicated
func CompgenCommands(shell, prefix, workDir string) Command {
	return compgen(shell, "-c", prefix, "sort | uniq", workDir)
}

// CompgenFiles builds a file-path enumeration, sorted
func CompgenFiles(shell, prefix, workDir string) Command {
	return compgen(shell, "-f", prefix, "sort", workDir)
}

// CompgenDirectories builds a directory-only enumeration, sorted
func CompgenDirectories(shell, prefix, workDir string) Command {
	return compgen(shell, "-d", prefix, "sort", workDir)
}

func compgen(shell, action, prefix, pipeline, workDir string) Command {
	script := fmt.Sprintf("compgen %s -- %s | %s", action, quoteWord(prefix), pipeline)
	return Command{
		Name:    shell,
		Args:    []string{"-c", script},
		WorkDir: workDir,
	}
}

// quoteWord single-quotes s so the shell passes it to compgen as one literal word
// e.g., "it's" -> 'it'\''s'
func quoteWord(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// SplitLines splits enumeration output into non-empty lines
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		result = append(result, line)
	}
	return result
}
