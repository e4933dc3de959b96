package gateway

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/satococoa/deskshell/internal/command"
	"github.com/satococoa/deskshell/internal/errors"
	"github.com/satococoa/deskshell/internal/session"
)

// Completions returns suggestions for partial given the full line typed so far.
//
// While the line holds at most one word the command name is being completed.
// Otherwise file paths are enumerated, falling back to directories (suffixed
// with "/") when no file matches. Enumeration runs in the session directory.
func (g *Gateway) Completions(ctx context.Context, partial, fullLine string) ([]string, error) {
	dir := g.session.Dir()

	if len(strings.Fields(fullLine)) <= 1 {
		return g.enumerate(ctx, command.CompgenCommands(g.completionShell, partial, dir))
	}

	return g.completePath(ctx, partial, dir)
}

func (g *Gateway) completePath(ctx context.Context, partial, dir string) ([]string, error) {
	home := session.HomeDir()

	prefix := partial
	if strings.HasPrefix(partial, "~/") {
		prefix = home + partial[1:]
	}

	files, err := g.enumerate(ctx, command.CompgenFiles(g.completionShell, prefix, dir))
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		return abbreviateHome(files, home), nil
	}

	dirs, err := g.enumerate(ctx, command.CompgenDirectories(g.completionShell, prefix, dir))
	if err != nil {
		// A failing directory fallback leaves the suggestion list empty
		g.logger.Debug("directory completion failed", zap.Error(err))
		return []string{}, nil
	}

	suggestions := abbreviateHome(dirs, home)
	for i := range suggestions {
		suggestions[i] += "/"
	}
	return suggestions, nil
}

// enumerate runs a compgen command and splits its output into suggestions
func (g *Gateway) enumerate(ctx context.Context, cmd command.Command) ([]string, error) {
	result, err := g.executor.Execute(ctx, []command.Command{cmd})
	if err != nil {
		return nil, errors.TransportFailed(err)
	}

	res := result.Results[0]
	if res.Error != nil {
		return nil, errors.TransportFailed(res.Error)
	}
	if !res.Output.Success() {
		return nil, errors.CompletionFailed(res.Output.Stderr, res.Output.ExitCode)
	}

	return command.SplitLines(res.Output.Stdout), nil
}

// abbreviateHome rewrites entries under home to their ~ display form
func abbreviateHome(entries []string, home string) []string {
	if home == "/" {
		return entries
	}
	home = strings.TrimSuffix(home, "/")
	for i, entry := range entries {
		if entry == home || strings.HasPrefix(entry, home+"/") {
			entries[i] = "~" + strings.TrimPrefix(entry, home)
		}
	}
	return entries
}
