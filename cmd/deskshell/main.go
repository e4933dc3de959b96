package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/satococoa/deskshell/internal/errors"
)

const defaultVersion = "dev"

// Version information (set by GoReleaser)
var (
	version = defaultVersion
	_       = "none"    // commit - set by GoReleaser but not used
	_       = "unknown" // date - set by GoReleaser but not used
)

func main() {
	initVersion()

	if err := createApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", strings.TrimRight(err.Error(), "\n"))
		os.Exit(exitCode(err))
	}
}

// exitCode propagates the status of a failed command line, otherwise 1
func exitCode(err error) int {
	var gwErr *errors.Error
	if stderrors.As(err, &gwErr) && gwErr.Kind == errors.KindCommand && gwErr.ExitCode > 0 {
		return gwErr.ExitCode
	}
	return 1
}
