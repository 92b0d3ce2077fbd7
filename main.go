package main

import (
	"os"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/cli"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/errors"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		errors.Print(os.Stdout, err)
		os.Exit(errors.ExitCode(err))
	}
}
