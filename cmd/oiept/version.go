package main

import (
	"fmt"
)

// BuildTag and BuildCommit are set via -ldflags at release build time.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "oiept version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
