package cli

import (
	"flag"
	"fmt"
	"runtime"
)

// Version information, overridden at build time via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCommand() *Command {
	return &Command{
		Name:        "version",
		Description: "Print version information",
		Flags:       flag.NewFlagSet("version", flag.ExitOnError),
		Run:         runVersion,
	}
}

func runVersion(args []string) error {
	fmt.Printf("codedoc %s (commit %s, built %s, %s)\n", Version, GitCommit, BuildDate, runtime.Version())
	return nil
}
