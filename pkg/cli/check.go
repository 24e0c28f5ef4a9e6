package cli

import (
	"flag"
	"fmt"

	"github.com/alhimik45/codedoc/pkg/generator"
	"github.com/alhimik45/codedoc/pkg/storage"
)

func newCheckCommand() *Command {
	cmd := &Command{
		Name:        "check",
		Description: "Run extraction without writing files and list the targets",
		Flags:       flag.NewFlagSet("check", flag.ExitOnError),
		Run:         runCheck,
	}

	addInputFlags(cmd.Flags)

	return cmd
}

func runCheck(args []string) error {
	cmd := newCheckCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigWithFlags(cmd.Flags)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.LogLevel)
	writer := storage.NewMemoryWriter()

	summary, err := generator.New(cfg, writer, logger).Run()
	if err != nil {
		return err
	}

	fmt.Printf("Would write %d files (%d modules):\n", summary.Targets, summary.Modules)
	for _, path := range writer.Paths() {
		fmt.Printf("  %s\n", path)
	}
	return nil
}
