package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alhimik45/codedoc/pkg/config"
	"github.com/alhimik45/codedoc/pkg/generator"
	"github.com/alhimik45/codedoc/pkg/storage"
)

func newGenerateCommand() *Command {
	cmd := &Command{
		Name:        "generate",
		Description: "Extract documentation comments and write the rendered tree",
		Flags:       flag.NewFlagSet("generate", flag.ExitOnError),
		Run:         runGenerate,
	}

	addInputFlags(cmd.Flags)
	cmd.Flags.String("out", "", "Output directory for the rendered documentation")
	cmd.Flags.Bool("watch", false, "Keep running and regenerate on file changes")
	cmd.Flags.String("watch-delay", "", "Debounce delay for watch mode (e.g. 2s)")

	return cmd
}

// addInputFlags defines the flags shared by generate and check. Empty
// defaults keep unset flags from shadowing config file and environment
// values.
func addInputFlags(flags *flag.FlagSet) {
	flags.String("config", "", "Path to the config file (default: probe codedoc.yaml)")
	flags.String("src", "", "Root of the commented source tree")
	flags.String("src-ext", "", "Extension of source files (e.g. .js)")
	flags.String("docs", "", "Root of the narrative script tree")
	flags.String("script-ext", "", "Extension of narrative scripts (e.g. .py)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
}

func runGenerate(args []string) error {
	cmd := newGenerateCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigWithFlags(cmd.Flags)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.LogLevel)

	writer, err := storage.NewFileSystemWriter(cfg.OutputDir)
	if err != nil {
		return err
	}

	gen := generator.New(cfg, writer, logger)

	if cfg.Watch.Enabled {
		stop := make(chan struct{})
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("shutting down")
			close(stop)
		}()
		return gen.Watch(time.Duration(cfg.Watch.Delay), stop)
	}

	summary, err := gen.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d files (%d modules) in %s\n",
		summary.Targets, summary.Modules, summary.Duration.Round(time.Millisecond))
	return nil
}

// loadConfigWithFlags builds the effective configuration: defaults, config
// file and environment first, then explicitly set flags on top.
func loadConfigWithFlags(flags *flag.FlagSet) (*config.Config, error) {
	configPath := flags.Lookup("config").Value.String()
	if configPath == "" {
		configPath = config.FindConfigFile(".")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	var flagErr error
	flags.Visit(func(f *flag.Flag) {
		value := f.Value.String()
		switch f.Name {
		case "src":
			cfg.SourceDir = value
		case "src-ext":
			cfg.SourceExt = value
		case "docs":
			cfg.DocsDir = value
		case "script-ext":
			cfg.ScriptExt = value
		case "out":
			cfg.OutputDir = value
		case "log-level":
			cfg.LogLevel = value
		case "watch":
			cfg.Watch.Enabled = value == "true"
		case "watch-delay":
			delay, err := time.ParseDuration(value)
			if err != nil {
				flagErr = fmt.Errorf("invalid watch delay %q: %w", value, err)
				return
			}
			cfg.Watch.Delay = config.Duration(delay)
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}

	// Flags may have replaced validated values, so check again.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// setupLogger configures the logger with the specified level
func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	return logger
}
