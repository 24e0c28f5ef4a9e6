package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileNames are probed in order when no config file is given
// explicitly.
var ConfigFileNames = []string{"codedoc.yaml", "codedoc.yml", ".codedoc.yaml", ".codedoc.yml"}

// Config holds all generation configuration
type Config struct {
	// Input trees
	SourceDir string `yaml:"source_dir"`
	SourceExt string `yaml:"source_ext"`
	DocsDir   string `yaml:"docs_dir"`
	ScriptExt string `yaml:"script_ext"`

	// Output
	OutputDir string `yaml:"output_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Continuous regeneration
	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig holds watch mode configuration
type WatchConfig struct {
	Enabled bool     `yaml:"enabled"`
	Delay   Duration `yaml:"delay"`
}

// Duration wraps time.Duration so YAML files can use the `2s`/`500ms`
// notation.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		SourceDir: "src",
		SourceExt: ".js",
		DocsDir:   "docs",
		ScriptExt: ".py",
		OutputDir: "docs",
		LogLevel:  "info",
		Watch: WatchConfig{
			Enabled: false,
			Delay:   Duration(2 * time.Second),
		},
	}
}

// LoadConfig builds the effective configuration: built-in defaults, then the
// config file if path is non-empty, then CODEDOC_* environment overrides.
// Flag overrides are applied by the CLI on top of the returned value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FindConfigFile returns the first known config file present in dir, or an
// empty string when none exists.
func FindConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// applyEnv overrides configuration from environment variables
func (c *Config) applyEnv() {
	c.SourceDir = getEnv("CODEDOC_SOURCE_DIR", c.SourceDir)
	c.SourceExt = getEnv("CODEDOC_SOURCE_EXT", c.SourceExt)
	c.DocsDir = getEnv("CODEDOC_DOCS_DIR", c.DocsDir)
	c.ScriptExt = getEnv("CODEDOC_SCRIPT_EXT", c.ScriptExt)
	c.OutputDir = getEnv("CODEDOC_OUTPUT_DIR", c.OutputDir)
	c.LogLevel = getEnv("CODEDOC_LOG_LEVEL", c.LogLevel)
	c.Watch.Enabled = getEnvBool("CODEDOC_WATCH", c.Watch.Enabled)
	c.Watch.Delay = Duration(getEnvDuration("CODEDOC_WATCH_DELAY", time.Duration(c.Watch.Delay)))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if !strings.HasPrefix(c.SourceExt, ".") {
		return fmt.Errorf("source extension must start with a dot: %q", c.SourceExt)
	}
	if c.DocsDir != "" && !strings.HasPrefix(c.ScriptExt, ".") {
		return fmt.Errorf("script extension must start with a dot: %q", c.ScriptExt)
	}
	if time.Duration(c.Watch.Delay) <= 0 {
		return fmt.Errorf("watch delay must be positive")
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
