package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithFlags_Defaults(t *testing.T) {
	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags.Parse(nil))

	cfg, err := loadConfigWithFlags(cmd.Flags)
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.SourceDir)
	assert.Equal(t, ".js", cfg.SourceExt)
	assert.Equal(t, "docs", cfg.OutputDir)
	assert.False(t, cfg.Watch.Enabled)
}

func TestLoadConfigWithFlags_FlagsOverrideDefaults(t *testing.T) {
	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags.Parse([]string{
		"-src", "lib",
		"-out", "build/docs",
		"-watch",
		"-watch-delay", "750ms",
	}))

	cfg, err := loadConfigWithFlags(cmd.Flags)
	require.NoError(t, err)

	assert.Equal(t, "lib", cfg.SourceDir)
	assert.Equal(t, "build/docs", cfg.OutputDir)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 750*time.Millisecond, time.Duration(cfg.Watch.Delay))

	// Unset flags keep their defaults.
	assert.Equal(t, ".js", cfg.SourceExt)
	assert.Equal(t, "docs", cfg.DocsDir)
}

func TestLoadConfigWithFlags_FlagsOverrideConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "codedoc.yaml")
	content := "source_dir: lib\noutput_dir: fromfile\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags.Parse([]string{
		"-config", path,
		"-src", "app",
	}))

	cfg, err := loadConfigWithFlags(cmd.Flags)
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.SourceDir, "flag should win over the config file")
	assert.Equal(t, "fromfile", cfg.OutputDir, "file value should survive when no flag is set")
}

func TestLoadConfigWithFlags_InvalidWatchDelay(t *testing.T) {
	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags.Parse([]string{"-watch-delay", "soon"}))

	_, err := loadConfigWithFlags(cmd.Flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid watch delay")
}

func TestLoadConfigWithFlags_RevalidatesAfterFlags(t *testing.T) {
	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags.Parse([]string{"-src-ext", "js"}))

	_, err := loadConfigWithFlags(cmd.Flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestLoadConfigWithFlags_MissingConfigFile(t *testing.T) {
	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags.Parse([]string{
		"-config", filepath.Join(t.TempDir(), "nope.yaml"),
	}))

	_, err := loadConfigWithFlags(cmd.Flags)
	require.Error(t, err)
}

func TestCheckCommandSharesInputFlags(t *testing.T) {
	cmd := newCheckCommand()

	for _, name := range []string{"config", "src", "src-ext", "docs", "script-ext", "log-level"} {
		assert.NotNil(t, cmd.Flags.Lookup(name), "check should define -%s", name)
	}
	assert.Nil(t, cmd.Flags.Lookup("out"), "check never writes output")
	assert.Nil(t, cmd.Flags.Lookup("watch"), "check is one-shot")
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		logger := setupLogger(tt.level)
		assert.Equal(t, tt.want, logger.GetLevel(), "level %q", tt.level)
	}
}
