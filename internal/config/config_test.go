package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultEnv, cfg.Env)
	assert.True(t, cfg.DevMode())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "release/pack.loc", cfg.Compiler.Output)
	assert.Equal(t, "Interface/Wrap/MainMenu/Main2/Version.txt", cfg.Paths.Version)
	assert.Equal(t, "Client/ApplicationName.txt", cfg.Paths.ApplicationName)
	assert.Equal(t, ".path", filepath.Base(cfg.StateFile))
	assert.Contains(t, filepath.Base(cfg.Compiler.Path), "loc.compiler")
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "release/pack.loc", cfg.Compiler.Output)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loc-editor.yaml")
	content := `
env: production
log:
  level: debug
compiler:
  path: /opt/loc/loc.compiler
paths:
  version: Version.txt
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("LOCEDIT_LOG_LEVEL", "warn")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.False(t, cfg.DevMode())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/opt/loc/loc.compiler", cfg.Compiler.Path)
	assert.Equal(t, "Version.txt", cfg.Paths.Version)
	assert.Equal(t, "Client/ApplicationName.txt", cfg.Paths.ApplicationName)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LOCEDIT_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Bool("json-logs", false, "")
	require.NoError(t, flags.Parse([]string{"--log-level=debug", "--json-logs"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadUnchangedFlagsKeepEnv(t *testing.T) {
	t.Setenv("LOCEDIT_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	t.Setenv("LOCEDIT_ENV", "staging")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")
}
