// Package config loads the loc-editor configuration from an optional file,
// environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultEnv is the runtime mode used when nothing else sets one. Release
// builds override it with -ldflags "-X loc-editor/internal/config.DefaultEnv=production".
var DefaultEnv = EnvDevelopment

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
	JSON  bool   `mapstructure:"json" yaml:"json"`   // JSON lines instead of console output
}

type CompilerConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`     // The loc compiler executable
	Output string `mapstructure:"output" yaml:"output"` // Output path handed to the compiler, relative to its working directory
}

// PathsConfig holds the fixed files under the root directory that have
// their own menu entries.
type PathsConfig struct {
	Version         string `mapstructure:"version" yaml:"version"`
	ApplicationName string `mapstructure:"application_name" yaml:"application_name"`
}

// Config wraps the entire configuration of the application.
type Config struct {
	Env       string         `mapstructure:"env" yaml:"env"`
	Log       LogConfig      `mapstructure:"log" yaml:"log"`
	StateFile string         `mapstructure:"state_file" yaml:"state_file"` // Where the root path is persisted
	Compiler  CompilerConfig `mapstructure:"compiler" yaml:"compiler"`
	Paths     PathsConfig    `mapstructure:"paths" yaml:"paths"`
}

// DevMode reports whether developer affordances should be exposed.
func (c *Config) DevMode() bool {
	return c.Env != EnvProduction
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid env %q: must be %q or %q", c.Env, EnvDevelopment, EnvProduction)
	}
	if c.StateFile == "" {
		return errors.New("state_file must not be empty")
	}
	if c.Compiler.Path == "" {
		return errors.New("compiler.path must not be empty")
	}
	if c.Compiler.Output == "" {
		return errors.New("compiler.output must not be empty")
	}

	return nil
}

// Load loads the config from the file path, falling back to defaults and env
// vars if the path is empty or the file does not exist. Env vars override
// file values and changed flags override both.
func Load(filePath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var (
	// envBindings maps config keys to the environment variables that can
	// provide them.
	envBindings = map[string][]string{
		"env":                    {"LOCEDIT_ENV"},
		"log.level":              {"LOCEDIT_LOG_LEVEL", "LOG_LEVEL"},
		"log.json":               {"LOCEDIT_JSON_LOGS"},
		"state_file":             {"LOCEDIT_STATE_FILE"},
		"compiler.path":          {"LOCEDIT_COMPILER_PATH"},
		"compiler.output":        {"LOCEDIT_COMPILER_OUTPUT"},
		"paths.version":          {"LOCEDIT_VERSION_FILE"},
		"paths.application_name": {"LOCEDIT_APPNAME_FILE"},
	}

	// flagBindings maps config keys to command line flag names.
	flagBindings = map[string]string{
		"log.level": "log-level",
		"log.json":  "json-logs",
	}
)

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(envs, 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagBindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", DefaultEnv)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("state_file", defaultStateFile())
	v.SetDefault("compiler.path", defaultCompilerPath())
	v.SetDefault("compiler.output", "release/pack.loc")
	v.SetDefault("paths.version", "Interface/Wrap/MainMenu/Main2/Version.txt")
	v.SetDefault("paths.application_name", "Client/ApplicationName.txt")
}

func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "loc-editor", ".path")
}

func defaultCompilerPath() string {
	name := "loc.compiler"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}

	return filepath.Join(dir, "tools", name)
}
