// Package config handles godd configuration using Viper.
//
// Values come, lowest priority first, from built-in defaults, a config file
// and GODD_* environment variables. The config file is the one passed
// explicitly, otherwise $XDG_CONFIG_HOME/godd/config.toml, otherwise
// ./godd.toml. A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/woliveiras/godd/pkg/dd"
)

const (
	// AppName is used for the config directory and env prefix.
	AppName = "godd"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config is the resolved application configuration.
type Config struct {
	// Binary is the dd executable name or path.
	Binary string `mapstructure:"binary"`
	// MinVersion is an optional "MAJOR.MINOR" lower bound for Binary.
	MinVersion string `mapstructure:"min_version"`
	// Journal is a file that receives a record of every run. Empty disables it.
	Journal  string `mapstructure:"journal"`
	LogLevel string `mapstructure:"log_level"`
	DryRun   bool   `mapstructure:"dry_run"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Binary:   dd.DefaultBinary,
		LogLevel: "info",
		DryRun:   true,
	}
}

// Load resolves the configuration. path forces a specific config file; it
// is an error for that file to be missing.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("binary", defaults.Binary)
	v.SetDefault("min_version", defaults.MinVersion)
	v.SetDefault("journal", defaults.Journal)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("dry_run", defaults.DryRun)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolved := ""
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		resolved = path
	} else {
		resolved = findConfigFile()
	}

	if resolved != "" {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", resolved, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = resolved

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that Viper cannot.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Binary) == "" {
		errs = append(errs, errors.New("binary must not be empty"))
	}
	if c.MinVersion != "" {
		if _, _, err := dd.ParseVersionNumber(c.MinVersion); err != nil {
			errs = append(errs, fmt.Errorf("min_version: %w", err))
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// NewDd returns a Dd for the configured binary and minimum version.
func (c *Config) NewDd() *dd.Dd {
	return c.ApplyMinVersion(dd.New(c.Binary))
}

// ApplyMinVersion sets the configured minimum version, if any, on d.
func (c *Config) ApplyMinVersion(d *dd.Dd) *dd.Dd {
	if c.MinVersion == "" {
		return d
	}
	if major, minor, err := dd.ParseVersionNumber(c.MinVersion); err == nil {
		d.MinVersion(major, minor)
	}
	return d
}

// ConfigDir returns $XDG_CONFIG_HOME/godd, defaulting to ~/.config/godd.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

func findConfigFile() string {
	if dir, err := ConfigDir(); err == nil {
		p := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(p) {
			return p
		}
	}
	local := AppName + "." + ConfigFileExt
	if fileExists(local) {
		return local
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
