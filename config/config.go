package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name
	AppName = "threadtree"
	// EnvPrefix prefixes every environment override, e.g. THREADTREE_INDENT
	EnvPrefix = "THREADTREE"
	// ConfigFileName is the config file name without extension
	ConfigFileName = "config"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds the report settings
type Config struct {
	Indent   string `mapstructure:"indent"`
	MaxDepth int    `mapstructure:"max_depth"`
	ShowIDs  bool   `mapstructure:"show_ids"`
	Color    bool   `mapstructure:"color"`
	Snapshot string `mapstructure:"snapshot"`
	Current  string `mapstructure:"current"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Indent: "    ",
	}
}

// Load builds a Config from defaults, an optional TOML file and THREADTREE_*
// environment variables, in increasing order of precedence. When path is
// empty the first existing of ./threadtree.toml and
// $XDG_CONFIG_HOME/threadtree/config.toml is used, if any. It returns the
// file that was read, or "" when none was.
func Load(path string) (*Config, string, error) {
	v := New()

	resolved := path
	if resolved == "" {
		resolved = findConfigFile()
	}
	if resolved != "" {
		v.SetConfigFile(resolved)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("config load failed (%s): %w", resolved, err)
		}
	}

	cfg, err := Decode(v)
	if err != nil {
		if resolved != "" {
			return nil, "", fmt.Errorf("%s: %w", resolved, err)
		}
		return nil, "", err
	}
	return cfg, resolved, nil
}

// New returns a viper instance with defaults and environment binding set up.
// Callers may bind command flags to it before calling Decode.
func New() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("indent", defaults.Indent)
	v.SetDefault("max_depth", defaults.MaxDepth)
	v.SetDefault("show_ids", defaults.ShowIDs)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("snapshot", defaults.Snapshot)
	v.SetDefault("current", defaults.Current)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Decode unmarshals and validates the settings held by v
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings viper cannot type-check
func Validate(cfg Config) error {
	if cfg.Indent == "" {
		return fmt.Errorf("%w: indent must not be empty", ErrInvalid)
	}
	if strings.TrimSpace(cfg.Indent) != "" {
		return fmt.Errorf("%w: indent %q must be whitespace", ErrInvalid, cfg.Indent)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d must not be negative", ErrInvalid, cfg.MaxDepth)
	}
	if cfg.Current != "" && cfg.Snapshot == "" {
		return fmt.Errorf("%w: current requires a snapshot", ErrInvalid)
	}
	return nil
}

// Dir returns the directory holding the user config file
func Dir() (string, error) {
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
	candidates := []string{AppName + ".toml"}
	if dir, err := Dir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, ConfigFileName+".toml"))
	}
	for _, path := range candidates {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
