package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the unified application configuration
type Config struct {
	Store  StoreConfig `yaml:"store"`
	Theme  string      `yaml:"theme"`
	LogDir string      `yaml:"log_dir,omitempty"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// CLIFlags holds parsed CLI flags; empty fields leave lower layers alone.
type CLIFlags struct {
	ConfigPath   string
	StoreBackend string
	StorePath    string
	Theme        string
}

// DefaultConfig is used when nothing else is configured.
func DefaultConfig() (*Config, error) {
	dir, err := GetDefaultDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Store: StoreConfig{Backend: BackendFile, Path: dir},
		Theme: "classic",
	}, nil
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	configPath, err := ConfigPath(flags)
	if err != nil {
		return nil, err
	}
	fileConfig, err := loadConfigFile(configPath)
	switch {
	case err == nil:
		if fileConfig.Store.Backend != "" {
			cfg.Store.Backend = fileConfig.Store.Backend
		}
		if fileConfig.Store.Path != "" {
			cfg.Store.Path = expandPath(fileConfig.Store.Path)
		}
		if fileConfig.Theme != "" {
			cfg.Theme = fileConfig.Theme
		}
		if fileConfig.LogDir != "" {
			cfg.LogDir = expandPath(fileConfig.LogDir)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}

	if v := os.Getenv("ITEMDECK_STORE"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("ITEMDECK_STORE_PATH"); v != "" {
		cfg.Store.Path = expandPath(v)
	}
	if v := os.Getenv("ITEMDECK_THEME"); v != "" {
		cfg.Theme = v
	}

	if flags.StoreBackend != "" {
		cfg.Store.Backend = flags.StoreBackend
	}
	if flags.StorePath != "" {
		cfg.Store.Path = expandPath(flags.StorePath)
	}
	if flags.Theme != "" {
		cfg.Theme = flags.Theme
	}

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q (want file, sqlite or memory)", c.Store.Backend)
	}
	return nil
}

// SQLitePath is the database file used by the sqlite backend.
func (c *Config) SQLitePath() string {
	if strings.HasSuffix(c.Store.Path, ".db") {
		return c.Store.Path
	}
	return filepath.Join(c.Store.Path, "itemdeck.db")
}

// GetDefaultDir returns the default data directory
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".itemdeck"), nil
}

// ConfigPath resolves the config file: flag, then ITEMDECK_CONFIG, then
// ~/.config/itemdeck/config.yaml.
func ConfigPath(flags CLIFlags) (string, error) {
	if flags.ConfigPath != "" {
		return expandPath(flags.ConfigPath), nil
	}
	if v := os.Getenv("ITEMDECK_CONFIG"); v != "" {
		return expandPath(v), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "itemdeck", "config.yaml"), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Config
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// EnsureConfigFile writes the defaults to path unless a file is already there.
func EnsureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cfg, err := DefaultConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
