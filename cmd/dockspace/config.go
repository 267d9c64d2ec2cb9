package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage  StorageConfig
	Autosave AutosaveConfig
	Shell    ShellConfig
}

// StorageConfig selects the layout persistence backend.
type StorageConfig struct {
	Backend string // "file", "sqlite", or "memory"
	Path    string
}

// AutosaveConfig holds the debounce settings.
type AutosaveConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// ShellConfig holds terminal panel settings.
type ShellConfig struct {
	WorkDir string `mapstructure:"work_dir"`
}

// loadConfig reads configuration from file and env. Env var overrides
// use prefix DOCKSPACE_.
func loadConfig() (Config, error) {
	v := viper.New()

	stateDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "dockspace")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", filepath.Join(stateDir, "layout.json"))
	v.SetDefault("autosave.debounce_ms", 1000)
	v.SetDefault("shell.work_dir", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DOCKSPACE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dockspace"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOCKSPACE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return c, nil
}
