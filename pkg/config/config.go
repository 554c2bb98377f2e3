/*
Package config manages the TOML configuration for searchkit.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/filebox/searchkit/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Dict    DictConfig    `toml:"dict"`
	CLI     CliConfig     `toml:"cli"`
}

// SuggestConfig bounds the autocomplete surface.
type SuggestConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
	MinPrefix    int `toml:"min_prefix"`
	MaxPrefix    int `toml:"max_prefix"`
}

// DictConfig points at the dictionary sources.
type DictConfig struct {
	Path   string `toml:"path"`    // flat word list export
	DBPath string `toml:"db_path"` // bot metadata SQLite database
}

// CliConfig holds interactive-mode defaults.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns the builtin defaults.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			DefaultLimit: 8,
			MaxLimit:     64,
			MinPrefix:    1,
			MaxPrefix:    60,
		},
		Dict: DictConfig{},
		CLI: CliConfig{
			DefaultLimit: 8,
		},
	}
}

// ConfigDir resolves the config directory: ~/.config/searchkit when
// writable, otherwise next to the executable.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("failed to get home directory: %v", err)
		return utils.ExecutableDir()
	}
	primary := filepath.Join(homeDir, ".config", "searchkit")
	if utils.DirWritable(primary) {
		return primary, nil
	}
	return utils.ExecutableDir()
}

// DefaultConfigPath returns the default location of config.toml.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadWithPriority loads config trying, in order: the custom path from the
// --config flag, the default path (created with defaults when missing), and
// finally the builtin defaults. Parse failures never abort startup.
func LoadWithPriority(customPath string) (*Config, string) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			cfg, err := Load(customPath)
			if err == nil {
				log.Debugf("loaded config from custom path: %s", customPath)
				return cfg, customPath
			}
			log.Warnf("failed to load config from %s: %v, trying default path", customPath, err)
		} else {
			log.Warnf("config file not found at %s, trying default path", customPath)
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		log.Warnf("failed to determine default config path: %v, using builtin defaults", err)
		return DefaultConfig(), ""
	}
	cfg, err := Init(defaultPath)
	if err != nil {
		log.Warnf("failed to load/create config at %s: %v, using builtin defaults", defaultPath, err)
		return DefaultConfig(), ""
	}
	return cfg, defaultPath
}

// Init loads config from path, creating it with defaults when missing.
func Init(path string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Warnf("failed to create config directory for %s: %v, using builtin defaults", path, err)
		return DefaultConfig(), nil
	}
	if !utils.FileExists(path) {
		cfg := DefaultConfig()
		if err := Save(cfg, path); err != nil {
			log.Warnf("failed to create default config at %s: %v, using builtin defaults", path, err)
			return DefaultConfig(), nil
		}
		log.Debugf("created default config file at: %s", path)
		return cfg, nil
	}
	return Load(path)
}

// Load decodes a TOML file over the builtin defaults, so partial files keep
// default values for whatever they omit.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(path, cfg); err != nil {
		log.Warnf("could not parse config from %s: %v, using builtin defaults", path, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Save writes the config out as TOML.
func Save(cfg *Config, path string) error {
	return utils.SaveTOMLFile(cfg, path)
}
