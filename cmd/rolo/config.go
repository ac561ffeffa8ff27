package main

import (
	"fmt"
	"os"

	"github.com/unbound-force/rolo/internal/storage"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath is searched in the working directory when no
// --config flag is given.
const defaultConfigPath = ".rolo.yaml"

// Config holds the user-tunable settings read from .rolo.yaml.
type Config struct {
	Storage struct {
		// Backend selects the snapshot store: "json" or "sqlite".
		Backend string `yaml:"backend"`

		// Path is the snapshot file location.
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Birthdays struct {
		// WindowDays is the default window for the birthdays command.
		WindowDays int `yaml:"window_days"`
	} `yaml:"birthdays"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	var cfg Config
	cfg.Storage.Backend = "json"
	cfg.Storage.Path = "addressbook.json"
	cfg.Birthdays.WindowDays = 7
	return cfg
}

// loadConfig reads the config file at path, or the default path when
// path is empty. A missing file at the default path yields
// DefaultConfig; a missing file at an explicit path is an error.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	switch cfg.Storage.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("invalid storage backend %q: must be 'json' or 'sqlite'",
			cfg.Storage.Backend)
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage path must not be empty")
	}
	if cfg.Birthdays.WindowDays < 1 {
		return fmt.Errorf("invalid birthday window %d: must be at least 1 day",
			cfg.Birthdays.WindowDays)
	}
	return nil
}

// openStore builds the snapshot store selected by cfg.
func openStore(cfg Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return storage.NewSQLite(cfg.Storage.Path)
	default:
		return storage.NewJSONFile(cfg.Storage.Path)
	}
}
