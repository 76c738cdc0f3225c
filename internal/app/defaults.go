package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - PETS_CONFIG_PATH: config file location (default: ~/.config/pets.toml)
//   - PETS_HOME: base directory for pets data (default: ~/.local/share/pets)
func GetDefaults() (map[string]string, error) {
	configPath, err := envOrHome("PETS_CONFIG_PATH", ".config", "pets.toml")
	if err != nil {
		return nil, err
	}

	baseDir, err := envOrHome("PETS_HOME", ".local", "share", "pets")
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// envOrHome returns $env when set, otherwise the path under the user's home
// directory made of elem.
func envOrHome(env string, elem ...string) (string, error) {
	if path := os.Getenv(env); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(append([]string{homeDir}, elem...)...), nil
}
