package config

import (
	"os"
	"path/filepath"
)

// GetConfigFile returns the config file path
// (~/.config/scaffold/config.yaml). If SCAFFOLD_CONFIG is set, it takes
// precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("SCAFFOLD_CONFIG"); envPath != "" {
		return envPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "scaffold", "config.yaml"), nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported, return as-is
	return path, nil
}
