package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/verdict/internal/constants"
	"github.com/mrz1836/verdict/internal/errors"
)

// GlobalConfigDir returns the path to the global verdict directory,
// typically ~/.verdict.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.VerdictHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the project configuration file relative to the
// working directory: .verdict/config.yaml.
func ProjectConfigPath() string {
	return filepath.Join(constants.VerdictHome, constants.ConfigFileName)
}

// LogDir returns the directory the rotating CLI log lives in.
func LogDir() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir), nil
}
