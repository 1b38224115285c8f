// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "rentalmate"

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DataDir is where the listing database lives: $XDG_DATA_HOME/rentalmate or ~/.local/share/rentalmate.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	return ExpandPath(filepath.Join("~", ".local", "share", appName))
}

// ConfigDir is searched for config.yaml: $XDG_CONFIG_HOME/rentalmate or ~/.config/rentalmate.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	return ExpandPath(filepath.Join("~", ".config", appName))
}

// DefaultDatabasePath is used when database.path is not configured.
func DefaultDatabasePath() string {
	return filepath.Join(DataDir(), appName+".db")
}
