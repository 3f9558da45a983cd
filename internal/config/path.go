// Package config loads and validates studmoney settings.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the config and data directories.
const AppName = "studmoney"

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// Dir returns $XDG_CONFIG_HOME/studmoney, falling back to ~/.config/studmoney.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	return ExpandPath(filepath.Join("~", ".config", AppName))
}

// DataDir returns $XDG_DATA_HOME/studmoney, falling back to ~/.local/share/studmoney.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	return ExpandPath(filepath.Join("~", ".local", "share", AppName))
}

// DefaultDatabasePath is where the SQLite store lives unless configured.
func DefaultDatabasePath() string {
	return filepath.Join(DataDir(), AppName+".db")
}

// SheetsTokenFile is where the Google OAuth token is cached.
func SheetsTokenFile() string {
	return filepath.Join(Dir(), "sheets-token.json")
}
