package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "pdbdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/pdbdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for local database files.
// Returns ~/.local/share/pdbdb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/pdbdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/pdbdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLiteFilePath returns the default SQLite catalog file.
// Returns ~/.local/share/pdbdb/pdb.sqlite by default.
func SQLiteFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "pdb.sqlite")
}
