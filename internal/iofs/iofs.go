// Package iofs prepares the directories and files PDBdb keeps under
// the user's home directory.
package iofs

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/pdbbrowser/pdbdb/pkg/config"
)

// ConfigYAML is the documented default configuration written on first
// run.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureHome creates the config and log directories. The log
// directory lives inside the data directory, so it is created too.
func EnsureHome(homeDir string) error {
	if err := mkdir("config", config.ConfigDir(homeDir)); err != nil {
		return err
	}
	return mkdir("log", config.LogDir(homeDir))
}

// EnsureDatabaseDir creates the directory of the SQLite catalog file,
// which can be configured to live outside the data directory. It does
// nothing for PostgreSQL.
func EnsureDatabaseDir(cfg *config.Config) error {
	if cfg.Database.Driver != "sqlite" {
		return nil
	}
	return mkdir("database", filepath.Dir(cfg.SQLitePath()))
}

func mkdir(purpose, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(purpose, dir, err)
	}
	return nil
}

// EnsureConfigFile writes the embedded config.yaml when the user has
// none, or has an empty one. It reports whether the file was written.
func EnsureConfigFile(homeDir string) (bool, error) {
	path := config.ConfigFilePath(homeDir)

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, ConfigWriteError(path, errors.New("path is a directory"))
	case err == nil && info.Size() > 0:
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, ConfigReadError(path, err)
	}

	if err = os.WriteFile(path, []byte(ConfigYAML), 0644); err != nil {
		return false, ConfigWriteError(path, err)
	}
	return true, nil
}
