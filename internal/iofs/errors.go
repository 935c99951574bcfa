package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
)

// CreateDirError is returned when one of the application directories
// cannot be made. Purpose names the directory in the message
// ("config", "log", "database").
func CreateDirError(purpose, dir string, err error) error {
	msg := `Cannot create %s directory <em>%s</em>

<em>How to fix:</em>
  Check permissions of the parent directory`

	return &gn.Error{
		Code: errcode.FSCreateDirError,
		Msg:  msg,
		Vars: []any{purpose, dir},
		Err:  fmt.Errorf("mkdir %s: %w", dir, err),
	}
}

// ConfigWriteError is returned when the default config.yaml cannot
// be written.
func ConfigWriteError(path string, err error) error {
	msg := "Cannot write default configuration to <em>%s</em>"

	return &gn.Error{
		Code: errcode.FSConfigWriteError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("write config %s: %w", path, err),
	}
}

// ConfigReadError is returned when config.yaml exists but cannot be
// read or parsed.
func ConfigReadError(path string, err error) error {
	msg := `Cannot read configuration <em>%s</em>

<em>How to fix:</em>
  Fix the YAML or remove the file to get the defaults back`

	return &gn.Error{
		Code: errcode.FSConfigReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("read config %s: %w", path, err),
	}
}
