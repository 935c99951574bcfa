package config_test

import (
	"path/filepath"
	"testing"

	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "pdbdb"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "pdbdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "pdbdb", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "pdbdb", "config.yaml"),
		},
		{
			msg: "sqlite file",
			fn:  config.SQLiteFilePath,
			res: filepath.Join(tempHome, ".local", "share", "pdbdb", "pdb.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "pdb", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxConnections)

	assert.False(t, cfg.Store.Cascade)
	assert.True(t, cfg.Store.TextSearch)
	assert.Equal(t, 100, cfg.Store.SearchLimit)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestSQLitePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/pdb")})
	assert.Equal(t,
		filepath.Join("/home/pdb", ".local", "share", "pdbdb", "pdb.sqlite"),
		cfg.SQLitePath())

	cfg.Update([]config.Option{config.OptDatabasePath("/tmp/catalog.sqlite")})
	assert.Equal(t, "/tmp/catalog.sqlite", cfg.SQLitePath())
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid host", "db.example.com", "db.example.com"},
		{"trims whitespace", "  db.example.com  ", "db.example.com"},
		{"ignores empty string", "", "localhost"},
		{"ignores whitespace-only", "   ", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionEnums(t *testing.T) {
	tests := []struct {
		name  string
		opt   config.Option
		get   func(*config.Config) string
		value string
	}{
		{
			name:  "driver sqlite",
			opt:   config.OptDatabaseDriver("SQLite"),
			get:   func(c *config.Config) string { return c.Database.Driver },
			value: "sqlite",
		},
		{
			name:  "unknown driver keeps default",
			opt:   config.OptDatabaseDriver("oracle"),
			get:   func(c *config.Config) string { return c.Database.Driver },
			value: "postgres",
		},
		{
			name:  "ssl mode",
			opt:   config.OptDatabaseSSLMode(" require "),
			get:   func(c *config.Config) string { return c.Database.SSLMode },
			value: "require",
		},
		{
			name:  "import variant",
			opt:   config.OptImportVariant("V1"),
			get:   func(c *config.Config) string { return c.Import.Variant },
			value: "v1",
		},
		{
			name:  "unknown import variant keeps default",
			opt:   config.OptImportVariant("v3"),
			get:   func(c *config.Config) string { return c.Import.Variant },
			value: "v2",
		},
		{
			name:  "import driver",
			opt:   config.OptImportDriver("sqlite"),
			get:   func(c *config.Config) string { return c.Import.Driver },
			value: "sqlite",
		},
		{
			name:  "log level",
			opt:   config.OptLogLevel("DEBUG"),
			get:   func(c *config.Config) string { return c.Log.Level },
			value: "debug",
		},
		{
			name:  "bad log format keeps default",
			opt:   config.OptLogFormat("xml"),
			get:   func(c *config.Config) string { return c.Log.Format },
			value: "json",
		},
		{
			name:  "log destination",
			opt:   config.OptLogDestination("stderr"),
			get:   func(c *config.Config) string { return c.Log.Destination },
			value: "stderr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.value, tt.get(cfg))
		})
	}
}

func TestOptionInts(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabasePort(0),
		config.OptDatabaseMaxConnections(-1),
		config.OptStoreSearchLimit(25),
	})
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxConnections)
	assert.Equal(t, 25, cfg.Store.SearchLimit)
}

func TestOptionStoreFlags(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptStoreCascade(true),
		config.OptStoreTextSearch(false),
	})
	assert.True(t, cfg.Store.Cascade)
	assert.False(t, cfg.Store.TextSearch)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath("/data/pdb.sqlite"),
		config.OptDatabaseUser("pdb"),
		config.OptStoreCascade(true),
		config.OptStoreTextSearch(false),
		config.OptLogLevel("warn"),
		config.OptImportVariant("v1"),
		config.OptHomeDir("/home/pdb"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "sqlite", dst.Database.Driver)
	assert.Equal(t, "/data/pdb.sqlite", dst.Database.Path)
	assert.Equal(t, "pdb", dst.Database.User)
	assert.True(t, dst.Store.Cascade)
	assert.False(t, dst.Store.TextSearch)
	assert.Equal(t, "warn", dst.Log.Level)

	// runtime-only fields are not carried over
	assert.Equal(t, "v2", dst.Import.Variant)
	assert.Empty(t, dst.HomeDir)
}
