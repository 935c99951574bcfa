package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	return gnErr.Code
}

func TestEnsureHome(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, EnsureHome(home))
	require.NoError(t, EnsureHome(home), "second call is a no-op")

	for _, dir := range []string{
		config.ConfigDir(home),
		config.DataDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestEnsureHome_Blocked(t *testing.T) {
	home := t.TempDir()
	// a file where the config directory should go
	blocker := filepath.Join(home, ".config")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := EnsureHome(home)
	assert.Equal(t, errcode.FSCreateDirError, errCode(t, err))
}

func TestEnsureDatabaseDir(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		path    string
		wantDir func(home string) string
	}{
		{"default sqlite file", "sqlite", "",
			func(home string) string { return config.DataDir(home) }},
		{"custom sqlite file", "sqlite", "catalogs/pdb/main.sqlite",
			func(home string) string { return filepath.Join(home, "catalogs", "pdb") }},
		{"postgres", "postgres", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			cfg := config.New()
			cfg.HomeDir = home
			cfg.Database.Driver = tt.driver
			if tt.path != "" {
				cfg.Database.Path = filepath.Join(home, tt.path)
			}

			require.NoError(t, EnsureDatabaseDir(cfg))

			if tt.wantDir == nil {
				entries, err := os.ReadDir(home)
				require.NoError(t, err)
				assert.Empty(t, entries, "nothing is created for postgres")
				return
			}
			info, err := os.Stat(tt.wantDir(home))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, EnsureHome(home))
	path := config.ConfigFilePath(home)

	created, err := EnsureConfigFile(home)
	require.NoError(t, err)
	assert.True(t, created)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))

	custom := "database:\n  driver: sqlite\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
	created, err = EnsureConfigFile(home)
	require.NoError(t, err)
	assert.False(t, created, "user config is kept")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))

	require.NoError(t, os.WriteFile(path, nil, 0644))
	created, err = EnsureConfigFile(home)
	require.NoError(t, err)
	assert.True(t, created, "empty config is replaced")
}

func TestEnsureConfigFile_Directory(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(config.ConfigFilePath(home), 0755))

	_, err := EnsureConfigFile(home)
	assert.Equal(t, errcode.FSConfigWriteError, errCode(t, err))
}

func TestEnsureConfigFile_NoConfigDir(t *testing.T) {
	_, err := EnsureConfigFile(t.TempDir())
	assert.Equal(t, errcode.FSConfigWriteError, errCode(t, err))
}

// TestConfigYAML_MatchesDefaults checks that the embedded file
// carries the same values as config.New().
func TestConfigYAML_MatchesDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	def := config.New()
	assert.Equal(t, def.Database, cfg.Database)
	assert.Equal(t, def.Store, cfg.Store)
	assert.Equal(t, def.Log, cfg.Log)
}
