package iologger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_File(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()

	err := Init(dir, config.LogConfig{
		Format: "json", Level: "info", Destination: "file",
	})
	require.NoError(t, err)

	slog.Info("hello", "entry", "1ABC")
	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entry":"1ABC"`)
}

func TestInit_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")
	err := Init(dir, config.LogConfig{Destination: "file"})
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		format, level string
		debug         bool
		contains      string
	}{
		{"json", "debug", true, `"msg":"probe"`},
		{"text", "info", false, "msg=probe"},
		{"tint", "warn", false, "probe"},
		{"", "", false, `"msg":"probe"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			h := handler(&buf, config.LogConfig{Format: tt.format, Level: tt.level})
			log := slog.New(h)

			log.Debug("debug-line")
			log.Warn("probe")
			assert.Contains(t, buf.String(), tt.contains)
			assert.Equal(t, tt.debug, bytes.Contains(buf.Bytes(), []byte("debug-line")))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
