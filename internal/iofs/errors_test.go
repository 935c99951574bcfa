package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		vars []any
	}{
		{"create dir", CreateDirError("log", "/x/logs", cause),
			errcode.FSCreateDirError, []any{"log", "/x/logs"}},
		{"write config", ConfigWriteError("/x/config.yaml", cause),
			errcode.FSConfigWriteError, []any{"/x/config.yaml"}},
		{"read config", ConfigReadError("/x/config.yaml", cause),
			errcode.FSConfigReadError, []any{"/x/config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gnErr *gn.Error
			require.ErrorAs(t, tt.err, &gnErr)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Equal(t, tt.vars, gnErr.Vars)
			assert.Contains(t, gnErr.Msg, "<em>")
			assert.ErrorIs(t, gnErr.Err, cause)
		})
	}
}
