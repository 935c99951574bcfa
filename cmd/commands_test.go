package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/internal/iostore"
	"github.com/pdbbrowser/pdbdb/internal/iotesting"
	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"github.com/pdbbrowser/pdbdb/pkg/lifecycle"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCatalog creates a SQLite catalog with one fully linked entry.
func seedCatalog(t *testing.T) *config.Config {
	t.Helper()
	ctx := context.Background()
	op, cfg := iotesting.NewSQLite(t)
	st, err := iostore.New(op, cfg.Store)
	require.NoError(t, err)

	classID, err := st.CreateExpClass(ctx, schema.ExperimentClass{Name: "X-RAY"})
	require.NoError(t, err)
	expID, err := st.CreateExpType(ctx, schema.ExperimentType{
		ClassID: &classID, Name: "X-RAY DIFFRACTION",
	})
	require.NoError(t, err)
	compID, err := st.CreateCompType(ctx, schema.CompositionType{Type: "prot"})
	require.NoError(t, err)
	res := 2.1

	_, err = st.CreateEntryBundle(ctx, catalog.EntryBundle{
		Entry: schema.Entry{
			Code: "1ABC", ExpTypeID: &expID, CompTypeID: &compID,
			Header: "TEST PROTEIN", Compound: "LYSOZYME", Resolution: &res,
		},
		Sequences: []schema.Sequence{
			{Chain: "A", Sequence: "MKVLA", Header: "mol:protein length:5"},
		},
		AuthorIDs: []int{mustAuthor(t, st, "Doe, J.")},
		SourceIDs: []int{mustSource(t, st, "HOMO SAPIENS")},
	})
	require.NoError(t, err)

	require.NoError(t, op.Close())
	return cfg
}

func mustAuthor(t *testing.T, st catalog.Store, name string) int {
	id, err := st.CreateAuthor(context.Background(), schema.Author{Name: name})
	require.NoError(t, err)
	return id
}

func mustSource(t *testing.T, st catalog.Store, name string) int {
	id, err := st.CreateSource(context.Background(), schema.Source{Name: name})
	require.NoError(t, err)
	return id
}

func TestRunShow(t *testing.T) {
	cfg := seedCatalog(t)
	ctx := context.Background()

	var buf bytes.Buffer
	err := runShow(ctx, cfg, "1ABC", false, &buf)
	require.NoError(t, err)

	var view struct {
		Code           string `json:"idCode"`
		ExperimentType struct {
			Name string `json:"expType"`
		} `json:"experimentType"`
		Sequences []schema.Sequence `json:"sequences"`
		Authors   []schema.Author   `json:"authors"`
		Sources   []schema.Source   `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "1ABC", view.Code)
	assert.Equal(t, "X-RAY DIFFRACTION", view.ExperimentType.Name)
	assert.Len(t, view.Sequences, 1)
	assert.Len(t, view.Authors, 1)
	assert.Len(t, view.Sources, 1)

	err = runShow(ctx, cfg, "1abc", true, &buf)
	assert.True(t, catalog.IsNotFound(err), "codes are case-sensitive")
}

func TestRunSearch(t *testing.T) {
	cfg := seedCatalog(t)
	ctx := context.Background()

	var buf bytes.Buffer
	err := runSearch(ctx, cfg, "compound", "lyso", 0, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1ABC")

	buf.Reset()
	err = runSearch(ctx, cfg, "author", "doe", 10, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Doe, J.")

	err = runSearch(ctx, cfg, "title", "doe", 10, &buf)
	assert.Error(t, err, "unknown field")

	cfg.Store.TextSearch = false
	err = runSearch(ctx, cfg, "author", "doe", 10, &buf)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.StoreSearchDisabledError, gnErr.Code)
}

func TestRunStats(t *testing.T) {
	cfg := seedCatalog(t)

	var buf bytes.Buffer
	err := runStats(context.Background(), cfg, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(schema.Tables()))
	for _, l := range lines {
		fields := strings.Fields(l)
		require.Len(t, fields, 2)
		assert.Equal(t, "1", fields[1], l)
	}
}

func TestRunMigrateAndCreate(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(filepath.Join(t.TempDir(), "new.sqlite")),
	})

	err := runMigrate(ctx, cfg)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)

	err = runStats(ctx, cfg, &bytes.Buffer{})
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)

	require.NoError(t, runCreate(ctx, cfg, false, strings.NewReader("")))
	require.NoError(t, runMigrate(ctx, cfg))

	// declined prompt keeps the schema
	require.NoError(t, runCreate(ctx, cfg, false, strings.NewReader("no\n")))
	require.NoError(t, runStats(ctx, cfg, &bytes.Buffer{}))

	require.NoError(t, runCreate(ctx, cfg, true, nil))
}

func TestConfirm(t *testing.T) {
	assert.True(t, confirm(strings.NewReader("yes\n")))
	assert.True(t, confirm(strings.NewReader("Y\n")))
	assert.True(t, confirm(strings.NewReader("y")))
	assert.False(t, confirm(strings.NewReader("no\n")))
	assert.False(t, confirm(strings.NewReader("")))
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, lifecycle.ImportReport{
		Variant: "v1",
		Tables: []lifecycle.TableReport{
			{Table: "entries", Read: 1250, Written: 1200, Skipped: 50},
		},
	})
	out := buf.String()
	assert.Contains(t, out, "entries")
	assert.Contains(t, out, "1,200")
}
