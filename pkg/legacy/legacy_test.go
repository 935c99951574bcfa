package legacy_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"github.com/pdbbrowser/pdbdb/pkg/legacy"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"v1", "v2"}, legacy.Names())
}

// TestVariantsCoverSchema checks that every layout maps every
// canonical table in load order.
func TestVariantsCoverSchema(t *testing.T) {
	vs, err := legacy.Variants()
	require.NoError(t, err)
	require.Len(t, vs, 2)

	want := []string{
		schema.TableExpClasses,
		schema.TableExpTypes,
		schema.TableCompTypes,
		schema.TableAuthors,
		schema.TableSources,
		schema.TableEntries,
		schema.TableSequences,
		schema.TableAuthorHasEntry,
		schema.TableEntryHasSource,
	}
	for _, v := range vs {
		var got []string
		for _, tbl := range v.Tables {
			got = append(got, tbl.Canonical)
			assert.NotEmpty(t, tbl.Legacy, v.Name)
			assert.NotEmpty(t, tbl.Columns, v.Name)
		}
		assert.Equal(t, want, got, v.Name)
		assert.ElementsMatch(t, schema.Tables(), got, v.Name)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name, entries, accession, compTypes string
		latin1                              bool
	}{
		{"v1", "entry", "ascessionDate", "comptype", true},
		{" V2 ", "entries", "accessionDate", "compTypes", false},
	}

	for _, tt := range tests {
		v, err := legacy.Get(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.latin1, v.IsLatin1())

		tbl, ok := v.Table(schema.TableEntries)
		require.True(t, ok)
		assert.Equal(t, tt.entries, tbl.Legacy)
		assert.Equal(t, tt.accession, tbl.Column("accession_date"))

		tbl, ok = v.Table(schema.TableCompTypes)
		require.True(t, ok)
		assert.Equal(t, tt.compTypes, tbl.Legacy)
	}
}

func TestSurrogateSourceLinkID(t *testing.T) {
	v1, err := legacy.Get("v1")
	require.NoError(t, err)
	tbl, _ := v1.Table(schema.TableEntryHasSource)
	assert.Empty(t, tbl.Column("id"))

	v2, err := legacy.Get("v2")
	require.NoError(t, err)
	tbl, _ = v2.Table(schema.TableEntryHasSource)
	assert.Equal(t, "id", tbl.Column("id"))
}

func TestGet_Unknown(t *testing.T) {
	_, err := legacy.Get("v3")
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.LegacyVariantError, gnErr.Code)
}

func TestSelectSQL(t *testing.T) {
	v, err := legacy.Get("v1")
	require.NoError(t, err)
	tbl, _ := v.Table(schema.TableAuthors)

	backtick := func(s string) string { return "`" + s + "`" }
	assert.Equal(t,
		"SELECT `idAuthor` AS id_author, `author` AS name FROM `author`",
		tbl.SelectSQL(backtick),
	)
}
