package catalog_test

import (
	"strings"
	"testing"

	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		msg   string
		entry schema.Entry
		ok    bool
	}{
		{"valid", schema.Entry{Code: "1ABC", Header: "TEST PROTEIN"}, true},
		{"short code", schema.Entry{Code: "1A"}, true},
		{"empty code", schema.Entry{Header: "X"}, false},
		{"long code", schema.Entry{Code: "1ABCD"}, false},
		{"long header", schema.Entry{Code: "1ABC", Header: strings.Repeat("h", 256)}, false},
		{"long date", schema.Entry{Code: "1ABC", AccessionDate: strings.Repeat("1", 21)}, false},
		{"unicode compound", schema.Entry{Code: "1ABC", Compound: strings.Repeat("Å", 255)}, true},
	}

	for _, tt := range tests {
		err := catalog.ValidateEntry(tt.entry)
		if tt.ok {
			assert.NoError(t, err, tt.msg)
			continue
		}
		assert.True(t, catalog.IsConstraintViolation(err), tt.msg)
	}
}

func TestValidateSequence(t *testing.T) {
	assert.NoError(t, catalog.ValidateSequence(schema.Sequence{Code: "1ABC", Chain: "A"}))
	assert.Error(t, catalog.ValidateSequence(schema.Sequence{Code: "1ABC"}))
	assert.Error(t, catalog.ValidateSequence(schema.Sequence{Code: "1ABC", Chain: "ABCDEF"}))
}

func TestValidateLookups(t *testing.T) {
	assert.NoError(t, catalog.ValidateCompType(schema.CompositionType{Type: "prot-nuc"}))
	assert.Error(t, catalog.ValidateCompType(schema.CompositionType{Type: "protein-nucleic"}))
	assert.NoError(t, catalog.ValidateExpClass(schema.ExperimentClass{Name: "X-RAY"}))
	assert.Error(t, catalog.ValidateExpClass(schema.ExperimentClass{Name: strings.Repeat("x", 21)}))
	assert.Error(t, catalog.ValidateAuthor(schema.Author{Name: strings.Repeat("a", 256)}))
	assert.Error(t, catalog.ValidateSource(schema.Source{Name: strings.Repeat("s", 256)}))
	assert.Error(t, catalog.ValidateExpType(schema.ExperimentType{Name: strings.Repeat("t", 256)}))
}
