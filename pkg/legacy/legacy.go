// Package legacy describes the layouts of historical PDB catalog dumps
// and how their tables and columns map onto the canonical schema.
//
// Two layouts are known. v1 is the MyISAM dump with latin1 text and
// singular table names, v2 the InnoDB dump with utf8mb4 text, plural
// table names, the corrected accessionDate column and a surrogate id
// on entry_has_source. Neither is authoritative, both are read into the
// canonical model.
package legacy

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/errcode"
	"gopkg.in/yaml.v3"
)

//go:embed variants.yaml
var variantsYAML []byte

// Variant is one legacy layout.
type Variant struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Charset     string  `yaml:"charset"`
	Tables      []Table `yaml:"tables"`
}

// Table maps a canonical table to its legacy counterpart.
type Table struct {
	Canonical string   `yaml:"table"`
	Legacy    string   `yaml:"legacy"`
	Columns   []Column `yaml:"columns"`
}

// Column maps a canonical column to its legacy name.
type Column struct {
	Canonical string `yaml:"canonical"`
	Legacy    string `yaml:"legacy"`
}

type variantsFile struct {
	Variants []Variant `yaml:"variants"`
}

// Variants returns all known layouts.
func Variants() ([]Variant, error) {
	return parse(variantsYAML)
}

func parse(data []byte) ([]Variant, error) {
	var f variantsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Variants, nil
}

// Names returns names of the known layouts.
func Names() []string {
	vs, _ := Variants()
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = v.Name
	}
	return res
}

// Get returns the layout with the given name.
func Get(name string) (Variant, error) {
	vs, err := Variants()
	if err != nil {
		return Variant{}, VariantError(name, err)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range vs {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, VariantError(name, fmt.Errorf("unknown variant"))
}

// IsLatin1 reports whether text columns of the layout are
// latin1-encoded.
func (v Variant) IsLatin1() bool {
	return v.Charset == "latin1"
}

// Table returns the mapping of a canonical table.
func (v Variant) Table(canonical string) (Table, bool) {
	for _, t := range v.Tables {
		if t.Canonical == canonical {
			return t, true
		}
	}
	return Table{}, false
}

// Column returns the legacy name of a canonical column, or an empty
// string if the layout does not have it.
func (t Table) Column(canonical string) string {
	for _, c := range t.Columns {
		if c.Canonical == canonical {
			return c.Legacy
		}
	}
	return ""
}

// SelectSQL returns a query that reads the legacy table with columns
// renamed to canonical names. The quote function adapts identifiers to
// the SQL dialect of the legacy database.
func (t Table) SelectSQL(quote func(string) string) string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quote(c.Legacy) + " AS " + c.Canonical
	}
	return "SELECT " + strings.Join(cols, ", ") +
		" FROM " + quote(t.Legacy)
}

// VariantError creates an error for an unknown or broken layout.
func VariantError(name string, err error) error {
	msg := "Unknown legacy layout <em>%s</em>, use one of: %s"

	return &gn.Error{
		Code: errcode.LegacyVariantError,
		Msg:  msg,
		Vars: []any{name, "v1, v2"},
		Err:  fmt.Errorf("legacy variant %q: %w", name, err),
	}
}
