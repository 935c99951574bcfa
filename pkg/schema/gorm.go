package schema

import (
	"gorm.io/gorm"
)

// Canonical table names.
const (
	TableExpClasses     = "exp_classes"
	TableExpTypes       = "exp_types"
	TableCompTypes      = "comp_types"
	TableEntries        = "entries"
	TableAuthors        = "authors"
	TableAuthorHasEntry = "author_has_entry"
	TableSources        = "sources"
	TableEntryHasSource = "entry_has_source"
	TableSequences      = "sequences"
)

func (ExperimentClass) TableName() string { return TableExpClasses }
func (ExperimentType) TableName() string  { return TableExpTypes }
func (CompositionType) TableName() string { return TableCompTypes }
func (Entry) TableName() string           { return TableEntries }
func (Author) TableName() string          { return TableAuthors }
func (AuthorHasEntry) TableName() string  { return TableAuthorHasEntry }
func (Source) TableName() string          { return TableSources }
func (EntryHasSource) TableName() string  { return TableEntryHasSource }
func (Sequence) TableName() string        { return TableSequences }

// AllModels returns all schema models for GORM AutoMigrate.
// Referenced tables come before the tables referring to them.
func AllModels() []any {
	return []any{
		&ExperimentClass{},
		&ExperimentType{},
		&CompositionType{},
		&Entry{},
		&Author{},
		&AuthorHasEntry{},
		&Source{},
		&EntryHasSource{},
		&Sequence{},
	}
}

// Tables returns canonical table names in the order of AllModels.
func Tables() []string {
	return []string{
		TableExpClasses,
		TableExpTypes,
		TableCompTypes,
		TableEntries,
		TableAuthors,
		TableAuthorHasEntry,
		TableSources,
		TableEntryHasSource,
		TableSequences,
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
