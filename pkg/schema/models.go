// Package schema provides the canonical database models of the PDB
// catalog. Table and column names are the canonical ones; legacy dump
// layouts are mapped onto them by the legacy package.
package schema

// ExperimentClass is the top of the experiment taxonomy
// (e.g. "X-RAY", "NMR", "EM").
type ExperimentClass struct {
	// ID is a surrogate identifier.
	ID int `gorm:"column:id_exp_classe;primaryKey;autoIncrement" json:"idExpClasse"`

	// Name is a short class name.
	Name string `gorm:"column:name;type:varchar(20)" json:"expClasse"`
}

// ExperimentType is an experimental method used to determine an entry.
type ExperimentType struct {
	// ID is a surrogate identifier.
	ID int `gorm:"column:id_exp_type;primaryKey;autoIncrement" json:"idExpType"`

	// ClassID refers to ExperimentClass, can be empty.
	ClassID *int `gorm:"column:id_exp_classe;index" json:"idExpClasse,omitempty"`

	// Name is a descriptive name of the method.
	Name string `gorm:"column:name;type:varchar(255)" json:"expType"`

	Class *ExperimentClass `gorm:"foreignKey:ClassID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// CompositionType classifies the macromolecule composition of an entry
// (protein, DNA, RNA, mixtures).
type CompositionType struct {
	// ID is a surrogate identifier.
	ID int `gorm:"column:id_comp_type;primaryKey;autoIncrement" json:"idCompType"`

	// Type is a short composition code.
	Type string `gorm:"column:type;type:varchar(10)" json:"type"`
}

// Entry is a cataloged structure identified by a four-character code.
type Entry struct {
	// Code is the four-character entry code. It is an opaque
	// case-sensitive string.
	Code string `gorm:"column:id_code;primaryKey;type:varchar(4)" json:"idCode"`

	// ExpTypeID refers to ExperimentType, can be empty.
	ExpTypeID *int `gorm:"column:id_exp_type;index" json:"idExpType,omitempty"`

	// CompTypeID refers to CompositionType, can be empty.
	CompTypeID *int `gorm:"column:id_comp_type;index" json:"idCompType,omitempty"`

	// Header is a free-text classification header.
	Header string `gorm:"column:header;type:varchar(255)" json:"header"`

	// AccessionDate is kept verbatim as in the source index.
	AccessionDate string `gorm:"column:accession_date;type:varchar(20)" json:"accessionDate"`

	// Compound describes the deposited molecules.
	Compound string `gorm:"column:compound;type:varchar(255)" json:"compound"`

	// Resolution in Å, empty for methods without resolution.
	Resolution *float64 `gorm:"column:resolution" json:"resolution,omitempty"`

	ExpType  *ExperimentType  `gorm:"foreignKey:ExpTypeID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	CompType *CompositionType `gorm:"foreignKey:CompTypeID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// Author is a person or consortium credited for entries.
type Author struct {
	ID   int    `gorm:"column:id_author;primaryKey;autoIncrement" json:"idAuthor"`
	Name string `gorm:"column:name;type:varchar(255)" json:"author"`
}

// AuthorHasEntry links authors to entries.
type AuthorHasEntry struct {
	AuthorID int    `gorm:"column:id_author;primaryKey;autoIncrement:false" json:"idAuthor"`
	Code     string `gorm:"column:id_code;primaryKey;type:varchar(4);index" json:"idCode"`

	Author *Author `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Entry  *Entry  `gorm:"foreignKey:Code;references:Code;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// Source is an organism or other origin attributed to entries.
type Source struct {
	ID   int    `gorm:"column:id_source;primaryKey;autoIncrement" json:"idSource"`
	Name string `gorm:"column:name;type:varchar(255)" json:"source"`
}

// EntryHasSource links entries to sources. The pair (Code, SourceID)
// is not unique: production data carries repeated pairs, so rows are
// identified by a surrogate ID.
type EntryHasSource struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code     string `gorm:"column:id_code;type:varchar(4);not null;index:idx_entry_source_pair" json:"idCode"`
	SourceID int    `gorm:"column:id_source;not null;index:idx_entry_source_pair;index" json:"idSource"`

	Entry  *Entry  `gorm:"foreignKey:Code;references:Code;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Source *Source `gorm:"foreignKey:SourceID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// Sequence is the residue sequence of one chain of an entry.
type Sequence struct {
	Code     string `gorm:"column:id_code;primaryKey;type:varchar(4)" json:"idCode"`
	Chain    string `gorm:"column:chain;primaryKey;type:varchar(5)" json:"chain"`
	Sequence string `gorm:"column:sequence;type:text" json:"sequence"`
	Header   string `gorm:"column:header;type:text" json:"header"`

	Entry *Entry `gorm:"foreignKey:Code;references:Code;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// Column size limits inherited from the original schema.
const (
	CodeLen          = 4
	ChainLen         = 5
	CompTypeLen      = 10
	ExpClassLen      = 20
	AccessionDateLen = 20
	TextLen          = 255
)
