package catalog

import "github.com/pdbbrowser/pdbdb/pkg/schema"

// Nullable describes an update of a nullable column. When Set is
// false the column stays unchanged; when Set is true the column takes
// Value, and a nil Value clears it.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Value returns a Nullable that sets the column to v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a Nullable that clears the column.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// FromPtr returns a Nullable that sets the column to the value behind
// p, or clears it when p is nil.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Value(*p)
}

func (n Nullable[T]) apply(dst **T) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}

func applyStr(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

// EntryPatch is a partial update of an Entry. Nil fields stay unchanged.
type EntryPatch struct {
	ExpTypeID     Nullable[int]
	CompTypeID    Nullable[int]
	Header        *string
	AccessionDate *string
	Compound      *string
	Resolution    Nullable[float64]
}

// EntryPatchFrom returns a patch that sets every non-key field of e.
func EntryPatchFrom(e schema.Entry) EntryPatch {
	return EntryPatch{
		ExpTypeID:     FromPtr(e.ExpTypeID),
		CompTypeID:    FromPtr(e.CompTypeID),
		Header:        &e.Header,
		AccessionDate: &e.AccessionDate,
		Compound:      &e.Compound,
		Resolution:    FromPtr(e.Resolution),
	}
}

// Apply changes e according to the patch.
func (p EntryPatch) Apply(e *schema.Entry) {
	p.ExpTypeID.apply(&e.ExpTypeID)
	p.CompTypeID.apply(&e.CompTypeID)
	applyStr(p.Header, &e.Header)
	applyStr(p.AccessionDate, &e.AccessionDate)
	applyStr(p.Compound, &e.Compound)
	p.Resolution.apply(&e.Resolution)
}

// AuthorPatch is a partial update of an Author.
type AuthorPatch struct {
	Name *string
}

// Apply changes a according to the patch.
func (p AuthorPatch) Apply(a *schema.Author) {
	applyStr(p.Name, &a.Name)
}

// SourcePatch is a partial update of a Source.
type SourcePatch struct {
	Name *string
}

// Apply changes s according to the patch.
func (p SourcePatch) Apply(s *schema.Source) {
	applyStr(p.Name, &s.Name)
}

// CompTypePatch is a partial update of a CompositionType.
type CompTypePatch struct {
	Type *string
}

// Apply changes ct according to the patch.
func (p CompTypePatch) Apply(ct *schema.CompositionType) {
	applyStr(p.Type, &ct.Type)
}

// ExpClassPatch is a partial update of an ExperimentClass.
type ExpClassPatch struct {
	Name *string
}

// Apply changes c according to the patch.
func (p ExpClassPatch) Apply(c *schema.ExperimentClass) {
	applyStr(p.Name, &c.Name)
}

// ExpTypePatch is a partial update of an ExperimentType.
type ExpTypePatch struct {
	ClassID Nullable[int]
	Name    *string
}

// Apply changes et according to the patch.
func (p ExpTypePatch) Apply(et *schema.ExperimentType) {
	p.ClassID.apply(&et.ClassID)
	applyStr(p.Name, &et.Name)
}

// SequencePatch is a partial update of a Sequence.
type SequencePatch struct {
	Sequence *string
	Header   *string
}

// Apply changes s according to the patch.
func (p SequencePatch) Apply(s *schema.Sequence) {
	applyStr(p.Sequence, &s.Sequence)
	applyStr(p.Header, &s.Header)
}

// EntrySourcePatch moves an entry-source link to another entry or
// source. The link keeps its surrogate ID.
type EntrySourcePatch struct {
	Code     *string
	SourceID *int
}

// Apply changes es according to the patch.
func (p EntrySourcePatch) Apply(es *schema.EntryHasSource) {
	applyStr(p.Code, &es.Code)
	if p.SourceID != nil {
		es.SourceID = *p.SourceID
	}
}
