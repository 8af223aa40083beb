package diag

import (
	"lintcore/internal/rules"
	"lintcore/internal/source"
)

// FixOp is the shape of a text edit.
type FixOp uint8

const (
	FixInsertion FixOp = iota
	FixDeletion
	FixReplacement
)

func (op FixOp) String() string {
	switch op {
	case FixInsertion:
		return "insertion"
	case FixDeletion:
		return "deletion"
	case FixReplacement:
		return "replacement"
	}
	return "unknown"
}

// Fix is one text edit in the coordinates of the unmodified file.
// Insertions have Location == EndLocation; deletions have empty Content.
type Fix struct {
	Op          FixOp
	Content     string
	Location    source.Location
	EndLocation source.Location
}

// Range returns the span the fix replaces.
func (f Fix) Range() source.Range {
	return source.Range{Start: f.Location, End: f.EndLocation}
}

// Diagnostic is one finding: what (Kind), where (Range), an optional edit
// and an optional parent range naming the construct it belongs to.
type Diagnostic struct {
	Kind   rules.Kind
	Range  source.Range
	Fix    *Fix
	Parent *source.Range
}

// New constructs a diagnostic without fix or parent.
func New(kind rules.Kind, rng source.Range) *Diagnostic {
	return &Diagnostic{Kind: kind, Range: rng}
}

// Amend attaches fix, replacing any previous one.
func (d *Diagnostic) Amend(fix Fix) *Diagnostic {
	d.Fix = &fix
	return d
}

// WithParent records the enclosing construct's range.
func (d *Diagnostic) WithParent(rng source.Range) *Diagnostic {
	d.Parent = &rng
	return d
}

// Rule returns the rule that produced d.
func (d *Diagnostic) Rule() rules.Rule { return d.Kind.Rule() }

// Message renders the kind's message.
func (d *Diagnostic) Message() string { return d.Kind.Message() }

// FixTitle returns the commit message for the attached fix, or "" when d has none.
func (d *Diagnostic) FixTitle() string {
	if d.Fix == nil {
		return ""
	}
	title, _ := rules.Commit(d.Kind)
	return title
}
