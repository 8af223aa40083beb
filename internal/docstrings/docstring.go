package docstrings

import (
	"strings"

	"lintcore/internal/source"
	"lintcore/internal/syntax"
)

// Quote prefixes, longest forms first inside each group.
var (
	TripleQuotePrefixes = []string{
		`u"""`, `u'''`, `r"""`, `r'''`, `U"""`, `U'''`, `R"""`, `R'''`, `"""`, `'''`,
	}
	SingleQuotePrefixes = []string{
		`u"`, `u'`, `r"`, `r'`, `U"`, `U'`, `R"`, `R'`, `"`, `'`,
	}
)

// Docstring is the decomposed literal of one definition.
//
//   - Contents is the literal as written, prefix and quotes included.
//   - Body is Contents without prefix and quotes.
//   - Indentation is the text on the literal's first row before it.
type Docstring struct {
	Definition  *Definition
	Expr        syntax.Expr
	Contents    string
	Body        string
	Indentation string
}

// Kind returns the owning definition's kind.
func (d *Docstring) Kind() DefinitionKind { return d.Definition.Kind }

// Extract builds the Docstring of def. It returns false when def has no
// docstring or the literal does not start with a recognised quote.
func Extract(loc *source.Locator, def *Definition) (*Docstring, bool) {
	if def == nil || def.Docstring == nil {
		return nil, false
	}
	expr := *def.Docstring
	contents := loc.Slice(expr.Range)
	body, ok := RawContents(contents)
	if !ok {
		return nil, false
	}
	start := expr.Range.Start
	indentation := loc.Slice(source.NewRange(source.NewLocation(start.Row, 0), start))
	return &Docstring{
		Definition:  def,
		Expr:        expr,
		Contents:    contents,
		Body:        body,
		Indentation: indentation,
	}, true
}

// LeadingQuote returns the prefix-plus-quote the literal opens with.
func LeadingQuote(contents string) (string, bool) {
	for _, p := range TripleQuotePrefixes {
		if strings.HasPrefix(contents, p) {
			return p, true
		}
	}
	for _, p := range SingleQuotePrefixes {
		if strings.HasPrefix(contents, p) {
			return p, true
		}
	}
	return "", false
}

// RawContents strips the opening prefix-plus-quote and the closing quote.
func RawContents(contents string) (string, bool) {
	for _, p := range TripleQuotePrefixes {
		if strings.HasPrefix(contents, p) && len(contents) >= len(p)+3 {
			return contents[len(p) : len(contents)-3], true
		}
	}
	for _, p := range SingleQuotePrefixes {
		if strings.HasPrefix(contents, p) && len(contents) >= len(p)+1 {
			return contents[len(p) : len(contents)-1], true
		}
	}
	return "", false
}

// LogicalLine returns the index of the last non-blank line of the first
// paragraph of body, the line a summary sentence ends on.
func LogicalLine(body string) (int, bool) {
	idx, found := 0, false
	for i, line := range source.Lines(body) {
		if source.IsBlank(line) {
			if found {
				break
			}
			continue
		}
		idx, found = i, true
	}
	return idx, found
}
