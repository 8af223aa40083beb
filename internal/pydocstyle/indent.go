package pydocstyle

import (
	"strings"

	"lintcore/internal/checker"
	"lintcore/internal/diag"
	"lintcore/internal/docstrings"
	"lintcore/internal/fix"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

// Indent reports tab indentation (D206), under-indented lines (D207) and
// over-indented lines (D208).
//
// Over-indentation is decided in two passes: the scan only records which
// lines are indented past the docstring, and the lines are reported when
// every line but the last is over-indented. The closing-quote line is
// judged on its own.
func Indent(c *checker.Checker, doc *docstrings.Docstring) {
	lines := source.LinesWithTrailingNewline(doc.Body)
	if len(lines) <= 1 {
		return
	}
	want := source.RuneLen(doc.Indentation)
	last := len(lines) - 1

	hasTab := strings.ContainsRune(doc.Indentation, '\t')
	allOver := true
	var overLines []int

	for i := 1; i < len(lines); i++ {
		if strings.HasSuffix(lines[i-1], `\`) {
			continue
		}
		blank := source.IsBlank(lines[i])
		if i < last && blank {
			continue
		}
		indent := source.LeadingSpace(lines[i])
		hasTab = hasTab || strings.ContainsRune(indent, '\t')

		if c.Enabled(rules.NoUnderIndentation) && source.RuneLen(indent) < want {
			c.Report(reindent(c, doc, rules.NoUnderIndentation, violations.NoUnderIndentation{}, i, indent))
		}

		if i < last {
			if source.RuneLen(indent) > want {
				overLines = append(overLines, i)
			} else {
				allOver = false
			}
		}
	}

	if c.Enabled(rules.IndentWithSpaces) && hasTab {
		c.Report(onDocstring(doc, violations.IndentWithSpaces{}))
	}

	if !c.Enabled(rules.NoOverIndentation) {
		return
	}
	if allOver {
		for _, i := range overLines {
			indent := source.LeadingSpace(lines[i])
			c.Report(reindent(c, doc, rules.NoOverIndentation, violations.NoOverIndentation{}, i, indent))
		}
	}
	if indent := source.LeadingSpace(lines[last]); source.RuneLen(indent) > want {
		c.Report(reindent(c, doc, rules.NoOverIndentation, violations.NoOverIndentation{}, last, indent))
	}
}

// reindent builds a line-start diagnostic whose fix resets the line's
// indentation to the docstring's own.
func reindent(c *checker.Checker, doc *docstrings.Docstring, rule rules.Rule, kind rules.Kind, i int, indent string) *diag.Diagnostic {
	d := diag.New(kind, source.PointRange(at(doc, i, 0)))
	if c.Patch(rule) {
		d.Amend(fix.Replacement(source.Clean(doc.Indentation), at(doc, i, 0), at(doc, i, source.RuneLen(indent))))
	}
	return d
}
