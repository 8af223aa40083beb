// Package pydocstyle checks docstrings against the D1xx-D4xx rules.
//
// Check is the entry point used by the driver: it runs the presence
// check for a definition without a docstring, and otherwise every enabled
// content check in a fixed order. Each exported check can also be called
// on its own; all of them report through the Checker and return nothing
// except where noted.
//
// A check that panics is recovered, traced at error level and skipped;
// the remaining checks of the definition still run.
package pydocstyle

import (
	"fmt"

	"lintcore/internal/checker"
	"lintcore/internal/diag"
	"lintcore/internal/docstrings"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/trace"
)

// Check runs the docstring rules for one definition.
func Check(c *checker.Checker, def *docstrings.Definition) {
	span := trace.Begin(c.Tracer(), trace.ScopeDefinition, "def:"+defName(def), 0)
	defer span.End("")

	if def.Docstring == nil {
		guard(c, "not_missing", func() { NotMissing(c, def) })
		return
	}
	doc, ok := docstrings.Extract(c.Locator, def)
	if !ok {
		trace.Point(c.Tracer(), trace.ScopeDefinition, "docstring.unrecognized", defName(def))
		return
	}

	empty := false
	guard(c, "not_empty", func() { empty = !NotEmpty(c, doc) })
	if empty {
		return
	}

	for _, step := range steps {
		if !anyEnabled(c, step.rules) {
			continue
		}
		guard(c, step.name, func() { step.run(c, doc) })
	}
}

type step struct {
	name  string
	rules []rules.Rule
	run   func(c *checker.Checker, doc *docstrings.Docstring)
}

var steps = []step{
	{"one_liner", []rules.Rule{rules.FitsOnOneLine}, OneLiner},
	{"blank_before_after_function", []rules.Rule{rules.NoBlankLineBeforeFunction, rules.NoBlankLineAfterFunction}, BlankBeforeAfterFunction},
	{"blank_before_after_class", []rules.Rule{rules.OneBlankLineBeforeClass, rules.OneBlankLineAfterClass, rules.NoBlankLineBeforeClass}, BlankBeforeAfterClass},
	{"blank_after_summary", []rules.Rule{rules.BlankLineAfterSummary}, BlankAfterSummary},
	{"indent", []rules.Rule{rules.IndentWithSpaces, rules.NoUnderIndentation, rules.NoOverIndentation}, Indent},
	{"newline_after_last_paragraph", []rules.Rule{rules.NewLineAfterLastParagraph}, NewlineAfterLastParagraph},
	{"no_surrounding_whitespace", []rules.Rule{rules.NoSurroundingWhitespace}, NoSurroundingWhitespace},
	{"multi_line_summary_start", []rules.Rule{rules.MultiLineSummaryFirstLine, rules.MultiLineSummarySecondLine}, MultiLineSummaryStart},
	{"triple_quotes", []rules.Rule{rules.UsesTripleQuotes}, TripleQuotes},
	{"backslashes", []rules.Rule{rules.UsesRPrefixForBackslashedContent}, Backslashes},
	{"ends_with_period", []rules.Rule{rules.EndsInPeriod}, EndsWithPeriod},
	{"non_imperative_mood", []rules.Rule{rules.NonImperativeMood}, func(c *checker.Checker, doc *docstrings.Docstring) {
		NonImperativeMood(c, doc, c.Settings.PropertyDecorators)
	}},
	{"no_signature", []rules.Rule{rules.NoSignature}, NoSignature},
	{"capitalized", []rules.Rule{rules.FirstLineCapitalized}, Capitalized},
	{"starts_with_this", []rules.Rule{rules.NoThisPrefix}, StartsWithThis},
	{"ends_with_punctuation", []rules.Rule{rules.EndsInPunctuation}, EndsWithPunctuation},
	{"if_needed", []rules.Rule{rules.SkipDocstring}, IfNeeded},
	{"sections", sectionRules, func(c *checker.Checker, doc *docstrings.Docstring) {
		Sections(c, doc, c.Settings.Convention)
	}},
}

var sectionRules = []rules.Rule{
	rules.SectionNotOverIndented,
	rules.SectionUnderlineNotOverIndented,
	rules.CapitalizeSectionName,
	rules.NewLineAfterSectionName,
	rules.DashedUnderlineAfterSection,
	rules.SectionUnderlineAfterName,
	rules.SectionUnderlineMatchesSectionLength,
	rules.BlankLineAfterSection,
	rules.BlankLineBeforeSection,
	rules.NoBlankLinesBetweenHeaderAndContent,
	rules.BlankLineAfterLastSection,
	rules.NonEmptySection,
	rules.SectionNameEndsInColon,
	rules.DocumentAllArguments,
}

func anyEnabled(c *checker.Checker, list []rules.Rule) bool {
	for _, r := range list {
		if c.Enabled(r) {
			return true
		}
	}
	return false
}

// guard runs one check; a panic is traced and swallowed.
func guard(c *checker.Checker, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			trace.Error(c.Tracer(), trace.ScopeCheck, "pydocstyle."+name, fmt.Sprintf("%s: %v", c.Path(), r))
		}
	}()
	fn()
}

func defName(def *docstrings.Definition) string {
	if def.Qualname != "" {
		return def.Qualname
	}
	return def.Kind.String()
}

// onDocstring builds a diagnostic over the whole docstring literal.
func onDocstring(doc *docstrings.Docstring, kind rules.Kind) *diag.Diagnostic {
	return diag.New(kind, doc.Expr.Range)
}

// at is a shorthand for row/column pairs relative to the docstring start.
func at(doc *docstrings.Docstring, rowOffset, col int) source.Location {
	return source.NewLocation(doc.Expr.Range.Start.Row+rowOffset, col)
}
