package pydocstyle

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"lintcore/internal/checker"
	"lintcore/internal/docstrings"
	"lintcore/internal/fix"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

// NewlineAfterLastParagraph reports closing quotes of a multi-line
// docstring that share a line with text (D209).
func NewlineAfterLastParagraph(c *checker.Checker, doc *docstrings.Docstring) {
	nonEmpty := 0
	for _, line := range source.LinesWithTrailingNewline(doc.Body) {
		if !source.IsBlank(line) {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return
	}
	contentLines := source.Lines(doc.Contents)
	if len(contentLines) == 0 {
		return
	}
	lastLine := strings.TrimSpace(contentLines[len(contentLines)-1])
	if lastLine == `"""` || lastLine == `'''` {
		return
	}

	d := onDocstring(doc, violations.NewLineAfterLastParagraph{})
	if c.Patch(rules.NewLineAfterLastParagraph) {
		const quotes = 3
		runes := []rune(lastLine)
		spaces := 0
		for i := len(runes) - 1 - quotes; i >= 0 && unicode.IsSpace(runes[i]); i-- {
			spaces++
		}
		end := doc.Expr.Range.End
		d.Amend(fix.Replacement(
			"\n"+source.Clean(doc.Indentation),
			source.NewLocation(end.Row, end.Column-spaces-quotes),
			source.NewLocation(end.Row, end.Column-quotes),
		))
	}
	c.Report(d)
}

// NoSurroundingWhitespace reports whitespace just inside the opening
// quotes or at the end of the first line (D210).
func NoSurroundingWhitespace(c *checker.Checker, doc *docstrings.Docstring) {
	lines := source.LinesWithTrailingNewline(doc.Body)
	if len(lines) == 0 {
		return
	}
	line := lines[0]
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed == line {
		return
	}

	d := onDocstring(doc, violations.NoSurroundingWhitespace{})
	if c.Patch(rules.NoSurroundingWhitespace) {
		if pattern, ok := docstrings.LeadingQuote(doc.Contents); ok {
			quote := pattern[len(pattern)-1:]
			// """ a" """ после обрезки стал бы """a""""
			if !strings.HasSuffix(trimmed, quote) {
				start := doc.Expr.Range.Start
				col := start.Column + len(pattern)
				d.Amend(fix.Replacement(trimmed,
					source.NewLocation(start.Row, col),
					source.NewLocation(start.Row, col+source.RuneLen(line)),
				))
			}
		}
	}
	c.Report(d)
}

// MultiLineSummaryStart reports where a multi-line summary starts:
// D212 when it is on the line after the quotes, D213 when it shares the
// quote line.
func MultiLineSummaryStart(c *checker.Checker, doc *docstrings.Docstring) {
	if len(source.LinesWithTrailingNewline(doc.Body)) < 2 {
		return
	}
	contentLines := source.Lines(doc.Contents)
	if len(contentLines) == 0 {
		return
	}
	if slices.Contains(docstrings.TripleQuotePrefixes, contentLines[0]) {
		if c.Enabled(rules.MultiLineSummaryFirstLine) {
			c.Report(onDocstring(doc, violations.MultiLineSummaryFirstLine{}))
		}
		return
	}
	if c.Enabled(rules.MultiLineSummarySecondLine) {
		c.Report(onDocstring(doc, violations.MultiLineSummarySecondLine{}))
	}
}

// TripleQuotes reports docstrings not using triple quotes (D300). Single
// quotes are expected only when the body itself contains """.
func TripleQuotes(c *checker.Checker, doc *docstrings.Docstring) {
	contentLines := source.Lines(doc.Contents)
	if len(contentLines) == 0 {
		return
	}
	first := strings.ToLower(contentLines[0])
	want := `"""`
	if strings.Contains(doc.Body, `"""`) {
		want = `'''`
	}
	for _, prefix := range []string{"", "u", "r", "ur"} {
		if strings.HasPrefix(first, prefix+want) {
			return
		}
	}
	c.Report(onDocstring(doc, violations.UsesTripleQuotes{}))
}

// \n, \u and \N are fine in a non-raw docstring.
var backslash = regexp.MustCompile(`\\[^\nuN]`)

// Backslashes reports a backslash escape in a non-raw docstring (D301).
func Backslashes(c *checker.Checker, doc *docstrings.Docstring) {
	if strings.HasPrefix(doc.Contents, "r") || strings.HasPrefix(doc.Contents, "ur") {
		return
	}
	if backslash.MatchString(doc.Contents) {
		c.Report(onDocstring(doc, violations.UsesRPrefixForBackslashedContent{}))
	}
}
