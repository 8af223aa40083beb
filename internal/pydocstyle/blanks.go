package pydocstyle

import (
	"regexp"
	"strings"

	"lintcore/internal/checker"
	"lintcore/internal/docstrings"
	"lintcore/internal/fix"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

var (
	commentLine = regexp.MustCompile(`^\s*#`)
	// один пустой отступ перед вложенным def/class допустим
	innerFunctionOrClass = regexp.MustCompile(`^\s+(?:(?:class|def|async def)\s|@)`)
)

// OneLiner reports a single line of text spread over several lines (D200).
func OneLiner(c *checker.Checker, doc *docstrings.Docstring) {
	lines, nonEmpty := 0, 0
	for _, line := range source.LinesWithTrailingNewline(doc.Body) {
		lines++
		if !source.IsBlank(line) {
			nonEmpty++
		}
		if nonEmpty > 1 {
			break
		}
	}
	if nonEmpty == 1 && lines > 1 {
		c.Report(onDocstring(doc, violations.FitsOnOneLine{}))
	}
}

// blankLinesBefore counts blank lines between the definition header and
// the docstring.
func blankLinesBefore(before string) int {
	lines := source.Lines(before)
	n := 0
	// последняя строка это отступ самого docstring
	for i := len(lines) - 2; i >= 0 && source.IsBlank(lines[i]); i-- {
		n++
	}
	return n
}

// blankLinesAfter counts blank lines after the docstring. ok is false when
// nothing but blanks and comments follow.
func blankLinesAfter(after string) (n int, ok bool) {
	lines := source.Lines(after)
	if len(lines) > 0 {
		lines = lines[1:]
	}
	onlyTrivia := true
	for _, line := range lines {
		if !source.IsBlank(line) && !commentLine.MatchString(line) {
			onlyTrivia = false
			break
		}
	}
	if onlyTrivia {
		return 0, false
	}
	for _, line := range lines {
		if !source.IsBlank(line) {
			break
		}
		n++
	}
	return n, true
}

// BlankBeforeAfterFunction reports blank lines around a function
// docstring (D201, D202).
func BlankBeforeAfterFunction(c *checker.Checker, doc *docstrings.Docstring) {
	stmt, ok := functionStmt(doc)
	if !ok {
		return
	}
	before, _, after := c.Locator.Partition(stmt.Range, doc.Expr.Range)
	start, end := doc.Expr.Range.Start, doc.Expr.Range.End

	if c.Enabled(rules.NoBlankLineBeforeFunction) {
		if n := blankLinesBefore(before); n != 0 {
			d := onDocstring(doc, violations.NoBlankLineBeforeFunction{NumLines: n})
			if c.Patch(rules.NoBlankLineBeforeFunction) {
				d.Amend(fix.Deletion(source.NewLocation(start.Row-n, 0), source.NewLocation(start.Row, 0)))
			}
			c.Report(d)
		}
	}

	if c.Enabled(rules.NoBlankLineAfterFunction) {
		n, ok := blankLinesAfter(after)
		if !ok || n == 0 {
			return
		}
		if n == 1 && innerFunctionOrClass.MatchString(after) {
			return
		}
		d := onDocstring(doc, violations.NoBlankLineAfterFunction{NumLines: n})
		if c.Patch(rules.NoBlankLineAfterFunction) {
			d.Amend(fix.Deletion(source.NewLocation(end.Row+1, 0), source.NewLocation(end.Row+1+n, 0)))
		}
		c.Report(d)
	}
}

// BlankBeforeAfterClass reports blank lines around a class docstring
// (D203, D204, D211).
func BlankBeforeAfterClass(c *checker.Checker, doc *docstrings.Docstring) {
	stmt, ok := classStmt(doc)
	if !ok {
		return
	}
	before, _, after := c.Locator.Partition(stmt.Range, doc.Expr.Range)
	start, end := doc.Expr.Range.Start, doc.Expr.Range.End

	if c.Enabled(rules.OneBlankLineBeforeClass) || c.Enabled(rules.NoBlankLineBeforeClass) {
		n := blankLinesBefore(before)
		if c.Enabled(rules.NoBlankLineBeforeClass) && n != 0 {
			d := onDocstring(doc, violations.NoBlankLineBeforeClass{NumLines: n})
			if c.Patch(rules.NoBlankLineBeforeClass) {
				d.Amend(fix.Deletion(source.NewLocation(start.Row-n, 0), source.NewLocation(start.Row, 0)))
			}
			c.Report(d)
		}
		if c.Enabled(rules.OneBlankLineBeforeClass) && n != 1 {
			d := onDocstring(doc, violations.OneBlankLineBeforeClass{NumLines: n})
			if c.Patch(rules.OneBlankLineBeforeClass) {
				d.Amend(fix.Replacement("\n", source.NewLocation(start.Row-n, 0), source.NewLocation(start.Row, 0)))
			}
			c.Report(d)
		}
	}

	if c.Enabled(rules.OneBlankLineAfterClass) {
		n, ok := blankLinesAfter(after)
		if !ok || n == 1 {
			return
		}
		d := onDocstring(doc, violations.OneBlankLineAfterClass{NumLines: n})
		if c.Patch(rules.OneBlankLineAfterClass) {
			d.Amend(fix.Replacement("\n", source.NewLocation(end.Row+1, 0), source.NewLocation(end.Row+1+n, 0)))
		}
		c.Report(d)
	}
}

// BlankAfterSummary reports a summary line not followed by exactly one
// blank line (D205).
func BlankAfterSummary(c *checker.Checker, doc *docstrings.Docstring) {
	lines := source.Lines(strings.TrimSpace(doc.Body))
	if len(lines) < 2 {
		return
	}
	blanks := 0
	for _, line := range lines[1:] {
		if !source.IsBlank(line) {
			break
		}
		blanks++
	}
	if blanks == 1 {
		return
	}

	d := onDocstring(doc, violations.BlankLineAfterSummary{NumLines: blanks})
	if c.Patch(rules.BlankLineAfterSummary) {
		summary := 0
		for _, line := range source.Lines(doc.Body) {
			if !source.IsBlank(line) {
				break
			}
			summary++
		}
		gap := at(doc, summary+1, 0)
		if blanks == 0 {
			d.Amend(fix.Insertion("\n", gap))
		} else {
			d.Amend(fix.Replacement("\n", gap, at(doc, summary+1+blanks, 0)))
		}
	}
	c.Report(d)
}
