package pydocstyle

import (
	"strings"
	"unicode"

	"lintcore/internal/checker"
	"lintcore/internal/docstrings"
	"lintcore/internal/fix"
	"lintcore/internal/imperative"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/syntax"
	"lintcore/internal/violations"
)

var fieldListMarkers = []string{":param", ":type", ":raises", ":return", ":rtype"}

// firstLine returns the first line of the trimmed body.
func firstLine(doc *docstrings.Docstring) (string, bool) {
	lines := source.Lines(strings.TrimSpace(doc.Body))
	if len(lines) == 0 {
		return "", false
	}
	return lines[0], true
}

// summaryIsMarkup is true when the first line is a field-list marker or
// ends in a section name, which carry no sentence to punctuate.
func summaryIsMarkup(doc *docstrings.Docstring) bool {
	line, ok := firstLine(doc)
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(line)
	for _, prefix := range fieldListMarkers {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	for _, style := range []docstrings.SectionStyle{docstrings.StyleGoogle, docstrings.StyleNumpy} {
		for _, name := range style.SectionNames() {
			if !strings.HasSuffix(trimmed, name) {
				continue
			}
			if rest := strings.TrimSuffix(trimmed, name); rest == "" || rest == ":" {
				return true
			}
		}
	}
	return false
}

// checkTerminal reports a summary whose logical line does not end with
// one of terminals. The fix appends a period unless the line ends in ':'
// or ';'.
func checkTerminal(c *checker.Checker, doc *docstrings.Docstring, rule rules.Rule, kind rules.Kind, terminals string) {
	if summaryIsMarkup(doc) {
		return
	}
	index, ok := docstrings.LogicalLine(doc.Body)
	if !ok {
		return
	}
	line := source.Lines(doc.Body)[index]
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	if trimmed != "" && strings.ContainsAny(trimmed[len(trimmed)-1:], terminals) {
		return
	}

	d := onDocstring(doc, kind)
	if c.Patch(rule) && !strings.HasSuffix(trimmed, ":") && !strings.HasSuffix(trimmed, ";") {
		if loc, ok := periodLocation(doc, index, trimmed); ok {
			d.Amend(fix.Insertion(".", loc))
		}
	}
	c.Report(d)
}

func periodLocation(doc *docstrings.Docstring, index int, trimmed string) (source.Location, bool) {
	if index > 0 {
		return at(doc, index, source.RuneLen(trimmed)), true
	}
	pattern, ok := docstrings.LeadingQuote(doc.Contents)
	if !ok {
		return source.Location{}, false
	}
	start := doc.Expr.Range.Start
	return source.NewLocation(start.Row, start.Column+len(pattern)+source.RuneLen(trimmed)), true
}

// EndsWithPeriod reports a summary not ending in '.' (D400).
func EndsWithPeriod(c *checker.Checker, doc *docstrings.Docstring) {
	checkTerminal(c, doc, rules.EndsInPeriod, violations.EndsInPeriod{}, ".")
}

// EndsWithPunctuation reports a summary not ending in '.', '!' or '?'
// (D415).
func EndsWithPunctuation(c *checker.Checker, doc *docstrings.Docstring) {
	checkTerminal(c, doc, rules.EndsInPunctuation, violations.EndsInPunctuation{}, ".!?")
}

// NonImperativeMood reports a function summary whose first word is not an
// imperative verb (D401). Tests and properties are exempt.
func NonImperativeMood(c *checker.Checker, doc *docstrings.Docstring, propertyDecorators []string) {
	stmt, ok := functionStmt(doc)
	if !ok {
		return
	}
	if syntax.IsTest(stmt.Name) || syntax.IsProperty(stmt, propertyDecorators) {
		return
	}
	line, ok := firstLine(doc)
	if !ok {
		return
	}
	line = strings.TrimSpace(line)
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}
	if imperative.Mood(imperative.Normalize(words[0])) == imperative.NotImperative {
		c.Report(onDocstring(doc, violations.NonImperativeMood{FirstLine: line}))
	}
}

// NoSignature reports a summary that repeats the call signature (D402).
func NoSignature(c *checker.Checker, doc *docstrings.Docstring) {
	stmt, ok := functionStmt(doc)
	if !ok {
		return
	}
	line, ok := firstLine(doc)
	if !ok || !strings.Contains(line, stmt.Name+"(") {
		return
	}
	c.Report(onDocstring(doc, violations.NoSignature{}))
}

// firstWord is the body up to the first space, untrimmed.
func firstWord(body string) string {
	word, _, _ := strings.Cut(body, " ")
	return word
}

// Capitalized reports a module-level function summary starting with a
// lowercase word (D403). Acronyms and words with non-letters are skipped.
func Capitalized(c *checker.Checker, doc *docstrings.Docstring) {
	if doc.Kind() != docstrings.KindFunction {
		return
	}
	word := firstWord(doc.Body)
	if word == strings.ToUpper(word) {
		return
	}
	for _, r := range word {
		if r != '\'' && (r > unicode.MaxASCII || !unicode.IsLetter(r)) {
			return
		}
	}
	first := []rune(word)[0]
	if unicode.IsUpper(first) {
		return
	}
	c.Report(onDocstring(doc, violations.FirstLineCapitalized{}))
}

// StartsWithThis reports a summary opening with "This" (D404).
func StartsWithThis(c *checker.Checker, doc *docstrings.Docstring) {
	if source.IsBlank(doc.Body) {
		return
	}
	word := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, firstWord(doc.Body))
	if strings.ToLower(word) != "this" {
		return
	}
	c.Report(onDocstring(doc, violations.NoThisPrefix{}))
}
