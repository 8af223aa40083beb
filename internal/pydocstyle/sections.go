package pydocstyle

import (
	"slices"
	"strings"

	"lintcore/internal/checker"
	"lintcore/internal/docstrings"
	"lintcore/internal/fix"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

// Sections finds the section headers of a docstring and checks each one
// (D214, D215, D405-D414, D416, D417).
func Sections(c *checker.Checker, doc *docstrings.Docstring, convention docstrings.Convention) {
	lines := source.LinesWithTrailingNewline(doc.Body)
	if len(lines) < 2 {
		return
	}
	style, contexts := docstrings.DetectSections(lines, convention)
	for i := range contexts {
		ctx := &contexts[i]
		if style == docstrings.StyleNumpy {
			numpySection(c, doc, ctx)
		} else {
			googleSection(c, doc, ctx)
		}
	}
}

// dashes is the underline for name, indented like the docstring.
func dashes(doc *docstrings.Docstring, name string) string {
	return source.Clean(doc.Indentation) + strings.Repeat("-", source.RuneLen(name)) + "\n"
}

func commonSection(c *checker.Checker, doc *docstrings.Docstring, ctx *docstrings.SectionContext, style docstrings.SectionStyle) {
	row := ctx.OriginalIndex
	name := ctx.SectionName

	if c.Enabled(rules.CapitalizeSectionName) && !slices.Contains(style.SectionNames(), name) {
		if titled := docstrings.TitleCase(name); slices.Contains(style.SectionNames(), titled) {
			d := onDocstring(doc, violations.CapitalizeSectionName{Name: name})
			if c.Patch(rules.CapitalizeSectionName) {
				if idx := strings.Index(ctx.Line, name); idx >= 0 {
					col := source.RuneLen(ctx.Line[:idx])
					d.Amend(fix.Replacement(titled, at(doc, row, col), at(doc, row, col+source.RuneLen(name))))
				}
			}
			c.Report(d)
		}
	}

	if c.Enabled(rules.SectionNotOverIndented) {
		if lead := source.LeadingSpace(ctx.Line); source.RuneLen(lead) > source.RuneLen(doc.Indentation) {
			d := onDocstring(doc, violations.SectionNotOverIndented{Name: name})
			if c.Patch(rules.SectionNotOverIndented) {
				d.Amend(fix.Replacement(source.Clean(doc.Indentation), at(doc, row, 0), at(doc, row, source.RuneLen(lead))))
			}
			c.Report(d)
		}
	}

	if n := len(ctx.FollowingLines); n == 0 || !source.IsBlank(ctx.FollowingLines[n-1]) {
		rule, kind := rules.BlankLineAfterSection, rules.Kind(violations.BlankLineAfterSection{Name: name})
		if ctx.IsLastSection {
			rule, kind = rules.BlankLineAfterLastSection, violations.BlankLineAfterLastSection{Name: name}
		}
		if c.Enabled(rule) {
			d := onDocstring(doc, kind)
			if c.Patch(rule) {
				d.Amend(fix.Insertion("\n", at(doc, row+1+n, 0)))
			}
			c.Report(d)
		}
	}

	if c.Enabled(rules.BlankLineBeforeSection) && !source.IsBlank(ctx.PreviousLine) {
		d := onDocstring(doc, violations.BlankLineBeforeSection{Name: name})
		if c.Patch(rules.BlankLineBeforeSection) {
			d.Amend(fix.Insertion("\n", at(doc, row, 0)))
		}
		c.Report(d)
	}

	blanksAndSectionUnderline(c, doc, ctx)
}

// blanksAndSectionUnderline checks what sits between a header and its
// content: the dashed underline and any blank lines around it.
func blanksAndSectionUnderline(c *checker.Checker, doc *docstrings.Docstring, ctx *docstrings.SectionContext) {
	row := ctx.OriginalIndex
	name := ctx.SectionName
	following := ctx.FollowingLines

	blanks := 0
	for _, line := range following {
		if !source.IsBlank(line) {
			break
		}
		blanks++
	}

	missingUnderline := func() {
		if !c.Enabled(rules.DashedUnderlineAfterSection) {
			return
		}
		d := onDocstring(doc, violations.DashedUnderlineAfterSection{Name: name})
		if c.Patch(rules.DashedUnderlineAfterSection) {
			d.Amend(fix.Insertion(dashes(doc, name), at(doc, row+1, 0)))
		}
		c.Report(d)
	}
	emptySection := func() {
		if c.Enabled(rules.NonEmptySection) {
			c.Report(onDocstring(doc, violations.NonEmptySection{Name: name}))
		}
	}
	blanksBeforeContent := func(from, count int) {
		if !c.Enabled(rules.NoBlankLinesBetweenHeaderAndContent) {
			return
		}
		d := onDocstring(doc, violations.NoBlankLinesBetweenHeaderAndContent{Name: name})
		if c.Patch(rules.NoBlankLinesBetweenHeaderAndContent) {
			d.Amend(fix.Deletion(at(doc, row+1+from, 0), at(doc, row+1+from+count, 0)))
		}
		c.Report(d)
	}

	if blanks == len(following) {
		missingUnderline()
		emptySection()
		return
	}

	underline := following[blanks]
	if !docstrings.IsDashes(underline) {
		missingUnderline()
		if blanks > 0 {
			blanksBeforeContent(0, blanks)
		}
		return
	}
	underlineRow := row + 1 + blanks

	if blanks > 0 && c.Enabled(rules.SectionUnderlineAfterName) {
		d := onDocstring(doc, violations.SectionUnderlineAfterName{Name: name})
		if c.Patch(rules.SectionUnderlineAfterName) {
			d.Amend(fix.Deletion(at(doc, row+1, 0), at(doc, underlineRow, 0)))
		}
		c.Report(d)
	}

	if strings.Count(underline, "-") != source.RuneLen(name) && c.Enabled(rules.SectionUnderlineMatchesSectionLength) {
		d := onDocstring(doc, violations.SectionUnderlineMatchesSectionLength{Name: name})
		if c.Patch(rules.SectionUnderlineMatchesSectionLength) {
			d.Amend(fix.Replacement(dashes(doc, name), at(doc, underlineRow, 0), at(doc, underlineRow+1, 0)))
		}
		c.Report(d)
	}

	if c.Enabled(rules.SectionUnderlineNotOverIndented) {
		if lead := source.LeadingSpace(underline); source.RuneLen(lead) > source.RuneLen(doc.Indentation) {
			d := onDocstring(doc, violations.SectionUnderlineNotOverIndented{Name: name})
			if c.Patch(rules.SectionUnderlineNotOverIndented) {
				d.Amend(fix.Replacement(source.Clean(doc.Indentation), at(doc, underlineRow, 0), at(doc, underlineRow, source.RuneLen(lead))))
			}
			c.Report(d)
		}
	}

	after := blanks + 1
	if after >= len(following) {
		emptySection()
		return
	}
	if !source.IsBlank(following[after]) {
		return
	}
	rest := following[after:]
	gap := 0
	for _, line := range rest {
		if !source.IsBlank(line) {
			break
		}
		gap++
	}
	if gap == len(rest) {
		emptySection()
		return
	}
	blanksBeforeContent(after, gap)
}

func numpySection(c *checker.Checker, doc *docstrings.Docstring, ctx *docstrings.SectionContext) {
	commonSection(c, doc, ctx, docstrings.StyleNumpy)

	if c.Enabled(rules.NewLineAfterSectionName) {
		if suffix := headerSuffix(ctx); suffix != "" {
			d := onDocstring(doc, violations.NewLineAfterSectionName{Name: ctx.SectionName})
			if c.Patch(rules.NewLineAfterSectionName) {
				if col, ok := suffixColumn(ctx); ok {
					row := ctx.OriginalIndex
					d.Amend(fix.Deletion(at(doc, row, col), at(doc, row, col+source.RuneLen(suffix))))
				}
			}
			c.Report(d)
		}
	}

	if c.Enabled(rules.DocumentAllArguments) && docstrings.TitleCase(ctx.SectionName) == "Parameters" {
		parametersSection(c, doc, ctx)
	}
}

func googleSection(c *checker.Checker, doc *docstrings.Docstring, ctx *docstrings.SectionContext) {
	commonSection(c, doc, ctx, docstrings.StyleGoogle)

	if c.Enabled(rules.SectionNameEndsInColon) {
		if suffix := headerSuffix(ctx); suffix != ":" {
			d := onDocstring(doc, violations.SectionNameEndsInColon{Name: ctx.SectionName})
			if c.Patch(rules.SectionNameEndsInColon) {
				if col, ok := suffixColumn(ctx); ok {
					row := ctx.OriginalIndex
					d.Amend(fix.Replacement(":", at(doc, row, col), at(doc, row, col+source.RuneLen(suffix))))
				}
			}
			c.Report(d)
		}
	}

	if c.Enabled(rules.DocumentAllArguments) {
		if titled := docstrings.TitleCase(ctx.SectionName); titled == "Args" || titled == "Arguments" {
			argsSection(c, doc, ctx)
		}
	}
}

// headerSuffix is whatever follows the section name on the header line.
func headerSuffix(ctx *docstrings.SectionContext) string {
	return strings.TrimPrefix(strings.TrimSpace(ctx.Line), ctx.SectionName)
}

// suffixColumn is the rune column right after the section name.
func suffixColumn(ctx *docstrings.SectionContext) (int, bool) {
	idx := strings.Index(ctx.Line, ctx.SectionName)
	if idx < 0 {
		return 0, false
	}
	return source.RuneLen(ctx.Line[:idx+len(ctx.SectionName)]), true
}
