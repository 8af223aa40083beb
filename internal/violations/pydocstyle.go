package violations

import (
	"fmt"
	"strings"

	"lintcore/internal/rules"
)

// D1xx: presence.

type PublicModule struct{}

func (PublicModule) Rule() rules.Rule { return rules.PublicModule }
func (PublicModule) Message() string  { return "Missing docstring in public module" }

type PublicClass struct{}

func (PublicClass) Rule() rules.Rule { return rules.PublicClass }
func (PublicClass) Message() string  { return "Missing docstring in public class" }

type PublicMethod struct{}

func (PublicMethod) Rule() rules.Rule { return rules.PublicMethod }
func (PublicMethod) Message() string  { return "Missing docstring in public method" }

type PublicFunction struct{}

func (PublicFunction) Rule() rules.Rule { return rules.PublicFunction }
func (PublicFunction) Message() string  { return "Missing docstring in public function" }

type PublicPackage struct{}

func (PublicPackage) Rule() rules.Rule { return rules.PublicPackage }
func (PublicPackage) Message() string  { return "Missing docstring in public package" }

type MagicMethod struct{}

func (MagicMethod) Rule() rules.Rule { return rules.MagicMethod }
func (MagicMethod) Message() string  { return "Missing docstring in magic method" }

type PublicNestedClass struct{}

func (PublicNestedClass) Rule() rules.Rule { return rules.PublicNestedClass }
func (PublicNestedClass) Message() string  { return "Missing docstring in public nested class" }

type PublicInit struct{}

func (PublicInit) Rule() rules.Rule { return rules.PublicInit }
func (PublicInit) Message() string  { return "Missing docstring in `__init__`" }

// D2xx: whitespace and layout.

type FitsOnOneLine struct{}

func (FitsOnOneLine) Rule() rules.Rule { return rules.FitsOnOneLine }
func (FitsOnOneLine) Message() string  { return "One-line docstring should fit on one line" }

type NoBlankLineBeforeFunction struct {
	NumLines int
}

func (NoBlankLineBeforeFunction) Rule() rules.Rule { return rules.NoBlankLineBeforeFunction }
func (v NoBlankLineBeforeFunction) Message() string {
	return fmt.Sprintf("No blank lines allowed before function docstring (found %d)", v.NumLines)
}
func (NoBlankLineBeforeFunction) FixTitle() string {
	return "Remove blank line(s) before function docstring"
}

type NoBlankLineAfterFunction struct {
	NumLines int
}

func (NoBlankLineAfterFunction) Rule() rules.Rule { return rules.NoBlankLineAfterFunction }
func (v NoBlankLineAfterFunction) Message() string {
	return fmt.Sprintf("No blank lines allowed after function docstring (found %d)", v.NumLines)
}
func (NoBlankLineAfterFunction) FixTitle() string {
	return "Remove blank line(s) after function docstring"
}

type OneBlankLineBeforeClass struct {
	NumLines int
}

func (OneBlankLineBeforeClass) Rule() rules.Rule { return rules.OneBlankLineBeforeClass }
func (OneBlankLineBeforeClass) Message() string {
	return "1 blank line required before class docstring"
}
func (OneBlankLineBeforeClass) FixTitle() string { return "Insert 1 blank line before class docstring" }

type OneBlankLineAfterClass struct {
	NumLines int
}

func (OneBlankLineAfterClass) Rule() rules.Rule { return rules.OneBlankLineAfterClass }
func (OneBlankLineAfterClass) Message() string  { return "1 blank line required after class docstring" }
func (OneBlankLineAfterClass) FixTitle() string { return "Insert 1 blank line after class docstring" }

type BlankLineAfterSummary struct {
	NumLines int
}

func (BlankLineAfterSummary) Rule() rules.Rule { return rules.BlankLineAfterSummary }
func (v BlankLineAfterSummary) Message() string {
	if v.NumLines == 0 {
		return "1 blank line required between summary line and description"
	}
	return fmt.Sprintf("1 blank line required between summary line and description (found %d)", v.NumLines)
}
func (BlankLineAfterSummary) FixTitle() string { return "Insert single blank line" }

type IndentWithSpaces struct{}

func (IndentWithSpaces) Rule() rules.Rule { return rules.IndentWithSpaces }
func (IndentWithSpaces) Message() string  { return "Docstring should be indented with spaces, not tabs" }

type NoUnderIndentation struct{}

func (NoUnderIndentation) Rule() rules.Rule { return rules.NoUnderIndentation }
func (NoUnderIndentation) Message() string  { return "Docstring is under-indented" }
func (NoUnderIndentation) FixTitle() string { return "Increase indentation" }

type NoOverIndentation struct{}

func (NoOverIndentation) Rule() rules.Rule { return rules.NoOverIndentation }
func (NoOverIndentation) Message() string  { return "Docstring is over-indented" }
func (NoOverIndentation) FixTitle() string { return "Remove over-indentation" }

type NewLineAfterLastParagraph struct{}

func (NewLineAfterLastParagraph) Rule() rules.Rule { return rules.NewLineAfterLastParagraph }
func (NewLineAfterLastParagraph) Message() string {
	return "Multi-line docstring closing quotes should be on a separate line"
}
func (NewLineAfterLastParagraph) FixTitle() string { return "Move closing quotes onto a separate line" }

type NoSurroundingWhitespace struct{}

func (NoSurroundingWhitespace) Rule() rules.Rule { return rules.NoSurroundingWhitespace }
func (NoSurroundingWhitespace) Message() string {
	return "No whitespaces allowed surrounding docstring text"
}
func (NoSurroundingWhitespace) FixTitle() string { return "Trim surrounding whitespace" }

type NoBlankLineBeforeClass struct {
	NumLines int
}

func (NoBlankLineBeforeClass) Rule() rules.Rule { return rules.NoBlankLineBeforeClass }
func (NoBlankLineBeforeClass) Message() string  { return "No blank lines allowed before class docstring" }
func (NoBlankLineBeforeClass) FixTitle() string {
	return "Remove blank line(s) before class docstring"
}

type MultiLineSummaryFirstLine struct{}

func (MultiLineSummaryFirstLine) Rule() rules.Rule { return rules.MultiLineSummaryFirstLine }
func (MultiLineSummaryFirstLine) Message() string {
	return "Multi-line docstring summary should start at the first line"
}

type MultiLineSummarySecondLine struct{}

func (MultiLineSummarySecondLine) Rule() rules.Rule { return rules.MultiLineSummarySecondLine }
func (MultiLineSummarySecondLine) Message() string {
	return "Multi-line docstring summary should start at the second line"
}

type SectionNotOverIndented struct {
	Name string
}

func (SectionNotOverIndented) Rule() rules.Rule { return rules.SectionNotOverIndented }
func (v SectionNotOverIndented) Message() string {
	return fmt.Sprintf("Section is over-indented (%q)", v.Name)
}
func (v SectionNotOverIndented) FixTitle() string {
	return fmt.Sprintf("Remove over-indentation from %q", v.Name)
}

type SectionUnderlineNotOverIndented struct {
	Name string
}

func (SectionUnderlineNotOverIndented) Rule() rules.Rule {
	return rules.SectionUnderlineNotOverIndented
}
func (v SectionUnderlineNotOverIndented) Message() string {
	return fmt.Sprintf("Section underline is over-indented (%q)", v.Name)
}
func (v SectionUnderlineNotOverIndented) FixTitle() string {
	return fmt.Sprintf("Remove over-indentation from %q underline", v.Name)
}

// D3xx: quotes.

type UsesTripleQuotes struct{}

func (UsesTripleQuotes) Rule() rules.Rule { return rules.UsesTripleQuotes }
func (UsesTripleQuotes) Message() string  { return `Use """triple double quotes"""` }

type UsesRPrefixForBackslashedContent struct{}

func (UsesRPrefixForBackslashedContent) Rule() rules.Rule {
	return rules.UsesRPrefixForBackslashedContent
}
func (UsesRPrefixForBackslashedContent) Message() string {
	return `Use r""" if any backslashes in a docstring`
}

// D4xx: content.

type EndsInPeriod struct{}

func (EndsInPeriod) Rule() rules.Rule { return rules.EndsInPeriod }
func (EndsInPeriod) Message() string  { return "First line should end with a period" }
func (EndsInPeriod) FixTitle() string { return "Add period" }

type NonImperativeMood struct {
	FirstLine string
}

func (NonImperativeMood) Rule() rules.Rule { return rules.NonImperativeMood }
func (v NonImperativeMood) Message() string {
	return fmt.Sprintf("First line of docstring should be in imperative mood: %q", v.FirstLine)
}

type NoSignature struct{}

func (NoSignature) Rule() rules.Rule { return rules.NoSignature }
func (NoSignature) Message() string  { return "First line should not be the function's signature" }

type FirstLineCapitalized struct{}

func (FirstLineCapitalized) Rule() rules.Rule { return rules.FirstLineCapitalized }
func (FirstLineCapitalized) Message() string {
	return "First word of the first line should be properly capitalized"
}

type NoThisPrefix struct{}

func (NoThisPrefix) Rule() rules.Rule { return rules.NoThisPrefix }
func (NoThisPrefix) Message() string  { return `First word of the docstring should not be "This"` }

type CapitalizeSectionName struct {
	Name string
}

func (CapitalizeSectionName) Rule() rules.Rule { return rules.CapitalizeSectionName }
func (v CapitalizeSectionName) Message() string {
	return fmt.Sprintf("Section name should be properly capitalized (%q)", v.Name)
}
func (v CapitalizeSectionName) FixTitle() string { return fmt.Sprintf("Capitalize %q", v.Name) }

type NewLineAfterSectionName struct {
	Name string
}

func (NewLineAfterSectionName) Rule() rules.Rule { return rules.NewLineAfterSectionName }
func (v NewLineAfterSectionName) Message() string {
	return fmt.Sprintf("Section name should end with a newline (%q)", v.Name)
}
func (v NewLineAfterSectionName) FixTitle() string {
	return fmt.Sprintf("Add newline after %q", v.Name)
}

type DashedUnderlineAfterSection struct {
	Name string
}

func (DashedUnderlineAfterSection) Rule() rules.Rule { return rules.DashedUnderlineAfterSection }
func (v DashedUnderlineAfterSection) Message() string {
	return fmt.Sprintf("Missing dashed underline after section (%q)", v.Name)
}
func (v DashedUnderlineAfterSection) FixTitle() string {
	return fmt.Sprintf("Add dashed line under %q", v.Name)
}

type SectionUnderlineAfterName struct {
	Name string
}

func (SectionUnderlineAfterName) Rule() rules.Rule { return rules.SectionUnderlineAfterName }
func (v SectionUnderlineAfterName) Message() string {
	return fmt.Sprintf("Section underline should be in the line following the section's name (%q)", v.Name)
}
func (v SectionUnderlineAfterName) FixTitle() string {
	return fmt.Sprintf("Add underline to %q", v.Name)
}

type SectionUnderlineMatchesSectionLength struct {
	Name string
}

func (SectionUnderlineMatchesSectionLength) Rule() rules.Rule {
	return rules.SectionUnderlineMatchesSectionLength
}
func (v SectionUnderlineMatchesSectionLength) Message() string {
	return fmt.Sprintf("Section underline should match the length of its name (%q)", v.Name)
}
func (v SectionUnderlineMatchesSectionLength) FixTitle() string {
	return fmt.Sprintf("Adjust underline length to match %q", v.Name)
}

type BlankLineAfterSection struct {
	Name string
}

func (BlankLineAfterSection) Rule() rules.Rule { return rules.BlankLineAfterSection }
func (v BlankLineAfterSection) Message() string {
	return fmt.Sprintf("Missing blank line after section (%q)", v.Name)
}
func (v BlankLineAfterSection) FixTitle() string {
	return fmt.Sprintf("Add blank line after %q", v.Name)
}

type BlankLineBeforeSection struct {
	Name string
}

func (BlankLineBeforeSection) Rule() rules.Rule { return rules.BlankLineBeforeSection }
func (v BlankLineBeforeSection) Message() string {
	return fmt.Sprintf("Missing blank line before section (%q)", v.Name)
}
func (v BlankLineBeforeSection) FixTitle() string {
	return fmt.Sprintf("Add blank line before %q", v.Name)
}

type NoBlankLinesBetweenHeaderAndContent struct {
	Name string
}

func (NoBlankLinesBetweenHeaderAndContent) Rule() rules.Rule {
	return rules.NoBlankLinesBetweenHeaderAndContent
}
func (v NoBlankLinesBetweenHeaderAndContent) Message() string {
	return fmt.Sprintf("No blank lines allowed between a section header and its content (%q)", v.Name)
}
func (NoBlankLinesBetweenHeaderAndContent) FixTitle() string { return "Remove blank line(s)" }

type BlankLineAfterLastSection struct {
	Name string
}

func (BlankLineAfterLastSection) Rule() rules.Rule { return rules.BlankLineAfterLastSection }
func (v BlankLineAfterLastSection) Message() string {
	return fmt.Sprintf("Missing blank line after last section (%q)", v.Name)
}
func (v BlankLineAfterLastSection) FixTitle() string {
	return fmt.Sprintf("Add blank line after %q", v.Name)
}

type NonEmptySection struct {
	Name string
}

func (NonEmptySection) Rule() rules.Rule { return rules.NonEmptySection }
func (v NonEmptySection) Message() string {
	return fmt.Sprintf("Section has no content (%q)", v.Name)
}

type EndsInPunctuation struct{}

func (EndsInPunctuation) Rule() rules.Rule { return rules.EndsInPunctuation }
func (EndsInPunctuation) Message() string {
	return "First line should end with a period, question mark, or exclamation point"
}
func (EndsInPunctuation) FixTitle() string { return "Add closing punctuation" }

type SectionNameEndsInColon struct {
	Name string
}

func (SectionNameEndsInColon) Rule() rules.Rule { return rules.SectionNameEndsInColon }
func (v SectionNameEndsInColon) Message() string {
	return fmt.Sprintf("Section name should end with a colon (%q)", v.Name)
}
func (v SectionNameEndsInColon) FixTitle() string { return fmt.Sprintf("Add colon to %q", v.Name) }

// DocumentAllArguments lists the undocumented parameters in sorted order.
type DocumentAllArguments struct {
	Names []string
}

func (DocumentAllArguments) Rule() rules.Rule { return rules.DocumentAllArguments }
func (v DocumentAllArguments) Message() string {
	quoted := make([]string, len(v.Names))
	for i, n := range v.Names {
		quoted[i] = "`" + n + "`"
	}
	if len(quoted) == 1 {
		return "Missing argument description in the docstring: " + quoted[0]
	}
	return "Missing argument descriptions in the docstring: " + strings.Join(quoted, ", ")
}

type SkipDocstring struct{}

func (SkipDocstring) Rule() rules.Rule { return rules.SkipDocstring }
func (SkipDocstring) Message() string {
	return "Function decorated with `@overload` shouldn't contain a docstring"
}

type NonEmpty struct{}

func (NonEmpty) Rule() rules.Rule { return rules.NonEmpty }
func (NonEmpty) Message() string  { return "Docstring is empty" }
