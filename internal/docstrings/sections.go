package docstrings

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lintcore/internal/source"
)

// SectionStyle selects a section vocabulary.
type SectionStyle uint8

const (
	StyleNumpy SectionStyle = iota + 1
	StyleGoogle
)

func (s SectionStyle) String() string {
	if s == StyleGoogle {
		return "google"
	}
	return "numpy"
}

var numpySections = []string{
	"Attributes",
	"Examples",
	"Methods",
	"Notes",
	"Other Parameters",
	"Parameters",
	"Raises",
	"References",
	"Returns",
	"See Also",
	"Warnings",
	"Warns",
	"Yields",
	// NumPy-only
	"Extended Summary",
	"Other Params",
	"Short Summary",
}

var googleSections = []string{
	"Attributes",
	"Examples",
	"Methods",
	"Notes",
	"Other Parameters",
	"Parameters",
	"Raises",
	"References",
	"Returns",
	"See Also",
	"Warnings",
	"Warns",
	"Yields",
	// Google-only
	"Args",
	"Arguments",
	"Attention",
	"Caution",
	"Danger",
	"Error",
	"Example",
	"Hint",
	"Important",
	"Keyword Args",
	"Keyword Arguments",
	"Note",
	"Other Args",
	"Other Arguments",
	"Return",
	"Tip",
	"Todo",
	"Warning",
	"Yield",
}

var (
	numpyLower  = lowerSet(numpySections)
	googleLower = lowerSet(googleSections)
)

func lowerSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[strings.ToLower(n)] = struct{}{}
	}
	return out
}

// SectionNames returns the canonical headers of the style.
func (s SectionStyle) SectionNames() []string {
	if s == StyleGoogle {
		return googleSections
	}
	return numpySections
}

// IsSectionName reports whether name, in any case, is a header of the style.
func (s SectionStyle) IsSectionName(name string) bool {
	set := numpyLower
	if s == StyleGoogle {
		set = googleLower
	}
	_, ok := set[strings.ToLower(name)]
	return ok
}

// TitleCase upper-cases the first letter of each word and lower-cases the
// rest, "see also" -> "See Also".
func TitleCase(s string) string {
	// Caser хранит состояние, поэтому новый на каждый вызов
	return cases.Title(language.English).String(s)
}

// SectionContext is one recognised section header inside a docstring body.
// FollowingLines runs up to the next header, or to the body end for the
// last section.
type SectionContext struct {
	SectionName    string
	PreviousLine   string
	Line           string
	FollowingLines []string
	IsLastSection  bool
	OriginalIndex  int
}

// LeadingWords returns the trimmed line cut at the first rune that is
// neither alphanumeric, underscore nor whitespace.
func LeadingWords(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && !unicode.IsSpace(r)
	}); i >= 0 {
		return line[:i]
	}
	return line
}

func suspectedAsSection(line string, style SectionStyle) bool {
	return style.IsSectionName(LeadingWords(line))
}

// isDocstringSection: header is the name alone or followed by ':', and the
// previous line is blank or closes a paragraph.
func isDocstringSection(ctx *SectionContext) bool {
	suffix := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ctx.Line), ctx.SectionName))
	if suffix != ":" && suffix != "" {
		return false
	}
	prev := strings.TrimSpace(ctx.PreviousLine)
	if prev == "" {
		return true
	}
	return strings.ContainsAny(prev[len(prev)-1:], ",;.-\\/]})")
}

// SectionContexts finds the section headers of lines in the given style.
// The first line is never a header.
func SectionContexts(lines []string, style SectionStyle) []SectionContext {
	var contexts []SectionContext
	for i := 1; i < len(lines); i++ {
		if !suspectedAsSection(lines[i], style) {
			continue
		}
		ctx := SectionContext{
			SectionName:    LeadingWords(lines[i]),
			PreviousLine:   lines[i-1],
			Line:           lines[i],
			FollowingLines: lines[i+1:],
			OriginalIndex:  i,
		}
		if isDocstringSection(&ctx) {
			contexts = append(contexts, ctx)
		}
	}
	// каждая секция заканчивается там, где начинается следующая
	for i := range contexts {
		if i+1 < len(contexts) {
			contexts[i].FollowingLines = lines[contexts[i].OriginalIndex+1 : contexts[i+1].OriginalIndex]
			continue
		}
		contexts[i].IsLastSection = true
	}
	return contexts
}

// DetectSections picks the section style for a body. Google and NumPy
// conventions force their style. Otherwise NumPy wins only when at least
// one NumPy header has a dashed underline as its next non-blank line,
// and Google is used for everything else.
func DetectSections(lines []string, convention Convention) (SectionStyle, []SectionContext) {
	switch convention {
	case ConventionGoogle:
		return StyleGoogle, SectionContexts(lines, StyleGoogle)
	case ConventionNumpy:
		return StyleNumpy, SectionContexts(lines, StyleNumpy)
	}
	numpy := SectionContexts(lines, StyleNumpy)
	for i := range numpy {
		if HasUnderline(numpy[i].FollowingLines) {
			return StyleNumpy, numpy
		}
	}
	return StyleGoogle, SectionContexts(lines, StyleGoogle)
}

// HasUnderline reports whether the first non-blank line is dashes only.
func HasUnderline(following []string) bool {
	for _, line := range following {
		if source.IsBlank(line) {
			continue
		}
		return IsDashes(line)
	}
	return false
}

// IsDashes reports a non-empty line made of '-' and surrounding whitespace.
func IsDashes(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && strings.Trim(t, "-") == ""
}
