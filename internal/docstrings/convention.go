package docstrings

import (
	"fmt"
	"strings"

	"lintcore/internal/rules"
)

// Convention is the docstring dialect a project follows. Unset and PEP257
// both auto-detect the section style.
type Convention uint8

const (
	ConventionUnset Convention = iota
	ConventionGoogle
	ConventionNumpy
	ConventionPep257
)

func (c Convention) String() string {
	switch c {
	case ConventionGoogle:
		return "google"
	case ConventionNumpy:
		return "numpy"
	case ConventionPep257:
		return "pep257"
	}
	return ""
}

// ParseConvention accepts "google", "numpy", "pep257" or "".
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ConventionUnset, nil
	case "google":
		return ConventionGoogle, nil
	case "numpy":
		return ConventionNumpy, nil
	case "pep257":
		return ConventionPep257, nil
	}
	return ConventionUnset, fmt.Errorf("unknown docstring convention %q (expected: google|numpy|pep257)", s)
}

// Ignores returns the rules a convention switches off.
func (c Convention) Ignores() []rules.Rule {
	switch c {
	case ConventionGoogle:
		return []rules.Rule{
			rules.OneBlankLineBeforeClass,
			rules.OneBlankLineAfterClass,
			rules.MultiLineSummarySecondLine,
			rules.SectionUnderlineNotOverIndented,
			rules.EndsInPeriod,
			rules.NoThisPrefix,
			rules.NewLineAfterSectionName,
			rules.DashedUnderlineAfterSection,
			rules.SectionUnderlineAfterName,
			rules.SectionUnderlineMatchesSectionLength,
			rules.BlankLineAfterLastSection,
		}
	case ConventionNumpy:
		return []rules.Rule{
			rules.PublicInit,
			rules.OneBlankLineBeforeClass,
			rules.MultiLineSummaryFirstLine,
			rules.MultiLineSummarySecondLine,
			rules.NoSignature,
			rules.BlankLineAfterLastSection,
			rules.EndsInPunctuation,
			rules.SectionNameEndsInColon,
			rules.DocumentAllArguments,
		}
	case ConventionPep257:
		return []rules.Rule{
			rules.OneBlankLineBeforeClass,
			rules.MultiLineSummaryFirstLine,
			rules.MultiLineSummarySecondLine,
			rules.SectionNotOverIndented,
			rules.SectionUnderlineNotOverIndented,
			rules.NoThisPrefix,
			rules.CapitalizeSectionName,
			rules.NewLineAfterSectionName,
			rules.DashedUnderlineAfterSection,
			rules.SectionUnderlineAfterName,
			rules.SectionUnderlineMatchesSectionLength,
			rules.BlankLineAfterSection,
			rules.BlankLineBeforeSection,
			rules.BlankLineAfterLastSection,
			rules.EndsInPunctuation,
			rules.SectionNameEndsInColon,
			rules.DocumentAllArguments,
		}
	}
	return nil
}
