package pydocstyle

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"lintcore/internal/checker"
	"lintcore/internal/diag"
	"lintcore/internal/docstrings"
	"lintcore/internal/fix"
	"lintcore/internal/pysource"
	"lintcore/internal/rules"
	"lintcore/internal/settings"
	"lintcore/internal/source"
	"lintcore/internal/trace"
	"lintcore/internal/violations"
)

func lintWith(t *testing.T, s *settings.Settings, src string) []diag.Diagnostic {
	t.Helper()
	loc := source.NewLocator("m.py", src)
	res, err := pysource.Extract(context.Background(), loc)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	bag := diag.NewBag(0)
	c := checker.New(s, loc, diag.BagReporter{Bag: bag}, nil)
	for i := range res.Definitions {
		Check(c, &res.Definitions[i])
	}
	bag.Sort()
	return bag.Items()
}

func lint(t *testing.T, src string, convention docstrings.Convention, enabled ...rules.Rule) []diag.Diagnostic {
	t.Helper()
	return lintWith(t, settings.ForRules(convention, enabled...), src)
}

// positions renders "CODE@row:col" for every diagnostic.
func positions(diags []diag.Diagnostic) string {
	parts := make([]string, len(diags))
	for i := range diags {
		parts[i] = fmt.Sprintf("%s@%s", diags[i].Rule().Code(), diags[i].Range.Start)
	}
	return strings.Join(parts, ",")
}

func applyFixes(t *testing.T, src string, diags []diag.Diagnostic) string {
	t.Helper()
	res, err := fix.Apply(source.NewLocator("m.py", src), diags)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("expected no skipped fixes, got %+v", res.Skipped)
	}
	return res.Text
}

func TestCleanDocstringUnderPep257(t *testing.T) {
	src := `"""Module docstring."""


def f():
    """Summary.

    Details.
    """
`
	s, err := settings.Resolve(context.Background(), settings.Options{
		Pydocstyle: settings.Pydocstyle{Convention: "pep257"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lintWith(t, s, src); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %s", diag.FormatGolden(got, "m.py", false))
	}
}

func TestBlankLineAfterSummaryCount(t *testing.T) {
	src := "def f():\n    \"\"\"Summary.\n\n\n    Details.\n    \"\"\"\n"

	diags := lint(t, src, docstrings.ConventionUnset, rules.BlankLineAfterSummary)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	kind, ok := d.Kind.(violations.BlankLineAfterSummary)
	if !ok || kind.NumLines != 2 {
		t.Fatalf("expected BlankLineAfterSummary{2}, got %#v", d.Kind)
	}
	if d.Fix == nil || d.Fix.Op != diag.FixReplacement || d.Fix.Content != "\n" {
		t.Fatalf("expected a single-newline replacement, got %+v", d.Fix)
	}
	if got := d.Fix.Range().String(); got != "3:0-5:0" {
		t.Fatalf("expected fix over 3:0-5:0, got %s", got)
	}

	fixed := applyFixes(t, src, diags)
	want := "def f():\n    \"\"\"Summary.\n\n    Details.\n    \"\"\"\n"
	if fixed != want {
		t.Fatalf("expected %q, got %q", want, fixed)
	}
}

func TestBlankLineAfterSummaryMissing(t *testing.T) {
	src := "def f():\n    \"\"\"Summary.\n    Details.\n    \"\"\"\n"

	diags := lint(t, src, docstrings.ConventionUnset, rules.BlankLineAfterSummary)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if got := diags[0].Message(); got != "1 blank line required between summary line and description" {
		t.Fatalf("unexpected message %q", got)
	}
	if f := diags[0].Fix; f == nil || f.Op != diag.FixInsertion || f.Location != source.NewLocation(3, 0) {
		t.Fatalf("expected an insertion at 3:0, got %+v", f)
	}
}

func TestNumpyParametersMissingArgument(t *testing.T) {
	src := `def f(x, y):
    """Do something.

    Parameters
    ----------
    x : int
        The x.
    """
`
	diags := lint(t, src, docstrings.ConventionNumpy, rules.DocumentAllArguments)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %s", positions(diags))
	}
	kind, ok := diags[0].Kind.(violations.DocumentAllArguments)
	if !ok || strings.Join(kind.Names, ",") != "y" {
		t.Fatalf("expected names [y], got %#v", diags[0].Kind)
	}
	if got := diags[0].Message(); got != "Missing argument description in the docstring: `y`" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := diags[0].Range.String(); got != "1:9-1:10" {
		t.Fatalf("expected the range of y, got %s", got)
	}
	if p := diags[0].Parent; p == nil || p.Start != source.NewLocation(1, 0) {
		t.Fatalf("expected the function statement as parent, got %v", p)
	}
}

func TestGoogleArgsSortedAndPrivateSkipped(t *testing.T) {
	src := `def g(x, y, _z, *args, **kwargs):
    """Do something.

    Args:
        x: The x.
    """


class C:
    """C."""

    def m(self, a, _b):
        """Do something.

        Args:
            a (int): The a.
        """
`
	diags := lint(t, src, docstrings.ConventionGoogle, rules.DocumentAllArguments)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %s", positions(diags))
	}
	kind := diags[0].Kind.(violations.DocumentAllArguments)
	if got := strings.Join(kind.Names, " "); got != "**kwargs *args y" {
		t.Fatalf("expected sorted names, got %s", got)
	}
	if got := diags[0].Range.String(); got != "1:9-1:31" {
		t.Fatalf("expected the range to span y through kwargs, got %s", got)
	}
	if p := diags[0].Parent; p == nil || p.Start != source.NewLocation(1, 0) {
		t.Fatalf("expected the function statement as parent, got %v", p)
	}
}

func TestNoSurroundingWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		fixed string
	}{
		{
			name:  "fix trims",
			src:   "def f():\n    \"\"\" Hello. \"\"\"\n",
			fixed: "def f():\n    \"\"\"Hello.\"\"\"\n",
		},
		{
			name: "fix withheld before quote",
			src:  "def f():\n    \"\"\" a\" \"\"\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := lint(t, tt.src, docstrings.ConventionUnset, rules.NoSurroundingWhitespace)
			if len(diags) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d", len(diags))
			}
			if tt.fixed == "" {
				if diags[0].Fix != nil {
					t.Fatalf("expected no fix, got %+v", diags[0].Fix)
				}
				return
			}
			if f := diags[0].Fix; f == nil || f.Content != "Hello." {
				t.Fatalf("expected replacement with Hello., got %+v", f)
			}
			if got := applyFixes(t, tt.src, diags); got != tt.fixed {
				t.Fatalf("expected %q, got %q", tt.fixed, got)
			}
		})
	}
}

func TestTerminalPunctuation(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		codes   string
		fixAt   string
	}{
		{name: "colon withholds fix", summary: "Returns:", codes: "D400,D415"},
		{name: "semicolon withholds fix", summary: "Do it;", codes: "D400,D415"},
		{name: "missing period", summary: "Do it", codes: "D400,D415", fixAt: "2:12"},
		{name: "exclamation", summary: "Do it!", codes: "D400"},
		{name: "period", summary: "Do it."},
		{name: "bare section", summary: "Returns"},
		{name: "numpy header first", summary: "Returns\n    -------\n    int\n    "},
		{name: "google header first", summary: "Args:\n        x: thing.\n    ", codes: "D400,D415"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "def f():\n    \"\"\"" + tt.summary + "\"\"\"\n"
			diags := lint(t, src, docstrings.ConventionUnset, rules.EndsInPeriod, rules.EndsInPunctuation)
			var codes []string
			for _, d := range diags {
				codes = append(codes, d.Rule().Code())
				if tt.fixAt == "" && d.Fix != nil {
					t.Fatalf("%s: expected no fix, got %+v", d.Rule().Code(), d.Fix)
				}
				if tt.fixAt != "" && (d.Fix == nil || d.Fix.Location.String() != tt.fixAt || d.Fix.Content != ".") {
					t.Fatalf("%s: expected '.' at %s, got %+v", d.Rule().Code(), tt.fixAt, d.Fix)
				}
			}
			if got := strings.Join(codes, ","); got != tt.codes {
				t.Fatalf("expected %q, got %q", tt.codes, got)
			}
		})
	}
}

func TestIndentation(t *testing.T) {
	enabled := []rules.Rule{rules.IndentWithSpaces, rules.NoUnderIndentation, rules.NoOverIndentation}
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "consistent",
			src:  "def f():\n    \"\"\"Summary.\n\n    Line one.\n    Line two.\n    \"\"\"\n",
			want: "",
		},
		{
			name: "one under-indented line",
			src:  "def f():\n    \"\"\"Summary.\n\n    Line one.\n  Under.\n    Line three.\n    \"\"\"\n",
			want: "D207@5:0",
		},
		{
			name: "every line over-indented",
			src:  "def f():\n    \"\"\"Summary.\n\n      Over one.\n      Over two.\n    \"\"\"\n",
			want: "D208@4:0,D208@5:0",
		},
		{
			name: "one line over-indented",
			src:  "def f():\n    \"\"\"Summary.\n\n      Over.\n    Fine.\n    \"\"\"\n",
			want: "",
		},
		{
			name: "closing quotes over-indented",
			src:  "def f():\n    \"\"\"Summary.\n\n    Fine.\n      \"\"\"\n",
			want: "D208@5:0",
		},
		{
			name: "tab",
			src:  "def f():\n    \"\"\"Summary.\n\n    \tTabbed.\n    \"\"\"\n",
			want: "D206@2:4,D208@4:0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := lint(t, tt.src, docstrings.ConventionUnset, enabled...)
			if got := positions(diags); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUnderIndentationFix(t *testing.T) {
	src := "def f():\n    \"\"\"Summary.\n\n  Under.\n    \"\"\"\n"
	diags := lint(t, src, docstrings.ConventionUnset, rules.NoUnderIndentation)
	want := "def f():\n    \"\"\"Summary.\n\n    Under.\n    \"\"\"\n"
	if got := applyFixes(t, src, diags); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGoogleSectionsUnderUnsetConvention(t *testing.T) {
	src := `def f(x):
    """Do something.

    Args:
        x: The x.

    Returns:
        Nothing.
    """
`
	diags := lint(t, src, docstrings.ConventionUnset,
		rules.NewLineAfterSectionName,
		rules.SectionNameEndsInColon,
		rules.BlankLineAfterSection,
		rules.BlankLineAfterLastSection,
		rules.BlankLineBeforeSection,
		rules.NoBlankLinesBetweenHeaderAndContent,
		rules.NonEmptySection,
		rules.DocumentAllArguments,
	)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %s", diag.FormatGolden(diags, "m.py", false))
	}
}

func TestDashedUnderlineForGoogleSections(t *testing.T) {
	src := `def f(x):
    """Summary.

    Args:
        x: thing.
    """
`
	diags := lint(t, src, docstrings.ConventionUnset, rules.DashedUnderlineAfterSection)
	if got := positions(diags); got != "D407@2:4" {
		t.Fatalf("expected D407@2:4, got %q", got)
	}
	if diags[0].Fix == nil || diags[0].Fix.Content != "    ----\n" || diags[0].Fix.Location != source.NewLocation(5, 0) {
		t.Fatalf("expected a dashed underline insertion at 5:0, got %+v", diags[0].Fix)
	}

	for _, convention := range []string{"google", "pep257"} {
		opts, err := settings.Parse("lintcore.toml", "[lint]\nselect = [\"D407\"]\n[lint.pydocstyle]\nconvention = \""+convention+"\"\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s, err := settings.Resolve(context.Background(), opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := lintWith(t, s, src); len(got) != 0 {
			t.Fatalf("%s: expected the convention to turn D407 off, got %s", convention, positions(got))
		}
	}
}

func TestNumpySectionProblems(t *testing.T) {
	src := `def f(x):
    """Do something.

    returns
    -----
    int
    """
`
	diags := lint(t, src, docstrings.ConventionNumpy,
		rules.CapitalizeSectionName,
		rules.SectionUnderlineMatchesSectionLength,
		rules.BlankLineAfterLastSection,
	)
	got := map[string]bool{}
	for _, d := range diags {
		got[d.Rule().Code()] = true
	}
	for _, code := range []string{"D405", "D409"} {
		if !got[code] {
			t.Fatalf("expected %s, got %s", code, positions(diags))
		}
	}
	if got["D413"] {
		t.Fatalf("expected no D413 when the section ends in a blank line, got %s", positions(diags))
	}
}

func TestBlankLineFixesAreIdempotent(t *testing.T) {
	src := `class A:

    """Doc for A."""

    def f(self):

        """Summary.
        Details.
        """

        return 1
`
	enabled := []rules.Rule{
		rules.NoBlankLineBeforeFunction,
		rules.NoBlankLineAfterFunction,
		rules.BlankLineAfterSummary,
		rules.NoBlankLineBeforeClass,
	}
	diags := lint(t, src, docstrings.ConventionUnset, enabled...)
	if got := positions(diags); got != "D211@3:4,D201@7:8,D202@7:8,D205@7:8" {
		t.Fatalf("unexpected diagnostics %s", got)
	}

	fixed := applyFixes(t, src, diags)
	if again := lint(t, fixed, docstrings.ConventionUnset, enabled...); len(again) != 0 {
		t.Fatalf("expected no diagnostics after fixing, got %s\n%s", positions(again), fixed)
	}
}

func TestMissingDocstrings(t *testing.T) {
	src := `class Public:
    def __init__(self):
        pass

    def method(self):
        pass

    def __eq__(self, other):
        pass

    def _private(self):
        pass

    class Nested:
        pass


def function():
    def inner():
        pass


def _hidden():
    pass
`
	all := []rules.Rule{
		rules.PublicModule, rules.PublicClass, rules.PublicMethod, rules.PublicFunction,
		rules.PublicPackage, rules.MagicMethod, rules.PublicNestedClass, rules.PublicInit,
	}
	diags := lint(t, src, docstrings.ConventionUnset, all...)
	want := "D100@1:0,D101@1:6,D107@2:8,D102@5:8,D105@8:8,D106@14:10,D103@18:4"
	if got := positions(diags); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestGoldenOutput(t *testing.T) {
	src := "def f():\n    \"\"\" Hello. \"\"\"\n\n\ndef g():\n    \"\"\"Do it\"\"\"\n"
	diags := lint(t, src, docstrings.ConventionUnset, rules.NoSurroundingWhitespace, rules.EndsInPeriod)
	want := strings.Join([]string{
		`D210 m.py:2:4 No whitespaces allowed surrounding docstring text [replacement 2:7-2:15 "Hello."]`,
		`D400 m.py:6:4 First line should end with a period [insertion 6:12-6:12 "."]`,
	}, "\n")
	if got := diag.FormatGolden(diags, "m.py", true); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestGuardRecoversAndTraces(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelError)
	c := checker.New(settings.ForRules(docstrings.ConventionUnset), source.NewLocator("m.py", ""), nil, ring)

	ran := false
	guard(c, "boom", func() { panic("kaboom") })
	guard(c, "after", func() { ran = true })
	if !ran {
		t.Fatalf("expected the next check to run")
	}

	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if ev := events[0]; ev.Kind != trace.KindError || ev.Name != "pydocstyle.boom" || !strings.Contains(ev.Detail, "kaboom") {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestCheckSurvivesBrokenDefinition(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelError)
	bag := diag.NewBag(0)
	s := settings.ForRules(docstrings.ConventionUnset, rules.PublicFunction)
	c := checker.New(s, source.NewLocator("m.py", "x = 1\n"), diag.BagReporter{Bag: bag}, ring)

	// функция без Stmt: проверка наличия обязана упасть, а не весь прогон
	Check(c, &docstrings.Definition{Kind: docstrings.KindFunction})

	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d", bag.Len())
	}
	found := false
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindError && ev.Name == "pydocstyle.not_missing" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a traced failure")
	}
}

func TestImperativeMood(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "imperative", src: "def f():\n    \"\"\"Return the value.\"\"\"\n", want: 0},
		{name: "third person", src: "def f():\n    \"\"\"Returns the value.\"\"\"\n", want: 1},
		{name: "blacklisted", src: "def f():\n    \"\"\"Constructor for the thing.\"\"\"\n", want: 1},
		{name: "test function", src: "def test_f():\n    \"\"\"Returns the value.\"\"\"\n", want: 0},
		{name: "property", src: "class C:\n    @property\n    def f(self):\n        \"\"\"Returns the value.\"\"\"\n", want: 0},
		{name: "class", src: "class C:\n    \"\"\"Returns the value.\"\"\"\n", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := lint(t, tt.src, docstrings.ConventionUnset, rules.NonImperativeMood)
			if len(diags) != tt.want {
				t.Fatalf("expected %d diagnostics, got %s", tt.want, positions(diags))
			}
		})
	}
}

func TestSummaryRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		rule rules.Rule
		want int
	}{
		{name: "one liner over three lines", src: "def f():\n    \"\"\"\n    Summary.\n    \"\"\"\n", rule: rules.FitsOnOneLine, want: 1},
		{name: "summary on second line", src: "def f():\n    \"\"\"\n    Summary.\n\n    More.\n    \"\"\"\n", rule: rules.MultiLineSummaryFirstLine, want: 1},
		{name: "summary on first line", src: "def f():\n    \"\"\"Summary.\n\n    More.\n    \"\"\"\n", rule: rules.MultiLineSummarySecondLine, want: 1},
		{name: "closing quotes on text line", src: "def f():\n    \"\"\"Summary.\n\n    More.\"\"\"\n", rule: rules.NewLineAfterLastParagraph, want: 1},
		{name: "single quotes", src: "def f():\n    'Summary.'\n", rule: rules.UsesTripleQuotes, want: 1},
		{name: "backslash", src: "def f():\n    \"\"\"Match \\d.\"\"\"\n", rule: rules.UsesRPrefixForBackslashedContent, want: 1},
		{name: "raw backslash", src: "def f():\n    r\"\"\"Match \\d.\"\"\"\n", rule: rules.UsesRPrefixForBackslashedContent, want: 0},
		{name: "signature", src: "def f(x):\n    \"\"\"f(x) -> int.\"\"\"\n", rule: rules.NoSignature, want: 1},
		{name: "lowercase", src: "def f():\n    \"\"\"do it.\"\"\"\n", rule: rules.FirstLineCapitalized, want: 1},
		{name: "lowercase method", src: "class C:\n    def f(self):\n        \"\"\"do it.\"\"\"\n", rule: rules.FirstLineCapitalized, want: 0},
		{name: "this", src: "def f():\n    \"\"\"This does it.\"\"\"\n", rule: rules.NoThisPrefix, want: 1},
		{name: "empty", src: "def f():\n    \"\"\"  \"\"\"\n", rule: rules.NonEmpty, want: 1},
		{name: "overload", src: "from typing import overload\n\n\n@overload\ndef f(x: int) -> int:\n    \"\"\"Doc.\"\"\"\n", rule: rules.SkipDocstring, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := lint(t, tt.src, docstrings.ConventionUnset, tt.rule)
			if len(diags) != tt.want {
				t.Fatalf("expected %d, got %s", tt.want, positions(diags))
			}
		})
	}
}
