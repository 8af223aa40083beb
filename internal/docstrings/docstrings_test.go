package docstrings

import (
	"slices"
	"testing"

	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/syntax"
)

func TestExtract(t *testing.T) {
	text := "def f():\n    r'''Doc.'''\n"
	loc := source.NewLocator("m.py", text)
	expr := syntax.Expr{Range: source.NewRange(source.NewLocation(2, 4), source.NewLocation(2, 15))}
	def := &Definition{Kind: KindFunction, Docstring: &expr}

	doc, ok := Extract(loc, def)
	if !ok {
		t.Fatal("expected docstring")
	}
	if doc.Contents != "r'''Doc.'''" {
		t.Fatalf("unexpected contents: %q", doc.Contents)
	}
	if doc.Body != "Doc." {
		t.Fatalf("expected body %q, got %q", "Doc.", doc.Body)
	}
	if doc.Indentation != "    " {
		t.Fatalf("expected 4-space indentation, got %q", doc.Indentation)
	}
	if doc.Kind() != KindFunction {
		t.Fatalf("expected function kind, got %s", doc.Kind())
	}
}

func TestExtractWithoutDocstring(t *testing.T) {
	loc := source.NewLocator("m.py", "x = 1\n")
	if _, ok := Extract(loc, &Definition{Kind: KindModule}); ok {
		t.Fatal("expected no docstring")
	}
}

func TestRawContents(t *testing.T) {
	tests := []struct {
		in, want string
		ok       bool
	}{
		{in: `"""a"""`, want: "a", ok: true},
		{in: `U'''b'''`, want: "b", ok: true},
		{in: `"c"`, want: "c", ok: true},
		{in: `r'd'`, want: "d", ok: true},
		{in: `b"x"`, ok: false},
	}
	for _, tt := range tests {
		got, ok := RawContents(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("%s: expected (%q, %v), got (%q, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
	if q, _ := LeadingQuote(`u"""x"""`); q != `u"""` {
		t.Fatalf("expected triple prefix, got %q", q)
	}
}

func TestLogicalLine(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
		ok   bool
	}{
		{name: "single", body: "Summary.", want: 0, ok: true},
		{name: "wrapped summary", body: "Summary that\n    wraps.\n\n    Body.", want: 1, ok: true},
		{name: "leading blank", body: "\n    Summary.\n", want: 1, ok: true},
		{name: "empty", body: "   ", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LogicalLine(tt.body)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestConventionIgnores(t *testing.T) {
	if got := ConventionNumpy.Ignores(); !slices.Contains(got, rules.DocumentAllArguments) {
		t.Fatalf("numpy must ignore D417, got %v", got)
	}
	if got := ConventionGoogle.Ignores(); slices.Contains(got, rules.DocumentAllArguments) {
		t.Fatal("google must keep D417")
	}
	if len(ConventionUnset.Ignores()) != 0 {
		t.Fatal("unset convention ignores nothing")
	}
	if _, err := ParseConvention("javadoc"); err == nil {
		t.Fatal("expected error for unknown convention")
	}
	if c, err := ParseConvention("NumPy"); err != nil || c != ConventionNumpy {
		t.Fatalf("expected numpy, got %v (%v)", c, err)
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"returns":      "Returns",
		"see also":     "See Also",
		"PARAMETERS":   "Parameters",
		"keyword args": "Keyword Args",
	}
	for in, want := range tests {
		if got := TitleCase(in); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestLeadingWords(t *testing.T) {
	if got := LeadingWords("    See Also: stuff"); got != "See Also" {
		t.Fatalf("expected %q, got %q", "See Also", got)
	}
	if got := LeadingWords("Returns"); got != "Returns" {
		t.Fatalf("expected %q, got %q", "Returns", got)
	}
	if got := LeadingWords("  extra_args (list): more"); got != "extra_args " {
		t.Fatalf("expected %q, got %q", "extra_args ", got)
	}
}

func TestSectionContextsSplitsFollowingLines(t *testing.T) {
	lines := []string{
		"Summary.",
		"",
		"Args:",
		"    x: the x.",
		"",
		"Returns:",
		"    Nothing.",
		"",
	}
	got := SectionContexts(lines, StyleGoogle)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	if got[0].SectionName != "Args" || got[0].IsLastSection {
		t.Fatalf("unexpected first section: %+v", got[0])
	}
	if !slices.Equal(got[0].FollowingLines, []string{"    x: the x.", ""}) {
		t.Fatalf("unexpected first body: %q", got[0].FollowingLines)
	}
	if got[1].SectionName != "Returns" || !got[1].IsLastSection || got[1].OriginalIndex != 5 {
		t.Fatalf("unexpected last section: %+v", got[1])
	}
}

func TestSectionNeedsParagraphBreak(t *testing.T) {
	lines := []string{"Summary.", "it returns", "Returns:", "    x"}
	if got := SectionContexts(lines, StyleGoogle); len(got) != 0 {
		t.Fatalf("expected no sections after running text, got %d", len(got))
	}
	lines = []string{"Summary.", "Returns: the thing"}
	if got := SectionContexts(lines, StyleGoogle); len(got) != 0 {
		t.Fatalf("expected header with trailing text to be rejected, got %d", len(got))
	}
}

func TestDetectSectionsExclusivity(t *testing.T) {
	google := []string{"Summary.", "", "Args:", "    x: value.", "", "Returns:", "    y.", ""}
	style, got := DetectSections(google, ConventionUnset)
	if style != StyleGoogle {
		t.Fatalf("expected google style, got %s", style)
	}
	if len(got) == 0 {
		t.Fatal("expected google sections")
	}

	numpy := []string{"Summary.", "", "Parameters", "----------", "x : int", ""}
	style, got = DetectSections(numpy, ConventionPep257)
	if style != StyleNumpy || len(got) != 1 || got[0].SectionName != "Parameters" {
		t.Fatalf("expected one numpy section, got %s %+v", style, got)
	}

	style, _ = DetectSections(numpy, ConventionGoogle)
	if style != StyleGoogle {
		t.Fatalf("fixed convention must win, got %s", style)
	}
}
