package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"lintcore/internal/diag"
	"lintcore/internal/fix"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

func sampleFiles() []File {
	period := *diag.New(violations.EndsInPeriod{}, rng(6, 4, 6, 15)).
		Amend(fix.Insertion(".", source.NewLocation(6, 12)))
	args := *diag.New(violations.DocumentAllArguments{Names: []string{"y"}}, rng(1, 4, 1, 5)).
		WithParent(rng(1, 0, 3, 8))
	long := *diag.New(violations.Opaque{Of: rules.LineTooLong}, rng(2, 88, 2, 95))
	return []File{
		{Path: "src/a.py", Diagnostics: []diag.Diagnostic{period, args}},
		{Path: "src/b.py", Diagnostics: []diag.Diagnostic{long}},
	}
}

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleFiles(), JSONOpts{IncludeFixes: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if out.Count != 3 || len(out.Diagnostics) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d (%d)", out.Count, len(out.Diagnostics))
	}
	if out.Fixable != 1 {
		t.Fatalf("expected 1 fixable, got %d", out.Fixable)
	}

	first := out.Diagnostics[0]
	if first.File != "src/a.py" || first.Code != "D400" || first.Message != "First line should end with a period" {
		t.Fatalf("unexpected first diagnostic: %+v", first)
	}
	if first.Range.Start != (LocationJSON{Row: 6, Column: 4}) {
		t.Fatalf("expected start 6:4, got %+v", first.Range.Start)
	}
	if first.Fix == nil {
		t.Fatalf("expected a fix")
	}
	if first.Fix.Op != "insertion" || first.Fix.Content != "." || first.Fix.Title != "Add period" {
		t.Fatalf("unexpected fix: %+v", first.Fix)
	}

	second := out.Diagnostics[1]
	if second.Parent == nil || second.Parent.End != (LocationJSON{Row: 3, Column: 8}) {
		t.Fatalf("expected parent ending at 3:8, got %+v", second.Parent)
	}
	if second.Fix != nil {
		t.Fatalf("expected no fix, got %+v", second.Fix)
	}

	if out.Diagnostics[2].Code != "E501" {
		t.Fatalf("expected E501, got %s", out.Diagnostics[2].Code)
	}
}

func TestJSONOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      JSONOpts
		count     int
		withFix   bool
		firstFile string
	}{
		{name: "defaults", opts: JSONOpts{}, count: 3, firstFile: "src/a.py"},
		{name: "max", opts: JSONOpts{Max: 2}, count: 2, firstFile: "src/a.py"},
		{name: "fixes", opts: JSONOpts{IncludeFixes: true}, count: 3, withFix: true, firstFile: "src/a.py"},
		{name: "basename", opts: JSONOpts{PathMode: PathModeBasename}, count: 3, firstFile: "a.py"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := BuildDiagnosticsOutput(sampleFiles(), tt.opts)
			if out.Count != tt.count || len(out.Diagnostics) != tt.count {
				t.Fatalf("expected %d diagnostics, got %d", tt.count, out.Count)
			}
			if got := out.Diagnostics[0].Fix != nil; got != tt.withFix {
				t.Fatalf("expected fix present=%v, got %v", tt.withFix, got)
			}
			if out.Diagnostics[0].File != tt.firstFile {
				t.Fatalf("expected file %q, got %q", tt.firstFile, out.Diagnostics[0].File)
			}
		})
	}
}

func TestJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, JSONOpts{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	list, ok := raw["diagnostics"].([]any)
	if !ok || len(list) != 0 {
		t.Fatalf("expected an empty diagnostics array, got %v", raw["diagnostics"])
	}
}
