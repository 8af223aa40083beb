package rules

import (
	"errors"
	"strings"
	"testing"
)

func TestFromCodeRoundTrip(t *testing.T) {
	for _, r := range All() {
		got, err := FromCode(r.Code())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", r.Code(), err)
		}
		if got != r {
			t.Fatalf("expected %s, got %s", r.Code(), got.Code())
		}
	}
}

func TestRegistryHasNoEmptyEntries(t *testing.T) {
	seen := make(map[string]bool, Count())
	for _, r := range All() {
		if r.Code() == "" || r.Name() == "" {
			t.Fatalf("rule %d has an empty entry", uint16(r))
		}
		if seen[r.Name()] {
			t.Fatalf("duplicate rule name %s", r.Name())
		}
		seen[r.Name()] = true
	}
}

func TestEveryCodeStartsWithAnOriginPrefix(t *testing.T) {
	for _, r := range All() {
		ok := false
		for _, p := range r.Origin().Prefixes() {
			if strings.HasPrefix(r.Code(), p.Code) {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("%s does not start with any prefix of %s", r.Code(), r.Origin())
		}
	}
}

func TestOriginPrefixesResolveBack(t *testing.T) {
	for _, o := range Origins() {
		for _, p := range o.Prefixes() {
			got, ok := OriginFromCode(p.Code)
			if !ok || got != o {
				t.Fatalf("expected prefix %s to resolve to %s, got %s", p.Code, o, got)
			}
		}
	}
}

func TestUnknownCode(t *testing.T) {
	_, err := FromCode("X999")
	if err == nil {
		t.Fatal("expected error for unknown code")
	}
	if !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("expected ErrUnknownCode, got %v", err)
	}
	var uerr *UnknownCodeError
	if !errors.As(err, &uerr) || uerr.Code != "X999" {
		t.Fatalf("expected UnknownCodeError for X999, got %v", err)
	}
}

func TestRedirects(t *testing.T) {
	for code, target := range Redirects() {
		if _, live := codeIndex[code]; live {
			t.Fatalf("redirect %s shadows a live code", code)
		}
		if !target.Valid() {
			t.Fatalf("redirect %s points at an invalid rule", code)
		}
		got, err := FromCode(code)
		if err != nil || got != target {
			t.Fatalf("expected %s to resolve to %s, got %s (%v)", code, target, got, err)
		}
	}

	got, ok := Redirect("M001")
	if !ok || got != UnusedNOQA {
		t.Fatalf("expected M001 -> RUF100, got %s", got)
	}
	if _, ok := Redirect("D100"); ok {
		t.Fatal("expected live code not to be a redirect")
	}
}

func TestLintSources(t *testing.T) {
	tests := []struct {
		rule Rule
		want LintSource
	}{
		{rule: LineTooLong, want: SourceLines},
		{rule: IOError, want: SourceIo},
		{rule: InvalidEscapeSequence, want: SourceTokens},
		{rule: UnsortedImports, want: SourceImports},
		{rule: UnusedNOQA, want: SourceNoQa},
		{rule: ImplicitNamespacePackage, want: SourceFilesystem},
		{rule: FirstLineCapitalized, want: SourceAst},
	}
	for _, tt := range tests {
		t.Run(tt.rule.Code(), func(t *testing.T) {
			if got := tt.rule.LintSource(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		contains []Rule
		excludes []Rule
		size     int
	}{
		{name: "exact", selector: "D403", contains: []Rule{FirstLineCapitalized}, size: 1},
		{name: "redirect", selector: "U001", contains: []Rule{UselessMetaclassType}, size: 1},
		{name: "prefix", selector: "D2", contains: []Rule{FitsOnOneLine, SectionUnderlineNotOverIndented}, excludes: []Rule{EndsInPeriod, UsesTripleQuotes}},
		{name: "origin prefix", selector: "D", contains: []Rule{PublicModule, NonEmpty}, excludes: []Rule{CallDatetimeWithoutTzinfo}},
		{name: "all", selector: "ALL", size: Count()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Select(tt.selector)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, r := range tt.contains {
				if !set.Contains(r) {
					t.Fatalf("expected %s in selection", r)
				}
			}
			for _, r := range tt.excludes {
				if set.Contains(r) {
					t.Fatalf("expected %s not in selection", r)
				}
			}
			if tt.size != 0 && set.Len() != tt.size {
				t.Fatalf("expected %d rules, got %d", tt.size, set.Len())
			}
		})
	}

	if _, err := Select("ZZZ"); !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("expected ErrUnknownCode, got %v", err)
	}
}

func TestRuleSet(t *testing.T) {
	s := NewRuleSet(PublicModule, NonEmpty)
	s.Insert(PublicModule)
	if s.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", s.Len())
	}
	s.Remove(PublicModule)
	if s.Contains(PublicModule) || !s.Contains(NonEmpty) {
		t.Fatalf("unexpected members %v", s.Rules())
	}
	u := s.Union(NewRuleSet(PublicClass))
	if got := u.Rules(); len(got) != 2 || got[0] != PublicClass || got[1] != NonEmpty {
		t.Fatalf("expected [D101 D419], got %v", got)
	}
	if all := AllRules(); all.Len() != Count() {
		t.Fatalf("expected %d rules, got %d", Count(), all.Len())
	}
	if d := AllRules().Subtract(AllRules()); !d.Empty() {
		t.Fatalf("expected empty difference, got %d", d.Len())
	}
}

func TestIncompatiblePairs(t *testing.T) {
	pairs := IncompatiblePairs()
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].A != OneBlankLineBeforeClass || pairs[0].B != NoBlankLineBeforeClass {
		t.Fatalf("unexpected pair %s/%s", pairs[0].A, pairs[0].B)
	}
}
