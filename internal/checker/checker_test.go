package checker

import (
	"testing"

	"lintcore/internal/diag"
	"lintcore/internal/rules"
	"lintcore/internal/settings"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

func TestPatchNeedsFixFixableAndEnabled(t *testing.T) {
	base := settings.ForRules(0, rules.EndsInPeriod)
	tests := []struct {
		name   string
		mutate func(s *settings.Settings)
		rule   rules.Rule
		want   bool
	}{
		{name: "all set", mutate: func(*settings.Settings) {}, rule: rules.EndsInPeriod, want: true},
		{name: "fix off", mutate: func(s *settings.Settings) { s.Fix = false }, rule: rules.EndsInPeriod, want: false},
		{name: "unfixable", mutate: func(s *settings.Settings) { s.Fixable.Remove(rules.EndsInPeriod) }, rule: rules.EndsInPeriod, want: false},
		{name: "disabled", mutate: func(*settings.Settings) {}, rule: rules.EndsInPunctuation, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := *base
			tt.mutate(&s)
			c := New(&s, source.NewLocator("m.py", ""), nil, nil)
			if got := c.Patch(tt.rule); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestReportGoesToBag(t *testing.T) {
	bag := diag.NewBag(0)
	c := New(settings.ForRules(0), source.NewLocator("m.py", "x\n"), nil, nil)
	c = c.WithReporter(diag.BagReporter{Bag: bag})
	c.Report(diag.New(violations.PublicModule{}, source.Range{}))
	c.Report(nil)
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	if c.Path() != "m.py" {
		t.Fatalf("expected path m.py, got %s", c.Path())
	}
}
