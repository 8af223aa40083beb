package settings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lintcore/internal/docstrings"
	"lintcore/internal/rules"
	"lintcore/internal/trace"
)

// Settings is the resolved, read-only configuration of one run.
type Settings struct {
	Enabled            rules.RuleSet
	Fixable            rules.RuleSet
	Fix                bool
	Convention         docstrings.Convention
	PropertyDecorators []string
	Warnings           []Warning
}

// Warning is a non-fatal configuration finding.
type Warning struct {
	Key     string
	Message string
}

func (w Warning) String() string { return w.Key + ": " + w.Message }

// Default resolves an empty configuration.
func Default() *Settings {
	s, err := Resolve(context.Background(), Options{})
	if err != nil {
		panic(fmt.Sprintf("settings: default configuration does not resolve: %v", err))
	}
	return s
}

// ForRules enables exactly the given rules, all fixable, fixes on.
// Tests and embedding tools use it to bypass selectors.
func ForRules(convention docstrings.Convention, list ...rules.Rule) *Settings {
	return &Settings{
		Enabled:    rules.NewRuleSet(list...),
		Fixable:    rules.AllRules(),
		Fix:        true,
		Convention: convention,
	}
}

// Load finds the file, decodes it and resolves it.
func Load(ctx context.Context, path string) (*Settings, error) {
	opts, err := LoadOptions(path)
	if err != nil {
		return nil, err
	}
	return Resolve(ctx, opts)
}

// Resolve turns selectors into rule sets. Redirected codes and
// incompatible pairs that stay enabled become warnings, also traced at
// run scope.
func Resolve(ctx context.Context, opts Options) (*Settings, error) {
	convention, err := docstrings.ParseConvention(opts.Pydocstyle.Convention)
	if err != nil {
		return nil, fmt.Errorf("lint.pydocstyle.convention: %w", err)
	}

	var warnings []Warning
	sel := opts.Select
	if !opts.selectSet && sel == nil {
		sel = DefaultSelect
	}

	enabled, w, err := resolveSet("lint", selectorGroup{"select", sel, true},
		selectorGroup{"extend-select", opts.ExtendSelect, true},
		selectorGroup{"ignore", opts.Ignore, false})
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, w...)

	fixSel := opts.Fixable
	if fixSel == nil {
		fixSel = []string{"ALL"}
	}
	fixable, w, err := resolveSet("lint", selectorGroup{"fixable", fixSel, true},
		selectorGroup{"unfixable", opts.Unfixable, false})
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, w...)

	for _, r := range convention.Ignores() {
		enabled.Remove(r)
	}

	for _, pair := range rules.IncompatiblePairs() {
		if enabled.Contains(pair.A) && enabled.Contains(pair.B) {
			warnings = append(warnings, Warning{
				Key:     pair.A.Code() + "/" + pair.B.Code(),
				Message: pair.Message,
			})
		}
	}

	t := trace.FromContext(ctx)
	for _, w := range warnings {
		trace.Point(t, trace.ScopeRun, "settings.warning", w.String())
	}

	return &Settings{
		Enabled:            enabled,
		Fixable:            fixable,
		Fix:                opts.Fix,
		Convention:         convention,
		PropertyDecorators: append([]string(nil), opts.Pydocstyle.PropertyDecorators...),
		Warnings:           warnings,
	}, nil
}

type selectorGroup struct {
	key    string
	codes  []string
	insert bool
}

type resolvedSelector struct {
	specificity int
	insert      bool
	order       int
	set         rules.RuleSet
}

// resolveSet applies selectors from least to most specific, so "D" then
// ignore "D203" leaves D203 off, and ignore "D2" plus select "D203" leaves
// it on. At equal specificity ignore wins.
func resolveSet(table string, groups ...selectorGroup) (rules.RuleSet, []Warning, error) {
	var (
		resolved []resolvedSelector
		warnings []Warning
	)
	for _, g := range groups {
		for _, code := range g.codes {
			code = strings.TrimSpace(code)
			set, err := rules.Select(code)
			if err != nil {
				return rules.RuleSet{}, nil, fmt.Errorf("%s.%s: %w", table, g.key, err)
			}
			if target, ok := rules.Redirect(code); ok {
				warnings = append(warnings, Warning{
					Key:     table + "." + g.key,
					Message: fmt.Sprintf("`%s` has been remapped to `%s`", code, target.Code()),
				})
			}
			resolved = append(resolved, resolvedSelector{
				specificity: specificity(code),
				insert:      g.insert,
				order:       len(resolved),
				set:         set,
			})
		}
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		a, b := resolved[i], resolved[j]
		if a.specificity != b.specificity {
			return a.specificity < b.specificity
		}
		if a.insert != b.insert {
			return a.insert
		}
		return a.order < b.order
	})

	var out rules.RuleSet
	for _, r := range resolved {
		if r.insert {
			out = out.Union(r.set)
		} else {
			out = out.Subtract(r.set)
		}
	}
	return out, warnings, nil
}

func specificity(code string) int {
	if code == "ALL" {
		return 0
	}
	return len(code)
}
