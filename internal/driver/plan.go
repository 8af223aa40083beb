// Package driver runs the enabled rules over source text. It decides which
// representations of a file the selected rules need, builds only those and
// fans the per-definition checks out over a bounded worker group.
package driver

import (
	"strings"

	"lintcore/internal/rules"
	"lintcore/internal/settings"
)

// Plan groups the enabled rules by the representation they inspect.
type Plan struct {
	bySource map[rules.LintSource][]rules.Rule
}

// NewPlan builds the plan for s.
func NewPlan(s *settings.Settings) Plan {
	p := Plan{bySource: make(map[rules.LintSource][]rules.Rule)}
	for _, r := range s.Enabled.Rules() {
		src := r.LintSource()
		p.bySource[src] = append(p.bySource[src], r)
	}
	return p
}

// Needs reports whether any enabled rule reads src.
func (p Plan) Needs(src rules.LintSource) bool {
	return len(p.bySource[src]) > 0
}

// Rules returns the enabled rules reading src, in registry order.
func (p Plan) Rules(src rules.LintSource) []rules.Rule {
	return p.bySource[src]
}

// Sources lists the needed representations in declaration order.
func (p Plan) Sources() []rules.LintSource {
	var out []rules.LintSource
	for _, src := range rules.LintSources() {
		if p.Needs(src) {
			out = append(out, src)
		}
	}
	return out
}

func (p Plan) String() string {
	parts := make([]string, 0, len(p.bySource))
	for _, src := range p.Sources() {
		parts = append(parts, src.String())
	}
	if len(parts) == 0 {
		return "plan(empty)"
	}
	return "plan(" + strings.Join(parts, ",") + ")"
}
