// Package checker holds the per-file context rule implementations report
// through: settings, source text, the diagnostic sink and the tracer.
package checker

import (
	"lintcore/internal/diag"
	"lintcore/internal/rules"
	"lintcore/internal/settings"
	"lintcore/internal/source"
	"lintcore/internal/trace"
)

// Checker is shared read-only by all checks of one file except for the
// reporter, which must be safe for the way the caller fans out.
type Checker struct {
	Settings *settings.Settings
	Locator  *source.Locator
	reporter diag.Reporter
	tracer   trace.Tracer
}

// New builds a Checker. A nil reporter drops diagnostics, a nil tracer is
// silent.
func New(s *settings.Settings, loc *source.Locator, r diag.Reporter, t trace.Tracer) *Checker {
	if r == nil {
		r = diag.NopReporter{}
	}
	if t == nil {
		t = trace.Nop
	}
	return &Checker{Settings: s, Locator: loc, reporter: r, tracer: t}
}

// WithReporter returns a copy of c writing to r.
func (c *Checker) WithReporter(r diag.Reporter) *Checker {
	cp := *c
	cp.reporter = r
	return &cp
}

// Enabled reports whether rule is selected for the run.
func (c *Checker) Enabled(rule rules.Rule) bool {
	return c.Settings.Enabled.Contains(rule)
}

// Patch reports whether a fix for rule should be computed at all.
func (c *Checker) Patch(rule rules.Rule) bool {
	return c.Settings.Fix && c.Settings.Fixable.Contains(rule) && c.Enabled(rule)
}

// Report hands d to the sink.
func (c *Checker) Report(d *diag.Diagnostic) {
	if d == nil {
		return
	}
	c.reporter.Report(*d)
}

// Tracer returns the run tracer.
func (c *Checker) Tracer() trace.Tracer { return c.tracer }

// Path is the file being checked.
func (c *Checker) Path() string { return c.Locator.Path() }
