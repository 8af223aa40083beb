package rules

import "fmt"

// Rule identifies one check in the catalog.
type Rule uint16

type entry struct {
	code   string
	name   string
	origin Origin
	source LintSource
}

// Code returns the stable code, e.g. "D403".
func (r Rule) Code() string { return r.entry().code }

// Name returns the display name, e.g. "FirstLineCapitalized".
func (r Rule) Name() string { return r.entry().name }

// Origin returns the tool family the rule comes from.
func (r Rule) Origin() Origin { return r.entry().origin }

// LintSource returns the representation the rule needs to run.
func (r Rule) LintSource() LintSource { return r.entry().source }

// Valid reports whether r is a catalog entry.
func (r Rule) Valid() bool { return int(r) < ruleCount }

func (r Rule) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rule(%d)", uint16(r))
	}
	return r.Code()
}

func (r Rule) entry() entry {
	if !r.Valid() {
		return entry{}
	}
	return registry[r]
}

// All returns every rule in catalog order.
func All() []Rule {
	out := make([]Rule, ruleCount)
	for i := range out {
		out[i] = Rule(i)
	}
	return out
}

// Count returns the catalog size.
func Count() int { return ruleCount }
