// Package violations holds the diagnostic payloads. Each type is named after
// the rule it reports and carries only what its message needs.
package violations

import "lintcore/internal/rules"

// Opaque stands in for rules whose checks live outside this module. Its
// message is the rule name.
type Opaque struct {
	Of rules.Rule
}

func (v Opaque) Rule() rules.Rule { return v.Of }
func (v Opaque) Message() string  { return v.Of.Name() }
