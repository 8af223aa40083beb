package rules

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCode matches every *UnknownCodeError via errors.Is.
var ErrUnknownCode = errors.New("unknown rule code")

// UnknownCodeError reports a code or selector that names no rule.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCode, e.Code)
}

func (e *UnknownCodeError) Is(target error) bool {
	return target == ErrUnknownCode
}

type redirect struct {
	from string
	to   Rule
}

// IncompatiblePair names two rules that contradict each other.
type IncompatiblePair struct {
	A, B    Rule
	Message string
}

var (
	codeIndex     map[string]Rule
	redirectIndex map[string]Rule
)

func init() {
	codeIndex = make(map[string]Rule, ruleCount)
	for i := range ruleCount {
		codeIndex[registry[i].code] = Rule(i)
	}
	redirectIndex = make(map[string]Rule, len(redirects))
	for _, rd := range redirects {
		redirectIndex[rd.from] = rd.to
	}
}

// FromCode returns the rule for code, following deprecated-code redirects.
func FromCode(code string) (Rule, error) {
	if r, ok := codeIndex[code]; ok {
		return r, nil
	}
	if r, ok := redirectIndex[code]; ok {
		return r, nil
	}
	return 0, &UnknownCodeError{Code: code}
}

// Redirect reports the replacement rule for a deprecated code.
func Redirect(code string) (Rule, bool) {
	r, ok := redirectIndex[code]
	return r, ok
}

// Redirects returns the deprecated codes and their targets.
func Redirects() map[string]Rule {
	out := make(map[string]Rule, len(redirectIndex))
	for k, v := range redirectIndex {
		out[k] = v
	}
	return out
}

// IncompatiblePairs returns the static incompatible-rule table.
func IncompatiblePairs() []IncompatiblePair {
	return append([]IncompatiblePair(nil), incompatible...)
}

// Select resolves a selector to the rules it names. A selector is "ALL",
// an exact code, a deprecated code, or a prefix of one or more codes.
// Deprecated prefixes ("U0") select their redirect targets. A prefix only
// matches rules of the origin that owns it, so "D" does not pull in "DTZ".
func Select(selector string) (RuleSet, error) {
	selector = strings.TrimSpace(selector)
	if selector == "ALL" {
		return AllRules(), nil
	}
	if r, err := FromCode(selector); err == nil {
		return NewRuleSet(r), nil
	}

	var set RuleSet
	if selector != "" {
		owner, owned := OriginFromCode(selector)
		for i := range ruleCount {
			e := registry[i]
			if strings.HasPrefix(e.code, selector) && (!owned || e.origin == owner) {
				set.Insert(Rule(i))
			}
		}
		for _, rd := range redirects {
			if strings.HasPrefix(rd.from, selector) {
				set.Insert(rd.to)
			}
		}
	}
	if set.Empty() {
		return set, &UnknownCodeError{Code: selector}
	}
	return set, nil
}
