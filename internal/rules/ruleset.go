package rules

import "math/bits"

const wordBits = 64

// RuleSet is a fixed-size bitset over the catalog. The zero value is empty.
type RuleSet struct {
	words [(ruleCount + wordBits - 1) / wordBits]uint64
}

// NewRuleSet builds a set from rules.
func NewRuleSet(rs ...Rule) RuleSet {
	var s RuleSet
	for _, r := range rs {
		s.Insert(r)
	}
	return s
}

// AllRules returns the set of every catalog rule.
func AllRules() RuleSet {
	var s RuleSet
	for i := range ruleCount {
		s.Insert(Rule(i))
	}
	return s
}

// Insert adds r. Invalid rules are ignored.
func (s *RuleSet) Insert(r Rule) {
	if r.Valid() {
		s.words[r/wordBits] |= 1 << (r % wordBits)
	}
}

// Remove drops r.
func (s *RuleSet) Remove(r Rule) {
	if r.Valid() {
		s.words[r/wordBits] &^= 1 << (r % wordBits)
	}
}

// Contains reports whether r is in the set.
func (s RuleSet) Contains(r Rule) bool {
	return r.Valid() && s.words[r/wordBits]&(1<<(r%wordBits)) != 0
}

// Union returns s ∪ other.
func (s RuleSet) Union(other RuleSet) RuleSet {
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
	return s
}

// Subtract returns s without the members of other.
func (s RuleSet) Subtract(other RuleSet) RuleSet {
	for i := range s.words {
		s.words[i] &^= other.words[i]
	}
	return s
}

// Len returns the number of members.
func (s RuleSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether the set has no members.
func (s RuleSet) Empty() bool { return s.Len() == 0 }

// Rules returns the members in catalog order.
func (s RuleSet) Rules() []Rule {
	out := make([]Rule, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			out = append(out, Rule(i*wordBits+bit))
			w &^= 1 << bit
		}
	}
	return out
}
