package rules

import "strings"

// Origin is the upstream tool a rule family was ported from.
type Origin uint8

// Prefix is one code prefix owned by an origin. Label is set only for
// origins that own several prefixes (pycodestyle "E" is "Error").
type Prefix struct {
	Code  string
	Label string
}

type originEntry struct {
	name     string
	title    string
	prefixes []Prefix
}

// Name returns the identifier-style name, e.g. "Pydocstyle".
func (o Origin) Name() string { return o.entry().name }

// Title returns the upstream tool name, e.g. "pydocstyle".
func (o Origin) Title() string { return o.entry().title }

// Prefixes returns the code prefixes owned by o.
func (o Origin) Prefixes() []Prefix { return o.entry().prefixes }

func (o Origin) String() string { return o.Name() }

func (o Origin) entry() originEntry {
	if int(o) >= originCount {
		return originEntry{}
	}
	return origins[o]
}

// Origins returns every origin in catalog order.
func Origins() []Origin {
	out := make([]Origin, originCount)
	for i := range out {
		out[i] = Origin(i)
	}
	return out
}

// OriginFromCode returns the origin owning the longest prefix of code.
func OriginFromCode(code string) (Origin, bool) {
	best, bestLen := Origin(0), 0
	for i := range originCount {
		for _, p := range origins[i].prefixes {
			if len(p.Code) > bestLen && strings.HasPrefix(code, p.Code) {
				best, bestLen = Origin(i), len(p.Code)
			}
		}
	}
	return best, bestLen > 0
}
