package fix

import (
	"errors"
	"sort"
	"strings"

	"lintcore/internal/diag"
	"lintcore/internal/rules"
	"lintcore/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Rule  rules.Rule
	Title string
	Range source.Range
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Rule   rules.Rule
	Title  string
	Reason string
}

// Result aggregates the rewritten text and what happened to every fix.
type Result struct {
	Text    string
	Applied []AppliedFix
	Skipped []SkippedFix
}

type candidate struct {
	diag  *diag.Diagnostic
	start int
	end   int
	order int
}

// Apply applies the fixes carried by diagnostics to the text behind loc and
// returns the new text. Fixes are taken in source order; a fix overlapping
// one already applied is skipped and reported. Nothing is written to disk.
func Apply(loc *source.Locator, diagnostics []diag.Diagnostic) (*Result, error) {
	result := &Result{
		Text:    loc.Contents(),
		Applied: make([]AppliedFix, 0),
		Skipped: make([]SkippedFix, 0),
	}

	candidates, skips := gatherCandidates(loc, diagnostics)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	text := loc.Contents()
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	applied := make([]candidate, 0, len(candidates))
	for _, cand := range candidates {
		if conflictsWithExisting(applied, cand) {
			result.Skipped = append(result.Skipped, SkippedFix{
				Rule:   cand.diag.Rule(),
				Title:  cand.diag.FixTitle(),
				Reason: "conflicts with previously applied fix",
			})
			continue
		}
		b.WriteString(text[last:cand.start])
		b.WriteString(cand.diag.Fix.Content)
		last = cand.end
		applied = append(applied, cand)
		result.Applied = append(result.Applied, AppliedFix{
			Rule:  cand.diag.Rule(),
			Title: cand.diag.FixTitle(),
			Range: cand.diag.Fix.Range(),
		})
	}
	b.WriteString(text[last:])
	result.Text = b.String()

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// gatherCandidates resolves every fix to byte offsets. Each candidate gets a
// monotonically increasing order so sorting stays deterministic.
func gatherCandidates(loc *source.Locator, diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	cands := make([]candidate, 0)
	skips := make([]SkippedFix, 0)

	for i := range diagnostics {
		d := &diagnostics[i]
		if d.Fix == nil {
			continue
		}
		start, end := loc.Offset(d.Fix.Location), loc.Offset(d.Fix.EndLocation)
		if end < start {
			skips = append(skips, SkippedFix{
				Rule:   d.Rule(),
				Title:  d.FixTitle(),
				Reason: "edit span out of range",
			})
			continue
		}
		cands = append(cands, candidate{diag: d, start: start, end: end, order: len(cands)})
	}
	return cands, skips
}

// sortCandidates orders by span start, span end, insertion order, then rule code.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.start != cj.start {
			return ci.start < cj.start
		}
		if ci.end != cj.end {
			return ci.end < cj.end
		}
		if ci.order != cj.order {
			return ci.order < cj.order
		}
		return ci.diag.Rule().Code() < cj.diag.Rule().Code()
	})
}

func conflictsWithExisting(existing []candidate, cand candidate) bool {
	for _, prev := range existing {
		if spansConflict(prev, cand) {
			return true
		}
	}
	// текст собирается последовательно: start не может быть левее конца предыдущей правки
	return len(existing) > 0 && cand.start < existing[len(existing)-1].end
}

// spansConflict reports whether two edits' spans overlap.
// Spans are treated as half-open intervals [start, end). Two zero-length edits
// never conflict. A zero-length edit conflicts with a non-zero span if its
// position is within that span (start <= pos < end). For two non-zero spans,
// any overlap yields a conflict.
func spansConflict(a, b candidate) bool {
	if a.start == a.end && b.start == b.end {
		return false
	}
	if a.start == a.end {
		return b.start <= a.start && a.start < b.end
	}
	if b.start == b.end {
		return a.start <= b.start && b.start < a.end
	}
	return a.start < b.end && b.start < a.end
}
