package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	parse := timer.Begin(PhaseParse)
	time.Sleep(time.Millisecond)
	timer.End(parse, "3 definitions")
	check := timer.Begin(PhaseCheck)
	timer.End(check, "")
	timer.End(42, "ignored")

	r := timer.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].Name != PhaseParse || r.Phases[0].Note != "3 definitions" {
		t.Fatalf("unexpected first phase %+v", r.Phases[0])
	}
	if r.Phases[0].DurationMS < 1 {
		t.Fatalf("expected at least 1ms, got %f", r.Phases[0].DurationMS)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Fatalf("expected total %f to cover the phases", r.TotalMS)
	}
}

func TestNilTimerReport(t *testing.T) {
	var timer *Timer
	if r := timer.Report(); r.TotalMS != 0 || len(r.Phases) != 0 {
		t.Fatalf("expected an empty report, got %+v", r)
	}
}

func TestReportAdd(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "parse", DurationMS: 1, Note: "a"}, {Name: "check", DurationMS: 2}}}
	b := Report{TotalMS: 5, Phases: []PhaseReport{{Name: "load", DurationMS: 1}, {Name: "parse", DurationMS: 4}}}

	var total Report
	total.Add(a)
	total.Add(b)

	if total.TotalMS != 8 {
		t.Fatalf("expected total 8, got %f", total.TotalMS)
	}
	want := []PhaseReport{{Name: "parse", DurationMS: 5}, {Name: "check", DurationMS: 2}, {Name: "load", DurationMS: 1}}
	if len(total.Phases) != len(want) {
		t.Fatalf("expected %d phases, got %+v", len(want), total.Phases)
	}
	for i := range want {
		if total.Phases[i] != want[i] {
			t.Fatalf("phase %d: expected %+v, got %+v", i, want[i], total.Phases[i])
		}
	}
}

func TestSummary(t *testing.T) {
	r := Report{TotalMS: 1.5, Phases: []PhaseReport{{Name: "parse", DurationMS: 1.5, Note: "2 definitions"}}}
	out := r.Summary()
	if !strings.Contains(out, "parse") || !strings.Contains(out, "1.50 ms  // 2 definitions") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if !strings.HasSuffix(out, "  total            1.50 ms\n") {
		t.Fatalf("unexpected total line:\n%s", out)
	}
}
