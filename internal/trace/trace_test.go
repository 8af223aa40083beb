package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLevelAllows(t *testing.T) {
	tests := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{level: LevelOff, kind: KindError, scope: ScopeCheck, want: false},
		{level: LevelError, kind: KindError, scope: ScopeCheck, want: true},
		{level: LevelError, kind: KindBegin, scope: ScopeRun, want: false},
		{level: LevelPhase, kind: KindBegin, scope: ScopeRun, want: true},
		{level: LevelPhase, kind: KindBegin, scope: ScopeFile, want: false},
		{level: LevelPhase, kind: KindHeartbeat, scope: ScopeRun, want: true},
		{level: LevelDetail, kind: KindPoint, scope: ScopeFile, want: true},
		{level: LevelDetail, kind: KindPoint, scope: ScopeDefinition, want: false},
		{level: LevelDebug, kind: KindPoint, scope: ScopeCheck, want: true},
		{level: Level(9), kind: KindPoint, scope: ScopeRun, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.level.String()+"/"+tt.kind.String()+"/"+tt.scope.String(), func(t *testing.T) {
			if got := tt.level.Allows(tt.kind, tt.scope); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRingKeepsOnlyErrorsAtErrorLevel(t *testing.T) {
	ring := NewRingTracer(8, LevelError)
	span := Begin(ring, ScopeDefinition, "def:f", 0)
	Error(ring, ScopeCheck, "pydocstyle.D205", "boom")
	span.End("")

	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("expected only the error event, got %d", len(events))
	}
	if events[0].Kind != KindError || events[0].Detail != "boom" {
		t.Fatalf("unexpected event %+v", events[0])
	}
	if span.ID() != 0 {
		t.Fatalf("expected a filtered span to have no id, got %d", span.ID())
	}
}

func TestRingWrapsAround(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(ring, ScopeCheck, name, "")
	}
	events := ring.Snapshot()
	if len(events) != 2 || events[0].Name != "b" || events[1].Name != "c" {
		t.Fatalf("expected [b c], got %+v", events)
	}
}

func TestSpanEndCarriesAttrs(t *testing.T) {
	ring := NewRingTracer(8, LevelDetail)
	run := Begin(ring, ScopeRun, "run", 0)
	file := Begin(ring, ScopeFile, "file:m.py", run.ID()).Attr("definitions", "3").Attr("diagnostics", "1")
	file.End("done")
	run.End("")

	events := ring.Snapshot()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	end := events[2]
	if end.Kind != KindEnd || end.ParentID != run.ID() || end.Detail != "done" {
		t.Fatalf("unexpected end event %+v", end)
	}
	if end.Attr("definitions") != "3" || end.Attrs[1].Key != "diagnostics" {
		t.Fatalf("expected ordered attrs, got %+v", end.Attrs)
	}
	if end.Attr("missing") != "" {
		t.Fatalf("expected empty value for an unknown key")
	}
}

func TestWriterNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewWriter(&buf, LevelDetail, FormatNDJSON)
	Begin(tr, ScopeFile, "file:m.py", 0).Attr("definitions", "3").End("done")
	Point(tr, ScopeDefinition, "filtered", "")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	var end jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end.Kind != "end" || end.Scope != "file" || end.Detail != "done" {
		t.Fatalf("unexpected end event %+v", end)
	}
	if len(end.Attrs) != 1 || end.Attrs[0] != (Attr{Key: "definitions", Value: "3"}) {
		t.Fatalf("unexpected attrs %+v", end.Attrs)
	}
}

func TestWriterText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewWriter(&buf, LevelError, FormatText)
	Error(tr, ScopeCheck, "pydocstyle.D400", "m.py: index out of range")

	line := buf.String()
	if !strings.HasSuffix(line, "check      error     pydocstyle.D400 (m.py: index out of range)\n") {
		t.Fatalf("unexpected text line %q", line)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop without a tracer")
	}
	ring := NewRingTracer(4, LevelPhase)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Fatal("expected the attached tracer")
	}

	run := Begin(ring, ScopeRun, "run", 0)
	if got := ParentID(WithParent(ctx, run)); got != run.ID() {
		t.Fatalf("expected parent %d, got %d", run.ID(), got)
	}
	filtered := Begin(ring, ScopeFile, "file:m.py", run.ID())
	if got := ParentID(WithParent(WithParent(ctx, run), filtered)); got != run.ID() {
		t.Fatalf("expected a filtered span to keep the outer parent, got %d", got)
	}
}

func TestHeartbeat(t *testing.T) {
	if hb := StartHeartbeat(Nop, time.Millisecond); hb != nil {
		t.Fatal("expected no heartbeat with tracing off")
	}
	ring := NewRingTracer(64, LevelPhase)
	hb := StartHeartbeat(ring, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(ring.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	hb.Stop()
	hb.Stop()

	events := ring.Snapshot()
	if len(events) == 0 || events[0].Kind != KindHeartbeat || events[0].Detail != "#1" {
		t.Fatalf("expected a first heartbeat, got %+v", events)
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("DETAIL"); err != nil || lvl != LevelDetail {
		t.Fatalf("expected detail, got %v (%v)", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if f, err := ParseFormat("jsonl"); err != nil || f != FormatNDJSON {
		t.Fatalf("expected ndjson, got %v (%v)", f, err)
	}
}
