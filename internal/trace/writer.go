package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Format is the encoding of a written event.
type Format uint8

const (
	FormatText Format = iota
	FormatNDJSON
)

// ParseFormat accepts text|ndjson.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "ndjson", "jsonl":
		return FormatNDJSON, nil
	}
	return FormatText, fmt.Errorf("invalid trace format: %q (expected: text|ndjson)", s)
}

// WriterTracer writes each event to w as soon as it arrives.
type WriterTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
}

func NewWriter(w io.Writer, level Level, format Format) *WriterTracer {
	return &WriterTracer{w: w, level: level, format: format}
}

func (t *WriterTracer) Emit(ev *Event) {
	if !t.level.Allows(ev.Kind, ev.Scope) {
		return
	}
	data := encode(ev, t.format)
	t.mu.Lock()
	// ошибка записи трассы не должна ронять проверку
	_, _ = t.w.Write(data)
	t.mu.Unlock()
}

func (t *WriterTracer) Level() Level { return t.level }

type jsonEvent struct {
	Time      string `json:"time"`
	Seq       uint64 `json:"seq"`
	Kind      string `json:"kind"`
	Scope     string `json:"scope"`
	SpanID    uint64 `json:"span_id,omitempty"`
	ParentID  uint64 `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	Detail    string `json:"detail,omitempty"`
	Attrs     []Attr `json:"attrs,omitempty"`
	ElapsedUS int64  `json:"elapsed_us,omitempty"`
}

func encode(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		data, _ := json.Marshal(jsonEvent{
			Time:      ev.Time.Format(time.RFC3339Nano),
			Seq:       ev.Seq,
			Kind:      ev.Kind.String(),
			Scope:     ev.Scope.String(),
			SpanID:    ev.SpanID,
			ParentID:  ev.ParentID,
			Name:      ev.Name,
			Detail:    ev.Detail,
			Attrs:     ev.Attrs,
			ElapsedUS: ev.Elapsed.Microseconds(),
		})
		return append(data, '\n')
	}

	// 15:04:05.000 file       end   file:m.py 1.2ms (3 diagnostics) definitions=3
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %-10s %-9s %s", ev.Time.Format("15:04:05.000"), ev.Scope, ev.Kind, ev.Name)
	if ev.Kind == KindEnd {
		fmt.Fprintf(&sb, " %s", ev.Elapsed.Round(time.Microsecond))
	}
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	for _, a := range ev.Attrs {
		fmt.Fprintf(&sb, " %s=%s", a.Key, a.Value)
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
