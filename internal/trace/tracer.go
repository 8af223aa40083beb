package trace

import (
	"context"
	"sync/atomic"
)

// Tracer receives events. Implementations must be safe for concurrent use:
// the driver checks files and definitions in parallel.
type Tracer interface {
	Emit(ev *Event)
	Level() Level
}

type nopTracer struct{}

func (nopTracer) Emit(*Event)  {}
func (nopTracer) Level() Level { return LevelOff }

// Nop discards everything.
var Nop Tracer = nopTracer{}

func enabled(t Tracer) bool {
	return t != nil && t.Level() > LevelOff
}

var seq atomic.Uint64

func nextSeq() uint64 { return seq.Add(1) }

type tracerKey struct{}

type parentKey struct{}

// FromContext returns the context's tracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx; a nil t means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// WithParent makes span the parent of spans begun under the returned
// context. A span that was filtered out by the level leaves ctx unchanged.
func WithParent(ctx context.Context, span *Span) context.Context {
	if span.ID() == 0 {
		return ctx
	}
	return context.WithValue(ctx, parentKey{}, span.ID())
}

// ParentID returns the span id recorded by WithParent, or 0.
func ParentID(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(parentKey{}).(uint64)
	return id
}
