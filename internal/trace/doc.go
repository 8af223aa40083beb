// Package trace is the logging layer of a lint run. Components never print;
// they emit events to the Tracer found in the context, and the embedding
// tool decides where the events go.
//
// Events nest as run → file → definition → check. A Level picks how deep
// the output goes:
//
//	off     nothing
//	error   recovered sub-check failures only
//	phase   the run span, settings warnings
//	detail  plus one span per file
//	debug   plus definitions and single checks
//
// Typical use:
//
//	ctx = trace.WithTracer(ctx, trace.NewWriter(os.Stderr, trace.LevelDetail, trace.FormatText))
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file:pkg/m.py", trace.ParentID(ctx))
//	defer span.End("")
package trace
