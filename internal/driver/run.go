package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"lintcore/internal/checker"
	"lintcore/internal/diag"
	"lintcore/internal/docstrings"
	"lintcore/internal/observ"
	"lintcore/internal/pydocstyle"
	"lintcore/internal/pysource"
	"lintcore/internal/rules"
	"lintcore/internal/settings"
	"lintcore/internal/source"
	"lintcore/internal/trace"
	"lintcore/internal/violations"
)

// Options tune a run. The zero value uses GOMAXPROCS workers, no
// diagnostic limit and no heartbeat.
type Options struct {
	Jobs           int
	MaxDiagnostics int
	Heartbeat      time.Duration
}

// Result is the outcome of checking one file.
type Result struct {
	Path        string
	Diagnostics []diag.Diagnostic
	Definitions int
	// SyntaxErrors is set when the parser had to recover; diagnostics are
	// still reported for the definitions it found.
	SyntaxErrors bool
	Plan         Plan
	Timings      observ.Report
}

// Run checks defs concurrently and returns their diagnostics merged,
// sorted and deduplicated.
func Run(ctx context.Context, s *settings.Settings, loc *source.Locator, defs []docstrings.Definition, opts Options) ([]diag.Diagnostic, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	base := checker.New(s, loc, nil, trace.FromContext(ctx))

	// у каждой задачи свой слот, мьютекс не нужен
	bags := make([]*diag.Bag, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(defs)))
	for i := range defs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(0)
			pydocstyle.Check(base.WithReporter(diag.BagReporter{Bag: bag}), &defs[i])
			bags[i] = bag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merge(bags, opts.MaxDiagnostics), nil
}

func merge(bags []*diag.Bag, limit int) []diag.Diagnostic {
	all := diag.NewBag(0)
	for _, b := range bags {
		all.Merge(b)
	}
	all.Sort()
	all.Dedup()

	items := all.Items()
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]diag.Diagnostic, len(items))
	copy(out, items)
	return out
}

// CheckSource checks in-memory text as if it were the file at path.
func CheckSource(ctx context.Context, s *settings.Settings, path, text string, opts Options) (*Result, error) {
	ctx, end := beginRun(ctx, opts, 1)
	res, err := check(ctx, s, source.NewLocator(path, text), observ.NewTimer(), opts)
	end(summary(res, err))
	return res, err
}

// CheckFile reads path from disk and checks it.
func CheckFile(ctx context.Context, s *settings.Settings, path string, opts Options) (*Result, error) {
	ctx, end := beginRun(ctx, opts, 1)
	res, err := checkFile(ctx, s, path, opts)
	end(summary(res, err))
	return res, err
}

func checkFile(ctx context.Context, s *settings.Settings, path string, opts Options) (*Result, error) {
	timer := observ.NewTimer()
	idx := timer.Begin(observ.PhaseLoad)
	loc, err := source.Load(path)
	timer.End(idx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return check(ctx, s, loc, timer, opts)
}

func check(ctx context.Context, s *settings.Settings, loc *source.Locator, timer *observ.Timer, opts Options) (*Result, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+loc.Path(), trace.ParentID(ctx))
	defer span.End("")

	plan := NewPlan(s)
	res := &Result{Path: loc.Path(), Plan: plan}

	// всё, что сейчас реализовано, читает AST; без него разбирать файл незачем
	if !plan.Needs(rules.SourceAst) {
		trace.Point(tracer, trace.ScopeFile, "plan.skip", plan.String())
		res.Timings = timer.Report()
		return res, nil
	}

	idx := timer.Begin(observ.PhaseParse)
	parsed, err := pysource.Extract(ctx, loc)
	if err != nil {
		timer.End(idx, "failed")
		return nil, err
	}
	timer.End(idx, strconv.Itoa(len(parsed.Definitions))+" definitions")
	res.Definitions = len(parsed.Definitions)
	res.SyntaxErrors = parsed.HasErrors
	if parsed.HasErrors {
		trace.Point(tracer, trace.ScopeFile, "parse.recovered", loc.Path())
	}

	idx = timer.Begin(observ.PhaseCheck)
	diags, err := Run(ctx, s, loc, parsed.Definitions, opts)
	timer.End(idx, "")
	if err != nil {
		return nil, err
	}
	if parsed.HasErrors && s.Enabled.Contains(rules.SyntaxError) {
		diags = withSyntaxError(diags, parsed)
	}
	res.Diagnostics = diags
	res.Timings = timer.Report()
	span.Attr("diagnostics", strconv.Itoa(len(diags)))
	return res, nil
}

// withSyntaxError adds E999 at the first recovery point and restores order.
func withSyntaxError(diags []diag.Diagnostic, parsed *pysource.Result) []diag.Diagnostic {
	kind := violations.SyntaxError{}
	if parsed.Missing {
		kind.Err = "missing token"
	}
	bag := diag.NewBag(0)
	for _, d := range diags {
		bag.Add(d)
	}
	bag.Add(*diag.New(kind, parsed.FirstError))
	bag.Sort()
	return bag.Items()
}

// beginRun opens the run span and the optional heartbeat; the returned
// func closes both.
func beginRun(ctx context.Context, opts Options, files int) (context.Context, func(detail string)) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeRun, "run", 0).Attr("files", strconv.Itoa(files))
	hb := trace.StartHeartbeat(tracer, opts.Heartbeat)
	ctx = trace.WithParent(ctx, span)
	return ctx, func(detail string) {
		hb.Stop()
		span.End(detail)
	}
}

func summary(res *Result, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	if res == nil {
		return ""
	}
	return fmt.Sprintf("%d diagnostics", len(res.Diagnostics))
}
