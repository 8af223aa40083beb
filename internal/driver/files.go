package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lintcore/internal/diag"
	"lintcore/internal/observ"
	"lintcore/internal/rules"
	"lintcore/internal/settings"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

// ListPythonFiles returns every *.py and *.pyi file under dir, sorted.
// Hidden directories and __pycache__ are skipped.
func ListPythonFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "__pycache__") {
				return filepath.SkipDir
			}
			return nil
		}
		if ext := filepath.Ext(path); ext == ".py" || ext == ".pyi" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// CheckFiles checks paths in parallel. Results line up with paths. A file
// that cannot be read yields an E902 diagnostic when that rule is enabled
// and fails the run otherwise.
func CheckFiles(ctx context.Context, s *settings.Settings, paths []string, opts Options) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	ctx, end := beginRun(ctx, opts, len(paths))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// параллелим по файлам, внутри файла определения идут по одному
	inner := opts
	inner.Jobs = 1
	inner.Heartbeat = 0

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := checkFile(gctx, s, path, inner)
			if err != nil {
				var pathErr *fs.PathError
				if !errors.As(err, &pathErr) || !s.Enabled.Contains(rules.IOError) {
					return err
				}
				res = ioResult(path, pathErr)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	total := 0
	for _, r := range results {
		if r != nil {
			total += len(r.Diagnostics)
		}
	}
	if err != nil {
		end("error: " + err.Error())
		return results, err
	}
	end(fmt.Sprintf("%d diagnostics", total))
	return results, nil
}

func ioResult(path string, err *fs.PathError) *Result {
	d := diag.New(violations.IOError{Err: err.Err.Error()}, source.PointRange(source.NewLocation(1, 0)))
	return &Result{
		Path:        filepath.ToSlash(filepath.Clean(path)),
		Diagnostics: []diag.Diagnostic{*d},
	}
}

// Timings folds the per-file phase timings of results into one report.
func Timings(results []*Result) observ.Report {
	var total observ.Report
	for _, r := range results {
		if r != nil {
			total.Add(r.Timings)
		}
	}
	return total
}
