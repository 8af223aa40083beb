package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type goldenDiagnostic struct {
	Code    string
	Path    string
	Row     int
	Column  int
	Message string
	Fix     string
}

// FormatGolden renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden tests. Columns are 0-based rune offsets.
// With includeFixes each line ends with the attached edit, if any.
func FormatGolden(diags []Diagnostic, path string, includeFixes bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = append(rendered, renderGolden(&diags[i], normalizePath(path), includeFixes))
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Row != dj.Row {
			return di.Row < dj.Row
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s:%d:%d %s", d.Code, d.Path, d.Row, d.Column, d.Message)
		if d.Fix != "" {
			fmt.Fprintf(&b, " [%s]", d.Fix)
		}
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderGolden(d *Diagnostic, path string, includeFixes bool) (out goldenDiagnostic) {
	out = goldenDiagnostic{
		Path:   path,
		Row:    d.Range.Start.Row,
		Column: d.Range.Start.Column,
	}
	// kind с битыми данными не должен ронять весь вывод
	defer func() {
		if recover() != nil {
			out.Message = "<unrenderable>"
		}
	}()
	out.Code = d.Rule().Code()
	out.Message = sanitizeMessage(d.Message())
	if includeFixes && d.Fix != nil {
		out.Fix = fmt.Sprintf("%s %s %q", d.Fix.Op, d.Fix.Range(), d.Fix.Content)
	}
	return out
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
