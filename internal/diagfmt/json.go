package diagfmt

import (
	"encoding/json"
	"io"

	"lintcore/internal/rules"
	"lintcore/internal/source"
)

// LocationJSON is a row/column pair; rows count from 1, columns from 0.
type LocationJSON struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// RangeJSON представляет диапазон в файле для JSON
type RangeJSON struct {
	Start LocationJSON `json:"start"`
	End   LocationJSON `json:"end"`
}

// FixJSON представляет исправление для JSON
type FixJSON struct {
	Title   string    `json:"title"`
	Op      string    `json:"op"`
	Content string    `json:"content"`
	Range   RangeJSON `json:"range"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	File    string     `json:"file"`
	Code    string     `json:"code"`
	Name    string     `json:"name"`
	Message string     `json:"message"`
	Range   RangeJSON  `json:"range"`
	Parent  *RangeJSON `json:"parent,omitempty"`
	Fix     *FixJSON   `json:"fix,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Fixable     int              `json:"fixable"`
}

func makeLocation(loc source.Location) LocationJSON {
	return LocationJSON{Row: loc.Row, Column: loc.Column}
}

func makeRange(r source.Range) RangeJSON {
	return RangeJSON{Start: makeLocation(r.Start), End: makeLocation(r.End)}
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(files []File, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0)}
	for _, f := range files {
		path := formatPath(f.Path, opts.PathMode, opts.BaseDir)
		for i := range f.Diagnostics {
			if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
				out.Count = len(out.Diagnostics)
				return out
			}
			d := &f.Diagnostics[i]
			rule := d.Rule()
			dj := DiagnosticJSON{
				File:    path,
				Code:    rule.Code(),
				Name:    rule.Name(),
				Message: d.Message(),
				Range:   makeRange(d.Range),
			}
			if d.Parent != nil {
				p := makeRange(*d.Parent)
				dj.Parent = &p
			}
			if d.Fix != nil {
				out.Fixable++
				if opts.IncludeFixes {
					title, _ := rules.Commit(d.Kind)
					dj.Fix = &FixJSON{
						Title:   title,
						Op:      d.Fix.Op.String(),
						Content: d.Fix.Content,
						Range:   makeRange(d.Fix.Range()),
					}
				}
			}
			out.Diagnostics = append(out.Diagnostics, dj)
		}
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes files as one indented JSON document.
func JSON(w io.Writer, files []File, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(files, opts))
}
