package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lintcore/internal/rules"
	"lintcore/internal/source"
)

const tabWidth = 4

type palette struct {
	path   *color.Color
	code   *color.Color
	gutter *color.Color
	caret  *color.Color
	fix    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:   color.New(color.Bold),
		code:   color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgRed),
		fix:    color.New(color.FgCyan),
	}
	// глобальный color.NoColor не трогаем, решение принимается на каждый вывод
	for _, c := range []*color.Color{p.path, p.code, p.gutter, p.caret, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики одного файла в человекочитаемый вид.
// Для каждой печатает:
// <path>:<row>:<col>: <CODE> <message>
// затем строку исходника (и opts.Context строк перед ней) с подчёркиванием
// ^^^ по Range. Колонка в заголовке считается с 1.
// loc может быть nil: тогда печатаются только заголовки.
func Pretty(w io.Writer, f File, loc *source.Locator, opts PrettyOpts) error {
	out, _ := w.(*os.File)
	pal := newPalette(opts.Color.Enabled(out))
	path := formatPath(f.Path, opts.PathMode, opts.BaseDir)

	bw := bufio.NewWriter(w)
	for i := range f.Diagnostics {
		d := &f.Diagnostics[i]
		start := d.Range.Start
		fmt.Fprintf(bw, "%s:%d:%d: %s %s\n",
			pal.path.Sprint(path), start.Row, start.Column+1, pal.code.Sprint(d.Rule().Code()), d.Message())

		width := len(strconv.Itoa(start.Row))
		pad := strings.Repeat(" ", width)
		if loc != nil && start.Row >= 1 && start.Row <= loc.LineCount() {
			bar := pal.gutter.Sprint("|")
			fmt.Fprintf(bw, "%s %s\n", pad, bar)
			for row := max(1, start.Row-opts.Context); row <= start.Row; row++ {
				fmt.Fprintf(bw, "%s %s %s\n", pal.gutter.Sprintf("%*d", width, row), bar, display(loc.Line(row), opts.Width))
			}
			offset, span := caretSpan(loc.Line(start.Row), d.Range)
			fmt.Fprintf(bw, "%s %s %s%s", pad, bar, strings.Repeat(" ", offset), pal.caret.Sprint(strings.Repeat("^", span)))
			if extra := d.Range.End.Row - start.Row; extra > 0 {
				fmt.Fprintf(bw, " %s", pal.gutter.Sprintf("(+%d lines)", extra))
			}
			bw.WriteByte('\n')
		}
		if opts.ShowFixes && d.Fix != nil {
			title, _ := rules.Commit(d.Kind)
			fmt.Fprintf(bw, "%s %s\n", pad, pal.fix.Sprintf("= fix: %s", title))
		}
	}
	return bw.Flush()
}

// Summary prints the closing count line for a run.
func Summary(w io.Writer, files []File) error {
	total, fixable := 0, 0
	for _, f := range files {
		for i := range f.Diagnostics {
			total++
			if f.Diagnostics[i].Fix != nil {
				fixable++
			}
		}
	}
	if total == 0 {
		_, err := fmt.Fprintln(w, "All checks passed!")
		return err
	}
	noun := "errors"
	if total == 1 {
		noun = "error"
	}
	var err error
	if fixable > 0 {
		_, err = fmt.Fprintf(w, "Found %d %s (%d fixable).\n", total, noun, fixable)
	} else {
		_, err = fmt.Fprintf(w, "Found %d %s.\n", total, noun)
	}
	return err
}

// caretSpan returns the display offset and width of the underline for rng
// on line. A range running past the line is cut at its end.
func caretSpan(line string, rng source.Range) (offset, width int) {
	runes := []rune(line)
	startCol := min(rng.Start.Column, len(runes))
	endCol := len(runes)
	if rng.End.Row == rng.Start.Row {
		endCol = min(max(rng.End.Column, startCol), len(runes))
	}
	offset = displayWidth(string(runes[:startCol]))
	width = max(1, displayWidth(string(runes[startCol:endCol])))
	return offset, width
}

func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func display(line string, width int) string {
	return truncate(expandTabs(line), width)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
