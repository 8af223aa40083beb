// Package diagfmt renders diagnostics for people (Pretty) and for tools
// (JSON, msgpack).
package diagfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"lintcore/internal/diag"
)

// File is the diagnostics of one path, the unit every renderer takes.
type File struct {
	Path        string
	Diagnostics []diag.Diagnostic
}

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto prints the path as given.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ColorMode chooses between coloured and plain output.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColorMode accepts auto|on|off.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
	}
}

// Enabled resolves the mode for output going to f. Auto means colour on a
// terminal unless NO_COLOR is set.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    ColorMode
	Context  int // строки исходника перед диагностикой
	PathMode PathMode
	BaseDir  string // для PathModeRelative; пусто - текущий каталог
	Width    int    // максимальная ширина строки исходника, 0 - не ограничено
	// ShowFixes adds a "fix:" line naming the edit.
	ShowFixes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode     PathMode
	BaseDir      string
	Max          int // обрезка вывода, не Bag
	IncludeFixes bool
}

func formatPath(path string, mode PathMode, base string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		if base == "" {
			base, _ = os.Getwd()
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			break
		}
		if rel, err := filepath.Rel(base, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return filepath.ToSlash(path)
}
