package source

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Locator answers position queries over one file's text: it converts between
// byte offsets and row/column locations and slices the text by Range.
// A Locator is immutable after construction and safe for concurrent use.
type Locator struct {
	path     string
	contents string
	lineIdx  []uint32 // byte offset of every line start; lineIdx[0] == 0
	flags    Flags
}

// Flags records normalisations applied while loading a file.
type Flags uint8

const (
	// FlagHadBOM marks a file that started with a UTF-8 byte order mark.
	FlagHadBOM Flags = 1 << iota
	// FlagNormalizedCRLF marks a file whose CRLF line endings were rewritten to LF.
	FlagNormalizedCRLF
)

// NewLocator indexes contents as-is.
func NewLocator(path, contents string) *Locator {
	return newLocator(path, contents, 0)
}

// Load reads a file from disk, strips a BOM and normalizes CRLF, then indexes it.
func Load(path string) (*Locator, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	var flags Flags
	if hadBOM {
		flags |= FlagHadBOM
	}
	if hadCRLF {
		flags |= FlagNormalizedCRLF
	}
	return newLocator(path, string(content), flags), nil
}

func newLocator(path, contents string, flags Flags) *Locator {
	return &Locator{
		path:     filepath.ToSlash(filepath.Clean(path)),
		contents: contents,
		lineIdx:  buildLineIndex(contents),
		flags:    flags,
	}
}

// Path returns the slash-normalized path the locator was created with.
func (l *Locator) Path() string { return l.path }

// Contents returns the full text.
func (l *Locator) Contents() string { return l.contents }

// Flags returns the load-time normalisation flags.
func (l *Locator) Flags() Flags { return l.flags }

// LineCount returns the number of rows. A trailing newline opens one more
// (empty) row, so "a\n" has two.
func (l *Locator) LineCount() int { return len(l.lineIdx) }

// Line returns row's text without its line terminator, or "" when row is out of range.
func (l *Locator) Line(row int) string {
	if row < 1 || row > len(l.lineIdx) {
		return ""
	}
	start, end := l.lineBounds(row)
	line := l.contents[start:end]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// lineBounds returns the byte span of row excluding its '\n'.
func (l *Locator) lineBounds(row int) (start, end int) {
	start = int(l.lineIdx[row-1])
	if row < len(l.lineIdx) {
		end = int(l.lineIdx[row]) - 1
	} else {
		end = len(l.contents)
	}
	return start, end
}

// Offset converts loc to a byte offset. Rows past the end map to len(contents);
// columns past the end of a line clamp to the line end.
func (l *Locator) Offset(loc Location) int {
	if loc.Row < 1 {
		return 0
	}
	if loc.Row > len(l.lineIdx) {
		return len(l.contents)
	}
	start, end := l.lineBounds(loc.Row)
	off := start
	for col := 0; col < loc.Column && off < end; col++ {
		_, size := utf8.DecodeRuneInString(l.contents[off:end])
		off += size
	}
	return off
}

// LocationAt converts a byte offset to a Location.
func (l *Locator) LocationAt(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.contents) {
		offset = len(l.contents)
	}
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}

	// бинпоиск: наибольший lineIdx[i] <= off
	lo, hi := 0, len(l.lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if l.lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	row := hi + 1
	start := int(l.lineIdx[hi])
	return Location{Row: row, Column: utf8.RuneCountInString(l.contents[start:offset])}
}

// Slice returns the text covered by r.
func (l *Locator) Slice(r Range) string {
	start, end := l.Offset(r.Start), l.Offset(r.End)
	if end < start {
		return ""
	}
	return l.contents[start:end]
}

// SliceFrom returns the text from loc to the end of the file.
func (l *Locator) SliceFrom(loc Location) string {
	return l.contents[l.Offset(loc):]
}

// Partition splits the text of outer around inner and returns the parts
// strictly before inner, inner itself, and strictly after it. inner is
// expected to lie within outer; parts that would be negative come back empty.
func (l *Locator) Partition(outer, inner Range) (before, middle, after string) {
	outerStart, outerEnd := l.Offset(outer.Start), l.Offset(outer.End)
	innerStart, innerEnd := l.Offset(inner.Start), l.Offset(inner.End)
	if outerEnd < outerStart {
		outerEnd = outerStart
	}
	innerStart = min(max(innerStart, outerStart), outerEnd)
	innerEnd = min(max(innerEnd, innerStart), outerEnd)
	return l.contents[outerStart:innerStart], l.contents[innerStart:innerEnd], l.contents[innerEnd:outerEnd]
}

func buildLineIndex(contents string) []uint32 {
	out := make([]uint32, 1, len(contents)/32+1)
	for i := 0; i < len(contents); i++ {
		if contents[i] != '\n' {
			continue
		}
		next, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			panic(fmt.Errorf("line index overflow: %w", err))
		}
		out = append(out, next)
	}
	return out
}
