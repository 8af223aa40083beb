package source

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lines splits s into lines without their terminators. A trailing '\r' is
// dropped from every line and a final newline does not open an extra line,
// so Lines("a\nb\n") is ["a", "b"] and Lines("") is empty.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// LinesWithTrailingNewline is Lines plus one empty line when s ends in '\n'.
// Docstring bodies keep the line holding the closing quotes this way.
func LinesWithTrailingNewline(s string) []string {
	lines := Lines(s)
	if strings.HasSuffix(s, "\n") {
		lines = append(lines, "")
	}
	return lines
}

// LeadingSpace returns the whitespace prefix of line.
func LeadingSpace(line string) string {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return line[:i]
		}
	}
	return line
}

// Clean replaces every non-whitespace rune with a single space, keeping tabs
// and other whitespace as-is. Used to rebuild indentation from a line prefix.
func Clean(indentation string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, indentation)
}

// RuneLen counts Unicode scalar values; it is the column unit everywhere.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Dedent removes the longest whitespace prefix shared by all non-blank lines.
// Blank lines come back empty. A missing final newline stays missing.
func Dedent(s string) string {
	lines := Lines(s)
	prefix, found := "", false
	for _, line := range lines {
		if IsBlank(line) {
			continue
		}
		lead := LeadingSpace(line)
		if !found {
			prefix, found = lead, true
			continue
		}
		prefix = commonPrefix(prefix, lead)
	}

	var b strings.Builder
	for i, line := range lines {
		if !IsBlank(line) {
			b.WriteString(line[len(prefix):])
		}
		if i < len(lines)-1 || strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	// не резать посередине многобайтной руны
	for i > 0 && !utf8.RuneStart(a[i]) && i < len(a) {
		i--
	}
	return a[:i]
}
