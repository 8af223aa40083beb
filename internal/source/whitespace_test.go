package source

import (
	"slices"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		plain    []string
		trailing []string
	}{
		{name: "empty", in: "", plain: nil, trailing: nil},
		{name: "single", in: "a", plain: []string{"a"}, trailing: []string{"a"}},
		{name: "final newline", in: "a\nb\n", plain: []string{"a", "b"}, trailing: []string{"a", "b", ""}},
		{name: "crlf", in: "a\r\nb", plain: []string{"a", "b"}, trailing: []string{"a", "b"}},
		{name: "only newline", in: "\n", plain: []string{""}, trailing: []string{"", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lines(tt.in); !slices.Equal(got, tt.plain) {
				t.Fatalf("expected %q, got %q", tt.plain, got)
			}
			if got := LinesWithTrailingNewline(tt.in); !slices.Equal(got, tt.trailing) {
				t.Fatalf("expected %q, got %q", tt.trailing, got)
			}
		})
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{name: "common prefix", in: "    a\n      b\n    c", want: "a\n  b\nc"},
		{name: "blank lines ignored", in: "  a\n\n  b\n", want: "a\n\nb\n"},
		{name: "no indentation", in: "a\n  b", want: "a\n  b"},
		{name: "whitespace-only line cleared", in: "  a\n   \n  b", want: "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dedent(tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCleanKeepsWhitespace(t *testing.T) {
	if got := Clean("\t  x = "); got != "\t      " {
		t.Fatalf("expected %q, got %q", "\t      ", got)
	}
	if got := LeadingSpace("  \tfoo "); got != "  \t" {
		t.Fatalf("expected leading space, got %q", got)
	}
}
