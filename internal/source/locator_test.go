package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocatorOffsetCountsRunes(t *testing.T) {
	loc := NewLocator("m.py", "héllo\nwörld\n")

	tests := []struct {
		name string
		at   Location
		want int
	}{
		{name: "start", at: NewLocation(1, 0), want: 0},
		{name: "after multibyte", at: NewLocation(1, 2), want: 3},
		{name: "line end clamps", at: NewLocation(1, 99), want: 6},
		{name: "second line", at: NewLocation(2, 2), want: 10},
		{name: "trailing empty row", at: NewLocation(3, 0), want: 14},
		{name: "past end", at: NewLocation(9, 0), want: 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loc.Offset(tt.at); got != tt.want {
				t.Fatalf("expected offset %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLocatorLocationAtRoundTrip(t *testing.T) {
	text := "a\n\tβγ\n\nzz"
	loc := NewLocator("m.py", text)
	for row := 1; row <= loc.LineCount(); row++ {
		line := loc.Line(row)
		for col := 0; col <= RuneLen(line); col++ {
			want := NewLocation(row, col)
			got := loc.LocationAt(loc.Offset(want))
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}
}

func TestLocatorPartition(t *testing.T) {
	text := "def f():\n\n    \"\"\"Doc.\"\"\"\n\n    pass\n"
	loc := NewLocator("m.py", text)
	outer := NewRange(NewLocation(1, 0), NewLocation(5, 8))
	inner := NewRange(NewLocation(3, 4), NewLocation(3, 14))

	before, middle, after := loc.Partition(outer, inner)
	if before != "def f():\n\n    " {
		t.Fatalf("unexpected before: %q", before)
	}
	if middle != "\"\"\"Doc.\"\"\"" {
		t.Fatalf("unexpected middle: %q", middle)
	}
	if after != "\n\n    pass" {
		t.Fatalf("unexpected after: %q", after)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.py")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFx = 1\r\ny = 2\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Contents() != "x = 1\ny = 2\n" {
		t.Fatalf("unexpected contents: %q", loc.Contents())
	}
	if loc.Flags()&FlagHadBOM == 0 || loc.Flags()&FlagNormalizedCRLF == 0 {
		t.Fatalf("expected both flags, got %b", loc.Flags())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.py")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRangeOverlaps(t *testing.T) {
	r := func(r1, c1, r2, c2 int) Range {
		return NewRange(NewLocation(r1, c1), NewLocation(r2, c2))
	}
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{name: "disjoint", a: r(1, 0, 1, 2), b: r(1, 3, 1, 4), want: false},
		{name: "touching", a: r(1, 0, 1, 2), b: r(1, 2, 1, 4), want: false},
		{name: "nested", a: r(1, 0, 3, 0), b: r(2, 0, 2, 1), want: true},
		{name: "two points", a: r(1, 1, 1, 1), b: r(1, 1, 1, 1), want: false},
		{name: "point inside", a: r(1, 1, 1, 1), b: r(1, 0, 1, 3), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewRangeSwapsEnds(t *testing.T) {
	got := NewRange(NewLocation(2, 0), NewLocation(1, 5))
	if got.Start != NewLocation(1, 5) || got.End != NewLocation(2, 0) {
		t.Fatalf("expected swapped range, got %s", got)
	}
}
