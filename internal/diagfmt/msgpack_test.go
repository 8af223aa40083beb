package diagfmt

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"lintcore/internal/diag"
	"lintcore/internal/fix"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

func TestMsgpackRoundTrip(t *testing.T) {
	gap := *diag.New(violations.BlankLineAfterSummary{NumLines: 2}, rng(2, 4, 6, 7)).
		Amend(fix.Replacement("\n", source.NewLocation(3, 0), source.NewLocation(5, 0)))
	args := *diag.New(violations.DocumentAllArguments{Names: []string{"x", "y"}}, rng(1, 4, 1, 5)).
		WithParent(rng(1, 0, 4, 12))
	long := *diag.New(violations.Opaque{Of: rules.LineTooLong}, rng(9, 88, 9, 101)).
		WithParent(rng(9, 0, 9, 101))
	ioErr := *diag.New(violations.IOError{Err: "permission denied"}, rng(1, 0, 1, 0))

	files := []File{
		{Path: "pkg/a.py", Diagnostics: []diag.Diagnostic{gap, args, long}},
		{Path: "pkg/b.py", Diagnostics: []diag.Diagnostic{ioErr}},
	}

	var buf bytes.Buffer
	if err := WriteMsgpack(&buf, files); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	got, err := ReadMsgpack(&buf)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if !reflect.DeepEqual(got, files) {
		t.Fatalf("expected %+v, got %+v", files, got)
	}
	if msg := got[1].Diagnostics[0].Message(); msg != "I/O error: permission denied" {
		t.Fatalf("expected the payload to survive, got %q", msg)
	}
}

func TestMsgpackEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMsgpack(&buf, []File{{Path: "clean.py"}}); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	got, err := ReadMsgpack(&buf)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no files, got %d", len(got))
	}
}

func TestMsgpackRejectsOtherSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(streamHeader{Schema: msgpackSchemaVersion + 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := ReadMsgpack(&buf)
	if err == nil || !strings.Contains(err.Error(), "unsupported schema") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestMsgpackUnknownCode(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(streamHeader{Schema: msgpackSchemaVersion, Count: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := enc.Encode(&record{Path: "a.py", Code: "Z999"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ReadMsgpack(&buf); err == nil {
		t.Fatalf("expected an error for an unknown code")
	}
}

func TestMsgpackTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(streamHeader{Schema: msgpackSchemaVersion, Count: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ReadMsgpack(&buf); err == nil {
		t.Fatalf("expected an error for a truncated stream")
	}
}
