package diagfmt

import (
	"fmt"
	"io"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"

	"lintcore/internal/diag"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/violations"
)

// Версия схемы потока; увеличивать при изменении record.
const msgpackSchemaVersion uint16 = 1

// The stream is a header followed by Count records, one per diagnostic.
type streamHeader struct {
	Schema uint16 `msgpack:"schema"`
	Count  int    `msgpack:"count"`
}

type rangeRecord struct {
	StartRow int `msgpack:"sr"`
	StartCol int `msgpack:"sc"`
	EndRow   int `msgpack:"er"`
	EndCol   int `msgpack:"ec"`
}

type fixRecord struct {
	Op      uint8       `msgpack:"op"`
	Content string      `msgpack:"content"`
	Range   rangeRecord `msgpack:"range"`
}

type record struct {
	Path string `msgpack:"path"`
	Code string `msgpack:"code"`
	// Kind is the payload struct encoded on its own; the code tells the
	// reader which type to decode it into.
	Kind   msgpack.RawMessage `msgpack:"kind"`
	Range  rangeRecord        `msgpack:"range"`
	Fix    *fixRecord         `msgpack:"fix,omitempty"`
	Parent *rangeRecord       `msgpack:"parent,omitempty"`
}

// WriteMsgpack encodes files as a compact diagnostic stream.
func WriteMsgpack(w io.Writer, files []File) error {
	count := 0
	for _, f := range files {
		count += len(f.Diagnostics)
	}
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(streamHeader{Schema: msgpackSchemaVersion, Count: count}); err != nil {
		return fmt.Errorf("msgpack: failed to write header: %w", err)
	}
	for _, f := range files {
		for i := range f.Diagnostics {
			rec, err := toRecord(f.Path, &f.Diagnostics[i])
			if err != nil {
				return err
			}
			if err := enc.Encode(&rec); err != nil {
				return fmt.Errorf("msgpack: failed to write %s: %w", rec.Code, err)
			}
		}
	}
	return nil
}

// ReadMsgpack decodes a stream written by WriteMsgpack. Files come back in
// first-seen order; a file without diagnostics is not represented.
func ReadMsgpack(r io.Reader) ([]File, error) {
	dec := msgpack.NewDecoder(r)
	var hdr streamHeader
	if err := dec.Decode(&hdr); err != nil {
		return nil, fmt.Errorf("msgpack: failed to read header: %w", err)
	}
	if hdr.Schema != msgpackSchemaVersion {
		return nil, fmt.Errorf("msgpack: unsupported schema %d (expected %d)", hdr.Schema, msgpackSchemaVersion)
	}

	var files []File
	index := make(map[string]int)
	for i := 0; i < hdr.Count; i++ {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("msgpack: failed to read record %d: %w", i, err)
		}
		d, err := fromRecord(&rec)
		if err != nil {
			return nil, fmt.Errorf("msgpack: record %d: %w", i, err)
		}
		idx, ok := index[rec.Path]
		if !ok {
			idx = len(files)
			index[rec.Path] = idx
			files = append(files, File{Path: rec.Path})
		}
		files[idx].Diagnostics = append(files[idx].Diagnostics, d)
	}
	return files, nil
}

func toRecord(path string, d *diag.Diagnostic) (record, error) {
	kind, err := msgpack.Marshal(d.Kind)
	if err != nil {
		return record{}, fmt.Errorf("msgpack: failed to encode %s payload: %w", d.Rule().Code(), err)
	}
	rec := record{
		Path:  path,
		Code:  d.Rule().Code(),
		Kind:  kind,
		Range: toRangeRecord(d.Range),
	}
	if d.Fix != nil {
		rec.Fix = &fixRecord{
			Op:      uint8(d.Fix.Op),
			Content: d.Fix.Content,
			Range:   toRangeRecord(d.Fix.Range()),
		}
	}
	if d.Parent != nil {
		p := toRangeRecord(*d.Parent)
		rec.Parent = &p
	}
	return rec, nil
}

func fromRecord(rec *record) (diag.Diagnostic, error) {
	rule, err := rules.FromCode(rec.Code)
	if err != nil {
		return diag.Diagnostic{}, err
	}
	kind, err := decodeKind(rule, rec.Kind)
	if err != nil {
		return diag.Diagnostic{}, err
	}
	d := diag.Diagnostic{Kind: kind, Range: rec.Range.toRange()}
	if rec.Fix != nil {
		rng := rec.Fix.Range.toRange()
		d.Fix = &diag.Fix{
			Op:          diag.FixOp(rec.Fix.Op),
			Content:     rec.Fix.Content,
			Location:    rng.Start,
			EndLocation: rng.End,
		}
	}
	if rec.Parent != nil {
		p := rec.Parent.toRange()
		d.Parent = &p
	}
	return d, nil
}

// decodeKind decodes raw into a fresh value of the rule's payload type.
func decodeKind(rule rules.Rule, raw msgpack.RawMessage) (rules.Kind, error) {
	ptr := reflect.New(reflect.TypeOf(violations.Placeholder(rule)))
	if err := msgpack.Unmarshal(raw, ptr.Interface()); err != nil {
		return nil, fmt.Errorf("%s: failed to decode payload: %w", rule.Code(), err)
	}
	kind, ok := ptr.Elem().Interface().(rules.Kind)
	if !ok {
		return nil, fmt.Errorf("%s: payload is not a diagnostic kind", rule.Code())
	}
	// код в записи главнее номера правила внутри payload
	if o, opaque := kind.(violations.Opaque); opaque {
		o.Of = rule
		kind = o
	}
	return kind, nil
}

func toRangeRecord(r source.Range) rangeRecord {
	return rangeRecord{StartRow: r.Start.Row, StartCol: r.Start.Column, EndRow: r.End.Row, EndCol: r.End.Column}
}

func (r rangeRecord) toRange() source.Range {
	return source.NewRange(source.NewLocation(r.StartRow, r.StartCol), source.NewLocation(r.EndRow, r.EndCol))
}
