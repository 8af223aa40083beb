// Package diag defines the diagnostic model shared by every rule.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Kind – the payload from internal/violations; it names the rule and
//     renders the message.
//   - Range – half-open source.Range the finding points at.
//   - Fix – optional single text edit (insertion, deletion or replacement).
//   - Parent – optional range of the construct the finding belongs to.
//
// Fix coordinates always refer to the unmodified file. Fixes from different
// diagnostics may overlap; internal/fix owns deconfliction.
//
// # Emitting diagnostics
//
// Rules build a record with New, chain Amend / WithParent and hand it to a
// Reporter. Fix construction must be skipped entirely when the run does not
// want a fix for that rule; the checker exposes that as a single query.
//
// BagReporter collects into a Bag, which supports sorting, deduplication and
// merging of per-task bags.
//
// # Consumers
//
//   - internal/diagfmt: renders diagnostics as pretty text, JSON or msgpack.
//   - internal/fix: applies fixes to in-memory text.
//   - internal/driver: owns one Bag per task and merges them.
package diag
