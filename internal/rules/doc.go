// Package rules is the rule registry: the closed catalog of check
// identities, their codes, origins and required source representation.
//
// # Catalog
//
// Every rule is a constant of type Rule. The constants and the tables behind
// them live in zz_registry_gen.go, produced by cmd/rulegen from catalog.toml.
// Adding a rule means adding a catalog row and regenerating; there is no
// runtime registration.
//
// # Lookup
//
//   - FromCode maps a code string to a Rule, following deprecated-code
//     redirects. Unknown codes yield *UnknownCodeError.
//   - Select resolves a selector (ALL, a code, a redirected code or a code
//     prefix such as "D4") to a RuleSet.
//   - Redirect reports the replacement for a deprecated code.
//   - IncompatiblePairs lists rules that should not be enabled together.
//
// # Dispatch
//
// Rule.LintSource tells the driver which representation of a file a rule
// needs, so it can build each representation at most once and only when some
// enabled rule asks for it.
//
// # Kinds
//
// Kind is the contract every diagnostic payload implements. Fixable and
// Commit derive the fix metadata from the optional Autofixable extension.
package rules

//go:generate go run ../../cmd/rulegen --catalog catalog.toml --rules zz_registry_gen.go --violations ../violations/zz_placeholders_gen.go
