// Package docstrings models documentable definitions and their docstrings,
// and knows the two section dialects (Google and NumPy) and the named
// conventions built on them.
package docstrings

import (
	"lintcore/internal/syntax"
)

// DefinitionKind classifies a documentable construct.
type DefinitionKind uint8

const (
	KindModule DefinitionKind = iota + 1
	KindPackage
	KindClass
	KindNestedClass
	KindFunction
	KindNestedFunction
	KindMethod
)

func (k DefinitionKind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindPackage:
		return "package"
	case KindClass:
		return "class"
	case KindNestedClass:
		return "nested class"
	case KindFunction:
		return "function"
	case KindNestedFunction:
		return "nested function"
	case KindMethod:
		return "method"
	}
	return "unknown"
}

// IsClass reports class-like kinds.
func (k DefinitionKind) IsClass() bool { return k == KindClass || k == KindNestedClass }

// IsFunction reports function-like kinds, methods included.
func (k DefinitionKind) IsFunction() bool {
	return k == KindFunction || k == KindNestedFunction || k == KindMethod
}

// Definition is one documentable construct as found by the traversal.
// Stmt is nil for modules and packages; Docstring is nil when absent.
type Definition struct {
	Kind       DefinitionKind
	Stmt       *syntax.Stmt
	Docstring  *syntax.Expr
	Visibility syntax.Visibility
	// Qualname is "Outer.method" style, used for tracing only.
	Qualname string
}

// Private reports whether missing-docstring rules skip d.
func (d *Definition) Private() bool { return d.Visibility == syntax.Private }
