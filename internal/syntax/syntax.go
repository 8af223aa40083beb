// Package syntax is the small slice of a Python syntax tree the docstring
// checks read. Trees are built by internal/pysource; nothing here parses.
package syntax

import (
	"strings"

	"lintcore/internal/source"
)

// StmtKind tells definitions apart.
type StmtKind uint8

const (
	StmtFunctionDef StmtKind = iota + 1
	StmtAsyncFunctionDef
	StmtClassDef
)

func (k StmtKind) String() string {
	switch k {
	case StmtFunctionDef:
		return "def"
	case StmtAsyncFunctionDef:
		return "async def"
	case StmtClassDef:
		return "class"
	}
	return "stmt"
}

// Expr is a string-literal expression statement.
type Expr struct {
	Range source.Range
}

// Decorator is one "@..." line. Name is the dotted callee with any call
// arguments dropped, so "@functools.wraps(f)" has Name "functools.wraps".
type Decorator struct {
	Name  string
	Range source.Range
}

// Arg is one formal parameter.
type Arg struct {
	Name  string
	Range source.Range
}

// Arguments is a function's formal parameter list.
type Arguments struct {
	PosOnly []Arg
	Args    []Arg
	VarArg  *Arg
	KwOnly  []Arg
	KwArg   *Arg
}

// Stmt is a function or class definition. Range starts at "def"/"class"
// (or "async") and excludes decorators.
type Stmt struct {
	Kind       StmtKind
	Name       string
	Identifier source.Range
	Range      source.Range
	Decorators []Decorator
	Args       *Arguments
}

// IsFunction reports whether s is a (possibly async) function definition.
func (s *Stmt) IsFunction() bool {
	return s != nil && (s.Kind == StmtFunctionDef || s.Kind == StmtAsyncFunctionDef)
}

// DecoratorNames returns the dotted names of s's decorators.
func (s *Stmt) DecoratorNames() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.Decorators))
	for i, d := range s.Decorators {
		out[i] = d.Name
	}
	return out
}

// CallPath splits a dotted name into segments.
func CallPath(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, ".")
}
