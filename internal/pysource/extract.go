// Package pysource turns Python source into the documentable definitions
// the docstring checks consume. Parsing is done by tree-sitter; this
// package only walks the tree.
package pysource

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"lintcore/internal/docstrings"
	"lintcore/internal/source"
	"lintcore/internal/syntax"
)

// Result is the outcome of one extraction.
type Result struct {
	Definitions []docstrings.Definition
	// HasErrors is set when tree-sitter recovered from syntax errors; the
	// definitions are still usable.
	HasErrors bool
	// FirstError is the range of the first ERROR or MISSING node, valid
	// only when HasErrors is set.
	FirstError source.Range
	// Missing reports whether FirstError is an inserted token rather than
	// skipped text.
	Missing bool
}

// Extract parses loc's contents and returns its definitions in source
// order, the module first.
func Extract(ctx context.Context, loc *source.Locator) (*Result, error) {
	content := []byte(loc.Contents())

	// парсер не потокобезопасен, поэтому новый на каждый вызов
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", loc.Path(), err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%s: tree-sitter returned nil root node", loc.Path())
	}

	w := &walker{loc: loc, content: content}
	base := filepath.Base(loc.Path())
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	kind := docstrings.KindModule
	if base == "__init__.py" {
		kind = docstrings.KindPackage
	}
	vis := syntax.ModuleVisibility(stem)
	w.defs = append(w.defs, docstrings.Definition{
		Kind:       kind,
		Docstring:  w.docstring(root),
		Visibility: vis,
		Qualname:   stem,
	})
	w.walk(root, scope{modifier: modModule, visibility: vis})

	res := &Result{Definitions: w.defs, HasErrors: root.HasError()}
	if res.HasErrors {
		if bad := firstError(root); bad != nil {
			res.FirstError = w.rangeOf(bad)
			res.Missing = bad.IsMissing()
		}
	}
	return res, nil
}

// firstError finds the leftmost ERROR or MISSING node in document order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

type modifier uint8

const (
	modModule modifier = iota
	modClass
	modFunction
)

type scope struct {
	modifier   modifier
	visibility syntax.Visibility
	qualname   string
}

type walker struct {
	loc     *source.Locator
	content []byte
	defs    []docstrings.Definition
}

func (w *walker) text(n *sitter.Node) string {
	return n.Content(w.content)
}

func (w *walker) rangeOf(n *sitter.Node) source.Range {
	return source.NewRange(w.loc.LocationAt(int(n.StartByte())), w.loc.LocationAt(int(n.EndByte())))
}

// walk visits statements under n; definitions open a new scope, every
// other compound statement keeps the current one.
func (w *walker) walk(n *sitter.Node, sc scope) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "function_definition", "class_definition":
			w.definition(child, nil, sc)
		case "decorated_definition":
			def := child.ChildByFieldName("definition")
			if def == nil {
				continue
			}
			w.definition(def, w.decorators(child), sc)
		case "comment", "expression_statement", "import_statement", "import_from_statement":
		default:
			w.walk(child, sc)
		}
	}
}

func (w *walker) definition(n *sitter.Node, decorators []syntax.Decorator, sc scope) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	stmt := &syntax.Stmt{
		Name:       w.text(nameNode),
		Identifier: w.rangeOf(nameNode),
		Range:      w.rangeOf(n),
		Decorators: decorators,
	}
	body := n.ChildByFieldName("body")

	qual := stmt.Name
	if sc.qualname != "" {
		qual = sc.qualname + "." + stmt.Name
	}

	var kind docstrings.DefinitionKind
	next := scope{qualname: qual, visibility: syntax.Private}
	public := sc.visibility == syntax.Public

	if n.Type() == "class_definition" {
		stmt.Kind = syntax.StmtClassDef
		kind = docstrings.KindNestedClass
		if sc.modifier == modModule {
			kind = docstrings.KindClass
		}
		next.modifier = modClass
		if public && sc.modifier != modFunction {
			next.visibility = syntax.ClassVisibility(stmt)
		}
	} else {
		stmt.Kind = syntax.StmtFunctionDef
		if isAsync(n) {
			stmt.Kind = syntax.StmtAsyncFunctionDef
		}
		stmt.Args = w.arguments(n.ChildByFieldName("parameters"))
		switch sc.modifier {
		case modModule:
			kind = docstrings.KindFunction
		case modClass:
			kind = docstrings.KindMethod
		default:
			kind = docstrings.KindNestedFunction
		}
		next.modifier = modFunction
		switch {
		case public && sc.modifier == modModule:
			next.visibility = syntax.FunctionVisibility(stmt)
		case public && sc.modifier == modClass:
			next.visibility = syntax.MethodVisibility(stmt)
		}
	}

	var doc *syntax.Expr
	if body != nil {
		doc = w.docstring(body)
	}
	w.defs = append(w.defs, docstrings.Definition{
		Kind:       kind,
		Stmt:       stmt,
		Docstring:  doc,
		Visibility: next.visibility,
		Qualname:   qual,
	})
	if body != nil {
		w.walk(body, next)
	}
}

func isAsync(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "async" {
			return true
		}
	}
	return false
}

// docstring returns the string literal that is the first statement of a
// module or block, if any.
func (w *walker) docstring(block *sitter.Node) *syntax.Expr {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		stmt := block.NamedChild(i)
		if stmt.Type() == "comment" {
			continue
		}
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
			return nil
		}
		lit := stmt.NamedChild(0)
		switch lit.Type() {
		case "string", "concatenated_string":
			return &syntax.Expr{Range: w.rangeOf(lit)}
		}
		return nil
	}
	return nil
}

// decorators reads "@name", "@a.b" and "@a.b(...)" forms.
func (w *walker) decorators(n *sitter.Node) []syntax.Decorator {
	var out []syntax.Decorator
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "decorator" || child.NamedChildCount() == 0 {
			continue
		}
		expr := child.NamedChild(0)
		if expr.Type() == "call" {
			if fn := expr.ChildByFieldName("function"); fn != nil {
				expr = fn
			}
		}
		out = append(out, syntax.Decorator{
			Name:  strings.Join(strings.Fields(w.text(expr)), ""),
			Range: w.rangeOf(child),
		})
	}
	return out
}

// arguments sorts formal parameters into their kinds. Everything before
// "/" is positional-only, everything after "*" or "*args" is keyword-only.
func (w *walker) arguments(params *sitter.Node) *syntax.Arguments {
	args := &syntax.Arguments{}
	if params == nil {
		return args
	}
	kwOnly := false
	add := func(a syntax.Arg) {
		if kwOnly {
			args.KwOnly = append(args.KwOnly, a)
		} else {
			args.Args = append(args.Args, a)
		}
	}

	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case "identifier":
			add(syntax.Arg{Name: w.text(p), Range: w.rangeOf(p)})
		case "default_parameter", "typed_default_parameter":
			if name := p.ChildByFieldName("name"); name != nil {
				add(syntax.Arg{Name: w.text(name), Range: w.rangeOf(name)})
			}
		case "typed_parameter":
			if p.NamedChildCount() == 0 {
				continue
			}
			inner := p.NamedChild(0)
			switch inner.Type() {
			case "list_splat_pattern":
				args.VarArg = w.splatName(inner)
				kwOnly = true
			case "dictionary_splat_pattern":
				args.KwArg = w.splatName(inner)
			default:
				add(syntax.Arg{Name: w.text(inner), Range: w.rangeOf(inner)})
			}
		case "list_splat_pattern":
			args.VarArg = w.splatName(p)
			kwOnly = true
		case "dictionary_splat_pattern":
			args.KwArg = w.splatName(p)
		case "keyword_separator":
			kwOnly = true
		case "positional_separator":
			args.PosOnly = append(args.PosOnly, args.Args...)
			args.Args = nil
		}
	}
	return args
}

func (w *walker) splatName(n *sitter.Node) *syntax.Arg {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if id := n.NamedChild(i); id.Type() == "identifier" {
			return &syntax.Arg{Name: w.text(id), Range: w.rangeOf(id)}
		}
	}
	return nil
}
