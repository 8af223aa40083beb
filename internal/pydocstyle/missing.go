package pydocstyle

import (
	"lintcore/internal/checker"
	"lintcore/internal/diag"
	"lintcore/internal/docstrings"
	"lintcore/internal/rules"
	"lintcore/internal/source"
	"lintcore/internal/syntax"
	"lintcore/internal/violations"
)

// NotMissing reports a definition that has no docstring (D100-D107). It
// returns true when no report was due for a function-like definition, or
// the definition is private; false when a module, package, class or plain
// function was reported.
func NotMissing(c *checker.Checker, def *docstrings.Definition) bool {
	if def.Private() {
		return true
	}

	moduleStart := source.PointRange(source.NewLocation(1, 0))
	emit := func(rule rules.Rule, kind rules.Kind, rng source.Range) {
		if c.Enabled(rule) {
			c.Report(diag.New(kind, rng))
		}
	}

	switch def.Kind {
	case docstrings.KindModule:
		emit(rules.PublicModule, violations.PublicModule{}, moduleStart)
		return false
	case docstrings.KindPackage:
		emit(rules.PublicPackage, violations.PublicPackage{}, moduleStart)
		return false
	case docstrings.KindClass:
		emit(rules.PublicClass, violations.PublicClass{}, def.Stmt.Identifier)
		return false
	case docstrings.KindNestedClass:
		emit(rules.PublicNestedClass, violations.PublicNestedClass{}, def.Stmt.Identifier)
		return false
	case docstrings.KindFunction, docstrings.KindNestedFunction:
		if syntax.IsOverload(def.Stmt) {
			return true
		}
		emit(rules.PublicFunction, violations.PublicFunction{}, def.Stmt.Identifier)
		return false
	case docstrings.KindMethod:
		stmt := def.Stmt
		switch {
		case syntax.IsOverload(stmt) || syntax.IsOverride(stmt):
		case syntax.IsInit(stmt.Name):
			emit(rules.PublicInit, violations.PublicInit{}, stmt.Identifier)
		case syntax.IsNew(stmt.Name) || syntax.IsCall(stmt.Name):
			emit(rules.PublicMethod, violations.PublicMethod{}, stmt.Identifier)
		case syntax.IsMagic(stmt.Name):
			emit(rules.MagicMethod, violations.MagicMethod{}, stmt.Identifier)
		default:
			emit(rules.PublicMethod, violations.PublicMethod{}, stmt.Identifier)
		}
		return true
	}
	return true
}

// NotEmpty reports a blank docstring (D419). False means the remaining
// checks have nothing to look at.
func NotEmpty(c *checker.Checker, doc *docstrings.Docstring) bool {
	if !source.IsBlank(doc.Body) {
		return true
	}
	if c.Enabled(rules.NonEmpty) {
		c.Report(onDocstring(doc, violations.NonEmpty{}))
	}
	return false
}

// IfNeeded reports a docstring on an overload stub (D418).
func IfNeeded(c *checker.Checker, doc *docstrings.Docstring) {
	stmt, ok := functionStmt(doc)
	if !ok || !syntax.IsOverload(stmt) {
		return
	}
	c.Report(diag.New(violations.SkipDocstring{}, stmt.Identifier))
}

// functionStmt returns the owning statement of function-like docstrings.
func functionStmt(doc *docstrings.Docstring) (*syntax.Stmt, bool) {
	if !doc.Kind().IsFunction() || doc.Definition.Stmt == nil {
		return nil, false
	}
	return doc.Definition.Stmt, true
}

func classStmt(doc *docstrings.Docstring) (*syntax.Stmt, bool) {
	if !doc.Kind().IsClass() || doc.Definition.Stmt == nil {
		return nil, false
	}
	return doc.Definition.Stmt, true
}
