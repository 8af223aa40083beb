package syntax

import "testing"

func stmt(name string, decorators ...string) *Stmt {
	s := &Stmt{Kind: StmtFunctionDef, Name: name}
	for _, d := range decorators {
		s.Decorators = append(s.Decorators, Decorator{Name: d})
	}
	return s
}

func TestMethodVisibility(t *testing.T) {
	tests := []struct {
		name string
		stmt *Stmt
		want Visibility
	}{
		{name: "plain", stmt: stmt("run"), want: Public},
		{name: "underscore", stmt: stmt("_run"), want: Private},
		{name: "dunder", stmt: stmt("__init__"), want: Public},
		{name: "setter", stmt: stmt("value", "value.setter"), want: Private},
		{name: "deleter", stmt: stmt("value", "value.deleter"), want: Private},
		{name: "other setter", stmt: stmt("value", "other.setter"), want: Public},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MethodVisibility(tt.stmt); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDecoratorPredicates(t *testing.T) {
	if !IsOverload(stmt("f", "typing.overload")) || !IsOverload(stmt("f", "overload")) {
		t.Fatal("expected overload to match bare and qualified names")
	}
	if IsOverload(stmt("f", "overloaded")) {
		t.Fatal("expected overloaded not to match")
	}
	if !IsOverride(stmt("f", "typing_extensions.override")) {
		t.Fatal("expected override to match")
	}
	if !IsProperty(stmt("f", "functools.cached_property"), nil) {
		t.Fatal("expected cached_property to be a property")
	}
	if !IsProperty(stmt("f", "my.prop"), []string{"my.prop"}) {
		t.Fatal("expected configured decorator to be a property")
	}
	if !IsStaticMethod(stmt("f", "staticmethod")) {
		t.Fatal("expected staticmethod")
	}
}

func TestModuleVisibility(t *testing.T) {
	tests := map[string]Visibility{
		"mod":      Public,
		"_mod":     Private,
		"__init__": Public,
		"__main__": Public,
	}
	for stem, want := range tests {
		if got := ModuleVisibility(stem); got != want {
			t.Fatalf("%s: expected %s, got %s", stem, want, got)
		}
	}
}
