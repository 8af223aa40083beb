package syntax

import "strings"

// Visibility of a definition for the missing-docstring rules.
type Visibility uint8

const (
	Public Visibility = iota
	Private
)

func (v Visibility) String() string {
	if v == Private {
		return "private"
	}
	return "public"
}

// IsMagic reports dunder names such as "__init__".
func IsMagic(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// IsInit reports "__init__".
func IsInit(name string) bool { return name == "__init__" }

// IsNew reports "__new__".
func IsNew(name string) bool { return name == "__new__" }

// IsCall reports "__call__".
func IsCall(name string) bool { return name == "__call__" }

// IsTest reports unittest/pytest style test function names.
func IsTest(name string) bool {
	return name == "runTest" || strings.HasPrefix(name, "test")
}

func hasDecorator(s *Stmt, match func(string) bool) bool {
	if s == nil {
		return false
	}
	for _, d := range s.Decorators {
		if match(d.Name) {
			return true
		}
	}
	return false
}

func nameOrQualified(target string) func(string) bool {
	return func(name string) bool {
		return name == target || strings.HasSuffix(name, "."+target)
	}
}

// IsOverload reports "@overload" / "@typing.overload".
func IsOverload(s *Stmt) bool { return hasDecorator(s, nameOrQualified("overload")) }

// IsOverride reports "@override" / "@typing_extensions.override".
func IsOverride(s *Stmt) bool { return hasDecorator(s, nameOrQualified("override")) }

// IsStaticMethod reports "@staticmethod".
func IsStaticMethod(s *Stmt) bool {
	return hasDecorator(s, func(name string) bool { return name == "staticmethod" })
}

// IsProperty reports "@property", "@functools.cached_property" and any of
// the extra decorator names.
func IsProperty(s *Stmt, extra []string) bool {
	return hasDecorator(s, func(name string) bool {
		switch name {
		case "property", "cached_property", "functools.cached_property", "abc.abstractproperty":
			return true
		}
		for _, e := range extra {
			if name == e {
				return true
			}
		}
		return false
	})
}

// ModuleVisibility is private for "_name.py", public for anything else
// including "__init__.py" and "__main__.py".
func ModuleVisibility(stem string) Visibility {
	if strings.HasPrefix(stem, "_") && !IsMagic(stem) {
		return Private
	}
	return Public
}

// FunctionVisibility applies to module-level functions.
func FunctionVisibility(s *Stmt) Visibility {
	if strings.HasPrefix(s.Name, "_") {
		return Private
	}
	return Public
}

// ClassVisibility applies to classes at any depth.
func ClassVisibility(s *Stmt) Visibility {
	if strings.HasPrefix(s.Name, "_") {
		return Private
	}
	return Public
}

// MethodVisibility: property setters and deleters are private, dunders are
// public, other underscore names are private.
func MethodVisibility(s *Stmt) Visibility {
	if hasDecorator(s, func(name string) bool {
		return name == s.Name+".setter" || name == s.Name+".deleter"
	}) {
		return Private
	}
	if IsMagic(s.Name) {
		return Public
	}
	if strings.HasPrefix(s.Name, "_") {
		return Private
	}
	return Public
}
