package violations

import "lintcore/internal/rules"

// IOError reports a file the driver could not read.
type IOError struct {
	Err string
}

func (IOError) Rule() rules.Rule { return rules.IOError }

func (v IOError) Message() string {
	if v.Err == "" {
		return "I/O error"
	}
	return "I/O error: " + v.Err
}

// SyntaxError reports the first place the parser had to recover.
type SyntaxError struct {
	Err string
}

func (SyntaxError) Rule() rules.Rule { return rules.SyntaxError }

func (v SyntaxError) Message() string {
	if v.Err == "" {
		return "SyntaxError: invalid syntax"
	}
	return "SyntaxError: " + v.Err
}
