package rules

// LintSource is the representation of a file a rule inspects.
type LintSource uint8

const (
	SourceAst LintSource = iota
	SourceIo
	SourceLines
	SourceTokens
	SourceImports
	SourceNoQa
	SourceFilesystem
)

func (s LintSource) String() string {
	switch s {
	case SourceAst:
		return "Ast"
	case SourceIo:
		return "Io"
	case SourceLines:
		return "Lines"
	case SourceTokens:
		return "Tokens"
	case SourceImports:
		return "Imports"
	case SourceNoQa:
		return "NoQa"
	case SourceFilesystem:
		return "Filesystem"
	}
	return "Unknown"
}

// LintSources lists every source in declaration order.
func LintSources() []LintSource {
	return []LintSource{SourceAst, SourceIo, SourceLines, SourceTokens, SourceImports, SourceNoQa, SourceFilesystem}
}
