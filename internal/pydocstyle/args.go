package pydocstyle

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"lintcore/internal/checker"
	"lintcore/internal/diag"
	"lintcore/internal/docstrings"
	"lintcore/internal/source"
	"lintcore/internal/syntax"
	"lintcore/internal/violations"
)

// MissingArgs reports parameters of the owning function that are absent
// from documented (D417). Names starting with '_' are never required, and
// the receiver of a non-static method is skipped. The range spans the
// missing parameters; the parent is the function statement.
func MissingArgs(c *checker.Checker, doc *docstrings.Docstring, documented map[string]struct{}) {
	stmt, ok := functionStmt(doc)
	if !ok || stmt.Args == nil {
		return
	}
	args := stmt.Args

	var params []syntax.Arg
	params = append(params, args.PosOnly...)
	params = append(params, args.Args...)
	params = append(params, args.KwOnly...)
	if doc.Kind() == docstrings.KindMethod && !syntax.IsStaticMethod(stmt) && len(params) > 0 {
		params = params[1:]
	}

	missing := map[string]source.Range{}
	for _, p := range params {
		if _, ok := documented[p.Name]; !ok && !strings.HasPrefix(p.Name, "_") {
			missing[p.Name] = p.Range
		}
	}
	starred := func(arg *syntax.Arg, stars string) {
		if arg == nil || strings.HasPrefix(arg.Name, "_") {
			return
		}
		if _, ok := documented[arg.Name]; ok {
			return
		}
		if _, ok := documented[stars+arg.Name]; ok {
			return
		}
		missing[stars+arg.Name] = arg.Range
	}
	starred(args.VarArg, "*")
	starred(args.KwArg, "**")

	if len(missing) == 0 {
		return
	}
	names := make([]string, 0, len(missing))
	for n := range missing {
		names = append(names, n)
	}
	sort.Strings(names)

	// указываем на сами аргументы, функция целиком идёт в parent
	rng := missing[names[0]]
	for _, n := range names[1:] {
		rng = rng.Cover(missing[n])
	}
	c.Report(diag.New(violations.DocumentAllArguments{Names: names}, rng).WithParent(stmt.Range))
}

// googleArg matches "name (type): description" blocks.
var googleArg = regexp.MustCompile(`^\s*(\*?\*?\w+)\s*(\(.*?\))?\s*:\n?\s*.+`)

// argsSection collects names from a Google "Args:" section.
func argsSection(c *checker.Checker, doc *docstrings.Docstring, ctx *docstrings.SectionContext) {
	if len(ctx.FollowingLines) == 0 {
		MissingArgs(c, doc, nil)
		return
	}

	lead := source.LeadingSpace(ctx.FollowingLines[0])
	var relevant []string
	for _, line := range ctx.FollowingLines {
		if strings.HasPrefix(line, lead) || line == "" {
			relevant = append(relevant, line)
		}
	}
	content := source.Dedent(strings.Join(relevant, "\n"))

	// строка с отступом продолжает описание предыдущего аргумента
	var blocks []string
	for _, line := range source.Lines(strings.TrimSpace(content)) {
		if line == "" || unicode.IsSpace([]rune(line)[0]) {
			if len(blocks) > 0 {
				blocks[len(blocks)-1] += line + "\n"
			}
			continue
		}
		blocks = append(blocks, line+"\n")
	}

	documented := map[string]struct{}{}
	for _, block := range blocks {
		if m := googleArg.FindStringSubmatch(block); m != nil {
			documented[m[1]] = struct{}{}
		}
	}
	MissingArgs(c, doc, documented)
}

// parametersSection collects names from a NumPy "Parameters" section.
// A parameter line sits at the header's indentation and is followed by a
// more indented description; several names may share one line.
func parametersSection(c *checker.Checker, doc *docstrings.Docstring, ctx *docstrings.SectionContext) {
	sectionIndent := source.LeadingSpace(ctx.Line)
	joined := strings.ReplaceAll(strings.Join(ctx.FollowingLines, "\n"), "\\\n", "")
	lines := source.LinesWithTrailingNewline(joined)

	documented := map[string]struct{}{}
	for i := 1; i < len(lines); i++ {
		current, next := lines[i-1], lines[i]
		lead := source.LeadingSpace(current)
		if lead != sectionIndent || source.RuneLen(source.LeadingSpace(next)) <= source.RuneLen(lead) || source.IsBlank(next) {
			continue
		}
		names := strings.TrimSpace(current)
		if idx := strings.IndexByte(current, ':'); idx >= 0 {
			names = current[:idx]
		}
		for _, name := range strings.Split(names, ",") {
			documented[strings.TrimSpace(name)] = struct{}{}
		}
	}
	MissingArgs(c, doc, documented)
}
