package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

type catalog struct {
	Origins      []catalogOrigin       `toml:"origin"`
	Rules        []catalogRule         `toml:"rule"`
	Redirects    []catalogRedirect     `toml:"redirect"`
	Incompatible []catalogIncompatible `toml:"incompatible"`
}

type catalogOrigin struct {
	Name     string          `toml:"name"`
	Title    string          `toml:"title"`
	Prefixes []catalogPrefix `toml:"prefixes"`
}

type catalogPrefix struct {
	Code  string `toml:"code"`
	Label string `toml:"label"`
}

type catalogRule struct {
	Code   string `toml:"code"`
	Name   string `toml:"name"`
	Source string `toml:"source"`
	// Kind marks rules that have a concrete payload type in internal/violations.
	Kind bool `toml:"kind"`
}

type catalogRedirect struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

type catalogIncompatible struct {
	A       string `toml:"a"`
	B       string `toml:"b"`
	Message string `toml:"message"`
}

func loadCatalog(path string) (catalog, error) {
	var cat catalog
	meta, err := toml.DecodeFile(path, &cat)
	if err != nil {
		return catalog{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return catalog{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cat, nil
}

type model struct {
	Origins      []modelOrigin
	Rules        []modelRule
	Redirects    []catalogRedirect
	Incompatible []catalogIncompatible
}

type modelOrigin struct {
	Name     string
	Title    string
	Prefixes []catalogPrefix
}

type modelRule struct {
	Code   string
	Name   string
	Origin string
	Source string
	Kind   bool
}

var (
	codePattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)
	sourceNames = map[string]string{
		"":           "SourceAst",
		"Ast":        "SourceAst",
		"Io":         "SourceIo",
		"Lines":      "SourceLines",
		"Tokens":     "SourceTokens",
		"Imports":    "SourceImports",
		"NoQa":       "SourceNoQa",
		"Filesystem": "SourceFilesystem",
	}
)

// buildModel проверяет каталог и вычисляет origin для каждого кода.
func buildModel(cat catalog) (model, error) {
	m := model{Redirects: cat.Redirects, Incompatible: cat.Incompatible}
	for _, o := range cat.Origins {
		if o.Name == "" || len(o.Prefixes) == 0 {
			return model{}, fmt.Errorf("origin %q: name and prefixes are required", o.Title)
		}
		m.Origins = append(m.Origins, modelOrigin(o))
	}

	codes := make(map[string]bool, len(cat.Rules))
	names := make(map[string]bool, len(cat.Rules))
	for _, r := range cat.Rules {
		if !codePattern.MatchString(r.Code) {
			return model{}, fmt.Errorf("rule %q: malformed code", r.Code)
		}
		if codes[r.Code] {
			return model{}, fmt.Errorf("rule %q: duplicate code", r.Code)
		}
		if names[r.Name] {
			return model{}, fmt.Errorf("rule %q: duplicate name %q", r.Code, r.Name)
		}
		codes[r.Code], names[r.Name] = true, true

		source, ok := sourceNames[r.Source]
		if !ok {
			return model{}, fmt.Errorf("rule %q: unknown source %q", r.Code, r.Source)
		}
		origin, ok := longestPrefix(cat.Origins, r.Code)
		if !ok {
			return model{}, fmt.Errorf("rule %q: no origin owns this code", r.Code)
		}
		m.Rules = append(m.Rules, modelRule{
			Code:   r.Code,
			Name:   r.Name,
			Origin: origin,
			Source: source,
			Kind:   r.Kind,
		})
	}

	for _, rd := range cat.Redirects {
		if codes[rd.From] {
			return model{}, fmt.Errorf("redirect %q shadows a live code", rd.From)
		}
		if !names[rd.To] {
			return model{}, fmt.Errorf("redirect %q: unknown target %q", rd.From, rd.To)
		}
	}
	for _, p := range cat.Incompatible {
		if !names[p.A] || !names[p.B] {
			return model{}, fmt.Errorf("incompatible pair %s/%s: unknown rule", p.A, p.B)
		}
	}
	return m, nil
}

func longestPrefix(origins []catalogOrigin, code string) (string, bool) {
	best, bestLen := "", 0
	for _, o := range origins {
		for _, p := range o.Prefixes {
			if len(p.Code) > bestLen && strings.HasPrefix(code, p.Code) {
				best, bestLen = o.Name, len(p.Code)
			}
		}
	}
	return best, bestLen > 0
}
