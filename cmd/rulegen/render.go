package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

func render(path string, tmpl *template.Template, m model) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, m); err != nil {
		return fmt.Errorf("%s: render: %w", path, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: gofmt: %w", path, err)
	}
	// #nosec G306 -- generated source is world-readable like any other .go file
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

var registryTemplate = template.Must(template.New("registry").Parse(`// Code generated by rulegen from catalog.toml. DO NOT EDIT.

package rules

const (
{{- range $i, $o := .Origins}}
	Origin{{$o.Name}}{{if eq $i 0}} Origin = iota{{end}}
{{- end}}
)

const originCount = {{len .Origins}}

var origins = [originCount]originEntry{
{{- range .Origins}}
	{name: {{printf "%q" .Name}}, title: {{printf "%q" .Title}}, prefixes: []Prefix{ {{- range $j, $p := .Prefixes}}{{if $j}}, {{end}}{Code: {{printf "%q" $p.Code}}{{if $p.Label}}, Label: {{printf "%q" $p.Label}}{{end}}}{{end -}} }},
{{- end}}
}

const (
{{- range $i, $r := .Rules}}
	{{$r.Name}}{{if eq $i 0}} Rule = iota{{end}}
{{- end}}
)

const ruleCount = {{len .Rules}}

var registry = [ruleCount]entry{
{{- range .Rules}}
	{code: {{printf "%q" .Code}}, name: {{printf "%q" .Name}}, origin: Origin{{.Origin}}, source: {{.Source}}},
{{- end}}
}

var redirects = []redirect{
{{- range .Redirects}}
	{from: {{printf "%q" .From}}, to: {{.To}}},
{{- end}}
}

var incompatible = []IncompatiblePair{
{{- range .Incompatible}}
	{A: {{.A}}, B: {{.B}}, Message: {{printf "%q" .Message}}},
{{- end}}
}
`))

var placeholdersTemplate = template.Must(template.New("placeholders").Parse(`// Code generated by rulegen from catalog.toml. DO NOT EDIT.

package violations

import "lintcore/internal/rules"

// Placeholder returns a representative kind for rule. Rules without a
// concrete payload type get Opaque.
func Placeholder(rule rules.Rule) rules.Kind {
	switch rule {
{{- range .Rules}}{{if .Kind}}
	case rules.{{.Name}}:
		return {{.Name}}{}
{{- end}}{{end}}
	default:
		return Opaque{Of: rule}
	}
}
`))
