// Package codegen renders endpoint definitions as Go source for the
// endpoints package.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

// Header starts every generated file.
const Header = "// Code generated by gen-endpoints. DO NOT EDIT."

// File is one rendered source file.
type File struct {
	Name   string
	Source []byte
}

var funcs = template.FuncMap{
	"quote":    strconv.Quote,
	"varName":  varName,
	"location": location,
	"ptype":    paramType,
	"strs":     stringSlice,
}

var toolsetTmpl = template.Must(template.New("toolset").Funcs(funcs).Parse(`{{.Header}}

package {{.Package}}

var {{varName .Toolset}} = []Endpoint{
{{- range .Endpoints}}
	{
		Method: {{quote .Method}},
		Path: {{quote .Path}},
		Toolset: {{quote .Toolset}},
		Description: {{quote .Description}},
		{{- if .Params}}
		Params: []Param{
		{{- range .Params}}
			{Name: {{quote .Name}},{{with location .In}} In: {{.}},{{end}} Type: {{ptype .Type}},{{if eq .Type "array"}} Items: {{ptype .Items}},{{end}}{{if .Required}} Required: true,{{end}} Description: {{quote .Description}}{{if .Enum}}, Enum: {{strs .Enum}}{{end}}},
		{{- end}}
		},
		{{- end}}
	},
{{- end}}
}
`))

var catalogTmpl = template.Must(template.New("catalog").Funcs(funcs).Parse(`{{.Header}}

package {{.Package}}

func generatedEndpoints() []Endpoint {
	var eps []Endpoint
{{- range .Toolsets}}
	eps = append(eps, {{varName .}}...)
{{- end}}
	return eps
}

var generatedToolsetDescriptions = map[string]string{
{{- range .Toolsets}}
	{{quote .}}: {{quote (index $.Descriptions .)}},
{{- end}}
}
`))

// Render produces one file per toolset plus the catalog file. The output is
// gofmt formatted and ordered by toolset name.
func Render(pkg string, eps []endpoints.Endpoint, descriptions map[string]string) ([]File, error) {
	byToolset := make(map[string][]endpoints.Endpoint)
	for _, ep := range eps {
		byToolset[ep.Toolset] = append(byToolset[ep.Toolset], ep)
	}
	toolsets := make([]string, 0, len(byToolset))
	for ts := range byToolset {
		toolsets = append(toolsets, ts)
	}
	sort.Strings(toolsets)

	descs := make(map[string]string, len(toolsets))
	for _, ts := range toolsets {
		d, ok := descriptions[ts]
		if !ok || d == "" {
			d = fmt.Sprintf("GitLab %s endpoints.", ts)
		}
		descs[ts] = d
	}

	files := make([]File, 0, len(toolsets)+1)
	for _, ts := range toolsets {
		src, err := execute(toolsetTmpl, map[string]any{
			"Header":    Header,
			"Package":   pkg,
			"Toolset":   ts,
			"Endpoints": byToolset[ts],
		})
		if err != nil {
			return nil, fmt.Errorf("toolset %s: %w", ts, err)
		}
		files = append(files, File{Name: "zz_generated_" + ts + ".go", Source: src})
	}

	src, err := execute(catalogTmpl, map[string]any{
		"Header":       Header,
		"Package":      pkg,
		"Toolsets":     toolsets,
		"Descriptions": descs,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	files = append(files, File{Name: "zz_generated_catalog.go", Source: src})
	return files, nil
}

// Write stores files in dir after removing previously generated files, so
// that toolsets which disappeared upstream do not linger.
func Write(dir string, files []File) error {
	old, err := filepath.Glob(filepath.Join(dir, "zz_generated_*.go"))
	if err != nil {
		return err
	}
	for _, f := range old {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("failed to remove %s: %w", f, err)
		}
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Source, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
	}
	return nil
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return src, nil
}

// varName turns a toolset name into the identifier of its endpoint slice,
// e.g. merge_requests -> mergeRequestsEndpoints.
func varName(toolset string) string {
	parts := strings.Split(toolset, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	b.WriteString("Endpoints")
	return b.String()
}

func location(l endpoints.Location) string {
	switch l {
	case endpoints.InPath:
		return "InPath"
	case endpoints.InQuery:
		return "InQuery"
	case endpoints.InBody:
		return "InBody"
	}
	return ""
}

func paramType(t endpoints.ParamType) string {
	switch t {
	case endpoints.TypeInteger:
		return "TypeInteger"
	case endpoints.TypeNumber:
		return "TypeNumber"
	case endpoints.TypeBoolean:
		return "TypeBoolean"
	case endpoints.TypeArray:
		return "TypeArray"
	case endpoints.TypeObject:
		return "TypeObject"
	}
	return "TypeString"
}

func stringSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
