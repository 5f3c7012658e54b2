// Package openapi turns GitLab's published OpenAPI document into endpoint
// definitions. Both Swagger 2.0 (the format GitLab ships as openapi_v2.yaml)
// and OpenAPI 3.x documents are accepted.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

// DefaultBasePath is stripped from every path of the document.
const DefaultBasePath = "/api/v4"

// Options controls how operations are mapped to endpoints.
type Options struct {
	// BasePath is removed from the front of every path. Defaults to DefaultBasePath.
	BasePath string
	// TagToolsets maps an operation tag to a toolset name. Unmapped tags are
	// converted to snake case.
	TagToolsets map[string]string
}

// LoadFile reads and parses an OpenAPI document from disk.
func LoadFile(path string) (*openapi3.T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI document: %w", err)
	}
	return Load(data)
}

// Load parses an OpenAPI 3.x or Swagger 2.0 document given as JSON or YAML.
// Swagger documents are converted to OpenAPI 3.
func Load(data []byte) (*openapi3.T, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode OpenAPI document: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("empty OpenAPI document")
	}

	if v, ok := raw["swagger"]; ok {
		if fmt.Sprint(v) != "2.0" {
			return nil, fmt.Errorf("unsupported swagger version %v", v)
		}
		// openapi2.T only has JSON tags.
		asJSON, err := json.Marshal(normalize(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to convert swagger document to JSON: %w", err)
		}
		var doc2 openapi2.T
		if err := json.Unmarshal(asJSON, &doc2); err != nil {
			return nil, fmt.Errorf("failed to parse swagger document: %w", err)
		}
		doc, err := openapi2conv.ToV3(&doc2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert swagger document to OpenAPI 3: %w", err)
		}
		return doc, nil
	}

	if _, ok := raw["openapi"]; !ok {
		return nil, fmt.Errorf("document has neither an 'openapi' nor a 'swagger' version field")
	}
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	return doc, nil
}

// normalize rewrites map[any]any values produced by the YAML decoder (for
// example unquoted response codes) into JSON encodable maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}

var methodOrder = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Endpoints maps every operation of doc to an endpoint definition, ordered by
// path and then by method.
func Endpoints(doc *openapi3.T, opts Options) ([]endpoints.Endpoint, error) {
	if doc == nil || doc.Paths == nil {
		return nil, fmt.Errorf("document has no paths")
	}
	basePath := opts.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}

	pathMap := doc.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var out []endpoints.Endpoint
	for _, rawPath := range paths {
		item := pathMap[rawPath]
		if item == nil {
			continue
		}
		path := strings.TrimPrefix(rawPath, strings.TrimSuffix(basePath, "/"))
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		ops := item.Operations()
		for _, method := range methodOrder {
			op, ok := ops[method]
			if !ok || op == nil {
				continue
			}
			ep := endpoints.Endpoint{
				Method:      method,
				Path:        path,
				Toolset:     toolsetFor(op, path, opts.TagToolsets),
				Description: describe(op, method, path),
			}
			ep.Params = collectParams(ep, item.Parameters, op)
			if err := ep.Validate(); err != nil {
				return nil, err
			}
			out = append(out, ep)
		}
	}
	return out, nil
}

func describe(op *openapi3.Operation, method, path string) string {
	if s := strings.TrimSpace(op.Summary); s != "" {
		return s
	}
	if d := strings.TrimSpace(op.Description); d != "" {
		return d
	}
	return method + " " + path
}

func toolsetFor(op *openapi3.Operation, path string, tagToolsets map[string]string) string {
	if len(op.Tags) > 0 {
		tag := op.Tags[0]
		if ts, ok := tagToolsets[tag]; ok {
			return ts
		}
		return snake(tag)
	}
	first := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
	if first == "" {
		return "instance"
	}
	return snake(first)
}

func snake(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func collectParams(ep endpoints.Endpoint, shared openapi3.Parameters, op *openapi3.Operation) []endpoints.Param {
	var params []endpoints.Param
	index := make(map[string]int)

	add := func(p endpoints.Param, override bool) {
		if i, ok := index[p.Name]; ok {
			if override {
				params[i] = p
			}
			return
		}
		index[p.Name] = len(params)
		params = append(params, p)
	}

	for _, group := range []struct {
		params   openapi3.Parameters
		override bool
	}{{shared, false}, {op.Parameters, true}} {
		for _, ref := range group.params {
			if ref == nil || ref.Value == nil {
				continue
			}
			if p, ok := fromParameter(ep, ref.Value); ok {
				add(p, group.override)
			}
		}
	}

	for _, p := range bodyParams(op.RequestBody) {
		add(p, false)
	}

	// Some operations use placeholders they never declare.
	for _, name := range ep.PathParams() {
		if _, ok := index[name]; !ok {
			add(endpoints.Param{
				Name:        name,
				In:          endpoints.InPath,
				Type:        endpoints.TypeString,
				Required:    true,
				Description: "The " + strings.ReplaceAll(name, "_", " "),
			}, false)
		}
	}
	return params
}

func fromParameter(ep endpoints.Endpoint, v *openapi3.Parameter) (endpoints.Param, bool) {
	p := endpoints.Param{
		Name:        strings.TrimSuffix(v.Name, "[]"),
		Required:    v.Required,
		Description: strings.TrimSpace(v.Description),
	}
	switch v.In {
	case openapi3.ParameterInPath:
		p.In = endpoints.InPath
		p.Required = true
	case openapi3.ParameterInQuery:
		// Query parameters on write verbs have to stay in the query string.
		if !endpoints.IsReadVerb(ep.Method) {
			p.In = endpoints.InQuery
		}
	default:
		return endpoints.Param{}, false
	}
	applySchema(&p, v.Schema)
	return p, true
}

func bodyParams(ref *openapi3.RequestBodyRef) []endpoints.Param {
	if ref == nil || ref.Value == nil || len(ref.Value.Content) == 0 {
		return nil
	}
	media := ref.Value.Content.Get("application/json")
	if media == nil {
		types := make([]string, 0, len(ref.Value.Content))
		for t := range ref.Value.Content {
			types = append(types, t)
		}
		sort.Strings(types)
		media = ref.Value.Content[types[0]]
	}
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil
	}
	schema := media.Schema.Value

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]endpoints.Param, 0, len(names))
	for _, name := range names {
		prop := schema.Properties[name]
		p := endpoints.Param{
			Name:     strings.TrimSuffix(name, "[]"),
			Required: required[name],
		}
		if prop != nil && prop.Value != nil {
			p.Description = strings.TrimSpace(prop.Value.Description)
		}
		applySchema(&p, prop)
		params = append(params, p)
	}
	return params
}

func applySchema(p *endpoints.Param, ref *openapi3.SchemaRef) {
	p.Type = endpoints.TypeString
	if ref == nil || ref.Value == nil {
		return
	}
	s := ref.Value
	p.Type = paramType(s.Type)
	if p.Type == endpoints.TypeArray {
		p.Items = endpoints.TypeString
		if s.Items != nil && s.Items.Value != nil {
			p.Items = paramType(s.Items.Value.Type)
			if p.Items == endpoints.TypeArray {
				p.Items = endpoints.TypeString
			}
		}
	}
	for _, e := range s.Enum {
		if e == nil {
			continue
		}
		p.Enum = append(p.Enum, fmt.Sprint(e))
	}
	if p.Type != endpoints.TypeString {
		// Enums of non-string parameters cannot be expressed as strings.
		p.Enum = nil
	}
}

func paramType(t *openapi3.Types) endpoints.ParamType {
	if t == nil {
		return endpoints.TypeString
	}
	for _, name := range t.Slice() {
		switch name {
		case openapi3.TypeInteger:
			return endpoints.TypeInteger
		case openapi3.TypeNumber:
			return endpoints.TypeNumber
		case openapi3.TypeBoolean:
			return endpoints.TypeBoolean
		case openapi3.TypeArray:
			return endpoints.TypeArray
		case openapi3.TypeObject:
			return endpoints.TypeObject
		case openapi3.TypeString:
			return endpoints.TypeString
		}
	}
	return endpoints.TypeString
}
