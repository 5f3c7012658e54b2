package endpoints

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// Location tells where a parameter travels in the outgoing request.
// The zero value means the HTTP verb decides: query string for read
// verbs, JSON body for write verbs.
type Location string

const (
	InDefault Location = ""
	InPath    Location = "path"
	InQuery   Location = "query"
	InBody    Location = "body"
)

// ParamType is the JSON schema type of a parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
	TypeObject  ParamType = "object"
)

// Param describes a single input field of an endpoint.
type Param struct {
	Name        string
	In          Location
	Type        ParamType
	Items       ParamType // element type when Type is TypeArray
	Required    bool
	Description string
	Enum        []string
}

// Endpoint is one GitLab REST API operation.
type Endpoint struct {
	Method      string
	Path        string // relative to /api/v4, placeholders in braces
	Toolset     string
	Description string
	Params      []Param
}

var placeholderRE = regexp.MustCompile(`\{([^{}]+)\}`)

var knownMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodHead:   true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// IsReadVerb reports whether arguments of the method go to the query string.
func IsReadVerb(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return true
	}
	return false
}

// ReadOnly reports whether calling the endpoint has no side effects.
func (e Endpoint) ReadOnly() bool {
	m := strings.ToUpper(e.Method)
	return m == http.MethodGet || m == http.MethodHead
}

// PathParams returns the placeholder names of the path in order.
func (e Endpoint) PathParams() []string {
	matches := placeholderRE.FindAllStringSubmatch(e.Path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Param looks up a declared parameter by name.
func (e Endpoint) Param(name string) (Param, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// LocationOf resolves where p is sent for this endpoint.
func (e Endpoint) LocationOf(p Param) Location {
	if p.In != InDefault {
		return p.In
	}
	return e.DefaultLocation()
}

// DefaultLocation is the location of undeclared or unplaced arguments.
func (e Endpoint) DefaultLocation() Location {
	if IsReadVerb(e.Method) {
		return InQuery
	}
	return InBody
}

// Validate checks the endpoint definition for consistency.
func (e Endpoint) Validate() error {
	if !knownMethods[strings.ToUpper(e.Method)] {
		return fmt.Errorf("endpoint %s %s: unsupported method", e.Method, e.Path)
	}
	if !strings.HasPrefix(e.Path, "/") {
		return fmt.Errorf("endpoint %s %s: path must start with '/'", e.Method, e.Path)
	}
	if e.Toolset == "" {
		return fmt.Errorf("endpoint %s %s: toolset is required", e.Method, e.Path)
	}

	seen := make(map[string]bool, len(e.Params))
	for _, p := range e.Params {
		if p.Name == "" {
			return fmt.Errorf("endpoint %s %s: parameter without name", e.Method, e.Path)
		}
		if seen[p.Name] {
			return fmt.Errorf("endpoint %s %s: duplicate parameter %q", e.Method, e.Path, p.Name)
		}
		seen[p.Name] = true
		if p.Type == TypeArray && p.Items == "" {
			return fmt.Errorf("endpoint %s %s: array parameter %q has no item type", e.Method, e.Path, p.Name)
		}
	}

	for _, name := range e.PathParams() {
		p, ok := e.Param(name)
		if !ok {
			return fmt.Errorf("endpoint %s %s: placeholder {%s} is not declared", e.Method, e.Path, name)
		}
		if p.In != InPath || !p.Required {
			return fmt.Errorf("endpoint %s %s: placeholder {%s} must be a required path parameter", e.Method, e.Path, name)
		}
	}
	return nil
}
