package endpoints

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog is an ordered, validated set of endpoints indexed by tool name.
type Catalog struct {
	endpoints    []Endpoint
	byName       map[string]int
	toolsets     []string
	descriptions map[string]string
}

// NewCatalog validates eps and builds a catalog. Tool names must be unique.
func NewCatalog(eps []Endpoint, toolsetDescriptions map[string]string) (*Catalog, error) {
	c := &Catalog{
		endpoints:    make([]Endpoint, 0, len(eps)),
		byName:       make(map[string]int, len(eps)),
		descriptions: make(map[string]string, len(toolsetDescriptions)),
	}
	for k, v := range toolsetDescriptions {
		c.descriptions[k] = v
	}

	seenToolset := make(map[string]bool)
	for _, ep := range eps {
		if err := ep.Validate(); err != nil {
			return nil, err
		}
		name := ep.ToolName()
		if prev, ok := c.byName[name]; ok {
			other := c.endpoints[prev]
			return nil, fmt.Errorf("tool name %q used by both %s %s and %s %s", name, other.Method, other.Path, ep.Method, ep.Path)
		}
		c.byName[name] = len(c.endpoints)
		c.endpoints = append(c.endpoints, ep)
		if !seenToolset[ep.Toolset] {
			seenToolset[ep.Toolset] = true
			c.toolsets = append(c.toolsets, ep.Toolset)
		}
	}
	sort.Strings(c.toolsets)
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the generated endpoint table.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = NewCatalog(generatedEndpoints(), generatedToolsetDescriptions)
	})
	return defaultCatalog, defaultErr
}

// Len returns the number of endpoints.
func (c *Catalog) Len() int { return len(c.endpoints) }

// Endpoints returns a copy of all endpoints in catalog order.
func (c *Catalog) Endpoints() []Endpoint {
	out := make([]Endpoint, len(c.endpoints))
	copy(out, c.endpoints)
	return out
}

// Lookup finds the endpoint behind a tool name.
func (c *Catalog) Lookup(toolName string) (Endpoint, bool) {
	i, ok := c.byName[toolName]
	if !ok {
		return Endpoint{}, false
	}
	return c.endpoints[i], true
}

// Toolsets returns the sorted toolset names present in the catalog.
func (c *Catalog) Toolsets() []string {
	out := make([]string, len(c.toolsets))
	copy(out, c.toolsets)
	return out
}

// ByToolset returns the endpoints of a toolset in catalog order.
func (c *Catalog) ByToolset(name string) []Endpoint {
	var out []Endpoint
	for _, ep := range c.endpoints {
		if ep.Toolset == name {
			out = append(out, ep)
		}
	}
	return out
}

// ToolsetDescription returns the human readable description of a toolset.
func (c *Catalog) ToolsetDescription(name string) string {
	if d, ok := c.descriptions[name]; ok {
		return d
	}
	return fmt.Sprintf("GitLab %s endpoints.", name)
}
