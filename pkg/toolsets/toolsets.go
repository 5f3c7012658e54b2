package toolsets

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AllToolsets is the keyword that enables every toolset.
const AllToolsets = "all"

// Toolset represents a logical group of MCP tools.
type Toolset struct {
	Name        string
	Description string
	Enabled     bool
	readOnly    bool
	writeTools  []server.ServerTool
	readTools   []server.ServerTool
}

// ToolsetInfo provides metadata about a toolset.
type ToolsetInfo struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Enabled        bool   `json:"enabled"`
	ReadOnly       bool   `json:"readOnly"`
	ToolCount      int    `json:"toolCount"`
	ReadToolCount  int    `json:"readToolCount"`
	WriteToolCount int    `json:"writeToolCount"`
}

// ToolsetGroup manages a collection of Toolsets.
type ToolsetGroup struct {
	Toolsets     map[string]*Toolset
	everythingOn bool
	readOnly     bool // propagated to every added toolset
	mu           sync.RWMutex
}

// NewServerTool pairs a tool definition with its handler.
func NewServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

// NewToolset creates a new, disabled Toolset instance.
func NewToolset(name string, description string) *Toolset {
	return &Toolset{
		Name:        name,
		Description: description,
		writeTools:  make([]server.ServerTool, 0),
		readTools:   make([]server.ServerTool, 0),
	}
}

// AddReadTools adds tools without side effects. They stay available in
// read-only mode.
func (t *Toolset) AddReadTools(tools ...server.ServerTool) *Toolset {
	t.readTools = append(t.readTools, tools...)
	return t
}

// AddWriteTools adds tools that change GitLab state. They are dropped when
// the toolset is read-only.
func (t *Toolset) AddWriteTools(tools ...server.ServerTool) *Toolset {
	t.writeTools = append(t.writeTools, tools...)
	return t
}

// GetActiveTools returns the tools to register: nothing when disabled, read
// tools only when read-only.
func (t *Toolset) GetActiveTools() []server.ServerTool {
	if !t.Enabled {
		return nil
	}
	if t.readOnly {
		active := make([]server.ServerTool, len(t.readTools))
		copy(active, t.readTools)
		return active
	}
	active := make([]server.ServerTool, 0, len(t.readTools)+len(t.writeTools))
	active = append(active, t.readTools...)
	active = append(active, t.writeTools...)
	return active
}

// RegisterTools adds the active tools to s and returns how many were added.
func (t *Toolset) RegisterTools(s *server.MCPServer) int {
	active := t.GetActiveTools()
	if len(active) > 0 {
		s.AddTools(active...)
	}
	return len(active)
}

// SetReadOnly forces the toolset into read-only mode.
func (t *Toolset) SetReadOnly() {
	t.readOnly = true
}

// IsReadOnly reports whether write tools are suppressed.
func (t *Toolset) IsReadOnly() bool {
	return t.readOnly
}

// GetDescription returns the toolset's description.
func (t *Toolset) GetDescription() string {
	return t.Description
}

// Tools returns all tools, read tools first.
func (t *Toolset) Tools() []server.ServerTool {
	allTools := make([]server.ServerTool, 0, len(t.readTools)+len(t.writeTools))
	allTools = append(allTools, t.readTools...)
	allTools = append(allTools, t.writeTools...)
	return allTools
}

// ToolNames lists the names of the tools that would be active once enabled.
func (t *Toolset) ToolNames() []string {
	tools := t.readTools
	if !t.readOnly {
		tools = t.Tools()
	}
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	return names
}

// IsEnabled returns whether the toolset is currently enabled.
func (t *Toolset) IsEnabled() bool {
	return t.Enabled
}

// Enable enables the toolset.
func (t *Toolset) Enable() {
	t.Enabled = true
}

// Disable disables the toolset.
func (t *Toolset) Disable() {
	t.Enabled = false
}

func (t *Toolset) info() ToolsetInfo {
	info := ToolsetInfo{
		Name:           t.Name,
		Description:    t.Description,
		Enabled:        t.Enabled,
		ReadOnly:       t.readOnly,
		ReadToolCount:  len(t.readTools),
		WriteToolCount: len(t.writeTools),
	}
	info.ToolCount = info.ReadToolCount
	if !t.readOnly {
		info.ToolCount += info.WriteToolCount
	}
	return info
}

// NewToolsetGroup creates a new manager for multiple Toolsets.
// The readOnly flag applies to all toolsets added later.
func NewToolsetGroup(readOnly bool) *ToolsetGroup {
	return &ToolsetGroup{
		Toolsets: make(map[string]*Toolset),
		readOnly: readOnly,
	}
}

// AddToolset adds a Toolset to the group, replacing one of the same name.
func (tg *ToolsetGroup) AddToolset(ts *Toolset) {
	tg.mu.Lock()
	defer tg.mu.Unlock()

	if tg.readOnly {
		ts.SetReadOnly()
	}
	tg.Toolsets[ts.Name] = ts
}

// Get returns a toolset by name.
func (tg *ToolsetGroup) Get(name string) (*Toolset, bool) {
	tg.mu.RLock()
	defer tg.mu.RUnlock()

	ts, ok := tg.Toolsets[name]
	return ts, ok
}

// EnableToolset enables a single toolset by name.
// Returns an error if the toolset is not found or is already enabled.
func (tg *ToolsetGroup) EnableToolset(name string) error {
	tg.mu.Lock()
	defer tg.mu.Unlock()

	ts, ok := tg.Toolsets[name]
	if !ok {
		return fmt.Errorf("toolset '%s' not found", name)
	}
	if ts.IsEnabled() {
		return fmt.Errorf("toolset '%s' already enabled", name)
	}
	ts.Enable()
	return nil
}

// EnableToolsets enables the named toolsets. The "all" keyword anywhere in
// names enables every toolset.
func (tg *ToolsetGroup) EnableToolsets(names []string) error {
	if len(names) == 0 {
		return errors.New("no toolsets specified to enable")
	}

	for _, name := range names {
		if name == AllToolsets {
			tg.mu.Lock()
			defer tg.mu.Unlock()
			tg.everythingOn = true
			for _, ts := range tg.Toolsets {
				ts.Enable()
			}
			return nil
		}
	}

	tg.everythingOn = false
	for _, name := range names {
		if err := tg.EnableToolset(name); err != nil {
			return err
		}
	}
	return nil
}

// EnableAndRegister enables one toolset at runtime and adds its tools to s.
// It returns the registered tool names.
func (tg *ToolsetGroup) EnableAndRegister(name string, s *server.MCPServer) ([]string, error) {
	if err := tg.EnableToolset(name); err != nil {
		return nil, err
	}
	ts, _ := tg.Get(name)
	ts.RegisterTools(s)
	return ts.ToolNames(), nil
}

// RegisterTools registers the active tools of every enabled toolset with s,
// in toolset name order.
func (tg *ToolsetGroup) RegisterTools(s *server.MCPServer) int {
	tg.mu.RLock()
	defer tg.mu.RUnlock()

	count := 0
	for _, name := range tg.names() {
		if ts := tg.Toolsets[name]; ts.Enabled {
			count += ts.RegisterTools(s)
		}
	}
	return count
}

// ListToolsets returns information about all toolsets, sorted by name.
func (tg *ToolsetGroup) ListToolsets() []ToolsetInfo {
	tg.mu.RLock()
	defer tg.mu.RUnlock()

	infos := make([]ToolsetInfo, 0, len(tg.Toolsets))
	for _, name := range tg.names() {
		infos = append(infos, tg.Toolsets[name].info())
	}
	return infos
}

func (tg *ToolsetGroup) names() []string {
	names := make([]string, 0, len(tg.Toolsets))
	for name := range tg.Toolsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
