package toolsets

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("ok"), nil
}

func toolset(name string, read, write []string) *Toolset {
	ts := NewToolset(name, "Toolset "+name)
	for _, n := range read {
		ts.AddReadTools(NewServerTool(mcp.NewTool(n), noopHandler))
	}
	for _, n := range write {
		ts.AddWriteTools(NewServerTool(mcp.NewTool(n), noopHandler))
	}
	return ts
}

func TestNewToolsetGroup(t *testing.T) {
	tg := NewToolsetGroup(false)
	require.NotNil(t, tg)
	assert.Empty(t, tg.Toolsets)
	assert.False(t, tg.readOnly)
	assert.False(t, tg.everythingOn)

	assert.True(t, NewToolsetGroup(true).readOnly)
}

func TestToolsetGroup_AddToolset(t *testing.T) {
	tg := NewToolsetGroup(false)
	ts1 := NewToolset("ts1", "Toolset 1")
	tg.AddToolset(ts1)
	assert.Same(t, ts1, tg.Toolsets["ts1"])
	assert.False(t, ts1.IsReadOnly())

	readOnly := NewToolsetGroup(true)
	ts2 := NewToolset("ts2", "Toolset 2")
	readOnly.AddToolset(ts2)
	assert.True(t, ts2.IsReadOnly(), "read-only group forces read-only toolsets")

	replacement := NewToolset("ts1", "Toolset 1 Updated")
	tg.AddToolset(replacement)
	assert.Len(t, tg.Toolsets, 1)
	assert.Equal(t, "Toolset 1 Updated", tg.Toolsets["ts1"].Description)
	assert.False(t, tg.Toolsets["ts1"].Enabled)
}

func TestToolsetGroup_EnableToolset(t *testing.T) {
	tg := NewToolsetGroup(false)
	ts1 := NewToolset("ts1", "")
	tg.AddToolset(ts1)

	err := tg.EnableToolset("non-existent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toolset 'non-existent' not found")

	require.NoError(t, tg.EnableToolset("ts1"))
	assert.True(t, ts1.Enabled)

	err = tg.EnableToolset("ts1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toolset 'ts1' already enabled")
}

func TestToolsetGroup_EnableToolsets(t *testing.T) {
	tests := []struct {
		name          string
		namesToEnable []string
		errContains   string
		expectEnabled []string
		expectAllOn   bool
	}{
		{
			name:          "subset",
			namesToEnable: []string{"ts1", "ts3"},
			expectEnabled: []string{"ts1", "ts3"},
		},
		{
			name:          "all keyword",
			namesToEnable: []string{"all"},
			expectEnabled: []string{"ts1", "ts2", "ts3"},
			expectAllOn:   true,
		},
		{
			name:          "all keyword among names",
			namesToEnable: []string{"ts1", "all"},
			expectEnabled: []string{"ts1", "ts2", "ts3"},
			expectAllOn:   true,
		},
		{
			name:          "unknown name stops after earlier ones",
			namesToEnable: []string{"ts1", "non-existent"},
			errContains:   "toolset 'non-existent' not found",
			expectEnabled: []string{"ts1"},
		},
		{
			name:          "empty list",
			namesToEnable: []string{},
			errContains:   "no toolsets specified",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tg := NewToolsetGroup(false)
			for _, n := range []string{"ts1", "ts2", "ts3"} {
				tg.AddToolset(NewToolset(n, ""))
			}

			err := tg.EnableToolsets(tc.namesToEnable)
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectAllOn, tg.everythingOn)

			var enabled []string
			for _, info := range tg.ListToolsets() {
				if info.Enabled {
					enabled = append(enabled, info.Name)
				}
			}
			assert.ElementsMatch(t, tc.expectEnabled, enabled)
		})
	}
}

func TestToolset_GetActiveTools(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		readOnly bool
		expected []string
	}{
		{name: "disabled", expected: nil},
		{name: "enabled", enabled: true, expected: []string{"read1", "read2", "write1"}},
		{name: "read-only", enabled: true, readOnly: true, expected: []string{"read1", "read2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := toolset("test", []string{"read1", "read2"}, []string{"write1"})
			if tc.enabled {
				ts.Enable()
			}
			if tc.readOnly {
				ts.SetReadOnly()
			}

			active := ts.GetActiveTools()
			if tc.expected == nil {
				assert.Nil(t, active)
				return
			}
			names := make([]string, 0, len(active))
			for _, tool := range active {
				names = append(names, tool.Tool.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestToolset_ToolNamesAndInfo(t *testing.T) {
	ts := toolset("issues", []string{"getIssues"}, []string{"postIssues", "deleteIssues"})
	assert.Equal(t, []string{"getIssues", "postIssues", "deleteIssues"}, ts.ToolNames())
	assert.Equal(t, ToolsetInfo{
		Name:           "issues",
		Description:    "Toolset issues",
		ToolCount:      3,
		ReadToolCount:  1,
		WriteToolCount: 2,
	}, ts.info())

	ts.SetReadOnly()
	assert.Equal(t, []string{"getIssues"}, ts.ToolNames())
	assert.Equal(t, 1, ts.info().ToolCount)
}

func TestToolsetGroup_ListToolsetsSorted(t *testing.T) {
	tg := NewToolsetGroup(false)
	for _, n := range []string{"users", "branches", "issues"} {
		tg.AddToolset(NewToolset(n, ""))
	}

	var names []string
	for _, info := range tg.ListToolsets() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"branches", "issues", "users"}, names)
}

func TestToolsetGroup_RegisterTools(t *testing.T) {
	s := server.NewMCPServer("test", "1.0.0", server.WithToolCapabilities(true))

	tg := NewToolsetGroup(true)
	tg.AddToolset(toolset("a", []string{"getA"}, []string{"postA"}))
	tg.AddToolset(toolset("b", []string{"getB"}, nil))
	require.NoError(t, tg.EnableToolsets([]string{"a"}))

	assert.Equal(t, 1, tg.RegisterTools(s), "only read tools of enabled toolsets")

	names, err := tg.EnableAndRegister("b", s)
	require.NoError(t, err)
	assert.Equal(t, []string{"getB"}, names)

	_, err = tg.EnableAndRegister("b", s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already enabled")
}

func TestToolset_EnableDisable(t *testing.T) {
	ts := NewToolset("test", "desc")
	assert.False(t, ts.IsEnabled())
	ts.Enable()
	assert.True(t, ts.IsEnabled())
	ts.Disable()
	assert.False(t, ts.IsEnabled())
	assert.Equal(t, "desc", ts.GetDescription())
}
