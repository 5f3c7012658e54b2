package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/toolsets"
)

func noopTool(name string) server.ServerTool {
	return toolsets.NewServerTool(mcp.NewTool(name), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(name), nil
	})
}

func discoveryGroup() *toolsets.ToolsetGroup {
	tg := toolsets.NewToolsetGroup(false)
	tg.AddToolset(toolsets.NewToolset("issues", "Project issues").
		AddReadTools(noopTool("getProjectsIdIssues"), noopTool("getIssues")).
		AddWriteTools(noopTool("postProjectsIdIssues")))

	jobs := toolsets.NewToolset("jobs", "CI jobs")
	for i := range 5 {
		jobs.AddReadTools(noopTool(fmt.Sprintf("getJob%d", i)))
	}
	tg.AddToolset(jobs)
	return tg
}

// serverToolNames asks s for its tool list the way a client would.
func serverToolNames(t *testing.T, s *server.MCPServer) []string {
	t.Helper()
	msg := `{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`
	resp := s.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, resp)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	names := make([]string, 0, len(decoded.Result.Tools))
	for _, tool := range decoded.Result.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	return names
}

func TestNewDynamicToolsetManager(t *testing.T) {
	tg := toolsets.NewToolsetGroup(false)
	s := NewServer("test", "1.0.0")

	dtm := NewDynamicToolsetManager(tg, s, nil)
	assert.Same(t, tg, dtm.toolsetGroup)
	assert.Same(t, s, dtm.mcpServer)
	assert.NotNil(t, dtm.logger)
	assert.False(t, dtm.dynamicMode)

	logger, hook := logtest.NewNullLogger()
	dtm = NewDynamicToolsetManager(tg, s, logger)
	dtm.SetDynamicMode(true)
	assert.True(t, dtm.dynamicMode)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "Dynamic toolset discovery enabled")

	hook.Reset()
	dtm.SetDynamicMode(false)
	assert.False(t, dtm.dynamicMode)
	assert.Empty(t, hook.AllEntries())
}

func TestDiscoveryTools(t *testing.T) {
	dtm := NewDynamicToolsetManager(discoveryGroup(), NewServer("test", "1.0.0"), quietLogger())

	tools := dtm.DiscoveryTools()
	require.Len(t, tools, 3)
	assert.Equal(t, "list_available_toolsets", tools[0].Tool.Name)
	assert.Equal(t, "describe_toolset", tools[1].Tool.Name)
	assert.Equal(t, "enable_toolset", tools[2].Tool.Name)

	assert.True(t, *tools[0].Tool.Annotations.ReadOnlyHint)
	assert.Contains(t, tools[1].Tool.InputSchema.Required, "toolset")
	assert.Contains(t, tools[1].Tool.InputSchema.Properties, "per_page")
	assert.Contains(t, tools[2].Tool.InputSchema.Required, "toolset")
}

func TestRegisterDiscoveryTools(t *testing.T) {
	s := NewServer("test", "1.0.0")
	dtm := NewDynamicToolsetManager(discoveryGroup(), s, quietLogger())

	dtm.RegisterDiscoveryTools()
	assert.Equal(t, []string{"describe_toolset", "enable_toolset", "list_available_toolsets"}, serverToolNames(t, s))
}

func TestHandleListToolsets(t *testing.T) {
	tg := discoveryGroup()
	require.NoError(t, tg.EnableToolset("jobs"))
	dtm := NewDynamicToolsetManager(tg, NewServer("test", "1.0.0"), quietLogger())

	result, err := dtm.handleListToolsets(context.Background(), callRequest("list_available_toolsets", nil))
	require.NoError(t, err)

	text := getTextResult(t, result).Text
	assert.Contains(t, text, "Available Toolsets (2):")
	assert.Contains(t, text, "- issues: Project issues [3 tools] (disabled)")
	assert.Contains(t, text, "- jobs: CI jobs [5 tools] (enabled)")
}

func TestHandleDescribeToolset(t *testing.T) {
	dtm := NewDynamicToolsetManager(discoveryGroup(), NewServer("test", "1.0.0"), quietLogger())

	tests := []struct {
		name          string
		args          map[string]any
		expectError   string
		expectTools   []any
		expectedPages float64
	}{
		{
			name:          "whole toolset",
			args:          map[string]any{"toolset": "issues"},
			expectTools:   []any{"getProjectsIdIssues", "getIssues", "postProjectsIdIssues"},
			expectedPages: 1,
		},
		{
			name:          "second page",
			args:          map[string]any{"toolset": "jobs", "page": float64(2), "per_page": float64(2)},
			expectTools:   []any{"getJob2", "getJob3"},
			expectedPages: 3,
		},
		{
			name:          "page past the end",
			args:          map[string]any{"toolset": "jobs", "page": float64(9), "per_page": float64(2)},
			expectTools:   []any{},
			expectedPages: 3,
		},
		{
			name:          "page large enough to overflow the offset",
			args:          map[string]any{"toolset": "jobs", "page": "900000000000000000", "per_page": float64(100)},
			expectTools:   []any{},
			expectedPages: 1,
		},
		{
			name:        "unknown toolset",
			args:        map[string]any{"toolset": "wikis"},
			expectError: "toolset 'wikis' not found",
		},
		{
			name:        "missing toolset",
			args:        map[string]any{},
			expectError: "Validation Error:",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := dtm.handleDescribeToolset(context.Background(), callRequest("describe_toolset", tc.args))
			require.NoError(t, err)

			if tc.expectError != "" {
				assert.True(t, result.IsError)
				assert.Contains(t, getTextResult(t, result).Text, tc.expectError)
				return
			}

			assert.False(t, result.IsError)
			out := decodeResult(t, result)
			assert.Equal(t, tc.args["toolset"], out["toolset"])
			assert.Equal(t, false, out["enabled"])
			assert.Equal(t, tc.expectTools, out["tools"])
			pagination := out["pagination"].(map[string]any)
			assert.Equal(t, tc.expectedPages, pagination["totalPages"])
		})
	}
}

func TestHandleEnableToolset(t *testing.T) {
	s := NewServer("test", "1.0.0")
	logger, hook := logtest.NewNullLogger()
	dtm := NewDynamicToolsetManager(discoveryGroup(), s, logger)

	result, err := dtm.handleEnableToolset(context.Background(), callRequest("enable_toolset", map[string]any{"toolset": "issues"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Successfully enabled toolset 'issues'. 3 tools are now available.", getTextResult(t, result).Text)
	assert.Equal(t, []string{"getIssues", "getProjectsIdIssues", "postProjectsIdIssues"}, serverToolNames(t, s))

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "issues", last.Data["toolset"])
	assert.Equal(t, 3, last.Data["tools"])

	t.Run("already enabled", func(t *testing.T) {
		result, err := dtm.handleEnableToolset(context.Background(), callRequest("enable_toolset", map[string]any{"toolset": "issues"}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Failed to enable toolset 'issues': toolset 'issues' already enabled", getTextResult(t, result).Text)
	})

	t.Run("unknown toolset", func(t *testing.T) {
		result, err := dtm.handleEnableToolset(context.Background(), callRequest("enable_toolset", map[string]any{"toolset": "wikis"}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, getTextResult(t, result).Text, "toolset 'wikis' not found")
	})

	t.Run("missing toolset", func(t *testing.T) {
		result, err := dtm.handleEnableToolset(context.Background(), callRequest("enable_toolset", nil))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, getTextResult(t, result).Text, "Validation Error:")
	})
}
