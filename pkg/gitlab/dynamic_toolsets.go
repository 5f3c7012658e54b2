package gitlab

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/toolsets"
)

// DynamicToolsetManager handles runtime toolset registration and discovery.
type DynamicToolsetManager struct {
	toolsetGroup *toolsets.ToolsetGroup
	mcpServer    *server.MCPServer
	logger       *log.Logger
	dynamicMode  bool
}

// NewDynamicToolsetManager creates a new DynamicToolsetManager instance.
func NewDynamicToolsetManager(tg *toolsets.ToolsetGroup, mcpServer *server.MCPServer, logger *log.Logger) *DynamicToolsetManager {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &DynamicToolsetManager{
		toolsetGroup: tg,
		mcpServer:    mcpServer,
		logger:       logger,
	}
}

// SetDynamicMode enables or disables dynamic toolset discovery mode.
func (dtm *DynamicToolsetManager) SetDynamicMode(enabled bool) {
	dtm.dynamicMode = enabled
	if enabled {
		dtm.logger.Info("Dynamic toolset discovery enabled - only discovery tools will be available initially")
	}
}

// DiscoveryTools returns the tools for listing, describing and enabling toolsets.
func (dtm *DynamicToolsetManager) DiscoveryTools() []server.ServerTool {
	listToolsets := mcp.NewTool("list_available_toolsets",
		mcp.WithDescription("Lists all available GitLab toolsets that can be enabled, with their tool counts and status."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			Title:        "List Available Toolsets",
			ReadOnlyHint: mcp.ToBoolPtr(true),
		}),
	)

	describeToolset := mcp.NewTool("describe_toolset",
		mcp.WithDescription("Lists the tools of a toolset, so a caller can decide whether to enable it."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			Title:        "Describe Toolset",
			ReadOnlyHint: mcp.ToBoolPtr(true),
		}),
		mcp.WithString("toolset",
			mcp.Required(),
			mcp.Description("Name of the toolset (e.g., 'issues', 'merge_requests', 'pipelines')"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number of the tool list (default 1)."),
		),
		mcp.WithNumber("per_page",
			mcp.Description(fmt.Sprintf("Tools per page (default %d, max %d).", DefaultPerPage, MaxPerPage)),
		),
	)

	enableToolset := mcp.NewTool("enable_toolset",
		mcp.WithDescription("Enables a specific GitLab toolset, making its tools available."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			Title: "Enable Toolset",
		}),
		mcp.WithString("toolset",
			mcp.Required(),
			mcp.Description("Name of the toolset to enable (e.g., 'issues', 'merge_requests', 'pipelines')"),
		),
	)

	return []server.ServerTool{
		toolsets.NewServerTool(listToolsets, dtm.handleListToolsets),
		toolsets.NewServerTool(describeToolset, dtm.handleDescribeToolset),
		toolsets.NewServerTool(enableToolset, dtm.handleEnableToolset),
	}
}

// RegisterDiscoveryTools registers the discovery tools with the server.
func (dtm *DynamicToolsetManager) RegisterDiscoveryTools() {
	dtm.mcpServer.AddTools(dtm.DiscoveryTools()...)
	dtm.logger.Info("Dynamic toolset discovery tools registered")
}

// handleListToolsets returns all available toolsets with their status.
func (dtm *DynamicToolsetManager) handleListToolsets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := dtm.toolsetGroup.ListToolsets()

	var b strings.Builder
	fmt.Fprintf(&b, "Available Toolsets (%d):\n", len(infos))
	for _, info := range infos {
		status := "disabled"
		if info.Enabled {
			status = "enabled"
		}
		fmt.Fprintf(&b, "- %s: %s [%d tools] (%s)\n", info.Name, info.Description, info.ToolCount, status)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleDescribeToolset returns one page of the tool names of a toolset.
func (dtm *DynamicToolsetManager) handleDescribeToolset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredParam[string](&request, "toolset")
	if err != nil {
		return validationError(err), nil
	}
	page, perPage, err := OptionalPaginationParams(&request)
	if err != nil {
		return validationError(err), nil
	}

	ts, ok := dtm.toolsetGroup.Get(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("toolset '%s' not found", name)), nil
	}

	tools := ts.ToolNames()
	start := len(tools)
	if page-1 < len(tools)/perPage+1 {
		start = min((page-1)*perPage, len(tools))
	}
	end := start + perPage
	if end > len(tools) {
		end = len(tools)
	}

	return marshalResult(map[string]any{
		"toolset":     ts.Name,
		"description": ts.Description,
		"enabled":     ts.IsEnabled(),
		"readOnly":    ts.IsReadOnly(),
		"tools":       tools[start:end],
		"pagination": map[string]any{
			"page":       page,
			"perPage":    perPage,
			"totalItems": len(tools),
			"totalPages": (len(tools) + perPage - 1) / perPage,
		},
	})
}

// handleEnableToolset enables a specific toolset and registers its tools.
func (dtm *DynamicToolsetManager) handleEnableToolset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolsetName, err := requiredParam[string](&request, "toolset")
	if err != nil {
		return validationError(err), nil
	}

	names, err := dtm.toolsetGroup.EnableAndRegister(toolsetName, dtm.mcpServer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to enable toolset '%s': %v", toolsetName, err)), nil
	}
	dtm.logger.WithFields(log.Fields{
		"toolset": toolsetName,
		"tools":   len(names),
	}).Info("Enabled toolset")

	return mcp.NewToolResultText(fmt.Sprintf("Successfully enabled toolset '%s'. %d tools are now available.", toolsetName, len(names))), nil
}
