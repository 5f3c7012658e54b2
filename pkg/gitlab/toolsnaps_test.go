package gitlab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/InkyQuill/gitlab-rest-mcp/internal/toolsnaps"
)

// TestToolSnapshots pins the schemas clients see. Run with
// UPDATE_TOOLSNAPS=true after an intended change and commit __toolsnaps__.
func TestToolSnapshots(t *testing.T) {
	pool := NewClientPool(NewTokenStore(), ClientOptions{}, nil)

	tools := []func() mcp.Tool{
		func() mcp.Tool { tool, _ := AddToken(pool, nil); return tool },
		func() mcp.Tool { tool, _ := ListTokens(pool.store); return tool },
		func() mcp.Tool { tool, _ := RemoveToken(pool); return tool },
		func() mcp.Tool { tool, _ := SetCurrentProject(); return tool },
		func() mcp.Tool { tool, _ := DetectProject(nil); return tool },
		func() mcp.Tool {
			tool, _ := EndpointTool(listIssuesEndpoint, staticClient(nil), EndpointToolOptions{})
			return tool
		},
		func() mcp.Tool {
			tool, _ := EndpointTool(createNoteEndpoint, staticClient(nil), EndpointToolOptions{})
			return tool
		},
		func() mcp.Tool {
			tool, _ := EndpointTool(deleteBranchEndpoint, staticClient(nil), EndpointToolOptions{})
			return tool
		},
	}

	for _, build := range tools {
		tool := build()
		t.Run(tool.Name, func(t *testing.T) {
			if os.Getenv("UPDATE_TOOLSNAPS") != "true" {
				require.FileExists(t, filepath.Join("__toolsnaps__", tool.Name+".snap"), "snapshot is not committed")
			}
			require.NoError(t, toolsnaps.Test(tool.Name, tool))
		})
	}
}
