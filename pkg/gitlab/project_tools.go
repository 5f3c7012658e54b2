package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// SetCurrentProject sets the current GitLab project for the working directory.
// This creates a .gmcprc file that stores the project ID and optionally the GitLab host.
func SetCurrentProject() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"setCurrentProject",
			mcp.WithDescription("Sets the current GitLab project for this directory by creating a .gmcprc file. Project scoped tools use it when 'id' is omitted."),
			mcp.WithString("projectId",
				mcp.Required(),
				mcp.Description("The GitLab project ID (e.g., 'owner/repo' or numeric ID)."),
			),
			mcp.WithString("gitlabHost",
				mcp.Description("Optional GitLab host URL (e.g., 'https://gitlab.example.com')."),
			),
			mcp.WithString("tokenName",
				mcp.Description("Optional name of a configured token to use for this project."),
			),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := requiredParam[string](&request, "projectId")
			if err != nil {
				return validationError(err), nil
			}
			gitlabHost, err := OptionalParam[string](&request, "gitlabHost")
			if err != nil {
				return validationError(err), nil
			}
			tokenName, err := OptionalParam[string](&request, "tokenName")
			if err != nil {
				return validationError(err), nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}

			config := &ProjectConfig{
				ProjectID:  projectID,
				GitLabHost: gitlabHost,
				TokenName:  tokenName,
			}
			configPath, err := WriteProjectConfig(cwd, config)
			if err != nil {
				return nil, fmt.Errorf("failed to write project config: %w", err)
			}

			return marshalResult(map[string]any{
				"success":    true,
				"configPath": configPath,
				"projectId":  projectID,
				"gitlabHost": gitlabHost,
				"tokenName":  tokenName,
			})
		}
}

// GetCurrentProject retrieves the current GitLab project from .gmcprc file.
func GetCurrentProject() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"getCurrentProject",
			mcp.WithDescription("Gets the current GitLab project configuration from the .gmcprc file in the current or parent directory."),
			mcp.WithToolAnnotation(mcp.ToolAnnotation{
				Title:        "Get Current Project",
				ReadOnlyHint: mcp.ToBoolPtr(true),
			}),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			config, configPath, err := FindProjectConfig()
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to read project config: %v", err)), nil
			}

			if config == nil {
				return marshalResult(map[string]any{
					"found":   false,
					"message": "No .gmcprc file found in current or parent directories. Use 'setCurrentProject' to create one.",
				})
			}

			return marshalResult(map[string]any{
				"found":       true,
				"configPath":  configPath,
				"projectId":   config.ProjectID,
				"gitlabHost":  config.GitLabHost,
				"tokenName":   config.TokenName,
				"lastUpdated": config.LastUpdated,
			})
		}
}

// DetectProject attempts to auto-detect the GitLab project from Git remote configuration.
func DetectProject(getClient GetClientFn) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"detectProject",
			mcp.WithDescription("Auto-detects the GitLab project from the Git remote URL in the current directory and verifies that it exists."),
			mcp.WithToolAnnotation(mcp.ToolAnnotation{
				Title:        "Detect Project",
				ReadOnlyHint: mcp.ToBoolPtr(true),
			}),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, gitlabHost, project, errResult, err := detectAndVerify(ctx, getClient)
			if errResult != nil || err != nil {
				return errResult, err
			}

			return marshalResult(map[string]any{
				"success":     true,
				"projectId":   projectID,
				"gitlabHost":  gitlabHost,
				"projectName": project.Name,
				"projectPath": project.PathWithNamespace,
				"message":     fmt.Sprintf("Project detected successfully. Use 'setCurrentProject' with projectId='%s' to save it.", projectID),
			})
		}
}

// AutoDetectAndSetProject combines detection and setting in one command
func AutoDetectAndSetProject(getClient GetClientFn) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"autoDetectAndSetProject",
			mcp.WithDescription("Auto-detects the GitLab project from Git remote and creates a .gmcprc file. Combines detectProject and setCurrentProject."),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, gitlabHost, project, errResult, err := detectAndVerify(ctx, getClient)
			if errResult != nil || err != nil {
				return errResult, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			configPath, err := WriteProjectConfig(cwd, &ProjectConfig{
				ProjectID:  projectID,
				GitLabHost: gitlabHost,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to write project config: %w", err)
			}

			return marshalResult(map[string]any{
				"success":     true,
				"configPath":  configPath,
				"projectId":   projectID,
				"gitlabHost":  gitlabHost,
				"projectName": project.Name,
				"projectPath": project.PathWithNamespace,
				"message":     "Project detected and configured successfully!",
			})
		}
}

// detectAndVerify reads the Git remote and looks the project up in GitLab.
func detectAndVerify(ctx context.Context, getClient GetClientFn) (projectID, gitlabHost string, project *gl.Project, errResult *mcp.CallToolResult, err error) {
	projectID, gitlabHost, err = DetectProjectFromGit()
	if err != nil {
		return "", "", nil, mcp.NewToolResultError(fmt.Sprintf("Failed to detect project: %v", err)), nil
	}

	glClient, err := getClient(ctx)
	if err != nil {
		return "", "", nil, nil, fmt.Errorf("failed to get GitLab client: %w", err)
	}

	project, resp, err := glClient.Projects.GetProject(projectID, nil, gl.WithContext(ctx))
	if err != nil {
		result, apiErr := HandleAPIError(err, resp, fmt.Sprintf("detected project '%s'", projectID))
		return "", "", nil, result, apiErr
	}
	return projectID, gitlabHost, project, nil, nil
}

// DefaultProjectID returns the project of the nearest .gmcprc, falling back
// to the Git remote of the working directory.
func DefaultProjectID() (string, bool) {
	if id, ok := CurrentProjectID(); ok {
		return id, true
	}
	if id, _, err := DetectProjectFromGit(); err == nil && id != "" {
		return id, true
	}
	return "", false
}

// marshalResult renders v as indented JSON text.
func marshalResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
