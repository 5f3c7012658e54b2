package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

// EndpointToolOptions configures the tools generated from endpoints.
type EndpointToolOptions struct {
	// Prefix is prepended to every tool name.
	Prefix string
	// Translations override tool descriptions, keyed by endpoints.TranslationKey.
	Translations map[string]string
	Response     ResponseOptions
	// DefaultProject supplies the id of /projects/{id} endpoints when the
	// caller omits it. Nil disables defaulting.
	DefaultProject func() (string, bool)
	Logger         *log.Logger
}

// EndpointToolName is the registered name of the tool for ep.
func EndpointToolName(ep endpoints.Endpoint, prefix string) string {
	return prefix + ep.ToolName()
}

// usesProjectID reports whether ep is scoped to a single project.
func usesProjectID(ep endpoints.Endpoint) bool {
	return ep.Path == "/projects/{id}" || strings.HasPrefix(ep.Path, "/projects/{id}/")
}

// EndpointTool builds the MCP tool and handler for one REST endpoint.
func EndpointTool(ep endpoints.Endpoint, getClient GetAPIClientFn, opts EndpointToolOptions) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	name := EndpointToolName(ep, opts.Prefix)
	defaultProject := opts.DefaultProject != nil && usesProjectID(ep)

	description := ep.Description
	if t, ok := opts.Translations[endpoints.TranslationKey(ep.ToolName())]; ok && t != "" {
		description = t
	}
	description = fmt.Sprintf("%s\n\n%s /api/v4%s", description, strings.ToUpper(ep.Method), ep.Path)

	toolOpts := []mcp.ToolOption{mcp.WithDescription(description)}
	toolOpts = append(toolOpts, annotationOptions(ep, ep.Description)...)
	for _, p := range ep.Params {
		if defaultProject && p.Name == "id" {
			p.Required = false
			p.Description += " Defaults to the current project (see setCurrentProject)."
		}
		toolOpts = append(toolOpts, paramOption(p))
	}
	tool = mcp.NewTool(name, toolOpts...)

	validator := sync.OnceValues(func() (*argumentValidator, error) {
		return newArgumentValidator(tool)
	})

	handler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := coerceArguments(ep, request.GetArguments())
		if defaultProject && isBlank(args["id"]) {
			if id, ok := opts.DefaultProject(); ok {
				args["id"] = id
			}
		}
		if _, ok := args["id"]; defaultProject && !ok {
			return validationError(errors.New("id is required: pass it or set a current project with setCurrentProject")), nil
		}

		v, err := validator()
		if err != nil {
			return nil, err
		}
		if err := v.Validate(args); err != nil {
			return validationError(err), nil
		}
		req, err := BuildRequest(ep, args)
		if err != nil {
			return validationError(err), nil
		}

		client, err := getClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get GitLab client: %w", err)
		}

		body := newCappedBuffer(opts.Response.limit())
		resp, err := req.Do(ctx, client, body)
		if err != nil {
			if opts.Logger != nil && StatusCode(err, resp) == http.StatusUnauthorized {
				notifyUnauthorized(opts.Logger, name)
			}
			return HandleAPIError(err, resp, req.Method+" "+req.Path)
		}
		return renderResponse(req.Method, body, resp, opts.Response)
	}
	return tool, handler
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}
