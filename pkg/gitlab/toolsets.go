package gitlab

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/toolsets"
)

const (
	TokenManagementToolset = "token_management"
	ProjectConfigToolset   = "project_config"
)

// DefaultTools defines the list of toolsets enabled by default.
var DefaultTools = []string{toolsets.AllToolsets}

// Config collects what InitToolsets needs to build every tool.
type Config struct {
	// Catalog defaults to endpoints.Default().
	Catalog         *endpoints.Catalog
	EnabledToolsets []string
	ReadOnly        bool
	DynamicMode     bool
	ToolPrefix      string
	Translations    map[string]string
	Response        ResponseOptions
	// DefaultProject defaults to DefaultProjectID.
	DefaultProject func() (string, bool)

	GetClient GetClientFn
	Pool      *ClientPool
	Logger    *log.Logger
}

// InitToolsets builds one toolset per catalog toolset plus the token and
// project configuration toolsets. GET and HEAD endpoints become read tools,
// every other verb a write tool. Outside dynamic mode the configured
// toolsets are enabled.
func InitToolsets(cfg Config) (*toolsets.ToolsetGroup, error) {
	catalog := cfg.Catalog
	if catalog == nil {
		var err error
		if catalog, err = endpoints.Default(); err != nil {
			return nil, fmt.Errorf("invalid endpoint catalog: %w", err)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}
	if cfg.Pool == nil {
		cfg.Pool = NewClientPool(nil, ClientOptions{}, cfg.Logger)
	}
	if cfg.DefaultProject == nil {
		cfg.DefaultProject = DefaultProjectID
	}
	enabled := cfg.EnabledToolsets
	if len(enabled) == 0 {
		enabled = DefaultTools
	}

	tg := toolsets.NewToolsetGroup(cfg.ReadOnly)
	opts := EndpointToolOptions{
		Prefix:         cfg.ToolPrefix,
		Translations:   cfg.Translations,
		Response:       cfg.Response,
		DefaultProject: cfg.DefaultProject,
		Logger:         cfg.Logger,
	}
	getAPIClient := cfg.GetClient.API()

	for _, name := range catalog.Toolsets() {
		ts := toolsets.NewToolset(name, catalog.ToolsetDescription(name))
		for _, ep := range catalog.ByToolset(name) {
			st := toolsets.NewServerTool(EndpointTool(ep, getAPIClient, opts))
			if ep.ReadOnly() {
				ts.AddReadTools(st)
			} else {
				ts.AddWriteTools(st)
			}
		}
		tg.AddToolset(ts)
	}

	if _, ok := tg.Get(TokenManagementToolset); ok {
		return nil, fmt.Errorf("catalog toolset %q clashes with a built-in toolset", TokenManagementToolset)
	}
	if _, ok := tg.Get(ProjectConfigToolset); ok {
		return nil, fmt.Errorf("catalog toolset %q clashes with a built-in toolset", ProjectConfigToolset)
	}

	local := func(st server.ServerTool) server.ServerTool {
		return builtinTool(st, cfg.ToolPrefix, cfg.Translations)
	}

	tokenManagementTS := toolsets.NewToolset(TokenManagementToolset, "Tools for managing GitLab tokens and authentication.")
	tokenManagementTS.AddReadTools(
		local(toolsets.NewServerTool(ListTokens(cfg.Pool.Store()))),
		local(toolsets.NewServerTool(ValidateToken(cfg.Pool, cfg.Logger))),
		local(toolsets.NewServerTool(GetNotificationsTool())),
	)
	tokenManagementTS.AddWriteTools(
		local(toolsets.NewServerTool(AddToken(cfg.Pool, cfg.Logger))),
		local(toolsets.NewServerTool(UpdateToken(cfg.Pool, cfg.Logger))),
		local(toolsets.NewServerTool(RemoveToken(cfg.Pool))),
		local(toolsets.NewServerTool(ClearNotificationsTool())),
	)

	projectConfigTS := toolsets.NewToolset(ProjectConfigToolset, "Tools for managing the current GitLab project of a working directory and detecting it from Git.")
	projectConfigTS.AddReadTools(
		local(toolsets.NewServerTool(GetCurrentProject())),
		local(toolsets.NewServerTool(DetectProject(cfg.GetClient))),
	)
	projectConfigTS.AddWriteTools(
		local(toolsets.NewServerTool(SetCurrentProject())),
		local(toolsets.NewServerTool(AutoDetectAndSetProject(cfg.GetClient))),
	)

	tg.AddToolset(tokenManagementTS)
	tg.AddToolset(projectConfigTS)

	if cfg.DynamicMode {
		cfg.Logger.Info("Dynamic toolset mode enabled - toolsets will be loaded on-demand")
		return tg, nil
	}
	if err := tg.EnableToolsets(enabled); err != nil {
		return nil, err
	}
	return tg, nil
}

// builtinTool applies the tool name prefix and any description override to
// a hand-written tool.
func builtinTool(st server.ServerTool, prefix string, translations map[string]string) server.ServerTool {
	if t, ok := translations[endpoints.TranslationKey(st.Tool.Name)]; ok && t != "" {
		st.Tool.Description = t
	}
	st.Tool.Name = prefix + st.Tool.Name
	return st
}
