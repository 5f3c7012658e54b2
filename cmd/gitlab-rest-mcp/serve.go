package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/openapi"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/translations"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/transport"
)

// shutdownGrace bounds the wait for in-flight HTTP requests.
const shutdownGrace = 10 * time.Second

var (
	stdioCmd = &cobra.Command{
		Use:   "stdio",
		Short: "Start server communicating via standard input/output",
		Long:  `Starts the server, listening for JSON-RPC messages on stdin and sending responses to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), false)
		},
	}

	httpCmd = &cobra.Command{
		Use:   "http",
		Short: "Start server on streamable HTTP",
		Long: `Serves MCP on /mcp and a health check on /healthz. A token sent by the caller in
the Authorization (Bearer) or PRIVATE-TOKEN header is used for that request.
Requests without one are refused unless --allow-shared-token is set, in which
case they run with the server's own token.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), true)
		},
	}
)

func init() {
	httpCmd.Flags().String("addr", "127.0.0.1:8080", "Address to listen on")
	httpCmd.Flags().Bool("allow-shared-token", false, "Serve requests without a token header with the server's own GitLab token")
	_ = viper.BindPFlag("http.addr", httpCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("http.allow-shared-token", httpCmd.Flags().Lookup("allow-shared-token"))
}

func runServer(parent context.Context, overHTTP bool) error {
	logger, err := initLogger(viper.GetString("log.level"), viper.GetString("log.file"))
	if err != nil {
		return err
	}

	cfg, err := loadServerConfig(viper.GetViper(), logger)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.OpenAPISpec, logger)
	if err != nil {
		return err
	}

	trans, dumpTranslations := translations.TranslationHelper(logger, cfg.Translations, catalog)
	if viper.GetBool("export-translations") {
		logger.Info("Exporting translations and exiting...")
		return dumpTranslations()
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mcpServer, err := newMCPServer(ctx, cfg, catalog, trans, overHTTP, logger)
	if err != nil {
		return err
	}

	if overHTTP {
		fmt.Fprintf(os.Stderr, "GitLab REST MCP Server listening on %s (Version: %s, Commit: %s)\n", cfg.HTTPAddr, version, commit)
		return transport.NewHTTPServer(mcpServer, transport.HTTPConfig{
			Addr:             cfg.HTTPAddr,
			Version:          version,
			ShutdownTimeout:  shutdownGrace,
			AllowSharedToken: cfg.AllowSharedToken,
			Logger:           logger,
		}).Run(ctx)
	}

	fmt.Fprintf(os.Stderr, "GitLab REST MCP Server running on stdio (Version: %s, Commit: %s)\n", version, commit)
	return transport.RunStdio(ctx, mcpServer, os.Stdin, os.Stdout, transport.StdioConfig{
		CommandLogging: cfg.CommandLogging,
		Logger:         logger,
	})
}

// loadCatalog returns the built-in endpoint table, or the endpoints of the
// OpenAPI document at specPath.
func loadCatalog(specPath string, logger *log.Logger) (*endpoints.Catalog, error) {
	if specPath == "" {
		return endpoints.Default()
	}
	doc, err := openapi.LoadFile(specPath)
	if err != nil {
		return nil, err
	}
	eps, err := openapi.Endpoints(doc, openapi.Options{})
	if err != nil {
		return nil, err
	}
	catalog, err := endpoints.NewCatalog(eps, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoints in %s: %w", specPath, err)
	}
	logger.WithFields(log.Fields{
		"spec":      specPath,
		"endpoints": catalog.Len(),
		"toolsets":  len(catalog.Toolsets()),
	}).Info("Loaded endpoints from OpenAPI document")
	return catalog, nil
}

// newMCPServer wires the client pool, the toolsets and the MCP server. Over
// HTTP a configured token is optional because callers may bring their own.
func newMCPServer(ctx context.Context, cfg serverConfig, catalog *endpoints.Catalog, trans map[string]string, overHTTP bool, logger *log.Logger) (*server.MCPServer, error) {
	base := cfg.Client
	base.Token = ""
	pool := gitlab.NewClientPool(nil, base, logger)

	if cfg.Client.Token != "" {
		if err := pool.InitializeFromConfig(cfg.Client); err != nil {
			return nil, fmt.Errorf("failed to initialize GitLab client: %w", err)
		}
		logger.WithField("source", cfg.TokenSource).Info("GitLab token configured")
	}

	loaded, err := pool.LoadPersistedTokens()
	if err != nil {
		logger.WithError(err).Warn("Could not load tokens from the OS keyring")
	} else if loaded > 0 {
		logger.Infof("Loaded %d token(s) from the OS keyring", loaded)
	}

	if len(pool.ListClients()) == 0 && !overHTTP {
		return nil, fmt.Errorf("required configuration missing: GITLAB_TOKEN (or --gitlab-token) must be set, or run '%s auth login'", appName)
	}

	go func() {
		for _, r := range pool.ValidateAllClients(ctx) {
			if r.Success {
				logger.Infof("Token '%s' validated for user %s (ID: %d)", r.TokenName, r.Username, r.UserID)
			}
		}
	}()

	resolver := gitlab.NewClientResolver(pool, gitlab.DefaultClientName, logger)

	tg, err := gitlab.InitToolsets(gitlab.Config{
		Catalog:         catalog,
		EnabledToolsets: cfg.Toolsets,
		ReadOnly:        cfg.ReadOnly,
		DynamicMode:     cfg.Dynamic,
		ToolPrefix:      cfg.ToolPrefix,
		Translations:    trans,
		Response:        cfg.Response,
		GetClient:       resolver.GetClientFn(),
		Pool:            pool,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize toolsets: %w", err)
	}
	logger.WithFields(log.Fields{
		"toolsets":  cfg.Toolsets,
		"read_only": cfg.ReadOnly,
		"dynamic":   cfg.Dynamic,
	}).Info("Toolsets initialized")

	mcpServer := gitlab.NewServer(appName, version, gitlab.WithToolLogging(logger))
	if cfg.Dynamic {
		dtm := gitlab.NewDynamicToolsetManager(tg, mcpServer, logger)
		dtm.SetDynamicMode(true)
		dtm.RegisterDiscoveryTools()
	} else {
		n := tg.RegisterTools(mcpServer)
		logger.Infof("Registered %d tools", n)
	}
	return mcpServer, nil
}
