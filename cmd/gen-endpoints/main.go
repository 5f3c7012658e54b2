package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/InkyQuill/gitlab-rest-mcp/internal/codegen"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/openapi"
)

// defaultTagToolsets folds GitLab's OpenAPI tags into the toolsets used by the
// checked-in table.
var defaultTagToolsets = map[string]string{
	"access_requests":        "members",
	"project_access_tokens":  "access_tokens",
	"group_access_tokens":    "access_tokens",
	"personal_access_tokens": "access_tokens",
	"protected_branches":     "branches",
	"protected_tags":         "tags",
	"pipeline_schedules":     "pipelines",
	"ci_lint":                "pipelines",
	"group_variables":        "ci_variables",
	"deployments":            "environments",
	"freeze_periods":         "environments",
	"release_links":          "releases",
	"project_snippets":       "snippets",
	"metadata":               "instance",
	"Instance Metadata":      "instance",
	"container_registry":     "packages",
	"system_hooks":           "hooks",
	"project_hooks":          "hooks",
	"group_hooks":            "hooks",
	"deploy_tokens":          "deploy_keys",
}

var (
	specPath    string
	outDir      string
	pkgName     string
	basePath    string
	tagToolsets map[string]string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "gen-endpoints",
	Short: "Generate the GitLab endpoint table from an OpenAPI document",
	Long: `Reads GitLab's OpenAPI document (Swagger 2.0 or OpenAPI 3) and writes one
zz_generated_<toolset>.go file per toolset plus zz_generated_catalog.go.`,
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		logger := log.New()
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
		return generate(logger)
	},
}

func init() {
	rootCmd.Flags().StringVar(&specPath, "spec", "openapi_v2.yaml", "Path to the OpenAPI document")
	rootCmd.Flags().StringVar(&outDir, "out", "pkg/endpoints", "Output directory")
	rootCmd.Flags().StringVar(&pkgName, "package", "endpoints", "Go package name of the generated files")
	rootCmd.Flags().StringVar(&basePath, "base-path", openapi.DefaultBasePath, "Path prefix stripped from every operation")
	rootCmd.Flags().StringToStringVar(&tagToolsets, "tag", nil, "Additional tag=toolset mappings")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every generated endpoint")
}

func generate(logger *log.Logger) error {
	doc, err := openapi.LoadFile(specPath)
	if err != nil {
		return err
	}

	mapping := make(map[string]string, len(defaultTagToolsets)+len(tagToolsets))
	for k, v := range defaultTagToolsets {
		mapping[k] = v
	}
	for k, v := range tagToolsets {
		mapping[k] = v
	}

	eps, err := openapi.Endpoints(doc, openapi.Options{BasePath: basePath, TagToolsets: mapping})
	if err != nil {
		return err
	}
	catalog, err := endpoints.NewCatalog(eps, nil)
	if err != nil {
		return fmt.Errorf("generated table is inconsistent: %w", err)
	}
	for _, ep := range catalog.Endpoints() {
		logger.WithFields(log.Fields{"toolset": ep.Toolset, "tool": ep.ToolName()}).Debugf("%s %s", ep.Method, ep.Path)
	}

	// Keep the curated toolset descriptions where the toolset still exists.
	descriptions := make(map[string]string)
	if current, err := endpoints.Default(); err == nil {
		for _, ts := range catalog.Toolsets() {
			descriptions[ts] = current.ToolsetDescription(ts)
		}
	} else {
		logger.Warnf("Current endpoint table is invalid, using default descriptions: %v", err)
	}

	files, err := codegen.Render(pkgName, catalog.Endpoints(), descriptions)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := codegen.Write(outDir, files); err != nil {
		return err
	}
	logger.Infof("Generated %d endpoints in %d toolsets into %s", catalog.Len(), len(catalog.Toolsets()), outDir)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
