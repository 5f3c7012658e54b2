package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

// Injected by goreleaser
var version = "dev"
var commit = "none"
var date = "unknown"

const appName = "gitlab-rest-mcp"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "GitLab REST API as MCP tools",
	Long: `Exposes every endpoint of the GitLab REST API as a Model Context Protocol tool.
Tools share one HTTP client and are grouped in toolsets that can be enabled
individually.`,
	Version:       fmt.Sprintf("Version: %s\nCommit: %s\nBuild Date: %s", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate("{{.Short}}\n{{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/gitlab-rest-mcp/config.yaml)")
	flags.StringSlice("toolsets", gitlab.DefaultTools, "Comma-separated list of toolsets to enable (e.g., 'projects,issues' or 'all')")
	flags.Bool("read-only", false, "Restrict the server to read-only operations")
	flags.Bool("dynamic-toolsets", false, "Enable dynamic toolset discovery (toolsets loaded on-demand)")
	flags.String("tool-prefix", "", "Prefix added to every tool name")
	flags.String("gitlab-host", "", "GitLab host or URL for self-managed instances (default gitlab.com)")
	flags.String("gitlab-token", "", "GitLab access token")
	flags.String("auth-type", string(gitlab.AuthPrivateToken), "How the token is sent: private-token, oauth or job-token")
	flags.Duration("timeout", gitlab.DefaultTimeout, "Timeout of every GitLab request")
	flags.Int("retry-max", -1, "Retries of failed GitLab requests (negative keeps the client default)")
	flags.String("openapi-spec", "", "Build tools from this OpenAPI document instead of the built-in endpoint table")
	flags.String("response-mode", string(gitlab.ResponseRaw), "Response rendering: raw or optimized")
	flags.Int("response-max-bytes", gitlab.DefaultMaxResponseBytes, "Largest response body returned to the client (negative for unlimited)")
	flags.String("keyring-user", gitlab.DefaultClientName, "OS keyring entry read when no token is configured")
	flags.String("log-file", "", "Optional: Path to write log output to a file")
	flags.String("log-level", "info", "Log level (e.g., debug, info, warn, error)")
	flags.Bool("enable-command-logging", false, "Log all MCP JSON-RPC requests/responses at debug level (credentials are redacted)")
	flags.Bool("export-translations", false, "Write gitlab-rest-mcp-config.json with all translation keys and exit")
	flags.String("translations-file", "", "Translation overrides file (default next to the binary)")

	// flag name -> viper key (env GITLAB_<KEY>)
	bindings := map[string]string{
		"toolsets":               "toolsets",
		"read-only":              "read-only",
		"dynamic-toolsets":       "dynamic-toolsets",
		"tool-prefix":            "tool-prefix",
		"gitlab-host":            "host",
		"gitlab-token":           "token",
		"auth-type":              "auth-type",
		"timeout":                "timeout",
		"retry-max":              "retry-max",
		"openapi-spec":           "openapi-spec",
		"response-mode":          "response.mode",
		"response-max-bytes":     "response.max-bytes",
		"keyring-user":           "keyring.user",
		"log-file":               "log.file",
		"log-level":              "log.level",
		"enable-command-logging": "enable-command-logging",
		"export-translations":    "export-translations",
		"translations-file":      "translations-file",
	}
	for flag, key := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(stdioCmd, httpCmd, toolsCmd, authCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("GITLAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", appName))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Failed to read config file %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

// initLogger sets up the logrus logger based on configuration.
func initLogger(level string, filePath string) (*log.Logger, error) {
	logger := log.New()

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info': %v", level, err)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	// stdout carries the protocol on stdio.
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", filePath, err)
		}
		logger.SetOutput(file)
	} else {
		logger.SetOutput(os.Stderr)
	}

	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
