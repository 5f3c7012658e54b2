package main

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

// serverConfig is the resolved configuration of the stdio and http commands.
type serverConfig struct {
	Client         gitlab.ClientOptions
	Toolsets       []string
	ReadOnly       bool
	Dynamic        bool
	ToolPrefix     string
	OpenAPISpec    string
	Response       gitlab.ResponseOptions
	KeyringUser    string
	CommandLogging bool
	Translations   string
	HTTPAddr       string
	// TokenSource says where Client.Token came from: "config", "keyring" or "".
	TokenSource string

	// AllowSharedToken serves HTTP requests without a token header with
	// the configured token.
	AllowSharedToken bool
}

// loadServerConfig reads every server setting from v. A missing token is
// looked up in the OS keyring under keyring.user. Neither a missing entry
// nor an unavailable keyring is an error here: the HTTP transport runs
// without a token and the stdio command reports the missing token later.
func loadServerConfig(v *viper.Viper, logger *log.Logger) (serverConfig, error) {
	authType, err := gitlab.ParseAuthType(v.GetString("auth-type"))
	if err != nil {
		return serverConfig{}, err
	}
	mode, err := gitlab.ParseResponseMode(v.GetString("response.mode"))
	if err != nil {
		return serverConfig{}, err
	}
	timeout := v.GetDuration("timeout")
	if timeout <= 0 {
		timeout = gitlab.DefaultTimeout
	}
	retryMax := -1
	if v.IsSet("retry-max") {
		retryMax = v.GetInt("retry-max")
	}

	cfg := serverConfig{
		Client: gitlab.ClientOptions{
			Host:      strings.TrimSpace(v.GetString("host")),
			Token:     strings.TrimSpace(v.GetString("token")),
			AuthType:  authType,
			Timeout:   timeout,
			RetryMax:  retryMax,
			UserAgent: fmt.Sprintf("%s/%s", appName, version),
		},
		Toolsets:       splitList(v.GetStringSlice("toolsets")),
		ReadOnly:       v.GetBool("read-only"),
		Dynamic:        v.GetBool("dynamic-toolsets"),
		ToolPrefix:     v.GetString("tool-prefix"),
		OpenAPISpec:    v.GetString("openapi-spec"),
		Response:       gitlab.ResponseOptions{Mode: mode, MaxBytes: v.GetInt("response.max-bytes")},
		KeyringUser:    v.GetString("keyring.user"),
		CommandLogging: v.GetBool("enable-command-logging"),
		Translations:   v.GetString("translations-file"),
		HTTPAddr:       v.GetString("http.addr"),

		AllowSharedToken: v.GetBool("http.allow-shared-token"),
	}
	if len(cfg.Toolsets) == 0 {
		cfg.Toolsets = gitlab.DefaultTools
	}
	if cfg.KeyringUser == "" {
		cfg.KeyringUser = gitlab.DefaultClientName
	}

	if cfg.Client.Token != "" {
		cfg.TokenSource = "config"
		return cfg, nil
	}
	metadata, err := gitlab.LoadKeyringToken(cfg.KeyringUser)
	switch {
	case errors.Is(err, gitlab.ErrKeyringNotFound):
		return cfg, nil
	case err != nil:
		logger.WithError(err).Warn("Could not read the token from the OS keyring")
		return cfg, nil
	}
	token, err := metadata.Token()
	if err != nil {
		logger.WithError(err).Warnf("Could not use keyring token '%s'", cfg.KeyringUser)
		return cfg, nil
	}
	cfg.Client.Token = token
	cfg.TokenSource = "keyring"
	if cfg.Client.Host == "" {
		cfg.Client.Host = metadata.GitLabHost
	}
	if metadata.AuthType != "" && !v.IsSet("auth-type") {
		cfg.Client.AuthType = metadata.AuthType
	}
	return cfg, nil
}

// splitList accepts both repeated values and comma separated strings, as
// environment variables only carry the latter.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
