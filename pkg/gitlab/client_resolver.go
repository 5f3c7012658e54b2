package gitlab

import (
	"context"

	log "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// RequestClientName names the client built from a per-request token.
const RequestClientName = "request"

type tokenKey struct{}

// ContextWithToken attaches a GitLab token supplied by the caller, for
// example through HTTP headers, to ctx.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token attached by ContextWithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// ClientResolver resolves which GitLab client to use for a given context
// It supports:
// 1. Per-request token (HTTP transport)
// 2. Project-specific token (from .gmcprc)
// 3. Host-based matching
// 4. Default fallback
type ClientResolver struct {
	pool          *ClientPool
	defaultServer string
	logger        *log.Logger
}

// NewClientResolver creates a new client resolver
func NewClientResolver(pool *ClientPool, defaultServer string, logger *log.Logger) *ClientResolver {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ClientResolver{
		pool:          pool,
		defaultServer: defaultServer,
		logger:        logger,
	}
}

// Resolve determines which client to use based on the current context
func (cr *ClientResolver) Resolve(ctx context.Context) (*gl.Client, string, error) {
	if token, ok := TokenFromContext(ctx); ok {
		client, err := cr.pool.ClientForToken(token)
		if err != nil {
			return nil, "", err
		}
		return client, RequestClientName, nil
	}

	config, configPath, err := FindProjectConfig()
	if err != nil || config == nil {
		if err != nil {
			cr.logger.WithError(err).Debug("Project config unreadable, using default client")
		}
		return cr.fallback()
	}
	cr.logger.WithField("path", configPath).Debug("Found project config")

	if config.TokenName != "" {
		client, err := cr.pool.GetClient(config.TokenName)
		if err == nil {
			return client, config.TokenName, nil
		}
		cr.logger.Warnf("Token '%s' specified in %s but not found in pool, falling back", config.TokenName, configPath)
	}

	if config.GitLabHost != "" {
		if client, name, ok := cr.pool.ClientForHost(config.GitLabHost); ok {
			return client, name, nil
		}
		cr.logger.Warnf("No client found matching host %s, falling back to default", config.GitLabHost)
	}

	return cr.fallback()
}

func (cr *ClientResolver) fallback() (*gl.Client, string, error) {
	if cr.defaultServer != "" {
		client, err := cr.pool.GetClient(cr.defaultServer)
		if err == nil {
			return client, cr.defaultServer, nil
		}
		cr.logger.Warnf("Default client '%s' not found, using first available", cr.defaultServer)
	}
	return cr.pool.GetDefaultClient()
}

// GetClientFn returns a GetClientFn function that uses the resolver
// This can be passed to tool initialization
func (cr *ClientResolver) GetClientFn() GetClientFn {
	return func(ctx context.Context) (*gl.Client, error) {
		client, name, err := cr.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		cr.logger.WithFields(log.Fields{
			"client":     name,
			"request_id": RequestIDFromContext(ctx),
		}).Debug("Resolved GitLab client")
		return client, nil
	}
}
