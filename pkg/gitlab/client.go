package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	gl "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=gitlab

const (
	// DefaultHost is used when no GitLab host is configured.
	DefaultHost = "https://gitlab.com"
	// DefaultTimeout bounds every HTTP request to GitLab.
	DefaultTimeout = 30 * time.Second
)

// AuthType selects how the token is presented to GitLab.
type AuthType string

const (
	AuthPrivateToken AuthType = "private-token" // PRIVATE-TOKEN header
	AuthOAuth        AuthType = "oauth"         // Authorization: Bearer
	AuthJobToken     AuthType = "job-token"     // JOB-TOKEN header
)

// ParseAuthType accepts the configuration spelling of an auth type.
// An empty string means a personal access token.
func ParseAuthType(s string) (AuthType, error) {
	switch AuthType(strings.ToLower(strings.TrimSpace(s))) {
	case "", AuthPrivateToken:
		return AuthPrivateToken, nil
	case AuthOAuth, "bearer":
		return AuthOAuth, nil
	case AuthJobToken:
		return AuthJobToken, nil
	}
	return "", fmt.Errorf("unknown auth type %q (expected private-token, oauth or job-token)", s)
}

// ClientOptions configures the HTTP client shared by all tools.
type ClientOptions struct {
	Host     string // host name or URL, defaults to DefaultHost
	Token    string
	AuthType AuthType
	Timeout  time.Duration // defaults to DefaultTimeout
	// RetryMax is handed to client-go. Negative keeps the library default.
	RetryMax  int
	UserAgent string
}

// BaseURL normalizes Host into a URL. client-go appends /api/v4 itself.
func (o ClientOptions) BaseURL() string {
	return NormalizeHost(o.Host)
}

// NormalizeHost turns "gitlab.example.com" or "https://gitlab.example.com/"
// into "https://gitlab.example.com".
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return DefaultHost
	}
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	host = strings.TrimSuffix(host, "/")
	return strings.TrimSuffix(host, "/api/v4")
}

// HostName returns the bare host of a host setting, used as a client name.
func HostName(host string) string {
	u, err := url.Parse(NormalizeHost(host))
	if err != nil || u.Host == "" {
		return host
	}
	return u.Host
}

// NewGitLabClient builds the client-go client for opts.
func NewGitLabClient(opts ClientOptions) (*gl.Client, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("GitLab token is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	clientOpts := []gl.ClientOptionFunc{
		gl.WithBaseURL(opts.BaseURL()),
		gl.WithHTTPClient(&http.Client{Timeout: timeout, Transport: newErrorBodyTransport(nil)}),
	}
	if opts.RetryMax >= 0 {
		clientOpts = append(clientOpts, gl.WithCustomRetryMax(opts.RetryMax))
	}

	var (
		client *gl.Client
		err    error
	)
	switch opts.AuthType {
	case "", AuthPrivateToken:
		client, err = gl.NewClient(opts.Token, clientOpts...)
	case AuthOAuth:
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		client, err = gl.NewAuthSourceClient(gl.OAuthTokenSource{TokenSource: ts}, clientOpts...)
	case AuthJobToken:
		client, err = gl.NewJobClient(opts.Token, clientOpts...)
	default:
		return nil, fmt.Errorf("unknown auth type %q", opts.AuthType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	if opts.UserAgent != "" {
		client.UserAgent = opts.UserAgent
	}
	return client, nil
}

// APIClient is the part of the client-go client used by endpoint tools.
type APIClient interface {
	NewRequest(method, path string, opt any, options []gl.RequestOptionFunc) (*retryablehttp.Request, error)
	Do(req *retryablehttp.Request, v any) (*gl.Response, error)
}

var _ APIClient = (*gl.Client)(nil)

// GetClientFn defines the function signature for retrieving an initialized GitLab client.
// This allows decoupling toolset initialization from direct client creation.
type GetClientFn func(context.Context) (*gl.Client, error)

// GetAPIClientFn returns the client endpoint tools send requests with.
type GetAPIClientFn func(context.Context) (APIClient, error)

// API narrows fn to the interface used by endpoint tools.
func (fn GetClientFn) API() GetAPIClientFn {
	return func(ctx context.Context) (APIClient, error) {
		client, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
