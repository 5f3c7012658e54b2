package gitlab

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// DefaultClientName is the pool entry built from the server configuration.
const DefaultClientName = "default"

// maxTokenClients bounds the cache of per-request token clients.
const maxTokenClients = 128

// ClientFactory creates a GitLab client from client options.
type ClientFactory func(opts ClientOptions) (*gl.Client, error)

// DefaultClientFactory creates a real GitLab client
func DefaultClientFactory(opts ClientOptions) (*gl.Client, error) {
	return NewGitLabClient(opts)
}

// ClientPool manages multiple GitLab clients for different servers
type ClientPool struct {
	clients      map[string]*gl.Client // key: client name
	tokenClients map[string]*gl.Client // key: sha256 of a request token
	store        *TokenStore
	base         ClientOptions
	factory      ClientFactory
	logger       *log.Logger
	mu           sync.RWMutex
}

// NewClientPool creates a new client pool. base carries the host, timeout
// and retry settings shared by every client the pool creates.
func NewClientPool(store *TokenStore, base ClientOptions, logger *log.Logger) *ClientPool {
	if store == nil {
		store = NewTokenStore()
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	base.Token = ""
	return &ClientPool{
		clients:      make(map[string]*gl.Client),
		tokenClients: make(map[string]*gl.Client),
		store:        store,
		base:         base,
		factory:      DefaultClientFactory,
		logger:       logger,
	}
}

// SetClientFactory replaces the function used to build clients.
func (cp *ClientPool) SetClientFactory(factory ClientFactory) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if factory == nil {
		factory = DefaultClientFactory
	}
	cp.factory = factory
}

// Store returns the token store backing the pool.
func (cp *ClientPool) Store() *TokenStore {
	return cp.store
}

// BaseOptions returns the shared client settings.
func (cp *ClientPool) BaseOptions() ClientOptions {
	return cp.base
}

// NewClient builds a client for a stored token without adding it to the pool.
func (cp *ClientPool) NewClient(metadata *TokenMetadata) (*gl.Client, error) {
	opts, err := metadata.ClientOptions(cp.base)
	if err != nil {
		return nil, err
	}
	cp.mu.RLock()
	factory := cp.factory
	cp.mu.RUnlock()
	return factory(opts)
}

// ClientFor returns the pooled client of a stored token, building one when
// the token has none yet.
func (cp *ClientPool) ClientFor(name string) (*gl.Client, error) {
	if client, err := cp.GetClient(name); err == nil {
		return client, nil
	}
	metadata, err := cp.store.GetToken(name)
	if err != nil {
		return nil, err
	}
	return cp.NewClient(metadata)
}

// AddClient adds a new client to the pool
func (cp *ClientPool) AddClient(name string, client *gl.Client) error {
	if name == "" {
		return fmt.Errorf("client name cannot be empty")
	}
	if client == nil {
		return fmt.Errorf("client cannot be nil")
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()

	cp.clients[name] = client
	cp.logger.WithField("client", name).Debug("Added client to pool")
	return nil
}

// GetClient retrieves a client by name
func (cp *ClientPool) GetClient(name string) (*gl.Client, error) {
	cp.mu.RLock()
	defer cp.mu.RUnlock()

	client, ok := cp.clients[name]
	if !ok {
		return nil, fmt.Errorf("client '%s' not found in pool", name)
	}
	return client, nil
}

// GetDefaultClient returns the "default" client, or the first by name.
func (cp *ClientPool) GetDefaultClient() (*gl.Client, string, error) {
	if client, err := cp.GetClient(DefaultClientName); err == nil {
		return client, DefaultClientName, nil
	}

	names := cp.ListClients()
	if len(names) == 0 {
		return nil, "", fmt.Errorf("no clients available in pool")
	}
	client, err := cp.GetClient(names[0])
	if err != nil {
		return nil, "", err
	}
	return client, names[0], nil
}

// ClientForHost returns a client whose base URL points at host. The default
// client wins when several match.
func (cp *ClientPool) ClientForHost(host string) (*gl.Client, string, bool) {
	want := strings.ToLower(HostName(host))

	cp.mu.RLock()
	defer cp.mu.RUnlock()

	if client, ok := cp.clients[DefaultClientName]; ok && clientHost(client) == want {
		return client, DefaultClientName, true
	}
	names := make([]string, 0, len(cp.clients))
	for name := range cp.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if clientHost(cp.clients[name]) == want {
			return cp.clients[name], name, true
		}
	}
	return nil, "", false
}

func clientHost(client *gl.Client) string {
	u := client.BaseURL()
	if u == nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// ListClients returns all client names in the pool, sorted
func (cp *ClientPool) ListClients() []string {
	cp.mu.RLock()
	defer cp.mu.RUnlock()

	names := make([]string, 0, len(cp.clients))
	for name := range cp.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RemoveClient removes a client from the pool
func (cp *ClientPool) RemoveClient(name string) error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if _, ok := cp.clients[name]; !ok {
		return fmt.Errorf("client '%s' not found in pool", name)
	}
	delete(cp.clients, name)
	cp.logger.WithField("client", name).Debug("Removed client from pool")
	return nil
}

// Register stores a token and makes its client available under name.
func (cp *ClientPool) Register(name string, metadata *TokenMetadata, client *gl.Client) error {
	if err := cp.store.AddToken(name, metadata); err != nil {
		return err
	}
	return cp.AddClient(name, client)
}

// Unregister drops a token together with its client.
func (cp *ClientPool) Unregister(name string) error {
	if err := cp.store.RemoveToken(name); err != nil {
		return err
	}
	if err := cp.RemoveClient(name); err != nil {
		cp.logger.WithField("client", name).Debug("Token had no pooled client")
	}
	return nil
}

// InitializeFromConfig creates the default client from the server
// configuration and records its token in the store.
func (cp *ClientPool) InitializeFromConfig(opts ClientOptions) error {
	metadata := &TokenMetadata{
		GitLabHost: opts.BaseURL(),
		AuthType:   opts.AuthType,
	}
	metadata.SetToken(opts.Token)

	cp.mu.RLock()
	factory := cp.factory
	cp.mu.RUnlock()

	client, err := factory(opts)
	if err != nil {
		return err
	}
	if err := cp.Register(DefaultClientName, metadata, client); err != nil {
		return err
	}

	cp.logger.WithFields(log.Fields{
		"client": DefaultClientName,
		"host":   metadata.GitLabHost,
		"auth":   opts.AuthType,
	}).Info("Initialized GitLab client from configuration")
	return nil
}

// ClientForToken returns a client authenticated with a caller supplied token,
// such as one taken from HTTP request headers. Clients are cached by the
// sha256 of the token.
func (cp *ClientPool) ClientForToken(token string) (*gl.Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitLab token is required")
	}
	sum := sha256.Sum256([]byte(token))
	key := hex.EncodeToString(sum[:])

	cp.mu.RLock()
	client, ok := cp.tokenClients[key]
	factory := cp.factory
	cp.mu.RUnlock()
	if ok {
		return client, nil
	}

	opts := cp.base
	opts.Token = token
	client, err := factory(opts)
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()
	if len(cp.tokenClients) >= maxTokenClients {
		cp.tokenClients = make(map[string]*gl.Client)
	}
	cp.tokenClients[key] = client
	return client, nil
}

// ValidateAllClients validates every stored token that has a pooled client
// and records a notification per problem found.
func (cp *ClientPool) ValidateAllClients(ctx context.Context) []TokenValidationResult {
	results := cp.store.CheckAllTokens(ctx, cp.ClientFor)
	for _, r := range results {
		notifyValidationResult(cp.logger, cp.store, r)
	}
	return results
}

// notifyValidationResult turns a validation result into a notification.
func notifyValidationResult(logger *log.Logger, store *TokenStore, r TokenValidationResult) {
	if logger == nil {
		return
	}
	switch {
	case r.Success && r.ExpiresSoon:
		notifyTokenExpiringSoon(logger, r.TokenName, r.DaysUntilExpiry)
	case r.Success:
		return
	case isTokenExpired(store, r.TokenName):
		notifyTokenExpiration(logger, r.TokenName)
	default:
		notifyTokenIssue(logger, r.TokenName, errors.New(r.Error))
	}
}

func isTokenExpired(store *TokenStore, name string) bool {
	metadata, err := store.GetToken(name)
	return err == nil && metadata.IsExpired()
}

// LoadPersistedTokens registers the tokens saved in the OS keyring. Names
// already present in the pool are left alone.
func (cp *ClientPool) LoadPersistedTokens() (int, error) {
	tokens, err := LoadKeyringTokens()
	if err != nil {
		return 0, err
	}
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	loaded := 0
	for _, name := range names {
		if _, err := cp.GetClient(name); err == nil {
			continue
		}
		client, err := cp.NewClient(tokens[name])
		if err != nil {
			cp.logger.WithError(err).WithField("token", name).Warn("Skipping persisted token")
			continue
		}
		if err := cp.Register(name, tokens[name], client); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}
