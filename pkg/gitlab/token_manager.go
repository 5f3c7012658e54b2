package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"github.com/sourcegraph/conc/pool"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// expiryWarningDays is how early an expiring token is reported.
const expiryWarningDays = 7

// maxConcurrentValidations bounds the parallel /user calls of CheckAllTokens.
const maxConcurrentValidations = 4

// TokenMetadata stores information about a GitLab access token. The token
// value itself lives in a memguard enclave and never appears in JSON.
type TokenMetadata struct {
	Name          string     `json:"name"`
	GitLabHost    string     `json:"gitlabHost"`
	AuthType      AuthType   `json:"authType,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastValidated time.Time  `json:"lastValidated"`
	UserID        int64      `json:"userId,omitempty"`
	Username      string     `json:"username,omitempty"`
	IsExpiredFlag bool       `json:"isExpired"`

	secret *memguard.Enclave
}

// SetToken seals token into an encrypted enclave.
func (tm *TokenMetadata) SetToken(token string) {
	if token == "" {
		tm.secret = nil
		return
	}
	tm.secret = memguard.NewEnclave([]byte(token))
}

// HasToken reports whether a token value is stored.
func (tm *TokenMetadata) HasToken() bool {
	return tm.secret != nil
}

// Token opens the enclave and returns a copy of the token.
func (tm *TokenMetadata) Token() (string, error) {
	if tm.secret == nil {
		return "", fmt.Errorf("token '%s' has no value", tm.Name)
	}
	buf, err := tm.secret.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open token '%s': %w", tm.Name, err)
	}
	defer buf.Destroy()
	return string(buf.Bytes()), nil
}

// ClientOptions returns the options for a client authenticated with this token.
func (tm *TokenMetadata) ClientOptions(base ClientOptions) (ClientOptions, error) {
	token, err := tm.Token()
	if err != nil {
		return ClientOptions{}, err
	}
	opts := base
	opts.Token = token
	if tm.GitLabHost != "" {
		opts.Host = tm.GitLabHost
	}
	if tm.AuthType != "" {
		opts.AuthType = tm.AuthType
	}
	return opts, nil
}

// IsExpired checks if the token is expired or close to expiration
func (tm *TokenMetadata) IsExpired() bool {
	if tm.IsExpiredFlag {
		return true
	}
	if tm.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*tm.ExpiresAt)
}

// DaysUntilExpiry returns the number of days until token expiration
// Returns negative value if already expired, 0 if no expiry set
func (tm *TokenMetadata) DaysUntilExpiry() int {
	if tm.ExpiresAt == nil {
		return 0
	}
	return int(time.Until(*tm.ExpiresAt).Hours() / 24)
}

// ExpiresSoon reports a token that expires within expiryWarningDays.
func (tm *TokenMetadata) ExpiresSoon() bool {
	if tm.ExpiresAt == nil || tm.IsExpired() {
		return false
	}
	return tm.DaysUntilExpiry() <= expiryWarningDays
}

// TokenStore manages multiple GitLab tokens
type TokenStore struct {
	tokens map[string]*TokenMetadata // key: token name
	mu     sync.RWMutex
}

// NewTokenStore creates a new token store
func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]*TokenMetadata),
	}
}

// AddToken adds or updates a token in the store
func (ts *TokenStore) AddToken(name string, metadata *TokenMetadata) error {
	if name == "" {
		return fmt.Errorf("token name cannot be empty")
	}
	if metadata == nil {
		return fmt.Errorf("token metadata cannot be nil")
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	metadata.Name = name
	if metadata.CreatedAt.IsZero() {
		metadata.CreatedAt = time.Now()
	}
	ts.tokens[name] = metadata
	return nil
}

// GetToken retrieves a token by name
func (ts *TokenStore) GetToken(name string) (*TokenMetadata, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	token, ok := ts.tokens[name]
	if !ok {
		return nil, fmt.Errorf("token '%s' not found", name)
	}
	return token, nil
}

// ListTokens returns all tokens in the store
func (ts *TokenStore) ListTokens() map[string]*TokenMetadata {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	result := make(map[string]*TokenMetadata, len(ts.tokens))
	for k, v := range ts.tokens {
		result[k] = v
	}
	return result
}

// Names returns the sorted token names.
func (ts *TokenStore) Names() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	names := make([]string, 0, len(ts.tokens))
	for name := range ts.tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RemoveToken removes a token from the store
func (ts *TokenStore) RemoveToken(name string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tokens[name]; !ok {
		return fmt.Errorf("token '%s' not found", name)
	}
	delete(ts.tokens, name)
	return nil
}

// errTokenRejected marks a 401 answer to the /user call.
var errTokenRejected = errors.New("invalid or expired (401)")

// currentUserOf asks GitLab who owns the token behind glClient.
func currentUserOf(ctx context.Context, name string, glClient *gl.Client) (*gl.User, error) {
	user, resp, err := glClient.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		if StatusCode(err, resp) == http.StatusUnauthorized {
			return nil, fmt.Errorf("token '%s' is %w", name, errTokenRejected)
		}
		return nil, fmt.Errorf("failed to validate token '%s': %w", name, err)
	}
	return user, nil
}

// ValidateToken validates a token by calling GitLab API
// Returns TokenMetadata with user information if successful
func (ts *TokenStore) ValidateToken(ctx context.Context, name string, glClient *gl.Client) (*TokenMetadata, error) {
	user, err := currentUserOf(ctx, name, glClient)
	if err != nil {
		if errors.Is(err, errTokenRejected) {
			ts.markExpired(name)
		}
		return nil, err
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	token, ok := ts.tokens[name]
	if !ok {
		token = &TokenMetadata{
			Name:      name,
			CreatedAt: time.Now(),
		}
		ts.tokens[name] = token
	}

	token.UserID = int64(user.ID)
	token.Username = user.Username
	token.LastValidated = time.Now()
	token.IsExpiredFlag = false
	return token, nil
}

func (ts *TokenStore) markExpired(name string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if token, ok := ts.tokens[name]; ok {
		token.IsExpiredFlag = true
	}
}

// CheckAllTokens validates all stored tokens concurrently and returns the
// results ordered by token name.
func (ts *TokenStore) CheckAllTokens(ctx context.Context, getClientFunc func(name string) (*gl.Client, error)) []TokenValidationResult {
	p := pool.NewWithResults[TokenValidationResult]().WithMaxGoroutines(maxConcurrentValidations)

	for _, name := range ts.Names() {
		p.Go(func() TokenValidationResult {
			result := TokenValidationResult{TokenName: name}

			client, err := getClientFunc(name)
			if err != nil {
				result.Error = fmt.Sprintf("Failed to get client: %v", err)
				return result
			}

			metadata, err := ts.ValidateToken(ctx, name, client)
			if err != nil {
				result.Error = err.Error()
				result.IsExpired = isTokenExpired(ts, name)
				return result
			}
			result.Success = true
			result.UserID = metadata.UserID
			result.Username = metadata.Username
			result.DaysUntilExpiry = metadata.DaysUntilExpiry()
			result.ExpiresSoon = metadata.ExpiresSoon()
			return result
		})
	}

	results := p.Wait()
	sort.Slice(results, func(i, j int) bool { return results[i].TokenName < results[j].TokenName })
	return results
}

// TokenValidationResult represents the result of token validation
type TokenValidationResult struct {
	TokenName       string `json:"tokenName"`
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	IsExpired       bool   `json:"isExpired"`
	ExpiresSoon     bool   `json:"expiresSoon,omitempty"`
	UserID          int64  `json:"userId,omitempty"`
	Username        string `json:"username,omitempty"`
	DaysUntilExpiry int    `json:"daysUntilExpiry,omitempty"`
}
