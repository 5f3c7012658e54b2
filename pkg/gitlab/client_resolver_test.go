package gitlab

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenContext(t *testing.T) {
	ctx := context.Background()
	_, ok := TokenFromContext(ctx)
	assert.False(t, ok)

	assert.Equal(t, ctx, ContextWithToken(ctx, ""), "empty tokens are not attached")

	token, ok := TokenFromContext(ContextWithToken(ctx, "glpat-request"))
	assert.True(t, ok)
	assert.Equal(t, "glpat-request", token)
}

func TestClientResolverResolve(t *testing.T) {
	setup := func(t *testing.T) *ClientPool {
		pool := NewClientPool(nil, ClientOptions{RetryMax: 0}, quietLogger())
		require.NoError(t, pool.AddClient(DefaultClientName, newHostClient(t, "gitlab.com")))
		require.NoError(t, pool.AddClient("work", newHostClient(t, "gitlab.work.com")))
		require.NoError(t, pool.AddClient("selfhosted", newHostClient(t, "git.internal")))
		return pool
	}

	tests := []struct {
		name          string
		config        *ProjectConfig
		defaultServer string
		expected      string
	}{
		{name: "no config", expected: DefaultClientName},
		{name: "token name", config: &ProjectConfig{ProjectID: "p", TokenName: "work"}, expected: "work"},
		{
			name:     "token name wins over host",
			config:   &ProjectConfig{ProjectID: "p", TokenName: "selfhosted", GitLabHost: "https://gitlab.work.com"},
			expected: "selfhosted",
		},
		{
			name:     "unknown token name falls back to host",
			config:   &ProjectConfig{ProjectID: "p", TokenName: "missing", GitLabHost: "https://gitlab.work.com"},
			expected: "work",
		},
		{name: "host match", config: &ProjectConfig{ProjectID: "p", GitLabHost: "git.internal"}, expected: "selfhosted"},
		{name: "unknown host", config: &ProjectConfig{ProjectID: "p", GitLabHost: "https://nowhere.example"}, expected: DefaultClientName},
		{name: "default server", defaultServer: "work", expected: "work"},
		{name: "missing default server", defaultServer: "missing", expected: DefaultClientName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			if tc.config != nil {
				_, err := WriteProjectConfig(dir, tc.config)
				require.NoError(t, err)
			}

			pool := setup(t)
			resolver := NewClientResolver(pool, tc.defaultServer, quietLogger())
			client, name, err := resolver.Resolve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, name)

			want, err := pool.GetClient(tc.expected)
			require.NoError(t, err)
			assert.Same(t, want, client)
		})
	}
}

func TestClientResolverRequestToken(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	_, err := WriteProjectConfig(dir, &ProjectConfig{ProjectID: "p", TokenName: "work"})
	require.NoError(t, err)

	pool := NewClientPool(nil, ClientOptions{Host: "gitlab.example.com", RetryMax: 0}, quietLogger())
	require.NoError(t, pool.AddClient("work", newHostClient(t, "gitlab.work.com")))
	resolver := NewClientResolver(pool, "", quietLogger())

	ctx := ContextWithToken(context.Background(), "glpat-caller")
	client, name, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, RequestClientName, name, "a request token beats .gmcprc")
	assert.Equal(t, "gitlab.example.com", client.BaseURL().Host)

	again, _, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Same(t, client, again)
}

func TestClientResolverNoClients(t *testing.T) {
	t.Chdir(t.TempDir())

	resolver := NewClientResolver(NewClientPool(nil, ClientOptions{}, quietLogger()), "", quietLogger())
	_, _, err := resolver.Resolve(context.Background())
	require.EqualError(t, err, "no clients available in pool")

	client, err := resolver.GetClientFn()(context.Background())
	require.Error(t, err)
	assert.Nil(t, client)
}

func TestClientResolverGetClientFn(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	pool := NewClientPool(nil, ClientOptions{}, quietLogger())
	def := newHostClient(t, "gitlab.com")
	require.NoError(t, pool.AddClient(DefaultClientName, def))

	getClient := NewClientResolver(pool, "", logger).GetClientFn()
	client, err := getClient(context.Background())
	require.NoError(t, err)
	assert.Same(t, def, client)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Resolved GitLab client", last.Message)
	assert.Equal(t, DefaultClientName, last.Data["client"])
}
