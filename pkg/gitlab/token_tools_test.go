package gitlab

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
	gl "gitlab.com/gitlab-org/api/client-go"
	gltesting "gitlab.com/gitlab-org/api/client-go/testing"
	"go.uber.org/mock/gomock"
)

// mockedPool returns a pool whose factory hands out tc and records the
// options it was asked for.
func mockedPool(t *testing.T, tc *gltesting.TestClient) (*ClientPool, *[]ClientOptions) {
	t.Helper()
	pool := NewClientPool(nil, ClientOptions{Host: "gitlab.example.com", RetryMax: 0}, quietLogger())
	var seen []ClientOptions
	pool.SetClientFactory(func(opts ClientOptions) (*gl.Client, error) {
		seen = append(seen, opts)
		return tc.Client, nil
	})
	return pool, &seen
}

func TestParseExpiry(t *testing.T) {
	got, err := parseExpiry("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseExpiry("2027-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseExpiry("2027-01-31T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseExpiry("next week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a date")
}

func TestAddTokenHandler(t *testing.T) {
	t.Run("validates and registers", func(t *testing.T) {
		ClearNotifications()
		t.Cleanup(ClearNotifications)

		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(currentUser(&gl.User{ID: 42, Username: "jane"}))
		pool, seen := mockedPool(t, tc)

		tool, handler := AddToken(pool, quietLogger())
		assert.Equal(t, "addToken", tool.Name)
		assert.ElementsMatch(t, []string{"name", "token"}, tool.InputSchema.Required)

		result, err := handler(context.Background(), callRequest("addToken", map[string]any{
			"name":       "work",
			"token":      "glpat-work",
			"gitlabHost": "gitlab.work.com",
			"authType":   "oauth",
		}))
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, 42.0, out["userId"])
		assert.Equal(t, "jane", out["username"])
		assert.Equal(t, "https://gitlab.work.com", out["gitlabHost"])
		assert.Equal(t, false, out["persisted"])

		require.Len(t, *seen, 1)
		assert.Equal(t, "glpat-work", (*seen)[0].Token)
		assert.Equal(t, AuthOAuth, (*seen)[0].AuthType)

		client, err := pool.GetClient("work")
		require.NoError(t, err)
		assert.Same(t, tc.Client, client)
		md, err := pool.Store().GetToken("work")
		require.NoError(t, err)
		assert.Equal(t, "jane", md.Username)

		n := GetNotifications()
		require.NotEmpty(t, n)
		assert.Equal(t, "Token Validated", n[len(n)-1].Title)
	})

	t.Run("host defaults to the server", func(t *testing.T) {
		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(currentUser(&gl.User{ID: 1, Username: "me"}))
		pool, _ := mockedPool(t, tc)

		_, handler := AddToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("addToken", map[string]any{"name": "me", "token": "glpat-me"}))
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com", decodeResult(t, result)["gitlabHost"])
	})

	t.Run("persist writes the keyring", func(t *testing.T) {
		keyring.MockInit()
		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(currentUser(&gl.User{ID: 1, Username: "me"}))
		pool, _ := mockedPool(t, tc)

		_, handler := AddToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("addToken", map[string]any{
			"name":    "saved",
			"token":   "glpat-saved",
			"persist": true,
		}))
		require.NoError(t, err)
		assert.Equal(t, true, decodeResult(t, result)["persisted"])

		md, err := LoadKeyringToken("saved")
		require.NoError(t, err)
		token, err := md.Token()
		require.NoError(t, err)
		assert.Equal(t, "glpat-saved", token)
	})

	t.Run("rejected token is not stored", func(t *testing.T) {
		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(unauthorized())
		pool, _ := mockedPool(t, tc)

		_, handler := AddToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("addToken", map[string]any{"name": "bad", "token": "glpat-bad"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, getTextResult(t, result).Text, "Token validation failed: token 'bad' is invalid or expired (401)")
		assert.Empty(t, pool.ListClients())
		assert.Empty(t, pool.Store().Names())
	})

	tests := []struct {
		name        string
		args        map[string]any
		errContains string
	}{
		{name: "missing name", args: map[string]any{"token": "x"}, errContains: "missing required parameter: name"},
		{name: "missing token", args: map[string]any{"name": "x"}, errContains: "missing required parameter: token"},
		{name: "bad auth type", args: map[string]any{"name": "x", "token": "y", "authType": "basic"}, errContains: "unknown auth type"},
		{name: "bad expiry", args: map[string]any{"name": "x", "token": "y", "expiresAt": "soon"}, errContains: "expiresAt"},
		{name: "bad persist", args: map[string]any{"name": "x", "token": "y", "persist": "perhaps"}, errContains: "must be a boolean"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := NewClientPool(nil, ClientOptions{}, quietLogger())
			_, handler := AddToken(pool, quietLogger())
			result, err := handler(context.Background(), callRequest("addToken", tc.args))
			require.NoError(t, err)
			require.True(t, result.IsError)
			assert.Contains(t, getTextResult(t, result).Text, tc.errContains)
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		pool := NewClientPool(nil, ClientOptions{}, quietLogger())
		require.NoError(t, pool.Store().AddToken("work", tokenMetadata("gitlab.com", "a")))
		_, handler := AddToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("addToken", map[string]any{"name": "work", "token": "b"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, getTextResult(t, result).Text, "already exists")
	})
}

func TestListTokensHandler(t *testing.T) {
	store := NewTokenStore()
	tool, handler := ListTokens(store)
	require.NotNil(t, tool.Annotations.ReadOnlyHint)
	assert.True(t, *tool.Annotations.ReadOnlyHint)

	result, err := handler(context.Background(), callRequest("listTokens", nil))
	require.NoError(t, err)
	out := decodeResult(t, result)
	assert.Equal(t, []any{}, out["tokens"])

	expiry := time.Now().Add(10 * 24 * time.Hour)
	work := tokenMetadata("https://gitlab.work.com", "glpat-secret-work")
	work.ExpiresAt = &expiry
	work.Username = "jane"
	require.NoError(t, store.AddToken("work", work))
	require.NoError(t, store.AddToken("alpha", tokenMetadata("https://gitlab.com", "glpat-secret-alpha")))

	result, err = handler(context.Background(), callRequest("listTokens", nil))
	require.NoError(t, err)
	text := getTextResult(t, result).Text
	assert.NotContains(t, text, "glpat-secret")

	out = decodeResult(t, result)
	assert.Equal(t, 2.0, out["count"])
	tokens := out["tokens"].([]any)
	first := tokens[0].(map[string]any)
	second := tokens[1].(map[string]any)
	assert.Equal(t, "alpha", first["name"])
	assert.NotContains(t, first, "expiresAt")
	assert.Equal(t, "work", second["name"])
	assert.Equal(t, "jane", second["username"])
	assert.Contains(t, second, "expiresAt")
	assert.Equal(t, 9.0, second["daysUntilExpiry"])
}

func TestUpdateTokenHandler(t *testing.T) {
	t.Run("new token value", func(t *testing.T) {
		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(currentUser(&gl.User{ID: 5, Username: "new"}))
		pool, seen := mockedPool(t, tc)

		created := time.Now().Add(-time.Hour)
		old := tokenMetadata("https://gitlab.work.com", "glpat-old")
		old.AuthType = AuthOAuth
		old.CreatedAt = created
		require.NoError(t, pool.Store().AddToken("work", old))

		_, handler := UpdateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("updateToken", map[string]any{
			"name":      "work",
			"token":     "glpat-new",
			"expiresAt": "2030-01-01",
		}))
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, true, out["updated"])
		assert.Equal(t, "new", out["username"])

		require.Len(t, *seen, 1)
		assert.Equal(t, "glpat-new", (*seen)[0].Token)
		assert.Equal(t, "https://gitlab.work.com", (*seen)[0].Host)
		assert.Equal(t, AuthOAuth, (*seen)[0].AuthType)

		md, err := pool.Store().GetToken("work")
		require.NoError(t, err)
		assert.Equal(t, created, md.CreatedAt)
		require.NotNil(t, md.ExpiresAt)
		assert.Equal(t, 2030, md.ExpiresAt.Year())
		token, err := md.Token()
		require.NoError(t, err)
		assert.Equal(t, "glpat-new", token)
	})

	t.Run("revalidates the stored token", func(t *testing.T) {
		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(currentUser(&gl.User{ID: 5, Username: "same"}))
		pool, seen := mockedPool(t, tc)
		require.NoError(t, pool.Store().AddToken("work", tokenMetadata("gitlab.com", "glpat-kept")))

		_, handler := UpdateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("updateToken", map[string]any{"name": "work"}))
		require.NoError(t, err)
		assert.Equal(t, false, decodeResult(t, result)["updated"])
		assert.Equal(t, "glpat-kept", (*seen)[0].Token)
	})

	t.Run("rejected new token keeps the old one", func(t *testing.T) {
		ClearNotifications()
		t.Cleanup(ClearNotifications)

		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(unauthorized())
		pool, _ := mockedPool(t, tc)
		require.NoError(t, pool.Store().AddToken("work", tokenMetadata("gitlab.com", "glpat-old")))

		_, handler := UpdateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("updateToken", map[string]any{"name": "work", "token": "glpat-bad"}))
		require.NoError(t, err)
		require.True(t, result.IsError)

		md, err := pool.Store().GetToken("work")
		require.NoError(t, err)
		token, err := md.Token()
		require.NoError(t, err)
		assert.Equal(t, "glpat-old", token)
		assert.False(t, md.IsExpired(), "the stored token was not the one rejected")
		assert.Empty(t, GetNotifications())
	})

	t.Run("revoked stored token is reported", func(t *testing.T) {
		ClearNotifications()
		t.Cleanup(ClearNotifications)

		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(unauthorized())
		pool, _ := mockedPool(t, tc)
		require.NoError(t, pool.Store().AddToken("work", tokenMetadata("gitlab.com", "glpat-old")))

		_, handler := UpdateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("updateToken", map[string]any{"name": "work"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.True(t, isTokenExpired(pool.Store(), "work"))

		n := GetNotifications()
		require.Len(t, n, 1)
		assert.Equal(t, "Token Expired", n[0].Title)
	})

	t.Run("unknown token", func(t *testing.T) {
		pool := NewClientPool(nil, ClientOptions{}, quietLogger())
		_, handler := UpdateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("updateToken", map[string]any{"name": "missing"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, getTextResult(t, result).Text, "Token 'missing' not found")
	})
}

func TestValidateTokenHandler(t *testing.T) {
	t.Run("single token", func(t *testing.T) {
		tc := gltesting.NewTestClient(t)
		tc.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(currentUser(&gl.User{ID: 9, Username: "jane"}))
		pool, _ := mockedPool(t, tc)
		require.NoError(t, pool.Register("work", tokenMetadata("gitlab.com", "a"), tc.Client))

		_, handler := ValidateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("validateToken", map[string]any{"name": "work"}))
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, "jane", out["username"])
	})

	t.Run("unknown token", func(t *testing.T) {
		pool := NewClientPool(nil, ClientOptions{}, quietLogger())
		_, handler := ValidateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("validateToken", map[string]any{"name": "missing"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, getTextResult(t, result).Text, "Failed to create client")
	})

	t.Run("all tokens", func(t *testing.T) {
		good := gltesting.NewTestClient(t)
		good.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(currentUser(&gl.User{ID: 1, Username: "a"}))
		bad := gltesting.NewTestClient(t)
		bad.MockUsers.EXPECT().CurrentUser(gomock.Any()).Return(unauthorized())

		pool := NewClientPool(nil, ClientOptions{}, quietLogger())
		require.NoError(t, pool.Register("good", tokenMetadata("gitlab.com", "a"), good.Client))
		require.NoError(t, pool.Register("bad", tokenMetadata("gitlab.com", "b"), bad.Client))

		_, handler := ValidateToken(pool, quietLogger())
		result, err := handler(context.Background(), callRequest("validateToken", nil))
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, 2.0, out["total"])
		assert.Equal(t, 1.0, out["successCount"])
		assert.Equal(t, 1.0, out["failureCount"])
		assert.Equal(t, "Validated 2 token(s): 1 succeeded, 1 failed", out["message"])
	})
}

func TestNotificationTools(t *testing.T) {
	ClearNotifications()
	t.Cleanup(ClearNotifications)

	tool, getHandler := GetNotificationsTool()
	require.NotNil(t, tool.Annotations.ReadOnlyHint)
	_, clearHandler := ClearNotificationsTool()

	result, err := getHandler(context.Background(), callRequest("getNotifications", nil))
	require.NoError(t, err)
	assert.Equal(t, "No notifications", decodeResult(t, result)["message"])

	logger := quietLogger()
	notifyTokenExpiration(logger, "one")
	notifyTokenExpiration(logger, "two")
	notifyTokenExpiration(logger, "three")

	result, err = getHandler(context.Background(), callRequest("getNotifications", map[string]any{"limit": 2.0}))
	require.NoError(t, err)
	out := decodeResult(t, result)
	assert.Equal(t, 2.0, out["count"])
	items := out["notifications"].([]any)
	assert.Equal(t, "two", items[0].(map[string]any)["tokenName"])
	assert.Equal(t, "ERROR", items[0].(map[string]any)["level"])

	result, err = getHandler(context.Background(), callRequest("getNotifications", map[string]any{"limit": -1.0}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = clearHandler(context.Background(), callRequest("clearNotifications", nil))
	require.NoError(t, err)
	assert.Equal(t, true, decodeResult(t, result)["success"])
	assert.Empty(t, GetNotifications())
}

func TestRemoveTokenHandler(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, SaveKeyringToken("work", "glpat-work", "gitlab.com", ""))

	pool := NewClientPool(nil, ClientOptions{}, quietLogger())
	require.NoError(t, pool.Register("work", tokenMetadata("gitlab.com", "glpat-work"), newHostClient(t, "gitlab.com")))

	tool, handler := RemoveToken(pool)
	require.NotNil(t, tool.Annotations.DestructiveHint)
	assert.True(t, *tool.Annotations.DestructiveHint)

	result, err := handler(context.Background(), callRequest("removeToken", map[string]any{"name": "work", "persist": true}))
	require.NoError(t, err)
	out := decodeResult(t, result)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, true, out["removedFromKeyring"])
	assert.Empty(t, pool.ListClients())

	_, err = LoadKeyringToken("work")
	assert.ErrorIs(t, err, ErrKeyringNotFound)

	result, err = handler(context.Background(), callRequest("removeToken", map[string]any{"name": "work"}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, getTextResult(t, result).Text, "token 'work' not found")
}
