package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testCatalog(t *testing.T) *endpoints.Catalog {
	t.Helper()
	c, err := endpoints.NewCatalog([]endpoints.Endpoint{
		{
			Method:      "GET",
			Path:        "/projects/{id}/issues",
			Toolset:     "issues",
			Description: "List project issues",
			Params: []endpoints.Param{
				{Name: "id", In: endpoints.InPath, Type: endpoints.TypeString, Required: true},
				{Name: "state", Type: endpoints.TypeString},
			},
		},
		{
			Method:  "POST",
			Path:    "/projects/{id}/issues",
			Toolset: "issues",
			Params: []endpoints.Param{
				{Name: "id", In: endpoints.InPath, Type: endpoints.TypeString, Required: true},
				{Name: "title", Type: endpoints.TypeString, Required: true},
			},
		},
		{Method: "GET", Path: "/version", Toolset: "instance"},
	}, nil)
	require.NoError(t, err)
	return c
}

// fakeUserAPI answers GET /api/v4/user for one accepted token.
func fakeUserAPI(t *testing.T, token string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v4/user" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("PRIVATE-TOKEN") != token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"401 Unauthorized"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"username":"jane"}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestLoadServerConfig(t *testing.T) {
	keyring.MockInit()

	t.Run("defaults", func(t *testing.T) {
		v := viper.New()
		v.Set("token", " glpat-abc ")

		cfg, err := loadServerConfig(v, quietLogger())
		require.NoError(t, err)
		assert.Equal(t, "glpat-abc", cfg.Client.Token)
		assert.Equal(t, "config", cfg.TokenSource)
		assert.Equal(t, gitlab.AuthPrivateToken, cfg.Client.AuthType)
		assert.Equal(t, gitlab.DefaultTimeout, cfg.Client.Timeout)
		assert.Equal(t, -1, cfg.Client.RetryMax)
		assert.Equal(t, gitlab.DefaultTools, cfg.Toolsets)
		assert.Equal(t, gitlab.ResponseRaw, cfg.Response.Mode)
		assert.Equal(t, gitlab.DefaultClientName, cfg.KeyringUser)
		assert.Contains(t, cfg.Client.UserAgent, appName+"/")
	})

	t.Run("explicit settings", func(t *testing.T) {
		v := viper.New()
		v.Set("token", "glpat-abc")
		v.Set("host", "gitlab.example.com")
		v.Set("auth-type", "oauth")
		v.Set("timeout", "5s")
		v.Set("retry-max", 2)
		v.Set("toolsets", []string{"issues, merge_requests", "jobs"})
		v.Set("read-only", true)
		v.Set("dynamic-toolsets", true)
		v.Set("tool-prefix", "gl_")
		v.Set("response.mode", "optimized")
		v.Set("response.max-bytes", 4096)

		cfg, err := loadServerConfig(v, quietLogger())
		require.NoError(t, err)
		assert.Equal(t, "gitlab.example.com", cfg.Client.Host)
		assert.Equal(t, gitlab.AuthOAuth, cfg.Client.AuthType)
		assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
		assert.Equal(t, 2, cfg.Client.RetryMax)
		assert.Equal(t, []string{"issues", "merge_requests", "jobs"}, cfg.Toolsets)
		assert.True(t, cfg.ReadOnly)
		assert.True(t, cfg.Dynamic)
		assert.Equal(t, "gl_", cfg.ToolPrefix)
		assert.Equal(t, gitlab.ResponseOptions{Mode: gitlab.ResponseOptimized, MaxBytes: 4096}, cfg.Response)
	})

	t.Run("token from keyring", func(t *testing.T) {
		require.NoError(t, gitlab.SaveKeyringToken("work", "glpat-kr", "https://gitlab.work.example", gitlab.AuthJobToken))
		t.Cleanup(func() { _ = gitlab.DeleteKeyringToken("work") })

		v := viper.New()
		v.Set("keyring.user", "work")
		cfg, err := loadServerConfig(v, quietLogger())
		require.NoError(t, err)
		assert.Equal(t, "glpat-kr", cfg.Client.Token)
		assert.Equal(t, "keyring", cfg.TokenSource)
		assert.Equal(t, "https://gitlab.work.example", cfg.Client.Host)
		assert.Equal(t, gitlab.AuthJobToken, cfg.Client.AuthType)
	})

	t.Run("no token anywhere", func(t *testing.T) {
		cfg, err := loadServerConfig(viper.New(), quietLogger())
		require.NoError(t, err)
		assert.Empty(t, cfg.Client.Token)
		assert.Empty(t, cfg.TokenSource)
	})

	t.Run("unavailable keyring is not fatal", func(t *testing.T) {
		keyring.MockInitWithError(errors.New("org.freedesktop.secrets was not provided by any .service files"))
		t.Cleanup(keyring.MockInit)

		v := viper.New()
		v.Set("http.addr", "127.0.0.1:9000")
		v.Set("http.allow-shared-token", true)
		cfg, err := loadServerConfig(v, quietLogger())
		require.NoError(t, err)
		assert.Empty(t, cfg.Client.Token)
		assert.Empty(t, cfg.TokenSource)
		assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
		assert.True(t, cfg.AllowSharedToken)
	})

	t.Run("invalid values", func(t *testing.T) {
		v := viper.New()
		v.Set("auth-type", "basic")
		_, err := loadServerConfig(v, quietLogger())
		assert.ErrorContains(t, err, "unknown auth type")

		v = viper.New()
		v.Set("response.mode", "compact")
		_, err = loadServerConfig(v, quietLogger())
		assert.ErrorContains(t, err, "unknown response mode")
	})
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(nil))
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a,b", " c ", ",,"}))
}

func TestInitLogger(t *testing.T) {
	logger, err := initLogger("debug", "")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.Level)

	logger, err = initLogger("chatty", "")
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.Level)

	path := filepath.Join(t.TempDir(), "server.log")
	logger, err = initLogger("info", path)
	require.NoError(t, err)
	logger.Info("hello")

	_, err = initLogger("info", filepath.Join(t.TempDir(), "missing", "server.log"))
	assert.ErrorContains(t, err, "failed to open log file")
}

func TestPrintTools(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTools(&buf, catalog, toolListOptions{Format: "json", Prefix: "gl_"}))

		var tools []toolInfo
		require.NoError(t, json.Unmarshal(buf.Bytes(), &tools))
		require.Len(t, tools, 3)
		assert.Equal(t, toolInfo{
			Name:        "gl_getProjectsIdIssues",
			Toolset:     "issues",
			Method:      "GET",
			Path:        "/projects/{id}/issues",
			ReadOnly:    true,
			Description: "List project issues",
			Required:    []string{"id"},
		}, tools[0])
		assert.False(t, tools[1].ReadOnly)
		assert.Equal(t, []string{"id", "title"}, tools[1].Required)
	})

	t.Run("yaml filtered by toolset", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTools(&buf, catalog, toolListOptions{Format: "yaml", Toolset: "instance"}))

		var tools []toolInfo
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &tools))
		require.Len(t, tools, 1)
		assert.Equal(t, "getVersion", tools[0].Name)
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTools(&buf, catalog, toolListOptions{}))
		out := buf.String()
		assert.Contains(t, out, "TOOL")
		assert.Contains(t, out, "postProjectsIdIssues")
		assert.Contains(t, out, "/version")
		assert.True(t, strings.HasSuffix(out, "3 tools\n"))
	})

	t.Run("errors", func(t *testing.T) {
		err := printTools(io.Discard, catalog, toolListOptions{Format: "csv"})
		assert.EqualError(t, err, `unknown format "csv" (expected table, json or yaml)`)

		err = printTools(io.Discard, catalog, toolListOptions{Toolset: "wikis"})
		assert.EqualError(t, err, `unknown toolset "wikis" (available: instance, issues)`)
	})
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := loadCatalog("", quietLogger())
	require.NoError(t, err)
	def, err := endpoints.Default()
	require.NoError(t, err)
	assert.Same(t, def, catalog)

	catalog, err = loadCatalog(filepath.Join("..", "..", "pkg", "openapi", "testdata", "petstore_v3.json"), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"), quietLogger())
	assert.Error(t, err)
}

func TestNewMCPServer(t *testing.T) {
	keyring.MockInit()
	catalog := testCatalog(t)

	t.Run("stdio needs a token", func(t *testing.T) {
		_, err := newMCPServer(context.Background(), serverConfig{Toolsets: []string{"all"}}, catalog, nil, false, quietLogger())
		assert.ErrorContains(t, err, "GITLAB_TOKEN")
	})

	t.Run("http runs without a token", func(t *testing.T) {
		s, err := newMCPServer(context.Background(), serverConfig{Toolsets: []string{"all"}}, catalog, nil, true, quietLogger())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("configured token", func(t *testing.T) {
		api := fakeUserAPI(t, "glpat-abc")
		cfg := serverConfig{
			Client:   gitlab.ClientOptions{Host: api.URL, Token: "glpat-abc", RetryMax: 0},
			Toolsets: []string{"issues"},
			Dynamic:  true,
		}
		s, err := newMCPServer(context.Background(), cfg, catalog, nil, false, quietLogger())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("unknown toolset", func(t *testing.T) {
		_, err := newMCPServer(context.Background(), serverConfig{Toolsets: []string{"wikis"}}, catalog, nil, true, quietLogger())
		assert.ErrorContains(t, err, "failed to initialize toolsets")
	})
}

func TestAuthLoginStatusLogout(t *testing.T) {
	keyring.MockInit()
	api := fakeUserAPI(t, "glpat-good")
	ctx := context.Background()

	var out bytes.Buffer
	err := login(ctx, &out, loginOptions{Name: "work", Host: api.URL, Token: "glpat-bad"})
	assert.ErrorContains(t, err, "invalid or expired")
	_, err = gitlab.LoadKeyringToken("work")
	assert.ErrorIs(t, err, gitlab.ErrKeyringNotFound, "rejected tokens are not stored")

	require.NoError(t, login(ctx, &out, loginOptions{Name: "work", Host: api.URL, Token: "glpat-good"}))
	assert.Contains(t, out.String(), "as jane (ID: 42)")
	assert.Contains(t, out.String(), "Stored token 'work'")

	require.NoError(t, login(ctx, &out, loginOptions{Name: "offline", Host: api.URL, Token: "glpat-unchecked", SkipVerify: true}))
	assert.ErrorContains(t, login(ctx, &out, loginOptions{Token: "x", SkipVerify: true}), "token name is required")

	out.Reset()
	require.NoError(t, authStatus(ctx, &out, true))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "offline\t"+api.URL+"\tinvalid:"), lines[0])
	assert.Equal(t, "work\t"+api.URL+"\tvalid (jane)", lines[1])

	out.Reset()
	require.NoError(t, authStatus(ctx, &out, false))
	assert.Contains(t, out.String(), "work\t"+api.URL+"\tstored")

	require.NoError(t, gitlab.DeleteKeyringToken("work"))
	require.NoError(t, gitlab.DeleteKeyringToken("offline"))
	out.Reset()
	require.NoError(t, authStatus(ctx, &out, true))
	assert.Contains(t, out.String(), "No tokens stored")
}

func TestReadToken(t *testing.T) {
	token, err := readToken(strings.NewReader("  glpat-abc \nignored"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "glpat-abc", token)

	token, err = readToken(strings.NewReader("glpat-no-newline"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "glpat-no-newline", token)

	_, err = readToken(strings.NewReader("\n"), io.Discard)
	assert.EqualError(t, err, "no token given")
}
