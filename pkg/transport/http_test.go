package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

// whoamiServer has one tool echoing the token found in the call context.
func whoamiServer() *server.MCPServer {
	s := gitlab.NewServer("test", "1.0.0")
	s.AddTool(mcp.NewTool("whoami"), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		token, ok := gitlab.TokenFromContext(ctx)
		if !ok {
			return mcp.NewToolResultText("anonymous"), nil
		}
		return mcp.NewToolResultText(token), nil
	})
	return s
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{name: "no headers", expected: ""},
		{name: "bearer", headers: map[string]string{"Authorization": "Bearer glpat-abc"}, expected: "glpat-abc"},
		{name: "bearer is case-insensitive", headers: map[string]string{"Authorization": "bearer  glpat-abc "}, expected: "glpat-abc"},
		{name: "private token header", headers: map[string]string{"PRIVATE-TOKEN": "glpat-xyz"}, expected: "glpat-xyz"},
		{name: "basic auth falls through", headers: map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}, expected: ""},
		{
			name:     "bearer wins over private token",
			headers:  map[string]string{"Authorization": "Bearer one", "PRIVATE-TOKEN": "two"},
			expected: "one",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, MCPPath, nil)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.expected, TokenFromRequest(r))
		})
	}
}

func TestHealthz(t *testing.T) {
	ts := httptest.NewServer(NewHTTPHandler(whoamiServer(), HTTPConfig{Version: "1.2.3", Logger: quietLogger()}))
	defer ts.Close()

	resp, err := http.Get(ts.URL + HealthPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "ok", "version": "1.2.3"}, body)

	resp, err = http.Post(ts.URL+HealthPath, "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func postWhoami(t *testing.T, url string, headers map[string]string) *http.Response {
	t.Helper()
	msg := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"whoami","arguments":{}}}`
	req, err := http.NewRequest(http.MethodPost, url+MCPPath, bytes.NewBufferString(msg))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func callWhoami(t *testing.T, url string, headers map[string]string) string {
	t.Helper()
	resp := postWhoami(t, url, headers)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.Len(t, decoded.Result.Content, 1)
	return decoded.Result.Content[0].Text
}

func TestMCPEndpointForwardsRequestToken(t *testing.T) {
	ts := httptest.NewServer(NewHTTPHandler(whoamiServer(), HTTPConfig{Version: "dev", Logger: quietLogger()}))
	defer ts.Close()

	assert.Equal(t, "glpat-abc", callWhoami(t, ts.URL, map[string]string{"Authorization": "Bearer glpat-abc"}))
	assert.Equal(t, "glpat-xyz", callWhoami(t, ts.URL, map[string]string{"PRIVATE-TOKEN": "glpat-xyz"}))

	req, err := http.NewRequest(http.MethodPut, ts.URL+MCPPath, strings.NewReader("{}"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMCPEndpointWithoutToken(t *testing.T) {
	t.Run("refused by default", func(t *testing.T) {
		ts := httptest.NewServer(NewHTTPHandler(whoamiServer(), HTTPConfig{Logger: quietLogger()}))
		defer ts.Close()

		for _, headers := range []map[string]string{
			nil,
			{"Authorization": "Basic dXNlcjpwYXNz"},
			{"Authorization": "Bearer "},
		} {
			resp := postWhoami(t, ts.URL, headers)
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, `Bearer realm="gitlab"`, resp.Header.Get("WWW-Authenticate"))
			assert.Contains(t, string(body), "GitLab token is required")
		}

		// the health check stays open
		resp, err := http.Get(ts.URL + HealthPath)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("shared token allowed", func(t *testing.T) {
		ts := httptest.NewServer(NewHTTPHandler(whoamiServer(), HTTPConfig{AllowSharedToken: true, Logger: quietLogger()}))
		defer ts.Close()
		assert.Equal(t, "anonymous", callWhoami(t, ts.URL, nil))
	})
}

func TestHTTPServerGracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := NewHTTPServer(whoamiServer(), HTTPConfig{Version: "dev", Logger: quietLogger()})
	assert.Equal(t, DefaultShutdownTimeout, h.cfg.ShutdownTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + HealthPath
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get(url)
	assert.Error(t, err, "listener is closed after shutdown")
}

func TestHTTPServerRunBadAddress(t *testing.T) {
	h := NewHTTPServer(whoamiServer(), HTTPConfig{Addr: "256.0.0.1:bad", Logger: quietLogger()})
	err := h.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen on 256.0.0.1:bad")
}
