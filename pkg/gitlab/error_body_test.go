package gitlab

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBodyTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			_, _ = io.WriteString(w, `{"id":1}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"404 Project Not Found"}`)
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: newErrorBodyTransport(nil)}

	resp, err := client.Get(srv.URL + "/missing")
	require.NoError(t, err)
	// drained and closed like client-go does
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())

	body, ok := resp.Body.(*errorBody)
	require.True(t, ok)
	assert.JSONEq(t, `{"message":"404 Project Not Found"}`, string(body.Bytes()))

	resp, err = client.Get(srv.URL + "/ok")
	require.NoError(t, err)
	defer resp.Body.Close()
	_, ok = resp.Body.(*errorBody)
	assert.False(t, ok, "successful bodies are streamed")
}

func TestBodyMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "  ", want: ""},
		{name: "message string", body: `{"message":"404 Branch Not Found"}`, want: "404 Branch Not Found"},
		{name: "message object", body: `{"message": {"title": ["is too long"]}}`, want: `{"title":["is too long"]}`},
		{name: "oauth error", body: `{"error":"invalid_token","error_description":"Token was revoked"}`, want: "invalid_token: Token was revoked"},
		{name: "plain error", body: `{"error":"404 Not Found"}`, want: "404 Not Found"},
		{name: "plain text", body: "Service Unavailable\n", want: "Service Unavailable"},
		{name: "json without message", body: `{"status":404}`, want: `{"status":404}`},
		{name: "long text is cut", body: strings.Repeat("x", 600), want: strings.Repeat("x", 500) + "..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bodyMessage([]byte(tc.body)))
		})
	}
}

func TestResponseMessageWithoutCapture(t *testing.T) {
	assert.Empty(t, responseMessage(nil))
	assert.Empty(t, responseMessage(glResponse(http.StatusNotFound)))
}
