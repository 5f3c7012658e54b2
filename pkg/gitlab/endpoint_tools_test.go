package gitlab

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gl "gitlab.com/gitlab-org/api/client-go"
	"go.uber.org/mock/gomock"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

// recordedRequest is what the fake GitLab saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]any
}

// fakeGitLab answers every API call with status and body and records the
// last request that was not a HEAD request.
type fakeGitLab struct {
	mu     sync.Mutex
	last   *recordedRequest
	status int
	body   string
}

func newFakeGitLab(t *testing.T, status int, body string) (*fakeGitLab, *gl.Client) {
	t.Helper()
	f := &fakeGitLab{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &recordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
		}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		f.mu.Lock()
		if r.Method != http.MethodHead || f.last == nil {
			f.last = rec
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
	}))
	t.Cleanup(srv.Close)

	client, err := NewGitLabClient(ClientOptions{Host: srv.URL, Token: "glpat-test", RetryMax: 0})
	require.NoError(t, err)
	return f, client
}

func (f *fakeGitLab) lastRequest(t *testing.T) *recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotNil(t, f.last, "no request reached the server")
	return f.last
}

func staticClient(c APIClient) GetAPIClientFn {
	return func(context.Context) (APIClient, error) { return c, nil }
}

func TestEndpointToolDefinition(t *testing.T) {
	tool, _ := EndpointTool(listIssuesEndpoint, staticClient(nil), EndpointToolOptions{})

	assert.Equal(t, "getProjectsIdIssues", tool.Name)
	assert.Contains(t, tool.Description, "GET /api/v4/projects/{id}/issues")
	assert.Equal(t, []string{"id"}, tool.InputSchema.Required)
	assert.Contains(t, tool.InputSchema.Properties, "state")
	require.NotNil(t, tool.Annotations.ReadOnlyHint)
	assert.True(t, *tool.Annotations.ReadOnlyHint)

	ep := listIssuesEndpoint
	ep.Description = "List project issues"
	tool, _ = EndpointTool(ep, staticClient(nil), EndpointToolOptions{
		Prefix:         "gitlab_",
		Translations:   map[string]string{"TOOL_GET_PROJECTS_ID_ISSUES_DESCRIPTION": "Issues of a project"},
		DefaultProject: func() (string, bool) { return "", false },
	})
	assert.Equal(t, "gitlab_getProjectsIdIssues", tool.Name)
	assert.Contains(t, tool.Description, "Issues of a project")
	assert.Equal(t, "List project issues", tool.Annotations.Title)
	assert.Empty(t, tool.InputSchema.Required, "id falls back to the current project")
}

func TestEndpointToolHandler(t *testing.T) {
	t.Run("GET sends query parameters", func(t *testing.T) {
		fake, client := newFakeGitLab(t, http.StatusOK, `[{"iid":1,"title":"Crash"}]`)
		_, handler := EndpointTool(listIssuesEndpoint, staticClient(client), EndpointToolOptions{})

		result, err := handler(context.Background(), callRequest("getProjectsIdIssues", map[string]any{
			"id":     "group/project",
			"state":  "opened",
			"labels": []any{"bug"},
		}))
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.JSONEq(t, `[{"iid":1,"title":"Crash"}]`, getTextResult(t, result).Text)

		req := fake.lastRequest(t)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/api/v4/projects/group%2Fproject/issues", req.Path)
		assert.Equal(t, "labels%5B%5D=bug&state=opened", req.Query)
		assert.Equal(t, "glpat-test", req.Header.Get("PRIVATE-TOKEN"))
		assert.Nil(t, req.Body)
	})

	t.Run("POST sends a JSON body", func(t *testing.T) {
		fake, client := newFakeGitLab(t, http.StatusCreated, `{"id":10,"body":"LGTM"}`)
		_, handler := EndpointTool(createNoteEndpoint, staticClient(client), EndpointToolOptions{})

		result, err := handler(context.Background(), callRequest("postProjectsIdIssuesIssueIidNotes", map[string]any{
			"id":        "7",
			"issue_iid": "3",
			"body":      "LGTM",
		}))
		require.NoError(t, err)
		assert.False(t, result.IsError)

		req := fake.lastRequest(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/v4/projects/7/issues/3/notes", req.Path)
		assert.Equal(t, map[string]any{"body": "LGTM"}, req.Body)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	})

	t.Run("DELETE without content", func(t *testing.T) {
		_, client := newFakeGitLab(t, http.StatusNoContent, "")
		_, handler := EndpointTool(deleteBranchEndpoint, staticClient(client), EndpointToolOptions{})

		result, err := handler(context.Background(), callRequest("deleteProjectsIdRepositoryBranchesBranch", map[string]any{
			"id":     "1",
			"branch": "feature/old",
		}))
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, 204.0, out["status"])
	})

	t.Run("not found becomes a tool error", func(t *testing.T) {
		_, client := newFakeGitLab(t, http.StatusNotFound, `{"message":"404 Project Not Found"}`)
		_, handler := EndpointTool(listIssuesEndpoint, staticClient(client), EndpointToolOptions{})

		result, err := handler(context.Background(), callRequest("getProjectsIdIssues", map[string]any{"id": "404"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		text := getTextResult(t, result).Text
		assert.Contains(t, text, "GET /projects/404/issues not found or access denied (404)")
		assert.Contains(t, text, "404 Project Not Found")
	})

	t.Run("missing branch keeps the GitLab message", func(t *testing.T) {
		_, client := newFakeGitLab(t, http.StatusNotFound, `{"message":"404 Branch Not Found"}`)
		_, handler := EndpointTool(deleteBranchEndpoint, staticClient(client), EndpointToolOptions{})

		result, err := handler(context.Background(), callRequest("deleteProjectsIdRepositoryBranchesBranch", map[string]any{
			"id":     "1",
			"branch": "gone",
		}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t, "DELETE /projects/1/repository/branches/gone not found or access denied (404): 404 Branch Not Found",
			getTextResult(t, result).Text)
	})

	t.Run("unauthorized is recorded as a notification", func(t *testing.T) {
		ClearNotifications()
		t.Cleanup(ClearNotifications)

		_, client := newFakeGitLab(t, http.StatusUnauthorized, `{"message":"401 Unauthorized"}`)
		_, handler := EndpointTool(listIssuesEndpoint, staticClient(client), EndpointToolOptions{Logger: quietLogger()})

		result, err := handler(context.Background(), callRequest("getProjectsIdIssues", map[string]any{"id": "1"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Equal(t, authFailedMessage, getTextResult(t, result).Text)

		notifications := GetNotifications()
		require.Len(t, notifications, 1)
		assert.Equal(t, "Authentication Failed", notifications[0].Title)
		assert.Equal(t, NotificationError, notifications[0].Level)
	})

	t.Run("server errors are returned as errors", func(t *testing.T) {
		_, client := newFakeGitLab(t, http.StatusInternalServerError, `{"message":"boom"}`)
		_, handler := EndpointTool(listIssuesEndpoint, staticClient(client), EndpointToolOptions{})

		result, err := handler(context.Background(), callRequest("getProjectsIdIssues", map[string]any{"id": "1"}))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "status: 500")
	})

	t.Run("current project fills a missing id", func(t *testing.T) {
		fake, client := newFakeGitLab(t, http.StatusOK, `[]`)
		_, handler := EndpointTool(listIssuesEndpoint, staticClient(client), EndpointToolOptions{
			DefaultProject: func() (string, bool) { return "group/current", true },
		})

		result, err := handler(context.Background(), callRequest("getProjectsIdIssues", map[string]any{}))
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "/api/v4/projects/group%2Fcurrent/issues", fake.lastRequest(t).Path)
	})
}

func TestEndpointToolValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockAPIClient(ctrl)
	// No request may reach the client.
	client.EXPECT().NewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, handler := EndpointTool(listIssuesEndpoint, staticClient(client), EndpointToolOptions{
		DefaultProject: func() (string, bool) { return "", false },
	})

	tests := []struct {
		name        string
		args        map[string]any
		errContains string
	}{
		{name: "missing id without current project", args: map[string]any{}, errContains: "id is required"},
		{name: "bad enum", args: map[string]any{"id": "1", "state": "merged"}, errContains: "state"},
		{name: "fractional page", args: map[string]any{"id": "1", "page": 1.5}, errContains: "page"},
		{name: "blank id", args: map[string]any{"id": ""}, errContains: "path parameter id cannot be empty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := handler(context.Background(), callRequest("getProjectsIdIssues", tc.args))
			require.NoError(t, err)
			require.True(t, result.IsError)
			text := getTextResult(t, result).Text
			assert.Contains(t, text, "Validation Error:")
			assert.Contains(t, text, tc.errContains)
		})
	}
}

func TestEndpointToolClientErrors(t *testing.T) {
	t.Run("client lookup fails", func(t *testing.T) {
		failing := func(context.Context) (APIClient, error) { return nil, assert.AnError }
		_, handler := EndpointTool(listIssuesEndpoint, failing, EndpointToolOptions{})

		result, err := handler(context.Background(), callRequest("getProjectsIdIssues", map[string]any{"id": "1"}))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to get GitLab client")
	})

	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := NewMockAPIClient(ctrl)
		client.EXPECT().
			NewRequest(http.MethodGet, "projects/1/issues", nil, gomock.Any()).
			DoAndReturn(func(method, path string, _ any, _ []gl.RequestOptionFunc) (*retryablehttp.Request, error) {
				return retryablehttp.NewRequest(method, "https://gitlab.example.com/api/v4/"+path, nil)
			})
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, handler := EndpointTool(listIssuesEndpoint, staticClient(client), EndpointToolOptions{})
		result, err := handler(context.Background(), callRequest("getProjectsIdIssues", map[string]any{"id": "1"}))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestEndpointToolOverCatalog(t *testing.T) {
	catalog, err := endpoints.Default()
	require.NoError(t, err)

	seen := make(map[string]bool, catalog.Len())
	for _, ep := range catalog.Endpoints() {
		tool, handler := EndpointTool(ep, staticClient(nil), EndpointToolOptions{DefaultProject: DefaultProjectID})
		require.NotNil(t, handler)
		assert.False(t, seen[tool.Name], "duplicate tool name %s", tool.Name)
		seen[tool.Name] = true
		assert.LessOrEqual(t, len(tool.Name), 64)

		_, err := newArgumentValidator(tool)
		assert.NoError(t, err, "schema of %s", tool.Name)
	}
	assert.NotEmpty(t, seen)
}
