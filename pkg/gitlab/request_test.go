package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gl "gitlab.com/gitlab-org/api/client-go"
	"go.uber.org/mock/gomock"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

var (
	listIssuesEndpoint = endpoints.Endpoint{
		Method:  "GET",
		Path:    "/projects/{id}/issues",
		Toolset: "issues",
		Params: []endpoints.Param{
			{Name: "id", In: endpoints.InPath, Type: endpoints.TypeString, Required: true},
			{Name: "state", Type: endpoints.TypeString, Enum: []string{"opened", "closed"}},
			{Name: "labels", Type: endpoints.TypeArray, Items: endpoints.TypeString},
			{Name: "page", Type: endpoints.TypeInteger},
		},
	}
	createNoteEndpoint = endpoints.Endpoint{
		Method:  "POST",
		Path:    "/projects/{id}/issues/{issue_iid}/notes",
		Toolset: "notes",
		Params: []endpoints.Param{
			{Name: "id", In: endpoints.InPath, Type: endpoints.TypeString, Required: true},
			{Name: "issue_iid", In: endpoints.InPath, Type: endpoints.TypeInteger, Required: true},
			{Name: "body", Type: endpoints.TypeString, Required: true},
			{Name: "confidential", In: endpoints.InQuery, Type: endpoints.TypeBoolean},
		},
	}
	deleteBranchEndpoint = endpoints.Endpoint{
		Method:  "DELETE",
		Path:    "/projects/{id}/repository/branches/{branch}",
		Toolset: "branches",
		Params: []endpoints.Param{
			{Name: "id", In: endpoints.InPath, Type: endpoints.TypeString, Required: true},
			{Name: "branch", In: endpoints.InPath, Type: endpoints.TypeString, Required: true},
		},
	}
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name          string
		endpoint      endpoints.Endpoint
		args          map[string]any
		expectedPath  string
		expectedQuery string
		expectedBody  map[string]any
		errContains   string
	}{
		{
			name:          "GET sends the rest as query",
			endpoint:      listIssuesEndpoint,
			args:          map[string]any{"id": "group/project", "state": "opened", "page": float64(2)},
			expectedPath:  "/projects/group%2Fproject/issues",
			expectedQuery: "page=2&state=opened",
		},
		{
			name:          "arrays use bracket notation",
			endpoint:      listIssuesEndpoint,
			args:          map[string]any{"id": float64(42), "labels": []any{"bug", "ui"}},
			expectedPath:  "/projects/42/issues",
			expectedQuery: "labels%5B%5D=bug&labels%5B%5D=ui",
		},
		{
			name:          "undeclared GET argument goes to query",
			endpoint:      listIssuesEndpoint,
			args:          map[string]any{"id": "1", "search": "crash"},
			expectedPath:  "/projects/1/issues",
			expectedQuery: "search=crash",
		},
		{
			name:          "null arguments are dropped",
			endpoint:      listIssuesEndpoint,
			args:          map[string]any{"id": "1", "state": nil},
			expectedPath:  "/projects/1/issues",
			expectedQuery: "",
		},
		{
			name:          "POST sends the rest as body",
			endpoint:      createNoteEndpoint,
			args:          map[string]any{"id": "7", "issue_iid": float64(3), "body": "LGTM", "assignees": []any{1.0}},
			expectedPath:  "/projects/7/issues/3/notes",
			expectedQuery: "",
			expectedBody:  map[string]any{"body": "LGTM", "assignees": []any{1.0}},
		},
		{
			name:          "declared query location wins over verb",
			endpoint:      createNoteEndpoint,
			args:          map[string]any{"id": "7", "issue_iid": int64(3), "body": "x", "confidential": true},
			expectedPath:  "/projects/7/issues/3/notes",
			expectedQuery: "confidential=true",
			expectedBody:  map[string]any{"body": "x"},
		},
		{
			name:          "DELETE with slashes in branch",
			endpoint:      deleteBranchEndpoint,
			args:          map[string]any{"id": "1", "branch": "feature/login"},
			expectedPath:  "/projects/1/repository/branches/feature%2Flogin",
			expectedQuery: "",
		},
		{
			name:        "missing path parameter",
			endpoint:    deleteBranchEndpoint,
			args:        map[string]any{"id": "1"},
			errContains: "missing required path parameter: branch",
		},
		{
			name:        "empty path parameter",
			endpoint:    deleteBranchEndpoint,
			args:        map[string]any{"id": "1", "branch": ""},
			errContains: "path parameter branch cannot be empty",
		},
		{
			name:        "object path parameter",
			endpoint:    deleteBranchEndpoint,
			args:        map[string]any{"id": map[string]any{"a": 1}, "branch": "main"},
			errContains: "path parameter id: expected a string, number or boolean",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := BuildRequest(tc.endpoint, tc.args)
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPath, req.Path)
			assert.Equal(t, tc.expectedQuery, req.Query.Encode())
			assert.Equal(t, tc.expectedBody, req.Body)
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	q := url.Values{}
	require.NoError(t, encodeQuery(q, "filter", map[string]any{"b": 2.0, "a": "x"}))
	require.NoError(t, encodeQuery(q, "ids", []string{"1", "2"}))
	require.NoError(t, encodeQuery(q, "big", 1e6))
	require.NoError(t, encodeQuery(q, "ratio", 0.25))

	assert.Equal(t, []string{"x"}, q["filter[a]"])
	assert.Equal(t, []string{"2"}, q["filter[b]"])
	assert.Equal(t, []string{"1", "2"}, q["ids[]"])
	assert.Equal(t, []string{"1000000"}, q["big"])
	assert.Equal(t, []string{"0.25"}, q["ratio"])

	err := encodeQuery(url.Values{}, "bad", []any{[]int{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query parameter bad[]")
}

func TestRequestString(t *testing.T) {
	req, err := BuildRequest(listIssuesEndpoint, map[string]any{"id": "1", "state": "closed"})
	require.NoError(t, err)
	assert.Equal(t, "GET /projects/1/issues?state=closed", req.String())
}

func TestRequestDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockAPIClient(ctrl)

	t.Run("query request has no body", func(t *testing.T) {
		req, err := BuildRequest(listIssuesEndpoint, map[string]any{"id": "1", "state": "opened"})
		require.NoError(t, err)

		client.EXPECT().
			NewRequest(http.MethodGet, "projects/1/issues", nil, gomock.Any()).
			DoAndReturn(func(method, path string, opt any, options []gl.RequestOptionFunc) (*retryablehttp.Request, error) {
				r, err := retryablehttp.NewRequest(method, "https://gitlab.example.com/api/v4/"+path, nil)
				require.NoError(t, err)
				for _, fn := range options {
					require.NoError(t, fn(r))
				}
				assert.Equal(t, "state=opened", r.URL.RawQuery)
				return r, nil
			})
		client.EXPECT().
			Do(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *retryablehttp.Request, v any) (*gl.Response, error) {
				_, err := io.WriteString(v.(io.Writer), `[{"iid":1}]`)
				return &gl.Response{Response: &http.Response{StatusCode: http.StatusOK}}, err
			})

		var buf bytes.Buffer
		resp, err := req.Do(context.Background(), client, &buf)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[{"iid":1}]`, buf.String())
	})

	t.Run("body request passes the map", func(t *testing.T) {
		req, err := BuildRequest(createNoteEndpoint, map[string]any{"id": "1", "issue_iid": 2.0, "body": "hi"})
		require.NoError(t, err)

		client.EXPECT().
			NewRequest(http.MethodPost, "projects/1/issues/2/notes", map[string]any{"body": "hi"}, gomock.Any()).
			Return(nil, assert.AnError)

		_, err = req.Do(context.Background(), client, io.Discard)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create request POST /projects/1/issues/2/notes")
	})
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{"text", "text"},
		{true, "true"},
		{float64(12), "12"},
		{1.5, "1.5"},
		{int64(9007199254740993), "9007199254740993"},
		{json.Number("17"), "17"},
	}
	for _, tc := range tests {
		got, err := formatScalar(tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}

	_, err := formatScalar([]any{})
	require.Error(t, err)
}
