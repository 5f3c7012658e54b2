package openapi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

func findEndpoint(t *testing.T, eps []endpoints.Endpoint, method, path string) endpoints.Endpoint {
	t.Helper()
	for _, ep := range eps {
		if ep.Method == method && ep.Path == path {
			return ep
		}
	}
	require.Failf(t, "endpoint not found", "%s %s", method, path)
	return endpoints.Endpoint{}
}

func findParam(t *testing.T, ep endpoints.Endpoint, name string) endpoints.Param {
	t.Helper()
	p, ok := ep.Param(name)
	require.True(t, ok, "parameter %s not found on %s %s", name, ep.Method, ep.Path)
	return p
}

func TestLoad_Swagger2(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "gitlab_v2.yaml"))
	require.NoError(t, err)
	require.NotNil(t, doc)

	eps, err := Endpoints(doc, Options{})
	require.NoError(t, err)
	require.Len(t, eps, 5)

	t.Run("query parameters of a read verb", func(t *testing.T) {
		ep := findEndpoint(t, eps, "GET", "/projects/{id}/repository/branches")
		assert.Equal(t, "branches", ep.Toolset)
		assert.Equal(t, "Get a project repository branches", ep.Description)

		id := findParam(t, ep, "id")
		assert.Equal(t, endpoints.InPath, id.In)
		assert.True(t, id.Required)
		assert.Equal(t, endpoints.TypeString, id.Type)

		page := findParam(t, ep, "page")
		assert.Equal(t, endpoints.InDefault, page.In)
		assert.Equal(t, endpoints.TypeInteger, page.Type)

		sort := findParam(t, ep, "sort")
		assert.Equal(t, []string{"name_asc", "updated_asc", "updated_desc"}, sort.Enum)
	})

	t.Run("body schema is flattened", func(t *testing.T) {
		ep := findEndpoint(t, eps, "POST", "/projects/{id}/repository/branches")
		branch := findParam(t, ep, "branch")
		assert.True(t, branch.Required)
		assert.Equal(t, "The name of the branch", branch.Description)
		assert.Equal(t, endpoints.InBody, ep.LocationOf(branch))
		ref := findParam(t, ep, "ref")
		assert.True(t, ref.Required)
	})

	t.Run("description falls back", func(t *testing.T) {
		ep := findEndpoint(t, eps, "DELETE", "/projects/{id}/repository/branches/{branch}")
		assert.Equal(t, "Delete a branch", ep.Description)
		assert.Equal(t, []string{"id", "branch"}, ep.PathParams())

		version := findEndpoint(t, eps, "GET", "/version")
		assert.Equal(t, "GET /version", version.Description)
		assert.Equal(t, "instance_metadata", version.Toolset)
	})

	t.Run("array names and headers", func(t *testing.T) {
		ep := findEndpoint(t, eps, "GET", "/projects/{id}/merge_requests")
		iids := findParam(t, ep, "iids")
		assert.Equal(t, endpoints.TypeArray, iids.Type)
		assert.Equal(t, endpoints.TypeInteger, iids.Items)
		_, ok := ep.Param("X-Request-Id")
		assert.False(t, ok, "header parameters are not tool arguments")
	})

	_, err = endpoints.NewCatalog(eps, nil)
	require.NoError(t, err)
}

func TestLoad_OpenAPI3(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "petstore_v3.json"))
	require.NoError(t, err)

	eps, err := Endpoints(doc, Options{TagToolsets: map[string]string{"Topics": "topics"}})
	require.NoError(t, err)
	require.Len(t, eps, 3)

	assert.Equal(t, "/projects/{id}/uploads", eps[0].Path)
	assert.Equal(t, "GET", eps[1].Method)
	assert.Equal(t, "PUT", eps[2].Method)

	get := findEndpoint(t, eps, "GET", "/topics/{id}")
	assert.Equal(t, "topics", get.Toolset, "untagged operations use the first path segment")
	id := findParam(t, get, "id")
	assert.Equal(t, endpoints.TypeInteger, id.Type)
	assert.Equal(t, endpoints.InPath, id.In)

	put := findEndpoint(t, eps, "PUT", "/topics/{id}")
	assert.Equal(t, "topics", put.Toolset)
	dryRun := findParam(t, put, "dry_run")
	assert.Equal(t, endpoints.InQuery, dryRun.In, "query parameters of write verbs keep their location")
	assert.Equal(t, endpoints.TypeBoolean, dryRun.Type)
	assert.True(t, findParam(t, put, "title").Required)
	assert.Equal(t, endpoints.TypeNumber, findParam(t, put, "weight").Type)
	assert.Equal(t, endpoints.TypeObject, findParam(t, put, "meta").Type)
	labels := findParam(t, put, "labels")
	assert.Equal(t, endpoints.TypeArray, labels.Type)
	assert.Equal(t, endpoints.TypeString, labels.Items)

	upload := findEndpoint(t, eps, "POST", "/projects/{id}/uploads")
	assert.Equal(t, "Upload a file", upload.Description)
	assert.Equal(t, endpoints.TypeString, findParam(t, upload, "file").Type)
	placeholder := findParam(t, upload, "id")
	assert.True(t, placeholder.Required, "undeclared placeholders are added as required path parameters")
	assert.Equal(t, endpoints.InPath, placeholder.In)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		errorContains string
	}{
		{"not yaml", "key: [unclosed", "failed to decode OpenAPI document"},
		{"empty", "", "empty OpenAPI document"},
		{"no version", "info: {title: x}", "neither an 'openapi' nor a 'swagger'"},
		{"old swagger", "swagger: '1.2'", "unsupported swagger version"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}

	_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read OpenAPI document")

	_, err = Endpoints(nil, Options{})
	require.Error(t, err)
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "instance_metadata", snake("Instance Metadata"))
	assert.Equal(t, "merge_requests", snake("merge_requests"))
	assert.Equal(t, "ci_lint", snake("CI-Lint"))
	assert.Equal(t, "x", snake("  x  "))
}
