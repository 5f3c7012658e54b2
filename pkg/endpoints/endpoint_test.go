package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectParam() Param {
	return Param{Name: "id", In: InPath, Type: TypeString, Required: true, Description: "The ID or URL-encoded path of the project"}
}

func TestEndpoint_ReadOnlyAndLocations(t *testing.T) {
	tests := []struct {
		method   string
		readOnly bool
		location Location
	}{
		{"GET", true, InQuery},
		{"HEAD", true, InQuery},
		{"DELETE", false, InQuery},
		{"POST", false, InBody},
		{"PUT", false, InBody},
		{"PATCH", false, InBody},
	}
	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			ep := Endpoint{Method: tc.method, Path: "/projects"}
			assert.Equal(t, tc.readOnly, ep.ReadOnly())
			assert.Equal(t, tc.location, ep.DefaultLocation())
			assert.Equal(t, tc.location, ep.LocationOf(Param{Name: "x"}))
			assert.Equal(t, InQuery, ep.LocationOf(Param{Name: "x", In: InQuery}))
			assert.Equal(t, InBody, ep.LocationOf(Param{Name: "x", In: InBody}))
		})
	}
}

func TestEndpoint_PathParams(t *testing.T) {
	ep := Endpoint{Method: "GET", Path: "/projects/{id}/merge_requests/{merge_request_iid}/notes/{note_id}"}
	assert.Equal(t, []string{"id", "merge_request_iid", "note_id"}, ep.PathParams())

	ep = Endpoint{Method: "GET", Path: "/version"}
	assert.Empty(t, ep.PathParams())
}

func TestEndpoint_Param(t *testing.T) {
	ep := Endpoint{Method: "GET", Path: "/projects/{id}", Params: []Param{projectParam()}}

	p, ok := ep.Param("id")
	require.True(t, ok)
	assert.Equal(t, InPath, p.In)

	_, ok = ep.Param("missing")
	assert.False(t, ok)
}

func TestEndpoint_Validate(t *testing.T) {
	tests := []struct {
		name          string
		endpoint      Endpoint
		errorContains string
	}{
		{
			name: "valid",
			endpoint: Endpoint{
				Method:  "GET",
				Path:    "/projects/{id}/labels",
				Toolset: "labels",
				Params: []Param{
					projectParam(),
					{Name: "search", Type: TypeString},
					{Name: "ids", Type: TypeArray, Items: TypeInteger},
				},
			},
		},
		{
			name:          "unknown method",
			endpoint:      Endpoint{Method: "TRACE", Path: "/version", Toolset: "instance"},
			errorContains: "unsupported method",
		},
		{
			name:          "relative path",
			endpoint:      Endpoint{Method: "GET", Path: "version", Toolset: "instance"},
			errorContains: "path must start with '/'",
		},
		{
			name:          "missing toolset",
			endpoint:      Endpoint{Method: "GET", Path: "/version"},
			errorContains: "toolset is required",
		},
		{
			name: "unnamed parameter",
			endpoint: Endpoint{
				Method: "GET", Path: "/version", Toolset: "instance",
				Params: []Param{{Type: TypeString}},
			},
			errorContains: "parameter without name",
		},
		{
			name: "duplicate parameter",
			endpoint: Endpoint{
				Method: "GET", Path: "/projects", Toolset: "projects",
				Params: []Param{{Name: "search", Type: TypeString}, {Name: "search", Type: TypeString}},
			},
			errorContains: `duplicate parameter "search"`,
		},
		{
			name: "array without items",
			endpoint: Endpoint{
				Method: "GET", Path: "/projects", Toolset: "projects",
				Params: []Param{{Name: "topics", Type: TypeArray}},
			},
			errorContains: `array parameter "topics" has no item type`,
		},
		{
			name:          "undeclared placeholder",
			endpoint:      Endpoint{Method: "GET", Path: "/projects/{id}", Toolset: "projects"},
			errorContains: "placeholder {id} is not declared",
		},
		{
			name: "placeholder declared as query",
			endpoint: Endpoint{
				Method: "GET", Path: "/projects/{id}", Toolset: "projects",
				Params: []Param{{Name: "id", In: InQuery, Type: TypeString, Required: true}},
			},
			errorContains: "must be a required path parameter",
		},
		{
			name: "optional placeholder",
			endpoint: Endpoint{
				Method: "GET", Path: "/projects/{id}", Toolset: "projects",
				Params: []Param{{Name: "id", In: InPath, Type: TypeString}},
			},
			errorContains: "must be a required path parameter",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.endpoint.Validate()
			if tc.errorContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestIsReadVerb(t *testing.T) {
	assert.True(t, IsReadVerb("get"))
	assert.True(t, IsReadVerb("DELETE"))
	assert.False(t, IsReadVerb("POST"))
	assert.False(t, IsReadVerb("patch"))
}
