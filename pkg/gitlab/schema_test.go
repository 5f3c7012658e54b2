package gitlab

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

func TestParamOption(t *testing.T) {
	tool := mcp.NewTool("t",
		paramOption(endpoints.Param{Name: "id", Type: endpoints.TypeString, Required: true, Description: "Project"}),
		paramOption(endpoints.Param{Name: "state", Type: endpoints.TypeString, Enum: []string{"opened", "closed"}}),
		paramOption(endpoints.Param{Name: "iid", Type: endpoints.TypeInteger}),
		paramOption(endpoints.Param{Name: "weight", Type: endpoints.TypeNumber}),
		paramOption(endpoints.Param{Name: "draft", Type: endpoints.TypeBoolean}),
		paramOption(endpoints.Param{Name: "labels", Type: endpoints.TypeArray, Items: endpoints.TypeInteger}),
		paramOption(endpoints.Param{Name: "tags", Type: endpoints.TypeArray}),
		paramOption(endpoints.Param{Name: "variables", Type: endpoints.TypeObject}),
	)

	props := tool.InputSchema.Properties
	assert.Equal(t, []string{"id"}, tool.InputSchema.Required)

	prop := func(name string) map[string]any {
		p, ok := props[name].(map[string]any)
		require.True(t, ok, "property %s", name)
		return p
	}
	assert.Equal(t, "string", prop("id")["type"])
	assert.Equal(t, "Project", prop("id")["description"])
	assert.Equal(t, []string{"opened", "closed"}, prop("state")["enum"])
	assert.Equal(t, "integer", prop("iid")["type"])
	assert.Equal(t, "number", prop("weight")["type"])
	assert.Equal(t, "boolean", prop("draft")["type"])
	assert.Equal(t, "array", prop("labels")["type"])
	assert.Equal(t, map[string]any{"type": "integer"}, prop("labels")["items"])
	assert.Equal(t, map[string]any{"type": "string"}, prop("tags")["items"])
	assert.Equal(t, "object", prop("variables")["type"])
}

func TestAnnotationOptions(t *testing.T) {
	tests := []struct {
		method      string
		readOnly    bool
		destructive bool
		idempotent  bool
	}{
		{method: "GET", readOnly: true, idempotent: true},
		{method: "HEAD", readOnly: true, idempotent: true},
		{method: "POST"},
		{method: "PUT", idempotent: true},
		{method: "PATCH"},
		{method: "DELETE", destructive: true, idempotent: true},
	}

	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			ep := endpoints.Endpoint{Method: tc.method, Path: "/x", Toolset: "x"}
			tool := mcp.NewTool("t", annotationOptions(ep, "Title")...)

			a := tool.Annotations
			assert.Equal(t, "Title", a.Title)
			require.NotNil(t, a.ReadOnlyHint)
			assert.Equal(t, tc.readOnly, *a.ReadOnlyHint)
			require.NotNil(t, a.DestructiveHint)
			assert.Equal(t, tc.destructive, *a.DestructiveHint)
			require.NotNil(t, a.IdempotentHint)
			assert.Equal(t, tc.idempotent, *a.IdempotentHint)
			require.NotNil(t, a.OpenWorldHint)
			assert.True(t, *a.OpenWorldHint)
		})
	}
}

func TestArgumentValidator(t *testing.T) {
	tool := mcp.NewTool("t",
		paramOption(endpoints.Param{Name: "id", Type: endpoints.TypeString, Required: true}),
		paramOption(endpoints.Param{Name: "state", Type: endpoints.TypeString, Enum: []string{"opened", "closed"}}),
		paramOption(endpoints.Param{Name: "page", Type: endpoints.TypeInteger}),
	)
	v, err := newArgumentValidator(tool)
	require.NoError(t, err)

	tests := []struct {
		name        string
		args        map[string]any
		errContains []string
	}{
		{name: "valid", args: map[string]any{"id": "1", "state": "opened", "page": 2.0}},
		{name: "undeclared arguments pass", args: map[string]any{"id": "1", "search": "x"}},
		{name: "missing required", args: nil, errContains: []string{"id is required"}},
		{name: "bad enum", args: map[string]any{"id": "1", "state": "merged"}, errContains: []string{"state"}},
		{name: "fraction for integer", args: map[string]any{"id": "1", "page": 1.5}, errContains: []string{"page"}},
		{
			name:        "several problems joined",
			args:        map[string]any{"page": "two"},
			errContains: []string{"id is required", "; ", "page"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.args)
			if len(tc.errContains) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, s := range tc.errContains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestCoerceArguments(t *testing.T) {
	ep := endpoints.Endpoint{
		Method: "GET", Path: "/projects/{id}/issues", Toolset: "issues",
		Params: []endpoints.Param{
			{Name: "id", In: endpoints.InPath, Type: endpoints.TypeString, Required: true},
			{Name: "iids", Type: endpoints.TypeArray, Items: endpoints.TypeInteger},
			{Name: "page", Type: endpoints.TypeInteger},
			{Name: "weight", Type: endpoints.TypeNumber},
			{Name: "confidential", Type: endpoints.TypeBoolean},
			{Name: "labels", Type: endpoints.TypeArray, Items: endpoints.TypeString},
		},
	}

	got := coerceArguments(ep, map[string]any{
		"id":           float64(42),
		"iids":         []any{"1", 2.0},
		"page":         "3",
		"weight":       "1.5",
		"confidential": "true",
		"labels":       "bug",
		"other":        "kept",
		"unparsable":   nil,
	})

	assert.Equal(t, map[string]any{
		"id":           "42",
		"iids":         []any{int64(1), 2.0},
		"page":         int64(3),
		"weight":       1.5,
		"confidential": true,
		"labels":       []any{"bug"},
		"other":        "kept",
		"unparsable":   nil,
	}, got)

	bad := coerceArguments(ep, map[string]any{"page": "three"})
	assert.Equal(t, "three", bad["page"], "left for the validator")
}
