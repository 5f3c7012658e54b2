package gitlab

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMCPRequest builds a CallToolRequest carrying params.
func createMCPRequest(params map[string]any) *mcp.CallToolRequest {
	return &mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: params,
		},
	}
}

// callRequest builds a request for the named tool.
func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// getTextResult returns the single text content of a tool result.
func getTextResult(t *testing.T, result *mcp.CallToolResult) mcp.TextContent {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text
}

// decodeResult unmarshals the JSON text of a tool result.
func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(getTextResult(t, result).Text), &out))
	return out
}

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return logger
}

func boolPtr(b bool) *bool {
	return &b
}

func TestRequiredParam(t *testing.T) {
	tests := []struct {
		name        string
		params      map[string]any
		get         func(r *mcp.CallToolRequest) (any, error)
		expected    any
		errContains string
	}{
		{
			name:     "string present",
			params:   map[string]any{"p": "value1"},
			get:      func(r *mcp.CallToolRequest) (any, error) { return requiredParam[string](r, "p") },
			expected: "value1",
		},
		{
			name:     "number present",
			params:   map[string]any{"p": float64(123)},
			get:      func(r *mcp.CallToolRequest) (any, error) { return requiredParam[float64](r, "p") },
			expected: float64(123),
		},
		{
			name:     "bool true",
			params:   map[string]any{"p": true},
			get:      func(r *mcp.CallToolRequest) (any, error) { return requiredParam[bool](r, "p") },
			expected: true,
		},
		{
			name:        "missing",
			params:      map[string]any{},
			get:         func(r *mcp.CallToolRequest) (any, error) { return requiredParam[string](r, "p") },
			errContains: "missing required parameter: p",
		},
		{
			name:        "wrong type",
			params:      map[string]any{"p": 42.0},
			get:         func(r *mcp.CallToolRequest) (any, error) { return requiredParam[string](r, "p") },
			errContains: "parameter p is not of expected type string, got float64",
		},
		{
			name:        "empty string",
			params:      map[string]any{"p": ""},
			get:         func(r *mcp.CallToolRequest) (any, error) { return requiredParam[string](r, "p") },
			errContains: "parameter p cannot be empty or zero value",
		},
		{
			name:        "false is a zero value",
			params:      map[string]any{"p": false},
			get:         func(r *mcp.CallToolRequest) (any, error) { return requiredParam[bool](r, "p") },
			errContains: "cannot be empty or zero value",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.get(createMCPRequest(tc.params))
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOptionalParamOK(t *testing.T) {
	r := createMCPRequest(map[string]any{"s": "", "n": 1.5, "b": "nope"})

	s, ok, err := OptionalParamOK[string](r, "s")
	require.NoError(t, err)
	assert.True(t, ok, "empty string is still present")
	assert.Equal(t, "", s)

	_, ok, err = OptionalParamOK[string](r, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = OptionalParamOK[bool](r, "b")
	require.Error(t, err)
	assert.True(t, ok)
	assert.Contains(t, err.Error(), "parameter b is not of expected type bool, got string")

	n, err := OptionalParam[float64](r, "n")
	require.NoError(t, err)
	assert.Equal(t, 1.5, n)
}

func TestOptionalIntParam(t *testing.T) {
	tests := []struct {
		name        string
		value       any
		expected    int
		errContains string
	}{
		{name: "absent", value: nil, expected: 0},
		{name: "float64", value: float64(42), expected: 42},
		{name: "int", value: 7, expected: 7},
		{name: "int64", value: int64(9), expected: 9},
		{name: "numeric string", value: " 12 ", expected: 12},
		{name: "empty string", value: "", expected: 0},
		{name: "fraction", value: 1.5, errContains: "must be a whole number"},
		{name: "bad string", value: "abc", errContains: "must be a valid integer string"},
		{name: "bool", value: true, errContains: "must be convertible to an integer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := map[string]any{}
			if tc.value != nil {
				params["p"] = tc.value
			}
			got, err := OptionalIntParam(createMCPRequest(params), "p")
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOptionalIntParamWithDefault(t *testing.T) {
	got, err := OptionalIntParamWithDefault(createMCPRequest(map[string]any{}), "limit", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = OptionalIntParamWithDefault(createMCPRequest(map[string]any{"limit": 3.0}), "limit", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = OptionalIntParamWithDefault(createMCPRequest(map[string]any{"limit": "x"}), "limit", 5)
	require.Error(t, err)
}

func TestOptionalPaginationParams(t *testing.T) {
	tests := []struct {
		name            string
		params          map[string]any
		expectedPage    int
		expectedPerPage int
		errContains     string
	}{
		{name: "defaults", params: map[string]any{}, expectedPage: 1, expectedPerPage: DefaultPerPage},
		{name: "explicit", params: map[string]any{"page": 3.0, "per_page": 50.0}, expectedPage: 3, expectedPerPage: 50},
		{name: "per_page clamped", params: map[string]any{"per_page": 500.0}, expectedPage: 1, expectedPerPage: MaxPerPage},
		{name: "negative page", params: map[string]any{"page": -2.0}, expectedPage: 1, expectedPerPage: DefaultPerPage},
		{name: "invalid page", params: map[string]any{"page": "first"}, errContains: "invalid 'page' parameter"},
		{name: "invalid per_page", params: map[string]any{"per_page": 2.5}, errContains: "invalid 'per_page' parameter"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, perPage, err := OptionalPaginationParams(createMCPRequest(tc.params))
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPage, page)
			assert.Equal(t, tc.expectedPerPage, perPage)
		})
	}
}

func TestOptionalBoolParam(t *testing.T) {
	tests := []struct {
		name        string
		value       any
		expected    *bool
		errContains string
	}{
		{name: "absent", value: nil, expected: nil},
		{name: "true", value: true, expected: boolPtr(true)},
		{name: "false", value: false, expected: boolPtr(false)},
		{name: "yes string", value: "Yes", expected: boolPtr(true)},
		{name: "zero string", value: "0", expected: boolPtr(false)},
		{name: "bad string", value: "maybe", errContains: "must be a boolean"},
		{name: "number", value: 1.0, errContains: "must be a boolean, got float64"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := map[string]any{}
			if tc.value != nil {
				params["p"] = tc.value
			}
			got, err := OptionalBoolParam(createMCPRequest(params), "p")
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewServer(t *testing.T) {
	for _, tc := range []struct{ name, version string }{
		{"gitlab-rest-mcp", "1.0.0"},
		{"gitlab-rest-mcp", ""},
		{"", ""},
	} {
		assert.NotNil(t, NewServer(tc.name, tc.version))
	}
}

func TestWithToolLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	s := NewServer("test", "1.0.0", WithToolLogging(logger))

	var seenID string
	s.AddTool(mcp.NewTool("echo"), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		seenID = RequestIDFromContext(ctx)
		return mcp.NewToolResultError("boom"), nil
	})

	msg := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"echo","arguments":{}}}`
	resp := s.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, resp)

	require.NotEmpty(t, seenID)
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "echo", last.Data["tool"])
	assert.Equal(t, seenID, last.Data["request_id"])
	assert.Equal(t, true, last.Data["is_error"])
	assert.Contains(t, last.Data, "duration")

	assert.Empty(t, RequestIDFromContext(context.Background()))
}
