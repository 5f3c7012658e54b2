package gitlab

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gl "gitlab.com/gitlab-org/api/client-go"
)

func TestParseResponseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ResponseMode
		wantErr  bool
	}{
		{input: "", expected: ResponseRaw},
		{input: "raw", expected: ResponseRaw},
		{input: " Optimized ", expected: ResponseOptimized},
		{input: "compact", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseResponseMode(tc.input)
		if tc.wantErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}
}

func TestResponseOptionsLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxResponseBytes, ResponseOptions{}.limit())
	assert.Equal(t, 0, ResponseOptions{MaxBytes: -1}.limit())
	assert.Equal(t, 10, ResponseOptions{MaxBytes: 10}.limit())
}

func TestCappedBuffer(t *testing.T) {
	b := newCappedBuffer(5)
	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = b.Write([]byte("defgh"))
	require.NoError(t, err)
	assert.Equal(t, 5, n, "reports the full write")

	assert.Equal(t, "abcde", string(b.Bytes()))
	assert.True(t, b.Truncated())

	unlimited := newCappedBuffer(0)
	_, _ = unlimited.Write([]byte(strings.Repeat("x", 100)))
	assert.Len(t, unlimited.Bytes(), 100)
	assert.False(t, unlimited.Truncated())
}

func TestTextTruncator(t *testing.T) {
	tr := NewTextTruncator(5, "description")

	item := map[string]any{
		"description": "héllo wörld",
		"title":       "a long title that is not truncated",
		"iid":         1.0,
	}
	tr.Apply(item)

	assert.Equal(t, "héllo...", item["description"])
	assert.Equal(t, "a long title that is not truncated", item["title"])

	short := map[string]any{"description": "short"}
	tr.Apply(short)
	assert.Equal(t, "short", short["description"])
}

func TestFieldFilter(t *testing.T) {
	item := map[string]any{
		"id":      1.0,
		"web_url": "https://gitlab.example.com/group/project/-/issues/1",
		"_links":  map[string]any{"self": "x"},
		"author": map[string]any{
			"username":   "jane",
			"avatar_url": "https://gitlab.example.com/avatar.png",
			"web_url":    "https://gitlab.example.com/jane",
		},
		"assignees": []any{
			map[string]any{"username": "joe", "avatar_url": "x"},
		},
	}
	NewFieldFilter().Apply(item)

	assert.NotContains(t, item, "_links")
	assert.Contains(t, item, "web_url", "top-level web_url is kept")
	assert.Equal(t, map[string]any{"username": "jane"}, item["author"])
	assert.Equal(t, []any{map[string]any{"username": "joe"}}, item["assignees"])
}

func TestExtractPagination(t *testing.T) {
	assert.Nil(t, ExtractPagination(nil))
	assert.Nil(t, ExtractPagination(&gl.Response{}))

	meta := ExtractPagination(&gl.Response{TotalItems: 42, TotalPages: 3, CurrentPage: 1, ItemsPerPage: 20, NextPage: 2})
	require.NotNil(t, meta)
	assert.Equal(t, &PaginationMetadata{TotalItems: 42, TotalPages: 3, CurrentPage: 1, ItemsPerPage: 20, NextPage: 2}, meta)
}

func TestResponseOptimizer(t *testing.T) {
	o := NewResponseOptimizer()

	list := []any{
		map[string]any{"title": "one", "description": strings.Repeat("d", MaxFieldLength+10), "_links": map[string]any{}},
	}
	out := o.Optimize(list, &gl.Response{CurrentPage: 1, ItemsPerPage: 20})
	paged, ok := out.(*PaginatedResponse)
	require.True(t, ok)
	require.NotNil(t, paged.Pagination)
	assert.Equal(t, int64(1), paged.Pagination.CurrentPage)

	item := paged.Items.([]any)[0].(map[string]any)
	assert.Len(t, item["description"], MaxFieldLength+len(TruncationSuffix))
	assert.NotContains(t, item, "_links")

	obj := map[string]any{"description": strings.Repeat("d", MaxFieldLength+10), "_links": map[string]any{}}
	out = o.Optimize(obj, nil)
	assert.Len(t, out.(map[string]any)["description"], MaxFieldLength+10, "single objects are not truncated")
	assert.NotContains(t, out.(map[string]any), "_links")

	assert.Equal(t, "scalar", o.Optimize("scalar", nil))
}

func okResponse(contentType string) *gl.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &gl.Response{Response: &http.Response{StatusCode: http.StatusOK, Header: h}}
}

func TestRenderResponse(t *testing.T) {
	write := func(max int, s string) *cappedBuffer {
		b := newCappedBuffer(max)
		_, _ = b.Write([]byte(s))
		return b
	}

	t.Run("raw JSON is returned verbatim", func(t *testing.T) {
		body := `[{"id":1,"_links":{}}]`
		result, err := renderResponse(http.MethodGet, write(0, body), okResponse("application/json"), ResponseOptions{})
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, body, getTextResult(t, result).Text)
	})

	t.Run("optimized JSON list is wrapped", func(t *testing.T) {
		body := `[{"id":1,"_links":{}}]`
		result, err := renderResponse(http.MethodGet, write(0, body), okResponse("application/json"), ResponseOptions{Mode: ResponseOptimized})
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, []any{map[string]any{"id": 1.0}}, out["items"])
	})

	t.Run("empty body reports status", func(t *testing.T) {
		resp := &gl.Response{Response: &http.Response{StatusCode: http.StatusNoContent, Header: http.Header{}}}
		result, err := renderResponse(http.MethodDelete, write(0, ""), resp, ResponseOptions{})
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, 204.0, out["status"])
		assert.Equal(t, "No Content", out["message"])
		assert.NotContains(t, out, "headers")
	})

	t.Run("HEAD returns headers", func(t *testing.T) {
		resp := okResponse("application/json")
		resp.Header.Set("X-Total", "12")
		result, err := renderResponse(http.MethodHead, write(0, ""), resp, ResponseOptions{})
		require.NoError(t, err)
		out := decodeResult(t, result)
		headers, ok := out["headers"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "12", headers["X-Total"])
	})

	t.Run("truncated text notes the size", func(t *testing.T) {
		result, err := renderResponse(http.MethodGet, write(4, "abcdefgh"), okResponse("text/plain"), ResponseOptions{MaxBytes: 4})
		require.NoError(t, err)
		assert.Equal(t, "abcd\n[response truncated: showing 4 of 8 bytes]", getTextResult(t, result).Text)
	})

	t.Run("plain text", func(t *testing.T) {
		result, err := renderResponse(http.MethodGet, write(0, "line one\nline two"), okResponse("text/plain; charset=utf-8"), ResponseOptions{})
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", getTextResult(t, result).Text)
	})

	t.Run("binary is base64 encoded", func(t *testing.T) {
		result, err := renderResponse(http.MethodGet, write(0, "\xff\xfe\x00"), okResponse("application/octet-stream"), ResponseOptions{})
		require.NoError(t, err)
		var env binaryEnvelope
		require.NoError(t, json.Unmarshal([]byte(getTextResult(t, result).Text), &env))
		assert.Equal(t, "base64", env.Encoding)
		assert.Equal(t, 3, env.Size)
		assert.Equal(t, "//4A", env.Data)
		assert.False(t, env.Truncated)
	})
}

func TestIsJSON(t *testing.T) {
	assert.True(t, isJSON("application/json; charset=utf-8", []byte("{}")))
	assert.True(t, isJSON("application/vnd.gitlab+json", []byte("[]")))
	assert.True(t, isJSON("", []byte(`{"a":1}`)))
	assert.False(t, isJSON("text/html", []byte("{}")))
	assert.False(t, isJSON("text/plain", []byte("hello")))
}
