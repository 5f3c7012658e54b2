package gitlab

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// ResponseMode selects how response bodies are handed back to the caller.
type ResponseMode string

const (
	// ResponseRaw returns the body exactly as GitLab sent it.
	ResponseRaw ResponseMode = "raw"
	// ResponseOptimized trims list responses for language model consumption.
	ResponseOptimized ResponseMode = "optimized"
)

const (
	// DefaultMaxResponseBytes caps the body returned from a single call.
	DefaultMaxResponseBytes = 1 << 20
	// MaxFieldLength is the maximum length for text fields in list responses.
	MaxFieldLength = 300
	// TruncationSuffix is added to truncated strings.
	TruncationSuffix = "..."
)

// ParseResponseMode accepts "raw" (the default) or "optimized".
func ParseResponseMode(s string) (ResponseMode, error) {
	switch ResponseMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ResponseRaw:
		return ResponseRaw, nil
	case ResponseOptimized:
		return ResponseOptimized, nil
	}
	return "", fmt.Errorf("unknown response mode %q (expected raw or optimized)", s)
}

// ResponseOptions controls response rendering.
type ResponseOptions struct {
	Mode     ResponseMode
	MaxBytes int // 0 means DefaultMaxResponseBytes, negative means unlimited
}

func (o ResponseOptions) limit() int {
	switch {
	case o.MaxBytes == 0:
		return DefaultMaxResponseBytes
	case o.MaxBytes < 0:
		return 0
	}
	return o.MaxBytes
}

// cappedBuffer keeps the first max bytes written to it and counts the rest.
type cappedBuffer struct {
	buf   bytes.Buffer
	max   int
	total int
}

func newCappedBuffer(max int) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	c.total += len(p)
	if c.max <= 0 {
		return c.buf.Write(p)
	}
	if room := c.max - c.buf.Len(); room > 0 {
		if len(p) > room {
			c.buf.Write(p[:room])
		} else {
			c.buf.Write(p)
		}
	}
	return len(p), nil
}

func (c *cappedBuffer) Bytes() []byte   { return c.buf.Bytes() }
func (c *cappedBuffer) Truncated() bool { return c.total > c.buf.Len() }

// PaginationMetadata contains pagination information for list responses.
type PaginationMetadata struct {
	TotalItems   int64 `json:"total_items,omitempty"`
	TotalPages   int64 `json:"total_pages,omitempty"`
	CurrentPage  int64 `json:"current_page"`
	ItemsPerPage int64 `json:"items_per_page"`
	NextPage     int64 `json:"next_page,omitempty"`
}

// PaginatedResponse wraps list results with pagination metadata.
type PaginatedResponse struct {
	Items      any                 `json:"items"`
	Pagination *PaginationMetadata `json:"pagination,omitempty"`
}

// ExtractPagination reads GitLab's X-Page style headers from resp.
func ExtractPagination(resp *gl.Response) *PaginationMetadata {
	if resp == nil {
		return nil
	}
	meta := &PaginationMetadata{
		TotalItems:   int64(resp.TotalItems),
		TotalPages:   int64(resp.TotalPages),
		CurrentPage:  int64(resp.CurrentPage),
		ItemsPerPage: int64(resp.ItemsPerPage),
		NextPage:     int64(resp.NextPage),
	}
	if meta.TotalItems == 0 && meta.TotalPages == 0 && meta.CurrentPage == 0 && meta.ItemsPerPage == 0 {
		return nil
	}
	return meta
}

// TextTruncator shortens long text fields of list items.
type TextTruncator struct {
	maxLength int
	suffix    string
	fields    []string
}

// NewTextTruncator creates a truncator for the given JSON field names.
func NewTextTruncator(maxLength int, fields ...string) *TextTruncator {
	return &TextTruncator{maxLength: maxLength, suffix: TruncationSuffix, fields: fields}
}

// truncateString counts runes so multi-byte text is never split.
func (t *TextTruncator) truncateString(s string) string {
	if utf8.RuneCountInString(s) <= t.maxLength {
		return s
	}
	return string([]rune(s)[:t.maxLength]) + t.suffix
}

// Apply truncates the configured fields of item in place.
func (t *TextTruncator) Apply(item map[string]any) {
	for _, f := range t.fields {
		if s, ok := item[f].(string); ok {
			item[f] = t.truncateString(s)
		}
	}
}

// listTextFields are the long free-text fields of GitLab list items.
var listTextFields = []string{"description", "body", "message", "bio", "note"}

// FieldFilter removes link and avatar noise from GitLab objects.
type FieldFilter struct {
	topLevel []string
	nested   []string
}

// NewFieldFilter returns the filter used in optimized mode.
func NewFieldFilter() *FieldFilter {
	return &FieldFilter{
		topLevel: []string{"_links"},
		nested:   []string{"_links", "avatar_url", "web_url"},
	}
}

// Apply removes excluded fields from item and from the objects it embeds,
// such as author or assignees.
func (f *FieldFilter) Apply(item map[string]any) {
	for _, k := range f.topLevel {
		delete(item, k)
	}
	for _, v := range item {
		switch nested := v.(type) {
		case map[string]any:
			f.removeNested(nested)
		case []any:
			for _, elem := range nested {
				if m, ok := elem.(map[string]any); ok {
					f.removeNested(m)
				}
			}
		}
	}
}

func (f *FieldFilter) removeNested(m map[string]any) {
	for _, k := range f.nested {
		delete(m, k)
	}
}

// ResponseOptimizer combines text truncation and field filtering.
type ResponseOptimizer struct {
	truncator *TextTruncator
	filter    *FieldFilter
}

// NewResponseOptimizer creates the optimizer used for ResponseOptimized.
func NewResponseOptimizer() *ResponseOptimizer {
	return &ResponseOptimizer{
		truncator: NewTextTruncator(MaxFieldLength, listTextFields...),
		filter:    NewFieldFilter(),
	}
}

// Optimize rewrites a decoded JSON body. Lists are truncated and wrapped
// with pagination metadata, objects are only filtered.
func (o *ResponseOptimizer) Optimize(data any, resp *gl.Response) any {
	switch v := data.(type) {
	case []any:
		for _, elem := range v {
			if item, ok := elem.(map[string]any); ok {
				o.truncator.Apply(item)
				o.filter.Apply(item)
			}
		}
		return &PaginatedResponse{Items: v, Pagination: ExtractPagination(resp)}
	case map[string]any:
		o.filter.Apply(v)
		return v
	}
	return data
}

// binaryEnvelope carries non-text bodies such as archives or images.
type binaryEnvelope struct {
	ContentType string `json:"contentType"`
	Encoding    string `json:"encoding"`
	Size        int    `json:"size"`
	Truncated   bool   `json:"truncated,omitempty"`
	Data        string `json:"data"`
}

// renderResponse turns a successful GitLab response into a tool result.
func renderResponse(method string, body *cappedBuffer, resp *gl.Response, opts ResponseOptions) (*mcp.CallToolResult, error) {
	status := http.StatusOK
	contentType := ""
	var header http.Header
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
		header = resp.Header
		contentType = resp.Header.Get("Content-Type")
	}

	if body.total == 0 {
		result := map[string]any{
			"status":  status,
			"message": http.StatusText(status),
		}
		if method == http.MethodHead && header != nil {
			headers := make(map[string]string, len(header))
			for k := range header {
				headers[k] = header.Get(k)
			}
			result["headers"] = headers
		}
		return jsonResult(result)
	}

	data := body.Bytes()
	if body.Truncated() {
		if !utf8.Valid(data) && !isTextual(contentType) {
			return jsonResult(binaryEnvelope{
				ContentType: contentType,
				Encoding:    "base64",
				Size:        body.total,
				Truncated:   true,
				Data:        base64.StdEncoding.EncodeToString(data),
			})
		}
		text := strings.ToValidUTF8(string(data), "")
		return mcp.NewToolResultText(fmt.Sprintf("%s\n[response truncated: showing %d of %d bytes]", text, len(data), body.total)), nil
	}

	if isJSON(contentType, data) {
		if opts.Mode != ResponseOptimized {
			return mcp.NewToolResultText(string(data)), nil
		}
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return mcp.NewToolResultText(string(data)), nil
		}
		return jsonResult(NewResponseOptimizer().Optimize(decoded, resp))
	}

	if utf8.Valid(data) {
		return mcp.NewToolResultText(string(data)), nil
	}
	return jsonResult(binaryEnvelope{
		ContentType: contentType,
		Encoding:    "base64",
		Size:        len(data),
		Data:        base64.StdEncoding.EncodeToString(data),
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func isJSON(contentType string, data []byte) bool {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		if mt == "application/json" || strings.HasSuffix(mt, "+json") {
			return true
		}
		if mt != "" && mt != "application/octet-stream" && mt != "text/plain" {
			return false
		}
	}
	return json.Valid(data)
}

func isTextual(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "text/") || strings.HasSuffix(mt, "json") || strings.HasSuffix(mt, "xml")
}
