package gitlab

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xeipuuv/gojsonschema"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

// paramOption maps a parameter onto the matching mcp property builder.
func paramOption(p endpoints.Param) mcp.ToolOption {
	opts := []mcp.PropertyOption{mcp.Description(p.Description)}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case endpoints.TypeInteger:
		return mcp.WithNumber(p.Name, append(opts, integerType())...)
	case endpoints.TypeNumber:
		return mcp.WithNumber(p.Name, opts...)
	case endpoints.TypeBoolean:
		return mcp.WithBoolean(p.Name, opts...)
	case endpoints.TypeArray:
		items := p.Items
		if items == "" {
			items = endpoints.TypeString
		}
		return mcp.WithArray(p.Name, append(opts, mcp.Items(map[string]any{"type": string(items)}))...)
	case endpoints.TypeObject:
		return mcp.WithObject(p.Name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		return mcp.WithString(p.Name, opts...)
	}
}

// integerType narrows a number property to whole numbers.
func integerType() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["type"] = "integer"
	}
}

// annotationOptions derives the behaviour hints from the HTTP verb.
func annotationOptions(ep endpoints.Endpoint, title string) []mcp.ToolOption {
	method := strings.ToUpper(ep.Method)
	idempotent := method == http.MethodGet || method == http.MethodHead ||
		method == http.MethodPut || method == http.MethodDelete
	return []mcp.ToolOption{
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(ep.ReadOnly()),
		mcp.WithDestructiveHintAnnotation(method == http.MethodDelete),
		mcp.WithIdempotentHintAnnotation(idempotent),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

// argumentValidator checks call arguments against a tool's input schema.
type argumentValidator struct {
	schema *gojsonschema.Schema
}

func newArgumentValidator(tool mcp.Tool) (*argumentValidator, error) {
	raw, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input schema of %s: %w", tool.Name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid input schema of %s: %w", tool.Name, err)
	}
	return &argumentValidator{schema: schema}, nil
}

// Validate returns an error listing every schema violation.
func (v *argumentValidator) Validate(args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("failed to validate arguments: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// coerceArguments converts loosely typed values of declared parameters to
// their schema type: numeric ids given as numbers become strings, "42"
// becomes 42 for integers and "true" becomes true for booleans. Values that
// cannot be converted are left for the validator to report.
func coerceArguments(ep endpoints.Endpoint, args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for name, v := range args {
		p, ok := ep.Param(name)
		if !ok || v == nil {
			out[name] = v
			continue
		}
		out[name] = coerce(p.Type, p.Items, v)
	}
	return out
}

func coerce(t, items endpoints.ParamType, v any) any {
	switch t {
	case endpoints.TypeString:
		switch v.(type) {
		case float64, int, int64, bool:
			if s, err := formatScalar(v); err == nil {
				return s
			}
		}
	case endpoints.TypeInteger:
		if s, ok := v.(string); ok {
			if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				return i
			}
		}
	case endpoints.TypeNumber:
		if s, ok := v.(string); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return f
			}
		}
	case endpoints.TypeBoolean:
		if s, ok := v.(string); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
				return b
			}
		}
	case endpoints.TypeArray:
		switch t := v.(type) {
		case []any:
			out := make([]any, len(t))
			for i, item := range t {
				out[i] = coerce(items, "", item)
			}
			return out
		case map[string]any:
			return v
		default:
			return []any{coerce(items, "", v)}
		}
	}
	return v
}
