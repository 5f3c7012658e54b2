package gitlab

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultPerPage is used when a tool accepts pagination but the caller
	// does not ask for a page size.
	DefaultPerPage = 20
	// MaxPerPage is the largest page size GitLab accepts.
	MaxPerPage = 100
)

// NewServer creates the MCP server with tool capabilities and panic recovery.
// Extra options are appended, so callers can add middleware.
func NewServer(name, version string, opts ...server.ServerOption) *server.MCPServer {
	defaults := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	}
	return server.NewMCPServer(name, version, append(defaults, opts...)...)
}

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned to the current tool call.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithToolLogging logs every tool call with a request id, its duration and
// whether it produced an error.
func WithToolLogging(logger *log.Logger) server.ServerOption {
	return server.WithToolHandlerMiddleware(func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			id := uuid.NewString()
			ctx = context.WithValue(ctx, requestIDKey{}, id)
			entry := logger.WithFields(log.Fields{
				"tool":       request.Params.Name,
				"request_id": id,
			})
			entry.Debug("Tool call started")

			start := time.Now()
			result, err := next(ctx, request)
			entry = entry.WithField("duration", time.Since(start))

			switch {
			case err != nil:
				entry.WithError(err).Error("Tool call failed")
			case result != nil && result.IsError:
				entry.WithField("is_error", true).Info("Tool call returned an error result")
			default:
				entry.WithField("is_error", false).Debug("Tool call finished")
			}
			return result, err
		}
	})
}

// requiredParam returns a required parameter of type T. Missing, mistyped and
// zero values are errors.
func requiredParam[T comparable](r *mcp.CallToolRequest, p string) (T, error) {
	var zero T

	v, ok := r.GetArguments()[p]
	if !ok {
		return zero, fmt.Errorf("missing required parameter: %s", p)
	}
	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("parameter %s is not of expected type %T, got %T", p, zero, v)
	}
	if val == zero {
		return zero, fmt.Errorf("parameter %s cannot be empty or zero value", p)
	}
	return val, nil
}

// OptionalParam returns the parameter if present. Absence yields the zero value.
func OptionalParam[T any](r *mcp.CallToolRequest, p string) (T, error) {
	val, _, err := OptionalParamOK[T](r, p)
	return val, err
}

// OptionalParamOK is OptionalParam that also reports whether the parameter
// was present at all, so callers can tell "unset" from "set to zero".
func OptionalParamOK[T any](r *mcp.CallToolRequest, p string) (value T, ok bool, err error) {
	var zero T

	v, ok := r.GetArguments()[p]
	if !ok {
		return zero, false, nil
	}
	val, typeOK := v.(T)
	if !typeOK {
		return zero, true, fmt.Errorf("parameter %s is not of expected type %T, got %T", p, zero, v)
	}
	return val, true, nil
}

// OptionalIntParam reads an integer that may arrive as a JSON number, an int
// or a numeric string. Absent and empty values yield 0.
func OptionalIntParam(r *mcp.CallToolRequest, p string) (int, error) {
	v, ok := r.GetArguments()[p]
	if !ok || v == nil {
		return 0, nil
	}

	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("parameter '%s' must be a whole number, got %v", p, n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		if n == "" {
			return 0, nil
		}
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("parameter '%s' must be a valid integer string, got %q", p, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("parameter '%s' must be convertible to an integer, got %T", p, v)
	}
}

// OptionalIntParamWithDefault is OptionalIntParam with 0 replaced by def.
func OptionalIntParamWithDefault(r *mcp.CallToolRequest, p string, def int) (int, error) {
	v, err := OptionalIntParam(r, p)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return def, nil
	}
	return v, nil
}

// OptionalPaginationParams reads page and per_page, clamped to the range
// GitLab accepts.
func OptionalPaginationParams(r *mcp.CallToolRequest) (page, perPage int, err error) {
	page, err = OptionalIntParam(r, "page")
	if err != nil {
		return 0, 0, fmt.Errorf("invalid 'page' parameter: %w", err)
	}
	perPage, err = OptionalIntParam(r, "per_page")
	if err != nil {
		return 0, 0, fmt.Errorf("invalid 'per_page' parameter: %w", err)
	}

	if page <= 0 {
		page = 1
	}
	switch {
	case perPage <= 0:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	return page, perPage, nil
}

// OptionalBoolParam returns nil when the parameter is absent. Strings such as
// "yes", "0" or "t" are accepted.
func OptionalBoolParam(r *mcp.CallToolRequest, p string) (*bool, error) {
	v, ok := r.GetArguments()[p]
	if !ok || v == nil {
		return nil, nil
	}

	switch b := v.(type) {
	case bool:
		return &b, nil
	case string:
		var val bool
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes", "t", "y":
			val = true
		case "false", "0", "no", "f", "n":
			val = false
		default:
			return nil, fmt.Errorf("parameter '%s' must be a boolean, got %q", p, b)
		}
		return &val, nil
	default:
		return nil, fmt.Errorf("parameter '%s' must be a boolean, got %T", p, v)
	}
}
