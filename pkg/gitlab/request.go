package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

// Request is an endpoint call with its arguments placed into path, query
// string and body.
type Request struct {
	Method string
	Path   string // escaped, relative to /api/v4
	Query  url.Values
	Body   map[string]any
}

// BuildRequest applies the path/query/body split to args. Path parameters
// are escaped into the template, every other non-null argument goes where
// its declared location (or, for undeclared arguments, the verb) says.
func BuildRequest(ep endpoints.Endpoint, args map[string]any) (*Request, error) {
	req := &Request{
		Method: strings.ToUpper(ep.Method),
		Path:   ep.Path,
		Query:  url.Values{},
	}

	inPath := make(map[string]bool)
	for _, name := range ep.PathParams() {
		inPath[name] = true
		v, ok := args[name]
		if !ok || v == nil {
			return nil, fmt.Errorf("missing required path parameter: %s", name)
		}
		s, err := formatScalar(v)
		if err != nil {
			return nil, fmt.Errorf("path parameter %s: %w", name, err)
		}
		if s == "" {
			return nil, fmt.Errorf("path parameter %s cannot be empty", name)
		}
		req.Path = strings.ReplaceAll(req.Path, "{"+name+"}", url.PathEscape(s))
	}

	names := make([]string, 0, len(args))
	for name := range args {
		if !inPath[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		v := args[name]
		if v == nil {
			continue
		}
		loc := ep.DefaultLocation()
		if p, ok := ep.Param(name); ok && p.In != endpoints.InPath {
			loc = ep.LocationOf(p)
		}
		switch loc {
		case endpoints.InQuery:
			if err := encodeQuery(req.Query, name, v); err != nil {
				return nil, err
			}
		default:
			if req.Body == nil {
				req.Body = make(map[string]any)
			}
			req.Body[name] = v
		}
	}
	return req, nil
}

// String renders the request line, e.g. "GET /projects/1/issues?state=opened".
func (r *Request) String() string {
	s := r.Method + " " + r.Path
	if len(r.Query) > 0 {
		s += "?" + r.Query.Encode()
	}
	return s
}

// Do sends the request through client and copies the response body to w.
func (r *Request) Do(ctx context.Context, client APIClient, w io.Writer) (*gl.Response, error) {
	options := []gl.RequestOptionFunc{gl.WithContext(ctx)}
	if len(r.Query) > 0 {
		options = append(options, withQuery(r.Query))
	}

	// A nil map must reach client-go as an untyped nil, otherwise it is
	// encoded as a "null" body.
	var opt any
	if r.Body != nil {
		opt = r.Body
	}

	req, err := client.NewRequest(r.Method, strings.TrimPrefix(r.Path, "/"), opt, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create request %s %s: %w", r.Method, r.Path, err)
	}
	return client.Do(req, w)
}

// withQuery replaces the query string. client-go can only encode structs.
func withQuery(q url.Values) gl.RequestOptionFunc {
	return func(req *retryablehttp.Request) error {
		req.URL.RawQuery = q.Encode()
		return nil
	}
}

// encodeQuery adds v to q the way Rails parses nested parameters:
// arrays as name[]=a&name[]=b, objects as name[key]=v.
func encodeQuery(q url.Values, name string, v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		for _, item := range t {
			if err := encodeQuery(q, name+"[]", item); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, item := range t {
			q.Add(name+"[]", item)
		}
		return nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := encodeQuery(q, name+"["+k+"]", t[k]); err != nil {
				return err
			}
		}
		return nil
	}
	s, err := formatScalar(v)
	if err != nil {
		return fmt.Errorf("query parameter %s: %w", name, err)
	}
	q.Add(name, s)
	return nil
}

// formatScalar renders a JSON scalar for a URL. Numbers never use exponent
// notation, so 1e6 becomes "1000000".
func formatScalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return strconv.FormatInt(int64(t), 10), nil
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(t), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	}
	return "", fmt.Errorf("expected a string, number or boolean, got %T", v)
}
