package gitlab

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	gl "gitlab.com/gitlab-org/api/client-go"
)

// maxErrorBody bounds the part of a failed response kept for the message.
const maxErrorBody = 64 << 10

// errorBodyTransport buffers the body of 4xx/5xx responses so it is still
// readable after client-go drained it. client-go reports 404 as the bare
// gl.ErrNotFound sentinel and drops GitLab's message.
type errorBodyTransport struct {
	base http.RoundTripper
}

func newErrorBodyTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &errorBodyTransport{base: base}
}

func (t *errorBodyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest || resp.Body == nil {
		return resp, err
	}
	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	if readErr != nil {
		data = nil
	}
	resp.Body = &errorBody{Reader: bytes.NewReader(data), data: data}
	return resp, nil
}

// errorBody is a response body that can be read any number of times
// through Bytes.
type errorBody struct {
	*bytes.Reader
	data []byte
}

func (b *errorBody) Close() error  { return nil }
func (b *errorBody) Bytes() []byte { return b.data }

// responseMessage extracts GitLab's error message from a response whose body
// went through errorBodyTransport.
func responseMessage(resp *gl.Response) string {
	if resp == nil || resp.Response == nil {
		return ""
	}
	body, ok := resp.Body.(*errorBody)
	if !ok {
		return ""
	}
	return bodyMessage(body.Bytes())
}

// bodyMessage returns "message" (a string or, for validation errors, an
// object), else "error" and "error_description", else the trimmed body.
func bodyMessage(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	var parsed struct {
		Message          json.RawMessage `json:"message"`
		Error            string          `json:"error"`
		ErrorDescription string          `json:"error_description"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return truncateText(string(data), 500)
	}

	if len(parsed.Message) > 0 && string(parsed.Message) != "null" {
		var s string
		if err := json.Unmarshal(parsed.Message, &s); err == nil {
			return strings.TrimSpace(s)
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, parsed.Message); err == nil {
			return compact.String()
		}
	}
	if parsed.Error != "" {
		if parsed.ErrorDescription != "" {
			return parsed.Error + ": " + parsed.ErrorDescription
		}
		return parsed.Error
	}
	return truncateText(string(data), 500)
}

func truncateText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
