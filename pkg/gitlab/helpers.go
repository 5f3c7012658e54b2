package gitlab

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// authFailedMessage is returned for 401 responses.
const authFailedMessage = "Authentication failed (401). Your GitLab token may be expired. Please update it using the updateToken tool."

// clientErrorStatuses are answered with a tool error the caller can act on.
var clientErrorStatuses = map[int]bool{
	http.StatusBadRequest:          true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusMethodNotAllowed:    true,
	http.StatusConflict:            true,
	http.StatusPreconditionFailed:  true,
	http.StatusUnprocessableEntity: true,
	http.StatusTooManyRequests:     true,
}

// HandleAPIError provides centralized error handling for GitLab API calls
// It checks the response status code and returns appropriate MCP error results
// Returns:
//   - (*mcp.CallToolResult, nil) if the error should be returned to the user
//   - (nil, error) if the error should be propagated as an internal error
//   - (nil, nil) if err is nil
func HandleAPIError(err error, resp *gl.Response, resourceDescription string) (*mcp.CallToolResult, error) {
	if err == nil {
		return nil, nil
	}

	code := StatusCode(err, resp)
	switch {
	case code == http.StatusUnauthorized:
		return mcp.NewToolResultError(authFailedMessage), nil
	case code == http.StatusNotFound:
		return mcp.NewToolResultError(fmt.Sprintf("%s not found or access denied (%d): %s", resourceDescription, code, apiMessage(err, resp))), nil
	case clientErrorStatuses[code]:
		return mcp.NewToolResultError(fmt.Sprintf("failed to process %s: %s (status: %d)", resourceDescription, apiMessage(err, resp), code)), nil
	case code == 0:
		return nil, fmt.Errorf("failed to process %s: %w", resourceDescription, err)
	}
	return nil, fmt.Errorf("failed to process %s: %w (status: %d)", resourceDescription, err, code)
}

// StatusCode returns the HTTP status behind a client-go error, or 0 when the
// request never got a response.
func StatusCode(err error, resp *gl.Response) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	var errResp *gl.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

// apiMessage prefers the message GitLab put in the error body.
func apiMessage(err error, resp *gl.Response) string {
	var errResp *gl.ErrorResponse
	if errors.As(err, &errResp) {
		if msg := strings.TrimSpace(errResp.Message); msg != "" {
			return msg
		}
		if body := strings.TrimSpace(string(errResp.Body)); body != "" {
			return body
		}
	}
	if msg := responseMessage(resp); msg != "" {
		return msg
	}
	return err.Error()
}

// validationError is the tool result for arguments the caller has to fix.
func validationError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Validation Error: %v", err))
}
