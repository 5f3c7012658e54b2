package gitlab

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gl "gitlab.com/gitlab-org/api/client-go"
)

func glResponse(code int) *gl.Response {
	return &gl.Response{Response: &http.Response{StatusCode: code}}
}

// capturedResponse is a failed response whose body was kept by
// errorBodyTransport.
func capturedResponse(code int, body string) *gl.Response {
	data := []byte(body)
	return &gl.Response{Response: &http.Response{
		StatusCode: code,
		Body:       &errorBody{Reader: bytes.NewReader(data), data: data},
	}}
}

// errorResponse builds the error client-go returns for a failed request.
func errorResponse(code int, message, body string) *gl.ErrorResponse {
	req := httptest.NewRequest(http.MethodGet, "https://gitlab.example.com/api/v4/projects/1/issues/1", nil)
	return &gl.ErrorResponse{
		Message:  message,
		Body:     []byte(body),
		Response: &http.Response{StatusCode: code, Request: req},
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		resp           *gl.Response
		expectResult   bool
		expectErr      bool
		resultContains string
		errContains    string
	}{
		{name: "nil error"},
		{
			name:           "401",
			err:            errors.New("401 Unauthorized"),
			resp:           glResponse(http.StatusUnauthorized),
			expectResult:   true,
			resultContains: "Authentication failed (401)",
		},
		{
			name:           "404",
			err:            errors.New("404 Not Found"),
			resp:           glResponse(http.StatusNotFound),
			expectResult:   true,
			resultContains: "issue 1 not found or access denied (404): 404 Not Found",
		},
		{
			name:           "404 keeps the GitLab message",
			err:            gl.ErrNotFound,
			resp:           capturedResponse(http.StatusNotFound, `{"message":"404 Branch Not Found"}`),
			expectResult:   true,
			resultContains: "issue 1 not found or access denied (404): 404 Branch Not Found",
		},
		{
			name:           "400 with a validation object",
			err:            errors.New("400 Bad Request"),
			resp:           capturedResponse(http.StatusBadRequest, `{"message":{"name":["has already been taken"]}}`),
			expectResult:   true,
			resultContains: `failed to process issue 1: {"name":["has already been taken"]} (status: 400)`,
		},
		{
			name:           "422 uses the GitLab message",
			err:            errorResponse(http.StatusUnprocessableEntity, "{title: [is too long]}", ""),
			expectResult:   true,
			resultContains: "failed to process issue 1: {title: [is too long]} (status: 422)",
		},
		{
			name:           "status taken from the error response",
			err:            fmt.Errorf("wrapped: %w", errorResponse(http.StatusForbidden, "", "forbidden body")),
			expectResult:   true,
			resultContains: "forbidden body (status: 403)",
		},
		{
			name:           "429",
			err:            errors.New("rate limited"),
			resp:           glResponse(http.StatusTooManyRequests),
			expectResult:   true,
			resultContains: "(status: 429)",
		},
		{
			name:        "500",
			err:         errors.New("internal"),
			resp:        glResponse(http.StatusInternalServerError),
			expectErr:   true,
			errContains: "failed to process issue 1: internal (status: 500)",
		},
		{
			name:        "no response",
			err:         errors.New("dial tcp: connection refused"),
			expectErr:   true,
			errContains: "failed to process issue 1: dial tcp: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := HandleAPIError(tc.err, tc.resp, "issue 1")
			switch {
			case tc.expectErr:
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.errContains)
				assert.ErrorIs(t, err, tc.err)
			case tc.expectResult:
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.True(t, result.IsError)
				assert.Contains(t, getTextResult(t, result).Text, tc.resultContains)
			default:
				assert.NoError(t, err)
				assert.Nil(t, result)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 0, StatusCode(errors.New("x"), nil))
	assert.Equal(t, 404, StatusCode(nil, glResponse(404)))
	assert.Equal(t, 409, StatusCode(errorResponse(409, "", ""), &gl.Response{}))
}

func TestValidationError(t *testing.T) {
	result := validationError(errors.New("id is required"))
	assert.True(t, result.IsError)
	assert.Equal(t, "Validation Error: id is required", getTextResult(t, result).Text)
}
