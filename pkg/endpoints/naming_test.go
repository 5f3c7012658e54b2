package endpoints

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolName(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		expected string
	}{
		{
			name:     "list branches",
			method:   "GET",
			path:     "/projects/{id}/repository/branches",
			expected: "getProjectsIdRepositoryBranches",
		},
		{
			name:     "snake case placeholder",
			method:   "PUT",
			path:     "/projects/{id}/merge_requests/{merge_request_iid}",
			expected: "putProjectsIdMergeRequestsMergeRequestIid",
		},
		{
			name:     "lower cases the verb",
			method:   "DELETE",
			path:     "/groups/{id}",
			expected: "deleteGroupsId",
		},
		{
			name:     "single segment",
			method:   "GET",
			path:     "/version",
			expected: "getVersion",
		},
		{
			name:     "drops punctuation and non ascii",
			method:   "GET",
			path:     "/a/b-c/ü_x/{d.e}",
			expected: "getABCXDE",
		},
		{
			name:     "long names are hashed",
			method:   "PUT",
			path:     "/projects/{id}/merge_requests/{merge_request_iid}/approval_rules/{approval_rule_id}",
			expected: "putProjectsIdMergeRequestsMergeRequestIidApprovalRulesA_34db3400",
		},
		{
			name:     "long names keep the verb prefix",
			method:   "POST",
			path:     "/projects/{id}/merge_requests/{merge_request_iid}/discussions/{discussion_id}/notes",
			expected: "postProjectsIdMergeRequestsMergeRequestIidDiscussionsDi_ecbbf80a",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ep := Endpoint{Method: tc.method, Path: tc.path}
			assert.Equal(t, tc.expected, ep.ToolName())
			assert.LessOrEqual(t, len(ep.ToolName()), MaxToolNameLength)
		})
	}
}

func TestShorten(t *testing.T) {
	short := "getProjects"
	assert.Equal(t, short, shorten(short))

	exact := strings.Repeat("a", MaxToolNameLength)
	assert.Equal(t, exact, shorten(exact))

	long := strings.Repeat("a", MaxToolNameLength+1)
	got := shorten(long)
	assert.Len(t, got, MaxToolNameLength)
	assert.Regexp(t, regexp.MustCompile(`^a{55}_[0-9a-f]{8}$`), got)

	// Names sharing a 55 character prefix still differ.
	other := strings.Repeat("a", MaxToolNameLength) + "b"
	assert.NotEqual(t, got, shorten(other))
}

func TestTranslationKey(t *testing.T) {
	tests := []struct {
		toolName string
		expected string
	}{
		{"getProjectsId", "TOOL_GET_PROJECTS_ID_DESCRIPTION"},
		{"getProjectsIdRepositoryBranches", "TOOL_GET_PROJECTS_ID_REPOSITORY_BRANCHES_DESCRIPTION"},
		{"listTokens", "TOOL_LIST_TOKENS_DESCRIPTION"},
		{"getABC", "TOOL_GET_ABC_DESCRIPTION"},
		{"putProjects_34db3400", "TOOL_PUT_PROJECTS_34DB3400_DESCRIPTION"},
	}
	for _, tc := range tests {
		t.Run(tc.toolName, func(t *testing.T) {
			assert.Equal(t, tc.expected, TranslationKey(tc.toolName))
		})
	}
}
