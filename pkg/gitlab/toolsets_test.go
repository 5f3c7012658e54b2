package gitlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/toolsets"
)

func testCatalog(t *testing.T, eps ...endpoints.Endpoint) *endpoints.Catalog {
	t.Helper()
	if len(eps) == 0 {
		eps = []endpoints.Endpoint{listIssuesEndpoint, createNoteEndpoint, deleteBranchEndpoint}
	}
	c, err := endpoints.NewCatalog(eps, map[string]string{"issues": "Project issues"})
	require.NoError(t, err)
	return c
}

func TestInitToolsets(t *testing.T) {
	tg, err := InitToolsets(Config{
		Catalog:         testCatalog(t),
		EnabledToolsets: []string{"issues", ProjectConfigToolset},
		Logger:          quietLogger(),
	})
	require.NoError(t, err)

	names := make([]string, 0)
	for _, info := range tg.ListToolsets() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"branches", "issues", "notes", ProjectConfigToolset, TokenManagementToolset}, names)

	issues, ok := tg.Get("issues")
	require.True(t, ok)
	assert.True(t, issues.IsEnabled())
	assert.Equal(t, "Project issues", issues.Description)
	assert.Equal(t, []string{"getProjectsIdIssues"}, issues.ToolNames())

	branches, _ := tg.Get("branches")
	assert.False(t, branches.IsEnabled())
	assert.Equal(t, "GitLab branches endpoints.", branches.Description)

	project, _ := tg.Get(ProjectConfigToolset)
	assert.True(t, project.IsEnabled())
	assert.ElementsMatch(t, []string{"getCurrentProject", "detectProject", "setCurrentProject", "autoDetectAndSetProject"}, project.ToolNames())

	tokens, _ := tg.Get(TokenManagementToolset)
	assert.False(t, tokens.IsEnabled())
}

func TestInitToolsetsReadOnly(t *testing.T) {
	tg, err := InitToolsets(Config{
		Catalog:  testCatalog(t),
		ReadOnly: true,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	for _, info := range tg.ListToolsets() {
		assert.True(t, info.Enabled, info.Name)
		assert.True(t, info.ReadOnly, info.Name)
	}

	notes, _ := tg.Get("notes")
	assert.Empty(t, notes.GetActiveTools(), "POST endpoints are write tools")
	branches, _ := tg.Get("branches")
	assert.Empty(t, branches.GetActiveTools(), "DELETE endpoints are write tools")

	tokens, _ := tg.Get(TokenManagementToolset)
	assert.ElementsMatch(t, []string{"listTokens", "validateToken", "getNotifications"}, tokens.ToolNames())
}

func TestInitToolsetsPrefixAndTranslations(t *testing.T) {
	tg, err := InitToolsets(Config{
		Catalog:         testCatalog(t),
		EnabledToolsets: []string{toolsets.AllToolsets},
		ToolPrefix:      "gl_",
		Translations: map[string]string{
			"TOOL_LIST_TOKENS_DESCRIPTION": "Shows configured tokens",
		},
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	issues, _ := tg.Get("issues")
	assert.Equal(t, []string{"gl_getProjectsIdIssues"}, issues.ToolNames())

	tokens, _ := tg.Get(TokenManagementToolset)
	for _, st := range tokens.Tools() {
		assert.Contains(t, st.Tool.Name, "gl_")
		if st.Tool.Name == "gl_listTokens" {
			assert.Equal(t, "Shows configured tokens", st.Tool.Description)
		}
	}
}

func TestInitToolsetsDynamicMode(t *testing.T) {
	tg, err := InitToolsets(Config{
		Catalog:     testCatalog(t),
		DynamicMode: true,
	})
	require.NoError(t, err)

	for _, info := range tg.ListToolsets() {
		assert.False(t, info.Enabled, info.Name)
	}
}

func TestInitToolsetsErrors(t *testing.T) {
	t.Run("unknown toolset", func(t *testing.T) {
		_, err := InitToolsets(Config{
			Catalog:         testCatalog(t),
			EnabledToolsets: []string{"wikis"},
			Logger:          quietLogger(),
		})
		assert.EqualError(t, err, "toolset 'wikis' not found")
	})

	t.Run("catalog clashes with a built-in toolset", func(t *testing.T) {
		ep := listIssuesEndpoint
		ep.Toolset = TokenManagementToolset
		_, err := InitToolsets(Config{Catalog: testCatalog(t, ep), Logger: quietLogger()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "clashes with a built-in toolset")
	})
}

func TestInitToolsetsDefaultCatalog(t *testing.T) {
	tg, err := InitToolsets(Config{Logger: quietLogger()})
	require.NoError(t, err)

	catalog, err := endpoints.Default()
	require.NoError(t, err)
	for _, name := range catalog.Toolsets() {
		ts, ok := tg.Get(name)
		require.True(t, ok, name)
		assert.Len(t, ts.Tools(), len(catalog.ByToolset(name)), name)
	}
}
