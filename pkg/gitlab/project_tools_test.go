package gitlab

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gl "gitlab.com/gitlab-org/api/client-go"
	gltesting "gitlab.com/gitlab-org/api/client-go/testing"
	"go.uber.org/mock/gomock"
)

func clientFn(c *gl.Client) GetClientFn {
	return func(context.Context) (*gl.Client, error) { return c, nil }
}

func TestSetCurrentProjectHandler(t *testing.T) {
	tool, handler := SetCurrentProject()
	assert.Equal(t, "setCurrentProject", tool.Name)
	assert.Equal(t, []string{"projectId"}, tool.InputSchema.Required)

	t.Run("writes .gmcprc", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		result, err := handler(context.Background(), callRequest("setCurrentProject", map[string]any{
			"projectId":  "group/project",
			"gitlabHost": "https://gitlab.example.com",
			"tokenName":  "work",
		}))
		require.NoError(t, err)
		out := decodeResult(t, result)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, "group/project", out["projectId"])

		config, _, err := FindProjectConfigFrom(dir)
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, "work", config.TokenName)
	})

	t.Run("missing projectId", func(t *testing.T) {
		result, err := handler(context.Background(), callRequest("setCurrentProject", map[string]any{}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, getTextResult(t, result).Text, "missing required parameter: projectId")
	})
}

func TestGetCurrentProjectHandler(t *testing.T) {
	tool, handler := GetCurrentProject()
	require.NotNil(t, tool.Annotations.ReadOnlyHint)
	assert.True(t, *tool.Annotations.ReadOnlyHint)

	dir := t.TempDir()
	t.Chdir(dir)

	result, err := handler(context.Background(), callRequest("getCurrentProject", nil))
	require.NoError(t, err)
	out := decodeResult(t, result)
	assert.Equal(t, false, out["found"])

	_, err = WriteProjectConfig(dir, &ProjectConfig{ProjectID: "group/project", GitLabHost: "https://gitlab.example.com"})
	require.NoError(t, err)

	result, err = handler(context.Background(), callRequest("getCurrentProject", nil))
	require.NoError(t, err)
	out = decodeResult(t, result)
	assert.Equal(t, true, out["found"])
	assert.Equal(t, "group/project", out["projectId"])
	assert.Equal(t, "https://gitlab.example.com", out["gitlabHost"])

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("not json"), 0o644))
	result, err = handler(context.Background(), callRequest("getCurrentProject", nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, getTextResult(t, result).Text, "Failed to read project config")
}

func TestDetectProjectHandler(t *testing.T) {
	tests := []struct {
		name        string
		remote      string
		mock        func(tc *gltesting.TestClient)
		expectError bool
		errContains string
		projectName string
	}{
		{
			name:   "project exists",
			remote: "git@gitlab.example.com:group/project.git",
			mock: func(tc *gltesting.TestClient) {
				tc.MockProjects.EXPECT().
					GetProject("group/project", gomock.Nil(), gomock.Any()).
					Return(&gl.Project{Name: "project", PathWithNamespace: "group/project"}, &gl.Response{Response: &http.Response{StatusCode: http.StatusOK}}, nil)
			},
			projectName: "project",
		},
		{
			name:   "project not found",
			remote: "https://gitlab.example.com/group/gone.git",
			mock: func(tc *gltesting.TestClient) {
				tc.MockProjects.EXPECT().
					GetProject("group/gone", gomock.Nil(), gomock.Any()).
					Return(nil, &gl.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}, errors.New("404 Project Not Found"))
			},
			expectError: true,
			errContains: "detected project 'group/gone' not found or access denied (404)",
		},
		{
			name:        "GitHub remote",
			remote:      "git@github.com:owner/repo.git",
			mock:        func(*gltesting.TestClient) {},
			expectError: true,
			errContains: "Failed to detect project",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeGitConfig(t, dir, originConfig(tc.remote))
			t.Chdir(dir)

			client := gltesting.NewTestClient(t)
			tc.mock(client)

			_, handler := DetectProject(clientFn(client.Client))
			result, err := handler(context.Background(), callRequest("detectProject", nil))
			require.NoError(t, err)
			if tc.expectError {
				require.True(t, result.IsError)
				assert.Contains(t, getTextResult(t, result).Text, tc.errContains)
				return
			}
			out := decodeResult(t, result)
			assert.Equal(t, tc.projectName, out["projectName"])
			assert.Equal(t, "https://gitlab.example.com", out["gitlabHost"])

			_, err = os.Stat(filepath.Join(dir, ConfigFileName))
			assert.True(t, os.IsNotExist(err), "detectProject must not write .gmcprc")
		})
	}
}

func TestAutoDetectAndSetProjectHandler(t *testing.T) {
	dir := t.TempDir()
	writeGitConfig(t, dir, originConfig("https://gitlab.example.com/group/project.git"))
	t.Chdir(dir)

	client := gltesting.NewTestClient(t)
	client.MockProjects.EXPECT().
		GetProject("group/project", gomock.Nil(), gomock.Any()).
		Return(&gl.Project{Name: "project", PathWithNamespace: "group/project"}, &gl.Response{Response: &http.Response{StatusCode: http.StatusOK}}, nil)

	_, handler := AutoDetectAndSetProject(clientFn(client.Client))
	result, err := handler(context.Background(), callRequest("autoDetectAndSetProject", nil))
	require.NoError(t, err)
	out := decodeResult(t, result)
	assert.Equal(t, true, out["success"])

	config, _, err := FindProjectConfigFrom(dir)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "group/project", config.ProjectID)
	assert.Equal(t, "https://gitlab.example.com", config.GitLabHost)
}

func TestDetectProjectClientError(t *testing.T) {
	dir := t.TempDir()
	writeGitConfig(t, dir, originConfig("https://gitlab.example.com/group/project.git"))
	t.Chdir(dir)

	failing := func(context.Context) (*gl.Client, error) { return nil, assert.AnError }
	_, handler := DetectProject(failing)
	result, err := handler(context.Background(), callRequest("detectProject", nil))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to get GitLab client")
}

func TestDefaultProjectID(t *testing.T) {
	t.Run(".gmcprc wins", func(t *testing.T) {
		dir := t.TempDir()
		writeGitConfig(t, dir, originConfig("https://gitlab.example.com/group/from-git.git"))
		_, err := WriteProjectConfig(dir, &ProjectConfig{ProjectID: "group/from-config"})
		require.NoError(t, err)
		t.Chdir(dir)

		id, ok := DefaultProjectID()
		assert.True(t, ok)
		assert.Equal(t, "group/from-config", id)
	})

	t.Run("git remote fallback", func(t *testing.T) {
		dir := t.TempDir()
		writeGitConfig(t, dir, originConfig("https://gitlab.example.com/group/from-git.git"))
		t.Chdir(dir)

		id, ok := DefaultProjectID()
		assert.True(t, ok)
		assert.Equal(t, "group/from-git", id)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, ok := DefaultProjectID()
		assert.False(t, ok)
	})
}
