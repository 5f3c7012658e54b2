package toolsnaps

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	Name     string   `json:"name"`
	Required []string `json:"required,omitempty"`
	Limit    int      `json:"limit"`
}

func writeSnapshot(t *testing.T, name, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(snapDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(snapDir, name+".snap"), []byte(contents), 0o600))
}

func readSnapshot(t *testing.T, name string) fakeTool {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(snapDir, name+".snap"))
	require.NoError(t, err)
	var got fakeTool
	require.NoError(t, json.Unmarshal(data, &got))
	return got
}

func TestToolsnaps(t *testing.T) {
	tool := fakeTool{Name: "getProjectsIdIssues", Required: []string{"id", "iid"}, Limit: 20}

	tests := []struct {
		name     string
		ci       bool
		update   bool
		snapshot string // empty: no snapshot on disk
		wantErr  string
		written  bool
	}{
		{name: "missing snapshot is written", written: true},
		{name: "missing snapshot in CI", ci: true, wantErr: "tool snapshot does not exist for getProjectsIdIssues"},
		{name: "match", snapshot: `{"name":"getProjectsIdIssues","required":["id","iid"],"limit":20}`},
		{name: "required order is ignored", snapshot: `{"name":"getProjectsIdIssues","required":["iid","id"],"limit":20}`},
		{name: "changed", snapshot: `{"name":"getProjectsIdIssues","required":["id","iid"],"limit":100}`, wantErr: "tool schema for getProjectsIdIssues has changed unexpectedly"},
		{name: "malformed snapshot", snapshot: `not-json`, wantErr: "failed to parse snapshot JSON for getProjectsIdIssues"},
		{name: "update rewrites", update: true, snapshot: `{"name":"old","limit":1}`, written: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("GITHUB_ACTIONS", boolEnv(tc.ci))
			t.Setenv("UPDATE_TOOLSNAPS", boolEnv(tc.update))
			if tc.snapshot != "" {
				writeSnapshot(t, tool.Name, tc.snapshot)
			}

			err := Test(tool.Name, tool)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.written {
				assert.Equal(t, tool, readSnapshot(t, tool.Name))
			}
		})
	}
}

func TestToolsnapsInCIWithExistingDir(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("UPDATE_TOOLSNAPS", "false")
	writeSnapshot(t, "other", `{}`)

	require.NoError(t, Test("newTool", fakeTool{Name: "newTool"}))
	assert.Equal(t, "newTool", readSnapshot(t, "newTool").Name)
}

func TestToolsnapsMarshalError(t *testing.T) {
	t.Chdir(t.TempDir())
	err := Test("bad", map[string]any{"fn": func() {}})
	assert.ErrorContains(t, err, "failed to marshal tool bad")
}

func boolEnv(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
