// Package toolsnaps compares tool definitions against JSON snapshots kept in
// __toolsnaps__ next to the test that owns them.
package toolsnaps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephburnett/jd/v2"
)

const snapDir = "__toolsnaps__"

// Test checks that the JSON form of tool matches the snapshot stored under
// toolName. A missing snapshot is written, except in CI when the snapshot
// directory does not exist yet. Set UPDATE_TOOLSNAPS=true to rewrite
// snapshots.
func Test(toolName string, tool any) error {
	toolJSON, err := json.MarshalIndent(tool, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tool %s: %w", toolName, err)
	}

	snapPath := filepath.Join(snapDir, toolName+".snap")
	if os.Getenv("UPDATE_TOOLSNAPS") == "true" {
		return writeSnap(snapPath, toolJSON)
	}

	snapJSON, err := os.ReadFile(snapPath)
	if os.IsNotExist(err) {
		if os.Getenv("GITHUB_ACTIONS") == "true" && !dirExists(snapDir) {
			return fmt.Errorf("tool snapshot does not exist for %s. Please run the tests with UPDATE_TOOLSNAPS=true to create it", toolName)
		}
		return writeSnap(snapPath, toolJSON)
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot file for %s: %w", toolName, err)
	}

	toolNode, err := jd.ReadJsonString(string(toolJSON))
	if err != nil {
		return fmt.Errorf("failed to parse tool JSON for %s: %w", toolName, err)
	}
	snapNode, err := jd.ReadJsonString(string(snapJSON))
	if err != nil {
		return fmt.Errorf("failed to parse snapshot JSON for %s: %w", toolName, err)
	}

	// Parameter lists such as "required" carry no order.
	diff := snapNode.Diff(toolNode, jd.SET)
	if len(diff) > 0 {
		return fmt.Errorf("tool schema for %s has changed unexpectedly:\n%s\nrun with UPDATE_TOOLSNAPS=true to accept the change", toolName, diff.Render())
	}
	return nil
}

func writeSnap(snapPath string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(snapPath), 0o700); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(snapPath, contents, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
