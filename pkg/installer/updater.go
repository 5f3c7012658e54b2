package installer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	EnvVSCode        = "VS Code"
	EnvClaudeDesktop = "Claude Desktop"
	EnvClaudeCode    = "Claude Code"
	EnvCursor        = "Cursor"
)

// Environments lists the clients the installer can configure.
var Environments = []string{EnvVSCode, EnvClaudeDesktop, EnvClaudeCode, EnvCursor}

// UpdateConfig writes the server entry into the config file of env and
// returns the path it wrote. Other entries and settings in the file are kept.
func UpdateConfig(env string, paths *ConfigPaths, config ServerConfig) (string, error) {
	switch env {
	case EnvVSCode:
		// The workspace file wins when its directory can be created.
		if err := os.MkdirAll(filepath.Dir(paths.VSCodeWorkspace), 0o755); err == nil {
			if err := upsertServer(paths.VSCodeWorkspace, config, "servers"); err == nil {
				return paths.VSCodeWorkspace, nil
			}
		}
		return paths.VSCodeUserSettings, upsertServer(paths.VSCodeUserSettings, config, "mcp", "servers")
	case EnvClaudeDesktop:
		return paths.ClaudeDesktop, upsertServer(paths.ClaudeDesktop, config, "mcpServers")
	case EnvClaudeCode:
		config.Type = "stdio"
		return paths.ClaudeCode, upsertServer(paths.ClaudeCode, config, "mcpServers")
	case EnvCursor:
		return paths.Cursor, upsertServer(paths.Cursor, config, "mcpServers")
	}
	return "", fmt.Errorf("unknown environment: %s", env)
}

// upsertServer sets ServerName under the nested object keys of the JSON file
// at path, creating the file and the objects as needed.
func upsertServer(path string, config ServerConfig, keys ...string) error {
	root := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil && len(data) > 0:
		if err := json.Unmarshal(data, &root); err != nil {
			return fmt.Errorf("failed to parse existing config %s: %w", path, err)
		}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	obj := root
	for _, k := range keys {
		next, ok := obj[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			obj[k] = next
		}
		obj = next
	}
	obj[ServerName] = config

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return writeJSONFile(path, root)
}

// writeJSONFile writes data to path, keeping the previous content in
// path+".bak" and restoring it if the write fails.
func writeJSONFile(path string, data any) error {
	backupPath := path + ".bak"
	previous, err := os.ReadFile(path)
	hasBackup := err == nil
	if hasBackup {
		if err := os.WriteFile(backupPath, previous, 0o600); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	// config files may hold a token
	if err := os.WriteFile(path, append(out, '\n'), 0o600); err != nil {
		if hasBackup {
			_ = os.WriteFile(path, previous, 0o600)
		}
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
