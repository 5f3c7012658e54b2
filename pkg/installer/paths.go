package installer

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the MCP config file of each supported client.
type ConfigPaths struct {
	VSCodeUserSettings string
	VSCodeWorkspace    string
	ClaudeDesktop      string
	ClaudeCode         string
	Cursor             string
}

// GetConfigPaths returns the config paths for the running platform.
func GetConfigPaths() *ConfigPaths {
	return configPathsFor(runtime.GOOS, homeDir(), os.Getenv)
}

func configPathsFor(goos, home string, getenv func(string) string) *ConfigPaths {
	paths := &ConfigPaths{
		ClaudeCode: filepath.Join(home, ".claude.json"),
		Cursor:     filepath.Join(home, ".cursor", "mcp.json"),
		// relative to the working directory
		VSCodeWorkspace: filepath.Join(".vscode", "mcp.json"),
	}

	switch goos {
	case "windows":
		appData := getenv("APPDATA")
		paths.VSCodeUserSettings = filepath.Join(appData, "Code", "User", "settings.json")
		paths.ClaudeDesktop = filepath.Join(appData, "Claude", "claude_desktop_config.json")
		paths.ClaudeCode = filepath.Join(getenv("USERPROFILE"), ".claude.json")
		paths.Cursor = filepath.Join(appData, "Cursor", "mcp.json")
	case "darwin":
		support := filepath.Join(home, "Library", "Application Support")
		paths.VSCodeUserSettings = filepath.Join(support, "Code", "User", "settings.json")
		paths.ClaudeDesktop = filepath.Join(support, "Claude", "claude_desktop_config.json")
	default:
		paths.VSCodeUserSettings = filepath.Join(home, ".config", "Code", "User", "settings.json")
		paths.ClaudeDesktop = filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
	}
	return paths
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv("USERPROFILE")
}

// GetProjectRoot walks up from the working directory to the first go.mod,
// falling back to the working directory.
func GetProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}
