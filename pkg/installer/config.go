package installer

import "sort"

// ServerName is the key of the server entry in client config files.
const ServerName = "gitlab-rest-mcp"

// ServerConfig is one MCP server entry of a client config file.
type ServerConfig struct {
	Type    string            `json:"type,omitempty"` // Claude Code only
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Settings are the answers that end up in the server entry.
type Settings struct {
	Host     string
	Token    string
	ReadOnly bool
	// KeyringUser is set when the token lives in the OS keyring; the
	// entry then names the keyring entry instead of carrying the token.
	KeyringUser string
}

// CreateServerConfig builds the server entry for bc and s.
func CreateServerConfig(bc *BinaryConfig, s Settings) ServerConfig {
	env := make(map[string]string, len(bc.Env)+3)
	for k, v := range bc.Env {
		env[k] = v
	}

	if s.KeyringUser != "" {
		env["GITLAB_KEYRING_USER"] = s.KeyringUser
	} else {
		env["GITLAB_TOKEN"] = s.Token
	}
	// Without GITLAB_HOST the server uses gitlab.com.
	if s.Host != "" {
		env["GITLAB_HOST"] = s.Host
	}
	if s.ReadOnly {
		env["GITLAB_READ_ONLY"] = "true"
	}

	return ServerConfig{
		Command: bc.Command,
		Args:    bc.launchArgs(env),
		Env:     env,
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
