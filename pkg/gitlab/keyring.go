package gitlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name of every keyring entry written here.
const KeyringService = "gitlab-rest-mcp"

// keyringIndexUser holds the names of the persisted tokens, because the OS
// keyrings cannot enumerate entries.
const keyringIndexUser = "__tokens__"

// ErrKeyringNotFound is returned when no entry exists for a name.
var ErrKeyringNotFound = errors.New("no token stored in the OS keyring")

// keyringEntry is the JSON value stored per token.
type keyringEntry struct {
	Token    string   `json:"token"`
	Host     string   `json:"host,omitempty"`
	AuthType AuthType `json:"authType,omitempty"`
}

// SaveKeyringToken persists a token for name in the OS keyring.
func SaveKeyringToken(name, token, host string, authType AuthType) error {
	data, err := json.Marshal(keyringEntry{Token: token, Host: host, AuthType: authType})
	if err != nil {
		return fmt.Errorf("failed to encode keyring entry: %w", err)
	}
	if err := keyring.Set(KeyringService, name, string(data)); err != nil {
		return fmt.Errorf("failed to write token '%s' to keyring: %w", name, err)
	}

	names, err := keyringNames()
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	return writeKeyringNames(append(names, name))
}

// LoadKeyringToken reads a token previously saved for name. Entries written
// by other tools as a bare token string are accepted too.
func LoadKeyringToken(name string) (*TokenMetadata, error) {
	raw, err := keyring.Get(KeyringService, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrKeyringNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token '%s' from keyring: %w", name, err)
	}

	var entry keyringEntry
	if json.Unmarshal([]byte(raw), &entry) != nil || entry.Token == "" {
		entry = keyringEntry{Token: raw}
	}
	metadata := &TokenMetadata{
		Name:       name,
		GitLabHost: entry.Host,
		AuthType:   entry.AuthType,
	}
	metadata.SetToken(entry.Token)
	return metadata, nil
}

// DeleteKeyringToken removes the entry for name. A missing entry is not an error.
func DeleteKeyringToken(name string) error {
	if err := keyring.Delete(KeyringService, name); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token '%s' from keyring: %w", name, err)
	}

	names, err := keyringNames()
	if err != nil {
		return err
	}
	kept := names[:0]
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	return writeKeyringNames(kept)
}

// LoadKeyringTokens returns every persisted token keyed by name. Entries that
// vanished from the keyring are skipped.
func LoadKeyringTokens() (map[string]*TokenMetadata, error) {
	names, err := keyringNames()
	if err != nil {
		return nil, err
	}
	out := make(map[string]*TokenMetadata, len(names))
	for _, name := range names {
		metadata, err := LoadKeyringToken(name)
		if errors.Is(err, ErrKeyringNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[name] = metadata
	}
	return out, nil
}

func keyringNames() ([]string, error) {
	raw, err := keyring.Get(KeyringService, keyringIndexUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keyring index: %w", err)
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("failed to parse keyring index: %w", err)
	}
	return names, nil
}

func writeKeyringNames(names []string) error {
	if len(names) == 0 {
		if err := keyring.Delete(KeyringService, keyringIndexUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to update keyring index: %w", err)
		}
		return nil
	}
	sort.Strings(names)
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode keyring index: %w", err)
	}
	if err := keyring.Set(KeyringService, keyringIndexUser, string(data)); err != nil {
		return fmt.Errorf("failed to update keyring index: %w", err)
	}
	return nil
}
