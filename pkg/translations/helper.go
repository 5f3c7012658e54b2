package translations

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
)

// ConfigFileName is looked up next to the binary when no path is given.
const ConfigFileName = "gitlab-rest-mcp-config.json"

// Descriptions of the hand-written tools, keyed like the generated ones.
var builtinDefaults = map[string]string{
	endpoints.TranslationKey("listTokens"):              "Lists all configured GitLab tokens with their metadata.",
	endpoints.TranslationKey("addToken"):                "Adds a new GitLab token configuration.",
	endpoints.TranslationKey("updateToken"):             "Updates an existing GitLab token.",
	endpoints.TranslationKey("removeToken"):             "Removes a GitLab token configuration.",
	endpoints.TranslationKey("validateToken"):           "Validates a GitLab token by checking with the API.",
	endpoints.TranslationKey("getNotifications"):        "Retrieves notifications and warnings.",
	endpoints.TranslationKey("setCurrentProject"):       "Sets the current GitLab project for this directory.",
	endpoints.TranslationKey("getCurrentProject"):       "Gets the current GitLab project configuration.",
	endpoints.TranslationKey("detectProject"):           "Detects the GitLab project from the Git remote.",
	endpoints.TranslationKey("autoDetectAndSetProject"): "Detects the GitLab project and saves it.",
}

// ConfigPath returns path, or the default file next to the running binary.
func ConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not locate binary path: %w", err)
	}
	return filepath.Join(filepath.Dir(execPath), ConfigFileName), nil
}

// TranslationHelper loads description overrides from the JSON file at path
// (see ConfigPath) and returns them with a function that writes every known
// key, with its current default, back to the same file.
func TranslationHelper(logger *log.Logger, path string, catalog *endpoints.Catalog) (map[string]string, func() error) {
	translations := make(map[string]string)

	configPath, err := ConfigPath(path)
	if err != nil {
		logger.Debugf("Translations disabled: %v", err)
		return translations, func() error { return err }
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &translations); err != nil {
			logger.Warnf("Failed to parse translation config %s: %v", configPath, err)
		} else {
			logger.Infof("Loaded %d translations from %s", len(translations), configPath)
		}
	}

	dump := func() error {
		n, err := dumpTranslations(configPath, Defaults(catalog))
		if err != nil {
			return err
		}
		logger.Infof("Exported %d translation keys to %s", n, configPath)
		return nil
	}
	return translations, dump
}

// Translate returns translated string or key if not found
func Translate(translations map[string]string, key string) string {
	if translated, ok := translations[key]; ok {
		return translated
	}
	return key
}

// Defaults returns every translation key with its default English text.
func Defaults(catalog *endpoints.Catalog) map[string]string {
	keys := make(map[string]string, len(builtinDefaults))
	for k, v := range builtinDefaults {
		keys[k] = v
	}
	if catalog == nil {
		return keys
	}
	for _, ep := range catalog.Endpoints() {
		keys[endpoints.TranslationKey(ep.ToolName())] = ep.Description
	}
	return keys
}

// dumpTranslations merges defaults into the file at configPath, keeping the
// values already there. An unparsable file is replaced.
func dumpTranslations(configPath string, defaults map[string]string) (int, error) {
	existing := make(map[string]string)
	if data, err := os.ReadFile(configPath); err == nil {
		if json.Unmarshal(data, &existing) != nil {
			existing = make(map[string]string)
		}
	}
	for key, value := range defaults {
		if _, ok := existing[key]; !ok {
			existing[key] = value
		}
	}

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal translations: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write translations: %w", err)
	}
	return len(existing), nil
}
