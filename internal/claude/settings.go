// Package claude reads and edits the user's Claude Code settings file
// to enable or disable the notifier's lifecycle hooks.
package claude

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claude-notifier/internal/hook"
)

// SettingsFileName is the name of the Claude settings file.
const SettingsFileName = "settings.json"

// commandMarker identifies hook entries owned by the notifier so
// disable/re-enable never touches hooks installed by other tools.
const commandMarker = "claude-notifier"

// Settings represents a Claude settings file with flexible JSON structure.
// Uses map[string]interface{} to preserve unknown fields during modification.
type Settings struct {
	data     map[string]interface{}
	filePath string
}

// DefaultSettingsPath returns ~/.claude/settings.json.
func DefaultSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", SettingsFileName), nil
}

// Load reads and parses Claude settings from settingsPath.
// Returns a Settings instance even if the file doesn't exist (with empty
// data). Returns an error only for actual failures like permission
// errors or malformed JSON.
func Load(settingsPath string) (*Settings, error) {
	s := &Settings{
		data:     make(map[string]interface{}),
		filePath: settingsPath,
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", settingsPath, err)
	}

	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s.data); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", settingsPath, err)
	}

	return s, nil
}

// FilePath returns the path to the settings file.
func (s *Settings) FilePath() string {
	return s.filePath
}

// Save writes the settings back to disk, creating the parent directory
// if needed.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(s.filePath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing settings file %s: %w", s.filePath, err)
	}
	return nil
}

// getHooks returns the hooks object, creating it if necessary.
func (s *Settings) getHooks() map[string]interface{} {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		hooks = make(map[string]interface{})
		s.data["hooks"] = hooks
	}
	return hooks
}

// EnableHooks installs one notifier hook entry per handled event,
// invoking binPath. Existing notifier entries are replaced; hook
// entries owned by other tools are preserved. Idempotent.
func (s *Settings) EnableHooks(binPath string) {
	hooks := s.getHooks()

	for _, event := range hook.Events() {
		entries := filterOutNotifierEntries(hooks[string(event)])
		entries = append(entries, map[string]interface{}{
			"hooks": []interface{}{
				map[string]interface{}{
					"type":    "command",
					"command": fmt.Sprintf("%s hook %s", binPath, event),
				},
			},
		})
		hooks[string(event)] = entries
	}
}

// SetEnv records environment variables in the settings env block so
// hook processes inherit them.
func (s *Settings) SetEnv(vars map[string]string) {
	env, ok := s.data["env"].(map[string]interface{})
	if !ok {
		env = make(map[string]interface{})
		s.data["env"] = env
	}
	for key, value := range vars {
		env[key] = value
	}
}

// DisableHooks removes every notifier-owned hook entry, dropping hook
// arrays that end up empty. Entries from other tools are untouched.
func (s *Settings) DisableHooks() {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		return
	}

	for _, event := range hook.Events() {
		remaining := filterOutNotifierEntries(hooks[string(event)])
		if len(remaining) == 0 {
			delete(hooks, string(event))
		} else {
			hooks[string(event)] = remaining
		}
	}

	if len(hooks) == 0 {
		delete(s.data, "hooks")
	}
}

// EnabledHooks returns the events that currently have a notifier entry.
func (s *Settings) EnabledHooks() []string {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		return nil
	}

	var enabled []string
	for _, event := range hook.Events() {
		entries, ok := hooks[string(event)].([]interface{})
		if !ok {
			continue
		}
		for _, entry := range entries {
			if entryIsNotifier(entry) {
				enabled = append(enabled, string(event))
				break
			}
		}
	}
	return enabled
}

// filterOutNotifierEntries keeps only hook entries not owned by the notifier.
func filterOutNotifierEntries(raw interface{}) []interface{} {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	kept := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		if !entryIsNotifier(entry) {
			kept = append(kept, entry)
		}
	}
	return kept
}

// entryIsNotifier reports whether a hook entry's nested command
// mentions the notifier binary.
func entryIsNotifier(entry interface{}) bool {
	entryMap, ok := entry.(map[string]interface{})
	if !ok {
		return false
	}
	nested, ok := entryMap["hooks"].([]interface{})
	if !ok {
		return false
	}
	for _, h := range nested {
		hookMap, ok := h.(map[string]interface{})
		if !ok {
			continue
		}
		command, _ := hookMap["command"].(string)
		if strings.Contains(command, commandMarker) {
			return true
		}
	}
	return false
}
