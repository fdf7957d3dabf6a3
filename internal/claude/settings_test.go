package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".claude", "settings.json")
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	s, err := Load(testSettingsPath(t))
	require.NoError(t, err)
	assert.Empty(t, s.EnabledHooks())
}

func TestLoadMalformedFileErrors(t *testing.T) {
	t.Parallel()

	path := testSettingsPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnableHooksInstallsAllEvents(t *testing.T) {
	t.Parallel()

	path := testSettingsPath(t)
	s, err := Load(path)
	require.NoError(t, err)

	s.EnableHooks("/usr/local/bin/claude-notifier")
	require.NoError(t, s.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"UserPromptSubmit", "Stop", "SubagentStop", "Notification", "SessionStart", "SessionEnd"},
		reloaded.EnabledHooks(),
	)
}

func TestEnableHooksIsIdempotent(t *testing.T) {
	t.Parallel()

	s, err := Load(testSettingsPath(t))
	require.NoError(t, err)

	s.EnableHooks("/usr/local/bin/claude-notifier")
	s.EnableHooks("/usr/local/bin/claude-notifier")

	hooks := s.data["hooks"].(map[string]interface{})
	entries := hooks["Stop"].([]interface{})
	assert.Len(t, entries, 1, "re-enabling must not duplicate entries")
}

func TestDisableHooksPreservesForeignEntries(t *testing.T) {
	t.Parallel()

	path := testSettingsPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	existing := map[string]interface{}{
		"model": "opus",
		"hooks": map[string]interface{}{
			"Stop": []interface{}{
				map[string]interface{}{
					"hooks": []interface{}{
						map[string]interface{}{"type": "command", "command": "some-other-tool record"},
					},
				},
			},
		},
	}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	s.EnableHooks("/usr/local/bin/claude-notifier")
	s.DisableHooks()
	require.NoError(t, s.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.EnabledHooks())

	// The foreign Stop hook and unrelated settings survive.
	hooks := reloaded.data["hooks"].(map[string]interface{})
	entries := hooks["Stop"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, "opus", reloaded.data["model"])
}

func TestSetEnv(t *testing.T) {
	t.Parallel()

	path := testSettingsPath(t)
	s, err := Load(path)
	require.NoError(t, err)

	s.SetEnv(map[string]string{
		"NOTIFICATION_SOUND":  "Glass",
		"NOTIFICATION_EDITOR": "zed",
	})
	require.NoError(t, s.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	env := reloaded.data["env"].(map[string]interface{})
	assert.Equal(t, "Glass", env["NOTIFICATION_SOUND"])
	assert.Equal(t, "zed", env["NOTIFICATION_EDITOR"])
}
