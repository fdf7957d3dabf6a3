package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresentationForKnownKinds(t *testing.T) {
	tests := map[string]struct {
		kind     Kind
		message  string
		want     Presentation
	}{
		"permission_prompt": {
			kind:    KindPermissionPrompt,
			message: "Claude wants to run rm -rf",
			want: Presentation{
				Title:    "Permission Required",
				Subtitle: "Claude needs approval",
				Message:  "Claude wants to run rm -rf",
				Sound:    "Basso",
				Urgency:  UrgencyCritical,
				Focus:    true,
			},
		},
		"idle_prompt overrides message": {
			kind:    KindIdlePrompt,
			message: "ignored",
			want: Presentation{
				Title:    "Waiting for Input",
				Subtitle: "Claude is idle",
				Message:  "Waiting for your input (60+ seconds)",
				Sound:    "Purr",
				Urgency:  UrgencyLow,
				Focus:    true,
			},
		},
		"elicitation_dialog": {
			kind:    KindElicitationDialog,
			message: "Pick a region",
			want: Presentation{
				Title:    "Input Needed",
				Subtitle: "MCP tool requires input",
				Message:  "Pick a region",
				Sound:    "Ping",
				Urgency:  UrgencyHigh,
				Focus:    true,
			},
		},
		"auth_success withholds focus": {
			kind:    KindAuthSuccess,
			message: "Logged in",
			want: Presentation{
				Title:    "Authentication Success",
				Subtitle: "Logged in successfully",
				Message:  "Logged in",
				Sound:    "Glass",
				Urgency:  UrgencyLow,
				Focus:    false,
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := PresentationFor(tc.kind, tc.message, "Glass")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPresentationForUnknownKind(t *testing.T) {
	t.Parallel()

	want := Presentation{
		Title:    "Claude Code",
		Subtitle: "Notification",
		Message:  "something happened",
		Sound:    "Hero",
		Urgency:  UrgencyNormal,
		Focus:    true,
	}

	assert.Equal(t, want, PresentationFor("totally_new_kind", "something happened", "Hero"))
	assert.Equal(t, want, PresentationFor("", "something happened", "Hero"))
}

func TestPresentationForIsPure(t *testing.T) {
	t.Parallel()

	first := PresentationFor(KindPermissionPrompt, "msg", "Glass")
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, PresentationFor(KindPermissionPrompt, "msg", "Glass"))
	}
}

func TestEditorOpenCommand(t *testing.T) {
	tests := map[string]struct {
		editor string
		path   string
		want   string
	}{
		"zed":                {editor: "zed", path: "/p1", want: `zed "/p1"`},
		"code uses abs path": {editor: "code", path: "/p1", want: `/usr/local/bin/code "/p1"`},
		"cursor":             {editor: "cursor", path: "/p1", want: `cursor "/p1"`},
		"subl":               {editor: "subl", path: "/p1", want: `subl "/p1"`},
		"atom":               {editor: "atom", path: "/p1", want: `atom "/p1"`},
		"unknown editor":     {editor: "helix", path: "/p1", want: `helix "/p1"`},
		"empty editor":       {editor: "", path: "/p1", want: ""},
		"empty path":         {editor: "zed", path: "", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, EditorOpenCommand(tc.editor, tc.path))
		})
	}
}
