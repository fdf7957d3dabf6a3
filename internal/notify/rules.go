package notify

// Kind is a generic-notification type reported by Claude Code.
type Kind string

const (
	// KindPermissionPrompt means Claude is waiting for tool approval.
	KindPermissionPrompt Kind = "permission_prompt"
	// KindIdlePrompt means Claude has been idle waiting for input.
	KindIdlePrompt Kind = "idle_prompt"
	// KindElicitationDialog means an MCP tool requires user input.
	KindElicitationDialog Kind = "elicitation_dialog"
	// KindAuthSuccess means a login completed.
	KindAuthSuccess Kind = "auth_success"
)

// PresentationFor returns the presentation template for a generic
// notification kind. It is a pure mapping: the same kind always yields
// the same template. Unknown kinds get the default normal-urgency
// presentation carrying the raw message and the configured sound.
func PresentationFor(kind Kind, message, defaultSound string) Presentation {
	switch kind {
	case KindPermissionPrompt:
		return Presentation{
			Title:    "Permission Required",
			Subtitle: "Claude needs approval",
			Message:  message,
			Sound:    "Basso",
			Urgency:  UrgencyCritical,
			Focus:    true,
		}
	case KindIdlePrompt:
		return Presentation{
			Title:    "Waiting for Input",
			Subtitle: "Claude is idle",
			Message:  "Waiting for your input (60+ seconds)",
			Sound:    "Purr",
			Urgency:  UrgencyLow,
			Focus:    true,
		}
	case KindElicitationDialog:
		return Presentation{
			Title:    "Input Needed",
			Subtitle: "MCP tool requires input",
			Message:  message,
			Sound:    "Ping",
			Urgency:  UrgencyHigh,
			Focus:    true,
		}
	case KindAuthSuccess:
		return Presentation{
			Title:    "Authentication Success",
			Subtitle: "Logged in successfully",
			Message:  message,
			Sound:    "Glass",
			Urgency:  UrgencyLow,
			Focus:    false,
		}
	default:
		return Presentation{
			Title:    "Claude Code",
			Subtitle: "Notification",
			Message:  message,
			Sound:    defaultSound,
			Urgency:  UrgencyNormal,
			Focus:    true,
		}
	}
}
