// Package hook defines the Claude Code hook events the notifier handles
// and parses their stdin payloads.
package hook

// Event identifies a Claude Code hook trigger.
type Event string

const (
	// EventUserPromptSubmit fires when the user submits a prompt (work starts).
	EventUserPromptSubmit Event = "UserPromptSubmit"
	// EventStop fires when Claude finishes responding (work stops).
	EventStop Event = "Stop"
	// EventSubagentStop fires when a subagent task finishes.
	EventSubagentStop Event = "SubagentStop"
	// EventNotification fires for generic notifications (permission prompts etc).
	EventNotification Event = "Notification"
	// EventSessionStart fires when a session starts, resumes, or is cleared.
	EventSessionStart Event = "SessionStart"
	// EventSessionEnd fires when a session ends.
	EventSessionEnd Event = "SessionEnd"
)

// Events returns all handled events in hook-settings order.
func Events() []Event {
	return []Event{
		EventUserPromptSubmit,
		EventStop,
		EventSubagentStop,
		EventNotification,
		EventSessionStart,
		EventSessionEnd,
	}
}

// EventNames returns the event names as strings (for cobra ValidArgs).
func EventNames() []string {
	events := Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = string(e)
	}
	return names
}

// ValidEvent reports whether name is a handled hook event.
func ValidEvent(name string) bool {
	switch Event(name) {
	case EventUserPromptSubmit, EventStop, EventSubagentStop,
		EventNotification, EventSessionStart, EventSessionEnd:
		return true
	default:
		return false
	}
}
