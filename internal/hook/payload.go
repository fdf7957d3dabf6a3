package hook

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	notiferr "github.com/ariel-frischer/claude-notifier/internal/errors"
)

// ErrNoInput is returned when stdin is empty. Callers treat it as a
// no-op (exit 0), not a failure: Claude occasionally invokes hooks
// without a payload.
var ErrNoInput = errors.New("no event data on stdin")

// Payload is the JSON object Claude Code writes to the hook's stdin.
// Fields are present per event kind; absent fields stay empty.
type Payload struct {
	HookEventName    string `json:"hook_event_name"`
	SessionID        string `json:"session_id"`
	Prompt           string `json:"prompt"`
	CWD              string `json:"cwd"`
	NotificationType string `json:"notification_type"`
	Message          string `json:"message"`
	Source           string `json:"source"`
	Reason           string `json:"reason"`
}

// ParsePayload reads and decodes a hook payload from r.
// Empty input returns ErrNoInput; unreadable or malformed input returns
// an Input-category error.
func ParsePayload(r io.Reader) (Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, &notiferr.Error{
			Category: notiferr.Input,
			Message:  "reading stdin",
			Err:      err,
		}
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return Payload{}, ErrNoInput
	}

	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, &notiferr.Error{
			Category: notiferr.Input,
			Message:  "malformed event JSON",
			Err:      err,
		}
	}
	return p, nil
}
