//go:build linux

package notify

import (
	"context"
	"os"
	"os/exec"
)

// notifySendTransport is the Linux transport. notify-send has native
// urgency levels but no click actions or per-notification sounds.
type notifySendTransport struct {
	available bool
}

func newNotifySendTransport() Transport {
	return &notifySendTransport{available: toolAvailable("notify-send") && hasDisplay()}
}

// newTerminalNotifierTransport returns a no-op transport on linux
func newTerminalNotifierTransport() Transport { return &noopTransport{} }

// newOsascriptTransport returns a no-op transport on linux
func newOsascriptTransport() Transport { return &noopTransport{} }

// newPowershellTransport returns a no-op transport on linux
func newPowershellTransport() Transport { return &noopTransport{} }

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (t *notifySendTransport) Name() string    { return "notify-send" }
func (t *notifySendTransport) Available() bool { return t.available }

func (t *notifySendTransport) Send(ctx context.Context, p Presentation, _ string) error {
	if !t.available {
		return ErrTransportMissing
	}

	body := p.Subtitle
	if p.Message != "" {
		body += "\n" + p.Message
	}

	cmd := exec.CommandContext(ctx, "notify-send", "-u", notifySendUrgency(p.Urgency), p.Title, body)
	return cmd.Run()
}

// notifySendUrgency maps to notify-send's three levels (it has no "high").
func notifySendUrgency(u Urgency) string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyHigh, UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}
