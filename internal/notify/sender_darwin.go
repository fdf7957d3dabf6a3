//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
)

// terminalNotifierTransport is the primary macOS transport. It is the
// only transport with click-to-open support (-execute).
type terminalNotifierTransport struct {
	available bool
}

func newTerminalNotifierTransport() Transport {
	return &terminalNotifierTransport{available: toolAvailable("terminal-notifier")}
}

// newNotifySendTransport returns a no-op transport on darwin
func newNotifySendTransport() Transport { return &noopTransport{} }

// newPowershellTransport returns a no-op transport on darwin
func newPowershellTransport() Transport { return &noopTransport{} }

func (t *terminalNotifierTransport) Name() string    { return "terminal-notifier" }
func (t *terminalNotifierTransport) Available() bool { return t.available }

func (t *terminalNotifierTransport) Send(ctx context.Context, p Presentation, clickCommand string) error {
	if !t.available {
		return ErrTransportMissing
	}

	args := []string{
		"-title", p.Title,
		"-subtitle", p.Subtitle,
		"-message", p.Message,
		"-sound", p.Sound,
	}
	if clickCommand != "" {
		args = append(args, "-execute", clickCommand)
	}

	return exec.CommandContext(ctx, "terminal-notifier", args...).Run()
}

// osascriptTransport is the macOS fallback. No click action support.
type osascriptTransport struct {
	available bool
}

func newOsascriptTransport() Transport {
	return &osascriptTransport{available: toolAvailable("osascript")}
}

func (t *osascriptTransport) Name() string    { return "osascript" }
func (t *osascriptTransport) Available() bool { return t.available }

func (t *osascriptTransport) Send(ctx context.Context, p Presentation, _ string) error {
	if !t.available {
		return ErrTransportMissing
	}

	script := fmt.Sprintf(
		`display notification %q with title %q subtitle %q sound name %q`,
		p.Message, p.Title, p.Subtitle, p.Sound,
	)
	return exec.CommandContext(ctx, "osascript", "-e", script).Run()
}
