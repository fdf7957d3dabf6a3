package notify

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
)

// ErrTransportMissing means the transport's external program is not
// installed. It is the only failure that triggers the fallback.
var ErrTransportMissing = errors.New("transport not installed")

// Transport displays one desktop notification via an external program.
type Transport interface {
	// Name identifies the transport in log lines.
	Name() string

	// Available returns true if the transport's program is installed.
	Available() bool

	// Send displays the notification. clickCommand, when non-empty, is
	// the shell command to run if the user clicks the notification
	// (transports without click support ignore it). The context bounds
	// the external call.
	Send(ctx context.Context, p Presentation, clickCommand string) error
}

// Transports returns the platform's primary and fallback transports.
// The fallback may be a no-op on platforms with a single transport.
func Transports() (primary, fallback Transport) {
	switch runtime.GOOS {
	case "darwin":
		return newTerminalNotifierTransport(), newOsascriptTransport()
	case "linux":
		return newNotifySendTransport(), &noopTransport{}
	case "windows":
		return newPowershellTransport(), &noopTransport{}
	default:
		return &noopTransport{}, &noopTransport{}
	}
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopTransport is a transport that does nothing (for unsupported platforms)
type noopTransport struct{}

func (t *noopTransport) Name() string    { return "noop" }
func (t *noopTransport) Available() bool { return false }
func (t *noopTransport) Send(context.Context, Presentation, string) error {
	return ErrTransportMissing
}
