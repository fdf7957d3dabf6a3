package notify

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/claude-notifier/internal/logging"
)

// FallbackProduct is the title used when no project cwd is known.
const FallbackProduct = "Claude Code"

// Outcome reports what happened to one delivery attempt.
type Outcome struct {
	// Delivered is true if some transport accepted the notification.
	Delivered bool
	// Transport names the transport that accepted it, or "" on failure.
	Transport string
}

// Gateway delivers presentations through a primary transport with a
// single fallback attempt when the primary is not installed. Any other
// failure is logged and swallowed; Deliver never returns an error and
// each transport call is bounded by the configured timeout.
type Gateway struct {
	primary  Transport
	fallback Transport
	editor   string
	timeout  time.Duration
	log      *logging.Logger
}

// NewGateway creates a Gateway with the platform's transports.
func NewGateway(editor string, timeout time.Duration, log *logging.Logger) *Gateway {
	primary, fallback := Transports()
	return NewGatewayWithTransports(primary, fallback, editor, timeout, log)
}

// NewGatewayWithTransports creates a Gateway with explicit transports
// (for testing).
func NewGatewayWithTransports(primary, fallback Transport, editor string, timeout time.Duration, log *logging.Logger) *Gateway {
	return &Gateway{
		primary:  primary,
		fallback: fallback,
		editor:   editor,
		timeout:  timeout,
		log:      log,
	}
}

// Deliver resolves the presentation against the event's cwd and sends
// it. An empty title becomes the project name (last path segment of
// cwd). The click command is built only when the presentation asks for
// focus; focus-less presentations withhold cwd entirely.
func (g *Gateway) Deliver(ctx context.Context, p Presentation, cwd string) Outcome {
	if p.Title == "" {
		p.Title = ProjectName(cwd)
	}

	clickCommand := ""
	if p.Focus {
		clickCommand = EditorOpenCommand(g.editor, cwd)
	}

	if err := g.send(ctx, g.primary, p, clickCommand); err == nil {
		g.log.Infof("sent notification via %s: %s - %s", g.primary.Name(), p.Title, p.Subtitle)
		return Outcome{Delivered: true, Transport: g.primary.Name()}
	} else if !errors.Is(err, ErrTransportMissing) {
		g.log.Errorf("notification via %s failed: %v", g.primary.Name(), err)
		return Outcome{}
	}

	if err := g.send(ctx, g.fallback, p, clickCommand); err != nil {
		g.log.Errorf("fallback notification via %s failed: %v", g.fallback.Name(), err)
		return Outcome{}
	}
	g.log.Infof("sent notification via %s: %s - %s", g.fallback.Name(), p.Title, p.Subtitle)
	return Outcome{Delivered: true, Transport: g.fallback.Name()}
}

func (g *Gateway) send(ctx context.Context, t Transport, p Presentation, clickCommand string) error {
	sendCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return t.Send(sendCtx, p, clickCommand)
}

// ProjectName extracts the project name from a working directory,
// falling back to the product name when cwd is empty.
func ProjectName(cwd string) string {
	if cwd == "" {
		return FallbackProduct
	}
	name := filepath.Base(cwd)
	if name == "." || name == string(filepath.Separator) {
		return FallbackProduct
	}
	return name
}
