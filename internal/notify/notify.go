// Package notify maps hook events to desktop notifications and
// delivers them through external transport programs.
//
// Delivery is best-effort and at-most-once: a primary transport is
// tried first, a fallback only when the primary is not installed, and
// every failure is logged and swallowed. A missed desktop notification
// is never fatal to the hook invocation.
package notify

// Urgency is the presentation urgency level.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Presentation is the resolved notification bundle handed to the gateway.
type Presentation struct {
	// Title is the notification title. Empty means "use the project
	// name": the gateway resolves it from the event's cwd.
	Title    string
	Subtitle string
	Message  string
	// Sound is a macOS sound-set name (Glass, Basso, Purr, Ping, ...).
	Sound   string
	Urgency Urgency
	// Focus controls click-to-open: when false the event's cwd is
	// withheld from the delivery even if the caller supplied one.
	Focus bool
}
