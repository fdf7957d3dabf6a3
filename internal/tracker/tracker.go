// Package tracker turns incoming hook events into task-store mutations
// and notification requests.
//
// Each event produces at most one store mutation and at most one
// delivery request. Internal faults surface as categorized errors for
// the CLI to log and translate into an exit code; they never panic
// past this boundary.
package tracker

import (
	"context"
	"fmt"
	"time"

	notiferr "github.com/ariel-frischer/claude-notifier/internal/errors"
	"github.com/ariel-frischer/claude-notifier/internal/hook"
	"github.com/ariel-frischer/claude-notifier/internal/logging"
	"github.com/ariel-frischer/claude-notifier/internal/notify"
	"github.com/ariel-frischer/claude-notifier/internal/task"
)

// Store is the task persistence the tracker needs.
// This interface is satisfied by *task.Store but defined here so tests
// can substitute a mock without a database.
type Store interface {
	OpenTask(ctx context.Context, sessionID, prompt, cwd string) (int64, int, error)
	CloseLatestOpenTask(ctx context.Context, sessionID string, now time.Time) (task.ClosedTask, bool, error)
}

// Gateway is the delivery capability the tracker needs.
// Satisfied by *notify.Gateway.
type Gateway interface {
	Deliver(ctx context.Context, p notify.Presentation, cwd string) notify.Outcome
}

// Tracker correlates start/stop events into timed tasks and requests
// notifications for the user-facing ones.
type Tracker struct {
	store   Store
	gateway Gateway
	log     *logging.Logger
	sound   string
	now     func() time.Time
}

// New creates a Tracker. sound is the configured default notification
// sound used by events that don't carry their own.
func New(store Store, gateway Gateway, log *logging.Logger, sound string) *Tracker {
	return &Tracker{
		store:   store,
		gateway: gateway,
		log:     log,
		sound:   sound,
		now:     time.Now,
	}
}

// Handle routes one event to its handler. A hook_event_name that
// disagrees with the invoked event is logged but not fatal.
func (t *Tracker) Handle(ctx context.Context, event hook.Event, p hook.Payload) error {
	if p.HookEventName != "" && p.HookEventName != string(event) {
		t.log.Warnf("hook mismatch: expected %s, got %s", event, p.HookEventName)
	}

	switch event {
	case hook.EventUserPromptSubmit:
		return t.onWorkStarted(ctx, p)
	case hook.EventStop:
		return t.onWorkStopped(ctx, p)
	case hook.EventSubagentStop:
		t.onSubagentStopped(ctx, p)
		return nil
	case hook.EventNotification:
		t.onGenericNotification(ctx, p)
		return nil
	case hook.EventSessionStart:
		t.onSessionStart(ctx, p)
		return nil
	case hook.EventSessionEnd:
		t.onSessionEnd(ctx, p)
		return nil
	default:
		return notiferr.NewInputError(fmt.Sprintf("unknown hook event: %s", event))
	}
}

// onWorkStarted records a new open task. No notification.
func (t *Tracker) onWorkStarted(ctx context.Context, p hook.Payload) error {
	_, seq, err := t.store.OpenTask(ctx, p.SessionID, p.Prompt, p.CWD)
	if err != nil {
		return err
	}
	t.log.Infof("task started: session=%s seq=%d", p.SessionID, seq)
	return nil
}

// onWorkStopped closes the most recently opened task for the session
// and announces its duration. No open task means nothing to do.
func (t *Tracker) onWorkStopped(ctx context.Context, p hook.Payload) error {
	closed, ok, err := t.store.CloseLatestOpenTask(ctx, p.SessionID, t.now())
	if err != nil {
		return err
	}
	if !ok {
		t.log.Infof("stop without open task: session=%s", p.SessionID)
		return nil
	}

	duration := FormatDuration(closed.DurationSeconds)
	t.gateway.Deliver(ctx, notify.Presentation{
		Subtitle: fmt.Sprintf("Task #%d complete", closed.Seq),
		Message:  "Duration: " + duration,
		Sound:    t.sound,
		Urgency:  notify.UrgencyNormal,
		Focus:    true,
	}, p.CWD)

	t.log.Infof("task completed: session=%s, seq=%d, duration=%s", p.SessionID, closed.Seq, duration)
	return nil
}

// onSubagentStopped announces a finished subagent. No store interaction.
func (t *Tracker) onSubagentStopped(ctx context.Context, p hook.Payload) {
	t.gateway.Deliver(ctx, notify.Presentation{
		Subtitle: "Agent task complete",
		Message:  "Subagent finished processing",
		Sound:    t.sound,
		Urgency:  notify.UrgencyLow,
		Focus:    true,
	}, p.CWD)
}

// onGenericNotification resolves the kind against the dispatch rules.
func (t *Tracker) onGenericNotification(ctx context.Context, p hook.Payload) {
	message := p.Message
	if message == "" {
		message = "Claude Code notification"
	}

	pres := notify.PresentationFor(notify.Kind(p.NotificationType), message, t.sound)
	t.gateway.Deliver(ctx, pres, p.CWD)
	t.log.Infof("notification: type=%s, urgency=%s", p.NotificationType, pres.Urgency)
}

// sessionStartSubtitles maps SessionStart sources to subtitles.
var sessionStartSubtitles = map[string]string{
	"startup": "Session started",
	"resume":  "Session resumed",
	"clear":   "Session cleared",
	"compact": "Session compacted",
}

// onSessionStart announces the session. Never sets a click target.
func (t *Tracker) onSessionStart(ctx context.Context, p hook.Payload) {
	subtitle, ok := sessionStartSubtitles[p.Source]
	if !ok {
		subtitle = "Session event"
	}

	t.gateway.Deliver(ctx, notify.Presentation{
		Subtitle: subtitle,
		Message:  fmt.Sprintf("Ready to work • %s", t.now().Format("15:04")),
		Sound:    t.sound,
		Urgency:  notify.UrgencyLow,
		Focus:    false,
	}, p.CWD)
}

// onSessionEnd announces the session end. No click target.
func (t *Tracker) onSessionEnd(ctx context.Context, p hook.Payload) {
	reason := p.Reason
	if reason == "" {
		reason = "exit"
	}

	t.gateway.Deliver(ctx, notify.Presentation{
		Subtitle: "Session ended",
		Message:  "Reason: " + reason,
		Sound:    t.sound,
		Urgency:  notify.UrgencyLow,
		Focus:    false,
	}, p.CWD)
}
