// Package task tracks units of work per Claude session in SQLite.
//
// A task opens when the user submits a prompt and closes when the next
// Stop event for the same session finds it. Tasks are never deleted;
// retention is out of scope.
package task

import "time"

// Task is one tracked unit of work within a session.
type Task struct {
	// ID is store-assigned and monotonically increasing across the store.
	ID int64
	// SessionID is the opaque caller-supplied session identifier.
	SessionID string
	// CreatedAt is set by the store at insertion.
	CreatedAt time.Time
	// Prompt and CWD are captured verbatim at open time; either may be empty.
	Prompt string
	CWD    string
	// Seq is unique within a session, contiguous from 1 in creation order.
	Seq int
	// CompletedAt is nil while the task is open. Write-once.
	CompletedAt *time.Time
	// DurationSeconds is whole seconds from CreatedAt to CompletedAt,
	// truncated. Set exactly once, together with CompletedAt.
	DurationSeconds *int64
}

// Open reports whether the task has not been closed yet.
func (t Task) Open() bool {
	return t.CompletedAt == nil
}

// ClosedTask is the result of closing a task: what the Stop notification needs.
type ClosedTask struct {
	Seq             int
	DurationSeconds int64
}
