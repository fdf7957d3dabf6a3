package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	notiferr "github.com/ariel-frischer/claude-notifier/internal/errors"
)

// Store persists tasks in a SQLite database shared by concurrent hook
// invocations. All read-modify-write operations run in IMMEDIATE
// transactions so two overlapping invocations never collide on seq or
// double-close a task; waits on the write lock are bounded by the
// busy_timeout pragma.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens (creating if needed) the task database at dbPath.
// Migration is idempotent: reopening an existing database leaves its
// rows and seq values untouched.
func NewStore(dbPath string, busyTimeoutMillis int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, notiferr.NewStorageError("create db parent dir", err)
	}

	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_pragma=busy_timeout(%d)", dbPath, busyTimeoutMillis)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, notiferr.NewStorageError("open sqlite db", err)
	}

	store, err := NewStoreFromDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewStoreFromDB wraps an already-open database (for testing).
func NewStoreFromDB(db *sql.DB) (*Store, error) {
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(context.Background()); err != nil {
		return nil, notiferr.NewStorageError("migrate schema", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			prompt TEXT,
			cwd TEXT,
			seq INTEGER NOT NULL,
			completed_at TEXT,
			duration_seconds INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_session_created
			ON tasks(session_id, created_at);`,
	}

	for _, statement := range statements {
		if _, err := s.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("migrate sqlite schema: %w", err)
		}
	}
	return nil
}

// OpenTask inserts a new open task for sessionID, assigning the next
// per-session seq (1 for the session's first task). Returns the
// inserted task's id and seq.
func (s *Store) OpenTask(ctx context.Context, sessionID, prompt, cwd string) (int64, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, notiferr.NewStorageError("start open-task tx", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// seq is assigned inside the insert statement itself so it stays
	// contiguous even under concurrent opens for the same session.
	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO tasks(session_id, created_at, prompt, cwd, seq)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks WHERE session_id = ?))`,
		sessionID,
		formatTime(s.now()),
		prompt,
		cwd,
		sessionID,
	)
	if err != nil {
		return 0, 0, notiferr.NewStorageError("insert task", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, 0, notiferr.NewStorageError("read inserted task id", err)
	}

	var seq int
	if err := tx.QueryRowContext(ctx, `SELECT seq FROM tasks WHERE id = ?`, id).Scan(&seq); err != nil {
		return 0, 0, notiferr.NewStorageError("read inserted task seq", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, notiferr.NewStorageError("commit open-task tx", err)
	}
	return id, seq, nil
}

// CloseLatestOpenTask closes the open task for sessionID with the
// greatest created_at (ties broken by greatest id), stamping now and
// the truncated whole-second duration. Returns ok=false, with nothing
// mutated, when the session has no open task.
//
// Only the most recently opened task is closed; earlier open tasks
// stay open until later stop events reach them in the same order.
func (s *Store) CloseLatestOpenTask(ctx context.Context, sessionID string, now time.Time) (ClosedTask, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClosedTask{}, false, notiferr.NewStorageError("start close-task tx", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var (
		id           int64
		createdAtRaw string
		seq          int
	)
	err = tx.QueryRowContext(
		ctx,
		`SELECT id, created_at, seq
		 FROM tasks
		 WHERE session_id = ? AND completed_at IS NULL
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		sessionID,
	).Scan(&id, &createdAtRaw, &seq)
	if errors.Is(err, sql.ErrNoRows) {
		return ClosedTask{}, false, nil
	}
	if err != nil {
		return ClosedTask{}, false, notiferr.NewStorageError("select open task", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, createdAtRaw)
	if err != nil {
		return ClosedTask{}, false, notiferr.NewStorageError("parse task created_at", err)
	}

	duration := int64(now.Sub(createdAt) / time.Second)
	if duration < 0 {
		duration = 0
	}

	// completed_at IS NULL guards write-once completion.
	res, err := tx.ExecContext(
		ctx,
		`UPDATE tasks
		 SET completed_at = ?, duration_seconds = ?
		 WHERE id = ? AND completed_at IS NULL`,
		formatTime(now),
		duration,
		id,
	)
	if err != nil {
		return ClosedTask{}, false, notiferr.NewStorageError("close task", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return ClosedTask{}, false, notiferr.NewStorageError("check close result", err)
	}
	if affected == 0 {
		return ClosedTask{}, false, nil
	}

	if err := tx.Commit(); err != nil {
		return ClosedTask{}, false, notiferr.NewStorageError("commit close-task tx", err)
	}
	return ClosedTask{Seq: seq, DurationSeconds: duration}, true, nil
}

// RecentTasks returns up to limit tasks, newest first. An empty
// sessionID returns tasks across all sessions.
func (s *Store) RecentTasks(ctx context.Context, sessionID string, limit int) ([]Task, error) {
	query := `SELECT id, session_id, created_at, prompt, cwd, seq, completed_at, duration_seconds
		 FROM tasks`
	args := []any{}
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, notiferr.NewStorageError("query recent tasks", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]Task, 0)
	for rows.Next() {
		var (
			t               Task
			createdAtRaw    string
			prompt, cwd     sql.NullString
			completedAtRaw  sql.NullString
			durationSeconds sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.SessionID, &createdAtRaw, &prompt, &cwd, &t.Seq, &completedAtRaw, &durationSeconds); err != nil {
			return nil, notiferr.NewStorageError("scan task row", err)
		}

		createdAt, err := time.Parse(time.RFC3339Nano, createdAtRaw)
		if err != nil {
			return nil, notiferr.NewStorageError("parse task created_at", err)
		}
		t.CreatedAt = createdAt
		t.Prompt = prompt.String
		t.CWD = cwd.String
		if completedAtRaw.Valid {
			completedAt, err := time.Parse(time.RFC3339Nano, completedAtRaw.String)
			if err != nil {
				return nil, notiferr.NewStorageError("parse task completed_at", err)
			}
			t.CompletedAt = &completedAt
		}
		if durationSeconds.Valid {
			d := durationSeconds.Int64
			t.DurationSeconds = &d
		}

		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, notiferr.NewStorageError("iterate task rows", err)
	}
	return result, nil
}

// timeLayout keeps fractional seconds fixed-width so stored UTC
// timestamps sort lexicographically (ORDER BY created_at relies on it).
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
