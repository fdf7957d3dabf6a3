package tracker

import (
	"context"
	"time"

	"github.com/ariel-frischer/claude-notifier/internal/notify"
	"github.com/ariel-frischer/claude-notifier/internal/task"
)

// mockStore is a scripted Store for tracker tests.
type mockStore struct {
	openCalled  int
	openSession string
	openPrompt  string
	openCWD     string
	openSeq     int
	openErr     error

	closeCalled  int
	closeSession string
	closeNow     time.Time
	closedTask   task.ClosedTask
	closedOK     bool
	closeErr     error
}

func (m *mockStore) OpenTask(_ context.Context, sessionID, prompt, cwd string) (int64, int, error) {
	m.openCalled++
	m.openSession = sessionID
	m.openPrompt = prompt
	m.openCWD = cwd
	if m.openErr != nil {
		return 0, 0, m.openErr
	}
	return int64(m.openCalled), m.openSeq, nil
}

func (m *mockStore) CloseLatestOpenTask(_ context.Context, sessionID string, now time.Time) (task.ClosedTask, bool, error) {
	m.closeCalled++
	m.closeSession = sessionID
	m.closeNow = now
	return m.closedTask, m.closedOK, m.closeErr
}

// mockGateway records delivery requests.
type mockGateway struct {
	deliverCalled int
	lastPres      notify.Presentation
	lastCWD       string
}

func (m *mockGateway) Deliver(_ context.Context, p notify.Presentation, cwd string) notify.Outcome {
	m.deliverCalled++
	m.lastPres = p
	m.lastCWD = cwd
	return notify.Outcome{Delivered: true, Transport: "mock"}
}
