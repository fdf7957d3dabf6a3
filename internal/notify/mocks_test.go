package notify

import "context"

// mockTransport records deliveries and fails on demand.
type mockTransport struct {
	name         string
	sendErr      error
	sendCalled   int
	lastPres     Presentation
	lastClickCmd string
}

func (m *mockTransport) Name() string    { return m.name }
func (m *mockTransport) Available() bool { return m.sendErr == nil }

func (m *mockTransport) Send(_ context.Context, p Presentation, clickCommand string) error {
	m.sendCalled++
	m.lastPres = p
	m.lastClickCmd = clickCommand
	return m.sendErr
}
