package email

import "sync"

// MockSender records messages instead of delivering them.
type MockSender struct {
	mu   sync.Mutex
	sent []Message
}

func NewMockSender() *MockSender { return &MockSender{} }

func (m *MockSender) Send(msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns a snapshot of everything delivered so far.
func (m *MockSender) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
