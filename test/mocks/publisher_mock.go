package mocks

import (
	"context"
	"sync"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

// MockVisitorEventPublisher implements ports.VisitorEventPublisher for testing.
// This mock allows us to test the outbox relay without a real RabbitMQ connection.
type MockVisitorEventPublisher struct {
	mu sync.RWMutex

	// Track published events for verification
	PublishedEvents []ports.VisitorApprovedEvent

	// Error injection for testing error scenarios
	PublishError error

	// Track number of calls
	PublishCallCount int
}

// Ensure MockVisitorEventPublisher implements ports.VisitorEventPublisher at compile time.
var _ ports.VisitorEventPublisher = (*MockVisitorEventPublisher)(nil)

// NewMockVisitorEventPublisher creates a new mock publisher.
func NewMockVisitorEventPublisher() *MockVisitorEventPublisher {
	return &MockVisitorEventPublisher{
		PublishedEvents: make([]ports.VisitorApprovedEvent, 0),
	}
}

// PublishVisitorApproved captures published events for verification.
func (m *MockVisitorEventPublisher) PublishVisitorApproved(ctx context.Context, evt ports.VisitorApprovedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishCallCount++

	if m.PublishError != nil {
		return m.PublishError
	}

	m.PublishedEvents = append(m.PublishedEvents, evt)
	return nil
}

// GetPublishedEvents returns all events that were published.
func (m *MockVisitorEventPublisher) GetPublishedEvents() []ports.VisitorApprovedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]ports.VisitorApprovedEvent, len(m.PublishedEvents))
	copy(events, m.PublishedEvents)
	return events
}

// Reset clears all tracking data.
func (m *MockVisitorEventPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishedEvents = make([]ports.VisitorApprovedEvent, 0)
	m.PublishError = nil
	m.PublishCallCount = 0
}
