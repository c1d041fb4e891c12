// Package mocks provides mock implementations of port interfaces for testing.
// In hexagonal architecture, ports define the contracts between the core domain
// and external adapters. Mocks implement these interfaces to enable isolated testing.
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

// OutboxEntry captures one AppendOutboxEvent call for verification.
type OutboxEntry struct {
	EventType string
	Payload   []byte
}

// MockVisitorRepository implements ports.VisitorRepository in memory.
// It honors the accessor contract, including hashing-on-write: a plaintext
// password handed to UpdateStatus is bcrypt-hashed before it is stored, so
// tests can verify the hashing property without a real database.
type MockVisitorRepository struct {
	mu sync.RWMutex

	// In-memory storage for testing
	visitors map[string]*domain.Visitor

	// Creation timestamps are spaced out so newest-first ordering is
	// deterministic even when inserts happen within the same tick.
	baseTime  time.Time
	insertSeq int64

	// Call tracking for verification
	InsertCalls       []domain.Visitor
	FindByIDCalls     []string
	FindFilteredCalls []ports.ListFilter
	UpdateStatusCalls []string
	OutboxEntries     []OutboxEntry

	// Error injection for testing error scenarios
	InsertError       error
	FindByIDError     error
	FindFilteredError error
	UpdateStatusError error
	AppendOutboxError error
}

// Ensure MockVisitorRepository implements ports.VisitorRepository at compile time.
var _ ports.VisitorRepository = (*MockVisitorRepository)(nil)

// NewMockVisitorRepository creates a new mock repository with empty storage.
func NewMockVisitorRepository() *MockVisitorRepository {
	return &MockVisitorRepository{
		visitors: make(map[string]*domain.Visitor),
		baseTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockVisitorRepository) Insert(ctx context.Context, visitor domain.Visitor) (*domain.Visitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InsertCalls = append(m.InsertCalls, visitor)

	if m.InsertError != nil {
		return nil, m.InsertError
	}

	visitor.ID = primitive.NewObjectID()
	visitor.CreatedAt = m.baseTime.Add(time.Duration(m.insertSeq) * time.Second)
	m.insertSeq++

	m.visitors[visitor.ID.Hex()] = &visitor
	return &visitor, nil
}

func (m *MockVisitorRepository) FindByID(ctx context.Context, id string) (*domain.Visitor, error) {
	m.mu.Lock()
	m.FindByIDCalls = append(m.FindByIDCalls, id)
	m.mu.Unlock()

	if m.FindByIDError != nil {
		return nil, m.FindByIDError
	}

	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	visitor, ok := m.visitors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *visitor
	return &copied, nil
}

func (m *MockVisitorRepository) FindFiltered(ctx context.Context, filter ports.ListFilter, page ports.Pagination) ([]domain.Visitor, int64, error) {
	m.mu.Lock()
	m.FindFilteredCalls = append(m.FindFilteredCalls, filter)
	m.mu.Unlock()

	if m.FindFilteredError != nil {
		return nil, 0, m.FindFilteredError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []domain.Visitor
	for _, visitor := range m.visitors {
		if matchesFilter(visitor, filter) {
			matches = append(matches, *visitor)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := int64(len(matches))

	start := page.Skip()
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	return matches[start:end], total, nil
}

func (m *MockVisitorRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, password string) (*domain.Visitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateStatusCalls = append(m.UpdateStatusCalls, id)

	if m.UpdateStatusError != nil {
		return nil, m.UpdateStatusError
	}

	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	visitor, ok := m.visitors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		visitor.Password = string(hashed)
	}
	visitor.Status = status

	copied := *visitor
	return &copied, nil
}

func (m *MockVisitorRepository) AppendOutboxEvent(ctx context.Context, eventType string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AppendOutboxError != nil {
		return m.AppendOutboxError
	}

	m.OutboxEntries = append(m.OutboxEntries, OutboxEntry{EventType: eventType, Payload: payload})
	return nil
}

// Stored returns the stored record for an id, for direct state assertions.
func (m *MockVisitorRepository) Stored(id string) *domain.Visitor {
	m.mu.RLock()
	defer m.mu.RUnlock()

	visitor, ok := m.visitors[id]
	if !ok {
		return nil
	}
	copied := *visitor
	return &copied
}

// Reset clears all stored data and call tracking.
// Use this between tests to ensure isolation.
func (m *MockVisitorRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.visitors = make(map[string]*domain.Visitor)
	m.insertSeq = 0
	m.InsertCalls = nil
	m.FindByIDCalls = nil
	m.FindFilteredCalls = nil
	m.UpdateStatusCalls = nil
	m.OutboxEntries = nil
	m.InsertError = nil
	m.FindByIDError = nil
	m.FindFilteredError = nil
	m.UpdateStatusError = nil
	m.AppendOutboxError = nil
}

func matchesFilter(visitor *domain.Visitor, filter ports.ListFilter) bool {
	if filter.Type != "" && string(visitor.Type) != filter.Type {
		return false
	}
	if filter.Status != "" && string(visitor.Status) != filter.Status {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystacks := []string{visitor.FullName, visitor.Phone, visitor.Email}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MockEmployeeRepository implements ports.EmployeeRepository for testing.
type MockEmployeeRepository struct {
	mu sync.RWMutex

	employees map[string]*domain.Employee

	FindByEmailCalls []string
	CreateCalls      []domain.Employee

	FindByEmailError error
	CreateError      error
}

var _ ports.EmployeeRepository = (*MockEmployeeRepository)(nil)

func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		employees: make(map[string]*domain.Employee),
	}
}

// SeedEmployee adds an employee to the mock repository for test setup.
func (m *MockEmployeeRepository) SeedEmployee(employee *domain.Employee) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	m.employees[employee.Email] = employee
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	m.mu.Lock()
	m.FindByEmailCalls = append(m.FindByEmailCalls, email)
	m.mu.Unlock()

	if m.FindByEmailError != nil {
		return nil, m.FindByEmailError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	employee, ok := m.employees[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls = append(m.CreateCalls, employee)

	if m.CreateError != nil {
		return nil, m.CreateError
	}

	employee.ID = primitive.NewObjectID()
	m.employees[employee.Email] = &employee
	return &employee, nil
}
