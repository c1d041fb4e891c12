package ports

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
)

// ListFilter is a conjunction of optional predicates over the visitor
// collection. Zero-valued fields are skipped. Search matches a
// case-insensitive substring of fullName, phone or email.
type ListFilter struct {
	Type   string
	Status string
	Search string
}

// Pagination is 1-indexed. Callers normalize defaults (page 1, limit 10)
// before handing it to the repository.
type Pagination struct {
	Page  int64
	Limit int64
}

func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

type VisitorRepository interface {
	// Insert assigns the identifier and creation timestamp before persisting.
	Insert(ctx context.Context, visitor domain.Visitor) (*domain.Visitor, error)

	// FindByID returns domain.ErrInvalidID for a malformed identifier and
	// domain.ErrNotFound for a well-formed one with no record.
	FindByID(ctx context.Context, id string) (*domain.Visitor, error)

	// FindFiltered returns one page of matching records, newest first, plus
	// the total match count ignoring pagination.
	FindFiltered(ctx context.Context, filter ListFilter, page Pagination) ([]domain.Visitor, int64, error)

	// UpdateStatus sets the status and, when password is non-empty, hashes
	// it before it reaches storage. The password must be plaintext; callers
	// never pass a pre-hashed value.
	UpdateStatus(ctx context.Context, id string, status domain.Status, password string) (*domain.Visitor, error)

	// AppendOutboxEvent records an event for the relay to publish.
	AppendOutboxEvent(ctx context.Context, eventType string, payload []byte) error
}

type EmployeeRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
}

// SessionStore is the subset of redis.Client the auth flow needs. Keeping
// it narrow lets tests swap in an in-memory implementation.
type SessionStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionKey is the redis key holding the active token for a user.
func SessionKey(userID string) string {
	return "session:" + userID
}
