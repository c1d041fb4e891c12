package ports

import (
	"context"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
)

// CreateVisitorInput is the validated create payload. Variant fields are
// only consulted when Type matches.
type CreateVisitorInput struct {
	Type       domain.VisitorType
	Details    domain.VisitorDetails
	Technology string
	Interview  domain.InterviewDetails
}

// VisitorPage is one page of list results plus the counters the response
// envelope needs.
type VisitorPage struct {
	Records []domain.Visitor
	Total   int64
	Page    int64
	Pages   int64
}

type VisitorService interface {
	Create(ctx context.Context, input CreateVisitorInput) (*domain.Visitor, error)
	List(ctx context.Context, filter ListFilter, page Pagination) (*VisitorPage, error)
	GetByID(ctx context.Context, id string) (*domain.Visitor, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, password string) (*domain.Visitor, error)
}

type AuthService interface {
	Login(ctx context.Context, email string, password string) (string, error)
	Logout(ctx context.Context, userID string) error
}
