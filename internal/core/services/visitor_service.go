package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type VisitorService struct {
	visitorRepo ports.VisitorRepository
}

func NewVisitorService(visitorRepo ports.VisitorRepository) *VisitorService {
	return &VisitorService{
		visitorRepo: visitorRepo,
	}
}

// Create builds the canonical document for the requested visitor type and
// persists it. The type discriminates which variant fields apply; unknown
// types fall back to the shared shape so nothing variant-specific leaks in.
func (s *VisitorService) Create(ctx context.Context, input ports.CreateVisitorInput) (*domain.Visitor, error) {
	var visitor domain.Visitor

	switch input.Type {
	case domain.TypeCandidate:
		visitor = domain.NewCandidate(input.Details, input.Technology)
	case domain.TypeInterview:
		visitor = domain.NewInterview(input.Details, input.Interview)
	default:
		visitor = domain.NewWalkIn(input.Type, input.Details)
	}

	return s.visitorRepo.Insert(ctx, visitor)
}

func (s *VisitorService) List(ctx context.Context, filter ports.ListFilter, page ports.Pagination) (*ports.VisitorPage, error) {
	if page.Page < 1 {
		page.Page = defaultPage
	}
	if page.Limit < 1 {
		page.Limit = defaultLimit
	}

	records, total, err := s.visitorRepo.FindFiltered(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	return &ports.VisitorPage{
		Records: records,
		Total:   total,
		Page:    page.Page,
		Pages:   (total + page.Limit - 1) / page.Limit,
	}, nil
}

func (s *VisitorService) GetByID(ctx context.Context, id string) (*domain.Visitor, error) {
	return s.visitorRepo.FindByID(ctx, id)
}

// UpdateStatus transitions the record and, on approval, appends a
// visitor.approved event to the outbox for the relay to publish. The
// repository hashes the password; it never reaches storage in plaintext.
func (s *VisitorService) UpdateStatus(ctx context.Context, id string, status domain.Status, password string) (*domain.Visitor, error) {
	visitor, err := s.visitorRepo.UpdateStatus(ctx, id, status, password)
	if err != nil {
		return nil, err
	}

	if status == domain.StatusApproved {
		payload, err := json.Marshal(ports.VisitorApprovedEvent{
			VisitorID: visitor.ID.Hex(),
			FullName:  visitor.FullName,
			Email:     visitor.Email,
		})
		if err != nil {
			return visitor, nil
		}
		if err := s.visitorRepo.AppendOutboxEvent(ctx, ports.VisitorApprovedEventType, payload); err != nil {
			// The approval itself succeeded; the relay's periodic sweep cannot
			// recover an event that was never written, so surface it loudly.
			log.Printf("visitor service: failed to append approval event for %s: %v", visitor.ID.Hex(), err)
		}
	}

	return visitor, nil
}
