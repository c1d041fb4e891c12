package ports

import (
	"context"
)

const VisitorApprovedEventType = "visitor.approved"

type VisitorApprovedEvent struct {
	VisitorID string `json:"visitor_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
}

type VisitorEventPublisher interface {
	PublishVisitorApproved(ctx context.Context, evt VisitorApprovedEvent) error
}
