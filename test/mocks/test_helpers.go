package mocks

import (
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

// CreateTestDetails builds the shared visitor fields for test setup.
func CreateTestDetails(fullName, phone, email string) domain.VisitorDetails {
	return domain.VisitorDetails{
		FullName:       fullName,
		Phone:          phone,
		Email:          email,
		PurposeOfVisit: "meeting",
		PersonToMeet:   "HR",
	}
}

// CreateTestEvent creates a sample approval event for testing.
func CreateTestEvent() ports.VisitorApprovedEvent {
	return ports.VisitorApprovedEvent{
		VisitorID: "test-visitor-id",
		FullName:  "Test Visitor",
		Email:     "test@example.com",
	}
}
