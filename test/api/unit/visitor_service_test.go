package unit

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/services"
	"github.com/talentbridge/hr-suite/visitor-management-service/test/mocks"
)

func TestVisitorService_List_Pagination(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	service := services.NewVisitorService(mockRepo)
	ctx := context.Background()

	// 25 records inserted in order; the mock spaces creation times so
	// "Visitor 25" is the newest.
	for i := 1; i <= 25; i++ {
		_, err := service.Create(ctx, ports.CreateVisitorInput{
			Type: domain.TypeVisitor,
			Details: mocks.CreateTestDetails(
				fmt.Sprintf("Visitor %d", i),
				fmt.Sprintf("555%04d", i),
				fmt.Sprintf("visitor%d@example.com", i),
			),
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	tests := []struct {
		name          string
		page          int64
		limit         int64
		expectedCount int
		expectedFirst string
	}{
		{name: "first_page_newest_first", page: 1, limit: 10, expectedCount: 10, expectedFirst: "Visitor 25"},
		{name: "middle_page", page: 2, limit: 10, expectedCount: 10, expectedFirst: "Visitor 15"},
		{name: "last_partial_page", page: 3, limit: 10, expectedCount: 5, expectedFirst: "Visitor 5"},
		{name: "page_past_the_end", page: 4, limit: 10, expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.List(ctx, ports.ListFilter{}, ports.Pagination{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}

			if result.Total != 25 {
				t.Errorf("expected total 25, got %d", result.Total)
			}
			if result.Pages != 3 {
				t.Errorf("expected pages 3, got %d", result.Pages)
			}
			if len(result.Records) != tt.expectedCount {
				t.Fatalf("expected %d records, got %d", tt.expectedCount, len(result.Records))
			}
			if tt.expectedCount > 0 && result.Records[0].FullName != tt.expectedFirst {
				t.Errorf("expected first record %q, got %q", tt.expectedFirst, result.Records[0].FullName)
			}
		})
	}
}

func TestVisitorService_List_Defaults(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	service := services.NewVisitorService(mockRepo)

	result, err := service.List(context.Background(), ports.ListFilter{}, ports.Pagination{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if result.Page != 1 {
		t.Errorf("expected default page 1, got %d", result.Page)
	}
	if result.Pages != 0 {
		t.Errorf("expected 0 pages for an empty store, got %d", result.Pages)
	}
}

func TestVisitorService_List_StatusFilter(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	service := services.NewVisitorService(mockRepo)
	ctx := context.Background()

	var approved []string
	for i := 1; i <= 5; i++ {
		stored, err := service.Create(ctx, ports.CreateVisitorInput{
			Type:    domain.TypeVisitor,
			Details: mocks.CreateTestDetails(fmt.Sprintf("Visitor %d", i), "555", "v@example.com"),
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		if i <= 2 {
			approved = append(approved, stored.ID.Hex())
		}
	}
	for _, id := range approved {
		if _, err := service.UpdateStatus(ctx, id, domain.StatusApproved, "pw"); err != nil {
			t.Fatalf("seed approve failed: %v", err)
		}
	}

	result, err := service.List(ctx, ports.ListFilter{Status: "approved"}, ports.Pagination{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("expected 2 approved records, got %d", result.Total)
	}
	for _, record := range result.Records {
		if record.Status != domain.StatusApproved {
			t.Errorf("unexpected status %s in filtered results", record.Status)
		}
	}

	// Newest approved first.
	if len(result.Records) == 2 && !result.Records[0].CreatedAt.After(result.Records[1].CreatedAt) {
		t.Error("expected newest-first ordering within filtered results")
	}
}

func TestVisitorService_List_Search(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	service := services.NewVisitorService(mockRepo)
	ctx := context.Background()

	seed := []struct {
		fullName, phone, email string
	}{
		{"John Doe", "9876543210", "john.doe@example.com"},
		{"Jane Roe", "5550001111", "jane@corp.io"},
		{"Sam Lee", "5552223333", "sam@corp.io"},
	}
	for _, s := range seed {
		if _, err := service.Create(ctx, ports.CreateVisitorInput{
			Type:    domain.TypeVisitor,
			Details: mocks.CreateTestDetails(s.fullName, s.phone, s.email),
		}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		search   string
		expected int
	}{
		{name: "case_insensitive_name_match", search: "john", expected: 1},
		{name: "partial_phone_match", search: "654321", expected: 1},
		{name: "partial_email_match", search: "CORP.IO", expected: 2},
		{name: "no_match", search: "nobody", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.List(ctx, ports.ListFilter{Search: tt.search}, ports.Pagination{Page: 1, Limit: 10})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if result.Total != int64(tt.expected) {
				t.Errorf("search %q: expected %d matches, got %d", tt.search, tt.expected, result.Total)
			}
		})
	}
}

func TestVisitorService_Create_UnknownTypeKeepsSharedShape(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	service := services.NewVisitorService(mockRepo)

	stored, err := service.Create(context.Background(), ports.CreateVisitorInput{
		Type:       "vendor",
		Details:    mocks.CreateTestDetails("Vendor Rep", "555", "rep@vendor.com"),
		Technology: "Go",
		Interview:  domain.InterviewDetails{Domain: "backend"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if stored.Technology != "" || stored.Domain != "" {
		t.Error("variant fields must not be set for an unrecognized type")
	}
	if stored.Status != domain.StatusPending {
		t.Errorf("expected status pending, got %s", stored.Status)
	}
}

func TestVisitorService_UpdateStatus_ApprovalAppendsOutboxEvent(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	service := services.NewVisitorService(mockRepo)
	ctx := context.Background()

	stored, err := service.Create(ctx, ports.CreateVisitorInput{
		Type:    domain.TypeCandidate,
		Details: mocks.CreateTestDetails("John Doe", "123", "john@example.com"),
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	if _, err := service.UpdateStatus(ctx, stored.ID.Hex(), domain.StatusApproved, "pw"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if len(mockRepo.OutboxEntries) != 1 {
		t.Fatalf("expected 1 outbox entry, got %d", len(mockRepo.OutboxEntries))
	}
	entry := mockRepo.OutboxEntries[0]
	if entry.EventType != ports.VisitorApprovedEventType {
		t.Errorf("unexpected event type %q", entry.EventType)
	}

	var evt ports.VisitorApprovedEvent
	if err := json.Unmarshal(entry.Payload, &evt); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	if evt.VisitorID != stored.ID.Hex() {
		t.Errorf("expected visitor id %s, got %s", stored.ID.Hex(), evt.VisitorID)
	}
	if evt.FullName != "John Doe" || evt.Email != "john@example.com" {
		t.Errorf("unexpected event payload: %+v", evt)
	}
}

func TestVisitorService_UpdateStatus_RejectionDoesNotPublish(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	service := services.NewVisitorService(mockRepo)
	ctx := context.Background()

	stored, _ := service.Create(ctx, ports.CreateVisitorInput{
		Type:    domain.TypeVisitor,
		Details: mocks.CreateTestDetails("John Doe", "123", "john@example.com"),
	})

	if _, err := service.UpdateStatus(ctx, stored.ID.Hex(), domain.StatusRejected, ""); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if len(mockRepo.OutboxEntries) != 0 {
		t.Errorf("expected 0 outbox entries, got %d", len(mockRepo.OutboxEntries))
	}
}

func TestVisitorService_UpdateStatus_OutboxFailureDoesNotFailApproval(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	mockRepo.AppendOutboxError = context.DeadlineExceeded
	service := services.NewVisitorService(mockRepo)
	ctx := context.Background()

	stored, _ := service.Create(ctx, ports.CreateVisitorInput{
		Type:    domain.TypeVisitor,
		Details: mocks.CreateTestDetails("John Doe", "123", "john@example.com"),
	})

	visitor, err := service.UpdateStatus(ctx, stored.ID.Hex(), domain.StatusApproved, "pw")
	if err != nil {
		t.Fatalf("expected approval to succeed despite outbox failure, got %v", err)
	}
	if visitor.Status != domain.StatusApproved {
		t.Errorf("expected status approved, got %s", visitor.Status)
	}
}

func TestVisitorService_Create_StoreErrorPropagates(t *testing.T) {
	mockRepo := mocks.NewMockVisitorRepository()
	mockRepo.InsertError = context.DeadlineExceeded
	service := services.NewVisitorService(mockRepo)

	_, err := service.Create(context.Background(), ports.CreateVisitorInput{
		Type:    domain.TypeVisitor,
		Details: mocks.CreateTestDetails("John Doe", "123", "john@example.com"),
	})
	if err == nil {
		t.Fatal("expected error from failing store")
	}
}
