package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

type VisitorHandler struct {
	visitorService ports.VisitorService
}

func NewVisitorHandler(visitors ports.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitors}
}

type createVisitorRequest struct {
	Type                string     `json:"type"`
	FullName            string     `json:"fullName"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email"`
	PurposeOfVisit      string     `json:"purposeOfVisit"`
	PersonToMeet        string     `json:"personToMeet"`
	VisitDate           *time.Time `json:"visitDate"`
	CheckInTime         *time.Time `json:"checkInTime"`
	CheckOutTime        *time.Time `json:"checkOutTime"`
	Remarks             string     `json:"remarks"`
	Technology          string     `json:"technology"`
	Domain              string     `json:"domain"`
	TotalExperience     float64    `json:"totalExperience"`
	CurrentCtc          float64    `json:"currentCtc"`
	ExpectedCtc         float64    `json:"expectedCtc"`
	CurrentOrganization string     `json:"currentOrganization"`
	JobSource           string     `json:"jobSource"`
}

type createVisitorResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *domain.Visitor `json:"data"`
}

// Create records a new walk-in. Required fields are checked before any
// store call; the server always forces status to pending.
func (h *VisitorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVisitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Type == "" || req.FullName == "" || req.Phone == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Type, Full Name, Phone and Email are required")
		return
	}

	input := ports.CreateVisitorInput{
		Type: domain.VisitorType(req.Type),
		Details: domain.VisitorDetails{
			FullName:       req.FullName,
			Phone:          req.Phone,
			Email:          req.Email,
			PurposeOfVisit: req.PurposeOfVisit,
			PersonToMeet:   req.PersonToMeet,
			Remarks:        req.Remarks,
			VisitDate:      req.VisitDate,
			CheckInTime:    req.CheckInTime,
			CheckOutTime:   req.CheckOutTime,
		},
		Technology: req.Technology,
		Interview: domain.InterviewDetails{
			Domain:              req.Domain,
			TotalExperience:     req.TotalExperience,
			CurrentCtc:          req.CurrentCtc,
			ExpectedCtc:         req.ExpectedCtc,
			CurrentOrganization: req.CurrentOrganization,
			JobSource:           req.JobSource,
		},
	}

	visitor, err := h.visitorService.Create(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, createVisitorResponse{
		Success: true,
		Message: "Visitor created successfully",
		Data:    visitor,
	})
}

type listVisitorsResponse struct {
	Success bool             `json:"success"`
	Total   int64            `json:"total"`
	Page    int64            `json:"page"`
	Pages   int64            `json:"pages"`
	Count   int              `json:"count"`
	Data    []domain.Visitor `json:"data"`
}

func (h *VisitorHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := ports.ListFilter{
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Search: q.Get("search"),
	}
	page := ports.Pagination{
		Page:  parseQueryInt(q.Get("page"), 1),
		Limit: parseQueryInt(q.Get("limit"), 10),
	}

	result, err := h.visitorService.List(r.Context(), filter, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, listVisitorsResponse{
		Success: true,
		Total:   result.Total,
		Page:    result.Page,
		Pages:   result.Pages,
		Count:   len(result.Records),
		Data:    result.Records,
	})
}

type visitorResponse struct {
	Success bool            `json:"success"`
	Data    *domain.Visitor `json:"data"`
}

func (h *VisitorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitorService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "Invalid visitor ID")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Visitor not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, visitorResponse{Success: true, Data: visitor})
}

type updateStatusRequest struct {
	Status   string `json:"status"`
	Password string `json:"password"`
}

type updateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpdateStatus transitions a record to approved or rejected. Approval
// requires a password, which the store accessor hashes before persisting.
func (h *VisitorHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	status := domain.Status(req.Status)
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "Status must be pending, approved or rejected")
		return
	}

	password := ""
	if status == domain.StatusApproved {
		if req.Password == "" {
			writeError(w, http.StatusBadRequest, "Password is required for approval")
			return
		}
		password = req.Password
	}

	_, err := h.visitorService.UpdateStatus(r.Context(), r.PathValue("id"), status, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "Invalid visitor ID")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Visitor not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, updateStatusResponse{
		Success: true,
		Message: fmt.Sprintf("Visitor %s successfully", status),
	})
}

func parseQueryInt(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
