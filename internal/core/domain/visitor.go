package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VisitorType string

const (
	TypeCandidate VisitorType = "candidate"
	TypeInterview VisitorType = "interview"
	TypeVisitor   VisitorType = "visitor"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Visitor is a single walk-in entry: a plain visitor, a candidate dropping
// off an application, or an interviewee. Variant fields are only populated
// by the constructor for the matching type and stay absent for every other
// type.
type Visitor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type           VisitorType        `bson:"type" json:"type"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Phone          string             `bson:"phone" json:"phone"`
	Email          string             `bson:"email" json:"email"`
	PurposeOfVisit string             `bson:"purposeOfVisit" json:"purposeOfVisit"`
	PersonToMeet   string             `bson:"personToMeet" json:"personToMeet"`
	Remarks        string             `bson:"remarks" json:"remarks"`
	VisitDate      *time.Time         `bson:"visitDate" json:"visitDate"`
	CheckInTime    *time.Time         `bson:"checkInTime" json:"checkInTime"`
	CheckOutTime   *time.Time         `bson:"checkOutTime" json:"checkOutTime"`
	Status         Status             `bson:"status" json:"status"`
	Password       string             `bson:"password,omitempty" json:"-"`

	// Candidate-only.
	Technology string `bson:"technology,omitempty" json:"technology,omitempty"`

	// Interview-only.
	Domain              string  `bson:"domain,omitempty" json:"domain,omitempty"`
	TotalExperience     float64 `bson:"totalExperience,omitempty" json:"totalExperience,omitempty"`
	CurrentCtc          float64 `bson:"currentCtc,omitempty" json:"currentCtc,omitempty"`
	ExpectedCtc         float64 `bson:"expectedCtc,omitempty" json:"expectedCtc,omitempty"`
	CurrentOrganization string  `bson:"currentOrganization,omitempty" json:"currentOrganization,omitempty"`
	JobSource           string  `bson:"jobSource,omitempty" json:"jobSource,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// VisitorDetails carries the fields shared by every visitor type.
type VisitorDetails struct {
	FullName       string
	Phone          string
	Email          string
	PurposeOfVisit string
	PersonToMeet   string
	Remarks        string
	VisitDate      *time.Time
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
}

// InterviewDetails carries the fields that only apply to interviewees.
type InterviewDetails struct {
	Domain              string
	TotalExperience     float64
	CurrentCtc          float64
	ExpectedCtc         float64
	CurrentOrganization string
	JobSource           string
}

// NewWalkIn builds a visitor record of the given type with only the shared
// fields set. Status always starts at pending; client-supplied statuses are
// never honored.
func NewWalkIn(visitorType VisitorType, d VisitorDetails) Visitor {
	return Visitor{
		Type:           visitorType,
		FullName:       d.FullName,
		Phone:          d.Phone,
		Email:          d.Email,
		PurposeOfVisit: d.PurposeOfVisit,
		PersonToMeet:   d.PersonToMeet,
		Remarks:        d.Remarks,
		VisitDate:      d.VisitDate,
		CheckInTime:    d.CheckInTime,
		CheckOutTime:   d.CheckOutTime,
		Status:         StatusPending,
	}
}

// NewCandidate builds a candidate record carrying the candidate-only
// technology field.
func NewCandidate(d VisitorDetails, technology string) Visitor {
	visitor := NewWalkIn(TypeCandidate, d)
	visitor.Technology = technology
	return visitor
}

// NewInterview builds an interviewee record carrying the interview-only
// fields. Unsupplied strings default to "" and numbers to 0.
func NewInterview(d VisitorDetails, i InterviewDetails) Visitor {
	visitor := NewWalkIn(TypeInterview, d)
	visitor.Domain = i.Domain
	visitor.TotalExperience = i.TotalExperience
	visitor.CurrentCtc = i.CurrentCtc
	visitor.ExpectedCtc = i.ExpectedCtc
	visitor.CurrentOrganization = i.CurrentOrganization
	visitor.JobSource = i.JobSource
	return visitor
}
