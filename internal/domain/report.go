package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/pkg/e"
)

type ReportStatus string

const (
	ReportPending     ReportStatus = "PENDING"
	ReportAssigned    ReportStatus = "ASSIGNED"
	ReportAdminReview ReportStatus = "ADMIN_REVIEW"
	ReportCompleted   ReportStatus = "COMPLETED"
)

// CanTransitionTo enforces forward-only status changes.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case ReportPending:
		return next == ReportAssigned || next == ReportAdminReview || next == ReportCompleted
	case ReportAssigned, ReportAdminReview:
		return next == ReportCompleted
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority accepts any casing and surrounding spaces; empty means MEDIUM.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("%w: invalid priority %q, choose from LOW, MEDIUM, HIGH", e.ErrInvalidInput, s)
}

type Report struct {
	ID          uuid.UUID    `json:"id"`
	ReporterID  uuid.UUID    `json:"reporter_id"`
	Description string       `json:"description"`
	PhotoPath   string       `json:"photo,omitempty"`
	Point       Point        `json:"location"`
	Status      ReportStatus `json:"status"`
	Priority    Priority     `json:"priority"`
	AssigneeID  *uuid.UUID   `json:"assigned_to,omitempty"`
	CreatedAt   time.Time    `json:"timestamp"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CreateReportRequest struct {
	Description string   `validate:"required,max=5000"`
	Latitude    *float64 `validate:"required,lat"`
	Longitude   *float64 `validate:"required,lng"`
	Priority    string
}

type MatchKind string

const (
	MatchVolunteer  MatchKind = "volunteer"
	MatchAdmin      MatchKind = "admin"
	MatchUnassigned MatchKind = "unassigned"
)

type MatchOutcome struct {
	Kind     MatchKind
	Assignee *Candidate
}

func (o MatchOutcome) Status() ReportStatus {
	switch o.Kind {
	case MatchVolunteer:
		return ReportAssigned
	case MatchAdmin:
		return ReportAdminReview
	}
	return ReportPending
}

type AssigneeDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     Role      `json:"user_type"`
	Distance string    `json:"distance,omitempty"`
}

type ReportResponse struct {
	ID       uuid.UUID    `json:"id"`
	Status   ReportStatus `json:"status"`
	Priority Priority     `json:"priority"`
	Message  string       `json:"message"`
	Assignee *AssigneeDTO `json:"assignee,omitempty"`
	TaskID   *uuid.UUID   `json:"task_id,omitempty"`
}

type ListReportsResponse struct {
	Reports []*Report `json:"reports"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int64     `json:"total"`
}
