package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifyVolunteerAssigned NotificationKind = "volunteer_assigned"
	NotifyAdminReview       NotificationKind = "admin_review"
)

type Notification struct {
	Kind           NotificationKind `json:"kind"`
	RecipientID    uuid.UUID        `json:"recipient_id"`
	RecipientName  string           `json:"recipient_name"`
	RecipientEmail string           `json:"recipient_email"`
	ReportID       uuid.UUID        `json:"report_id"`
	Description    string           `json:"description"`
	Priority       Priority         `json:"priority"`
	Latitude       float64          `json:"latitude"`
	Longitude      float64          `json:"longitude"`
	ReporterName   string           `json:"reporter_name"`
	ReporterPhone  string           `json:"reporter_phone,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
