package domain

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  uuid.UUID  `json:"assigned_to"`
	ReportID    *uuid.UUID `json:"report_id,omitempty"`
	Completed   bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	AssigneeID  uuid.UUID `json:"assigned_to" validate:"required"`
}

type TaskListResponse struct {
	Available []*Task `json:"available_tasks"`
	Completed []*Task `json:"completed_tasks"`
}
