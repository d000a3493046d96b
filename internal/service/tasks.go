package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/pkg/e"
	"github.com/wamique00786/wesalvator/pkg/validator"

	"github.com/google/uuid"
)

type taskService struct {
	tasks  TaskRepository
	users  UserRepository
	logger *slog.Logger
}

func NewTaskService(tasks TaskRepository, users UserRepository, logger *slog.Logger) TaskService {
	return &taskService{tasks: tasks, users: users, logger: logger}
}

func (s *taskService) Mine(ctx context.Context, p auth.Principal) (domain.TaskListResponse, error) {
	open, err := s.tasks.ListByAssignee(ctx, p.UserID, false)
	if err != nil {
		return domain.TaskListResponse{}, err
	}
	done, err := s.tasks.ListByAssignee(ctx, p.UserID, true)
	if err != nil {
		return domain.TaskListResponse{}, err
	}
	if open == nil {
		open = []*domain.Task{}
	}
	if done == nil {
		done = []*domain.Task{}
	}
	return domain.TaskListResponse{Available: open, Completed: done}, nil
}

// Complete only touches tasks assigned to the caller; anything else is
// reported as not found.
func (s *taskService) Complete(ctx context.Context, p auth.Principal, taskID uuid.UUID) (*domain.Task, error) {
	t, err := s.tasks.Complete(ctx, taskID, p.UserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.logger.Info("task completed",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", p.UserID.String()),
	)
	return t, nil
}

func (s *taskService) Create(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	assignee, err := s.users.Get(ctx, req.AssigneeID)
	if err != nil {
		return nil, err
	}
	if assignee.Role != domain.RoleVolunteer && !assignee.Role.CanFallback() {
		return nil, fmt.Errorf("%w: tasks can only be assigned to volunteers or admins", e.ErrInvalidInput)
	}

	t := &domain.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info("task created", slog.String("task_id", t.ID.String()), slog.String("assignee_id", t.AssigneeID.String()))
	return t, nil
}
