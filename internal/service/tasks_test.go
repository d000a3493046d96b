package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/service"
	mock_service "github.com/wamique00786/wesalvator/internal/service/mocks"
	"github.com/wamique00786/wesalvator/pkg/e"
)

func newTaskService(ctrl *gomock.Controller) (service.TaskService, *mock_service.MockTaskRepository, *mock_service.MockUserRepository) {
	tasks := mock_service.NewMockTaskRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)
	return service.NewTaskService(tasks, users, newTestLogger()), tasks, users
}

func TestTaskService_Mine(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, tasks, _ := newTaskService(ctrl)
	p := principal(domain.RoleVolunteer)

	tasks.EXPECT().ListByAssignee(gomock.Any(), p.UserID, false).Return([]*domain.Task{{ID: uuid.New()}}, nil)
	tasks.EXPECT().ListByAssignee(gomock.Any(), p.UserID, true).Return(nil, nil)

	resp, err := svc.Mine(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(resp.Available) != 1 || resp.Completed == nil {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestTaskService_Complete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, tasks, _ := newTaskService(ctrl)
	p := principal(domain.RoleVolunteer)
	taskID := uuid.New()
	done := time.Now().UTC()

	tasks.EXPECT().
		Complete(gomock.Any(), taskID, p.UserID, gomock.Any()).
		Return(&domain.Task{ID: taskID, AssigneeID: p.UserID, Completed: true, CompletedAt: &done}, nil)

	task, err := svc.Complete(context.Background(), p, taskID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !task.Completed || task.CompletedAt == nil {
		t.Fatalf("unexpected task %+v", task)
	}
}

func TestTaskService_Complete_ForeignTask(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, tasks, _ := newTaskService(ctrl)

	tasks.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, e.ErrNotFound)

	_, err := svc.Complete(context.Background(), principal(domain.RoleVolunteer), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	assignee := &domain.User{ID: uuid.New(), Username: "asha", Role: domain.RoleVolunteer}

	ctrl := gomock.NewController(t)
	svc, tasks, users := newTaskService(ctrl)

	users.EXPECT().Get(gomock.Any(), assignee.ID).Return(assignee, nil)
	tasks.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *domain.Task) error {
			if task.Title != "Feed the strays" || task.AssigneeID != assignee.ID || task.ID == uuid.Nil {
				t.Fatalf("unexpected task %+v", task)
			}
			return nil
		})

	_, err := svc.Create(context.Background(), domain.CreateTaskRequest{
		Title:       "  Feed the strays ",
		Description: "Behind the market",
		AssigneeID:  assignee.ID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestTaskService_Create_Rejects(t *testing.T) {
	t.Parallel()

	reporter := &domain.User{ID: uuid.New(), Role: domain.RoleUser}

	cases := map[string]struct {
		req   domain.CreateTaskRequest
		setup func(users *mock_service.MockUserRepository)
		want  error
	}{
		"blank title": {
			req:   domain.CreateTaskRequest{Title: "  ", Description: "x", AssigneeID: uuid.New()},
			setup: func(*mock_service.MockUserRepository) {},
			want:  e.ErrInvalidInput,
		},
		"unknown assignee": {
			req: domain.CreateTaskRequest{Title: "t", Description: "x", AssigneeID: uuid.New()},
			setup: func(users *mock_service.MockUserRepository) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, e.ErrNotFound)
			},
			want: e.ErrNotFound,
		},
		"plain user assignee": {
			req: domain.CreateTaskRequest{Title: "t", Description: "x", AssigneeID: reporter.ID},
			setup: func(users *mock_service.MockUserRepository) {
				users.EXPECT().Get(gomock.Any(), reporter.ID).Return(reporter, nil)
			},
			want: e.ErrInvalidInput,
		},
	}

	for name, tc := range cases {
		ctrl := gomock.NewController(t)
		svc, _, users := newTaskService(ctrl)
		tc.setup(users)

		if _, err := svc.Create(context.Background(), tc.req); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", name, tc.want, err)
		}
		ctrl.Finish()
	}
}
