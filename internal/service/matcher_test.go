package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/service"
	mock_service "github.com/wamique00786/wesalvator/internal/service/mocks"
)

type matcherDeps struct {
	positions *mock_service.MockPositionRepository
	users     *mock_service.MockUserRepository
	reports   *mock_service.MockReportRepository
	queue     *mock_service.MockNotificationQueue
}

func newMatcher(ctrl *gomock.Controller, cfg config.MatcherConfig) (*service.Matcher, matcherDeps) {
	d := matcherDeps{
		positions: mock_service.NewMockPositionRepository(ctrl),
		users:     mock_service.NewMockUserRepository(ctrl),
		reports:   mock_service.NewMockReportRepository(ctrl),
		queue:     mock_service.NewMockNotificationQueue(ctrl),
	}
	notifier := service.NewNotifier(d.queue, newTestLogger())
	return service.NewMatcher(d.positions, d.users, d.reports, notifier, cfg, newTestLogger()), d
}

func pendingReport() *domain.Report {
	return &domain.Report{
		ID:          uuid.New(),
		ReporterID:  uuid.New(),
		Description: "dog with injured leg",
		Point:       pune,
		Status:      domain.ReportPending,
		Priority:    domain.PriorityHigh,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestMatcher_Assign_NearestVolunteer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})

	r := pendingReport()
	v := volunteer(1.2)

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), pune, 10.0, false).Return(v, nil).Times(1)
	d.reports.EXPECT().
		AssignToVolunteer(gomock.Any(), r.ID, v.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, task *domain.Task) error {
			if !strings.Contains(task.Title, "HIGH") {
				t.Fatalf("unexpected task title %q", task.Title)
			}
			if task.Description != r.Description {
				t.Fatalf("task description not copied")
			}
			task.ID = uuid.New()
			return nil
		}).
		Times(1)
	d.queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.Notification) error {
			if n.Kind != domain.NotifyVolunteerAssigned || n.RecipientID != v.UserID || n.ReportID != r.ID {
				t.Fatalf("unexpected notification %+v", n)
			}
			return nil
		}).
		Times(1)

	outcome, task, err := m.Assign(context.Background(), r, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if outcome.Kind != domain.MatchVolunteer || outcome.Assignee.UserID != v.UserID {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if task == nil {
		t.Fatalf("expected task")
	}
	if r.Status != domain.ReportAssigned || r.AssigneeID == nil || *r.AssigneeID != v.UserID {
		t.Fatalf("report not updated: %+v", r)
	}
}

func TestMatcher_Assign_FallsBackToAdmin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})

	r := pendingReport()
	a := admin()

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.users.EXPECT().FirstFallbackAdmin(gomock.Any()).Return(a, nil)
	d.reports.EXPECT().AssignToAdmin(gomock.Any(), r.ID, a.UserID).Return(nil).Times(1)
	d.queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.Notification) error {
			if n.Kind != domain.NotifyAdminReview || n.RecipientID != a.UserID {
				t.Fatalf("unexpected notification %+v", n)
			}
			return nil
		})

	outcome, task, err := m.Assign(context.Background(), r, &domain.User{Username: "reporter", Phone: "+91 98"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if outcome.Kind != domain.MatchAdmin || task != nil {
		t.Fatalf("unexpected outcome %+v task=%v", outcome, task)
	}
	if r.Status != domain.ReportAdminReview || *r.AssigneeID != a.UserID {
		t.Fatalf("report not updated: %+v", r)
	}
}

func TestMatcher_Assign_NoOneLeavesPending(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})

	r := pendingReport()

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.users.EXPECT().FirstFallbackAdmin(gomock.Any()).Return(nil, nil)

	outcome, task, err := m.Assign(context.Background(), r, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if outcome.Kind != domain.MatchUnassigned || outcome.Status() != domain.ReportPending {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if task != nil || r.Status != domain.ReportPending || r.AssigneeID != nil {
		t.Fatalf("report must stay untouched: %+v", r)
	}
}

func TestMatcher_Match_LookupErrorDegradesToAdmin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})
	a := admin()

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	d.users.EXPECT().FirstFallbackAdmin(gomock.Any()).Return(a, nil)

	outcome := m.Match(context.Background(), pune)
	if outcome.Kind != domain.MatchAdmin || outcome.Assignee != a {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestMatcher_Match_AdminLookupErrorIsUnassigned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.users.EXPECT().FirstFallbackAdmin(gomock.Any()).Return(nil, errors.New("db down"))

	if outcome := m.Match(context.Background(), pune); outcome.Kind != domain.MatchUnassigned {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestMatcher_Match_BadCoordinatesSkipsLookups(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, _ := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})

	if outcome := m.Match(context.Background(), domain.Point{Lat: 91, Lng: 0}); outcome.Kind != domain.MatchUnassigned {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestMatcher_Match_UsesConfiguredRadiusAndActivePolicy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 2.5, RestrictToActive: true})
	v := volunteer(0.4)

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), pune, 2.5, true).Return(v, nil).Times(1)

	if outcome := m.Match(context.Background(), pune); outcome.Assignee != v {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestMatcher_Assign_NotificationFailureIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})
	r := pendingReport()
	v := volunteer(3)

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(v, nil)
	d.reports.EXPECT().AssignToVolunteer(gomock.Any(), r.ID, v.UserID, gomock.Any()).Return(nil)
	d.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	outcome, _, err := m.Assign(context.Background(), r, nil)
	if err != nil || outcome.Kind != domain.MatchVolunteer {
		t.Fatalf("expected volunteer outcome without error, got %+v err=%v", outcome, err)
	}
}

func TestMatcher_Assign_PersistFailureReturnsError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m, d := newMatcher(ctrl, config.MatcherConfig{RadiusKM: 10})
	r := pendingReport()
	v := volunteer(3)
	boom := errors.New("tx failed")

	d.positions.EXPECT().NearestVolunteer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(v, nil)
	d.reports.EXPECT().AssignToVolunteer(gomock.Any(), r.ID, v.UserID, gomock.Any()).Return(boom)

	outcome, task, err := m.Assign(context.Background(), r, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if outcome.Kind != domain.MatchUnassigned || task != nil || r.Status != domain.ReportPending {
		t.Fatalf("unexpected state outcome=%+v task=%v report=%+v", outcome, task, r)
	}
}
