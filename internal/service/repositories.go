package service

import (
	"context"
	"io"
	"time"

	"github.com/wamique00786/wesalvator/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mock_service
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FirstFallbackAdmin(ctx context.Context) (*domain.Candidate, error)
	SetConnected(ctx context.Context, id uuid.UUID, at *time.Time) error
	ResetConnected(ctx context.Context) (int64, error)
}

type PositionRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, pt domain.Point, at time.Time) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.VolunteerPosition, error)
	ListWithUsers(ctx context.Context) ([]domain.UserPosition, error)
	NearestVolunteer(ctx context.Context, pt domain.Point, radiusKm float64, activeOnly bool) (*domain.Candidate, error)
	NearbyVolunteers(ctx context.Context, pt domain.Point, radiusKm float64, limit int) ([]domain.Candidate, error)
}

type HistoryRepository interface {
	Record(ctx context.Context, entry *domain.LocationHistoryEntry) error
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error)
	Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.LocationHistoryEntry, error)
	SinceAll(ctx context.Context, since time.Time) (map[uuid.UUID][]domain.LocationHistoryEntry, error)
}

type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID, limit int) ([]*domain.Report, error)
	AssignToVolunteer(ctx context.Context, reportID, volunteerID uuid.UUID, task *domain.Task) error
	AssignToAdmin(ctx context.Context, reportID, adminID uuid.UUID) error
	CountByStatus(ctx context.Context, status domain.ReportStatus) (int64, error)
}

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	ListByAssignee(ctx context.Context, assigneeID uuid.UUID, completed bool) ([]*domain.Task, error)
	Complete(ctx context.Context, taskID, assigneeID uuid.UUID, at time.Time) (*domain.Task, error)
}

type StatsRepository interface {
	CountActiveUsers(ctx context.Context, minutes int) (int64, error)
	CountUpdates(ctx context.Context, minutes int) (int64, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.Notification) error
}

type PhotoStore interface {
	Save(ctx context.Context, reportID uuid.UUID, filename string, r io.Reader) (string, error)
	Remove(path string) error
}

type SnapshotCache interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
}

// LiveSource is the in-process realtime registry.
type LiveSource interface {
	Snapshot() domain.Snapshot
	OnlineVolunteers() int
}
