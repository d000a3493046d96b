package service

import (
	"context"
	"io"
	"time"

	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/domain"

	"github.com/google/uuid"
)

// PhotoUpload is the photo part of a report submission.
type PhotoUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type ReportService interface {
	Create(ctx context.Context, p auth.Principal, req domain.CreateReportRequest, photo *PhotoUpload) (domain.ReportResponse, error)
	List(ctx context.Context, page, limit int) (domain.ListReportsResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Mine(ctx context.Context, p auth.Principal) ([]*domain.Report, error)
}

type LocationService interface {
	Push(ctx context.Context, p auth.Principal, pt domain.Point) (domain.VolunteerPosition, error)
	Mine(ctx context.Context, p auth.Principal) (domain.MyLocationResponse, error)
	AllUsers(ctx context.Context) (domain.UserLocationsResponse, error)
	NearbyVolunteers(ctx context.Context, req domain.NearbyVolunteersRequest) ([]domain.Candidate, error)
	LiveSnapshot(ctx context.Context) (domain.Snapshot, error)
	Connected(ctx context.Context, p auth.Principal) error
	Disconnected(ctx context.Context, p auth.Principal) error
	ResetPresence(ctx context.Context) error
}

type HistoryLedger interface {
	Record(ctx context.Context, userID uuid.UUID, pt domain.Point, at time.Time, role domain.Role) error
	Prune(ctx context.Context) (int64, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error)
	Trail(ctx context.Context, userID uuid.UUID, window time.Duration) ([]domain.LocationHistoryEntry, float64, error)
	Window(ctx context.Context, window time.Duration) (map[uuid.UUID][]domain.LocationHistoryEntry, error)
}

type TaskService interface {
	Mine(ctx context.Context, p auth.Principal) (domain.TaskListResponse, error)
	Complete(ctx context.Context, p auth.Principal, taskID uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ActivityStats, error)
}

type Service struct {
	ReportService   ReportService
	LocationService LocationService
	HistoryLedger   HistoryLedger
	TaskService     TaskService
	StatsService    StatsService
}

func NewService(
	reportService ReportService,
	locationService LocationService,
	historyLedger HistoryLedger,
	taskService TaskService,
	statsService StatsService,
) *Service {
	return &Service{
		ReportService:   reportService,
		LocationService: locationService,
		HistoryLedger:   historyLedger,
		TaskService:     taskService,
		StatsService:    statsService,
	}
}

// PruneHistory runs retention pruning on demand.
func (s *Service) PruneHistory(ctx context.Context) (int64, error) {
	return s.HistoryLedger.Prune(ctx)
}
