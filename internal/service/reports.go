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

const recentReportsLimit = 5

type reportService struct {
	reports ReportRepository
	users   UserRepository
	photos  PhotoStore
	matcher *Matcher
	logger  *slog.Logger
}

func NewReportService(reports ReportRepository, users UserRepository, photos PhotoStore, matcher *Matcher, logger *slog.Logger) ReportService {
	return &reportService{
		reports: reports,
		users:   users,
		photos:  photos,
		matcher: matcher,
		logger:  logger,
	}
}

func (s *reportService) Create(ctx context.Context, p auth.Principal, req domain.CreateReportRequest, photo *PhotoUpload) (domain.ReportResponse, error) {
	req.Description = strings.TrimSpace(req.Description)

	if photo == nil || photo.Content == nil {
		return domain.ReportResponse{}, fmt.Errorf("%w: photo is required", e.ErrInvalidInput)
	}
	if req.Description == "" {
		return domain.ReportResponse{}, fmt.Errorf("%w: description is required", e.ErrInvalidInput)
	}
	if req.Latitude == nil || req.Longitude == nil {
		return domain.ReportResponse{}, fmt.Errorf("%w: location coordinates are required", e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return domain.ReportResponse{}, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return domain.ReportResponse{}, err
	}

	r := &domain.Report{
		ID:          uuid.New(),
		ReporterID:  p.UserID,
		Description: req.Description,
		Point:       domain.Point{Lat: *req.Latitude, Lng: *req.Longitude},
		Status:      domain.ReportPending,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.Point.Validate(); err != nil {
		return domain.ReportResponse{}, err
	}

	path, err := s.photos.Save(ctx, r.ID, photo.Filename, photo.Content)
	if err != nil {
		return domain.ReportResponse{}, err
	}
	r.PhotoPath = path

	if err := s.reports.Create(ctx, r); err != nil {
		if rmErr := s.photos.Remove(path); rmErr != nil {
			s.logger.Warn("orphan photo left behind", slog.String("path", path), slog.Any("error", rmErr))
		}
		return domain.ReportResponse{}, err
	}
	s.logger.Info("report created",
		slog.String("report_id", r.ID.String()),
		slog.String("reporter_id", p.UserID.String()),
		slog.String("priority", string(priority)),
	)

	reporter, err := s.users.Get(ctx, p.UserID)
	if err != nil {
		s.logger.Warn("reporter lookup failed", slog.String("reporter_id", p.UserID.String()), slog.Any("error", err))
		reporter = &domain.User{ID: p.UserID, Username: p.Username, Role: p.Role}
	}

	// The report is stored; a failed assignment leaves it PENDING.
	outcome, task, err := s.matcher.Assign(ctx, r, reporter)
	if err != nil {
		s.logger.Error("assignment failed, report left pending", slog.String("report_id", r.ID.String()), slog.Any("error", err))
	}
	return buildReportResponse(r, outcome, task), nil
}

func buildReportResponse(r *domain.Report, outcome domain.MatchOutcome, task *domain.Task) domain.ReportResponse {
	resp := domain.ReportResponse{
		ID:       r.ID,
		Status:   outcome.Status(),
		Priority: r.Priority,
	}

	switch outcome.Kind {
	case domain.MatchVolunteer:
		resp.Message = "Report submitted and assigned to a volunteer."
		resp.Assignee = &domain.AssigneeDTO{
			ID:       outcome.Assignee.UserID,
			Name:     outcome.Assignee.DisplayName(),
			Role:     outcome.Assignee.Role,
			Distance: fmt.Sprintf("%.2f km", outcome.Assignee.DistanceKM),
		}
		if task != nil {
			id := task.ID
			resp.TaskID = &id
		}
	case domain.MatchAdmin:
		resp.Message = "No nearby volunteers available. Report assigned to admin."
		resp.Assignee = &domain.AssigneeDTO{
			ID:   outcome.Assignee.UserID,
			Name: outcome.Assignee.DisplayName(),
			Role: outcome.Assignee.Role,
		}
	default:
		resp.Message = "Report submitted. Waiting for assignment."
	}
	return resp
}

func (s *reportService) List(ctx context.Context, page, limit int) (domain.ListReportsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	items, total, err := s.reports.List(ctx, page, limit)
	if err != nil {
		return domain.ListReportsResponse{}, err
	}
	if items == nil {
		items = []*domain.Report{}
	}
	return domain.ListReportsResponse{Reports: items, Page: page, Limit: limit, Total: total}, nil
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return s.reports.Get(ctx, id)
}

func (s *reportService) Mine(ctx context.Context, p auth.Principal) ([]*domain.Report, error) {
	items, err := s.reports.ListByReporter(ctx, p.UserID, recentReportsLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Report{}
	}
	return items, nil
}
