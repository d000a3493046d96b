package service

import (
	"context"
	"fmt"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/pkg/e"
	"github.com/wamique00786/wesalvator/pkg/validator"
)

type statsService struct {
	repo    StatsRepository
	reports ReportRepository
	live    LiveSource
}

func NewStatsService(repo StatsRepository, reports ReportRepository, live LiveSource) StatsService {
	return &statsService{repo: repo, reports: reports, live: live}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ActivityStats, error) {
	if req.Minutes == 0 {
		req.Minutes = 60
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	active, err := s.repo.CountActiveUsers(ctx, req.Minutes)
	if err != nil {
		return nil, err
	}
	updates, err := s.repo.CountUpdates(ctx, req.Minutes)
	if err != nil {
		return nil, err
	}
	pending, err := s.reports.CountByStatus(ctx, domain.ReportPending)
	if err != nil {
		return nil, err
	}

	stats := &domain.ActivityStats{
		Minutes:         req.Minutes,
		ActiveUsers:     active,
		LocationUpdates: updates,
		PendingReports:  pending,
	}
	if s.live != nil {
		stats.VolunteersOnline = s.live.OnlineVolunteers()
	}
	return stats, nil
}
