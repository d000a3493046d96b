package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/metrics"

	"github.com/google/uuid"
)

type historyLedger struct {
	repo        HistoryRepository
	retention   time.Duration
	recentLimit int
	logger      *slog.Logger
}

func NewHistoryLedger(repo HistoryRepository, cfg config.HistoryConfig, logger *slog.Logger) HistoryLedger {
	retention := cfg.Retention
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	limit := cfg.RecentLimit
	if limit <= 0 {
		limit = 10
	}
	return &historyLedger{repo: repo, retention: retention, recentLimit: limit, logger: logger}
}

func (h *historyLedger) Record(ctx context.Context, userID uuid.UUID, pt domain.Point, at time.Time, role domain.Role) error {
	return h.repo.Record(ctx, &domain.LocationHistoryEntry{
		UserID:     userID,
		Point:      pt,
		RecordedAt: at,
		Role:       role,
	})
}

// Prune drops entries older than the retention window.
func (h *historyLedger) Prune(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-h.retention)

	n, err := h.repo.Prune(ctx, cutoff)
	if err != nil {
		h.logger.Error("history prune failed", slog.Any("error", err))
		return 0, err
	}
	if n > 0 {
		metrics.HistoryPruned.Add(float64(n))
		h.logger.Info("history pruned", slog.Int64("deleted", n), slog.Time("cutoff", cutoff))
	}
	return n, nil
}

func (h *historyLedger) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error) {
	if limit <= 0 {
		limit = h.recentLimit
	}
	return h.repo.Recent(ctx, userID, limit)
}

// Trail returns a user's entries within window, newest first, and the
// distance travelled along them.
func (h *historyLedger) Trail(ctx context.Context, userID uuid.UUID, window time.Duration) ([]domain.LocationHistoryEntry, float64, error) {
	entries, err := h.repo.Since(ctx, userID, time.Now().UTC().Add(-window))
	if err != nil {
		return nil, 0, err
	}
	return entries, trailKM(entries), nil
}

func (h *historyLedger) Window(ctx context.Context, window time.Duration) (map[uuid.UUID][]domain.LocationHistoryEntry, error) {
	return h.repo.SinceAll(ctx, time.Now().UTC().Add(-window))
}

// trailKM expects entries newest first.
func trailKM(entries []domain.LocationHistoryEntry) float64 {
	pts := make([]domain.Point, len(entries))
	for i, h := range entries {
		pts[len(entries)-1-i] = h.Point
	}
	return domain.PathKM(pts)
}
