package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wamique00786/wesalvator/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

// CountActiveUsers counts distinct users that pushed a location within the
// last minutes.
func (p *StatsRepo) CountActiveUsers(ctx context.Context, minutes int) (int64, error) {
	return p.count(ctx, "postgres.Stats.CountActiveUsers", `
		SELECT COUNT(DISTINCT user_id)
		FROM location_history
		WHERE recorded_at >= NOW() - ($1 * INTERVAL '1 minute')
	`, minutes)
}

// CountUpdates counts accepted location updates within the last minutes.
func (p *StatsRepo) CountUpdates(ctx context.Context, minutes int) (int64, error) {
	return p.count(ctx, "postgres.Stats.CountUpdates", `
		SELECT COUNT(*)
		FROM location_history
		WHERE recorded_at >= NOW() - ($1 * INTERVAL '1 minute')
	`, minutes)
}

func (p *StatsRepo) count(ctx context.Context, op, query string, minutes int) (int64, error) {
	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
