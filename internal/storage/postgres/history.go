package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHistory(pool *pgxpool.Pool, logger *slog.Logger) *HistoryRepo {
	return &HistoryRepo{pool: pool, logger: logger}
}

func (p *HistoryRepo) Record(ctx context.Context, entry *domain.LocationHistoryEntry) error {
	const op = "postgres.History.Record"

	if entry == nil || entry.UserID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if err := entry.Point.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO location_history (id, user_id, geo_point, recorded_at, role)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Point.Lng,
		entry.Point.Lat,
		entry.RecordedAt,
		entry.Role,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", entry.UserID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Prune deletes every entry recorded strictly before olderThan and returns
// how many rows went away.
func (p *HistoryRepo) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	const op = "postgres.History.Prune"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM location_history WHERE recorded_at < $1`, olderThan)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected(), nil
}

// Recent returns up to limit entries of one user, newest first.
func (p *HistoryRepo) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LocationHistoryEntry, error) {
	const op = "postgres.History.Recent"

	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT id, user_id,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   recorded_at, role
		FROM location_history
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, userID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return p.collect(ctx, op, rows)
}

// Since returns the entries of one user recorded at or after since, newest first.
func (p *HistoryRepo) Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.LocationHistoryEntry, error) {
	const op = "postgres.History.Since"

	const query = `
		SELECT id, user_id,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   recorded_at, role
		FROM location_history
		WHERE user_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at DESC
	`

	rows, err := p.pool.Query(ctx, query, userID, since)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return p.collect(ctx, op, rows)
}

// SinceAll is Since for every user at once, grouped by user id.
func (p *HistoryRepo) SinceAll(ctx context.Context, since time.Time) (map[uuid.UUID][]domain.LocationHistoryEntry, error) {
	const op = "postgres.History.SinceAll"

	const query = `
		SELECT id, user_id,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   recorded_at, role
		FROM location_history
		WHERE recorded_at >= $1
		ORDER BY user_id, recorded_at DESC
	`

	rows, err := p.pool.Query(ctx, query, since)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	entries, err := p.collect(ctx, op, rows)
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]domain.LocationHistoryEntry)
	for _, h := range entries {
		out[h.UserID] = append(out[h.UserID], h)
	}
	return out, nil
}

func (p *HistoryRepo) collect(ctx context.Context, op string, rows pgx.Rows) ([]domain.LocationHistoryEntry, error) {
	defer rows.Close()

	out := make([]domain.LocationHistoryEntry, 0, 16)
	for rows.Next() {
		var h domain.LocationHistoryEntry
		if err := rows.Scan(&h.ID, &h.UserID, &h.Point.Lat, &h.Point.Lng, &h.RecordedAt, &h.Role); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
