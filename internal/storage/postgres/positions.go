package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PositionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPositions(pool *pgxpool.Pool, logger *slog.Logger) *PositionRepo {
	return &PositionRepo{pool: pool, logger: logger}
}

// Upsert stores the latest position of a user; one row per user.
func (p *PositionRepo) Upsert(ctx context.Context, userID uuid.UUID, pt domain.Point, at time.Time) error {
	const op = "postgres.Position.Upsert"

	if err := pt.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// geography wants (lng, lat)
	const query = `
		INSERT INTO volunteer_positions (user_id, geo_point, updated_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET geo_point  = EXCLUDED.geo_point,
			updated_at = EXCLUDED.updated_at
	`

	_, err := p.pool.Exec(ctx, query, userID, pt.Lng, pt.Lat, at)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *PositionRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.VolunteerPosition, error) {
	const op = "postgres.Position.Get"

	const query = `
		SELECT p.user_id,
			   ST_Y(p.geo_point::geometry) AS lat,
			   ST_X(p.geo_point::geometry) AS lng,
			   p.updated_at,
			   u.connected_at
		FROM volunteer_positions p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`

	var vp domain.VolunteerPosition
	err := p.pool.QueryRow(ctx, query, userID).Scan(
		&vp.UserID, &vp.Point.Lat, &vp.Point.Lng, &vp.UpdatedAt, &vp.ConnectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &vp, nil
}

// ListWithUsers returns every user that has a known position.
func (p *PositionRepo) ListWithUsers(ctx context.Context) ([]domain.UserPosition, error) {
	const op = "postgres.Position.ListWithUsers"

	const query = `
		SELECT u.id, u.username, u.email, u.full_name, u.phone, u.role, u.created_at,
			   ST_Y(p.geo_point::geometry) AS lat,
			   ST_X(p.geo_point::geometry) AS lng,
			   p.updated_at,
			   u.connected_at
		FROM volunteer_positions p
		JOIN users u ON u.id = p.user_id
		ORDER BY u.username
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.UserPosition, 0, 16)
	for rows.Next() {
		var up domain.UserPosition
		if err := rows.Scan(
			&up.User.ID, &up.User.Username, &up.User.Email, &up.User.FullName, &up.User.Phone, &up.User.Role, &up.User.CreatedAt,
			&up.Position.Point.Lat, &up.Position.Point.Lng, &up.Position.UpdatedAt, &up.Position.ConnectedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		up.Position.UserID = up.User.ID
		out = append(out, up)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

const volunteersWithinQuery = `
	SELECT u.id, u.username, u.full_name, u.email, u.role,
		   ST_Y(p.geo_point::geometry) AS lat,
		   ST_X(p.geo_point::geometry) AS lng,
		   ST_Distance(p.geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) / 1000.0 AS distance_km
	FROM volunteer_positions p
	JOIN users u ON u.id = p.user_id
	WHERE u.role = 'VOLUNTEER'
	  AND ST_DWithin(p.geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3::float8 * 1000)
	  AND (NOT $4::boolean OR u.connected_at IS NOT NULL)
	ORDER BY distance_km
	LIMIT $5
`

// NearestVolunteer returns the closest VOLUNTEER within radiusKm, or nil
// when there is none. activeOnly restricts to volunteers with an open
// realtime connection.
func (p *PositionRepo) NearestVolunteer(ctx context.Context, pt domain.Point, radiusKm float64, activeOnly bool) (*domain.Candidate, error) {
	const op = "postgres.Position.NearestVolunteer"

	found, err := p.volunteersWithin(ctx, op, pt, radiusKm, activeOnly, 1)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// NearbyVolunteers lists volunteers within radiusKm ordered by distance.
func (p *PositionRepo) NearbyVolunteers(ctx context.Context, pt domain.Point, radiusKm float64, limit int) ([]domain.Candidate, error) {
	const op = "postgres.Position.NearbyVolunteers"

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return p.volunteersWithin(ctx, op, pt, radiusKm, false, limit)
}

func (p *PositionRepo) volunteersWithin(ctx context.Context, op string, pt domain.Point, radiusKm float64, activeOnly bool, limit int) ([]domain.Candidate, error) {
	if err := pt.Validate(); err != nil || radiusKm <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	rows, err := p.pool.Query(ctx, volunteersWithinQuery, pt.Lng, pt.Lat, radiusKm, activeOnly, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.Candidate, 0, limit)
	for rows.Next() {
		var c domain.Candidate
		var at domain.Point
		if err := rows.Scan(&c.UserID, &c.Username, &c.FullName, &c.Email, &c.Role, &at.Lat, &at.Lng, &c.DistanceKM); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		c.Point = &at
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
