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

type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUsers(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

// Create inserts a user profile. Credentials live with the identity
// provider; this table only mirrors what the rescue flows need.
func (p *UserRepo) Create(ctx context.Context, u *domain.User) error {
	const op = "postgres.User.Create"

	if !u.Role.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO users (id, username, email, full_name, phone, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query, u.ID, u.Username, u.Email, u.FullName, u.Phone, u.Role, u.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *UserRepo) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "postgres.User.Get"

	const query = `
		SELECT id, username, email, full_name, phone, role, created_at
		FROM users
		WHERE id = $1
	`

	var u domain.User
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &u, nil
}

// FirstFallbackAdmin returns the first ADMIN or ORGANIZATION profile in
// insertion order, or nil when there is none.
func (p *UserRepo) FirstFallbackAdmin(ctx context.Context) (*domain.Candidate, error) {
	const op = "postgres.User.FirstFallbackAdmin"

	const query = `
		SELECT id, username, full_name, email, role
		FROM users
		WHERE role IN ('ADMIN', 'ORGANIZATION')
		ORDER BY created_at, id
		LIMIT 1
	`

	var c domain.Candidate
	err := p.pool.QueryRow(ctx, query).Scan(&c.UserID, &c.Username, &c.FullName, &c.Email, &c.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &c, nil
}

// SetConnected maintains the liveness field: a non-nil time marks an open
// realtime connection, nil clears it.
func (p *UserRepo) SetConnected(ctx context.Context, id uuid.UUID, at *time.Time) error {
	const op = "postgres.User.SetConnected"

	const query = `UPDATE users SET connected_at = $2 WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id, at)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// ResetConnected clears every liveness mark; used at startup because no
// connection survives a restart.
func (p *UserRepo) ResetConnected(ctx context.Context) (int64, error) {
	const op = "postgres.User.ResetConnected"

	cmd, err := p.pool.Exec(ctx, `UPDATE users SET connected_at = NULL WHERE connected_at IS NOT NULL`)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected(), nil
}
