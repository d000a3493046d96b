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

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReports(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `
	id, reporter_id, description, photo_path,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	status, priority, assignee_id, created_at, updated_at
`

func scanReport(row pgx.Row) (*domain.Report, error) {
	var r domain.Report
	err := row.Scan(
		&r.ID,
		&r.ReporterID,
		&r.Description,
		&r.PhotoPath,
		&r.Point.Lat,
		&r.Point.Lng,
		&r.Status,
		&r.Priority,
		&r.AssigneeID,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *ReportRepo) Create(ctx context.Context, r *domain.Report) error {
	const op = "postgres.Report.Create"

	if err := r.Point.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.UpdatedAt = r.CreatedAt
	if r.Status == "" {
		r.Status = domain.ReportPending
	}
	if r.Priority == "" {
		r.Priority = domain.PriorityMedium
	}

	const query = `
		INSERT INTO reports (id, reporter_id, description, photo_path, geo_point, status, priority, assignee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography, $7, $8, $9, $10, $11)
	`

	_, err := p.pool.Exec(ctx, query,
		r.ID,
		r.ReporterID,
		r.Description,
		r.PhotoPath,
		r.Point.Lng,
		r.Point.Lat,
		r.Status,
		r.Priority,
		r.AssigneeID,
		r.CreatedAt,
		r.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	r, err := scanReport(p.pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return r, nil
}

// List pages through all reports, newest first.
func (p *ReportRepo) List(ctx context.Context, page, limit int) ([]*domain.Report, int64, error) {
	const op = "postgres.Report.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx,
		`SELECT `+reportColumns+` FROM reports ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	reports, err := p.collect(ctx, op, rows)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ListByReporter returns the newest reports filed by one user.
func (p *ReportRepo) ListByReporter(ctx context.Context, reporterID uuid.UUID, limit int) ([]*domain.Report, error) {
	const op = "postgres.Report.ListByReporter"

	if limit <= 0 || limit > 100 {
		limit = 5
	}

	rows, err := p.pool.Query(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE reporter_id = $1 ORDER BY created_at DESC, id LIMIT $2`,
		reporterID, limit,
	)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return p.collect(ctx, op, rows)
}

// AssignToVolunteer moves a PENDING report to ASSIGNED and creates the
// rescue task for the volunteer in the same transaction.
func (p *ReportRepo) AssignToVolunteer(ctx context.Context, reportID, volunteerID uuid.UUID, task *domain.Task) error {
	const op = "postgres.Report.AssignToVolunteer"

	if task == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	task.AssigneeID = volunteerID
	task.ReportID = &reportID

	return p.inTx(ctx, op, func(tx pgx.Tx) error {
		if err := p.transition(ctx, tx, op, reportID, volunteerID, domain.ReportAssigned, task.CreatedAt); err != nil {
			return err
		}

		const insertTask = `
			INSERT INTO tasks (id, title, description, assignee_id, report_id, completed, created_at)
			VALUES ($1, $2, $3, $4, $5, false, $6)
		`
		if _, err := tx.Exec(ctx, insertTask, task.ID, task.Title, task.Description, task.AssigneeID, task.ReportID, task.CreatedAt); err != nil {
			p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		return nil
	})
}

// AssignToAdmin moves a PENDING report to ADMIN_REVIEW with the admin as assignee.
func (p *ReportRepo) AssignToAdmin(ctx context.Context, reportID, adminID uuid.UUID) error {
	const op = "postgres.Report.AssignToAdmin"

	return p.inTx(ctx, op, func(tx pgx.Tx) error {
		return p.transition(ctx, tx, op, reportID, adminID, domain.ReportAdminReview, time.Now().UTC())
	})
}

func (p *ReportRepo) transition(ctx context.Context, tx pgx.Tx, op string, reportID, assigneeID uuid.UUID, next domain.ReportStatus, at time.Time) error {
	var current domain.ReportStatus
	err := tx.QueryRow(ctx, `SELECT status FROM reports WHERE id = $1 FOR UPDATE`, reportID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", reportID.String()))
		return e.WrapError(ctx, op, err)
	}
	if current != domain.ReportPending || !current.CanTransitionTo(next) {
		return fmt.Errorf("%s: report is %s: %w", op, current, e.ErrConflict)
	}

	const update = `UPDATE reports SET status = $2, assignee_id = $3, updated_at = $4 WHERE id = $1`
	if _, err := tx.Exec(ctx, update, reportID, next, assigneeID, at); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", reportID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// CountByStatus counts reports currently in the given status.
func (p *ReportRepo) CountByStatus(ctx context.Context, status domain.ReportStatus) (int64, error) {
	const op = "postgres.Report.CountByStatus"

	var cnt int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE status = $1`, status).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}

func (p *ReportRepo) collect(ctx context.Context, op string, rows pgx.Rows) ([]*domain.Report, error) {
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return reports, nil
}

func (p *ReportRepo) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	return runTx(ctx, p.pool, p.logger, op, fn)
}

func runTx(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, op string, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
