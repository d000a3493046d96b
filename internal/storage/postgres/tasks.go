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

type TaskRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTasks(pool *pgxpool.Pool, logger *slog.Logger) *TaskRepo {
	return &TaskRepo{pool: pool, logger: logger}
}

func (p *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	const op = "postgres.Task.Create"

	if t.AssigneeID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO tasks (id, title, description, assignee_id, report_id, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
	`

	_, err := p.pool.Exec(ctx, query, t.ID, t.Title, t.Description, t.AssigneeID, t.ReportID, t.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ListByAssignee returns open or completed tasks of one user, newest first.
func (p *TaskRepo) ListByAssignee(ctx context.Context, assigneeID uuid.UUID, completed bool) ([]*domain.Task, error) {
	const op = "postgres.Task.ListByAssignee"

	const query = `
		SELECT id, title, description, assignee_id, report_id, completed, created_at, completed_at
		FROM tasks
		WHERE assignee_id = $1 AND completed = $2
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, assigneeID, completed)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0, 8)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.AssigneeID, &t.ReportID, &t.Completed, &t.CreatedAt, &t.CompletedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return tasks, nil
}

// Complete marks the caller's task done and closes the linked report, if
// any. Completing an already completed task keeps the first completion time.
func (p *TaskRepo) Complete(ctx context.Context, taskID, assigneeID uuid.UUID, at time.Time) (*domain.Task, error) {
	const op = "postgres.Task.Complete"

	var t domain.Task
	err := runTx(ctx, p.pool, p.logger, op, func(tx pgx.Tx) error {
		const update = `
			UPDATE tasks
			SET completed = true,
				completed_at = COALESCE(completed_at, $3)
			WHERE id = $1 AND assignee_id = $2
			RETURNING id, title, description, assignee_id, report_id, completed, created_at, completed_at
		`
		err := tx.QueryRow(ctx, update, taskID, assigneeID, at).Scan(
			&t.ID, &t.Title, &t.Description, &t.AssigneeID, &t.ReportID, &t.Completed, &t.CreatedAt, &t.CompletedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%s: %w", op, e.ErrNotFound)
			}
			p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", taskID.String()))
			return e.WrapError(ctx, op, err)
		}

		if t.ReportID == nil {
			return nil
		}

		const closeReport = `
			UPDATE reports
			SET status = 'COMPLETED', updated_at = $2
			WHERE id = $1 AND status IN ('ASSIGNED', 'ADMIN_REVIEW')
		`
		if _, err := tx.Exec(ctx, closeReport, *t.ReportID, at); err != nil {
			p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("report_id", t.ReportID.String()))
			return e.WrapError(ctx, op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
