package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/wamique00786/wesalvator/internal/domain"
)

// Notifier hands assignment notices to the delivery queue. Delivery itself
// happens in the notification worker.
type Notifier struct {
	queue  NotificationQueue
	logger *slog.Logger
}

func NewNotifier(queue NotificationQueue, logger *slog.Logger) *Notifier {
	return &Notifier{queue: queue, logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, kind domain.NotificationKind, to *domain.Candidate, r *domain.Report, reporter *domain.User) error {
	msg := domain.Notification{
		Kind:           kind,
		RecipientID:    to.UserID,
		RecipientName:  to.DisplayName(),
		RecipientEmail: to.Email,
		ReportID:       r.ID,
		Description:    r.Description,
		Priority:       r.Priority,
		Latitude:       r.Point.Lat,
		Longitude:      r.Point.Lng,
		CreatedAt:      time.Now().UTC(),
	}
	if reporter != nil {
		msg.ReporterName = reporter.DisplayName()
		msg.ReporterPhone = reporter.Phone
	}

	if err := n.queue.Enqueue(ctx, msg); err != nil {
		n.logger.Error("enqueue notification failed",
			slog.String("kind", string(kind)),
			slog.String("report_id", r.ID.String()),
			slog.Any("error", err),
		)
		return err
	}
	n.logger.Info("notification enqueued",
		slog.String("kind", string(kind)),
		slog.String("recipient_id", to.UserID.String()),
		slog.String("report_id", r.ID.String()),
	)
	return nil
}
