package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/metrics"
	"github.com/wamique00786/wesalvator/pkg/e"
)

const (
	maxDeliveryAttempts = 3
	popTimeout          = 5 * time.Second
)

// NotificationSender drains the notification queue and delivers each entry
// through a Deliverer guarded by a circuit breaker.
type NotificationSender struct {
	logger    *slog.Logger
	queue     NotificationSource
	deliverer Deliverer
	cb        *gobreaker.CircuitBreaker[struct{}]
	backoff   time.Duration
}

func NewNotificationSender(logger *slog.Logger, queue NotificationSource, deliverer Deliverer, backoff time.Duration) *NotificationSender {
	if backoff <= 0 {
		backoff = time.Second
	}
	name := "notify-" + deliverer.Channel()

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("notification circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &NotificationSender{
		logger:    logger,
		queue:     queue,
		deliverer: deliverer,
		cb:        cb,
		backoff:   backoff,
	}
}

func (s *NotificationSender) Run(ctx context.Context) {
	s.logger.Info("notificationSender STARTED", slog.String("channel", s.deliverer.Channel()))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notificationSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		n, err := s.queue.BRPop(ctx, popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrNotificationQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			sleepCtx(ctx, 500*time.Millisecond)
			continue
		}

		_ = s.Send(ctx, n)
	}
}

// Send delivers n with up to three attempts and linear backoff. An open
// breaker stops the retries.
func (s *NotificationSender) Send(ctx context.Context, n domain.Notification) error {
	channel := s.deliverer.Channel()
	l := s.logger.With(
		slog.String("channel", channel),
		slog.String("kind", string(n.Kind)),
		slog.String("report_id", n.ReportID.String()),
	)

	var err error
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		if ctx.Err() != nil {
			l.Info("stop retries due to context cancel")
			return ctx.Err()
		}

		_, err = s.cb.Execute(func() (struct{}, error) {
			return struct{}{}, s.deliverer.Deliver(ctx, n)
		})
		if err == nil {
			metrics.NotificationsDelivered.WithLabelValues(channel, "ok").Inc()
			l.Info("notification delivered", slog.Int("attempt", attempt))
			return nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.NotificationsDelivered.WithLabelValues(channel, "rejected").Inc()
			l.Warn("notification dropped, circuit open")
			return err
		}

		l.Warn("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		if attempt < maxDeliveryAttempts && !sleepCtx(ctx, time.Duration(attempt)*s.backoff) {
			return ctx.Err()
		}
	}

	metrics.NotificationsDelivered.WithLabelValues(channel, "failed").Inc()
	l.Error("notification given up", slog.Any("error", err))
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
