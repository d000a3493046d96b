package workers

import (
	"context"
	"log/slog"
	"time"
)

// HistorySweeper prunes expired location history on a fixed interval. It
// reclaims rows of users that stopped pushing positions.
type HistorySweeper struct {
	pruner   Pruner
	interval time.Duration
	logger   *slog.Logger
}

func NewHistorySweeper(pruner Pruner, interval time.Duration, logger *slog.Logger) *HistorySweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &HistorySweeper{pruner: pruner, interval: interval, logger: logger}
}

func (w *HistorySweeper) Run(ctx context.Context) {
	w.logger.Info("historySweeper STARTED", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("historySweeper STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *HistorySweeper) sweep(ctx context.Context) {
	n, err := w.pruner.Prune(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Error("history sweep failed", slog.Any("error", err))
		}
		return
	}
	w.logger.Debug("history sweep done", slog.Int64("deleted", n))
}
