package workers

import (
	"context"
	"time"

	"github.com/wamique00786/wesalvator/internal/domain"
)

//go:generate mockgen -source=workers.go -destination=mocks/mock.go

type NotificationSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.Notification, error)
}

// Deliverer hands a notification to one outbound channel.
type Deliverer interface {
	Channel() string
	Deliver(ctx context.Context, n domain.Notification) error
}

type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}
