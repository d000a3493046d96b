package realtime

import (
	"context"

	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/domain"
)

//go:generate mockgen -source=realtime.go -destination=mocks/mock.go

// LocationPusher persists pushed positions and tracks presence.
type LocationPusher interface {
	Push(ctx context.Context, p auth.Principal, pt domain.Point) (domain.VolunteerPosition, error)
	Connected(ctx context.Context, p auth.Principal) error
	Disconnected(ctx context.Context, p auth.Principal) error
}

type TokenParser interface {
	Parse(token string) (auth.Principal, error)
}

type SnapshotStore interface {
	Set(ctx context.Context, snap domain.Snapshot) error
}
