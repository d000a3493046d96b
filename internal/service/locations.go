package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/pkg/e"
	"github.com/wamique00786/wesalvator/pkg/validator"
)

const nearbyLimit = 50

type locationService struct {
	positions PositionRepository
	users     UserRepository
	history   HistoryLedger
	snapshots SnapshotCache
	live      LiveSource
	cfg       config.HistoryConfig
	logger    *slog.Logger
}

func NewLocationService(
	positions PositionRepository,
	users UserRepository,
	history HistoryLedger,
	snapshots SnapshotCache,
	live LiveSource,
	cfg config.HistoryConfig,
	logger *slog.Logger,
) LocationService {
	return &locationService{
		positions: positions,
		users:     users,
		history:   history,
		snapshots: snapshots,
		live:      live,
		cfg:       cfg,
		logger:    logger,
	}
}

// Push stores the caller's position, appends it to the history and, when
// configured, prunes expired history in the same call.
func (s *locationService) Push(ctx context.Context, p auth.Principal, pt domain.Point) (domain.VolunteerPosition, error) {
	if err := pt.Validate(); err != nil {
		return domain.VolunteerPosition{}, err
	}
	at := time.Now().UTC()

	if err := s.positions.Upsert(ctx, p.UserID, pt, at); err != nil {
		return domain.VolunteerPosition{}, err
	}
	if err := s.history.Record(ctx, p.UserID, pt, at, p.Role); err != nil {
		return domain.VolunteerPosition{}, err
	}
	if s.cfg.PruneOnWrite {
		if _, err := s.history.Prune(ctx); err != nil {
			s.logger.Warn("prune on write failed", slog.String("user_id", p.UserID.String()), slog.Any("error", err))
		}
	}

	s.logger.Debug("location stored",
		slog.String("user_id", p.UserID.String()),
		slog.Float64("lat", pt.Lat),
		slog.Float64("lng", pt.Lng),
	)
	return domain.VolunteerPosition{UserID: p.UserID, Point: pt, UpdatedAt: at}, nil
}

func (s *locationService) Mine(ctx context.Context, p auth.Principal) (domain.MyLocationResponse, error) {
	var resp domain.MyLocationResponse

	pos, err := s.positions.Get(ctx, p.UserID)
	switch {
	case errors.Is(err, e.ErrNotFound):
	case err != nil:
		return resp, err
	default:
		lat, lng, at := pos.Point.Lat, pos.Point.Lng, pos.UpdatedAt
		resp.Latitude, resp.Longitude, resp.LastUpdate = &lat, &lng, &at
	}

	recent, err := s.history.Recent(ctx, p.UserID, s.cfg.RecentLimit)
	if err != nil {
		return resp, err
	}
	resp.LocationHistory = domain.HistoryDTOs(recent)
	return resp, nil
}

// AllUsers lists every user with a known position and their history over
// the dashboard window.
func (s *locationService) AllUsers(ctx context.Context) (domain.UserLocationsResponse, error) {
	list, err := s.positions.ListWithUsers(ctx)
	if err != nil {
		return domain.UserLocationsResponse{}, err
	}

	window := s.cfg.DashboardWindow
	if window <= 0 {
		window = time.Hour
	}
	byUser, err := s.history.Window(ctx, window)
	if err != nil {
		return domain.UserLocationsResponse{}, err
	}

	users := make([]domain.UserLocationDTO, 0, len(list))
	for _, up := range list {
		entries := byUser[up.User.ID]
		users = append(users, domain.UserLocationDTO{
			ID:       up.User.ID,
			Username: up.User.Username,
			Phone:    up.User.Phone,
			Role:     up.User.Role,
			Location: domain.LocationDTO{
				Latitude:   up.Position.Point.Lat,
				Longitude:  up.Position.Point.Lng,
				LastUpdate: up.Position.UpdatedAt,
			},
			Online:          up.Position.ConnectedAt != nil,
			TrailKM:         trailKM(entries),
			LocationHistory: domain.HistoryDTOs(entries),
		})
	}
	return domain.UserLocationsResponse{Users: users}, nil
}

func (s *locationService) NearbyVolunteers(ctx context.Context, req domain.NearbyVolunteersRequest) ([]domain.Candidate, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	out, err := s.positions.NearbyVolunteers(ctx, domain.Point{Lat: req.Lat, Lng: req.Lng}, req.RadiusKM, nearbyLimit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Candidate{}
	}
	return out, nil
}

// LiveSnapshot prefers the cached broadcast and falls back to the local
// registry.
func (s *locationService) LiveSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if s.snapshots != nil {
		snap, err := s.snapshots.Get(ctx)
		if err != nil {
			s.logger.Warn("snapshot cache read failed", slog.Any("error", err))
		} else if snap != nil {
			return *snap, nil
		}
	}
	if s.live != nil {
		return s.live.Snapshot(), nil
	}
	return domain.Snapshot{Volunteers: []domain.LiveVolunteer{}}, nil
}

func (s *locationService) Connected(ctx context.Context, p auth.Principal) error {
	now := time.Now().UTC()
	return s.users.SetConnected(ctx, p.UserID, &now)
}

func (s *locationService) Disconnected(ctx context.Context, p auth.Principal) error {
	return s.users.SetConnected(ctx, p.UserID, nil)
}

// ResetPresence clears liveness left over from a previous process.
func (s *locationService) ResetPresence(ctx context.Context) error {
	n, err := s.users.ResetConnected(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("stale presence cleared", slog.Int64("users", n))
	}
	return nil
}
