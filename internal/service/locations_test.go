package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/service"
	mock_service "github.com/wamique00786/wesalvator/internal/service/mocks"
	"github.com/wamique00786/wesalvator/pkg/e"
)

type locationDeps struct {
	positions *mock_service.MockPositionRepository
	users     *mock_service.MockUserRepository
	history   *mock_service.MockHistoryLedger
	snapshots *mock_service.MockSnapshotCache
	live      *mock_service.MockLiveSource
}

func newLocationService(ctrl *gomock.Controller, cfg config.HistoryConfig) (service.LocationService, locationDeps) {
	d := locationDeps{
		positions: mock_service.NewMockPositionRepository(ctrl),
		users:     mock_service.NewMockUserRepository(ctrl),
		history:   mock_service.NewMockHistoryLedger(ctrl),
		snapshots: mock_service.NewMockSnapshotCache(ctrl),
		live:      mock_service.NewMockLiveSource(ctrl),
	}
	svc := service.NewLocationService(d.positions, d.users, d.history, d.snapshots, d.live, cfg, newTestLogger())
	return svc, d
}

func TestLocationService_Push_StoresRecordsAndPrunes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, d := newLocationService(ctrl, historyConfig())
	p := principal(domain.RoleVolunteer)

	var stamped time.Time
	gomock.InOrder(
		d.positions.EXPECT().
			Upsert(gomock.Any(), p.UserID, pune, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ domain.Point, at time.Time) error {
				stamped = at
				return nil
			}),
		d.history.EXPECT().
			Record(gomock.Any(), p.UserID, pune, gomock.Any(), domain.RoleVolunteer).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ domain.Point, at time.Time, _ domain.Role) error {
				if !at.Equal(stamped) {
					t.Fatalf("history time %v differs from position time %v", at, stamped)
				}
				return nil
			}),
		d.history.EXPECT().Prune(gomock.Any()).Return(int64(3), nil),
	)

	pos, err := svc.Push(context.Background(), p, pune)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pos.UserID != p.UserID || pos.Point != pune || !pos.UpdatedAt.Equal(stamped) {
		t.Fatalf("unexpected position %+v", pos)
	}
}

func TestLocationService_Push_PruneDisabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cfg := historyConfig()
	cfg.PruneOnWrite = false
	svc, d := newLocationService(ctrl, cfg)
	p := principal(domain.RoleVolunteer)

	d.positions.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.history.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.history.EXPECT().Prune(gomock.Any()).Times(0)

	if _, err := svc.Push(context.Background(), p, pune); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLocationService_Push_PruneFailureIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, d := newLocationService(ctrl, historyConfig())

	d.positions.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.history.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.history.EXPECT().Prune(gomock.Any()).Return(int64(0), errors.New("db down"))

	if _, err := svc.Push(context.Background(), principal(domain.RoleVolunteer), pune); err != nil {
		t.Fatalf("prune failure must not fail the push: %v", err)
	}
}

func TestLocationService_Push_RepeatedPointsAllRecorded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cfg := historyConfig()
	cfg.PruneOnWrite = false
	svc, d := newLocationService(ctrl, cfg)
	p := principal(domain.RoleVolunteer)

	d.positions.EXPECT().Upsert(gomock.Any(), p.UserID, pune, gomock.Any()).Return(nil).Times(2)
	d.history.EXPECT().Record(gomock.Any(), p.UserID, pune, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		if _, err := svc.Push(context.Background(), p, pune); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
}

func TestLocationService_Push_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, _ := newLocationService(ctrl, historyConfig())

	for _, pt := range []domain.Point{{Lat: 91, Lng: 0}, {Lat: 0, Lng: -180.5}} {
		_, err := svc.Push(context.Background(), principal(domain.RoleVolunteer), pt)
		if !errors.Is(err, e.ErrInvalidCoordinates) {
			t.Fatalf("%+v: expected ErrInvalidCoordinates, got %v", pt, err)
		}
	}
}

func TestLocationService_Mine(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, d := newLocationService(ctrl, historyConfig())
	p := principal(domain.RoleVolunteer)
	now := time.Now().UTC()

	d.positions.EXPECT().Get(gomock.Any(), p.UserID).Return(&domain.VolunteerPosition{UserID: p.UserID, Point: pune, UpdatedAt: now}, nil)
	d.history.EXPECT().Recent(gomock.Any(), p.UserID, 10).Return([]domain.LocationHistoryEntry{
		{UserID: p.UserID, Point: pune, RecordedAt: now, Role: domain.RoleVolunteer},
	}, nil)

	resp, err := svc.Mine(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Latitude == nil || *resp.Latitude != pune.Lat || *resp.Longitude != pune.Lng {
		t.Fatalf("unexpected position %+v", resp)
	}
	if len(resp.LocationHistory) != 1 || resp.LocationHistory[0].Role != domain.RoleVolunteer {
		t.Fatalf("unexpected history %+v", resp.LocationHistory)
	}
}

func TestLocationService_Mine_NoPositionYet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, d := newLocationService(ctrl, historyConfig())
	p := principal(domain.RoleUser)

	d.positions.EXPECT().Get(gomock.Any(), p.UserID).Return(nil, e.ErrNotFound)
	d.history.EXPECT().Recent(gomock.Any(), p.UserID, 10).Return(nil, nil)

	resp, err := svc.Mine(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Latitude != nil || resp.Longitude != nil || resp.LastUpdate != nil {
		t.Fatalf("expected empty position, got %+v", resp)
	}
	if resp.LocationHistory == nil || len(resp.LocationHistory) != 0 {
		t.Fatalf("expected empty history slice, got %v", resp.LocationHistory)
	}
}

func TestLocationService_AllUsers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, d := newLocationService(ctrl, historyConfig())
	now := time.Now().UTC()

	online := domain.User{ID: uuid.New(), Username: "asha", Role: domain.RoleVolunteer, Phone: "+91"}
	offline := domain.User{ID: uuid.New(), Username: "ravi", Role: domain.RoleUser}
	north := domain.Point{Lat: pune.Lat + 0.01, Lng: pune.Lng}

	d.positions.EXPECT().ListWithUsers(gomock.Any()).Return([]domain.UserPosition{
		{User: online, Position: domain.VolunteerPosition{UserID: online.ID, Point: north, UpdatedAt: now, ConnectedAt: &now}},
		{User: offline, Position: domain.VolunteerPosition{UserID: offline.ID, Point: pune, UpdatedAt: now}},
	}, nil)
	d.history.EXPECT().Window(gomock.Any(), time.Hour).Return(map[uuid.UUID][]domain.LocationHistoryEntry{
		online.ID: {
			{Point: north, RecordedAt: now},
			{Point: pune, RecordedAt: now.Add(-time.Minute)},
		},
	}, nil)

	resp, err := svc.AllUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Users))
	}

	a, b := resp.Users[0], resp.Users[1]
	if !a.Online || b.Online {
		t.Fatalf("unexpected online flags %v %v", a.Online, b.Online)
	}
	if a.Location.Latitude != north.Lat || a.Phone != "+91" {
		t.Fatalf("unexpected dto %+v", a)
	}
	if len(a.LocationHistory) != 2 || a.TrailKM < 1.0 || a.TrailKM > 1.2 {
		t.Fatalf("unexpected trail %v km over %d points", a.TrailKM, len(a.LocationHistory))
	}
	if b.TrailKM != 0 || len(b.LocationHistory) != 0 {
		t.Fatalf("unexpected trail for offline user %+v", b)
	}
}

func TestLocationService_NearbyVolunteers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, d := newLocationService(ctrl, historyConfig())

	d.positions.EXPECT().NearbyVolunteers(gomock.Any(), pune, 5.0, 50).Return(nil, nil)

	got, err := svc.NearbyVolunteers(context.Background(), domain.NearbyVolunteersRequest{Lat: pune.Lat, Lng: pune.Lng, RadiusKM: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}

	_, err = svc.NearbyVolunteers(context.Background(), domain.NearbyVolunteersRequest{Lat: 200, Lng: pune.Lng, RadiusKM: 5})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLocationService_LiveSnapshot(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	cached := &domain.Snapshot{Volunteers: []domain.LiveVolunteer{{ID: id, Latitude: 1, Longitude: 2}}}
	local := domain.Snapshot{Volunteers: []domain.LiveVolunteer{}}

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, d := newLocationService(ctrl, historyConfig())
		d.snapshots.EXPECT().Get(gomock.Any()).Return(cached, nil)
		d.live.EXPECT().Snapshot().Times(0)

		snap, err := svc.LiveSnapshot(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, ok := snap.Find(id); !ok {
			t.Fatalf("expected cached volunteer in %+v", snap)
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, d := newLocationService(ctrl, historyConfig())
		d.snapshots.EXPECT().Get(gomock.Any()).Return(nil, nil)
		d.live.EXPECT().Snapshot().Return(local)

		snap, _ := svc.LiveSnapshot(context.Background())
		if snap.Volunteers == nil || len(snap.Volunteers) != 0 {
			t.Fatalf("unexpected snapshot %+v", snap)
		}
	})

	t.Run("cache error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, d := newLocationService(ctrl, historyConfig())
		d.snapshots.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
		d.live.EXPECT().Snapshot().Return(local)

		if _, err := svc.LiveSnapshot(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestLocationService_Presence(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, d := newLocationService(ctrl, historyConfig())
	p := principal(domain.RoleVolunteer)

	gomock.InOrder(
		d.users.EXPECT().
			SetConnected(gomock.Any(), p.UserID, gomock.Not(gomock.Nil())).
			Return(nil),
		d.users.EXPECT().
			SetConnected(gomock.Any(), p.UserID, gomock.Nil()).
			Return(nil),
		d.users.EXPECT().ResetConnected(gomock.Any()).Return(int64(2), nil),
	)

	if err := svc.Connected(context.Background(), p); err != nil {
		t.Fatalf("Connected: %v", err)
	}
	if err := svc.Disconnected(context.Background(), p); err != nil {
		t.Fatalf("Disconnected: %v", err)
	}
	if err := svc.ResetPresence(context.Background()); err != nil {
		t.Fatalf("ResetPresence: %v", err)
	}
}
