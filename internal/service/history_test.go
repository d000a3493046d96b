package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/service"
	mock_service "github.com/wamique00786/wesalvator/internal/service/mocks"
)

func TestHistoryLedger_Record(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockHistoryRepository(ctrl)
	h := service.NewHistoryLedger(repo, historyConfig(), newTestLogger())

	userID := uuid.New()
	at := time.Now().UTC()

	repo.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.LocationHistoryEntry) error {
			if entry.UserID != userID || entry.Point != pune || !entry.RecordedAt.Equal(at) || entry.Role != domain.RoleVolunteer {
				t.Fatalf("unexpected entry %+v", entry)
			}
			return nil
		})

	if err := h.Record(context.Background(), userID, pune, at, domain.RoleVolunteer); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHistoryLedger_Prune_UsesRetentionCutoff(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockHistoryRepository(ctrl)
	h := service.NewHistoryLedger(repo, historyConfig(), newTestLogger())

	repo.EXPECT().
		Prune(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, olderThan time.Time) (int64, error) {
			want := time.Now().UTC().Add(-24 * time.Hour)
			if d := want.Sub(olderThan); d < 0 || d > 5*time.Second {
				t.Fatalf("cutoff %v too far from %v", olderThan, want)
			}
			return 7, nil
		})

	n, err := h.Prune(context.Background())
	if err != nil || n != 7 {
		t.Fatalf("unexpected result n=%d err=%v", n, err)
	}
}

func TestHistoryLedger_Prune_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockHistoryRepository(ctrl)
	h := service.NewHistoryLedger(repo, historyConfig(), newTestLogger())

	boom := errors.New("db down")
	repo.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	if _, err := h.Prune(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}

func TestHistoryLedger_Recent_DefaultLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockHistoryRepository(ctrl)
	h := service.NewHistoryLedger(repo, historyConfig(), newTestLogger())
	userID := uuid.New()

	repo.EXPECT().Recent(gomock.Any(), userID, 10).Return(nil, nil)
	repo.EXPECT().Recent(gomock.Any(), userID, 3).Return(nil, nil)

	if _, err := h.Recent(context.Background(), userID, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := h.Recent(context.Background(), userID, 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHistoryLedger_Trail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockHistoryRepository(ctrl)
	h := service.NewHistoryLedger(repo, historyConfig(), newTestLogger())
	userID := uuid.New()
	now := time.Now().UTC()

	a := pune
	b := domain.Point{Lat: pune.Lat + 0.01, Lng: pune.Lng}
	c := domain.Point{Lat: pune.Lat + 0.01, Lng: pune.Lng + 0.01}

	// newest first
	repo.EXPECT().
		Since(gomock.Any(), userID, gomock.Any()).
		Return([]domain.LocationHistoryEntry{
			{Point: c, RecordedAt: now},
			{Point: b, RecordedAt: now.Add(-time.Minute)},
			{Point: a, RecordedAt: now.Add(-2 * time.Minute)},
		}, nil)

	entries, km, err := h.Trail(context.Background(), userID, time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := a.DistanceKM(b) + b.DistanceKM(c)
	if len(entries) != 3 || math.Abs(km-want) > 1e-9 {
		t.Fatalf("got %v km over %d entries, want %v", km, len(entries), want)
	}
}
