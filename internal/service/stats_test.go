package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/service"
	mock_service "github.com/wamique00786/wesalvator/internal/service/mocks"
	"github.com/wamique00786/wesalvator/pkg/e"
)

func TestStatsService_GetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportRepository(ctrl)
	live := mock_service.NewMockLiveSource(ctrl)
	svc := service.NewStatsService(repo, reports, live)

	repo.EXPECT().CountActiveUsers(gomock.Any(), 60).Return(int64(4), nil)
	repo.EXPECT().CountUpdates(gomock.Any(), 60).Return(int64(42), nil)
	reports.EXPECT().CountByStatus(gomock.Any(), domain.ReportPending).Return(int64(2), nil)
	live.EXPECT().OnlineVolunteers().Return(3)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := domain.ActivityStats{Minutes: 60, ActiveUsers: 4, LocationUpdates: 42, VolunteersOnline: 3, PendingReports: 2}
	if *got != want {
		t.Fatalf("got %+v, want %+v", *got, want)
	}
}

func TestStatsService_GetStats_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := service.NewStatsService(mock_service.NewMockStatsRepository(ctrl), mock_service.NewMockReportRepository(ctrl), nil)

	for _, minutes := range []int{-5, 1441} {
		_, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: minutes})
		if !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("minutes=%d: expected ErrInvalidInput, got %v", minutes, err)
		}
	}
}

func TestStatsService_GetStats_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewStatsService(repo, mock_service.NewMockReportRepository(ctrl), nil)

	boom := errors.New("db down")
	repo.EXPECT().CountActiveUsers(gomock.Any(), 15).Return(int64(0), boom)

	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 15}); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}
