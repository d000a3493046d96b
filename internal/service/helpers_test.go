package service_test

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func ptr[T any](v T) *T { return &v }

var pune = domain.Point{Lat: 18.5204, Lng: 73.8567}

func volunteer(distance float64) *domain.Candidate {
	return &domain.Candidate{
		UserID:     uuid.New(),
		Username:   "asha",
		FullName:   "Asha Patil",
		Email:      "asha@example.org",
		Role:       domain.RoleVolunteer,
		DistanceKM: distance,
	}
}

func admin() *domain.Candidate {
	return &domain.Candidate{UserID: uuid.New(), Username: "shelter", Email: "ops@example.org", Role: domain.RoleOrganization}
}

func principal(role domain.Role) auth.Principal {
	return auth.Principal{UserID: uuid.New(), Username: "caller", Role: role}
}

func historyConfig() config.HistoryConfig {
	return config.HistoryConfig{
		Retention:       24 * time.Hour,
		PruneOnWrite:    true,
		RecentLimit:     10,
		DashboardWindow: time.Hour,
	}
}
