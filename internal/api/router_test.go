package api_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/internal/api"
	"github.com/wamique00786/wesalvator/internal/api/handlers/http/admin"
	mock_admin "github.com/wamique00786/wesalvator/internal/api/handlers/http/admin/mocks"
	"github.com/wamique00786/wesalvator/internal/api/handlers/http/public"
	mock_public "github.com/wamique00786/wesalvator/internal/api/handlers/http/public/mocks"
	"github.com/wamique00786/wesalvator/internal/api/handlers/http/system"
	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type routerEnv struct {
	handler http.Handler
	tokens  *auth.Manager
	stats   *mock_admin.MockStatsGetter
	tasks   *mock_public.MockTasks
}

func newRouter(t *testing.T) routerEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	tokens, err := auth.NewManager("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	stats := mock_admin.NewMockStatsGetter(ctrl)
	tasks := mock_public.NewMockTasks(ctrl)

	adminH := admin.NewHandler(newTestLogger(), mock_admin.NewMockTaskCreator(ctrl), stats, mock_admin.NewMockHistoryPruner(ctrl))
	publicH := public.NewHandler(newTestLogger(), mock_public.NewMockReports(ctrl), mock_public.NewMockLocations(ctrl), tasks, 1<<20)
	systemH := system.NewHandler(newTestLogger(), nil)

	cfg := &config.Config{Http: config.HttpConfig{CORSOrigins: []string{"*"}}}
	r := api.InitRouter(ctx, cfg, adminH, publicH, systemH, api.Deps{Tokens: tokens}, newTestLogger())

	return routerEnv{handler: r, tokens: tokens, stats: stats, tasks: tasks}
}

func (e routerEnv) do(t *testing.T, method, path string, role domain.Role) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.1:5555"
	if role != "" {
		token, err := e.tokens.Issue(auth.Principal{UserID: uuid.New(), Username: "u", Role: role})
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_PublicEndpoints(t *testing.T) {
	e := newRouter(t)

	if rr := e.do(t, http.MethodGet, "/api/v1/health", ""); rr.Code != http.StatusOK {
		t.Fatalf("health: got %d", rr.Code)
	}
	if rr := e.do(t, http.MethodGet, "/metrics", ""); rr.Code != http.StatusOK {
		t.Fatalf("metrics: got %d", rr.Code)
	}
}

func TestRouter_AuthAndRoles(t *testing.T) {
	e := newRouter(t)

	e.stats.EXPECT().GetStats(gomock.Any(), gomock.Any()).Return(&domain.ActivityStats{Minutes: 60}, nil)
	e.tasks.EXPECT().Mine(gomock.Any(), gomock.Any()).Return(domain.TaskListResponse{}, nil)

	cases := []struct {
		name   string
		method string
		path   string
		role   domain.Role
		want   int
	}{
		{"anonymous reports", http.MethodGet, "/api/v1/reports/mine", "", http.StatusUnauthorized},
		{"user on admin", http.MethodGet, "/api/v1/admin/stats", domain.RoleUser, http.StatusForbidden},
		{"volunteer on admin", http.MethodGet, "/api/v1/admin/stats", domain.RoleVolunteer, http.StatusForbidden},
		{"admin stats", http.MethodGet, "/api/v1/admin/stats", domain.RoleAdmin, http.StatusOK},
		{"user on tasks", http.MethodGet, "/api/v1/tasks", domain.RoleUser, http.StatusForbidden},
		{"volunteer tasks", http.MethodGet, "/api/v1/tasks", domain.RoleVolunteer, http.StatusOK},
	}

	for _, tc := range cases {
		if rr := e.do(t, tc.method, tc.path, tc.role); rr.Code != tc.want {
			t.Fatalf("%s: got %d, want %d, body=%s", tc.name, rr.Code, tc.want, rr.Body.String())
		}
	}
}
