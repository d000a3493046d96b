package system_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wamique00786/wesalvator/internal/api/handlers/http/system"
)

type pinger func(ctx context.Context) error

func (p pinger) Ping(ctx context.Context) error { return p(ctx) }

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSystemHealth(t *testing.T) {
	h := system.NewHandler(newTestLogger(), nil)
	rr := httptest.NewRecorder()
	h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Body.String())
	}
}

func TestSystemReady(t *testing.T) {
	up := pinger(func(context.Context) error { return nil })
	down := pinger(func(context.Context) error { return errors.New("refused") })

	rr := httptest.NewRecorder()
	system.NewHandler(newTestLogger(), map[string]system.Pinger{"postgres": up, "redis": up}).
		SystemReady(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	system.NewHandler(newTestLogger(), map[string]system.Pinger{"postgres": up, "redis": down}).
		SystemReady(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rr.Code)
	}
}
