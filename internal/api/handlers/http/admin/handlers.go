package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type TaskCreator interface {
	Create(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ActivityStats, error)
}

type HistoryPruner interface {
	Prune(ctx context.Context) (int64, error)
}

type Handler struct {
	logger  *slog.Logger
	Tasks   TaskCreator
	Stats   StatsGetter
	History HistoryPruner
}

func NewHandler(logger *slog.Logger, tasks TaskCreator, stats StatsGetter, history HistoryPruner) *Handler {
	return &Handler{
		logger:  logger,
		Tasks:   tasks,
		Stats:   stats,
		History: history,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminTaskCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminTaskCreate", slog.String("remote", r.RemoteAddr))

	req, err := middleware.DecodeJSON[domain.CreateTaskRequest](r)
	if err != nil {
		l.Warn("invalid task payload", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	task, err := h.Tasks.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("task created", slog.String("id", task.ID.String()), slog.String("assignee_id", task.AssigneeID.String()))
	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminHistoryPrune(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	n, err := h.History.Prune(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("history pruned on demand", slog.Int64("deleted", n))
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
