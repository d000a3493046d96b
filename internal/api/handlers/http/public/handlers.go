package public

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/middleware"
	"github.com/wamique00786/wesalvator/internal/service"
	"github.com/wamique00786/wesalvator/pkg/e"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	Create(ctx context.Context, p auth.Principal, req domain.CreateReportRequest, photo *service.PhotoUpload) (domain.ReportResponse, error)
	List(ctx context.Context, page, limit int) (domain.ListReportsResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Mine(ctx context.Context, p auth.Principal) ([]*domain.Report, error)
}

type Locations interface {
	Push(ctx context.Context, p auth.Principal, pt domain.Point) (domain.VolunteerPosition, error)
	Mine(ctx context.Context, p auth.Principal) (domain.MyLocationResponse, error)
	AllUsers(ctx context.Context) (domain.UserLocationsResponse, error)
	NearbyVolunteers(ctx context.Context, req domain.NearbyVolunteersRequest) ([]domain.Candidate, error)
	LiveSnapshot(ctx context.Context) (domain.Snapshot, error)
}

type Tasks interface {
	Mine(ctx context.Context, p auth.Principal) (domain.TaskListResponse, error)
	Complete(ctx context.Context, p auth.Principal, taskID uuid.UUID) (*domain.Task, error)
}

type Handler struct {
	logger       *slog.Logger
	Reports      Reports
	Locations    Locations
	Tasks        Tasks
	maxPhotoSize int64
}

func NewHandler(logger *slog.Logger, reports Reports, locations Locations, tasks Tasks, maxPhotoSize int64) *Handler {
	if maxPhotoSize <= 0 {
		maxPhotoSize = 10 << 20
	}
	return &Handler{
		logger:       logger,
		Reports:      reports,
		Locations:    locations,
		Tasks:        tasks,
		maxPhotoSize: maxPhotoSize,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// ReportCreate accepts multipart/form-data with description, latitude,
// longitude, priority and a photo file.
func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	p, _ := auth.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoSize+(1<<20))
	if err := r.ParseMultipartForm(h.maxPhotoSize); err != nil {
		l.Warn("invalid multipart form", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req := domain.CreateReportRequest{
		Description: r.FormValue("description"),
		Priority:    r.FormValue("priority"),
	}
	var err error
	if req.Latitude, err = parseOptionalFloat(r.FormValue("latitude")); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude must be a number"})
		return
	}
	if req.Longitude, err = parseOptionalFloat(r.FormValue("longitude")); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "longitude must be a number"})
		return
	}

	var photo *service.PhotoUpload
	file, header, err := r.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		l.Warn("photo read failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid photo"})
		return
	default:
		defer file.Close()
		photo = &service.PhotoUpload{Filename: header.Filename, Size: header.Size, Content: file}
	}

	resp, err := h.Reports.Create(r.Context(), p, req, photo)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report submitted", slog.String("id", resp.ID.String()), slog.String("status", string(resp.Status)))
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) ReportList(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)

	resp, err := h.Reports.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ReportMine(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.FromContext(r.Context())

	reports, err := h.Reports.Mine(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (h *Handler) ReportGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	report, err := h.Reports.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) LocationGet(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.FromContext(r.Context())

	resp, err := h.Locations.Mine(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) LocationPush(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	p, _ := auth.FromContext(r.Context())

	req, err := middleware.DecodeJSON[domain.LocationUpdateRequest](r)
	if err != nil {
		l.Warn("invalid location payload", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	pos, err := h.Locations.Push(r.Context(), p, req.Point())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"latitude":  pos.Point.Lat,
		"longitude": pos.Point.Lng,
		"timestamp": pos.UpdatedAt,
	})
}

func (h *Handler) LocationsAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Locations.AllUsers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) VolunteersNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required numbers"})
		return
	}
	radius := 10.0
	if s := q.Get("radius_km"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "radius_km must be a number"})
			return
		}
		radius = v
	}

	out, err := h.Locations.NearbyVolunteers(r.Context(), domain.NearbyVolunteersRequest{Lat: lat, Lng: lng, RadiusKM: radius})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"volunteers": out})
}

// VolunteersLive returns the last broadcast snapshot, optionally narrowed to
// lat/lng/radius_km.
func (h *Handler) VolunteersLive(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := parseOptionalFloat(q.Get("lat"))
	lng, errLng := parseOptionalFloat(q.Get("lng"))
	radius, errRadius := parseOptionalFloat(q.Get("radius_km"))
	if errLat != nil || errLng != nil || errRadius != nil || (lat == nil) != (lng == nil) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng must be given together as numbers"})
		return
	}

	snap, err := h.Locations.LiveSnapshot(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if lat != nil {
		center := domain.Point{Lat: *lat, Lng: *lng}
		if err := center.Validate(); err != nil {
			h.handleError(w, r, err)
			return
		}
		km := 10.0
		if radius != nil && *radius > 0 {
			km = *radius
		}
		snap = snap.Within(center, km)
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) TaskList(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.FromContext(r.Context())

	resp, err := h.Tasks.Mine(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) TaskComplete(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.FromContext(r.Context())

	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	task, err := h.Tasks.Complete(r.Context(), p, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("task completed", slog.String("task_id", id.String()))
	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, e.ErrInvalidInput
	}
	return &v, nil
}
