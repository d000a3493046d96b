package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wamique00786/wesalvator/internal/api/handlers/http/admin"
	"github.com/wamique00786/wesalvator/internal/api/handlers/http/public"
	"github.com/wamique00786/wesalvator/internal/api/handlers/http/system"
	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/middleware"
	"github.com/wamique00786/wesalvator/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// Deps carries what the router needs besides the services.
type Deps struct {
	Tokens   middleware.TokenParser
	Realtime http.HandlerFunc
	Pingers  map[string]system.Pinger
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, deps Deps) *Server {
	adminHandler := admin.NewHandler(logger, svc.TaskService, svc.StatsService, svc.HistoryLedger)
	publicHandler := public.NewHandler(logger, svc.ReportService, svc.LocationService, svc.TaskService, cfg.Photos.MaxSizeBytes)
	systemHandler := system.NewHandler(logger, deps.Pingers)

	r := InitRouter(ctx, cfg, adminHandler, publicHandler, systemHandler, deps, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	adminHandler *admin.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	deps Deps,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Http.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	authenticate := middleware.Authenticate(deps.Tokens, logger)

	r.Handle("/metrics", promhttp.Handler())

	if deps.Realtime != nil {
		r.With(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger)).Get("/ws/location", deps.Realtime)
	}

	r.Route("/api/v1", func(api chi.Router) {
		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)

		// PUBLIC
		api.With(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger)).
			Get("/volunteers/nearby", publicHandler.VolunteersNearby)

		// AUTHENTICATED
		api.Group(func(ar chi.Router) {
			ar.Use(authenticate)
			ar.Use(middleware.Limit(ctx, 20, 40, 10*time.Minute, logger))

			ar.Route("/reports", func(rr chi.Router) {
				rr.Post("/", publicHandler.ReportCreate)
				rr.Get("/", publicHandler.ReportList)
				rr.Get("/mine", publicHandler.ReportMine)
				rr.Get("/{id}", publicHandler.ReportGet)
			})

			ar.Get("/location", publicHandler.LocationGet)
			ar.Post("/location", publicHandler.LocationPush)
			ar.Get("/locations", publicHandler.LocationsAll)
			ar.Get("/volunteers/live", publicHandler.VolunteersLive)

			ar.Group(func(vr chi.Router) {
				vr.Use(middleware.RequireRole(domain.RoleVolunteer, domain.RoleAdmin, domain.RoleOrganization))
				vr.Get("/tasks", publicHandler.TaskList)
				vr.Post("/tasks/{id}/complete", publicHandler.TaskComplete)
			})

			// ADMIN
			ar.Route("/admin", func(adm chi.Router) {
				adm.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleOrganization))
				adm.Get("/stats", adminHandler.AdminStats)
				adm.Post("/tasks", adminHandler.AdminTaskCreate)
				adm.Post("/history/prune", adminHandler.AdminHistoryPrune)
			})
		})
	})

	return r
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
