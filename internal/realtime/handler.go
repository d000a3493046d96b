package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/metrics"
	"github.com/wamique00786/wesalvator/pkg/e"
)

// Handler upgrades authenticated requests to realtime location sessions.
type Handler struct {
	hub          *Hub
	locations    LocationPusher
	tokens       TokenParser
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	logger       *slog.Logger
}

func NewHandler(hub *Hub, locations LocationPusher, tokens TokenParser, cfg config.RealtimeConfig, logger *slog.Logger) *Handler {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Handler{
		hub:       hub,
		locations: locations,
		tokens:    tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
		writeTimeout: timeout,
		logger:       logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

// ServeWS runs one connection until it closes. Unauthenticated requests are
// refused before the upgrade.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	p, err := h.tokens.Parse(auth.TokenFromRequest(r))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(domain.ErrorMessage{Error: "authentication required"})
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	l := h.logger.With(slog.String("user_id", p.UserID.String()), slog.String("role", string(p.Role)))
	s := &session{
		Handler: h,
		client:  newClient(conn, p, l),
		ctx:     r.Context(),
		logger:  l,
	}
	s.open()
	go s.client.writePump()
	s.client.readPump(s.message)
	s.close()
}

// session is the server side of one connection.
type session struct {
	*Handler
	client *Client
	ctx    context.Context
	logger *slog.Logger
}

func (s *session) open() {
	p := s.client.principal
	if s.hub.Join(s.client) && p.Role == domain.RoleVolunteer {
		s.persist(func(ctx context.Context) error { return s.locations.Connected(ctx, p) }, "mark connected")
	}
	s.logger.Info("realtime client connected")
}

func (s *session) message(raw []byte) {
	p := s.client.principal

	pt, err := domain.DecodeLocationMessage(raw)
	if err != nil {
		metrics.LocationUpdates.WithLabelValues("ws", "rejected").Inc()
		s.hub.reply(s.client, domain.ErrorMessage{Error: clientError(err)})
		return
	}
	if p.Role != domain.RoleVolunteer {
		metrics.LocationUpdates.WithLabelValues("ws", "rejected").Inc()
		s.hub.reply(s.client, domain.ErrorMessage{Error: "only volunteers can share a live location"})
		return
	}

	s.hub.Update(p.UserID, pt)
	outcome := "accepted"
	if !s.persist(func(ctx context.Context) error {
		_, err := s.locations.Push(ctx, p, pt)
		return err
	}, "store location") {
		outcome = "failed"
	}
	metrics.LocationUpdates.WithLabelValues("ws", outcome).Inc()

	s.hub.Broadcast(s.ctx)
}

func (s *session) close() {
	p := s.client.principal
	if s.hub.Leave(s.client) && p.Role == domain.RoleVolunteer {
		s.persist(func(ctx context.Context) error { return s.locations.Disconnected(ctx, p) }, "clear connected")
	}
	s.hub.Broadcast(context.WithoutCancel(s.ctx))
	s.logger.Info("realtime client disconnected")
}

// persist runs fn detached from the request so a closing socket does not
// abort a write already in flight.
func (s *session) persist(fn func(ctx context.Context) error, what string) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(s.ctx), s.writeTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		s.logger.Error(what+" failed", slog.Any("error", err))
		return false
	}
	return true
}

func clientError(err error) string {
	switch {
	case errors.Is(err, e.ErrInvalidCoordinates):
		return "invalid coordinates"
	case errors.Is(err, e.ErrInvalidInput):
		msg := err.Error()
		if i := strings.Index(msg, ": "); i >= 0 {
			return msg[i+2:]
		}
		return msg
	}
	return "invalid message"
}
