package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/metrics"
)

// Hub is the registry of live volunteer positions and the set of connected
// clients. One mutex guards both, so a broadcast is built and queued to every
// client as a single step.
type Hub struct {
	mu        sync.Mutex
	positions map[uuid.UUID]domain.Point
	conns     map[uuid.UUID]int
	clients   map[*Client]struct{}

	cache  SnapshotStore
	logger *slog.Logger
}

func NewHub(cache SnapshotStore, logger *slog.Logger) *Hub {
	return &Hub{
		positions: make(map[uuid.UUID]domain.Point),
		conns:     make(map[uuid.UUID]int),
		clients:   make(map[*Client]struct{}),
		cache:     cache,
		logger:    logger,
	}
}

// Join registers c and reports whether it is the first open connection of
// its user.
func (h *Hub) Join(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
	h.conns[c.principal.UserID]++
	metrics.WSConnections.Inc()

	return h.conns[c.principal.UserID] == 1
}

// Leave unregisters c and reports whether it was the last open connection of
// its user. The user's position is forgotten with the last connection.
func (h *Hub) Leave(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	metrics.WSConnections.Dec()

	id := c.principal.UserID
	h.conns[id]--
	if h.conns[id] > 0 {
		return false
	}
	delete(h.conns, id)
	delete(h.positions, id)
	return true
}

// Update records a position for a user with at least one open connection.
func (h *Hub) Update(id uuid.UUID, pt domain.Point) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[id] == 0 {
		return false
	}
	h.positions[id] = pt
	return true
}

func (h *Hub) Snapshot() domain.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *Hub) OnlineVolunteers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.positions)
}

func (h *Hub) snapshotLocked() domain.Snapshot {
	out := domain.Snapshot{Volunteers: make([]domain.LiveVolunteer, 0, len(h.positions))}
	for id, pt := range h.positions {
		out.Volunteers = append(out.Volunteers, domain.LiveVolunteer{ID: id, Latitude: pt.Lat, Longitude: pt.Lng})
	}
	sort.Slice(out.Volunteers, func(i, j int) bool {
		return out.Volunteers[i].ID.String() < out.Volunteers[j].ID.String()
	})
	return out
}

// Broadcast queues the current snapshot to every client. Clients whose send
// buffer is full are dropped.
func (h *Hub) Broadcast(ctx context.Context) domain.Snapshot {
	h.mu.Lock()
	snap := h.snapshotLocked()

	payload, err := json.Marshal(snap)
	if err != nil {
		h.mu.Unlock()
		h.logger.Error("marshal snapshot failed", slog.Any("error", err))
		return snap
	}

	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			delete(h.clients, c)
			close(c.send)
			metrics.WSDroppedClients.Inc()
			h.logger.Warn("slow realtime client dropped", slog.String("user_id", c.principal.UserID.String()))
		}
	}
	receivers := len(h.clients)
	h.mu.Unlock()

	metrics.WSBroadcasts.Inc()
	h.logger.Debug("snapshot broadcast",
		slog.Int("volunteers", len(snap.Volunteers)),
		slog.Int("clients", receivers),
	)

	if h.cache != nil {
		if err := h.cache.Set(ctx, snap); err != nil {
			h.logger.Warn("snapshot cache write failed", slog.Any("error", err))
		}
	}
	return snap
}

// reply queues a message to c alone.
func (h *Hub) reply(c *Client, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}
