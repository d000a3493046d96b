package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Realtime
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "realtime_connections",
			Help: "Currently open realtime location connections",
		},
	)

	WSBroadcasts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realtime_broadcasts_total",
			Help: "Snapshots fanned out to realtime clients",
		},
	)

	WSDroppedClients = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realtime_dropped_clients_total",
			Help: "Clients disconnected because their send buffer was full",
		},
	)

	LocationUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "location_updates_total",
			Help: "Location pushes by source and outcome",
		},
		[]string{"source", "outcome"}, // source: ws|http, outcome: accepted|rejected|failed
	)

	// Matching
	MatchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_match_outcomes_total",
			Help: "Report assignment outcomes",
		},
		[]string{"kind"},
	)

	// History
	HistoryPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "location_history_pruned_total",
			Help: "Location history entries deleted by retention",
		},
	)

	// Notifications
	NotificationsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_delivered_total",
			Help: "Notification deliveries by channel and result",
		},
		[]string{"channel", "result"},
	)
)
