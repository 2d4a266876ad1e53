package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disruptpoints_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "disruptpoints_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Business Metrics
var (
	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "disruptpoints_xp_awarded_total",
			Help: "Total XP awarded across all accounts (net of retractions)",
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "disruptpoints_level_ups_total",
			Help: "Total level-ups across all accounts",
		},
	)

	PointsGifted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "disruptpoints_points_gifted_total",
			Help: "Total points moved by accepted gifts",
		},
	)

	GiftsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "disruptpoints_gifts_rejected_total",
			Help: "Gift attempts rejected by the daily cap",
		},
	)

	GamblesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disruptpoints_gambles_resolved_total",
			Help: "Gambles resolved, labeled by outcome",
		},
		[]string{"outcome"},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disruptpoints_items_bought_total",
			Help: "Items purchased from the shop",
		},
		[]string{"item"},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disruptpoints_items_consumed_total",
			Help: "Items eaten or drunk",
		},
		[]string{"item"},
	)

	VoicePointsAccrued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "disruptpoints_voice_points_accrued_total",
			Help: "Points accrued by active voice sessions",
		},
	)
)
