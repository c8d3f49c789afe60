package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaign_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
	providerCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_provider_calls_total",
			Help: "Total number of WhatsApp gateway calls",
		},
		[]string{"provider", "operation", "outcome"},
	)
	providerCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaign_provider_call_duration_seconds",
			Help:    "WhatsApp gateway call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "operation"},
	)
	sessionSyncTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_session_sync_total",
			Help: "Session reconciliation outcomes",
		},
		[]string{"provider", "outcome"},
	)
	campaignsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_campaigns_created_total",
			Help: "Campaigns created, by initial status",
		},
		[]string{"status"},
	)
	eventsConsumedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_events_consumed_total",
			Help: "Domain events read back from the events topic",
		},
		[]string{"type"},
	)
	rateLimitExceededTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_ratelimit_exceeded_total",
			Help: "Requests rejected by the tenant rate limiter",
		},
	)
)

func init() {
	registry.MustRegister(
		apiRequestsTotal,
		apiRequestDuration,
		providerCallsTotal,
		providerCallDuration,
		sessionSyncTotal,
		campaignsCreatedTotal,
		eventsConsumedTotal,
		rateLimitExceededTotal,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

// MetricsHandler exposes the registry in the prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func observeRequest(path, method string, status int, latency time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	apiRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

// ObserveProviderCall records one gateway round trip.
func ObserveProviderCall(provider, operation string, err error, latency time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	providerCallsTotal.WithLabelValues(provider, operation, outcome).Inc()
	providerCallDuration.WithLabelValues(provider, operation).Observe(latency.Seconds())
}

// ObserveSessionSync records the outcome of reconciling one session.
func ObserveSessionSync(provider string, err error) {
	outcome := "synced"
	if err != nil {
		outcome = "skipped"
	}
	sessionSyncTotal.WithLabelValues(provider, outcome).Inc()
}

// ObserveCampaignCreated counts a created campaign by its initial status.
func ObserveCampaignCreated(status string) {
	campaignsCreatedTotal.WithLabelValues(status).Inc()
}

// ObserveRateLimitExceeded counts a rejected request.
func ObserveRateLimitExceeded() {
	rateLimitExceededTotal.Inc()
}

// ObserveEventConsumed counts a consumed domain event by type.
func ObserveEventConsumed(eventType string) {
	eventsConsumedTotal.WithLabelValues(eventType).Inc()
}
