package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "dispatch_"

	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	registerOnce sync.Once

	dispatchTotal   *prometheus.CounterVec
	dispatchLatency *prometheus.HistogramVec

	candidateSearchLatency prometheus.Histogram
	candidatesReturned     prometheus.Histogram
	candidatesExcluded     *prometheus.CounterVec

	transitionsTotal *prometheus.CounterVec
	slaOutcomes      *prometheus.CounterVec

	webhookDeliveries *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
)

// Init регистрирует метрики в дефолтном реестре; повторные вызовы ничего не делают.
func Init() {
	registerOnce.Do(func() {
		dispatchTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dispatch_total",
				Help: "Total dispatch attempts by result",
			},
			[]string{"result"},
		)
		dispatchLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "dispatch_latency_seconds",
				Help:    "Dispatch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		candidateSearchLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "candidate_search_latency_seconds",
				Help:    "Candidate search latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		)
		candidatesReturned = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "candidates_returned",
				Help:    "Number of eligible candidates per search",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
		)
		candidatesExcluded = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "candidates_excluded_total",
				Help: "Ambulances excluded from candidate lists by reason",
			},
			[]string{"reason"},
		)
		transitionsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "occurrence_transitions_total",
				Help: "Occurrence status transitions",
			},
			[]string{"from", "to"},
		)
		slaOutcomes = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "sla_outcomes_total",
				Help: "Arrivals by severity and SLA outcome",
			},
			[]string{"severity", "outcome"},
		)
		webhookDeliveries = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "webhook_deliveries_total",
				Help: "Webhook delivery attempts by result",
			},
			[]string{"result"},
		)
		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "details_cache_lookups_total",
				Help: "Occurrence details cache lookups",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			dispatchTotal,
			dispatchLatency,
			candidateSearchLatency,
			candidatesReturned,
			candidatesExcluded,
			transitionsTotal,
			slaOutcomes,
			webhookDeliveries,
			cacheLookups,
		)
	})
}

func ObserveDispatch(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if dispatchTotal != nil {
		dispatchTotal.WithLabelValues(result).Inc()
	}
	if dispatchLatency != nil {
		dispatchLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

func ObserveCandidateSearch(count int, duration time.Duration) {
	if candidateSearchLatency != nil {
		candidateSearchLatency.Observe(duration.Seconds())
	}
	if candidatesReturned != nil {
		candidatesReturned.Observe(float64(count))
	}
}

// IncCandidateExcluded - reason: no_route, sla_exceeded, unstaffed
func IncCandidateExcluded(reason string) {
	if candidatesExcluded != nil {
		candidatesExcluded.WithLabelValues(reason).Inc()
	}
}

func IncTransition(from, to string) {
	if transitionsTotal != nil {
		transitionsTotal.WithLabelValues(from, to).Inc()
	}
}

func IncSLAOutcome(severity string, outside bool) {
	outcome := "within"
	if outside {
		outcome = "outside"
	}
	if slaOutcomes != nil {
		slaOutcomes.WithLabelValues(severity, outcome).Inc()
	}
}

func IncWebhookDelivery(result string) {
	if webhookDeliveries != nil {
		webhookDeliveries.WithLabelValues(result).Inc()
	}
}

func IncCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(result).Inc()
	}
}
