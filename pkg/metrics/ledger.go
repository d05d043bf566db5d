package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	BackendSheets = "sheets"
	BackendFile   = "file"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// LedgerMetrics records persistence and load activity per backend.
type LedgerMetrics struct {
	persist         *prometheus.CounterVec
	persistDuration *prometheus.HistogramVec
	loads           *prometheus.CounterVec
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	persist := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_persist_total",
		Help: "Ledger persistence attempts by backend and outcome.",
	}, []string{"backend", "outcome"})
	persistDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_persist_duration_seconds",
		Help:    "Duration of ledger persistence calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})
	loads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_load_total",
		Help: "Ledger loads by the backend that served them.",
	}, []string{"source"})
	reg.MustRegister(persist, persistDuration, loads)
	return &LedgerMetrics{
		persist:         persist,
		persistDuration: persistDuration,
		loads:           loads,
	}
}

// ObservePersist records one persistence attempt against a backend.
func (m *LedgerMetrics) ObservePersist(backend, outcome string, duration time.Duration) {
	if m == nil || m.persist == nil {
		return
	}
	m.persist.WithLabelValues(normalizeLabel(backend), normalizeLabel(outcome)).Inc()
	m.persistDuration.WithLabelValues(normalizeLabel(backend)).Observe(duration.Seconds())
}

// IncLoad counts a load served by the named source.
func (m *LedgerMetrics) IncLoad(source string) {
	if m == nil || m.loads == nil {
		return
	}
	m.loads.WithLabelValues(normalizeLabel(source)).Inc()
}

func normalizeLabel(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
