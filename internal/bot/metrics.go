package bot

import (
	"strconv"
	"time"

	"roombot/internal/backend"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics структура для метрик Prometheus
type Metrics struct {
	MessagesProcessed    prometheus.Counter
	ErrorsTotal          prometheus.Counter
	UpdateProcessingTime prometheus.Histogram
	SubmissionsTotal     *prometheus.CounterVec
	BackendRequests      *prometheus.HistogramVec
}

// NewMetrics создает новые метрики
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roombot_messages_processed_total",
			Help: "Total number of messages processed",
		}),

		ErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roombot_errors_total",
			Help: "Total number of panics recovered in handlers",
		}),

		UpdateProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "roombot_update_processing_time_seconds",
			Help:    "Time spent processing updates",
			Buckets: prometheus.DefBuckets,
		}),

		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roombot_submissions_total",
			Help: "Form submissions by flow and outcome",
		}, []string{"flow", "outcome"}),

		BackendRequests: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roombot_backend_request_duration_seconds",
			Help:    "Backend request duration by method, endpoint and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint", "status"}),
	}
}

// Observer возвращает хук для клиента бэкенда.
func (m *Metrics) Observer() backend.Observer {
	return func(method, endpoint string, status int, elapsed time.Duration) {
		m.BackendRequests.
			WithLabelValues(method, endpoint, strconv.Itoa(status)).
			Observe(elapsed.Seconds())
	}
}

func (m *Metrics) countSubmission(flow, outcome string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(flow, outcome).Inc()
}
