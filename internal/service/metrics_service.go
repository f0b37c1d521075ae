package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type enrollmentCounter interface {
	TotalEnrollments() int
}

// MetricsSnapshot aggregates counters for the stats endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	RegistrationsAccepted    uint64    `json:"registrations_accepted"`
	RegistrationsRejected    uint64    `json:"registrations_rejected"`
	TotalEnrollments         int       `json:"total_enrollments"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// MetricsService encapsulates Prometheus instrumentation and provides
// lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	registrations   *prometheus.CounterVec
	withdrawals     *prometheus.CounterVec

	offerings enrollmentCounter

	requestCount         uint64
	requestDurationTotal uint64
	acceptedCount        uint64
	rejectedCount        uint64
}

// NewMetricsService registers core Prometheus collectors. The offerings
// counter feeds the enrollment gauge; it may be nil in tests.
func NewMetricsService(offerings enrollmentCounter) *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrations_total",
		Help: "Registration attempts by outcome",
	}, []string{"outcome"})

	withdrawals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "withdrawals_total",
		Help: "Withdrawal attempts by outcome",
	}, []string{"outcome"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	svc := &MetricsService{
		registry:        registry,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		registrations:   registrations,
		withdrawals:     withdrawals,
		offerings:       offerings,
	}

	enrollments := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "enrollments_total",
		Help: "Current enrollments across all offerings",
	}, func() float64 {
		if svc.offerings == nil {
			return 0
		}
		return float64(svc.offerings.TotalEnrollments())
	})

	registry.MustRegister(requestDuration, requestTotal, registrations, withdrawals, goroutines, enrollments)
	svc.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return svc
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for
// snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordRegistration counts a registration attempt by outcome.
func (m *MetricsService) RecordRegistration(accepted bool) {
	if m == nil {
		return
	}
	if accepted {
		m.registrations.WithLabelValues("accepted").Inc()
		atomic.AddUint64(&m.acceptedCount, 1)
	} else {
		m.registrations.WithLabelValues("rejected").Inc()
		atomic.AddUint64(&m.rejectedCount, 1)
	}
}

// RecordWithdrawal counts a withdrawal attempt by outcome.
func (m *MetricsService) RecordWithdrawal(accepted bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	m.withdrawals.WithLabelValues(outcome).Inc()
}

// Snapshot returns aggregated metrics for the stats endpoint.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	total := 0
	if m.offerings != nil {
		total = m.offerings.TotalEnrollments()
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		RegistrationsAccepted:    atomic.LoadUint64(&m.acceptedCount),
		RegistrationsRejected:    atomic.LoadUint64(&m.rejectedCount),
		TotalEnrollments:         total,
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
