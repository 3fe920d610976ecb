package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingConflicts    prometheus.Counter
	BookingsCreated     prometheus.Counter
}

// IncBookingCreated увеличивает счетчик успешно созданных бронирований
func (m *Metrics) IncBookingCreated() {
	m.BookingsCreated.Inc()
}

// IncBookingConflict увеличивает счетчик отклоненных по конфликту бронирований
func (m *Metrics) IncBookingConflict() {
	m.BookingConflicts.Inc()
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		BookingConflicts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "booking_conflicts_total",
				Help:        "Number of booking attempts rejected because the slot was taken",
				ConstLabels: labels,
			},
		),
		BookingsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Number of successfully created bookings",
				ConstLabels: labels,
			},
		),
	}
}
