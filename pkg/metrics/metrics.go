package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Исходы создания бронирования
const (
	BookingOutcomeCreated  = "created"
	BookingOutcomeConflict = "conflict"
	BookingOutcomeRejected = "rejected_gate"
	BookingOutcomeBlocked  = "blocked"
)

// Исходы операций с одноразовыми кодами
const (
	OTPOutcomeIssued      = "issued"
	OTPOutcomeRateLimited = "rate_limited"
	OTPOutcomeVerified    = "verified"
	OTPOutcomeFailed      = "failed"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	registerer prometheus.Registerer

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsTotal       *prometheus.CounterVec
	OTPTotal            *prometheus.CounterVec
	NotificationsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registerer: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		OTPTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "otp_operations_total",
			Help:        "Verification code operations by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notification events by type and result",
			ConstLabels: constLabels,
		}, []string{"event", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.OTPTotal,
		m.NotificationsTotal,
	)

	return m
}

// RegisterDBStats регистрирует метрики пула соединений database/sql
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) {
	m.registerer.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

// IncBooking увеличивает счётчик исходов бронирования. Безопасен для nil
func (m *Metrics) IncBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

// IncOTP увеличивает счётчик операций с кодами. Безопасен для nil
func (m *Metrics) IncOTP(outcome string) {
	if m == nil {
		return
	}
	m.OTPTotal.WithLabelValues(outcome).Inc()
}

// IncNotification увеличивает счётчик уведомлений. Безопасен для nil
func (m *Metrics) IncNotification(event, result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(event, result).Inc()
}

// Результаты обработки уведомлений
const (
	NotificationEnqueued = "enqueued"
	NotificationFailed   = "failed"
	NotificationSent     = "sent"
)
