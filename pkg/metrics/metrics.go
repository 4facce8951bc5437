package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	// Бизнес-метрики
	BookingsCreated    prometheus.Counter
	BookingsRejected   *prometheus.CounterVec
	SlotsServed        prometheus.Histogram
	BookingTransitions *prometheus.CounterVec
}

// New создает и регистрирует метрики в переданном реестре
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: constLabels,
		}),
		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Booking attempts rejected by business rules",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		SlotsServed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "available_slots_served",
			Help:        "Number of candidate slots returned per request",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 5, 10, 20, 40},
		}),
		BookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Booking status changes by target status",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.BookingsCreated,
		m.BookingsRejected,
		m.SlotsServed,
		m.BookingTransitions,
	)

	return m
}

// IncBookingCreated безопасен для nil (метрики отключены)
func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// IncBookingRejected учитывает отказ в бронировании с причиной
func (m *Metrics) IncBookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

// ObserveSlotsServed учитывает количество отданных слотов
func (m *Metrics) ObserveSlotsServed(count int) {
	if m == nil {
		return
	}
	m.SlotsServed.Observe(float64(count))
}

// IncBookingTransition учитывает смену статуса бронирования
func (m *Metrics) IncBookingTransition(status string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(status).Inc()
}
