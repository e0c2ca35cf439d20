package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	SettingsWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settings_writes_total",
			Help: "Total number of settings mutations by kind.",
		},
		[]string{"service", "kind", "result"},
	)

	AdminChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_checks_total",
			Help: "Authority resolutions by granting (or refusing) basis.",
		},
		[]string{"service", "basis"},
	)

	AuditAppendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_appends_total",
			Help: "Audit log append attempts.",
		},
		[]string{"service", "action", "result"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)
	SettingsWritesTotal = SettingsWritesTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	AdminChecksTotal = AdminChecksTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	AuditAppendsTotal = AuditAppendsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		SettingsWritesTotal,
		AdminChecksTotal,
		AuditAppendsTotal,
	)
}
