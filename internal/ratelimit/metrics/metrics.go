package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ChecksTotal     *prometheus.CounterVec
	RejectionsTotal *prometheus.CounterVec
	WindowsSwept    prometheus.Counter
	ActiveWindows   prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		ChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "proplink_ratelimit_checks_total",
			Help: "Total number of rate limit checks by source and outcome",
		}, []string{"source", "outcome"}),
		RejectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "proplink_ratelimit_rejections_total",
			Help: "Total number of rejected calls by source and limit kind",
		}, []string{"source", "kind"}),
		WindowsSwept: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proplink_ratelimit_windows_swept_total",
			Help: "Total number of expired rate limit windows removed by the sweeper",
		}),
		ActiveWindows: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "proplink_ratelimit_active_windows",
			Help: "Current number of open rate limit windows",
		}),
	}
}

func (m *Metrics) ObserveCheck(source string, allowed, burst bool) {
	if m == nil {
		return
	}
	if allowed {
		m.ChecksTotal.WithLabelValues(source, "allowed").Inc()
		return
	}
	m.ChecksTotal.WithLabelValues(source, "rejected").Inc()
	kind := "window"
	if burst {
		kind = "burst"
	}
	m.RejectionsTotal.WithLabelValues(source, kind).Inc()
}

func (m *Metrics) AddSwept(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.WindowsSwept.Add(float64(n))
}

func (m *Metrics) SetActiveWindows(n int) {
	if m == nil {
		return
	}
	m.ActiveWindows.Set(float64(n))
}
