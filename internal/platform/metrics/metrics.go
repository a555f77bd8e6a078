package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cartwidget"

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"handler"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// CartMetrics records cart interactions. It satisfies the cart service's
// event recorder.
type CartMetrics struct {
	Adds     prometheus.Counter
	Rejected *prometheus.CounterVec
	Removes  prometheus.Counter
	Clears   prometheus.Counter
	Lines    prometheus.Gauge
	TotalMin prometheus.Gauge
}

func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	m := &CartMetrics{
		Adds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cart", Name: "items_added_total",
			Help: "Quantity of items added to the cart.",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cart", Name: "add_rejected_total",
			Help: "Add attempts rejected, by reason.",
		}, []string{"reason"}),
		Removes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cart", Name: "lines_removed_total",
			Help: "Cart lines removed.",
		}),
		Clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cart", Name: "clears_total",
			Help: "Number of times the cart was cleared.",
		}),
		Lines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "cart", Name: "lines",
			Help: "Current number of cart lines.",
		}),
		TotalMin: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "cart", Name: "total_minor_units",
			Help: "Current cart total in minor currency units.",
		}),
	}
	reg.MustRegister(m.Adds, m.Rejected, m.Removes, m.Clears, m.Lines, m.TotalMin)
	return m
}

func (m *CartMetrics) ItemAdded(quantity int) {
	m.Adds.Add(float64(quantity))
}

func (m *CartMetrics) AddRejected(reason string) {
	m.Rejected.WithLabelValues(reason).Inc()
}

func (m *CartMetrics) LineRemoved() {
	m.Removes.Inc()
}

func (m *CartMetrics) CartCleared() {
	m.Clears.Inc()
}

func (m *CartMetrics) CartChanged(lines int, totalMinor int64) {
	m.Lines.Set(float64(lines))
	m.TotalMin.Set(float64(totalMinor))
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
