package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private Prometheus registry for the storefront.
type Metrics struct {
	reqTotal     *prometheus.CounterVec
	reqLatency   *prometheus.HistogramVec
	catalogLoads *prometheus.CounterVec
	catalogItems prometheus.Gauge
	enquiries    *prometheus.CounterVec
	registry     *prometheus.Registry
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		reqTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		reqLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		catalogLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_fetch_total",
				Help: "Catalog fetches from the items API by result",
			},
			[]string{"result"},
		),
		catalogItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Items in the current catalog snapshot",
		}),
		enquiries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enquiries_total",
				Help: "Contact redirects by channel",
			},
			[]string{"channel"},
		),
		registry: registry,
	}
	registry.MustRegister(m.reqTotal, m.reqLatency, m.catalogLoads, m.catalogItems, m.enquiries)
	return m
}

// Middleware records request counts and latency keyed by route pattern.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.reqTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.reqLatency.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// CatalogLoaded implements catalog.Observer.
func (m *Metrics) CatalogLoaded(count int, err error) {
	if err != nil {
		m.catalogLoads.WithLabelValues("error").Inc()
	} else {
		m.catalogLoads.WithLabelValues("ok").Inc()
	}
	m.catalogItems.Set(float64(count))
}

func (m *Metrics) Enquiry(channel string) {
	m.enquiries.WithLabelValues(channel).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
