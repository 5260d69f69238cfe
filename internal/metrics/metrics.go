// Package metrics exposes Prometheus metrics for the HTTP layer and the URL store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

// Sizer reports how many mappings a store holds.
type Sizer interface {
	Len() int
}

// Metrics holds the collectors registered by New. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	urlsShortenedTotal  prometheus.Counter
	redirectsTotal      prometheus.Counter
}

// New registers the collectors on reg. When store is not nil an active_urls
// gauge reads its size at scrape time.
func New(reg prometheus.Registerer, store Sizer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		urlsShortenedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "urls_shortened_total",
			Help: "Total number of URLs shortened",
		}),
		redirectsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Total number of successful redirects",
		}),
	}

	if store != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "active_urls",
			Help: "Number of stored URL mappings",
		}, func() float64 {
			return float64(store.Len())
		})
	}

	return m
}

func (m *Metrics) RecordURLShortened() {
	if m == nil {
		return
	}
	m.urlsShortenedTotal.Inc()
}

func (m *Metrics) RecordRedirect() {
	if m == nil {
		return
	}
	m.redirectsTotal.Inc()
}

// Middleware records request count and latency labelled by the matched chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := []string{r.Method, route, strconv.Itoa(status)}

		m.httpRequestsTotal.WithLabelValues(labels...).Inc()
		m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}
