// Package metrics exports Prometheus counters and histograms for service use
// cases, LLM calls and HTTP requests.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/alexanderramin/stride/internal/llm"
	"github.com/alexanderramin/stride/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests and multiple servers never clash
// on the global default registerer.
type Metrics struct {
	registry *prometheus.Registry

	UseCaseTotal        *prometheus.CounterVec
	UseCaseDuration     *prometheus.HistogramVec
	LLMCallTotal        *prometheus.CounterVec
	LLMCallLatency      *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UseCaseTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stride_use_case_total",
				Help: "Service use cases executed, by outcome",
			},
			[]string{"use_case", "status"},
		),
		UseCaseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stride_use_case_duration_seconds",
				Help:    "Service use case duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
			},
			[]string{"use_case"},
		),
		LLMCallTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stride_llm_call_total",
				Help: "LLM generation calls, by outcome",
			},
			[]string{"task", "provider", "status"},
		),
		LLMCallLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stride_llm_call_latency_ms",
				Help:    "LLM generation latency in milliseconds",
				Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~50s
			},
			[]string{"task", "provider"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stride_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveUseCase implements service.UseCaseObserver.
func (m *Metrics) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	status := "ok"
	if !event.Success {
		status = "error"
	}
	m.UseCaseTotal.WithLabelValues(event.Name, status).Inc()
	m.UseCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// OnCallComplete implements llm.Observer.
func (m *Metrics) OnCallComplete(event llm.LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = event.ErrorCode
	}
	m.LLMCallTotal.WithLabelValues(string(event.Task), string(event.Provider), status).Inc()
	m.LLMCallLatency.WithLabelValues(string(event.Task), string(event.Provider)).Observe(float64(event.LatencyMs))
}

// RecordHTTPRequest records one served request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

var (
	_ service.UseCaseObserver = (*Metrics)(nil)
	_ llm.Observer            = (*Metrics)(nil)
)
