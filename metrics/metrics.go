// Package metrics exposes Prometheus counters for payload validation and MCP
// tool calls.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jakenesler/mailschema/internal"
)

const (
	namespace      = "mailschema"
	operationLabel = "operation"
	partLabel      = "part"
	outcomeLabel   = "outcome"
	toolLabel      = "tool"
)

// Outcomes recorded with every observation.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeOK      = "ok"
	OutcomeError   = "error"
)

// Metrics holds the counters of one process. It registers into a private
// registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	validationTotal *prometheus.CounterVec
	toolCallsTotal  *prometheus.CounterVec
}

// New creates a new instance of Metrics.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	return &Metrics{
		registry: reg,
		validationTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_total",
			Help:      "The total count of payloads validated, by operation, payload part and outcome.",
		}, []string{operationLabel, partLabel, outcomeLabel}),
		toolCallsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "The total count of MCP tool calls, by tool and outcome.",
		}, []string{toolLabel, outcomeLabel}),
	}, nil
}

// ObserveValidation counts one validated payload.
func (m *Metrics) ObserveValidation(operation, part, outcome string) {
	m.validationTotal.With(prometheus.Labels{
		operationLabel: operation,
		partLabel:      part,
		outcomeLabel:   outcome,
	}).Inc()
}

// ObserveToolCall counts one tool call.
func (m *Metrics) ObserveToolCall(tool, outcome string) {
	m.toolCallsTotal.With(prometheus.Labels{
		toolLabel:    tool,
		outcomeLabel: outcome,
	}).Inc()
}

// Registry returns the registry of this metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve serves /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			internal.Errorf("metrics server shutdown: %v", err)
		}
	}()

	internal.Logf("serving metrics on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
