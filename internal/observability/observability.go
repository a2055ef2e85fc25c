// Package observability provides the health and metrics endpoints exposed by
// the serve command. Instruments are OTel, exported pull-style through a
// Prometheus registry; there is no push exporter and no tracing.
package observability

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const healthStatusOK = "ok"

// meterName identifies the prlens instrumentation scope.
const meterName = "prlens"

// HealthHandler returns an [http.Handler] for liveness checks at /healthz.
// It always returns HTTP 200 with {"status":"ok"}.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusOK)

		data, err := json.Marshal(map[string]string{"status": healthStatusOK})
		if err != nil {
			return
		}

		_, _ = rw.Write(data)
	})
}

// Metrics bundles the /metrics scrape handler with the meter used to build
// instruments.
type Metrics struct {
	Handler http.Handler
	Meter   metric.Meter
}

// NewMetrics creates a Prometheus registry with an OTel meter provider
// attached as its collection source. Each call creates an independent
// registry to avoid collector conflicts.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	return &Metrics{
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Meter:   provider.Meter(meterName),
	}, nil
}
