// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric the pipeline records. A nil *Registry is a
// valid no-op recorder, so components can take one unconditionally.
type Registry struct {
	// Oracle metrics
	OracleSolvesTotal   *prometheus.CounterVec
	OracleSolveDuration prometheus.Histogram

	// Aggregation metrics
	SubsetsTotal     *prometheus.CounterVec
	BreakpointsTotal prometheus.Gauge

	// GTEN build metrics
	ClippedCapacitiesTotal prometheus.Counter
	WindowPassDuration     *prometheus.HistogramVec
	ArcsTotal              *prometheus.GaugeVec

	// Static flow metrics
	StaticFlowValue    prometheus.Gauge
	StaticFlowDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// Oracle solve statuses used as the "status" label.
const (
	StatusOptimal    = "optimal"
	StatusInfeasible = "infeasible"
	StatusError      = "error"
)

// GTEN arc kinds used as the "kind" label.
const (
	KindVertical   = "vertical"
	KindHorizontal = "horizontal"
)

// NewRegistry creates a registry with all metrics initialized on a private
// prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initOracleMetrics()
	r.initAggregationMetrics()
	r.initBuildMetrics()
	r.initFlowMetrics()

	return r
}

// GetPrometheusRegistry exposes the underlying registry for gathering or
// serving.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
