// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initOracleMetrics() {
	r.OracleSolvesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gten_oracle_solves_total",
			Help: "Min-cut-over-time LP solves by outcome",
		},
		[]string{"status"},
	)

	r.OracleSolveDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gten_oracle_solve_duration_seconds",
			Help:    "Wall time of one min-cut-over-time LP solve",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)
}

func (r *Registry) initAggregationMetrics() {
	r.SubsetsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gten_subsets_total",
			Help: "Valid terminal subsets processed by outcome",
		},
		[]string{"status"},
	)

	r.BreakpointsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gten_breakpoints",
			Help: "Number of distinct breakpoints of the last aggregation",
		},
	)
}

func (r *Registry) initBuildMetrics() {
	r.ClippedCapacitiesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "gten_clipped_capacities_total",
			Help: "Horizontal arcs whose window-corrected capacity was clipped to zero",
		},
	)

	r.WindowPassDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gten_window_pass_duration_seconds",
			Help:    "Wall time of one window-capacity pass",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"length"},
	)

	r.ArcsTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gten_arcs",
			Help: "Arcs of the last built GTEN by kind",
		},
		[]string{"kind"},
	)
}

func (r *Registry) initFlowMetrics() {
	r.StaticFlowValue = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gten_static_flow_value",
			Help: "Max-flow value of the last static flow run on a GTEN",
		},
	)

	r.StaticFlowDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gten_static_flow_duration_seconds",
			Help:    "Wall time of a static max-flow run",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"algorithm"},
	)
}
