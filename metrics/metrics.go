// SPDX-License-Identifier: MIT

package metrics

import (
	"strconv"
	"time"
)

// RecordOracleSolve records one oracle call with its outcome and duration.
func (r *Registry) RecordOracleSolve(status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.OracleSolvesTotal.WithLabelValues(status).Inc()
	r.OracleSolveDuration.Observe(duration.Seconds())
}

// RecordSubset counts one processed terminal subset.
func (r *Registry) RecordSubset(status string) {
	if r == nil {
		return
	}
	r.SubsetsTotal.WithLabelValues(status).Inc()
}

// SetBreakpoints publishes the size of the latest breakpoint set.
func (r *Registry) SetBreakpoints(n int) {
	if r == nil {
		return
	}
	r.BreakpointsTotal.Set(float64(n))
}

// AddClipped counts horizontal capacities clipped to zero.
func (r *Registry) AddClipped(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.ClippedCapacitiesTotal.Add(float64(n))
}

// RecordWindowPass records the duration of the pass for arcs of one length.
func (r *Registry) RecordWindowPass(length int, duration time.Duration) {
	if r == nil {
		return
	}
	r.WindowPassDuration.WithLabelValues(strconv.Itoa(length)).Observe(duration.Seconds())
}

// SetArcs publishes the arc counts of the latest GTEN.
func (r *Registry) SetArcs(vertical, horizontal int) {
	if r == nil {
		return
	}
	r.ArcsTotal.WithLabelValues(KindVertical).Set(float64(vertical))
	r.ArcsTotal.WithLabelValues(KindHorizontal).Set(float64(horizontal))
}

// RecordStaticFlow records a static max-flow run on a GTEN.
func (r *Registry) RecordStaticFlow(algorithm string, value float64, duration time.Duration) {
	if r == nil {
		return
	}
	r.StaticFlowValue.Set(value)
	r.StaticFlowDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}
