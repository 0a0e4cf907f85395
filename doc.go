// Package gten computes cuts over time in dynamic networks and builds the
// generalized time-expanded network (GTEN) whose static max-flow equals the
// min cut over time.
//
// A dynamic network has arcs with a capacity and a transit time, a set of
// sources S+, a set of sinks S- and an integer horizon T. The work is split
// into packages:
//
//	network/     — dynamic network model, terminals and validation
//	subsets/     — enumeration of non-empty terminal subsets
//	mincut/      — min-cut-over-time oracle (gonum simplex LP)
//	breakpoints/ — aggregates oracle potentials into the breakpoint set
//	gten/        — layered time-expanded network and its window passes
//	core/        — static flow graph used by the GTEN and the solvers
//	flow/        — Dinic and Edmonds–Karp max-flow with min-cut extraction
//	bfs/         — residual reachability
//	dijkstra/    — earliest arrival over transit times
//	builder/     — deterministic network generators for tests and benches
//	metrics/     — Prometheus counters and histograms for every stage
//	pipeline/    — YAML config, logging and the end-to-end Run
//
// Quick ASCII example (capacity/transit):
//
//	s ──2/1──▶ t        T = 4
//
// yields breakpoints {0, 4}, a two-layer GTEN and a static flow of 6.
//
// See examples/evacuation for a runnable command.
package gten
