// Package flow implements maximum-flow algorithms on graphs represented by
// *core.Graph, and a multi-terminal min-cut Engine used to evaluate static
// flows on generalized time-expanded networks.
//
// The algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V + E) for the residual network and BFS queue.
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(V² · E) in general, O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V + E).
//
// # Capacities
//
// Edge weights are float64 capacities. +Inf is allowed and stays +Inf in the
// residual network; an augmenting path made only of +Inf arcs yields
// ErrUnboundedFlow. Parallel edges are aggregated, self-loops ignored, and
// aggregated capacities ≤ Epsilon treated as absent.
//
// # API
//
//	func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (float64, *core.Graph, error)
//	func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (float64, *core.Graph, error)
//
// Each returns the maximum flow value and a residual graph whose arcs carry
// the remaining forward capacity and the reverse capacity created by flow.
//
//	func NewEngine(alg Algorithm, opts FlowOptions) (Engine, error)
//	Engine.MinCut(ctx, g, sources, sinks) (*CutResult, error)
//
// MinCut joins every source to SuperSource and every sink to SuperSink with
// +Inf arcs, computes a maximum flow, and reports the source side of the
// minimum cut (residual reachability), the per-arc flow and the cut arcs.
//
// # Errors
//
//	ErrSourceNotFound   - the source vertex is missing.
//	ErrSinkNotFound     - the sink vertex is missing.
//	ErrUnboundedFlow    - an all-+Inf augmenting path exists.
//	ErrReservedVertex   - the graph already uses SuperSource/SuperSink.
//	ErrUnknownAlgorithm - NewEngine received an unsupported name.
//	EdgeError           - a negative capacity (beyond Epsilon) was found.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx was canceled.
package flow
