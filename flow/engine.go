// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Multi-source/multi-sink min-cut on top of Dinic or Edmonds–Karp.
// Determinism:
//   - SourceSide, SinkSide and CutEdges are sorted.
// Concurrency:
//   - An Engine is immutable after NewEngine and safe for concurrent use;
//     every MinCut call works on its own augmented copy of the graph.

package flow

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gten/bfs"
	"github.com/katalvlaran/gten/core"
)

// Reserved vertex IDs of the super source and super sink.
const (
	SuperSource = "__S__"
	SuperSink   = "__T__"
)

// Algorithm names a max-flow routine.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmDinic       Algorithm = "dinic"
	AlgorithmEdmondsKarp Algorithm = "edmonds-karp"
)

// CutResult is the outcome of a multi-terminal max-flow / min-cut run.
type CutResult struct {
	// Value is the maximum flow, equal to the capacity of the minimum cut.
	Value float64

	// SourceSide holds the original vertices reachable from the sources in
	// the final residual graph; SinkSide holds the rest.
	SourceSide []string
	SinkSide   []string

	// Flow maps every original arc {tail, head} to the flow it carries.
	Flow map[[2]string]float64

	// CutEdges lists the original arcs from SourceSide into SinkSide.
	CutEdges [][2]string
}

// Engine computes a maximum flow and minimum cut between vertex sets.
type Engine interface {
	MinCut(ctx context.Context, g *core.Graph, sources, sinks []string) (*CutResult, error)

	// Algorithm reports the max-flow routine behind the engine.
	Algorithm() Algorithm
}

type runner func(g *core.Graph, source, sink string, opts FlowOptions) (*residualNet, float64, error)

type solverEngine struct {
	alg  Algorithm
	run  runner
	opts FlowOptions
}

// NewEngine returns an Engine backed by the named algorithm.
// An empty name selects Dinic.
func NewEngine(alg Algorithm, opts FlowOptions) (Engine, error) {
	opts.normalize()
	e := &solverEngine{alg: alg, opts: opts}
	switch alg {
	case AlgorithmDinic, "":
		e.alg, e.run = AlgorithmDinic, dinic
	case AlgorithmEdmondsKarp:
		e.run = edmondsKarp
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	return e, nil
}

func (e *solverEngine) Algorithm() Algorithm { return e.alg }

// MinCut attaches SuperSource to every source and every sink to SuperSink
// with +Inf arcs, runs the configured max-flow routine, and derives the
// source side of the minimum cut by residual reachability from SuperSource.
// Sources and sinks absent from g are skipped; if none remain the value is 0.
//
// Implementation:
//   - Stage 1: Reject graphs that already contain SuperSource/SuperSink.
//   - Stage 2: Copy g into a directed multigraph (undirected edges become
//     two opposite arcs) and add the super arcs.
//   - Stage 3: Run the algorithm; ErrUnboundedFlow surfaces when a vertex is
//     both a source and a sink or an all-+Inf path joins them.
//   - Stage 4: bfs.Reachable over the residual graph (arcs > Epsilon).
//
// Complexity: that of the chosen algorithm plus O(V + E log E).
func (e *solverEngine) MinCut(ctx context.Context, g *core.Graph, sources, sinks []string) (*CutResult, error) {
	if g.HasVertex(SuperSource) || g.HasVertex(SuperSink) {
		return nil, ErrReservedVertex
	}
	opts := e.opts
	if ctx != nil {
		opts.Ctx = ctx
	}

	aug, err := augment(g, sources, sinks)
	if err != nil {
		return nil, err
	}
	rn, value, err := e.run(aug, SuperSource, SuperSink, opts)
	if err != nil {
		return nil, fmt.Errorf("flow: %s: %w", e.alg, err)
	}
	residual, err := buildCoreResidualFromCapMap(rn, aug, opts)
	if err != nil {
		return nil, err
	}
	reach, err := bfs.Reachable(residual, []string{SuperSource},
		bfs.WithContext(opts.Ctx),
		bfs.WithMinWeight(opts.Epsilon),
	)
	if err != nil {
		return nil, err
	}

	res := &CutResult{Value: value, Flow: make(map[[2]string]float64)}
	for _, v := range g.Vertices() {
		if reach.Reached(v) {
			res.SourceSide = append(res.SourceSide, v)
		} else {
			res.SinkSide = append(res.SinkSide, v)
		}
	}
	seen := make(map[[2]string]struct{})
	for _, edge := range g.Edges() {
		for _, arc := range orientations(edge) {
			if _, dup := seen[arc]; dup {
				continue
			}
			seen[arc] = struct{}{}
			res.Flow[arc] = rn.arcFlow(arc[0], arc[1])
			if reach.Reached(arc[0]) && !reach.Reached(arc[1]) {
				res.CutEdges = append(res.CutEdges, arc)
			}
		}
	}
	sort.Slice(res.CutEdges, func(i, j int) bool {
		if res.CutEdges[i][0] != res.CutEdges[j][0] {
			return res.CutEdges[i][0] < res.CutEdges[j][0]
		}
		return res.CutEdges[i][1] < res.CutEdges[j][1]
	})

	return res, nil
}

// augment copies g into a directed weighted multigraph and wires the super
// terminals to the terminals present in g.
func augment(g *core.Graph, sources, sinks []string) (*core.Graph, error) {
	aug := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for _, v := range g.Vertices() {
		if err := aug.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, edge := range g.Edges() {
		for _, arc := range orientations(edge) {
			if _, err := aug.AddEdge(arc[0], arc[1], edge.Weight); err != nil {
				return nil, err
			}
		}
	}
	if err := aug.AddVertex(SuperSource); err != nil {
		return nil, err
	}
	if err := aug.AddVertex(SuperSink); err != nil {
		return nil, err
	}

	inf := math.Inf(1)
	done := make(map[[2]string]struct{})
	wire := func(from, to string) error {
		if _, dup := done[[2]string{from, to}]; dup {
			return nil
		}
		done[[2]string{from, to}] = struct{}{}
		_, err := aug.AddEdge(from, to, inf)
		return err
	}
	for _, s := range sources {
		if g.HasVertex(s) {
			if err := wire(SuperSource, s); err != nil {
				return nil, err
			}
		}
	}
	for _, t := range sinks {
		if g.HasVertex(t) {
			if err := wire(t, SuperSink); err != nil {
				return nil, err
			}
		}
	}

	return aug, nil
}

// orientations lists the directed arcs an edge contributes: itself, plus the
// reverse when undirected. Self-loops contribute nothing.
func orientations(e *core.Edge) [][2]string {
	if e.From == e.To {
		return nil
	}
	if e.Directed {
		return [][2]string{{e.From, e.To}}
	}

	return [][2]string{{e.From, e.To}, {e.To, e.From}}
}
