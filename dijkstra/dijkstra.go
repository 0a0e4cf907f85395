// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gten/core"
)

// Dijkstra computes shortest distances from the nearest of the configured
// sources to every vertex of the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if WithReturnPath was given, else nil.
//     prev[v] == "" for sources and unreachable vertices.
//
// Preconditions and validation (in order):
//  1. Option errors (ErrBadMaxDistance).
//  2. At least one source (ErrNoSource).
//  3. g non-nil (ErrNilGraph) and weighted (ErrUnweightedGraph).
//  4. Every source present in g (ErrVertexNotFound).
//  5. No negative or NaN edge weight (ErrNegativeWeight).
//
// +Inf edges are passable but leave the head at +Inf.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if len(cfg.Sources) == 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	for _, s := range cfg.Sources {
		if !g.HasVertex(s) {
			return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, s)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes each source at 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		if r.dist[s] == 0 {
			continue
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem{id: s, dist: 0})
	}
}

// process pops vertices in distance order until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's out-neighbours.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.To
		if e.From != u {
			// undirected edge stored from the other side
			v = e.From
		}
		if !r.options.FilterEdge(u, v, e.Weight) {
			continue
		}
		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry; stale entries are skipped when popped.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by ID.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
