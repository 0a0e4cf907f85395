// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// Edge weights are ignored for distance purposes; WithFilterEdge and
// WithMinWeight let callers restrict the search to edges with residual
// capacity, which is how package flow derives the source side of a
// minimum cut.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gten/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from a single start vertex.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	return Reachable(g, []string{startID}, opts...)
}

// Reachable runs a multi-source breadth-first search: every start vertex is
// seeded at depth 0. Duplicate starts are visited once.
//
// Errors: ErrGraphNil, ErrNoStart, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, context errors, or any OnVisit error.
func Reachable(g *core.Graph, starts []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range starts {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, s)
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	for _, s := range starts {
		if !w.res.Reached(s) {
			w.enqueue(s, 0, "")
		}
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors follows every admissible edge out of item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr := e.To
		if !e.Directed && nbr == item.id {
			nbr = e.From
		}
		if !w.res.Reached(nbr) {
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}

	return nil
}
