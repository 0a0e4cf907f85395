// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by edge insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the edges leaving vertex id.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge (mirrored adjacency); self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id over one edge, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nbr := e.To
		if !e.Directed && e.To == id {
			nbr = e.From
		}
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot map vertexID -> sorted unique neighbor IDs.
// Every vertex appears as a key, isolated ones with an empty slice.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string)
	for _, id := range g.Vertices() {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			// vertex removed concurrently between the two snapshots
			continue
		}
		out[id] = nbrs
	}

	return out
}

// ensureAdjacency lazily allocates adjacencyList[from][to].
func ensureAdjacency(g *Graph, from, to string) {
	if _, ok := g.adjacencyList[from]; !ok {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from both its primary and mirrored buckets and
// drops buckets that become empty.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(from, to string) {
		inner, ok := g.adjacencyList[from][to]
		if !ok {
			return
		}
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[from], to)
		}
	}
	unlink(e.From, e.To)
	if !e.Directed && e.From != e.To {
		unlink(e.To, e.From)
	}
}
