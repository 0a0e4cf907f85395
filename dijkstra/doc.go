// Package dijkstra computes multi-source shortest distances on a weighted
// core.Graph with non-negative float64 weights.
//
// Within this module the weights are transit times, so the distance from
// S+ to a node is its earliest arrival time; the pipeline reports the
// earliest arrival at any sink next to the horizon.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Sources("s1", "s2"),
//	    dijkstra.WithReturnPath(),
//	)
package dijkstra
