// Package gten builds the generalized time-expanded network (GTEN) of a
// dynamic network over a breakpoint set T̃ = {α(1) < … < α(k)}.
//
// Every node v gets one copy v^i per layer i = 1..k. Two kinds of arcs join
// the copies:
//
//	vertical    (v^i, v^{i+1})   capacity +∞, length 1
//	horizontal  (v^i, w^j), i≤j  one per network arc (v,w) and layer pair
//
// Horizontal capacities come from WindowEngine: a length-0 copy holds what
// the arc can carry between α(i) and α(i+1); a longer copy (v^i, w^j) holds
// what the arc can carry between α(i) and α(j+1) minus what the shorter
// copies between the same layers already offer (CutCapacity over the
// window), clipped at zero. Copies into the top layer stay at zero.
//
// The arc list lives in an immutable Table; each pass over one arc length
// reads one version and produces the next, so rows of the same length can
// be evaluated in parallel.
//
// Network.MaxFlow solves a static max-flow from every copy of S+ to every
// copy of S- with a flow.Engine; Network.Render prints the arc table.
package gten
