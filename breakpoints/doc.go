// Package breakpoints collects the breakpoint set T̃ of a dynamic network:
// the union, over every valid terminal subset X, of the node potentials the
// min-cut-over-time oracle returns for the relabelling (S+ ∩ X, S- \ X).
//
// Aggregate validates its input, enumerates subsets with package subsets,
// and calls a mincut.Oracle once per subset, sequentially or under a
// bounded errgroup (WithWorkers). Infeasible subsets contribute nothing and
// are logged at warn level; any other oracle failure aborts the run.
// Potentials are clamped to [0,T]; with horizon closure (the default) T is
// always a breakpoint.
//
// The per-subset outcomes (pinned sets, potentials, cut value) are returned
// in enumeration order alongside the breakpoints.
package breakpoints
