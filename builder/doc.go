// Package builder generates deterministic dynamic networks, with terminal
// sets, for tests, benchmarks and examples.
//
// Constructors (Path, Grid, RandomSparse) are composed by BuildNetwork and
// configured with functional options: WithSeed/WithRand for stochastic
// draws, WithIDScheme for node names, and WithCapacityFn/WithTransitFn (or
// the Uniform*/Constant* shorthands) for arc attributes.
//
//	net, terms, err := builder.BuildNetwork(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformTransit(0, 3)},
//	    builder.RandomSparse(8, 0.2, 2, 1),
//	)
//
// Same options, seed and constructor order always give the same network.
package builder
