package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gten/builder"
	"github.com/katalvlaran/gten/network"
)

func TestPath(t *testing.T) {
	net, terms, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn), builder.WithConstantCapacity(3)},
		builder.Path(3),
	)
	require.NoError(t, err)
	require.Equal(t, []network.Arc{{Tail: "A", Head: "B"}, {Tail: "B", Head: "C"}}, net.Arcs)
	require.Equal(t, 3.0, net.Capacity[network.Arc{Tail: "A", Head: "B"}])
	require.Equal(t, 1.0, net.TransitTime[network.Arc{Tail: "B", Head: "C"}])
	require.Equal(t, network.Terminals{Sources: []string{"A"}, Sinks: []string{"C"}}, terms)
	require.NoError(t, network.Validate(net, terms))
}

func TestGrid(t *testing.T) {
	net, terms, err := builder.BuildNetwork(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	require.Len(t, net.Arcs, 7)
	require.Equal(t, []string{"0,0"}, terms.Sources)
	require.Equal(t, []string{"1,2"}, terms.Sinks)
	require.NoError(t, network.Validate(net, terms))
}

func TestRandomSparseDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithUniformCapacity(1, 4),
		builder.WithUniformTransit(0, 3),
	}
	a, ta, err := builder.BuildNetwork(opts, builder.RandomSparse(6, 0.3, 2, 2))
	require.NoError(t, err)
	opts[0] = builder.WithSeed(42)
	b, tb, err := builder.BuildNetwork(opts, builder.RandomSparse(6, 0.3, 2, 2))
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(a, b))
	require.Empty(t, cmp.Diff(ta, tb))
	require.Equal(t, []string{"v0", "v1"}, ta.Sources)
	require.Equal(t, []string{"v4", "v5"}, ta.Sinks)
	require.NoError(t, network.Validate(a, ta))
	for _, arc := range a.Arcs {
		require.GreaterOrEqual(t, a.Capacity[arc], 1.0)
		require.LessOrEqual(t, a.TransitTime[arc], 3.0)
	}
}

func TestRandomSparseComplete(t *testing.T) {
	net, _, err := builder.BuildNetwork(nil, builder.RandomSparse(4, 1, 1, 1))
	require.NoError(t, err)
	require.Len(t, net.Arcs, 12)

	net, _, err = builder.BuildNetwork(nil, builder.RandomSparse(4, 0, 1, 1))
	require.NoError(t, err)
	require.Len(t, net.Arcs, 3, "backbone only")
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"short path", builder.Path(1), builder.ErrTooFewVertices},
		{"empty grid", builder.Grid(1, 1), builder.ErrTooFewVertices},
		{"bad probability", builder.RandomSparse(4, 1.5, 1, 1), builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse(4, 0.5, 1, 1), builder.ErrNeedRandSource},
		{"too many terminals", builder.RandomSparse(3, 0.5, 2, 2), builder.ErrTooFewVertices},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := builder.BuildNetwork(nil, tc.con)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, _, err := builder.BuildNetwork(nil, builder.Path(3), builder.Path(3))
	require.ErrorIs(t, err, network.ErrMalformedInput, "duplicate arcs surface from the network")
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithCapacityFn(nil) })
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.UniformIntWeightFn(3, 1) })
}
