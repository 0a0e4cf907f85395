// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an arc attribute (capacity or transit time) from an
// optional RNG. It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(*rand.Rand) float64 { return value }
}

// UniformIntWeightFn samples an integer uniformly in [min, max]. Integer
// transit times keep breakpoints on whole time steps. Panics if min < 0 or
// max < min. With a nil RNG it yields min.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantCapacity sets every capacity to c.
func WithConstantCapacity(c float64) BuilderOption {
	return WithCapacityFn(ConstantWeightFn(c))
}

// WithUniformTransit draws integer transit times from [min, max].
func WithUniformTransit(min, max int) BuilderOption {
	return WithTransitFn(UniformIntWeightFn(min, max))
}

// WithUniformCapacity draws integer capacities from [min, max].
func WithUniformCapacity(min, max int) BuilderOption {
	return WithCapacityFn(UniformIntWeightFn(min, max))
}
