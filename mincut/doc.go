// Package mincut provides the min-cut-over-time oracle: a pluggable Oracle
// capability and LPOracle, its linear-programming implementation.
//
// For a network with capacities u and transit times τ, horizon T and a
// relabelled terminal partition (S+ ∩ X, S- \ X), the oracle solves
//
//	min Σ u_a·y_a
//	s.t. y_a + α_v − α_w ≥ −τ_a,  y ≥ 0,  α ≥ 0
//	     α(S+ ∩ X) = 0,  α(S- \ X) = T
//
// on the network augmented by a super node ψ (ψ→s with u=∞, τ=0 and t→ψ
// with u=∞, τ=−T). The potentials α, stripped of ψ and rounded to integers,
// are the time labels from which breakpoints are collected.
//
// Errors:
//
//	ErrInfeasible            – no feasible potential; callers skip the subset
//	ErrSolver                – solver failure or ctx expiry, wraps the cause
//	network.ErrMalformedInput – empty network, T ≤ 0, super node collision
//
// Tests and callers that need a deterministic stand-in can use OracleFunc.
// Instrumented adds Prometheus accounting around any Oracle.
package mincut
