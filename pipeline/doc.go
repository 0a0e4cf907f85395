// Package pipeline wires the packages of this module into one run:
//
//	LoadConfig  YAML → Config (yaml.v3, validator tags)
//	Run         network.Validate → breakpoints.Aggregate → gten.Build →
//	            gten.Network.MaxFlow, plus a direct oracle solve for X = S+
//
// The static max-flow value of the GTEN is reported next to the direct
// minimum cut over time so callers can check that the two agree.
// SetupLogger builds the zerolog logger every stage receives.
package pipeline
