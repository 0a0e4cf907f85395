// Package subsets enumerates the valid terminal subsets that drive the
// breakpoint search.
//
// Given sources S+ and sinks S-, a subset X ⊆ S+ ∪ S- is valid when some
// source stays a source (S+ ∩ X ≠ ∅) and some sink stays a sink
// (S- \ X ≠ ∅). There are (2^|S+| − 1)·(2^|S-| − 1) of them, so the walk is
// exponential in the number of terminals but independent of network size.
// Each streams them, Enumerate collects them, Count gives the closed form
// and Split derives (S+ ∩ X, S- \ X).
package subsets
