// Package network holds the dynamic flow network model: arcs keyed by
// (tail, head), each with a capacity per time unit and a transit time, plus
// the partition of terminals into sources S+ and sinks S-.
//
// A Network is assembled with AddArc (or by filling its exported fields) and
// checked with Validate before anything downstream runs. Every contract
// violation is reported as an *InputError wrapping ErrMalformedInput:
//
//	if err := network.Validate(net, terms); err != nil {
//	    var ie *network.InputError
//	    if errors.As(err, &ie) {
//	        log.Printf("bad %s %s: %s", ie.Set, ie.Arc, ie.Reason)
//	    }
//	}
package network
