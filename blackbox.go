package microbench

// blackBoxGuard is never set at run time; the conditional store below keeps
// the compiler from proving the argument unused.
var (
	blackBoxGuard bool
	blackBoxSink  any
)

// BlackBox returns v unchanged while forcing the compiler to materialize it.
// Computations whose results feed into BlackBox cannot be eliminated as dead
// code, which would otherwise make a benchmarked function measure as free.
// The harness routes every workload result through BlackBox, warm-up
// included; call it directly for intermediate values a workload would
// otherwise discard.
//
//go:noinline
func BlackBox[T any](v T) T {
	if blackBoxGuard {
		blackBoxSink = v
	}
	return v
}
