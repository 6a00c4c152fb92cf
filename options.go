package microbench

import (
	"os"
	"time"
)

// VerboseEnv is the environment variable that, when present, defaults
// Options.Verbose to true. It is read once, inside DefaultOptions.
const VerboseEnv = "BENCHMARK_VERBOSE"

// Options controls a benchmark run. A run snapshots its Options at entry, so
// mutating a caller-held Options value never affects an in-flight run.
type Options struct {
	// Iterations is the number of workload invocations folded into one
	// timed sample. Batching amortizes per-call overhead and timer
	// granularity. Values below 1 are treated as 1.
	Iterations uint64

	// WarmupIterations is the number of untimed invocations executed
	// before sampling begins. Results are discarded.
	WarmupIterations uint64

	// MinSamples is the minimum number of timed samples before
	// convergence may be declared.
	MinSamples int

	// MaxSamples is the hard cap on timed samples. Values below 1 are
	// treated as 1.
	MaxSamples int

	// MaxRSD is the convergence threshold on the relative standard
	// deviation of the collected samples, in percent (0 to 100). The
	// run converges when the RSD falls strictly below this value.
	MaxRSD float64

	// MaxDuration is an optional wall-clock budget for the whole run,
	// checked between samples. Zero means no budget.
	MaxDuration time.Duration

	// Verbose enables per-sample narration through the Bench logger.
	Verbose bool
}

// DefaultOptions returns the reference defaults. Verbose defaults to true
// when BENCHMARK_VERBOSE is present in the environment.
func DefaultOptions() Options {
	_, verbose := os.LookupEnv(VerboseEnv)
	return Options{
		Iterations:       1,
		WarmupIterations: 0,
		MinSamples:       3,
		MaxSamples:       5,
		MaxRSD:           5.0,
		MaxDuration:      0,
		Verbose:          verbose,
	}
}

// normalized returns a copy with degenerate values clamped into range.
func (o Options) normalized() Options {
	if o.Iterations < 1 {
		o.Iterations = 1
	}
	if o.MinSamples < 1 {
		o.MinSamples = 1
	}
	if o.MaxSamples < 1 {
		o.MaxSamples = 1
	}
	return o
}
