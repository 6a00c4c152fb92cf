package microbench

import (
	"fmt"
	"log/slog"
	"time"
)

// Bench is a benchmarking environment: a timer precision descriptor plus a
// logger for verbose narration. A Bench is safe to reuse across runs; each
// run owns its own options snapshot and sample sequence.
type Bench struct {
	precision Precision
	log       *slog.Logger
}

// New creates a benchmarking environment. It fails only when the monotonic
// timer cannot be probed, in which case no measurement is possible.
func New() (*Bench, error) {
	precision, err := NewPrecision()
	if err != nil {
		return nil, fmt.Errorf("microbench: timer init: %w", err)
	}
	return &Bench{precision: precision, log: slog.Default()}, nil
}

// SetLogger replaces the logger used for verbose narration. Narration is
// observational only; it never affects sampling decisions.
func (b *Bench) SetLogger(log *slog.Logger) {
	b.log = log
}

// Precision returns the timer descriptor measurements are taken with.
func (b *Bench) Precision() Precision {
	return b.precision
}

// Run executes the full warm-up and adaptive sampling loop for workload and
// returns the fastest sample observed. It blocks the calling goroutine for
// the whole run and always returns a non-nil Result: at least one sample is
// taken before any stopping check.
//
// Every workload return value is passed through BlackBox so the benchmarked
// computation survives dead-code elimination.
func Run[T any](b *Bench, opts *Options, workload func() T) *Result {
	return b.run(opts, func() {
		BlackBox(workload())
	})
}

// run drives the sampling loop over an already-sunk invocation closure.
func (b *Bench) run(opts *Options, invoke func()) *Result {
	o := opts.normalized() // snapshot: caller mutations cannot reach the run

	if o.Verbose {
		b.log.Info("starting benchmark",
			"iterations", o.Iterations,
			"min_samples", o.MinSamples,
			"max_samples", o.MaxSamples,
			"max_rsd", o.MaxRSD)
		if o.WarmupIterations > 0 {
			b.log.Info("warming up", "iterations", o.WarmupIterations)
		}
	}

	for i := uint64(0); i < o.WarmupIterations; i++ {
		invoke()
	}

	samples := make([]*Result, 0, o.MaxSamples)
	secs := make([]float64, 0, o.MaxSamples)
	runStart := b.precision.Now()

	for i := 1; i <= o.MaxSamples; i++ {
		sample := b.runOnce(&o, invoke)
		samples = append(samples, sample)
		secs = append(secs, sample.AsSecsF())

		if len(samples) <= 1 {
			if o.Verbose {
				b.log.Info("sample collected", "sample", i, "elapsed", sample.String())
			}
			continue
		}

		mean, stddev := meanStdDev(secs)
		rsd, _ := relStdDev(secs)
		if o.Verbose {
			b.log.Info("sample collected",
				"sample", i,
				"elapsed", sample.String(),
				"mean", fmt.Sprintf("%.2fs", mean),
				"rsd", fmt.Sprintf("%.2f%%", rsd),
				"stddev", fmt.Sprintf("%.4fs", stddev))
		}

		if converged(secs, o.MinSamples, o.MaxRSD) {
			if o.Verbose {
				b.log.Info("converged", "samples", len(samples), "rsd", fmt.Sprintf("%.2f%%", rsd))
			}
			break
		}

		if o.MaxDuration > 0 {
			elapsed := time.Duration(b.precision.Now().Sub(runStart).Secs(b.precision)) * time.Second
			if elapsed >= o.MaxDuration {
				if o.Verbose {
					b.log.Info("wall-clock budget exceeded", "elapsed", elapsed, "samples", len(samples))
				}
				break
			}
		}
	}

	best := fastest(samples)
	if o.Verbose {
		b.log.Info("benchmark finished", "result", best.String(), "samples", len(samples))
	}
	return best
}

// runOnce times one sample: o.Iterations back-to-back invocations measured
// as a single elapsed block.
func (b *Bench) runOnce(o *Options, invoke func()) *Result {
	start := b.precision.Now()
	for i := uint64(0); i < o.Iterations; i++ {
		invoke()
	}
	elapsed := b.precision.Now().Sub(start)
	return &Result{
		elapsed:   elapsed,
		precision: b.precision,
		opts:      o,
	}
}

// converged reports whether the collected sample durations satisfy the
// stopping rule: at least minSamples of them and a relative standard
// deviation strictly below maxRSD. An RSD exactly at the threshold is not
// converged, and an undefined RSD (zero mean, too few points) never is.
func converged(secs []float64, minSamples int, maxRSD float64) bool {
	if len(secs) < minSamples {
		return false
	}
	rsd, ok := relStdDev(secs)
	return ok && rsd < maxRSD
}

// fastest returns the sample with the minimum elapsed nanoseconds, ties
// broken by insertion order.
func fastest(samples []*Result) *Result {
	best := samples[0]
	for _, s := range samples[1:] {
		if s.AsNanos() < best.AsNanos() {
			best = s
		}
	}
	return best
}
