package microbench

import (
	"errors"
	"fmt"
)

// Result is a single benchmark measurement: the elapsed time of the fastest
// sample, together with the precision descriptor needed to interpret its
// ticks and the options snapshot that produced it. A Result is immutable.
type Result struct {
	elapsed   Elapsed
	precision Precision
	opts      *Options
}

// Ticks returns the raw elapsed tick count.
func (r *Result) Ticks() uint64 {
	return r.elapsed.Ticks()
}

// AsSecs returns the elapsed time in whole seconds, truncated.
func (r *Result) AsSecs() uint64 {
	return r.elapsed.Secs(r.precision)
}

// AsSecsF returns the elapsed time in seconds.
func (r *Result) AsSecsF() float64 {
	return r.elapsed.SecsF(r.precision)
}

// AsMillis returns the elapsed time in whole milliseconds, truncated.
func (r *Result) AsMillis() uint64 {
	return r.elapsed.Millis(r.precision)
}

// AsNanos returns the elapsed time in nanoseconds.
func (r *Result) AsNanos() uint64 {
	return r.elapsed.Nanos(r.precision)
}

// Options returns the options snapshot the measurement was taken under.
func (r *Result) Options() Options {
	return *r.opts
}

// Add merges two independently measured results by summing their elapsed
// time, keeping the receiver's options and precision context. Both results
// must have been measured at the same tick frequency; mismatched precisions
// are an error, never a silent tick addition.
func (r *Result) Add(other *Result) (*Result, error) {
	if r.precision.frequency != other.precision.frequency {
		return nil, errors.New("microbench: cannot add results with different tick frequencies")
	}
	return &Result{
		elapsed:   r.elapsed + other.elapsed,
		precision: r.precision,
		opts:      r.opts,
	}, nil
}

// String renders the elapsed time in seconds with two decimals.
func (r *Result) String() string {
	return fmt.Sprintf("%.2fs", r.AsSecsF())
}
