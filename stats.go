package microbench

import "math"

// meanStdDev returns the mean and the unbiased (n-1 divisor) sample standard
// deviation of values. Requires len(values) >= 2.
func meanStdDev(values []float64) (mean, stddev float64) {
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / n

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	stddev = math.Sqrt(sq / (n - 1))
	return mean, stddev
}

// relStdDev returns the relative standard deviation of values in percent.
// ok is false when the RSD is undefined: fewer than two values, a zero mean
// (instantaneous workload below timer resolution), or a non-finite ratio.
// An undefined RSD must read as "not converged", never as NaN.
func relStdDev(values []float64) (rsd float64, ok bool) {
	if len(values) < 2 {
		return 0, false
	}
	mean, stddev := meanStdDev(values)
	if mean == 0 {
		return 0, false
	}
	rsd = stddev * 100 / mean
	if math.IsNaN(rsd) || math.IsInf(rsd, 0) {
		return 0, false
	}
	return rsd, true
}
