package microbench

import (
	"testing"
	"time"
)

// AssertFasterThan fails the test when the result's fastest sample took
// budget or longer. Useful as a performance regression guard in a test
// suite:
//
//	res := microbench.Run(bench, &opts, encode)
//	microbench.AssertFasterThan(t, res, 50*time.Millisecond)
func AssertFasterThan(t *testing.T, res *Result, budget time.Duration) {
	t.Helper()

	elapsed := time.Duration(res.AsNanos())
	if elapsed >= budget {
		t.Errorf("Too slow: fastest sample took %v (budget: %v)", elapsed, budget)
		return
	}
	t.Logf("✓ Fastest sample %v within budget %v", elapsed, budget)
}

// AssertThroughputAtLeast fails the test when the rate falls below min
// units per second.
func AssertThroughputAtLeast(t *testing.T, tp Throughput, min float64) {
	t.Helper()

	rate := tp.AsF()
	if rate < min {
		t.Errorf("Throughput too low: %.2f/s (min: %.2f/s)\n"+
			"Rendered: %s", rate, min, tp)
		return
	}
	t.Logf("✓ Throughput %s (min: %.2f/s)", tp, min)
}
