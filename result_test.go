package microbench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(ns uint64, opts *Options) *Result {
	return &Result{
		elapsed:   Elapsed(ns),
		precision: Precision{frequency: nanosPerSecond},
		opts:      opts,
	}
}

func TestResult_Conversions(t *testing.T) {
	o := DefaultOptions()
	r := testResult(1_500_000_000, &o) // 1.5s

	assert.EqualValues(t, 1_500_000_000, r.Ticks())
	assert.EqualValues(t, 1, r.AsSecs(), "whole seconds truncate")
	assert.InDelta(t, 1.5, r.AsSecsF(), 1e-12)
	assert.EqualValues(t, 1500, r.AsMillis())
	assert.EqualValues(t, 1_500_000_000, r.AsNanos())
	assert.Equal(t, "1.50s", r.String())
}

func TestResult_Add(t *testing.T) {
	o1 := DefaultOptions()
	o2 := DefaultOptions()
	o2.Iterations = 99

	a := testResult(uint64(time.Second), &o1)
	b := testResult(uint64(2*time.Second), &o2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.EqualValues(t, 3*time.Second, sum.AsNanos())
	assert.EqualValues(t, o1.Iterations, sum.Options().Iterations,
		"merge keeps the receiver's options context")
}

func TestResult_AddMismatchedPrecision(t *testing.T) {
	o := DefaultOptions()
	a := testResult(100, &o)
	b := &Result{
		elapsed:   Elapsed(100),
		precision: Precision{frequency: 1_000_000},
		opts:      &o,
	}

	_, err := a.Add(b)
	require.Error(t, err, "mismatched tick frequencies must not add silently")
}
