package microbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanStdDev(t *testing.T) {
	mean, stddev := meanStdDev([]float64{1, 2, 3, 4})

	assert.InDelta(t, 2.5, mean, 1e-12)
	// Unbiased: sqrt((2.25+0.25+0.25+2.25)/3) = sqrt(5/3)
	assert.InDelta(t, math.Sqrt(5.0/3.0), stddev, 1e-12)
}

func TestMeanStdDev_Identical(t *testing.T) {
	mean, stddev := meanStdDev([]float64{7, 7, 7})

	assert.InDelta(t, 7, mean, 1e-12)
	assert.Zero(t, stddev)
}

func TestRelStdDev(t *testing.T) {
	rsd, ok := relStdDev([]float64{9, 11})
	require.True(t, ok)
	// stddev = sqrt(2), mean = 10 → RSD = 14.142...%
	assert.InDelta(t, math.Sqrt2*10, rsd, 1e-9)
}

func TestRelStdDev_Undefined(t *testing.T) {
	_, ok := relStdDev([]float64{1})
	assert.False(t, ok, "fewer than two points")

	_, ok = relStdDev(nil)
	assert.False(t, ok, "empty")

	_, ok = relStdDev([]float64{0, 0})
	assert.False(t, ok, "zero mean must not divide")
}
