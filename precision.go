package microbench

import (
	"errors"
	"time"
)

// nanosPerSecond is the tick frequency of the Go runtime's monotonic clock.
const nanosPerSecond = uint64(time.Second / time.Nanosecond)

// epoch anchors tick readings. Only differences between readings are
// meaningful.
var epoch = time.Now()

// Ticks is a raw reading of the monotonic tick source.
type Ticks uint64

// Elapsed is the tick delta between two readings.
type Elapsed uint64

// Precision describes the tick source used to take measurements: how many
// ticks elapse per second. Every unit conversion on an Elapsed value goes
// through a Precision, so two measurements can only be combined when their
// descriptors agree.
type Precision struct {
	frequency uint64
}

// NewPrecision probes the monotonic clock and returns its descriptor.
// It fails if the clock does not advance, in which case no benchmark can be
// run at all.
func NewPrecision() (Precision, error) {
	first := readTicks()
	for i := 0; i < 1_000_000; i++ {
		if readTicks() > first {
			return Precision{frequency: nanosPerSecond}, nil
		}
	}
	return Precision{}, errors.New("monotonic clock is not advancing")
}

// readTicks returns the current tick count. The Go monotonic clock is
// nanosecond-denominated, so one tick is one nanosecond.
func readTicks() Ticks {
	return Ticks(time.Since(epoch))
}

// Now returns the current tick reading.
func (p Precision) Now() Ticks {
	return readTicks()
}

// Frequency returns the number of ticks per second.
func (p Precision) Frequency() uint64 {
	return p.frequency
}

// Sub returns the elapsed ticks since start.
func (t Ticks) Sub(start Ticks) Elapsed {
	return Elapsed(t - start)
}

// Ticks returns the raw tick count.
func (e Elapsed) Ticks() uint64 {
	return uint64(e)
}

// Secs returns the elapsed time in whole seconds, truncated.
func (e Elapsed) Secs(p Precision) uint64 {
	return uint64(e) / p.frequency
}

// SecsF returns the elapsed time in seconds.
func (e Elapsed) SecsF(p Precision) float64 {
	return float64(e) / float64(p.frequency)
}

// Millis returns the elapsed time in whole milliseconds, truncated.
func (e Elapsed) Millis(p Precision) uint64 {
	if p.frequency == nanosPerSecond {
		return uint64(e) / uint64(time.Millisecond)
	}
	return uint64(float64(e) * 1e3 / float64(p.frequency))
}

// Nanos returns the elapsed time in nanoseconds.
func (e Elapsed) Nanos(p Precision) uint64 {
	if p.frequency == nanosPerSecond {
		return uint64(e)
	}
	return uint64(float64(e) * 1e9 / float64(p.frequency))
}
