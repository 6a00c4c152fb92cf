package microbench

import "fmt"

// Unit tags a throughput rate with what is being counted per second.
type Unit int

const (
	// UnitNone reports an unadorned rate.
	UnitNone Unit = iota
	// UnitBytes reports bytes per second.
	UnitBytes
	// UnitBits reports bits per second.
	UnitBits
)

// String returns the unit suffix used in rendered rates.
func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "B"
	case UnitBits:
		return "b"
	default:
		return ""
	}
}

// Throughput is a read-only projection of a Result and a data volume: the
// rate at which the fastest sample processed data. It is computed on demand
// and never stored.
type Throughput struct {
	volume float64
	result *Result
	unit   Unit
}

// Throughput derives an untagged rate from the result. volume is the number
// of bytes processed by a single workload iteration; the total is scaled by
// the configured iteration count. The product is computed in floating point,
// so extreme volumes lose precision rather than silently wrapping.
func (r *Result) Throughput(volume uint64) Throughput {
	return Throughput{
		volume: float64(volume) * float64(r.opts.Iterations),
		result: r,
		unit:   UnitNone,
	}
}

// ThroughputBytes is Throughput with the rate tagged as bytes per second.
func (r *Result) ThroughputBytes(volume uint64) Throughput {
	return Throughput{
		volume: float64(volume) * float64(r.opts.Iterations),
		result: r,
		unit:   UnitBytes,
	}
}

// ThroughputBits is Throughput with the volume converted to bits and the
// rate tagged as bits per second.
func (r *Result) ThroughputBits(volume uint64) Throughput {
	return Throughput{
		volume: float64(volume) * float64(r.opts.Iterations) * 8,
		result: r,
		unit:   UnitBits,
	}
}

// rate returns units per second. Elapsed time is floored at one nanosecond
// so a measurement below timer resolution cannot divide by zero.
func (tp Throughput) rate() float64 {
	return tp.volume * 1e9 / float64(max(uint64(1), tp.result.AsNanos()))
}

// AsF returns the rate as units per second.
func (tp Throughput) AsF() float64 {
	return tp.rate()
}

// AsU64 returns the rate truncated to an integer.
func (tp Throughput) AsU64() uint64 {
	return uint64(tp.rate())
}

// AsKilo returns the rate in kilo-units (divisor 1000).
func (tp Throughput) AsKilo() float64 {
	return tp.rate() / 1e3
}

// AsMega returns the rate in mega-units.
func (tp Throughput) AsMega() float64 {
	return tp.rate() / 1e6
}

// AsGiga returns the rate in giga-units.
func (tp Throughput) AsGiga() float64 {
	return tp.rate() / 1e9
}

// AsKibi returns the rate in kibi-units (divisor 1024).
func (tp Throughput) AsKibi() float64 {
	return tp.rate() / 1024
}

// AsMebi returns the rate in mebi-units.
func (tp Throughput) AsMebi() float64 {
	return tp.rate() / (1024 * 1024)
}

// AsGibi returns the rate in gibi-units.
func (tp Throughput) AsGibi() float64 {
	return tp.rate() / (1024 * 1024 * 1024)
}

// AsKiloBits returns the rate in kilobits per second, treating the stored
// volume as bytes.
func (tp Throughput) AsKiloBits() float64 {
	return tp.rate() * 8 / 1e3
}

// AsMegaBits returns the rate in megabits per second, treating the stored
// volume as bytes.
func (tp Throughput) AsMegaBits() float64 {
	return tp.rate() * 8 / 1e6
}

// AsGigaBits returns the rate in gigabits per second, treating the stored
// volume as bytes.
func (tp Throughput) AsGigaBits() float64 {
	return tp.rate() * 8 / 1e9
}

// String renders the rate with a magnitude-appropriate decimal prefix and
// the unit tag: "812.50 /s", "1.00 KB/s", "3.42 Mb/s", "1.21 GB/s".
func (tp Throughput) String() string {
	var scale float64
	var prefix string
	switch n := tp.AsU64(); {
	case n < 1_000:
		scale, prefix = 1, ""
	case n < 1_000_000:
		scale, prefix = 1e3, "K"
	case n < 1_000_000_000:
		scale, prefix = 1e6, "M"
	default:
		scale, prefix = 1e9, "G"
	}
	return fmt.Sprintf("%.2f %s%s/s", tp.rate()/scale, prefix, tp.unit)
}
