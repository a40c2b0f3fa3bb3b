// Package primesieve is the public API over package sieve: a segmented,
// wheel-factorized sieve of Eratosthenes for counting, printing, or
// streaming primes and prime k-tuplets over large 64-bit intervals.
package primesieve

import (
	"io"

	"github.com/TusharAgarwal123/primesieve/internal/cpuinfo"
	"github.com/TusharAgarwal123/primesieve/sieve"
)

// Option configures a Sieve built by New.
type Option func(*sieve.Config)

// WithSieveSize overrides the segment buffer size in bytes; it must be a
// multiple of 240 in [sieve.MinSieveSize, sieve.MaxSieveSize]. Without
// this option, New picks a size that fits the detected L1 data cache
// (spec.md §5).
func WithSieveSize(bytes int) Option {
	return func(c *sieve.Config) { c.SieveSize = bytes }
}

// WithSmallDivisor overrides EratSmall's magnitude ceiling divisor
// (spec.md §9's r_s tunable).
func WithSmallDivisor(divisor int) Option {
	return func(c *sieve.Config) { c.SmallDivisor = divisor }
}

// WithMediumMultiplier overrides EratMedium's magnitude ceiling
// multiplier (spec.md §9's r_m tunable).
func WithMediumMultiplier(multiplier int) Option {
	return func(c *sieve.Config) { c.MediumMultiplier = multiplier }
}

// WithCount adds constellations to count, beyond the plain Primes count
// New always requests.
func WithCount(constellations ...sieve.Constellation) Option {
	return func(c *sieve.Config) {
		for _, co := range constellations {
			c.Flags |= countFlagFor(co)
		}
	}
}

// WithPrint streams each prime found, one per line, to w.
func WithPrint(w io.Writer) Option {
	return func(c *sieve.Config) {
		c.Flags |= sieve.FlagPrintPrimes
		c.Printer = w
	}
}

// WithCallback invokes fn for every prime found, in ascending order.
// Returning sieve.Stop (or any error) from fn stops the sieve early.
func WithCallback(fn sieve.Callback) Option {
	return func(c *sieve.Config) {
		c.Flags |= sieve.FlagCallback
		c.OnPrime = fn
	}
}

// WithProgress attaches st to the sieve: every completed segment advances
// st's bar by one. Build st with NewStatus, passing SegmentCount(start,
// stop, sieveSize) and that same sieveSize (WithSieveSize first if you
// need an exact count) so st's rendered rate reflects real throughput.
func WithProgress(st *Status) Option {
	return func(c *sieve.Config) { c.OnSegment = st.advance }
}

// SegmentCount returns how many segments a sieve over [start, stop] with
// the given sieveSize will process, the total NewStatus needs.
func SegmentCount(start, stop uint64, sieveSize int) int64 {
	firstByteIndex := start / 30
	lastByteIndex := stop / 30
	totalBytes := lastByteIndex - firstByteIndex + 1
	return int64((totalBytes + uint64(sieveSize) - 1) / uint64(sieveSize))
}

func countFlagFor(c sieve.Constellation) sieve.Flag {
	switch c {
	case sieve.Twins:
		return sieve.FlagCountTwins
	case sieve.Triplets:
		return sieve.FlagCountTriplets
	case sieve.Quadruplets:
		return sieve.FlagCountQuadruplets
	case sieve.Quintuplets:
		return sieve.FlagCountQuintuplets
	case sieve.Sextuplets:
		return sieve.FlagCountSextuplets
	case sieve.Septuplets:
		return sieve.FlagCountSeptuplets
	default:
		return sieve.FlagCountPrimes
	}
}

// defaultSieveSize rounds the detected L1 data cache size down to a
// multiple of 240 within sieve's supported range.
func defaultSieveSize() int {
	size := cpuinfo.L1DataCacheSize()
	size -= size % 240
	if size < sieve.MinSieveSize {
		return sieve.DefaultSieveSize
	}
	if size > sieve.MaxSieveSize {
		return sieve.MaxSieveSize
	}
	return size
}
