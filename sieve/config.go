package sieve

import (
	"io"
	"os"
)

// Default tunables, exposed as documented, measurable knobs per spec.md §9
// ("document these as tunables and measure") rather than hardcoded
// literals buried in the crossing-off engines.
const (
	// MinSieveSize is the smallest buffer the segment driver will accept.
	MinSieveSize = 240 // one mod-30 wheel byte group * 8, the alignment unit
	// MaxSieveSize is the hard ceiling from spec.md invariant I5: sieveSize
	// must keep a byte-offset multipleIndex within the 24-bit field of a
	// packed sievingPrime record.
	MaxSieveSize = 4096 * 1024
	// DefaultSieveSize is used when the caller (or internal/cpuinfo) has
	// no better estimate: the largest multiple of 240 not exceeding 32KiB.
	DefaultSieveSize = 32640

	// DefaultSmallDivisor is r_s from spec.md §4.3: EratSmall handles
	// sieving primes p <= sieveSize/DefaultSmallDivisor.
	DefaultSmallDivisor = 4
	// DefaultMediumMultiplier is the factor from spec.md §4.4: EratMedium
	// handles sieving primes p <= sieveSize*DefaultMediumMultiplier.
	DefaultMediumMultiplier = 5

	// bucketPageSize is the number of records per EratBig bucket page
	// (spec.md §9 Open Question ii): 1024 records * 8 bytes/record = 8KiB,
	// comfortably under half of a typical 32KiB L1.
	bucketPageSize = 1024
)

// Flag selects which output products a Config asks the segment driver to
// produce, named after spec.md §6's {COUNT, PRINT, CALLBACK} x {primes,
// twins, ..., septuplets} matrix.
type Flag uint32

const (
	FlagCountPrimes Flag = 1 << iota
	FlagCountTwins
	FlagCountTriplets
	FlagCountQuadruplets
	FlagCountQuintuplets
	FlagCountSextuplets
	FlagCountSeptuplets
	FlagPrintPrimes
	FlagCallback
)

// Constellation indexes the seven counters Run returns, matching spec.md
// §6's count[0..6] array (primes, twins, triplets, quadruplets,
// quintuplets, sextuplets, septuplets).
type Constellation int

const (
	Primes Constellation = iota
	Twins
	Triplets
	Quadruplets
	Quintuplets
	Sextuplets
	Septuplets
	constellationCount
)

// countFlagFor maps a Constellation to its corresponding count Flag.
func countFlagFor(c Constellation) Flag {
	switch c {
	case Primes:
		return FlagCountPrimes
	case Twins:
		return FlagCountTwins
	case Triplets:
		return FlagCountTriplets
	case Quadruplets:
		return FlagCountQuadruplets
	case Quintuplets:
		return FlagCountQuintuplets
	case Sextuplets:
		return FlagCountSextuplets
	case Septuplets:
		return FlagCountSeptuplets
	}
	return 0
}

// Callback receives each prime found within [Start, Stop], in ascending
// order. Returning a non-nil error stops the sieve cooperatively and Run
// returns that error together with the counts so far. When the error is
// Stop (see IsStop), primesieve's Sieve.Run turns it into a nil error.
type Callback func(p uint64) error

// Config is the validated set of parameters a Run call operates on. Build
// one with NewConfig, which applies the range and alignment checks spec.md
// §7 calls "Configuration error".
type Config struct {
	Start, Stop uint64
	SieveSize   int
	Flags       Flag
	OnPrime     Callback

	// Printer receives one line per prime when FlagPrintPrimes is set;
	// nil means os.Stdout.
	Printer io.Writer

	// SmallDivisor and MediumMultiplier are the tunables from spec.md §9;
	// zero means "use the package default".
	SmallDivisor     int
	MediumMultiplier int

	// OnSegment, if set, is called once after each segment finishes
	// crossing-off and scanning, letting a caller track progress without
	// touching per-prime output.
	OnSegment func()
}

// NewConfig validates start/stop/sieveSize and fills in defaults,
// returning an error wrapping a *Error of KindConfiguration on any
// violation of spec.md §7's synchronous checks.
func NewConfig(start, stop uint64, sieveSize int, flags Flag) (*Config, error) {
	if start > stop {
		return nil, newConfigError("start %d exceeds stop %d", start, stop)
	}
	if sieveSize == 0 {
		sieveSize = DefaultSieveSize
	}
	if sieveSize < MinSieveSize || sieveSize > MaxSieveSize {
		return nil, newConfigError("sieveSize %d out of range [%d, %d]", sieveSize, MinSieveSize, MaxSieveSize)
	}
	if sieveSize%240 != 0 {
		return nil, newConfigError("sieveSize %d is not a multiple of 240", sieveSize)
	}
	if flags == 0 {
		flags = FlagCountPrimes
	}
	// stop is already constrained to uint64's range by the type system,
	// so no arithmetic-bound check is made here. The segment driver
	// squares sieving primes without a check either: p*p can exceed 2^64
	// only when p itself exceeds sqrt(2^64)=2^32, which cannot happen for
	// a sieving prime of an interval capped at 2^64-1.
	return &Config{
		Start:     start,
		Stop:      stop,
		SieveSize: sieveSize,
		Flags:     flags,
	}, nil
}

func (c *Config) smallDivisor() int {
	if c.SmallDivisor > 0 {
		return c.SmallDivisor
	}
	return DefaultSmallDivisor
}

func (c *Config) mediumMultiplier() int {
	if c.MediumMultiplier > 0 {
		return c.MediumMultiplier
	}
	return DefaultMediumMultiplier
}

// printer returns the configured Printer, defaulting to os.Stdout.
func (c *Config) printer() io.Writer {
	if c.Printer != nil {
		return c.Printer
	}
	return os.Stdout
}

// smallPrimeCeiling returns the largest p handled by EratSmall under the
// configured sieveSize and divisor (spec.md §4.3).
func (c *Config) smallPrimeCeiling() uint64 {
	return uint64(c.SieveSize / c.smallDivisor())
}

// mediumPrimeCeiling returns the largest p handled by EratMedium under the
// configured sieveSize and multiplier (spec.md §4.4).
func (c *Config) mediumPrimeCeiling() uint64 {
	return uint64(c.SieveSize * c.mediumMultiplier())
}
