package sieve

import (
	"fmt"
	"io"

	"github.com/TusharAgarwal123/primesieve/internal/smallprimes"
	"github.com/TusharAgarwal123/primesieve/sieve/wheel"
)

// tupletFlags is every count flag for a constellation beyond plain
// primes, used to decide whether the scan needs to track gaps at all.
const tupletFlags = FlagCountTwins | FlagCountTriplets | FlagCountQuadruplets |
	FlagCountQuintuplets | FlagCountSextuplets | FlagCountSeptuplets

// Result holds the seven constellation counts a Run call accumulates,
// indexed by Constellation.
type Result struct {
	Counts [constellationCount]uint64
}

// sink is where a segment driver delivers each prime it finds, in
// ascending order, decoupling the per-segment mechanics from what the
// caller actually wants done with the output (spec.md §6's counting,
// printing and callback modes, which can be combined freely).
type sink struct {
	wantCounts bool
	matcher    *tupletMatcher
	wantPrint  bool
	printer    io.Writer
	callback   Callback
	counts     *[constellationCount]uint64
	onSegment  func()
}

func (s *sink) emit(p uint64) error {
	if s.matcher != nil {
		s.matcher.observe(p, s.counts)
	}
	if s.wantCounts {
		s.counts[Primes]++
	}
	if s.wantPrint {
		fmt.Fprintln(s.printer, p)
	}
	if s.callback != nil {
		if err := s.callback(p); err != nil {
			return err
		}
	}
	return nil
}

// fastCountOnly reports whether the sink only needs a population count
// per segment, letting the scan skip bit-by-bit iteration entirely
// (spec.md §4.1's table-driven popcount counting path).
func (s *sink) fastCountOnly() bool {
	return s.wantCounts && s.matcher == nil && !s.wantPrint && s.callback == nil
}

// Run executes cfg over [cfg.Start, cfg.Stop] and returns the requested
// counts. A non-nil error that satisfies IsStop means a callback asked to
// stop early; Result still holds the counts accumulated up to that point.
func Run(cfg *Config) (*Result, error) {
	maxPrime := isqrtU64(cfg.Stop)
	allSievingPrimes, err := primesUpTo(maxPrime)
	if err != nil {
		return nil, err
	}
	sievingPrimes := allSievingPrimes[:0]
	for _, p := range allSievingPrimes {
		if p > smallprimes.PreSieveLimit {
			sievingPrimes = append(sievingPrimes, p)
		}
	}

	result := &Result{}
	snk := &sink{counts: &result.Counts}
	if cfg.Flags&FlagCountPrimes != 0 {
		snk.wantCounts = true
	}
	if cfg.Flags&tupletFlags != 0 {
		snk.matcher = newTupletMatcher()
	}
	if cfg.Flags&FlagPrintPrimes != 0 {
		snk.wantPrint = true
		snk.printer = cfg.printer()
	}
	if cfg.Flags&FlagCallback != 0 {
		snk.callback = cfg.OnPrime
	}
	snk.onSegment = cfg.OnSegment

	err = sieveInterval(cfg.Start, cfg.Stop, cfg.SieveSize, cfg.smallDivisor(), cfg.mediumMultiplier(), sievingPrimes, snk)
	return result, err
}

// sieveInterval is the segment driver shared by Run and the bootstrap:
// it walks [start, stop] one segment at a time, admitting newly relevant
// sieving primes just before the segment they first act in, running the
// three crossing-off engines, and handing every surviving value to snk in
// ascending order.
func sieveInterval(start, stop uint64, sieveSize int, smallDivisor, mediumMultiplier int, sievingPrimes []uint64, snk *sink) error {
	if start <= stop {
		for _, p := range smallprimes.InRange(nil, start, stop) {
			if err := snk.emit(p); err != nil {
				return err
			}
		}
	}
	if stop < 23 {
		return nil // nothing left: every prime in range is <= smallprimes.PreSieveLimit
	}

	firstByteIndex := (start / 30)
	lastByteIndex := stop / 30
	totalBytes := lastByteIndex - firstByteIndex + 1
	numSegments := (totalBytes + uint64(sieveSize) - 1) / uint64(sieveSize)

	smallCeiling := uint64(sieveSize / smallDivisor)
	mediumCeiling := uint64(sieveSize * mediumMultiplier)

	eratSmall, err := NewEratSmall(sieveSize)
	if err != nil {
		return err
	}
	eratMedium, err := NewEratMedium(sieveSize)
	if err != nil {
		return err
	}
	maxSievingPrime := uint64(1)
	if len(sievingPrimes) > 0 {
		maxSievingPrime = sievingPrimes[len(sievingPrimes)-1] + 1
	}
	eratBig, err := NewEratBig(sieveSize, maxSievingPrime)
	if err != nil {
		return err
	}

	seg := newSegment(sieveSize)
	cursor := 0
	maxSegmentIndex := numSegments - 1

	for idx := uint64(0); idx < numSegments; idx++ {
		segBase := (firstByteIndex+idx*uint64(sieveSize)) * 30
		segHigh := segBase + uint64(sieveSize)*30 - 1

		for cursor < len(sievingPrimes) {
			p := sievingPrimes[cursor]
			if p*p > segHigh {
				break
			}
			threshold := p * p
			if start > threshold {
				threshold = start
			}

			// A prime is classified by magnitude into small/medium/big
			// (spec.md §4.3-4.5), which picks its wheel. When start is far
			// above p*p the seeded offset can occasionally overshoot past
			// this admitting segment even for a small/medium-magnitude
			// prime (seedMultiple only guarantees landing within one
			// wheel period); such a prime is routed to EratBig instead,
			// which tolerates a record whose next multiple is segments
			// away, reseeded on Wheel210 since that is the only wheel
			// EratBig walks.
			isSmall := p <= smallCeiling
			isMedium := !isSmall && p <= mediumCeiling

			w := wheel.Wheel210
			if isSmall {
				w = wheel.Wheel30
			}
			k, wi := seedMultiple(p, threshold, w)
			global := (k * p) / 30
			segIdx, localOffset := toSegmentCoords(global, firstByteIndex, sieveSize)

			switch {
			case isSmall && segIdx == idx:
				class := wheel.ClassOf30(int32(p % 30))
				eratSmall.addSievingPrime(uint32(p/30), localOffset, wi, class)
			case isMedium && segIdx == idx:
				class := wheel.ClassOf210(int32(p % 210))
				eratMedium.addSievingPrime(uint32(p/30), localOffset, wi, class)
			default:
				if isSmall {
					k, wi = seedMultiple(p, threshold, wheel.Wheel210)
					global = (k * p) / 30
					segIdx, localOffset = toSegmentCoords(global, firstByteIndex, sieveSize)
				}
				class := wheel.ClassOf210(int32(p % 210))
				eratBig.addSievingPrime(uint32(p/30), segIdx, localOffset, wi, class)
			}
			cursor++
		}

		seg.base = segBase
		applyPreSieve(seg)
		seg.clearValueOne()
		if idx == 0 {
			seg.clearBitsBelow(start)
		}
		if idx == maxSegmentIndex {
			seg.clearBitsAbove(stop)
		}

		eratSmall.crossOff(seg)
		eratMedium.crossOff(seg)
		eratBig.crossOff(seg, idx, maxSegmentIndex)

		if snk.fastCountOnly() {
			snk.counts[Primes] += seg.popcount()
		} else {
			for k := 0; k < sieveSize; k++ {
				by := seg.bytes[k]
				if by == 0 {
					continue
				}
				for b := 0; b < 8; b++ {
					if by&(1<<uint(b)) == 0 {
						continue
					}
					if err := snk.emit(seg.valueOf(k, b)); err != nil {
						return err
					}
				}
			}
		}
		if snk.onSegment != nil {
			snk.onSegment()
		}
	}
	return nil
}
