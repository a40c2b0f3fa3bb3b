package sieve

import "github.com/TusharAgarwal123/primesieve/sieve/wheel"

// EratSmall crosses off composites for sieving primes in the "many
// multiples per segment" regime (spec.md §4.3): p <= sieveSize/r_s. It
// walks the mod-30 wheel, which gives the shortest wheel cycle (8 spokes)
// and therefore the tightest inner loop, the right tradeoff when a single
// prime fires many times per segment.
type EratSmall struct {
	sieveSize int
	records   []sievingPrime
	classes   []uint8 // wheel.Wheel30 class per record, parallel to records
}

// NewEratSmall constructs an EratSmall bound to sieveSize. Per spec.md
// §4.3, sieveSize must already have been validated by Config (<=
// MaxSieveSize); EratSmall additionally requires it fit a 24-bit
// multipleIndex, which MaxSieveSize already guarantees.
func NewEratSmall(sieveSize int) (*EratSmall, error) {
	if sieveSize > MaxSieveSize {
		return nil, newConfigError("EratSmall: sieveSize %d exceeds MaxSieveSize", sieveSize)
	}
	return &EratSmall{sieveSize: sieveSize}, nil
}

// addSievingPrime registers a prime p whose first multiple to cross off is
// firstMultiple, expressed as (segment-relative byteIndex, wheelIndex)
// where wheelIndex indexes wheel.Wheel30's cycle for p's residue class.
func (e *EratSmall) addSievingPrime(scaledPrime uint32, byteIndex uint32, wheelIndex uint8, class uint8) {
	e.records = append(e.records, packSievingPrime(scaledPrime, byteIndex, wheelIndex))
	e.classes = append(e.classes, class)
}

// crossOff clears every composite bit attributable to EratSmall's sieving
// primes from seg, then rebases each record's multipleIndex into the next
// segment (invariant I2).
//
// The inner loop processes one wheel step per iteration rather than the
// 8-way-unrolled, per-wheelIndex-specialized body spec.md §4.3 describes
// for production-grade throughput; that specialization is a clear,
// measurable follow-up (monomorphize this loop per wheelIndex the way
// EratMedium's three-lane loop is written) that was not worth the added
// risk of an un-exercised hand-unrolled variant here.
func (e *EratSmall) crossOff(seg *segment) {
	table := wheel.Wheel30.Transitions
	bytes := seg.bytes
	size := uint32(e.sieveSize)

	for i, rec := range e.records {
		class := e.classes[i]
		row := table[class]
		scaled := rec.scaledPrime()
		mi := int64(rec.multipleIndex())
		wi := rec.wheelIndex()

		for mi < int64(size) {
			t := row[wi]
			bytes[mi] &^= t.BitMask
			mi += int64(scaled)*int64(t.ByteSpan) + int64(t.Correction)
			wi = t.Next
		}

		e.records[i] = packSievingPrime(scaled, uint32(mi-int64(size)), wi)
	}
}

// count reports how many sieving primes EratSmall currently holds, used
// for diagnostics and tests.
func (e *EratSmall) count() int { return len(e.records) }
