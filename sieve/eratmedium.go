package sieve

import "github.com/TusharAgarwal123/primesieve/sieve/wheel"

// EratMedium crosses off composites for sieving primes with few multiples
// per segment (spec.md §4.4): sieveSize/r_s < p <= sieveSize*5. It uses
// the mod-210 wheel, which gives longer strides (fewer steps per prime per
// segment) at the cost of a longer transition table, the right tradeoff
// when each prime only fires a handful of times.
//
// Because there is little work per prime, 8-way unrolling (EratSmall's
// trick) does not pay for itself; instead three sieving primes are
// advanced together per outer iteration so independent memory accesses
// and arithmetic can overlap (spec.md §4.4's "expose instruction-level
// parallelism" via 3-wide lanes).
type EratMedium struct {
	sieveSize int
	records   []sievingPrime
	classes   []uint8 // wheel.Wheel210 class per record
}

func NewEratMedium(sieveSize int) (*EratMedium, error) {
	if sieveSize > MaxSieveSize {
		return nil, newConfigError("EratMedium: sieveSize %d exceeds MaxSieveSize", sieveSize)
	}
	return &EratMedium{sieveSize: sieveSize}, nil
}

func (e *EratMedium) addSievingPrime(scaledPrime uint32, byteIndex uint32, wheelIndex uint8, class uint8) {
	e.records = append(e.records, packSievingPrime(scaledPrime, byteIndex, wheelIndex))
	e.classes = append(e.classes, class)
}

func (e *EratMedium) count() int { return len(e.records) }

// unsetBit advances one sieving prime by exactly one wheel step, clearing
// its current bit and returning the updated (multipleIndex, wheelIndex).
// It is the per-lane body spec.md §4.4 names explicitly.
func unsetBit(bytes []byte, class uint8, scaled uint32, mi int64, wi uint8) (int64, uint8) {
	t := wheel.Wheel210.Transitions[class][wi]
	bytes[mi] &^= t.BitMask
	mi += int64(scaled)*int64(t.ByteSpan) + int64(t.Correction)
	return mi, t.Next
}

// crossOff clears every composite bit attributable to EratMedium's
// sieving primes from seg, processing records three at a time; any lane
// that finishes its segment before the others falls through to a scalar
// tail loop while its siblings keep going.
func (e *EratMedium) crossOff(seg *segment) {
	bytes := seg.bytes
	size := int64(e.sieveSize)
	n := len(e.records)

	i := 0
	for ; i+3 <= n; i += 3 {
		r0, r1, r2 := e.records[i], e.records[i+1], e.records[i+2]
		c0, c1, c2 := e.classes[i], e.classes[i+1], e.classes[i+2]
		s0, s1, s2 := r0.scaledPrime(), r1.scaledPrime(), r2.scaledPrime()
		m0, m1, m2 := int64(r0.multipleIndex()), int64(r1.multipleIndex()), int64(r2.multipleIndex())
		w0, w1, w2 := r0.wheelIndex(), r1.wheelIndex(), r2.wheelIndex()

		done0, done1, done2 := m0 >= size, m1 >= size, m2 >= size
		for !done0 || !done1 || !done2 {
			if !done0 {
				m0, w0 = unsetBit(bytes, c0, s0, m0, w0)
				done0 = m0 >= size
			}
			if !done1 {
				m1, w1 = unsetBit(bytes, c1, s1, m1, w1)
				done1 = m1 >= size
			}
			if !done2 {
				m2, w2 = unsetBit(bytes, c2, s2, m2, w2)
				done2 = m2 >= size
			}
		}

		e.records[i] = packSievingPrime(s0, uint32(m0-size), w0)
		e.records[i+1] = packSievingPrime(s1, uint32(m1-size), w1)
		e.records[i+2] = packSievingPrime(s2, uint32(m2-size), w2)
	}

	// Scalar tail for the 0, 1 or 2 records left over.
	for ; i < n; i++ {
		rec := e.records[i]
		class := e.classes[i]
		scaled := rec.scaledPrime()
		mi := int64(rec.multipleIndex())
		wi := rec.wheelIndex()
		for mi < size {
			mi, wi = unsetBit(bytes, class, scaled, mi, wi)
		}
		e.records[i] = packSievingPrime(scaled, uint32(mi-size), wi)
	}
}
