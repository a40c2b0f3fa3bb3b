package sieve

import (
	"testing"

	"github.com/TusharAgarwal123/primesieve/sieve/wheel"
)

func addMediumRecord(t *testing.T, e *EratMedium, p uint64, sieveSize int) uint64 {
	t.Helper()
	threshold := p * p
	k, wi := seedMultiple(p, threshold, wheel.Wheel210)
	seedValue := k * p
	global := seedValue / 30
	segIdx, localOffset := toSegmentCoords(global, 0, sieveSize)
	if segIdx != 0 {
		t.Fatalf("setup: prime %d seeded outside segment 0 (segIdx=%d)", p, segIdx)
	}
	class := wheel.ClassOf210(int32(p % 210))
	e.addSievingPrime(uint32(p/30), localOffset, wi, class)
	return seedValue
}

// TestEratMediumCrossOffMatchesTrialDivision exercises both the 3-wide
// lane loop and the scalar tail (5 primes = one full lane + 2 leftover).
// Multiples of 7*p are expected to stay set: the mod-210 wheel skips them,
// leaving them to the pre-sieve pattern, which this test does not apply.
func TestEratMediumCrossOffMatchesTrialDivision(t *testing.T) {
	const sieveSize = 1920 // covers [0, 57600), past 233*233 = 54289
	primes := []uint64{211, 223, 227, 229, 233}

	e, err := NewEratMedium(sieveSize)
	if err != nil {
		t.Fatalf("NewEratMedium: %v", err)
	}
	seedValues := make(map[uint64]uint64, len(primes))
	for _, p := range primes {
		seedValues[p] = addMediumRecord(t, e, p, sieveSize)
	}
	if e.count() != len(primes) {
		t.Fatalf("count() = %d, want %d", e.count(), len(primes))
	}

	seg := newSegment(sieveSize)
	seg.setAll()
	e.crossOff(seg)

	for bi := 0; bi < sieveSize; bi++ {
		for b, r := range bitResidues {
			v := uint64(bi)*30 + r
			bitSet := seg.bytes[bi]&(1<<uint(b)) != 0
			wantCleared := false
			for _, p := range primes {
				if v >= seedValues[p] && v%p == 0 && v%7 != 0 {
					wantCleared = true
					break
				}
			}
			if wantCleared && bitSet {
				t.Errorf("value %d should have been cleared by one of %v", v, primes)
			}
			if !wantCleared && !bitSet {
				t.Errorf("value %d was cleared but is not a due multiple of any of %v", v, primes)
			}
		}
	}
}
