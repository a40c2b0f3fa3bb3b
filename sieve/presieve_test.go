package sieve

import "testing"

func TestPreSievePatternMatchesTrialDivision(t *testing.T) {
	const sampleBytes = 3000 // 90000 integers, several small-prime periods
	for i := 0; i < sampleBytes; i++ {
		for b, r := range bitResidues {
			v := uint64(i)*30 + r
			wantCleared := false
			for _, p := range []uint64{7, 11, 13, 17, 19} {
				if v%p == 0 {
					wantCleared = true
					break
				}
			}
			bitSet := preSievePattern[i]&(1<<uint(b)) != 0
			if wantCleared && bitSet {
				t.Fatalf("value %d (multiple of a pre-sieve prime) has its bit set", v)
			}
			if !wantCleared && !bitSet {
				t.Fatalf("value %d (not a multiple of 7,11,13,17,19) has its bit cleared", v)
			}
		}
	}
}

func TestApplyPreSievePeriodicity(t *testing.T) {
	segA := newSegment(50)
	segA.base = 0
	applyPreSieve(segA)

	segB := newSegment(50)
	segB.base = preSievePeriod * 30 // exactly one period later, same phase
	applyPreSieve(segB)

	for i := range segA.bytes {
		if segA.bytes[i] != segB.bytes[i] {
			t.Fatalf("byte %d differs between base 0 and base one period later: %08b vs %08b", i, segA.bytes[i], segB.bytes[i])
		}
	}
}

func TestApplyPreSieveOffsetMatchesDirectIndex(t *testing.T) {
	seg := newSegment(40)
	seg.base = 17 * 30 // byte offset 17 into the pattern
	applyPreSieve(seg)

	for i := range seg.bytes {
		want := preSievePattern[(17+i)%preSievePeriod]
		if seg.bytes[i] != want {
			t.Errorf("byte %d = %08b, want %08b (pattern[%d])", i, seg.bytes[i], want, (17+i)%preSievePeriod)
		}
	}
}
