package sieve

import "testing"

func TestPackSievingPrimeRoundTrip(t *testing.T) {
	cases := []struct {
		scaled uint32
		mi     uint32
		wi     uint8
	}{
		{0, 0, 0},
		{1, 1, 1},
		{1<<32 - 1, 1<<24 - 1, 1<<8 - 1},
		{12345, 67890, 7},
		{0, 1<<24 - 1, 0},
	}
	for _, c := range cases {
		r := packSievingPrime(c.scaled, c.mi, c.wi)
		if got := r.scaledPrime(); got != c.scaled {
			t.Errorf("scaledPrime() = %d, want %d", got, c.scaled)
		}
		if got := r.multipleIndex(); got != c.mi {
			t.Errorf("multipleIndex() = %d, want %d", got, c.mi)
		}
		if got := r.wheelIndex(); got != c.wi {
			t.Errorf("wheelIndex() = %d, want %d", got, c.wi)
		}
	}
}

func TestWithMultipleIndexAndWheelIndex(t *testing.T) {
	r := packSievingPrime(42, 100, 3)
	r2 := r.withMultipleIndex(200)
	if r2.multipleIndex() != 200 || r2.scaledPrime() != 42 || r2.wheelIndex() != 3 {
		t.Errorf("withMultipleIndex changed unrelated fields: %+v", r2)
	}
	r3 := r.withWheelIndex(9)
	if r3.wheelIndex() != 9 || r3.scaledPrime() != 42 || r3.multipleIndex() != 100 {
		t.Errorf("withWheelIndex changed unrelated fields: %+v", r3)
	}
}

func TestSievingPrimeReconstruction(t *testing.T) {
	p := uint64(997)
	scaled := uint32(p / 30)
	residue := p % 30
	r := packSievingPrime(scaled, 0, 0)
	if got := r.prime(residue); got != p {
		t.Errorf("prime(%d) = %d, want %d", residue, got, p)
	}
}
