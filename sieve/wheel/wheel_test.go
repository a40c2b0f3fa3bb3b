package wheel

import "testing"

func TestResidues30(t *testing.T) {
	want := []int32{1, 7, 11, 13, 17, 19, 23, 29}
	if len(Residues30) != len(want) {
		t.Fatalf("len(Residues30) = %d, want %d", len(Residues30), len(want))
	}
	for i, r := range want {
		if Residues30[i] != r {
			t.Errorf("Residues30[%d] = %d, want %d", i, Residues30[i], r)
		}
	}
}

func TestResidues210Count(t *testing.T) {
	// phi(210) = phi(2)*phi(3)*phi(5)*phi(7) = 1*2*4*6 = 48.
	if len(Residues210) != 48 {
		t.Fatalf("len(Residues210) = %d, want 48", len(Residues210))
	}
	for _, r := range Residues210 {
		if r%2 == 0 || r%3 == 0 || r%5 == 0 || r%7 == 0 {
			t.Errorf("residue %d is not coprime to 210", r)
		}
	}
}

func TestClassOfRoundTrip(t *testing.T) {
	for i, r := range Residues30 {
		if got := ClassOf30(r); got != uint8(i) {
			t.Errorf("ClassOf30(%d) = %d, want %d", r, got, i)
		}
	}
	for i, r := range Residues210 {
		if got := ClassOf210(r); got != uint8(i) {
			t.Errorf("ClassOf210(%d) = %d, want %d", r, got, i)
		}
	}
}

func TestWheel30TransitionsCoverAllResidues(t *testing.T) {
	// For each class, walking Transitions[class] Next pointers from index 0
	// must visit every index exactly once before returning to 0 (a single
	// cycle), since the wheel's multiplier sequence is cyclic.
	for class := range Wheel30.Transitions {
		row := Wheel30.Transitions[class]
		seen := make([]bool, len(row))
		idx := uint8(0)
		for i := 0; i < len(row); i++ {
			if seen[idx] {
				t.Fatalf("class %d: index %d revisited after %d steps", class, idx, i)
			}
			seen[idx] = true
			idx = row[idx].Next
		}
		if idx != 0 {
			t.Errorf("class %d: cycle does not return to index 0, got %d", class, idx)
		}
	}
}

// TestWheel30TransitionArithmetic checks Build's byte-delta formula
// directly against the definition: for a sieving prime p = 30*scaled +
// p30 and multiplier residue mCur stepping to mNext, the transition's
// ByteSpan*scaled+Correction must equal the true difference in byte
// index between p*mNext and p*mCur, for any scaledPrime (the formula is
// linear in scaledPrime, so a handful of values fully exercises it).
func TestWheel30TransitionArithmetic(t *testing.T) {
	for c, row := range Wheel30.Transitions {
		p30 := Residues30[c]
		for i, tr := range row {
			mCur := Residues30[i]
			var mNext int32
			if i+1 < len(Residues30) {
				mNext = Residues30[i+1]
			} else {
				mNext = Residues30[0] + 30
			}
			for _, scaled := range []int32{0, 1, 5, 100} {
				p := 30*scaled + p30
				byteCur := (p * mCur) / 30
				byteNext := (p * mNext) / 30
				want := byteNext - byteCur
				got := scaled*tr.ByteSpan + tr.Correction
				if got != want {
					t.Errorf("class %d index %d scaled %d: byteDelta = %d, want %d", c, i, scaled, got, want)
				}
			}
		}
	}
}

func TestWheel30BitMaskMatchesNextResidue(t *testing.T) {
	for c, row := range Wheel30.Transitions {
		p30 := Residues30[c]
		for i, tr := range row {
			mCur := Residues30[i]
			p := 30 + p30 // scaled=1, an arbitrary representative prime in this class
			mul := p * mCur
			wantResidue := mul % 30
			wantBit := uint8(1) << uint(ClassOf30(wantResidue))
			if tr.BitMask != wantBit {
				t.Errorf("class %d index %d: BitMask = %08b, want %08b (residue %d)", c, i, tr.BitMask, wantBit, wantResidue)
			}
		}
	}
}

func TestWheel210TransitionArithmetic(t *testing.T) {
	for c, row := range Wheel210.Transitions {
		p30 := Residues210[c] % 30
		for i, tr := range row {
			mCur := Residues210[i]
			var mNext int32
			if i+1 < len(Residues210) {
				mNext = Residues210[i+1]
			} else {
				mNext = Residues210[0] + 210
			}
			for _, scaled := range []int32{0, 1, 7} {
				p := 30*scaled + p30
				byteCur := (p * mCur) / 30
				byteNext := (p * mNext) / 30
				want := byteNext - byteCur
				got := scaled*tr.ByteSpan + tr.Correction
				if got != want {
					t.Errorf("class %d index %d scaled %d: byteDelta = %d, want %d", c, i, scaled, got, want)
				}
			}
		}
	}
}
