// Package wheel builds the mod-30 and mod-210 wheel-factorization
// transition tables used by the sieving engines in package sieve.
//
// A wheel of modulus m restricts candidates to the residues coprime to m;
// those residues form a group under multiplication mod m (since m is
// squarefree and composed of the first few primes), which is what lets a
// sieving prime's sequence of composite multiples be walked with two
// table lookups and one add per step instead of a division. The tables
// here are generated once, at package initialization, directly from that
// group structure rather than transcribed as literal constants, so their
// correctness follows from the arithmetic rather than from getting a long
// list of magic numbers right by hand.
package wheel

// Transition describes what happens when a sieving prime's current
// multiple, sitting at wheel position Index, is crossed off: clear BitMask
// in the byte at the multiple's offset, then advance that offset by
// ByteSpan*scaledPrime + Correction bytes and move to wheel position Next.
type Transition struct {
	ByteSpan   int32 // decimal gap to the next coprime multiplier, /30 worth of bytes per unit of scaledPrime
	Correction int32 // residual byte adjustment independent of scaledPrime
	Next       uint8 // next wheel index
	BitMask    uint8 // bit to clear in the segment byte, 0 for a placeholder row
}

// Wheel is a precomputed transition table for one modulus.
type Wheel struct {
	Modulus     int32
	Residues    []int32        // residues coprime to Modulus, ascending, index == wheel position
	ClassOf     [30]int8       // residue mod 30 -> index into residues30 bit table, -1 if not coprime to 30
	Transitions [][]Transition // Transitions[class][index], class = index of (p mod Modulus) in Residues
}

// residues30 gives the bit ordering the segment byte layout uses: bit b
// corresponds to residue Residues30[b] mod 30 within a 30-wide byte.
var Residues30 = computeResidues(30, 2, 3, 5)

// Residues210 lists the residues coprime to 210 = 2*3*5*7, ascending.
var Residues210 = computeResidues(210, 2, 3, 5, 7)

func computeResidues(modulus int32, factors ...int32) []int32 {
	var out []int32
	for r := int32(1); r < modulus; r++ {
		coprime := true
		for _, f := range factors {
			if r%f == 0 {
				coprime = false
				break
			}
		}
		if coprime {
			out = append(out, r)
		}
	}
	return out
}

// bitIndexFor30 maps a residue mod 30 to its bit index in Residues30, or -1
// if that residue is not coprime to 30. Build only looks up residues of
// products of two residues coprime to 30, which are themselves coprime to
// 30, so it never sees -1.
func bitIndexFor30(residueMod30 int32) int8 {
	for i, r := range Residues30 {
		if r == residueMod30 {
			return int8(i)
		}
	}
	return -1
}

// classOfTable maps residueMod30 (0..29) to its Residues30 bit index for
// quick reuse across wheels, since the physical segment byte is always
// laid out mod 30 regardless of which wheel is doing the skipping.
func classOfTable() [30]int8 {
	var t [30]int8
	for i := range t {
		t[i] = bitIndexFor30(int32(i))
	}
	return t
}

// Build constructs the transition table for a wheel of the given modulus
// and residue list. The one residues list serves both as the multiplier
// positions and as the sieving prime's residue classes ("which multiplier
// are we at" and "what residue class is the sieving prime in" are
// positions in the same coprime-residue group).
func Build(modulus int32, residues []int32) *Wheel {
	n := len(residues)
	w := &Wheel{
		Modulus:     modulus,
		Residues:    residues,
		ClassOf:     classOfTable(),
		Transitions: make([][]Transition, n),
	}
	for c := 0; c < n; c++ {
		// p30 is the sieving prime's residue mod 30, implied by its
		// residue mod `modulus`: since 30 divides every wheel modulus
		// here, p mod 30 is determined by p mod modulus.
		p30 := residues[c] % 30
		row := make([]Transition, n)
		for i := 0; i < n; i++ {
			mCur := residues[i]
			var mNext int32
			if i+1 < n {
				mNext = residues[i+1]
			} else {
				mNext = residues[0] + modulus
			}
			gap := mNext - mCur

			// The physical segment byte always spans 30 integers
			// regardless of wheel modulus, so the bit to clear and the
			// byte-address correction are both mod-30 quantities.
			rCur := (p30 * (mCur % 30)) % 30
			rNext := (p30 * (mNext % 30)) % 30

			// The true (unreduced) advance in integer units is
			// p*gap = (30*scaledPrime + p30)*gap, and byte index is
			// (x - residue)/30, so:
			//   byteDelta = scaledPrime*gap + (p30*gap - (rNext-rCur))/30
			// The numerator is an exact multiple of 30 by construction:
			// p30*gap ≡ rNext-rCur (mod 30) follows directly from
			// rCur/rNext both being p30 times mCur/mNext reduced mod 30.
			numerator := p30*gap - (rNext - rCur)
			correction := numerator / 30

			row[i] = Transition{
				ByteSpan:   gap,
				Correction: correction,
				Next:       uint8((i + 1) % n),
				BitMask:    1 << uint(w.ClassOf[rCur]),
			}
		}
		w.Transitions[c] = row
	}
	return w
}

// Wheel30 is the 8-spoke wheel used by EratSmall and by the mod-30 scan
// logic shared with the segment driver.
var Wheel30 = Build(30, Residues30)

// Wheel210 is the 48-spoke wheel used by EratMedium and EratBig. Its
// multiplier cycle only visits m coprime to 210, i.e. it skips every
// multiple of a sieving prime that is also a multiple of 7. That is safe:
// such a multiple is itself divisible by 7, so the pre-sieve pattern
// (which removes every multiple of 7..19 from a fresh segment before any
// engine runs) has already cleared its bit. Tracking it again would only
// waste cycles, never miss a composite.
var Wheel210 = Build(210, Residues210)

// ClassOf210 returns the wheel-210 class (index into Residues210) for a
// prime's residue mod 210.
func ClassOf210(pMod210 int32) uint8 {
	for i, r := range Residues210 {
		if r == pMod210 {
			return uint8(i)
		}
	}
	panic("wheel: value not coprime to 210")
}

// ClassOf30 returns the wheel-30 class (index into Residues30) for a
// prime's residue mod 30.
func ClassOf30(pMod30 int32) uint8 {
	for i, r := range Residues30 {
		if r == pMod30 {
			return uint8(i)
		}
	}
	panic("wheel: value not coprime to 30")
}
