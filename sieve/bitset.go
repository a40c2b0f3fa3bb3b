package sieve

import "github.com/TusharAgarwal123/primesieve/sieve/wheel"

// bitResidues mirrors wheel.Residues30: bit b of a segment byte represents
// the integer byteBase + bitResidues[b], where byteBase = 30*byteIndex.
var bitResidues = [8]uint64{1, 7, 11, 13, 17, 19, 23, 29}

// popcount8 is a 256-entry table mapping a byte to its number of set bits,
// used by the counting scan instead of repeated shifting (spec.md's
// "256-entry popcount table").
var popcount8 = func() [256]uint8 {
	var t [256]uint8
	for i := range t {
		c := uint8(0)
		for b := i; b != 0; b >>= 1 {
			c += uint8(b & 1)
		}
		t[i] = c
	}
	return t
}()

// segment is a reusable byte buffer covering sieveSize*30 consecutive
// integers, 8 bits per byte encoding the residues coprime to 30.
type segment struct {
	bytes []byte
	size  int // configured sieveSize in bytes
	// base is the integer value represented by bit 0 of bytes[0], i.e. the
	// start of this segment's covered range (a multiple of 30).
	base uint64
}

func newSegment(size int) *segment {
	return &segment{bytes: make([]byte, size), size: size}
}

// valueOf returns the integer represented by bit b of byte k in this
// segment.
func (s *segment) valueOf(k int, b int) uint64 {
	return s.base + uint64(k)*30 + bitResidues[b]
}

// clearAll sets every byte to 0 (all composite); used before copying in
// the pre-sieve pattern, or directly when no pre-sieve applies.
func (s *segment) clearAll() {
	for i := range s.bytes {
		s.bytes[i] = 0
	}
}

// setAll sets every bit (all candidate prime), used by tests that bypass
// the pre-sieve pattern.
func (s *segment) setAll() {
	for i := range s.bytes {
		s.bytes[i] = 0xFF
	}
}

// clearBitsBelow clears every bit representing a value strictly less than
// v, used on the first segment of a run to respect a start bound that
// does not fall on a segment boundary.
func (s *segment) clearBitsBelow(v uint64) {
	if v <= s.base {
		return
	}
	for k := 0; k < s.size; k++ {
		byteBase := s.base + uint64(k)*30
		if byteBase+29 < v {
			s.bytes[k] = 0
			continue
		}
		if byteBase >= v {
			break
		}
		for b, r := range bitResidues {
			if byteBase+r < v {
				s.bytes[k] &^= 1 << uint(b)
			}
		}
	}
}

// clearValueOne hard-codes that 1 is not prime. No sieving prime's
// multiple ever lands on it (the smallest is p*p >= 4), so unlike every
// other composite it is never crossed off by EratSmall/EratMedium/
// EratBig or the pre-sieve pattern; it only ever appears as bit 0 of
// byte 0, the segment based at 0. A no-op for every other segment.
func (s *segment) clearValueOne() {
	if s.base == 0 {
		s.bytes[0] &^= 1
	}
}

// clearBitsAbove clears every bit representing a value strictly greater
// than v, used on the last segment of a run.
func (s *segment) clearBitsAbove(v uint64) {
	end := s.base + uint64(s.size)*30
	if v >= end-1 {
		return
	}
	for k := 0; k < s.size; k++ {
		byteBase := s.base + uint64(k)*30
		if byteBase > v {
			s.bytes[k] = 0
			continue
		}
		if byteBase+29 <= v {
			continue
		}
		for b, r := range bitResidues {
			if byteBase+r > v {
				s.bytes[k] &^= 1 << uint(b)
			}
		}
	}
}

// popcount returns the number of set (candidate-prime) bits in the
// segment.
func (s *segment) popcount() uint64 {
	var n uint64
	for _, by := range s.bytes {
		n += uint64(popcount8[by])
	}
	return n
}

// bitIndexForResidue30 returns the Residues30-relative bit index for a
// residue mod 30, reusing the wheel package's own table so the two stay
// in lockstep.
func bitIndexForResidue30(r int32) int {
	for i, v := range wheel.Residues30 {
		if v == r {
			return i
		}
	}
	return -1
}
