package sieve

import (
	"sort"

	"github.com/TusharAgarwal123/primesieve/sieve/wheel"
)

// isqrtU64 returns floor(sqrt(n)) using integer-only Newton's method, so
// it stays exact for every n up to 2^64-1 (float64's 53-bit mantissa
// cannot represent floor(sqrt(n)) exactly near the top of that range).
func isqrtU64(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := x/2 + x%2 // ceil(x/2) without the overflow of (x+1)/2 at 2^64-1
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// seedMultiple finds the smallest k, coprime to w.Modulus, such that k*p
// is at least threshold, returning k and its wheel index (position in
// w.Residues). Every sieving prime's crossing-off sequence only ever
// touches multiples k*p where k is itself coprime to 30 (since p already
// is), which is exactly w.Residues once k is reduced mod w.Modulus.
func seedMultiple(p, threshold uint64, w *wheel.Wheel) (k uint64, wheelIndex uint8) {
	modulus := uint64(w.Modulus)
	kMin := (threshold + p - 1) / p // ceil(threshold/p)
	if kMin == 0 {
		kMin = 1
	}
	periods := (kMin - 1) / modulus
	base := periods * modulus
	r := kMin - base // 1 <= r <= modulus, kMin's offset within its period

	idx := sort.Search(len(w.Residues), func(i int) bool { return uint64(w.Residues[i]) >= r })
	if idx < len(w.Residues) {
		return base + uint64(w.Residues[idx]), uint8(idx)
	}
	return base + modulus + uint64(w.Residues[0]), 0
}

// toSegmentCoords converts a global byte index (byte containing value
// globalByteIndex*30 + residue) into a segment index and the byte offset
// within that segment, given the byte index of segment 0's first byte.
func toSegmentCoords(globalByteIndex, firstByteIndex uint64, sieveSize int) (segIndex uint64, localOffset uint32) {
	rel := globalByteIndex - firstByteIndex
	return rel / uint64(sieveSize), uint32(rel % uint64(sieveSize))
}
