// Package smallprimes holds the fixed table of primes <= 19 that are
// handled by a special-case pre-pass rather than by the wheel-factorized
// sieving engines. 2, 3 and 5 have no residue in the mod-30 coprime set
// and 7..19 are small enough that the pre-sieve pattern already removes
// their multiples from every segment, so the engines never see them as
// sieving primes.
package smallprimes

// Table lists the primes <= 19 in ascending order.
var Table = [8]uint64{2, 3, 5, 7, 11, 13, 17, 19}

// PreSieveLimit is the largest prime folded into the pre-sieve pattern.
// Sieving primes <= PreSieveLimit are never dispatched to an erat engine.
const PreSieveLimit = 19

// CountInRange returns how many entries of Table fall within [lo, hi]
// inclusive. The segment driver does not call it; it emits the same
// primes one by one through InRange.
func CountInRange(lo, hi uint64) uint64 {
	var n uint64
	for _, p := range Table {
		if p >= lo && p <= hi {
			n++
		}
	}
	return n
}

// InRange appends the members of Table that fall within [lo, hi] inclusive
// to dst, in ascending order, and returns the extended slice.
func InRange(dst []uint64, lo, hi uint64) []uint64 {
	for _, p := range Table {
		if p >= lo && p <= hi {
			dst = append(dst, p)
		}
	}
	return dst
}
