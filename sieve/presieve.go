package sieve

import "github.com/TusharAgarwal123/primesieve/internal/smallprimes"

// preSievePeriod is 7*11*13*17*19 bytes, covering 7*11*13*17*19*30 =
// 2*3*5*7*11*13*17*19 consecutive integers: the product of every prime
// the pre-sieve removes, together with the 2, 3, 5 the mod-30 byte
// layout already removes. The pattern therefore repeats exactly, and
// every segment can be filled by copying a rotating slice of it instead
// of crossing off 7, 11, 13, 17 and 19 from scratch each time.
const preSievePeriod = 7 * 11 * 13 * 17 * 19

// preSievePattern is built once at package initialization: start with
// every bit set, then clear the bit for every multiple (including the
// prime itself) of each prime in 7..19.
var preSievePattern = buildPreSievePattern()

func buildPreSievePattern() []byte {
	pat := make([]byte, preSievePeriod)
	for i := range pat {
		pat[i] = 0xFF
	}
	for _, p := range smallprimes.Table {
		if p <= 5 {
			continue // already excluded by the mod-30 byte layout itself
		}
		for i := 0; i < preSievePeriod; i++ {
			for b, r := range bitResidues {
				v := uint64(i)*30 + r
				if v%p == 0 {
					pat[i] &^= 1 << uint(b)
				}
			}
		}
	}
	return pat
}

// applyPreSieve fills seg with the rotated pre-sieve pattern appropriate
// to its base, clearing every multiple of 7, 11, 13, 17 and 19 (and those
// primes themselves) before any crossing-off engine runs.
func applyPreSieve(seg *segment) {
	offset := int((seg.base / 30) % preSievePeriod)
	n := copy(seg.bytes, preSievePattern[offset:])
	for n < len(seg.bytes) {
		n += copy(seg.bytes[n:], preSievePattern)
	}
}
