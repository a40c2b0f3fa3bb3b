package sieve

import "github.com/TusharAgarwal123/primesieve/internal/smallprimes"

// bootstrapThreshold is the largest limit simpleSieve will handle
// directly. Above it, primesUpTo recurses: it sieves up to
// isqrtU64(limit) first to get its own sieving primes, then runs the
// real segmented machinery over [0, limit]. This keeps memory bounded to
// roughly sqrt(sqrt(Stop)) at the deepest recursion level instead of
// materializing a sieve over all of [0, sqrt(Stop)] at once.
const bootstrapThreshold = 1 << 16

// simpleSieve returns every prime <= limit using a plain, unsegmented
// sieve of Eratosthenes over a byte-per-candidate array. Only ever called
// for limit <= bootstrapThreshold, where that memory footprint is
// trivial.
func simpleSieve(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}
	isComposite := make([]bool, limit+1)
	var primes []uint64
	for i := uint64(2); i <= limit; i++ {
		if isComposite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= limit && j >= i; j += i {
			isComposite[j] = true
		}
	}
	return primes
}

// primesUpTo returns every prime <= limit, recursing through the
// segmented sieve itself to discover the sieving primes each level needs
// (spec.md §4.6's internal sieve on [0, sqrt(stop)]).
func primesUpTo(limit uint64) ([]uint64, error) {
	if limit <= bootstrapThreshold {
		return simpleSieve(limit), nil
	}

	allInner, err := primesUpTo(isqrtU64(limit))
	if err != nil {
		return nil, err
	}
	// sieveInterval's admission loop only ever classifies a sieving prime
	// as small/medium/big (each wheel-indexed); the pre-sieve already
	// handles every prime <= smallprimes.PreSieveLimit, and admitting one
	// of those here would hand wheel.ClassOf30/ClassOf210 a residue not
	// coprime to 30/210. Filter them out the same way Run does.
	inner := allInner[:0]
	for _, p := range allInner {
		if p > smallprimes.PreSieveLimit {
			inner = append(inner, p)
		}
	}

	// sieveInterval itself emits the primes <= smallprimes.PreSieveLimit
	// that fall in [0, limit], so out starts empty.
	var out []uint64
	snk := &sink{
		callback: func(p uint64) error {
			out = append(out, p)
			return nil
		},
	}
	if err := sieveInterval(0, limit, DefaultSieveSize, DefaultSmallDivisor, DefaultMediumMultiplier, inner, snk); err != nil {
		return nil, err
	}
	return out, nil
}
