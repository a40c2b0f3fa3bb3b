package sieve

import "math"

// NthPrime returns the n-th prime per spec.md's nth-prime operation. A
// positive n counts up from 2 (n=1 is 2, n=2 is 3, ...). A negative n is a
// supplemented backward search: n=-1 is the largest prime at or below
// searchStop, n=-2 the second-largest, and so on; searchStop is ignored
// for positive n.
func NthPrime(n int64, searchStop uint64) (uint64, error) {
	if n == 0 {
		return 0, newConfigError("NthPrime: n must be nonzero")
	}
	if n > 0 {
		return nthPrimeForward(uint64(n))
	}
	return nthPrimeBackward(uint64(-n), searchStop)
}

// estimateUpperBound uses the prime number theorem's standard bound
// (spec.md §4.7): the n-th prime is below n*(ln n + ln ln n) for n >= 6.
func estimateUpperBound(n uint64) uint64 {
	if n < 6 {
		return 15
	}
	x := float64(n)
	est := x * (math.Log(x) + math.Log(math.Log(x)))
	return uint64(est) + 10
}

// nthPrimeForward finds the n-th prime by sieving [0, bound] with a
// stopping callback, doubling bound and retrying whenever the PNT
// estimate undershoots.
func nthPrimeForward(n uint64) (uint64, error) {
	bound := estimateUpperBound(n)
	for {
		var found uint64
		var count uint64
		cfg, err := NewConfig(0, bound, DefaultSieveSize, FlagCallback)
		if err != nil {
			return 0, err
		}
		cfg.OnPrime = func(p uint64) error {
			count++
			if count == n {
				found = p
				return Stop
			}
			return nil
		}
		_, err = Run(cfg)
		if err != nil && !IsStop(err) {
			return 0, err
		}
		if count >= n {
			return found, nil
		}
		bound *= 2
	}
}

// nthPrimeBackward counts how many primes lie at or below searchStop,
// then reuses nthPrimeForward to locate the (total-n+1)-th prime, which
// by construction is the n-th prime counting down from searchStop.
func nthPrimeBackward(n, searchStop uint64) (uint64, error) {
	if searchStop == 0 {
		return 0, newConfigError("NthPrime: negative n requires a positive search bound")
	}
	cfg, err := NewConfig(0, searchStop, DefaultSieveSize, FlagCountPrimes)
	if err != nil {
		return 0, err
	}
	res, err := Run(cfg)
	if err != nil {
		return 0, err
	}
	total := res.Counts[Primes]
	if n > total {
		return 0, newConfigError("NthPrime: only %d primes at or below %d, cannot find the %d-th from the top", total, searchStop, n)
	}
	return nthPrimeForward(total - n + 1)
}
