package primesieve

import (
	"github.com/pkg/errors"

	"github.com/TusharAgarwal123/primesieve/internal/xlog"
	"github.com/TusharAgarwal123/primesieve/sieve"
)

// Sieve is a configured, reusable sieve over one interval. Build one with
// New, then call Run (or RunParallel) as many times as needed; each call
// re-sieves the interval from scratch, since the underlying engines hold
// no state between Run calls.
type Sieve struct {
	cfg *sieve.Config
	log xlog.Logger
}

// New builds a Sieve over [start, stop], inclusive on both ends, always
// counting plain primes; opts add further output products and tunables.
func New(start, stop uint64, opts ...Option) (*Sieve, error) {
	cfg, err := sieve.NewConfig(start, stop, defaultSieveSize(), sieve.FlagCountPrimes)
	if err != nil {
		return nil, errors.Wrap(err, "primesieve.New")
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.SieveSize == 0 {
		cfg.SieveSize = defaultSieveSize()
	}
	if _, err := sieve.NewConfig(start, stop, cfg.SieveSize, cfg.Flags); err != nil {
		return nil, errors.Wrap(err, "primesieve.New")
	}
	return &Sieve{cfg: cfg, log: xlog.Default}, nil
}

// WithLogger redirects this Sieve's diagnostic logging away from the
// default (github.com/grailbio/base/log-backed) logger, e.g. to
// xlog.Discard in tests or an embedding application's own logger. Returns
// s for chaining off New.
func (s *Sieve) WithLogger(l xlog.Logger) *Sieve {
	s.log = l
	return s
}

// Counts is the result of a Run call: Counts[sieve.Primes] is the plain
// prime count, Counts[sieve.Twins] the twin-prime count, and so on.
type Counts = sieve.Result

// Run sieves the configured interval once and returns the requested
// counts. A callback (see WithCallback) that returns sieve.Stop ends the
// sieve early without Run reporting an error.
func (s *Sieve) Run() (*Counts, error) {
	s.log.Debugf("primesieve: running [%d, %d], sieveSize=%d", s.cfg.Start, s.cfg.Stop, s.cfg.SieveSize)
	res, err := sieve.Run(s.cfg)
	if err != nil && !sieve.IsStop(err) {
		return res, errors.Wrap(err, "primesieve.Run")
	}
	return res, nil
}

// CountPrimes is a convenience wrapper for the common case: how many
// primes lie in [start, stop].
func CountPrimes(start, stop uint64, opts ...Option) (uint64, error) {
	s, err := New(start, stop, opts...)
	if err != nil {
		return 0, err
	}
	res, err := s.Run()
	if err != nil {
		return 0, err
	}
	return res.Counts[sieve.Primes], nil
}

// CountConstellation counts one k-tuplet constellation (and plain primes
// alongside it) in [start, stop].
func CountConstellation(start, stop uint64, c sieve.Constellation, opts ...Option) (*Counts, error) {
	s, err := New(start, stop, append(opts, WithCount(c))...)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// NthPrime returns the n-th prime (n=1 is 2, ascending) for positive n, or
// the |n|-th prime at or below searchStop counting down for negative n
// (searchStop is ignored when n is positive).
func NthPrime(n int64, searchStop uint64) (uint64, error) {
	p, err := sieve.NthPrime(n, searchStop)
	if err != nil {
		return 0, errors.Wrap(err, "primesieve.NthPrime")
	}
	return p, nil
}
