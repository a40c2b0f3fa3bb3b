package primesieve

import (
	"github.com/grailbio/base/traverse"
	"github.com/pkg/errors"

	"github.com/TusharAgarwal123/primesieve/sieve"
)

// RunParallel splits the configured interval into workers disjoint,
// contiguous sub-intervals and sieves them concurrently with
// github.com/grailbio/base/traverse, then sums their constellation
// counts. workers <= 0 is treated as 1, which is the same as calling Run.
//
// WithPrint and WithCallback still fire once per prime, but interleaved
// across workers in whatever order their shards finish, not in ascending
// numeric order; callers that need strict ordering should use Run
// instead. Constellation counts can also come out low: a tuplet
// straddling a shard boundary is invisible to both shards' independent
// tupletMatchers and is not counted; Run never has this issue.
func (s *Sieve) RunParallel(workers int) (*Counts, error) {
	if workers <= 0 {
		workers = 1
	}
	start, stop := s.cfg.Start, s.cfg.Stop
	total := stop - start + 1
	if uint64(workers) > total {
		workers = int(total)
	}
	if workers <= 1 {
		return s.Run()
	}

	shardResults := make([]*Counts, workers)
	err := traverse.Each(workers, func(job int) error {
		loOffset := (uint64(job) * total) / uint64(workers)
		hiOffset := (uint64(job+1) * total) / uint64(workers)
		shardStart := start + loOffset
		shardStop := start + hiOffset - 1

		shardCfg, err := sieve.NewConfig(shardStart, shardStop, s.cfg.SieveSize, s.cfg.Flags)
		if err != nil {
			return err
		}
		shardCfg.SmallDivisor = s.cfg.SmallDivisor
		shardCfg.MediumMultiplier = s.cfg.MediumMultiplier
		shardCfg.OnPrime = s.cfg.OnPrime
		shardCfg.Printer = s.cfg.Printer
		shardCfg.OnSegment = s.cfg.OnSegment

		res, err := sieve.Run(shardCfg)
		if err != nil && !sieve.IsStop(err) {
			return err
		}
		shardResults[job] = res
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "primesieve.RunParallel")
	}

	merged := &Counts{}
	for _, res := range shardResults {
		if res == nil {
			continue
		}
		for i := range merged.Counts {
			merged.Counts[i] += res.Counts[i]
		}
	}
	return merged, nil
}
