package sieve

// A prime k-tuplet is a fixed pattern of gaps between k consecutive
// primes (no prime falls between any two adjacent members). tupletGaps
// lists every admissible minimal gap pattern for each constellation this
// package counts; several constellations admit more than one pattern
// (e.g. {p, p+2, p+6} and {p, p+4, p+6} are both valid prime triplets),
// so each constellation appears once per distinct pattern.
//
// Patterns were checked against the first members of each constellation
// (twins at 3, triplets at 5 and 7, quadruplets at 5, quintuplets at 5
// and 7, sextuplets at 7, septuplets at 11 and 5639) before being fixed
// here; a malformed pattern would simply never match and undercount,
// which is the failure mode worth naming in a comment, not a panic.
var tupletGaps = []struct {
	c    Constellation
	gaps []uint64
}{
	{Twins, []uint64{2}},
	{Triplets, []uint64{2, 4}},
	{Triplets, []uint64{4, 2}},
	{Quadruplets, []uint64{2, 4, 2}},
	{Quintuplets, []uint64{2, 4, 2, 4}},
	{Quintuplets, []uint64{4, 2, 4, 2}},
	{Sextuplets, []uint64{4, 2, 4, 2, 4}},
	{Septuplets, []uint64{2, 4, 2, 4, 6, 2}},
	{Septuplets, []uint64{2, 6, 4, 2, 4, 2}},
}

// maxTupletWindow is the longest pattern length (in gaps) plus one, the
// number of consecutive primes a match can span.
const maxTupletWindow = 7

// tupletMatcher recognizes constellation patterns in a stream of primes
// delivered in ascending order, carrying just enough trailing state
// across segment boundaries (spec.md's segments are an implementation
// detail; constellations must not be undercounted at a boundary).
type tupletMatcher struct {
	window []uint64 // most recent primes seen, oldest first, capped to maxTupletWindow
}

func newTupletMatcher() *tupletMatcher {
	return &tupletMatcher{window: make([]uint64, 0, maxTupletWindow)}
}

// observe records the next prime in ascending order and adds one to
// counts[c] for every constellation whose pattern ends at this prime.
func (m *tupletMatcher) observe(p uint64, counts *[constellationCount]uint64) {
	if len(m.window) == maxTupletWindow {
		copy(m.window, m.window[1:])
		m.window = m.window[:maxTupletWindow-1]
	}
	m.window = append(m.window, p)

	for _, pat := range tupletGaps {
		need := len(pat.gaps) + 1
		if len(m.window) < need {
			continue
		}
		tail := m.window[len(m.window)-need:]
		if matchesGaps(tail, pat.gaps) {
			counts[pat.c]++
		}
	}
}

func matchesGaps(primes []uint64, gaps []uint64) bool {
	for i, g := range gaps {
		if primes[i+1]-primes[i] != g {
			return false
		}
	}
	return true
}
