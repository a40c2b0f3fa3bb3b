package sieve

// sievingPrime is the packed triple from spec.md §3: scaledPrime = p/30,
// multipleIndex (byte offset of the next multiple within the segment it
// currently belongs to), and wheelIndex (position in the active wheel's
// transition table). Packing the triple into one uint64 keeps the
// per-engine arrays dense, one word per sieving prime, favoring cache
// residency the way spec.md §9 asks for.
//
// Layout, LSB first: wheelIndex[8] | multipleIndex[24] | scaledPrime[32].
// scaledPrime gets a full 32 bits since sieving primes run up to
// sqrt(2^64-1) ≈ 2^32, i.e. scaledPrime up to roughly 2^32/30; 24 bits for
// multipleIndex comfortably covers MaxSieveSize (2^22); 8 bits for
// wheelIndex covers both the 8-spoke and 48-spoke wheels.
type sievingPrime uint64

const (
	wheelIndexBits = 8
	multIndexBits  = 24
	scaledBits     = 32

	wheelIndexMask = 1<<wheelIndexBits - 1
	multIndexMask  = 1<<multIndexBits - 1
	scaledMask     = 1<<scaledBits - 1

	multIndexShift = wheelIndexBits
	scaledShift    = wheelIndexBits + multIndexBits
)

func packSievingPrime(scaledPrime, multipleIndex uint32, wheelIndex uint8) sievingPrime {
	return sievingPrime(uint64(scaledPrime&scaledMask)<<scaledShift |
		uint64(multipleIndex&multIndexMask)<<multIndexShift |
		uint64(wheelIndex&wheelIndexMask))
}

func (r sievingPrime) scaledPrime() uint32 {
	return uint32(uint64(r)>>scaledShift) & scaledMask
}

func (r sievingPrime) multipleIndex() uint32 {
	return uint32(uint64(r)>>multIndexShift) & multIndexMask
}

func (r sievingPrime) wheelIndex() uint8 {
	return uint8(uint64(r) & wheelIndexMask)
}

func (r sievingPrime) withMultipleIndex(mi uint32) sievingPrime {
	return packSievingPrime(r.scaledPrime(), mi, r.wheelIndex())
}

func (r sievingPrime) withWheelIndex(wi uint8) sievingPrime {
	return packSievingPrime(r.scaledPrime(), r.multipleIndex(), wi)
}

// prime reconstructs the original prime value (invariant I3: scaledPrime*30
// + wheel residue = p). residue30 is the prime's residue mod 30, supplied
// by the caller since it is not itself stored in the packed word (the
// wheelIndex alone does not uniquely determine it without knowing which
// wheel and which class row the record lives in).
func (r sievingPrime) prime(residue30 uint64) uint64 {
	return uint64(r.scaledPrime())*30 + residue30
}
