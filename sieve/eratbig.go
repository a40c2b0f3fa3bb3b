package sieve

import "github.com/TusharAgarwal123/primesieve/sieve/wheel"

// bucketPage is a fixed-capacity page of EratBig records, drawn from a
// per-worker arena free-list (spec.md §9: "pages are owned by their
// current bucket; transfer is move-only").
type bucketPage struct {
	n       int
	recs    [bucketPageSize]sievingPrime
	classes [bucketPageSize]uint8
	next    *bucketPage
}

// EratBig crosses off composites for sieving primes that fire at most
// once per segment, usually zero (spec.md §4.5): p > sieveSize*5, up to
// sqrt(stop). Records are bucketed by the segment index of their next
// multiple; the driver only ever touches the one bucket belonging to the
// segment it is currently processing, so per-segment work is proportional
// to how many big primes actually fire there, not to how many exist.
type EratBig struct {
	sieveSize  int
	numBuckets int
	buckets    []*bucketPage
	freeList   *bucketPage
}

// NewEratBig sizes the bucket ring to cover every segment a sieving prime
// up to maxPrime could still be firing in: N = ceil(maxPrime*30/sieveSize)
// + 1 (spec.md §4.5), with one extra slot of slack.
func NewEratBig(sieveSize int, maxPrime uint64) (*EratBig, error) {
	if sieveSize > MaxSieveSize {
		return nil, newConfigError("EratBig: sieveSize %d exceeds MaxSieveSize", sieveSize)
	}
	n := (maxPrime*30)/uint64(sieveSize) + 2
	if n < 2 {
		n = 2
	}
	return &EratBig{
		sieveSize:  sieveSize,
		numBuckets: int(n),
		buckets:    make([]*bucketPage, n),
	}, nil
}

func (b *EratBig) allocPage() *bucketPage {
	if b.freeList != nil {
		p := b.freeList
		b.freeList = p.next
		p.next = nil
		p.n = 0
		return p
	}
	return &bucketPage{}
}

func (b *EratBig) freePage(p *bucketPage) {
	p.next = b.freeList
	b.freeList = p
}

// addSievingPrime inserts a record into the bucket for segmentIndex, the
// index of the segment containing its next multiple.
func (b *EratBig) addSievingPrime(scaledPrime uint32, segmentIndex uint64, byteIndex uint32, wheelIndex uint8, class uint8) {
	idx := int(segmentIndex % uint64(b.numBuckets))
	page := b.buckets[idx]
	if page == nil || page.n == bucketPageSize {
		fresh := b.allocPage()
		fresh.next = page
		b.buckets[idx] = fresh
		page = fresh
	}
	page.recs[page.n] = packSievingPrime(scaledPrime, byteIndex, wheelIndex)
	page.classes[page.n] = class
	page.n++
}

// crossOff drains the bucket belonging to currentSegmentIndex: for each
// record, it clears every bit its multiples occupy in this segment
// (usually exactly one, but a sieving prime just above the Small/Medium
// boundary can still land more than once), advances the wheel, and
// reinserts the record into whichever future bucket its next multiple now
// belongs to. A record whose next multiple would start beyond
// maxSegmentIndex has reached its terminal state (spec.md §4.5) and is
// dropped instead of reinserted.
func (b *EratBig) crossOff(seg *segment, currentSegmentIndex, maxSegmentIndex uint64) {
	idx := int(currentSegmentIndex % uint64(b.numBuckets))
	page := b.buckets[idx]
	b.buckets[idx] = nil
	bytes := seg.bytes
	size := int64(b.sieveSize)
	table := wheel.Wheel210.Transitions

	for page != nil {
		next := page.next
		for k := 0; k < page.n; k++ {
			rec := page.recs[k]
			class := page.classes[k]
			scaled := rec.scaledPrime()
			mi := int64(rec.multipleIndex())
			wi := rec.wheelIndex()

			for mi < size {
				t := table[class][wi]
				bytes[mi] &^= t.BitMask
				mi += int64(scaled)*int64(t.ByteSpan) + int64(t.Correction)
				wi = t.Next
			}

			segsAdvanced := mi / size
			remainder := mi % size
			newSegIndex := currentSegmentIndex + uint64(segsAdvanced)

			if newSegIndex > maxSegmentIndex {
				continue // terminal state, spec.md §4.5
			}
			b.addSievingPrime(scaled, newSegIndex, uint32(remainder), wi, class)
		}
		b.freePage(page)
		page = next
	}
}

// count reports the number of records currently parked across all
// buckets, walking every page; used for diagnostics and tests, not on the
// hot path.
func (b *EratBig) count() int {
	n := 0
	for _, head := range b.buckets {
		for p := head; p != nil; p = p.next {
			n += p.n
		}
	}
	return n
}
