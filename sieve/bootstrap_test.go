package sieve

import "testing"

func TestSimpleSieveSmallCases(t *testing.T) {
	cases := []struct {
		limit uint64
		want  []uint64
	}{
		{0, nil},
		{1, nil},
		{2, []uint64{2}},
		{3, []uint64{2, 3}},
		{10, []uint64{2, 3, 5, 7}},
		{30, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	}
	for _, c := range cases {
		got := simpleSieve(c.limit)
		if len(got) != len(c.want) {
			t.Fatalf("simpleSieve(%d) = %v, want %v", c.limit, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("simpleSieve(%d)[%d] = %d, want %d", c.limit, i, got[i], c.want[i])
			}
		}
	}
}

func TestSimpleSieveCountMatchesKnownPi(t *testing.T) {
	cases := []struct {
		limit uint64
		want  int
	}{
		{10, 4}, {100, 25}, {1000, 168}, {10000, 1229},
	}
	for _, c := range cases {
		if got := len(simpleSieve(c.limit)); got != c.want {
			t.Errorf("pi(%d) via simpleSieve = %d, want %d", c.limit, got, c.want)
		}
	}
}

func TestPrimesUpToBelowBootstrapThreshold(t *testing.T) {
	got, err := primesUpTo(1000)
	if err != nil {
		t.Fatalf("primesUpTo(1000): %v", err)
	}
	want := simpleSieve(1000)
	if len(got) != len(want) {
		t.Fatalf("primesUpTo(1000) returned %d primes, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("primesUpTo(1000)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPrimesUpToAboveBootstrapThresholdMatchesPi(t *testing.T) {
	// bootstrapThreshold is 65536; 100000 forces the recursive segmented
	// path to run at least once.
	got, err := primesUpTo(100000)
	if err != nil {
		t.Fatalf("primesUpTo(100000): %v", err)
	}
	if want := 9592; len(got) != want {
		t.Errorf("pi(100000) via primesUpTo = %d, want %d", len(got), want)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("primesUpTo(100000) not strictly ascending at index %d: %d then %d", i, got[i-1], got[i])
		}
	}
	if got[0] != 2 || got[1] != 3 || got[2] != 5 {
		t.Errorf("primesUpTo(100000) does not start 2,3,5: %v", got[:3])
	}
}
