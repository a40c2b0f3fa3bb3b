package smallprimes

import "testing"

func TestTableIsAscendingPrimesUpToPreSieveLimit(t *testing.T) {
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19}
	if len(Table) != len(want) {
		t.Fatalf("len(Table) = %d, want %d", len(Table), len(want))
	}
	for i, p := range want {
		if Table[i] != p {
			t.Errorf("Table[%d] = %d, want %d", i, Table[i], p)
		}
	}
	if Table[len(Table)-1] != PreSieveLimit {
		t.Errorf("last table entry %d does not match PreSieveLimit %d", Table[len(Table)-1], PreSieveLimit)
	}
}

func TestCountInRange(t *testing.T) {
	cases := []struct {
		lo, hi uint64
		want   uint64
	}{
		{0, 20, 8},
		{0, 1, 0},
		{7, 19, 5},
		{8, 10, 0},
		{20, 30, 0},
	}
	for _, c := range cases {
		if got := CountInRange(c.lo, c.hi); got != c.want {
			t.Errorf("CountInRange(%d,%d) = %d, want %d", c.lo, c.hi, got, c.want)
		}
	}
}

func TestInRange(t *testing.T) {
	got := InRange(nil, 5, 13)
	want := []uint64{5, 7, 11, 13}
	if len(got) != len(want) {
		t.Fatalf("InRange(5,13) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("InRange(5,13)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestInRangeAppendsToExistingSlice(t *testing.T) {
	dst := []uint64{1000}
	got := InRange(dst, 2, 5)
	want := []uint64{1000, 2, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("InRange with prefix = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("InRange[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
