package progress

import "testing"

func TestProgressBarUpdateAndTotal(t *testing.T) {
	bar := NewProgressBar(10, "test")
	if got := bar.Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
	bar.Update(3)
	if got := bar.GetCompleted(); got != 3 {
		t.Errorf("GetCompleted() = %d, want 3", got)
	}
	bar.Update(4)
	if got := bar.GetCompleted(); got != 7 {
		t.Errorf("GetCompleted() = %d, want 7", got)
	}
}

func TestProgressBarSetTotalAndFinish(t *testing.T) {
	bar := NewProgressBar(0, "test")
	bar.SetTotal(50)
	if got := bar.Total(); got != 50 {
		t.Errorf("Total() after SetTotal = %d, want 50", got)
	}
	bar.Finish()
	if got := bar.GetCompleted(); got != 50 {
		t.Errorf("GetCompleted() after Finish = %d, want Total (50)", got)
	}
}

func TestProgressBarSetCompleted(t *testing.T) {
	bar := NewProgressBar(100, "test")
	bar.SetCompleted(42)
	if got := bar.GetCompleted(); got != 42 {
		t.Errorf("GetCompleted() = %d, want 42", got)
	}
}

func TestSetUnitSizeLeavesCompletedCount(t *testing.T) {
	bar := NewProgressBar(10, "test")
	bar.SetUnitSize(30) // e.g. one mod-30 byte swept per completed unit
	bar.Update(2)
	if got := bar.GetCompleted(); got != 2 {
		t.Errorf("GetCompleted() = %d, want 2", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{5, "5"},
		{999, "999"},
		{1500, "1.50K"},
		{2_500_000, "2.50M"},
		{3_200_000_000, "3.20B"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.n); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
