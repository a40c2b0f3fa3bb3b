package primesieve

import (
	"time"

	"github.com/TusharAgarwal123/primesieve/internal/progress"
)

// Status reports how far a running or completed Run/RunParallel call has
// progressed, the way internal/progress.ProgressBar already tracks for
// the CLI, exposed here so library callers can poll it without scraping
// stderr.
type Status struct {
	bar       *progress.ProgressBar
	startedAt time.Time
}

// NewStatus builds a Status for an interval of totalSegments segments of
// sieveSize bytes each (see SegmentCount); pass the result to
// WithProgress. sieveSize lets the rendered rate report integers swept
// per second rather than raw segment counts.
func NewStatus(description string, totalSegments int64, sieveSize int) *Status {
	bar := progress.NewProgressBar(totalSegments, description)
	bar.SetUnitSize(int64(sieveSize) * 30)
	return &Status{
		bar:       bar,
		startedAt: time.Now(),
	}
}

// PercentComplete returns progress in [0, 100].
func (st *Status) PercentComplete() float64 {
	completed := st.bar.GetCompleted()
	total := st.bar.Total()
	if total == 0 {
		return 0
	}
	pct := float64(completed) / float64(total) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Elapsed returns the time since NewStatus built st; it keeps growing
// after the run has finished.
func (st *Status) Elapsed() time.Duration {
	return time.Since(st.startedAt)
}

// advance records that one more segment finished; Run calls this once
// per segment when a Status is attached via WithProgress.
func (st *Status) advance() {
	st.bar.Update(1)
}

// Finish marks the bar complete, for callers (typically the CLI) that
// want the bar to read 100% even if the final segment undershot its
// share of the total (the last segment is often partial).
func (st *Status) Finish() {
	st.bar.Finish()
}
