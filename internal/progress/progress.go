package progress

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// ProgressBar provides a simple terminal progress bar that writes to stderr.
// completed/total count opaque units of work (e.g. sieve segments);
// unitSize scales those units into a throughput the caller actually cares
// about (e.g. integers swept per segment) for the rendered rate.
type ProgressBar struct {
	total       int64
	completed   int64
	unitSize    int64
	width       int
	startTime   time.Time
	description string
	mu          sync.Mutex
}

func NewProgressBar(total int64, description string) *ProgressBar {
	return &ProgressBar{
		total:       total,
		unitSize:    1,
		width:       40,
		description: description,
		startTime:   time.Now(),
	}
}

// SetUnitSize scales the rendered rate: each completed unit is treated as
// n items of underlying work (e.g. a sieve segment's sieveSize*30 swept
// integers), so the "/s" figure reports real throughput rather than raw
// segment counts.
func (p *ProgressBar) SetUnitSize(n int64) {
	p.mu.Lock()
	p.unitSize = n
	p.mu.Unlock()
}

func (p *ProgressBar) Update(delta int64) {
	p.mu.Lock()
	p.completed += delta
	p.render()
	p.mu.Unlock()
}

func (p *ProgressBar) SetTotal(total int64) {
	p.mu.Lock()
	p.total = total
	p.mu.Unlock()
}

func (p *ProgressBar) SetDescription(desc string) {
	p.mu.Lock()
	p.description = desc
	p.mu.Unlock()
}

func (p *ProgressBar) SetCompleted(completed int64) {
	p.mu.Lock()
	p.completed = completed
	p.render()
	p.mu.Unlock()
}

func (p *ProgressBar) Finish() {
	p.mu.Lock()
	p.completed = p.total
	p.render()
	fmt.Fprintln(os.Stderr)
	p.mu.Unlock()
}

func (p *ProgressBar) GetCompleted() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// Total returns the configured total, as last set by NewProgressBar or
// SetTotal.
func (p *ProgressBar) Total() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

func (p *ProgressBar) render() {
	if p.total == 0 {
		return
	}

	percent := float64(p.completed) / float64(p.total)
	if percent > 1.0 {
		percent = 1.0
	}

	filled := int(percent * float64(p.width))

	elapsed := time.Since(p.startTime)
	swept := p.completed * p.unitSize
	rate := float64(swept) / elapsed.Seconds()
	var rateStr string
	if rate >= 1_000_000 {
		rateStr = fmt.Sprintf("%.1fM/s", rate/1_000_000)
	} else if rate >= 1_000 {
		rateStr = fmt.Sprintf("%.1fK/s", rate/1_000)
	} else {
		rateStr = fmt.Sprintf("%.0f/s", rate)
	}

	fmt.Fprintf(os.Stderr, "\r%s: [%s%s] %3.0f%% | %d/%d segs | %s values/s",
		p.description,
		strings.Repeat("=", filled),
		strings.Repeat(" ", p.width-filled),
		percent*100,
		p.completed,
		p.total,
		rateStr)
}

func GetCPUCount() int {
	return runtime.NumCPU()
}

func FormatNumber(n int64) string {
	if n >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", float64(n)/1_000_000_000)
	} else if n >= 1_000_000 {
		return fmt.Sprintf("%.2fM", float64(n)/1_000_000)
	} else if n >= 1_000 {
		return fmt.Sprintf("%.2fK", float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}
