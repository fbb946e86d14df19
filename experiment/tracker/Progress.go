package tracker

import (
	"fmt"
	"io"

	ts "github.com/samuelfneumann/lineworld/timestep"
	"github.com/samuelfneumann/lineworld/utils/progressbar"
)

// Progress reports the return of every interval'th finished episode
// to a writer, one line per report.
type Progress struct {
	out      io.Writer
	interval int
	episodes int
}

// NewProgress returns a new Progress tracker which writes to out after
// every interval episodes
func NewProgress(out io.Writer, interval int) *Progress {
	if interval <= 0 {
		panic(fmt.Sprintf("newProgress: interval must be positive (got %d)",
			interval))
	}
	return &Progress{out: out, interval: interval}
}

// Track counts finished episodes and reports the return of the
// episode ended by t when the count is a multiple of the interval
func (p *Progress) Track(t ts.TimeStep) {
	if !t.Last() {
		return
	}

	p.episodes++
	if p.episodes%p.interval == 0 {
		fmt.Fprintf(p.out, "Episode: %d, Total Reward: %v\n", p.episodes,
			t.Return)
	}
}

// Episodes returns the number of finished episodes seen
func (p *Progress) Episodes() int {
	return p.episodes
}

// ProgressBar advances a progress bar once per finished episode
type ProgressBar struct {
	bar *progressbar.ManualProgressBar
}

// NewProgressBar returns a new ProgressBar tracker drawing a bar of
// width characters to out, which is full after episodes episodes
func NewProgressBar(out io.Writer, width, episodes int) *ProgressBar {
	return &ProgressBar{progressbar.NewManualProgressBar(out, width, episodes)}
}

// Track increments and redraws the bar at the end of each episode
func (p *ProgressBar) Track(t ts.TimeStep) {
	if t.Last() {
		p.bar.Increment()
		p.bar.Display()
	}
}

// Close moves the output past the bar
func (p *ProgressBar) Close() {
	p.bar.Close()
}
