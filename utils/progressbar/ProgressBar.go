// Package progressbar implements functionality of printing a progress
// bar over a fixed number of experiments to a terminal
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressBar is a progress bar that must be manually managed. Display
// must be called whenever an updated bar should be written.
//
// ProgressBar does not use concurrency.
type ProgressBar struct {
	out       io.Writer
	width     int
	total     int
	done      int
	startTime time.Time
}

// New returns a new ProgressBar that writes to out, is width characters
// wide, and reaches 100% after total calls to Increment
func New(out io.Writer, width, total int) (*ProgressBar, error) {
	if width < 1 {
		return nil, fmt.Errorf("new: width must be positive, got %v", width)
	}
	if total < 1 {
		return nil, fmt.Errorf("new: total must be positive, got %v", total)
	}

	return &ProgressBar{
		out:       out,
		width:     width,
		total:     total,
		startTime: time.Now(),
	}, nil
}

// Increment records that one more unit of work has finished
func (p *ProgressBar) Increment() {
	if p.done < p.total {
		p.done++
	}
}

// Fraction returns the fraction of work finished
func (p *ProgressBar) Fraction() float64 {
	return float64(p.done) / float64(p.total)
}

// Bar returns the bar itself, without the percentage or elapsed time
func (p *ProgressBar) Bar() string {
	filled := p.done * p.width / p.total

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	bar.WriteString("|")
	return bar.String()
}

// Display overwrites the current terminal line with the bar
func (p *ProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v [%.2f%% | %v/%v | elapsed: %v]",
		p.Bar(), p.Fraction()*100, p.done, p.total,
		time.Since(p.startTime).Truncate(time.Second))
	if p.done == p.total {
		fmt.Fprintln(p.out)
	}
}
