// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed to the screen.
//
// ManualProgressBar does not use concurrency. The solvers use it to
// show sweep progress against their iteration caps, closing early at
// convergence.
type ManualProgressBar struct {
	width           float64
	maxProgress     float64
	currentProgress float64
	postfix         string
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar
func NewManualProgressBar(width, max int) *ManualProgressBar {
	return &ManualProgressBar{
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		startTime:       time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// SetPostfix sets a short status string printed after the bar, for
// example the current convergence delta.
func (p *ManualProgressBar) SetPostfix(postfix string) {
	p.postfix = postfix
}

// Display displays the progress bar on the screen, overwriting the
// previously displayed bar.
func (p *ManualProgressBar) Display() {
	p.bar.Reset()
	p.bar.Write([]byte("|"))

	currentProg := p.currentProgress / p.maxProgress * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.Write([]byte("█"))
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.Write([]byte(" "))
	}
	p.bar.Write([]byte(fmt.Sprintf("| [%.2f%v | elapsed: %v]",
		p.currentProgress/p.maxProgress*100, "%",
		time.Since(p.startTime).Truncate(time.Second))))
	if p.postfix != "" {
		p.bar.Write([]byte(" " + p.postfix))
	}

	fmt.Printf("\n\033[1A\033[K%v", p.bar.String())
}

// Close finishes the bar, jumping to the next terminal line so later
// output does not overwrite it.
func (p *ManualProgressBar) Close() {
	fmt.Println()
}
