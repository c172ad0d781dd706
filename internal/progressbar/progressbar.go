// Package progressbar renders the text of a single progress update so it can
// be redrawn in place on a live line.
package progressbar

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
)

// DefaultWidth is the bar width used when none is configured.
const DefaultWidth = 40

// Progress renders counter text with an optional gradient bar in front.
type Progress struct {
	bar     progress.Model
	total   int64
	showBar bool
	unit    string
}

// Option configures a Progress.
type Option func(*Progress)

// WithWidth sets the bar width in cells. Non-positive widths fall back to DefaultWidth.
func WithWidth(width int) Option {
	return func(p *Progress) {
		if width <= 0 {
			width = DefaultWidth
		}
		p.bar.Width = width
	}
}

// WithBar toggles the bar. Without it only the counter is rendered.
func WithBar(show bool) Option {
	return func(p *Progress) {
		p.showBar = show
	}
}

// WithUnit sets the word printed after the counter.
func WithUnit(unit string) Option {
	return func(p *Progress) {
		p.unit = unit
	}
}

// New creates a progress renderer counting up to total.
func New(total int64, opts ...Option) Progress {
	p := Progress{
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(DefaultWidth)),
		total:   total,
		showBar: true,
		unit:    "items",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Total returns the count the renderer reaches at completion.
func (p Progress) Total() int64 {
	return p.total
}

// Ratio reports completion in [0, 1].
func (p Progress) Ratio(completed int64) float64 {
	if p.total <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, float64(completed)/float64(p.total)))
}

// Label renders "completed/total unit" with thousands separators.
func (p Progress) Label(completed int64) string {
	label := fmt.Sprintf("%s/%s", humanize.Comma(completed), humanize.Comma(p.total))
	if p.unit != "" {
		label += " " + p.unit
	}
	return label
}

// View renders the full update text for the completion count.
func (p Progress) View(completed int64) string {
	label := p.Label(completed)
	if !p.showBar {
		return label
	}
	return p.bar.ViewAs(p.Ratio(completed)) + " " + label
}

// Steps splits the total into n evenly spaced completion counts, starting at
// zero and ending at the total.
func (p Progress) Steps(n int) []int64 {
	if n < 1 {
		n = 1
	}
	counts := make([]int64, 0, n+1)
	for i := 0; i <= n; i++ {
		counts = append(counts, int64(float64(i)/float64(n)*float64(p.total)))
	}
	return counts
}
