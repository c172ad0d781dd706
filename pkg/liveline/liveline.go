// Package liveline redraws a single terminal line in place, e.g. to show
// progress. A Line is meant for one writer; interleaving updates from several
// goroutines garbles the display.
package liveline

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
)

// ClearLine erases the current line and returns the cursor to column 0.
const ClearLine = "\x1b[2K\r"

// Line tracks whether a redrawn line is still open.
type Line struct {
	w      io.Writer
	open   bool
	logger zerolog.Logger
}

// New creates a Line writing to w.
func New(w io.Writer) *Line {
	return &Line{w: w, logger: zerolog.Nop()}
}

// WithLogger sets the logger used for debug events.
func (l *Line) WithLogger(logger zerolog.Logger) *Line {
	l.logger = logger
	return l
}

// Update replaces the current line with text. With finalize the line is
// terminated and later output starts on a fresh line.
func (l *Line) Update(text string, finalize bool) error {
	out := ClearLine + text
	if finalize {
		out += geometry.EOL
	}
	if _, err := io.WriteString(l.w, out); err != nil {
		return err
	}
	l.open = !finalize
	return nil
}

// Open reports whether the last update left the line open.
func (l *Line) Open() bool {
	return l.open
}

// Close terminates an open line. It is a no-op otherwise.
func (l *Line) Close() error {
	if !l.open {
		return nil
	}
	l.logger.Debug().Msg("closing live line")
	if _, err := io.WriteString(l.w, geometry.EOL); err != nil {
		return err
	}
	l.open = false
	return nil
}

// Reset forgets an open line without writing anything, for when other
// output already moved the cursor to a new line.
func (l *Line) Reset() {
	l.open = false
}
