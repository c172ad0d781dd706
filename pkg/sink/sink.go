// Package sink abstracts the byte streams console output is written to.
//
// Production code writes through Stream values bound to the process's
// inherited stdout/stderr. Tests substitute a Capture, which records every
// write and can be inspected or cleared between assertions.
package sink

import (
	"bytes"
	"io"
	"os"
	"sync"

	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
)

// Sink is where formatted output goes.
type Sink interface {
	io.Writer
	Name() string
}

// Stream writes straight to an underlying writer, normally an *os.File.
type Stream struct {
	name string
	w    io.Writer
}

// NewStream wraps w under the given name. The name appears in write errors.
func NewStream(name string, w io.Writer) *Stream {
	return &Stream{name: name, w: w}
}

// Stdout returns a Stream over os.Stdout.
func Stdout() *Stream {
	return NewStream("stdout", os.Stdout)
}

// Stderr returns a Stream over os.Stderr.
func Stderr() *Stream {
	return NewStream("stderr", os.Stderr)
}

// Name returns the stream name.
func (s *Stream) Name() string {
	return s.name
}

// Write forwards p to the underlying writer.
func (s *Stream) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, ansierrors.NewWriteError(s.name, err)
	}
	return n, nil
}

// File returns the underlying *os.File, or nil when the stream does not
// wrap one.
func (s *Stream) File() *os.File {
	f, _ := s.w.(*os.File)
	return f
}

// Capture is an in-memory sink for tests and diagnostics.
type Capture struct {
	name string
	mu   sync.Mutex
	buf  bytes.Buffer
}

// NewCapture creates an initialized capture sink.
func NewCapture(name string) *Capture {
	return &Capture{name: name}
}

// Name returns the capture name.
func (c *Capture) Name() string {
	return c.name
}

// Init prepares the capture for a new test, discarding earlier contents.
func (c *Capture) Init() {
	c.Reset()
}

// Reset discards everything captured so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}

// Write records p.
func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// Contents returns everything written since the last Init or Reset.
func (c *Capture) Contents() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}
