package hal

import (
	"io"
	"sync"
)

// LineEnding terminates every console line.
const LineEnding = "\r\n"

// WriterConsole writes CRLF-terminated lines to an io.Writer.
type WriterConsole struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterConsole creates a console on top of w.
func NewWriterConsole(w io.Writer) *WriterConsole {
	return &WriterConsole{w: w}
}

// WriteLine writes line followed by LineEnding as a single write.
func (c *WriterConsole) WriteLine(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	buf := make([]byte, 0, len(line)+len(LineEnding))
	buf = append(buf, line...)
	buf = append(buf, LineEnding...)
	_, err := c.w.Write(buf)
	return err
}
