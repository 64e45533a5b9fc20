// Package logio bridges io.Writer onto printf-style logging functions,
// so stream-shaped output can land in a test log or any other logf sink.
package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function,
// emitting one Logf call per completed line.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers the given bytes, then flushes any completed lines through
// Logf. Writing holds a lock, so concurrent writers stay line-coherent.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flush(false)
	return len(p), nil
}

// Sync flushes anything left in the buffer as a final partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flush(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flush(all bool) {
	for lw.buf.Len() > 0 {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i >= 0 {
			lw.Logf("%s", lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
