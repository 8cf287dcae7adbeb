// Package pool provides reusable fixed-size bufio readers and writers for file I/O.
package pool

import (
	"bufio"
	"io"
	"sync"
)

// DefaultBufferSize is the buffer size used between the file and the codec stream.
const DefaultBufferSize = 4 * 1024 * 1024 // 4MiB

// BufferPool is a pool of bufio.Writer and bufio.Reader values of one size.
//
// It uses sync.Pool internally. Buffers of a different size are never
// accepted back, so every value handed out has exactly Size() bytes.
type BufferPool struct {
	size    int
	writers sync.Pool
	readers sync.Pool
}

// NewBufferPool creates a BufferPool handing out buffers of the given size.
// Sizes below 16 bytes are raised to 16, the bufio minimum.
func NewBufferPool(size int) *BufferPool {
	if size < 16 {
		size = 16
	}

	p := &BufferPool{size: size}
	p.writers.New = func() any {
		return bufio.NewWriterSize(nil, size)
	}
	p.readers.New = func() any {
		return bufio.NewReaderSize(nil, size)
	}

	return p
}

// Size returns the buffer size in bytes.
func (p *BufferPool) Size() int {
	return p.size
}

// GetWriter retrieves a bufio.Writer from the pool and points it at w.
func (p *BufferPool) GetWriter(w io.Writer) *bufio.Writer {
	bw, _ := p.writers.Get().(*bufio.Writer)
	bw.Reset(w)

	return bw
}

// PutWriter returns a bufio.Writer to the pool for reuse.
//
// Unflushed data is discarded; callers flush before returning the writer.
func (p *BufferPool) PutWriter(bw *bufio.Writer) {
	if bw == nil || bw.Size() != p.size {
		return
	}

	bw.Reset(nil)
	p.writers.Put(bw)
}

// GetReader retrieves a bufio.Reader from the pool and points it at r.
func (p *BufferPool) GetReader(r io.Reader) *bufio.Reader {
	br, _ := p.readers.Get().(*bufio.Reader)
	br.Reset(r)

	return br
}

// PutReader returns a bufio.Reader to the pool for reuse.
func (p *BufferPool) PutReader(br *bufio.Reader) {
	if br == nil || br.Size() != p.size {
		return
	}

	br.Reset(nil)
	p.readers.Put(br)
}

var (
	poolsMu sync.Mutex
	pools   = map[int]*BufferPool{}
)

// ForSize returns the shared BufferPool for size, creating it on first use.
func ForSize(size int) *BufferPool {
	poolsMu.Lock()
	defer poolsMu.Unlock()

	if p, ok := pools[size]; ok {
		return p
	}
	p := NewBufferPool(size)
	pools[size] = p

	return p
}
