// Package hash computes xxHash64 digests of the uncompressed CSV stream.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Writer forwards writes to an underlying writer and hashes every byte that
// was accepted by it.
type Writer struct {
	w      io.Writer
	digest *xxhash.Digest
}

// NewWriter returns a Writer forwarding to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, digest: xxhash.New()}
}

func (hw *Writer) Write(p []byte) (int, error) {
	n, err := hw.w.Write(p)
	_, _ = hw.digest.Write(p[:n])

	return n, err
}

// Sum64 returns the digest of all bytes written so far.
func (hw *Writer) Sum64() uint64 {
	return hw.digest.Sum64()
}

// Reader hashes every byte read from an underlying reader.
type Reader struct {
	r      io.Reader
	digest *xxhash.Digest
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, digest: xxhash.New()}
}

func (hr *Reader) Read(p []byte) (int, error) {
	n, err := hr.r.Read(p)
	_, _ = hr.digest.Write(p[:n])

	return n, err
}

// Sum64 returns the digest of all bytes read so far.
func (hr *Reader) Sum64() uint64 {
	return hr.digest.Sum64()
}
