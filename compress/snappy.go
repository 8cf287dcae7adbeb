package compress

import (
	"io"

	"github.com/golang/snappy"

	"github.com/arloliu/codecbench/format"
)

// SnappyCompressor encodes streams in the Snappy framing format.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy framed codec.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Type returns format.CompressionSnappy.
func (c SnappyCompressor) Type() format.CompressionType {
	return format.CompressionSnappy
}

// NewWriter returns a buffered Snappy frame writer on top of w.
//
// Chunks are emitted in 64KB units; Close flushes the pending chunk.
func (c SnappyCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

// NewReader returns a Snappy frame reader on top of r.
func (c SnappyCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}
