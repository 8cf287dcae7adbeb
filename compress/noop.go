package compress

import (
	"io"

	"github.com/arloliu/codecbench/format"
)

// NoOpCompressor provides an identity codec that passes bytes through unchanged.
//
// It is the "raw" baseline of the benchmark: the measured cost is the record
// serialization and the buffered file I/O alone.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec.
//
// Returns:
//   - NoOpCompressor: New no-op codec instance
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// NewWriter returns w itself behind a Close that does nothing.
//
// Parameters:
//   - w: Sink receiving the bytes unchanged
//
// Returns:
//   - io.WriteCloser: Pass-through writer
//   - error: Always nil
func (c NoOpCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{Writer: w}, nil
}

// NewReader returns r itself behind a Close that does nothing.
//
// Parameters:
//   - r: Source whose bytes are returned unchanged
//
// Returns:
//   - io.ReadCloser: Pass-through reader
//   - error: Always nil
func (c NoOpCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}
