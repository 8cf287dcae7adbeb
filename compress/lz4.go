package compress

import (
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/codecbench/format"
)

// LZ4Compressor encodes streams in the LZ4 frame format.
//
// The frame uses the library defaults (4MB blocks, fast level, content
// checksum) and a single goroutine.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
//
// Returns:
//   - LZ4Compressor: New LZ4 codec instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type returns format.CompressionLZ4.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// NewWriter returns an LZ4 frame writer on top of w.
//
// Closing the writer emits the end mark and the content checksum; w is left open.
func (c LZ4Compressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.ConcurrencyOption(1)); err != nil {
		return nil, fmt.Errorf("lz4 writer options: %w", err)
	}

	return zw, nil
}

// NewReader returns an LZ4 frame reader on top of r.
//
// The frame header is validated lazily on the first Read.
func (c LZ4Compressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
