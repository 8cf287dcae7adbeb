package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/codecbench/format"
)

// gzipLevel is the gzip compression level used by GzipCompressor.
const gzipLevel = gzip.BestSpeed

// GzipCompressor encodes streams in the gzip format at level 1.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip codec.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Type returns format.CompressionGzip.
func (c GzipCompressor) Type() format.CompressionType {
	return format.CompressionGzip
}

// NewWriter returns a gzip writer on top of w.
func (c GzipCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, gzipLevel)
	if err != nil {
		return nil, fmt.Errorf("gzip writer: %w", err)
	}

	return zw, nil
}

// NewReader returns a gzip reader on top of r.
//
// The gzip header is read immediately, so a foreign stream fails here.
func (c GzipCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}

	return zr, nil
}
