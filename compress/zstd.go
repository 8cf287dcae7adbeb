package compress

import "github.com/arloliu/codecbench/format"

// zstdLevel is the zstd compression level used by ZstdCompressor.
const zstdLevel = 3

// ZstdCompressor provides Zstandard stream compression at level 3.
//
// The default build uses the pure Go implementation from klauspost/compress.
// Building with the gozstd tag (and cgo enabled) switches to the libzstd
// binding from valyala/gozstd. Both produce standard zstd frames, so files
// written by one backend are readable by the other.
//
// Encoder and decoder both run on a single goroutine.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd codec instance
//
// Example:
//
//	codec := NewZstdCompressor()
//	zw, err := codec.NewWriter(f)
//	if err != nil {
//		return err
//	}
//	defer zw.Close()
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
