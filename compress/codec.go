package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/codecbench/format"
)

var (
	// ErrUnsupportedCompression is returned by the factories for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// ErrStreamMismatch is returned when a stream does not start with the framing the codec expects.
	ErrStreamMismatch = errors.New("stream was not produced by this codec")
)

// Compressor wraps a byte sink in an encoding stream.
//
// The returned writer must be closed to finalize the stream: buffering codecs
// emit their last block and frame trailer on Close, and omitting it leaves a
// truncated stream in the sink.
//
// Close never closes w itself. The caller owns the sink and is responsible for
// flushing and closing it after the encoding stream was finalized.
type Compressor interface {
	// NewWriter returns an encoding stream writing its output to w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Decompressor wraps a byte source in a decoding stream.
//
// The source must contain a complete stream produced by the same algorithm.
// A stream produced by another codec, or a truncated stream, fails either in
// NewReader or in a later Read.
//
// Example:
//
//	rc, err := compress.NewZstdCompressor().NewReader(f)
//	if err != nil {
//	    return fmt.Errorf("open zstd stream: %w", err)
//	}
//	defer rc.Close()
//
// Close releases decoder resources and never closes r itself.
type Decompressor interface {
	// NewReader returns a decoding stream reading its input from r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Codec combines both stream directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the compression algorithm implemented by the codec.
	Type() format.CompressionType
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, LZ4, Gzip or Snappy)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionGzip:   NewGzipCompressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, compressionType)
}

// nopWriteCloser turns a writer into an io.WriteCloser whose Close does nothing.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
