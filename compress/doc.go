// Package compress provides stream codecs for the CSV record files written by the benchmark.
//
// Every codec wraps a byte sink in an encoding stream and a byte source in a
// decoding stream. Codecs know nothing about records, files or buffering: the
// benchmark runner places a fixed-size bufio layer below the codec and the
// record encoder above it.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    NewWriter(w io.Writer) (io.WriteCloser, error)
//	}
//
//	type Decompressor interface {
//	    NewReader(r io.Reader) (io.ReadCloser, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	    Type() format.CompressionType
//	}
//
// # Supported Algorithms
//
//	Type               | Library                        | Framing           | Settings
//	-------------------|--------------------------------|-------------------|-------------------
//	CompressionNone    | -                              | none              | pass-through
//	CompressionGzip    | klauspost/compress/gzip        | RFC 1952          | level 1
//	CompressionLZ4     | pierrec/lz4/v4                 | LZ4 frame         | defaults
//	CompressionSnappy  | golang/snappy                  | Snappy framing    | buffered writer
//	CompressionZstd    | klauspost/compress/zstd        | zstd frame        | level 3
//	CompressionS2      | klauspost/compress/s2          | S2 stream         | defaults
//
// The zstd codec switches to valyala/gozstd (libzstd through cgo) when built
// with the gozstd tag.
//
// All encoders and decoders run on the calling goroutine. No dictionaries are
// used and no checksums are added or disabled beyond the format defaults.
//
// # Stream Lifecycle
//
//	zw, err := codec.NewWriter(bw)
//	if err != nil {
//	    return err
//	}
//	if _, err := zw.Write(payload); err != nil {
//	    return err
//	}
//	if err := zw.Close(); err != nil { // finalizes the frame
//	    return err
//	}
//	return bw.Flush()
//
// Close on an encoding stream is mandatory. It never closes the underlying
// sink, which stays owned by the caller.
//
// # Error Handling
//
// Decoding a stream written by another codec fails, as does decoding a
// truncated stream. Formats that validate their header eagerly (gzip, S2)
// fail in NewReader; the others fail on the first Read.
package compress
