//go:build !(cgo && gozstd)

package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewWriter returns a zstd stream encoder on top of w.
func (c ZstdCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	return encoder, nil
}

// NewReader returns a zstd stream decoder on top of r.
//
// Decoding runs synchronously on the caller's goroutine; a foreign stream
// fails with a magic number mismatch no later than the first Read.
func (c ZstdCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	frames := newZstdFrameScanner(r)
	decoder, err := zstd.NewReader(frames,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return zstdStreamReader{ReadCloser: decoder.IOReadCloser(), frames: frames}, nil
}
