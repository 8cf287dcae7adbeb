//go:build cgo && gozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// gozstdWriter releases the C encoder context once the frame is finalized.
type gozstdWriter struct {
	*gozstd.Writer
}

func (w gozstdWriter) Close() error {
	err := w.Writer.Close()
	w.Writer.Release()

	return err
}

// gozstdReader releases the C decoder context on Close.
type gozstdReader struct {
	*gozstd.Reader
}

func (r gozstdReader) Close() error {
	r.Reader.Release()
	return nil
}

// NewWriter returns a libzstd stream encoder on top of w.
func (c ZstdCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gozstdWriter{Writer: gozstd.NewWriterLevel(w, zstdLevel)}, nil
}

// NewReader returns a libzstd stream decoder on top of r.
//
// libzstd reports a clean end of input even when the last frame is cut short,
// so the raw stream is tracked frame by frame and a truncated tail fails with
// io.ErrUnexpectedEOF.
func (c ZstdCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	frames := newZstdFrameScanner(r)

	return zstdStreamReader{
		ReadCloser: gozstdReader{Reader: gozstd.NewReader(frames)},
		frames:     frames,
	}, nil
}
