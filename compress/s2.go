package compress

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/codecbench/format"
)

// s2StreamIdentifier is the first chunk of every S2 stream.
// Snappy streams start with the same chunk header followed by "sNaPpY".
const s2StreamIdentifier = "\xff\x06\x00\x00S2sTwO"

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// NewWriter returns a single-goroutine S2 stream writer on top of w.
func (c S2Compressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w, s2.WriterConcurrency(1)), nil
}

// NewReader returns an S2 stream reader on top of r.
//
// The S2 decoder also accepts Snappy framed streams. NewReader checks the
// stream identifier first and returns ErrStreamMismatch for anything but S2.
func (c S2Compressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64)

	head, err := br.Peek(len(s2StreamIdentifier))
	if err != nil {
		if errors.Is(err, io.EOF) && len(head) == 0 {
			// empty stream
			return io.NopCloser(br), nil
		}
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("s2 stream identifier: %w", err)
		}
	}

	if !bytes.Equal(head, []byte(s2StreamIdentifier)) {
		return nil, fmt.Errorf("s2: %w", ErrStreamMismatch)
	}

	return io.NopCloser(s2.NewReader(br)), nil
}
