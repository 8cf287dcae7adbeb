package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	zstdFrameMagic         = 0xFD2FB528
	zstdSkippableMagicMask = 0xFFFFFFF0
	zstdSkippableMagic     = 0x184D2A50
)

type frameState uint8

const (
	stateMagic frameState = iota
	stateDescriptor
	stateSkipHeader
	stateBlockHeader
	stateSkipBlock
	stateSkipChecksum
	stateSkippableSize
	stateSkipSkippable
)

// zstdFrameScanner follows the frame layout of the zstd bytes read through it
// without decoding them. It records whether the source ended exactly on a
// frame boundary.
type zstdFrameScanner struct {
	r        io.Reader
	state    frameState
	hdr      [4]byte // partial magic, block header or skippable size
	hdrLen   int
	skip     uint64 // bytes left to pass over in a skip state
	checksum bool   // current frame ends with a 4 byte content checksum
	last     bool   // current block is the last one of its frame
	err      error
}

func newZstdFrameScanner(r io.Reader) *zstdFrameScanner {
	return &zstdFrameScanner{r: r}
}

// Read reads from the source and advances the frame state over the bytes returned.
func (s *zstdFrameScanner) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if s.err == nil {
		s.err = s.scan(p[:n])
	}

	return n, err
}

// complete reports whether every frame seen so far was read to its end.
func (s *zstdFrameScanner) complete() bool {
	return s.err == nil && s.state == stateMagic && s.hdrLen == 0
}

func (s *zstdFrameScanner) scan(b []byte) error {
	for len(b) > 0 {
		switch s.state {
		case stateMagic, stateBlockHeader, stateSkippableSize:
			want := 4
			if s.state == stateBlockHeader {
				want = 3
			}
			c := copy(s.hdr[s.hdrLen:want], b)
			s.hdrLen += c
			b = b[c:]
			if s.hdrLen < want {
				return nil
			}
			s.hdrLen = 0
			if err := s.headerDone(); err != nil {
				return err
			}

		case stateDescriptor:
			s.descriptor(b[0])
			b = b[1:]

		case stateSkipHeader, stateSkipBlock, stateSkipChecksum, stateSkipSkippable:
			c := uint64(len(b))
			if c > s.skip {
				c = s.skip
			}
			s.skip -= c
			b = b[c:]
			if s.skip == 0 {
				s.skipDone()
			}
		}
	}

	return nil
}

func (s *zstdFrameScanner) headerDone() error {
	switch s.state {
	case stateMagic:
		magic := binary.LittleEndian.Uint32(s.hdr[:])
		switch {
		case magic == zstdFrameMagic:
			s.state = stateDescriptor
		case magic&zstdSkippableMagicMask == zstdSkippableMagic:
			s.state = stateSkippableSize
		default:
			return fmt.Errorf("zstd: unknown frame magic %#08x", magic)
		}

	case stateSkippableSize:
		s.enterSkip(stateSkipSkippable, uint64(binary.LittleEndian.Uint32(s.hdr[:])))

	case stateBlockHeader:
		header := uint32(s.hdr[0]) | uint32(s.hdr[1])<<8 | uint32(s.hdr[2])<<16
		s.last = header&1 == 1
		size := uint64(header >> 3)

		switch (header >> 1) & 3 {
		case 0, 2: // raw, compressed
		case 1: // rle
			size = 1
		default:
			return errors.New("zstd: reserved block type")
		}

		s.enterSkip(stateSkipBlock, size)
	}

	return nil
}

func (s *zstdFrameScanner) descriptor(d byte) {
	fcsFlag := d >> 6
	singleSegment := d&0x20 != 0
	s.checksum = d&0x04 != 0

	var n uint64
	if !singleSegment {
		n++ // window descriptor
	}
	n += [4]uint64{0, 1, 2, 4}[d&3] // dictionary id

	switch fcsFlag {
	case 0:
		if singleSegment {
			n++
		}
	case 1:
		n += 2
	case 2:
		n += 4
	case 3:
		n += 8
	}

	s.enterSkip(stateSkipHeader, n)
}

// enterSkip switches to a skip state, falling through immediately for empty spans.
func (s *zstdFrameScanner) enterSkip(state frameState, n uint64) {
	s.state = state
	s.skip = n
	if n == 0 {
		s.skipDone()
	}
}

func (s *zstdFrameScanner) skipDone() {
	switch s.state {
	case stateSkipHeader:
		s.state = stateBlockHeader
	case stateSkipBlock:
		if !s.last {
			s.state = stateBlockHeader
			return
		}
		if s.checksum {
			s.enterSkip(stateSkipChecksum, 4)
			return
		}
		s.state = stateMagic
	case stateSkipChecksum, stateSkipSkippable:
		s.state = stateMagic
	}
}

// zstdStreamReader turns a clean end of input inside a frame into io.ErrUnexpectedEOF.
// Decoders that stop at the end of their input without noticing a missing frame
// tail would otherwise report a truncated file as complete.
type zstdStreamReader struct {
	io.ReadCloser
	frames *zstdFrameScanner
}

func (r zstdStreamReader) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if errors.Is(err, io.EOF) {
		if r.frames.err != nil {
			return n, r.frames.err
		}
		if !r.frames.complete() {
			return n, fmt.Errorf("zstd: stream ends inside a frame: %w", io.ErrUnexpectedEOF)
		}
	}

	return n, err
}
