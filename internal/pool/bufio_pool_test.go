package pool

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferPool(t *testing.T) {
	p := NewBufferPool(1024)
	assert.Equal(t, 1024, p.Size())

	small := NewBufferPool(1)
	assert.Equal(t, 16, small.Size(), "size below the bufio minimum should be raised")
}

func TestBufferPool_Writer(t *testing.T) {
	p := NewBufferPool(64)

	var sink bytes.Buffer
	bw := p.GetWriter(&sink)
	require.Equal(t, 64, bw.Size())

	_, err := bw.WriteString("hello")
	require.NoError(t, err)
	assert.Equal(t, 0, sink.Len(), "data should stay buffered until flush")

	require.NoError(t, bw.Flush())
	assert.Equal(t, "hello", sink.String())

	p.PutWriter(bw)

	var other bytes.Buffer
	bw2 := p.GetWriter(&other)
	assert.Equal(t, 0, bw2.Buffered(), "pooled writer should come back empty")
	_, err = bw2.WriteString("world")
	require.NoError(t, err)
	require.NoError(t, bw2.Flush())
	assert.Equal(t, "world", other.String())
	assert.Equal(t, "hello", sink.String(), "previous sink must not receive new data")
}

func TestBufferPool_Reader(t *testing.T) {
	p := NewBufferPool(32)

	br := p.GetReader(strings.NewReader("first"))
	require.Equal(t, 32, br.Size())
	data, err := io.ReadAll(br)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
	p.PutReader(br)

	br2 := p.GetReader(strings.NewReader("second"))
	data, err = io.ReadAll(br2)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestBufferPool_RejectsForeignSizes(t *testing.T) {
	p := NewBufferPool(32)

	assert.NotPanics(t, func() {
		p.PutWriter(nil)
		p.PutReader(nil)
		p.PutWriter(bufio.NewWriterSize(io.Discard, 128))
		p.PutReader(bufio.NewReaderSize(strings.NewReader(""), 128))
	})

	for range 10 {
		assert.Equal(t, 32, p.GetWriter(io.Discard).Size())
		assert.Equal(t, 32, p.GetReader(strings.NewReader("")).Size())
	}
}

func TestForSize(t *testing.T) {
	a := ForSize(DefaultBufferSize)
	b := ForSize(DefaultBufferSize)
	assert.Same(t, a, b)
	assert.Equal(t, DefaultBufferSize, a.Size())

	c := ForSize(4096)
	assert.NotSame(t, a, c)
}
