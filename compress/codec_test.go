package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/codecbench/format"
)

// allTypes lists every built-in compression type.
var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionGzip,
	format.CompressionLZ4,
	format.CompressionSnappy,
	format.CompressionZstd,
	format.CompressionS2,
}

// closeTracker records whether Close reached the underlying sink.
type closeTracker struct {
	bytes.Buffer
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

// csvLikeData builds a payload resembling the benchmark's CSV output.
func csvLikeData(rows int) []byte {
	var buf bytes.Buffer
	buf.WriteString("time,value\n")
	for i := range rows {
		fmt.Fprintf(&buf, "2005-01-01T00:%02d:%02d.%d00Z,%d\n", (i/600)%60, (i/10)%60, i%10, (i*7919)%10000)
	}

	return buf.Bytes()
}

func encode(t testing.TB, codec Codec, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw, err := codec.NewWriter(&buf)
	require.NoError(t, err)

	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func decode(codec Codec, data []byte) ([]byte, error) {
	rc, err := codec.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func TestCreateCodec(t *testing.T) {
	for _, cType := range allTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(cType)
			require.NoError(t, err)
			require.Equal(t, cType, codec.Type())

			builtin, err := GetCodec(cType)
			require.NoError(t, err)
			require.Equal(t, cType, builtin.Type())
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0xFF))
		require.ErrorIs(t, err, ErrUnsupportedCompression)

		_, err = GetCodec(format.CompressionType(0xFF))
		require.ErrorIs(t, err, ErrUnsupportedCompression)
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"header_only": []byte("time,value\n"),
		"single_row":  csvLikeData(1),
		"1k_rows":     csvLikeData(1000),
		"50k_rows":    csvLikeData(50000),
	}

	for _, cType := range allTypes {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		for name, data := range payloads {
			t.Run(cType.String()+"/"+name, func(t *testing.T) {
				encoded := encode(t, codec, data)
				if cType == format.CompressionNone {
					require.Equal(t, data, encoded)
				}

				decoded, err := decode(codec, encoded)
				require.NoError(t, err)
				require.Equal(t, data, decoded)
			})
		}
	}
}

func TestCodec_Deterministic(t *testing.T) {
	data := csvLikeData(5000)

	for _, cType := range allTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			first := encode(t, codec, data)
			second := encode(t, codec, data)
			require.Equal(t, first, second)
		})
	}
}

func TestCodec_CompressesText(t *testing.T) {
	data := csvLikeData(20000)

	for _, cType := range allTypes {
		if cType == format.CompressionNone {
			continue
		}
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)
			require.Less(t, len(encode(t, codec, data)), len(data))
		})
	}
}

func TestCodec_CloseKeepsSinkOpen(t *testing.T) {
	for _, cType := range allTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			sink := &closeTracker{}
			zw, err := codec.NewWriter(sink)
			require.NoError(t, err)
			_, err = zw.Write(csvLikeData(10))
			require.NoError(t, err)
			require.NoError(t, zw.Close())

			require.False(t, sink.closed)
			require.Positive(t, sink.Len())
		})
	}
}

func TestCodec_CrossDecodeFails(t *testing.T) {
	data := csvLikeData(1000)

	for _, encType := range allTypes {
		encoder, err := GetCodec(encType)
		require.NoError(t, err)
		encoded := encode(t, encoder, data)

		for _, decType := range allTypes {
			// The identity decoder accepts any bytes; foreign input is rejected
			// one layer up by the record reader.
			if decType == encType || decType == format.CompressionNone {
				continue
			}

			t.Run(fmt.Sprintf("%s_by_%s", encType, decType), func(t *testing.T) {
				decoder, err := GetCodec(decType)
				require.NoError(t, err)

				decoded, err := decode(decoder, encoded)
				require.Error(t, err)
				require.NotEqual(t, data, decoded)
			})
		}
	}
}

func TestCodec_TruncatedStreamFails(t *testing.T) {
	data := csvLikeData(1000)

	for _, cType := range allTypes {
		if cType == format.CompressionNone {
			continue
		}
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			encoded := encode(t, codec, data)
			_, err = decode(codec, encoded[:len(encoded)/2])
			require.Error(t, err)
		})
	}
}

func TestS2_RejectsSnappyStream(t *testing.T) {
	encoded := encode(t, NewSnappyCompressor(), csvLikeData(10))

	_, err := NewS2Compressor().NewReader(bytes.NewReader(encoded))
	require.ErrorIs(t, err, ErrStreamMismatch)
}

func TestS2_EmptyStream(t *testing.T) {
	rc, err := NewS2Compressor().NewReader(bytes.NewReader(nil))
	require.NoError(t, err)

	decoded, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

// failingWriter fails every write after limit bytes.
type failingWriter struct {
	limit int
	n     int
}

var errSinkFull = errors.New("sink full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errSinkFull
	}
	w.n += len(p)

	return len(p), nil
}

func TestCodec_SinkErrorPropagates(t *testing.T) {
	data := csvLikeData(20000)

	for _, cType := range allTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			zw, err := codec.NewWriter(&failingWriter{limit: 16})
			require.NoError(t, err)

			_, werr := zw.Write(data)
			cerr := zw.Close()
			require.True(t, werr != nil || cerr != nil, "expected write or close to fail")
		})
	}
}
