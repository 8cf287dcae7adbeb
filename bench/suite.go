package bench

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/arloliu/codecbench/compress"
	"github.com/arloliu/codecbench/format"
)

// BaseName is the file name of the uncompressed artifact. Compressed
// artifacts append the codec's extension.
const BaseName = "data.csv"

// Benchmark pairs a codec with the label printed for it and the file it writes.
type Benchmark struct {
	Label string
	Path  string
	Codec compress.Codec
}

// NewBenchmark creates a Benchmark for codec writing into dir.
func NewBenchmark(dir string, codec compress.Codec) Benchmark {
	cType := codec.Type()

	return Benchmark{
		Label: cType.Label(),
		Path:  filepath.Join(dir, BaseName+cType.Extension()),
		Codec: codec,
	}
}

// Suite is an ordered list of benchmarks. Entries run one after another in slice order.
type Suite []Benchmark

// SuiteFor builds a suite running the given compression types in order, writing into dir.
func SuiteFor(dir string, types ...format.CompressionType) (Suite, error) {
	if len(types) == 0 {
		return nil, errors.New("no compression types selected")
	}

	suite := make(Suite, 0, len(types))
	seen := make(map[format.CompressionType]struct{}, len(types))
	for _, cType := range types {
		if _, dup := seen[cType]; dup {
			return nil, fmt.Errorf("compression type %s selected twice", cType)
		}
		seen[cType] = struct{}{}

		codec, err := compress.CreateCodec(cType)
		if err != nil {
			return nil, err
		}
		suite = append(suite, NewBenchmark(dir, codec))
	}

	return suite, nil
}

// DefaultSuite returns raw, gzip, lz4, snappy and zstd, in that order, writing into dir.
func DefaultSuite(dir string) (Suite, error) {
	return SuiteFor(dir, format.DefaultOrder...)
}
