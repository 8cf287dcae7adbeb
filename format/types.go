package format

import (
	"fmt"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
	CompressionGzip   CompressionType = 0x5 // CompressionGzip represents gzip compression.
	CompressionSnappy CompressionType = 0x6 // CompressionSnappy represents Snappy framing format.
)

// DefaultOrder is the order in which the benchmark suite runs codecs when none are selected.
var DefaultOrder = []CompressionType{
	CompressionNone,
	CompressionGzip,
	CompressionLZ4,
	CompressionSnappy,
	CompressionZstd,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// Label returns the short lower-case label printed in the results table.
func (c CompressionType) Label() string {
	switch c {
	case CompressionNone:
		return "raw"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	case CompressionGzip:
		return "gzip"
	case CompressionSnappy:
		return "snap"
	default:
		return "unknown"
	}
}

// Extension returns the file name suffix appended to the CSV artifact, including the dot.
// CompressionNone has no suffix.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zstd"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	case CompressionGzip:
		return ".gz1"
	case CompressionSnappy:
		return ".sz"
	default:
		return ""
	}
}

// ParseCompressionType parses a codec name as accepted on the command line.
//
// Matching is case-insensitive; "raw" is an alias of "none", "gz" of "gzip",
// "snap" and "sz" of "snappy".
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "raw":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "gzip", "gz", "gz1":
		return CompressionGzip, nil
	case "snappy", "snap", "sz":
		return CompressionSnappy, nil
	default:
		return 0, fmt.Errorf("unknown compression type %q", s)
	}
}
