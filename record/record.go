// Package record defines the timestamp/value records written by the benchmark,
// the generator that synthesizes them and their CSV text encoding.
package record

import (
	"errors"
	"fmt"
	"time"
)

// EpochLiteral is the timestamp of the first generated record.
const EpochLiteral = "2005-01-01T00:00:00Z"

const (
	// DefaultStep is the distance between consecutive generated timestamps.
	DefaultStep = 100 * time.Millisecond

	// DefaultValueRange is the exclusive upper bound of generated values.
	DefaultValueRange = 10000
)

var (
	// ErrInvalidEpoch is returned when EpochLiteral cannot be parsed.
	ErrInvalidEpoch = errors.New("invalid epoch literal")

	// ErrNegativeCount is returned when a negative number of records is requested.
	ErrNegativeCount = errors.New("record count must not be negative")

	// ErrInvalidHeader is returned when a CSV stream does not start with the expected header.
	ErrInvalidHeader = errors.New("invalid csv header")

	// ErrInvalidRecord is returned for a CSV line that cannot be decoded into a Record.
	ErrInvalidRecord = errors.New("invalid csv record")
)

// Record is a single timestamped sample.
type Record struct {
	Time  time.Time
	Value int64
}

// Epoch parses EpochLiteral.
func Epoch() (time.Time, error) {
	epoch, err := time.Parse(time.RFC3339, EpochLiteral)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidEpoch, err)
	}

	return epoch, nil
}
