package record

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/arloliu/codecbench/internal/options"
)

// GeneratorOption configures Generate.
type GeneratorOption = options.Option[*generatorConfig]

type generatorConfig struct {
	rng        *rand.Rand
	step       time.Duration
	valueRange int64
}

func (c *generatorConfig) Validate() error {
	if c.step <= 0 {
		return fmt.Errorf("step must be positive, got %s", c.step)
	}
	if c.valueRange <= 0 {
		return fmt.Errorf("value range must be positive, got %d", c.valueRange)
	}

	return nil
}

// WithSeed makes generation deterministic by seeding a PCG source.
func WithSeed(seed uint64) GeneratorOption {
	return options.NoError(func(c *generatorConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	})
}

// WithRand sets the random source used for values.
func WithRand(rng *rand.Rand) GeneratorOption {
	return options.New(func(c *generatorConfig) error {
		if rng == nil {
			return errors.New("nil random source")
		}
		c.rng = rng

		return nil
	})
}

// WithStep sets the distance between consecutive timestamps.
func WithStep(step time.Duration) GeneratorOption {
	return options.NoError(func(c *generatorConfig) {
		c.step = step
	})
}

// WithValueRange sets the exclusive upper bound of generated values.
func WithValueRange(n int64) GeneratorOption {
	return options.NoError(func(c *generatorConfig) {
		c.valueRange = n
	})
}

// Generate produces n records starting at the epoch.
//
// Record i has timestamp epoch + i*step and a value drawn uniformly from
// [0, valueRange). With no options, step is 100ms, the range is [0, 10000)
// and the values come from a randomly seeded source.
//
// Parameters:
//   - n: Number of records, must not be negative
//   - opts: Generator options
//
// Returns:
//   - []Record: Exactly n records in timestamp order
//   - error: ErrNegativeCount, ErrInvalidEpoch or an option error
func Generate(n int, opts ...GeneratorOption) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	cfg := &generatorConfig{
		step:       DefaultStep,
		valueRange: DefaultValueRange,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec
	}

	ts, err := Epoch()
	if err != nil {
		return nil, err
	}

	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			Time:  ts,
			Value: cfg.rng.Int64N(cfg.valueRange),
		}
		ts = ts.Add(cfg.step)
	}

	return records, nil
}
