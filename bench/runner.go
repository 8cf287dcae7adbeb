package bench

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/arloliu/codecbench/internal/hash"
	"github.com/arloliu/codecbench/internal/options"
	"github.com/arloliu/codecbench/internal/pool"
	"github.com/arloliu/codecbench/record"
)

var (
	// ErrNilCodec is returned when a Benchmark has no codec.
	ErrNilCodec = errors.New("benchmark has no codec")

	// ErrVerificationFailed is returned when the read phase did not reproduce the written stream.
	ErrVerificationFailed = errors.New("read-back verification failed")
)

// RunnerOption configures a Runner.
type RunnerOption = options.Option[*runnerConfig]

type runnerConfig struct {
	bufferSize int
	verify     bool
	logger     zerolog.Logger
}

func (c *runnerConfig) Validate() error {
	if c.bufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", c.bufferSize)
	}

	return nil
}

// WithBufferSize sets the size of the bufio layer between the file and the codec.
func WithBufferSize(size int) RunnerOption {
	return options.NoError(func(c *runnerConfig) {
		c.bufferSize = size
	})
}

// WithVerify enables digest and record count verification of the read phase.
//
// Hashing adds work to both timed phases, so measurements taken with
// verification on are not comparable to plain runs.
func WithVerify(verify bool) RunnerOption {
	return options.NoError(func(c *runnerConfig) {
		c.verify = verify
	})
}

// WithLogger sets the logger receiving per-phase events.
func WithLogger(logger zerolog.Logger) RunnerOption {
	return options.NoError(func(c *runnerConfig) {
		c.logger = logger
	})
}

// Runner executes benchmarks synchronously.
type Runner struct {
	buffers *pool.BufferPool
	verify  bool
	logger  zerolog.Logger
}

// NewRunner creates a Runner.
//
// Defaults: 4MiB buffers, no verification, no logging.
func NewRunner(opts ...RunnerOption) (*Runner, error) {
	cfg := &runnerConfig{
		bufferSize: pool.DefaultBufferSize,
		logger:     zerolog.Nop(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	return &Runner{
		buffers: pool.ForSize(cfg.bufferSize),
		verify:  cfg.verify,
		logger:  cfg.logger,
	}, nil
}

// Run executes the write and read phases of b over records.
//
// The returned error is wrapped with the benchmark label and the failing
// phase. On error the partially filled Result is returned as well.
func (r *Runner) Run(b Benchmark, records []record.Record) (Result, error) {
	res := Result{
		Algorithm: b.Label,
		Path:      b.Path,
		Records:   len(records),
	}
	if b.Codec == nil {
		return res, fmt.Errorf("%s: %w", b.Label, ErrNilCodec)
	}

	log := r.logger.With().Str("algo", b.Label).Str("path", b.Path).Logger()

	writeDigest, elapsed, err := r.write(b, records)
	if err != nil {
		return res, fmt.Errorf("%s: write: %w", b.Label, err)
	}
	res.WriteDuration = elapsed

	info, err := os.Stat(b.Path)
	if err != nil {
		return res, fmt.Errorf("%s: stat: %w", b.Label, err)
	}
	res.FileSize = info.Size()

	log.Debug().
		Int("records", res.Records).
		Int64("size", res.FileSize).
		Dur("dur", res.WriteDuration).
		Msg("write phase done")

	n, readDigest, elapsed, err := r.read(b)
	if err != nil {
		return res, fmt.Errorf("%s: read: %w", b.Label, err)
	}
	res.ReadDuration = elapsed
	res.RecordsRead = n

	log.Debug().
		Int("records", res.RecordsRead).
		Dur("dur", res.ReadDuration).
		Msg("read phase done")

	if r.verify {
		if readDigest != writeDigest {
			return res, fmt.Errorf("%s: %w: digest %016x, expected %016x",
				b.Label, ErrVerificationFailed, readDigest, writeDigest)
		}
		if res.RecordsRead != res.Records {
			return res, fmt.Errorf("%s: %w: read %d records, wrote %d",
				b.Label, ErrVerificationFailed, res.RecordsRead, res.Records)
		}
		res.Digest = writeDigest
	}

	return res, nil
}

// RunSuite runs every benchmark of suite in order and hands each result to fn.
//
// The first error, from a benchmark or from fn, stops the suite. Results of
// the entries before it have already been passed to fn and their files stay
// untouched.
func (r *Runner) RunSuite(suite Suite, records []record.Record, fn func(Result) error) error {
	for _, b := range suite {
		res, err := r.Run(b, records)
		if err != nil {
			r.logger.Error().Err(err).Str("algo", b.Label).Msg("benchmark failed")
			return err
		}

		r.logger.Info().
			Str("algo", res.Algorithm).
			Int64("size", res.FileSize).
			Dur("total", res.TotalDuration()).
			Msg("benchmark complete")

		if fn != nil {
			if err := fn(res); err != nil {
				return err
			}
		}
	}

	return nil
}

// createFile and openFile open the artifact outside the timed region of a phase.
var (
	createFile = os.Create
	openFile   = os.Open
)

// write runs the write phase and returns the digest of the CSV stream when
// verification is on. The clock starts once the file is created and stops
// after it was closed.
func (r *Runner) write(b Benchmark, records []record.Record) (digest uint64, elapsed time.Duration, err error) {
	f, err := createFile(b.Path)
	if err != nil {
		return 0, 0, err
	}

	start := time.Now()
	digest, err = r.encode(f, b, records)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close file: %w", cerr)
	}
	elapsed = time.Since(start)

	if err != nil {
		return 0, elapsed, err
	}

	return digest, elapsed, nil
}

func (r *Runner) encode(f io.Writer, b Benchmark, records []record.Record) (uint64, error) {
	bw := r.buffers.GetWriter(f)
	defer r.buffers.PutWriter(bw)

	zw, err := b.Codec.NewWriter(bw)
	if err != nil {
		return 0, fmt.Errorf("open %s stream: %w", b.Codec.Type(), err)
	}

	var sink io.Writer = zw
	var hw *hash.Writer
	if r.verify {
		hw = hash.NewWriter(zw)
		sink = hw
	}

	rw := record.NewWriter(sink)
	if err := rw.WriteAll(records); err != nil {
		_ = zw.Close()
		return 0, err
	}
	if err := rw.Flush(); err != nil {
		_ = zw.Close()
		return 0, err
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finalize %s stream: %w", b.Codec.Type(), err)
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flush buffer: %w", err)
	}

	if hw != nil {
		return hw.Sum64(), nil
	}

	return 0, nil
}

// read runs the read phase and returns the number of decoded records and,
// when verification is on, the digest of the decoded CSV stream. The clock
// starts once the file is open.
func (r *Runner) read(b Benchmark) (n int, digest uint64, elapsed time.Duration, err error) {
	f, err := openFile(b.Path)
	if err != nil {
		return 0, 0, 0, err
	}
	defer f.Close()

	start := time.Now()
	n, digest, err = r.decode(f, b)
	elapsed = time.Since(start)

	return n, digest, elapsed, err
}

func (r *Runner) decode(f io.Reader, b Benchmark) (int, uint64, error) {
	br := r.buffers.GetReader(f)
	defer r.buffers.PutReader(br)

	zr, err := b.Codec.NewReader(br)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s stream: %w", b.Codec.Type(), err)
	}
	defer zr.Close()

	var src io.Reader = zr
	var hr *hash.Reader
	if r.verify {
		hr = hash.NewReader(zr)
		src = hr
	}

	n, err := record.NewReader(src).Count()
	if err != nil {
		return n, 0, err
	}

	if hr != nil {
		return n, hr.Sum64(), nil
	}

	return n, 0, nil
}
