package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arloliu/codecbench/bench"
	"github.com/arloliu/codecbench/internal/config"
	"github.com/arloliu/codecbench/internal/logger"
	"github.com/arloliu/codecbench/record"
	"github.com/arloliu/codecbench/report"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"dir":         config.KeyDir,
	"codecs":      config.KeyCodecs,
	"buffer-size": config.KeyBufferSize,
	"verify":      config.KeyVerify,
	"seed":        config.KeySeed,
	"log-level":   config.KeyLogLevel,
	"log-format":  config.KeyLogFormat,
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile string

	cmd := &cobra.Command{
		Use:   "codecbench [rows]",
		Short: "Benchmark CSV write and read throughput through stream codecs",
		Long: `codecbench generates a time series of (timestamp, value) records, writes it
as CSV through each selected codec into a file, reads it back and prints a
table of throughput, durations and file size per codec.

The optional rows argument sets the number of generated records (default 1000000).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				rows, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid row count %q: %w", args[0], err)
				}
				v.Set(config.KeyRows, rows)
			}

			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", cfgFile, err)
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("dir", ".", "directory receiving the data files")
	flags.StringSlice("codecs", config.DefaultCodecs(), "codecs to run, in order (none, gzip, lz4, snappy, zstd, s2)")
	flags.Int("buffer-size", v.GetInt(config.KeyBufferSize), "size in bytes of the buffered I/O layer")
	flags.Bool("verify", false, "verify read-back digest and record count")
	flags.Uint64("seed", 0, "value generator seed (0 picks a random seed)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	log, err := logger.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}

	types, err := cfg.CompressionTypes()
	if err != nil {
		return err
	}

	suite, err := bench.SuiteFor(cfg.Dir, types...)
	if err != nil {
		return err
	}

	var genOpts []record.GeneratorOption
	if cfg.Seed != 0 {
		genOpts = append(genOpts, record.WithSeed(cfg.Seed))
	}

	records, err := record.Generate(cfg.Rows, genOpts...)
	if err != nil {
		return err
	}

	log.Info().Int("rows", len(records)).Str("dir", cfg.Dir).Msg("records generated")

	runner, err := bench.NewRunner(
		bench.WithBufferSize(cfg.BufferSize),
		bench.WithVerify(cfg.Verify),
		bench.WithLogger(log),
	)
	if err != nil {
		return err
	}

	table := report.NewTable(cmd.OutOrStdout())
	if err := table.WriteHeader(); err != nil {
		return err
	}

	return runner.RunSuite(suite, records, table.WriteRow)
}
