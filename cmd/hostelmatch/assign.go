package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/hostelmatch"
	"github.com/arloliu/hostelmatch/internal/kvutil"
	"github.com/arloliu/hostelmatch/internal/logging"
	"github.com/arloliu/hostelmatch/internal/metrics"
	"github.com/arloliu/hostelmatch/internal/publisher"
	"github.com/arloliu/hostelmatch/report"
	"github.com/arloliu/hostelmatch/source"
	"github.com/arloliu/hostelmatch/types"
)

// Output formats of the assign command.
const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
	formatJSON = "json"
)

var errNoInput = errors.New("one of --input, --pg-dsn or --sample is required")

type assignOptions struct {
	input   string
	pgDSN   string
	pgTable string
	sample  int

	configPath string
	strategy   string
	capacity   int
	roomLimit  int
	seed       int64

	output string
	format string

	logFormat   string
	logLevel    string
	metricsFile string

	natsURL   string
	bucket    string
	keyPrefix string
}

func newAssignCmd() *cobra.Command {
	o := &assignOptions{}

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Allocate a roster into rooms",
		Example: `  hostelmatch assign --input students.xlsx --capacity 3 --output rooms.csv
  hostelmatch assign --input students.csv --strategy cluster --seed 7 --format json
  hostelmatch assign --pg-dsn "postgres://localhost/hostel?sslmode=disable" --pg-table students
  hostelmatch assign --sample 60 --nats-url nats://127.0.0.1:4222 --bucket allocations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd.Context(), cmd.Flags(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.input, "input", "i", "", "roster file (.csv, .tsv, .xlsx)")
	fs.StringVar(&o.pgDSN, "pg-dsn", "", "Postgres connection string to read the roster from")
	fs.StringVar(&o.pgTable, "pg-table", "students", "Postgres table holding the roster")
	fs.IntVar(&o.sample, "sample", 0, "allocate a generated demo roster of this size")

	fs.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&o.strategy, "strategy", "s", string(types.StrategyGreedy), "assignment strategy: greedy or cluster")
	fs.IntVar(&o.capacity, "capacity", 2, "beds per room")
	fs.IntVar(&o.roomLimit, "room-limit", 0, "stop after this many rooms (greedy only, 0 = no limit)")
	fs.Int64Var(&o.seed, "seed", 42, "clustering seed")

	fs.StringVarP(&o.output, "output", "o", "-", "output file, - for stdout")
	fs.StringVarP(&o.format, "format", "f", "", "output format: csv, xlsx or json (default: from output extension, csv)")

	fs.StringVar(&o.logFormat, "log-format", logging.FormatText, "log format: text or json")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format to this path")

	fs.StringVar(&o.natsURL, "nats-url", "", "publish the allocation to this NATS server")
	fs.StringVar(&o.bucket, "bucket", "", "JetStream KV bucket for publishing")
	fs.StringVar(&o.keyPrefix, "key-prefix", "", "key prefix for published records")

	cmd.MarkFlagsMutuallyExclusive("input", "pg-dsn", "sample")

	return cmd
}

// config loads the configuration file, if any, and applies flags the user set.
func (o *assignOptions) config(flags *pflag.FlagSet) (*hostelmatch.Config, error) {
	cfg := hostelmatch.DefaultConfig()
	if o.configPath != "" {
		loaded, err := hostelmatch.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if flags.Changed("strategy") || o.configPath == "" {
		cfg.Strategy = types.StrategyName(strings.ToLower(o.strategy))
	}
	if flags.Changed("capacity") || o.configPath == "" {
		cfg.Capacity = o.capacity
	}
	if flags.Changed("room-limit") {
		cfg.RoomLimit = o.roomLimit
	}
	if flags.Changed("seed") {
		seed := o.seed
		cfg.Cluster.Seed = &seed
	}
	if flags.Changed("nats-url") {
		cfg.Publish.URL = o.natsURL
	}
	if flags.Changed("bucket") {
		cfg.Publish.Bucket = o.bucket
	}
	if flags.Changed("key-prefix") {
		cfg.Publish.KeyPrefix = o.keyPrefix
	}

	hostelmatch.SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (o *assignOptions) source(cfg *hostelmatch.Config) (types.RosterSource, func(), error) {
	noop := func() {}

	switch {
	case o.input != "":
		src, err := source.FromPath(o.input)
		return src, noop, err
	case o.pgDSN != "":
		src, db, err := source.OpenPostgres(o.pgDSN, o.pgTable, source.WithOrderBy(types.FieldStudentID))
		if err != nil {
			return nil, noop, err
		}

		return src, func() { _ = db.Close() }, nil
	case o.sample > 0:
		opts := []source.SampleOption{source.WithCount(o.sample)}
		if cfg.Strategy == types.StrategyCluster {
			opts = append(opts, source.WithNumeric())
		}

		return source.NewSample(opts...), noop, nil
	default:
		return nil, noop, errNoInput
	}
}

func (o *assignOptions) outputFormat() (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(o.output)) {
		case ".xlsx":
			format = formatXLSX
		case ".json":
			format = formatJSON
		default:
			format = formatCSV
		}
	}

	switch format {
	case formatCSV, formatXLSX, formatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", o.format)
	}
}

func (o *assignOptions) run(ctx context.Context, flags *pflag.FlagSet, stdout, stderr io.Writer) error {
	logger, err := logging.New(stderr, o.logFormat, o.logLevel)
	if err != nil {
		return err
	}

	format, err := o.outputFormat()
	if err != nil {
		return err
	}

	cfg, err := o.config(flags)
	if err != nil {
		return err
	}

	src, closeSrc, err := o.source(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "")

	opts := []hostelmatch.Option{
		hostelmatch.WithLogger(logger),
		hostelmatch.WithMetrics(collector),
	}

	if cfg.Publish.Enabled() {
		hooks, closePub, err := publishHooks(ctx, cfg.Publish, logger, collector)
		if err != nil {
			return err
		}
		defer closePub()
		opts = append(opts, hostelmatch.WithHooks(hooks))
	}

	engine, err := hostelmatch.NewEngine(cfg, opts...)
	if err != nil {
		return err
	}

	rep, runErr := engine.Run(ctx, src)

	if o.metricsFile != "" {
		if err := prometheus.WriteToTextfile(o.metricsFile, reg); err != nil {
			logger.Warn("failed to write metrics file", "path", o.metricsFile, "error", err)
		}
	}

	if rep == nil {
		return runErr
	}

	if err := o.write(stdout, format, rep); err != nil {
		return err
	}

	return runErr
}

func (o *assignOptions) write(stdout io.Writer, format string, rep *hostelmatch.Report) (err error) {
	w := stdout
	if o.output != "-" && o.output != "" {
		f, createErr := os.Create(o.output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		w = f
	}

	switch format {
	case formatXLSX:
		return report.WriteXLSX(w, rep.Result)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(struct {
			Summary     report.Summary `json:"summary"`
			Allocation  []report.Row   `json:"allocation"`
			Unallocated []string       `json:"unallocated"`
		}{
			Summary:     rep.Summary,
			Allocation:  report.Flatten(rep.Result),
			Unallocated: types.IDs(rep.Result.Unallocated),
		})
	default:
		return report.WriteCSV(w, rep.Result)
	}
}

// publishHooks connects to NATS and returns hooks that publish every allocation.
func publishHooks(
	ctx context.Context,
	cfg hostelmatch.PublishConfig,
	logger types.Logger,
	collector types.PublisherMetrics,
) (*hostelmatch.Hooks, func(), error) {
	nc, err := nats.Connect(cfg.URL, nats.Name("hostelmatch"), nats.Timeout(cfg.OperationTimeout))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to connect to NATS: %w", types.ErrPublishFailed, err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("%w: %w", types.ErrPublishFailed, err)
	}

	kv, err := kvutil.EnsureBucket(ctx, js, kvutil.BucketConfig(cfg.Bucket), cfg.MaxRetries)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("%w: %w", types.ErrPublishFailed, err)
	}

	pub := publisher.New(kv, cfg.KeyPrefix,
		publisher.WithLogger(logger),
		publisher.WithMetrics(collector),
		publisher.WithOperationTimeout(cfg.OperationTimeout),
	)
	if err := pub.DiscoverVersion(ctx); err != nil {
		logger.Warn("could not read previous allocation version", "error", err)
	}

	hooks := &hostelmatch.Hooks{
		OnAllocated: func(ctx context.Context, result *types.AllocationResult) error {
			_, err := pub.Publish(ctx, result, report.Summarize(result))
			return err
		},
	}

	return hooks, func() { _ = nc.Drain() }, nil
}
