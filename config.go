package hostelmatch

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/hostelmatch/internal/kmeans"
	"github.com/arloliu/hostelmatch/internal/kvutil"
	"github.com/arloliu/hostelmatch/internal/publisher"
	"github.com/arloliu/hostelmatch/strategy"
	"github.com/arloliu/hostelmatch/types"
)

// ClusterConfig tunes the cluster strategy.
type ClusterConfig struct {
	// Seed fixes k-means++ initialisation. Nil means strategy.DefaultClusterSeed.
	// Identical roster, capacity and seed always yield the identical partition.
	Seed *int64 `yaml:"seed"`

	// Restarts is the number of k-means initialisations; the lowest inertia wins.
	Restarts int `yaml:"restarts"`

	// MaxIterations bounds the Lloyd iterations per restart.
	MaxIterations int `yaml:"maxIterations"`

	// Tolerance stops iterating once no centroid moves further than this.
	Tolerance float64 `yaml:"tolerance"`
}

// PublishConfig configures publishing results to a NATS JetStream KV bucket.
// Publishing is disabled while URL is empty.
type PublishConfig struct {
	// URL is the NATS server URL, e.g. "nats://127.0.0.1:4222".
	URL string `yaml:"url"`

	// Bucket is the KV bucket name.
	Bucket string `yaml:"bucket"`

	// KeyPrefix prefixes every published key.
	KeyPrefix string `yaml:"keyPrefix"`

	// OperationTimeout bounds one publish (all room puts plus the meta put).
	OperationTimeout time.Duration `yaml:"operationTimeout"`

	// MaxRetries bounds bucket creation attempts on connectivity errors.
	MaxRetries int `yaml:"maxRetries"`
}

// Enabled reports whether publishing is configured.
func (p PublishConfig) Enabled() bool {
	return p.URL != ""
}

// Config is the configuration for the Engine.
//
// All duration fields accept standard Go duration strings like "5s" or "1m".
type Config struct {
	// Strategy selects the assigner: "greedy" or "cluster".
	Strategy types.StrategyName `yaml:"strategy"`

	// Capacity is the number of beds per room (>= 1).
	Capacity int `yaml:"capacity"`

	// RoomLimit stops the greedy strategy after this many rooms. Zero means no limit.
	// The cluster strategy ignores it.
	RoomLimit int `yaml:"roomLimit"`

	// Cluster tunes the cluster strategy.
	Cluster ClusterConfig `yaml:"cluster"`

	// Publish configures the optional NATS KV export.
	Publish PublishConfig `yaml:"publish"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	seed := strategy.DefaultClusterSeed

	return Config{
		Strategy:  types.StrategyGreedy,
		Capacity:  2,
		RoomLimit: 0,
		Cluster: ClusterConfig{
			Seed:          &seed,
			Restarts:      kmeans.DefaultRestarts,
			MaxIterations: kmeans.DefaultMaxIterations,
			Tolerance:     kmeans.DefaultTolerance,
		},
		Publish: PublishConfig{
			Bucket:           "hostelmatch-allocations",
			KeyPrefix:        publisher.DefaultPrefix,
			OperationTimeout: 10 * time.Second,
			MaxRetries:       kvutil.DefaultMaxRetries,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = defaults.Capacity
	}
	if cfg.Cluster.Seed == nil {
		cfg.Cluster.Seed = defaults.Cluster.Seed
	}
	if cfg.Cluster.Restarts == 0 {
		cfg.Cluster.Restarts = defaults.Cluster.Restarts
	}
	if cfg.Cluster.MaxIterations == 0 {
		cfg.Cluster.MaxIterations = defaults.Cluster.MaxIterations
	}
	if cfg.Cluster.Tolerance == 0 {
		cfg.Cluster.Tolerance = defaults.Cluster.Tolerance
	}
	if cfg.Publish.Bucket == "" {
		cfg.Publish.Bucket = defaults.Publish.Bucket
	}
	if cfg.Publish.KeyPrefix == "" {
		cfg.Publish.KeyPrefix = defaults.Publish.KeyPrefix
	}
	if cfg.Publish.OperationTimeout == 0 {
		cfg.Publish.OperationTimeout = defaults.Publish.OperationTimeout
	}
	if cfg.Publish.MaxRetries == 0 {
		cfg.Publish.MaxRetries = defaults.Publish.MaxRetries
	}
	// RoomLimit 0 is valid (no limit), so no default is applied.
}

// Validate checks configuration constraints.
//
// All violations are reported together.
//
// Returns:
//   - error: ErrInvalidConfig wrapping every violation, nil if valid
func (cfg *Config) Validate() error {
	var errs error

	if cfg.Capacity < 1 {
		errs = multierr.Append(errs, &types.CapacityError{Field: "capacity", Value: cfg.Capacity})
	}
	if cfg.RoomLimit < 0 {
		errs = multierr.Append(errs, &types.CapacityError{Field: "room_limit", Value: cfg.RoomLimit})
	}
	if cfg.Strategy != "" {
		if _, err := types.ParseStrategyName(string(cfg.Strategy)); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if cfg.Cluster.Restarts < 1 {
		errs = multierr.Append(errs, fmt.Errorf("cluster.restarts must be >= 1, got %d", cfg.Cluster.Restarts))
	}
	if cfg.Cluster.MaxIterations < 1 {
		errs = multierr.Append(errs, fmt.Errorf("cluster.maxIterations must be >= 1, got %d", cfg.Cluster.MaxIterations))
	}
	if cfg.Cluster.Tolerance < 0 {
		errs = multierr.Append(errs, fmt.Errorf("cluster.tolerance must be >= 0, got %v", cfg.Cluster.Tolerance))
	}
	if cfg.Publish.Enabled() {
		if cfg.Publish.Bucket == "" {
			errs = multierr.Append(errs, fmt.Errorf("publish.bucket is required when publish.url is set"))
		}
		if cfg.Publish.OperationTimeout < 0 {
			errs = multierr.Append(errs, fmt.Errorf("publish.operationTimeout must be >= 0, got %v", cfg.Publish.OperationTimeout))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}

	return nil
}

// Policy returns the allocation policy described by the configuration.
func (cfg *Config) Policy() Policy {
	return Policy{
		Capacity:  cfg.Capacity,
		RoomLimit: cfg.RoomLimit,
		Strategy:  cfg.Strategy,
	}
}

// ClusterOptions converts the cluster section into strategy options.
func (cfg *Config) ClusterOptions() []strategy.ClusterOption {
	opts := []strategy.ClusterOption{
		strategy.WithRestarts(cfg.Cluster.Restarts),
		strategy.WithMaxIterations(cfg.Cluster.MaxIterations),
		strategy.WithTolerance(cfg.Cluster.Tolerance),
	}
	if cfg.Cluster.Seed != nil {
		opts = append(opts, strategy.WithSeed(*cfg.Cluster.Seed))
	}

	return opts
}

// LoadConfig loads configuration from a YAML file.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if the file cannot be read, parsed or validated
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration, applies defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
