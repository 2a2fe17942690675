package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/hostelmatch/internal/logger"
	"github.com/arloliu/hostelmatch/internal/metrics"
	"github.com/arloliu/hostelmatch/report"
	"github.com/arloliu/hostelmatch/types"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "allocation"

// Envelope identifies the run a record belongs to.
type Envelope struct {
	RunID       string    `json:"run_id"`
	Version     int64     `json:"version"`
	Fingerprint string    `json:"fingerprint"`
	Strategy    string    `json:"strategy"`
	PublishedAt time.Time `json:"published_at"`
}

// RoomRecord is the value stored under a room key.
type RoomRecord struct {
	Envelope

	Room types.Room `json:"room"`
}

// MetaRecord is the value stored under the meta key.
type MetaRecord struct {
	Envelope

	Rooms       []string       `json:"rooms"`
	Unallocated []string       `json:"unallocated"`
	Summary     report.Summary `json:"summary"`
}

// Publisher publishes allocation results to a KV bucket.
//
// Publish calls are serialized; a Publisher is safe for concurrent use.
type Publisher struct {
	kv        jetstream.KeyValue
	prefix    string
	roomsPref string // cached "prefix.room."
	metaKey   string

	mu      sync.Mutex
	version int64

	// published maps every room key written by this publisher to the version
	// that wrote it.
	published *xsync.Map[string, int64]

	timeout time.Duration
	logger  types.Logger
	metrics types.PublisherMetrics
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the publisher logger.
func WithLogger(l types.Logger) Option {
	return func(p *Publisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the publisher metrics collector.
func WithMetrics(m types.PublisherMetrics) Option {
	return func(p *Publisher) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithOperationTimeout bounds each Publish call. Zero disables the bound.
func WithOperationTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = d
	}
}

// New creates a publisher writing under prefix (DefaultPrefix when empty).
//
// Parameters:
//   - kv: Target KV bucket
//   - prefix: Key prefix, e.g. "allocation" or "hostel-a"
//   - opts: Optional logger, metrics and timeout
//
// Returns:
//   - *Publisher: A new publisher with version 0
func New(kv jetstream.KeyValue, prefix string, opts ...Option) *Publisher {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	p := &Publisher{
		kv:        kv,
		prefix:    prefix,
		roomsPref: prefix + ".room.",
		metaKey:   prefix + ".meta",
		published: xsync.NewMap[string, int64](),
		logger:    logger.NewNop(),
		metrics:   metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// RoomKey returns the KV key of a room.
func (p *Publisher) RoomKey(room types.Room) string {
	return p.roomsPref + room.Label()
}

// MetaKey returns the KV key of the run metadata.
func (p *Publisher) MetaKey() string {
	return p.metaKey
}

// DiscoverVersion seeds the version counter from the meta key in the bucket.
//
// A missing meta key leaves the version at 0. A malformed one is ignored.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: Nil on success, error on KV access failure
func (p *Publisher) DiscoverVersion(ctx context.Context) error {
	entry, err := p.kv.Get(ctx, p.metaKey)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		p.logger.Debug("no previous allocation found", "key", p.metaKey)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", p.metaKey, err)
	}

	var meta MetaRecord
	if err := json.Unmarshal(entry.Value(), &meta); err != nil {
		p.logger.Warn("ignoring malformed allocation meta", "key", p.metaKey, "error", err)
		return nil
	}

	p.mu.Lock()
	if meta.Version > p.version {
		p.version = meta.Version
	}
	version := p.version
	p.mu.Unlock()

	p.logger.Info("discovered previous allocation", "version", version, "run_id", meta.RunID)

	return nil
}

// Publish writes result and its summary to the bucket.
//
// Room keys are written first and the meta key last, so a consumer watching
// the meta key sees a complete set of rooms. Room keys of an earlier run that
// are not part of result are deleted afterwards; cleanup failures are logged
// and do not fail the publish.
//
// Parameters:
//   - ctx: Context for cancellation
//   - result: Allocation to publish
//   - summary: Summary of result
//
// Returns:
//   - Envelope: Identity of the published run
//   - error: Wraps types.ErrPublishFailed on marshal or KV failure
func (p *Publisher) Publish(ctx context.Context, result *types.AllocationResult, summary report.Summary) (Envelope, error) {
	if result == nil {
		return Envelope{}, fmt.Errorf("%w: nil result", types.ErrPublishFailed)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	env := Envelope{
		RunID:       uuid.NewString(),
		Version:     p.version + 1,
		Fingerprint: strconv.FormatUint(result.Fingerprint(), 16),
		Strategy:    string(result.Strategy),
		PublishedAt: start.UTC(),
	}

	keys, err := p.put(ctx, env, result, summary)
	p.metrics.RecordPublish(err == nil, time.Since(start).Seconds())
	if err != nil {
		p.logger.Error("allocation publish failed", "run_id", env.RunID, "error", err)
		return Envelope{}, fmt.Errorf("%w: %w", types.ErrPublishFailed, err)
	}

	p.version = env.Version
	p.metrics.RecordPublishedRooms(len(keys))

	if err := p.cleanupStale(ctx, keys); err != nil {
		p.logger.Warn("stale room cleanup failed", "error", err)
	}

	p.logger.Info("allocation published",
		"run_id", env.RunID,
		"version", env.Version,
		"rooms", len(keys),
		"fingerprint", env.Fingerprint)

	return env, nil
}

func (p *Publisher) put(ctx context.Context, env Envelope, result *types.AllocationResult, summary report.Summary) ([]string, error) {
	keys := make([]string, 0, len(result.Rooms))
	for _, room := range result.Rooms {
		data, err := json.Marshal(RoomRecord{Envelope: env, Room: room})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal room %s: %w", room.Label(), err)
		}

		key := p.RoomKey(room)
		if _, err := p.kv.Put(ctx, key, data); err != nil {
			return nil, fmt.Errorf("failed to put %s: %w", key, err)
		}
		p.published.Store(key, env.Version)
		keys = append(keys, key)
	}

	meta := MetaRecord{
		Envelope:    env,
		Rooms:       keys,
		Unallocated: types.IDs(result.Unallocated),
		Summary:     summary,
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal meta: %w", err)
	}
	if _, err := p.kv.Put(ctx, p.metaKey, data); err != nil {
		return nil, fmt.Errorf("failed to put %s: %w", p.metaKey, err)
	}

	return keys, nil
}

// cleanupStale deletes room keys under the prefix that are not in keep.
func (p *Publisher) cleanupStale(ctx context.Context, keep []string) error {
	existing, err := p.kv.Keys(ctx)
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	deleted := 0
	for _, key := range existing {
		if !strings.HasPrefix(key, p.roomsPref) || slices.Contains(keep, key) {
			continue
		}

		if err := p.kv.Delete(ctx, key); err != nil {
			p.logger.Warn("failed to delete stale room", "key", key, "error", err)
			continue
		}
		p.published.Delete(key)
		deleted++
	}

	if deleted > 0 {
		p.logger.Debug("deleted stale rooms", "count", deleted)
	}

	return nil
}

// Clear deletes every key under the prefix, meta key included.
//
// The version counter is kept so that a later Publish still increases it.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: Nil on success, error if the keys could not be listed
func (p *Publisher) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.cleanupStale(ctx, nil); err != nil {
		return err
	}

	if err := p.kv.Delete(ctx, p.metaKey); err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete %s: %w", p.metaKey, err)
	}

	return nil
}

// CurrentVersion returns the version of the last successful publish.
func (p *Publisher) CurrentVersion() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.version
}

// PublishedKeys returns the room keys this publisher has written and not yet
// deleted, sorted.
func (p *Publisher) PublishedKeys() []string {
	keys := make([]string, 0, p.published.Size())
	p.published.Range(func(key string, _ int64) bool {
		keys = append(keys, key)
		return true
	})
	slices.Sort(keys)

	return keys
}
