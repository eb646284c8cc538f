package fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"event-state/core/feed"
	"event-state/core/mapping"
	"event-state/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Sink receives parsed payloads. *reconcile.Engine satisfies it.
type Sink interface {
	UpdateMappings(table mapping.Table)
	MergeBatch(records []feed.Record) reconcile.MergeResult
	HasMappings() bool
}

// Poller periodically fetches mappings and state and hands them to a Sink.
type Poller struct {
	source Source
	sink   Sink
	logger *zap.Logger

	stateInterval    time.Duration
	mappingsInterval time.Duration
	timeout          time.Duration

	// stateMu keeps fetch+merge atomic so snapshots are merged in fetch order.
	stateMu sync.Mutex
	sf      singleflight.Group
}

// NewPoller creates a poller using the intervals and timeout from cfg.
func NewPoller(source Source, sink Sink, cfg Config, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		source:           source,
		sink:             sink,
		logger:           logger,
		stateInterval:    cfg.StateInterval(),
		mappingsInterval: cfg.MappingsInterval(),
		timeout:          cfg.Timeout(),
	}
}

// Run polls both feeds until ctx is cancelled. Each loop fetches once immediately.
// Fetch failures are logged and retried on the next tick; Run only returns once ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return p.loop(ctx, "mappings", p.mappingsInterval, p.RefreshMappings)
	})
	g.Go(func() error {
		return p.loop(ctx, "state", p.stateInterval, p.RefreshState)
	})

	return g.Wait()
}

func (p *Poller) loop(ctx context.Context, name string, interval time.Duration, refresh func(context.Context) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.logger.Info("Poller started", zap.String("feed", name), zap.Duration("interval", interval))
	for {
		if err := refresh(ctx); err != nil && ctx.Err() == nil {
			p.logger.Error("Feed refresh failed", zap.String("feed", name), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped", zap.String("feed", name))
			return nil
		case <-ticker.C:
		}
	}
}

// RefreshMappings fetches and applies the mapping table.
// Concurrent calls share a single fetch.
func (p *Poller) RefreshMappings(ctx context.Context) error {
	_, err, _ := p.sf.Do("mappings", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		raw, err := p.source.FetchMappings(fetchCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch mappings: %w", err)
		}

		table := mapping.Parse(raw, p.logger)
		p.sink.UpdateMappings(table)
		p.logger.Debug("Mappings refreshed", zap.Int("entries", len(table)))
		return nil, nil
	})
	return err
}

// RefreshState fetches the state snapshot and merges it.
// When no mappings have been loaded yet a mapping refresh is attempted first; if that fails the
// snapshot is not merged, since every record would be rejected.
func (p *Poller) RefreshState(ctx context.Context) error {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()

	if !p.sink.HasMappings() {
		if err := p.RefreshMappings(ctx); err != nil {
			return fmt.Errorf("mappings unavailable, state not merged: %w", err)
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.source.FetchState(fetchCtx)
	if err != nil {
		return fmt.Errorf("failed to fetch state: %w", err)
	}

	records := feed.Parse(raw, p.logger)
	result := p.sink.MergeBatch(records)

	p.logger.Debug("State updated",
		zap.Int("received", result.Received),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("removed", result.Removed),
		zap.Int("rejected", result.Rejected),
	)
	return nil
}
