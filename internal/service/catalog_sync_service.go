package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-dental-estimator/internal/engine"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Redis key prefixes for the mirrored catalog
	RedisProcedureKeyPrefix = "catalog:procedure:"
	RedisFactorKeyPrefix    = "catalog:factor:"
	RedisProvidersKey       = "catalog:providers"

	// Timeout for individual Redis operations
	redisSyncTimeout = 5 * time.Second

	// Batch size for the sync - one pipeline is executed per batch so a
	// large catalog never builds one huge in-memory pipeline
	syncBatchSize = 100
)

// =============================================================================
// Types
// =============================================================================

// CatalogSyncService mirrors the active catalog snapshot into Redis so
// sibling consumers (reporting, the front desk dashboard) can read base
// times and factors without a database round trip. The mirror is advisory:
// estimation itself always reads the in-process snapshot.
type CatalogSyncService struct {
	redisClient *redis.Client
	log         *logrus.Logger

	// Graceful shutdown for the periodic resync loop
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// =============================================================================
// Constructor
// =============================================================================

func NewCatalogSyncService(redisClient *redis.Client, log *logrus.Logger) *CatalogSyncService {
	return &CatalogSyncService{
		redisClient: redisClient,
		log:         log,
		stopChan:    make(chan struct{}),
	}
}

// =============================================================================
// Sync
// =============================================================================

// SyncSnapshot pushes the full snapshot to Redis in batched pipelines.
func (s *CatalogSyncService) SyncSnapshot(ctx context.Context, snap *engine.Snapshot) error {
	start := time.Now()

	names := snap.ProcedureNames()
	for offset := 0; offset < len(names); offset += syncBatchSize {
		end := offset + syncBatchSize
		if end > len(names) {
			end = len(names)
		}

		opCtx, cancel := context.WithTimeout(ctx, redisSyncTimeout)
		pipe := s.redisClient.Pipeline()
		for _, name := range names[offset:end] {
			times := snap.BaseTimes(name)
			pipe.HSet(opCtx, RedisProcedureKeyPrefix+name,
				"assistant", times.Assistant,
				"practitioner", times.Practitioner,
				"total", times.Total,
			)
		}
		_, err := pipe.Exec(opCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to sync procedure batch: %w", err)
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, redisSyncTimeout)
	defer cancel()

	pipe := s.redisClient.Pipeline()
	for _, factor := range snap.Factors() {
		pipe.HSet(opCtx, RedisFactorKeyPrefix+factor.Name,
			"value", factor.Value,
			"is_multiplier", factor.IsMultiplier(),
		)
	}
	pipe.Del(opCtx, RedisProvidersKey)
	if providers := snap.ProviderNames(); len(providers) > 0 {
		members := make([]interface{}, len(providers))
		for i, provider := range providers {
			members[i] = provider
		}
		pipe.SAdd(opCtx, RedisProvidersKey, members...)
	}
	if _, err := pipe.Exec(opCtx); err != nil {
		return fmt.Errorf("failed to sync factors and providers: %w", err)
	}

	s.log.Infof("Catalog synced to Redis: %d procedures in %v", len(names), time.Since(start))
	return nil
}

// =============================================================================
// Lifecycle
// =============================================================================

// StartPeriodicSync resyncs the snapshot on an interval, picking up the
// current snapshot on each tick. Call Stop() during graceful shutdown.
func (s *CatalogSyncService) StartPeriodicSync(interval time.Duration, snapshot func() *engine.Snapshot) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				snap := snapshot()
				if snap == nil {
					continue
				}
				if err := s.SyncSnapshot(context.Background(), snap); err != nil {
					s.log.Warnf("Periodic catalog sync failed: %+v", err)
				}
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop terminates the periodic sync loop and waits for it to exit.
func (s *CatalogSyncService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}
