package services

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/cyphera/cyphera-circles/internal/constants"
	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/metrics"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CircleSyncService folds SavingsCircle contract state into cached circle rows
type CircleSyncService struct {
	queries     db.Querier
	reader      interfaces.ChainReader
	locks       *keyedMutex
	concurrency int
	now         func() time.Time
	logger      *zap.Logger
}

// NewCircleSyncService creates a new circle sync service. A non-positive concurrency uses the default.
func NewCircleSyncService(queries db.Querier, reader interfaces.ChainReader, concurrency int) *CircleSyncService {
	if concurrency <= 0 {
		concurrency = constants.DefaultSyncConcurrency
	}
	return &CircleSyncService{
		queries:     queries,
		reader:      reader,
		locks:       newKeyedMutex(),
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger.ForComponent(logger.ComponentSync),
	}
}

// SyncCircle refreshes one circle from the chain. It returns true when the chain read
// succeeded and the row was written, false when the circle is not deployed or not readable.
// Only store failures are returned as errors.
func (s *CircleSyncService) SyncCircle(ctx context.Context, circleID uuid.UUID) (bool, error) {
	if s.reader == nil {
		s.logger.Warn("No chain reader configured, skipping sync", zap.String("circle_id", circleID.String()))
		metrics.CircleSyncTotal.WithLabelValues(metrics.SyncResultSkipped).Inc()
		return false, nil
	}

	unlock := s.locks.Lock(circleID.String())
	defer unlock()

	log := s.logger.With(zap.String("circle_id", circleID.String()))

	circle, err := s.queries.GetCircle(ctx, circleID)
	if err != nil {
		metrics.CircleSyncTotal.WithLabelValues(metrics.SyncResultError).Inc()
		return false, fmt.Errorf("failed to get circle: %w", err)
	}

	if !circle.OnChainID.Valid || circle.OnChainID.Int64 < 0 {
		log.Debug("Circle not deployed, skipping sync")
		metrics.CircleSyncTotal.WithLabelValues(metrics.SyncResultSkipped).Inc()
		return false, nil
	}

	onChainID := uint64(circle.OnChainID.Int64)
	log = log.With(zap.Uint64("on_chain_id", onChainID))

	info, found := s.reader.GetCircleInfo(ctx, onChainID)
	if !found {
		log.Info("Circle not readable on chain, leaving cache unchanged")
		metrics.CircleSyncTotal.WithLabelValues(metrics.SyncResultAbsent).Inc()
		return false, nil
	}

	params := s.applyChainState(circle, info, s.now(), log)

	if _, err := s.queries.UpdateCircleSyncState(ctx, params); err != nil {
		metrics.CircleSyncTotal.WithLabelValues(metrics.SyncResultError).Inc()
		return false, fmt.Errorf("failed to update circle sync state: %w", err)
	}

	metrics.CircleSyncTotal.WithLabelValues(metrics.SyncResultSynced).Inc()
	log.Debug("Circle synced",
		zap.String("status", string(params.Status)),
		zap.Int32("round", params.OnChainRound),
		zap.Uint8("on_chain_status", info.Status),
	)

	return true, nil
}

// applyChainState builds the row update for circle given fresh chain data.
// Round, raw status and last_synced_at always refresh. The lifecycle only moves forward and
// stops at completed; started_at and completed_at are written once.
func (s *CircleSyncService) applyChainState(circle db.Circle, info *chain.CircleInfo, now time.Time, log *zap.Logger) db.UpdateCircleSyncStateParams {
	params := db.UpdateCircleSyncStateParams{
		ID:            circle.ID,
		OnChainRound:  roundToInt32(info, circle.OnChainRound, log),
		OnChainStatus: pgtype.Int2{Int16: int16(info.Status), Valid: true},
		Status:        circle.Status,
		StartedAt:     circle.StartedAt,
		CompletedAt:   circle.CompletedAt,
		LastSyncedAt:  db.Timestamptz(now),
	}

	if circle.Status.IsTerminal() {
		return params
	}

	switch info.Status {
	case constants.OnChainStatusForming:
		// holds
	case constants.OnChainStatusActive:
		if circle.Status != db.CircleStatusActive {
			log.Info("Circle became active", zap.String("from", string(circle.Status)))
			metrics.CircleTransitionsTotal.WithLabelValues(string(db.CircleStatusActive)).Inc()
		}
		params.Status = db.CircleStatusActive
		if !params.StartedAt.Valid {
			params.StartedAt = db.Timestamptz(now)
		}
	case constants.OnChainStatusPaused:
		log.Warn("Circle is paused on chain, holding status", zap.String("status", string(circle.Status)))
	case constants.OnChainStatusCompleted:
		log.Info("Circle completed", zap.String("from", string(circle.Status)))
		metrics.CircleTransitionsTotal.WithLabelValues(string(db.CircleStatusCompleted)).Inc()
		params.Status = db.CircleStatusCompleted
		if !params.CompletedAt.Valid {
			params.CompletedAt = db.Timestamptz(now)
		}
	default:
		log.Error("Unknown on-chain circle status, holding status", zap.Uint8("on_chain_status", info.Status))
		metrics.CircleSyncUnknownStatusTotal.Inc()
	}

	return params
}

func roundToInt32(info *chain.CircleInfo, fallback int32, log *zap.Logger) int32 {
	if info.CurrentRound == nil {
		return fallback
	}
	if !info.CurrentRound.IsInt64() || info.CurrentRound.Int64() > math.MaxInt32 || info.CurrentRound.Sign() < 0 {
		log.Warn("On-chain round out of range, keeping cached round", zap.String("round", info.CurrentRound.String()))
		return fallback
	}
	return int32(info.CurrentRound.Int64())
}

// SyncAllCircles syncs every deployed circle with bounded parallelism. One circle failing
// never stops the others; only a failure to list circles is returned.
func (s *CircleSyncService) SyncAllCircles(ctx context.Context) (*interfaces.SyncResults, error) {
	circles, err := s.queries.ListSyncableCircles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list syncable circles: %w", err)
	}

	s.logger.Info("Starting circle sync", zap.Int("circles", len(circles)), zap.Int("concurrency", s.concurrency))
	start := time.Now()

	var synced, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, circle := range circles {
		g.Go(func() error {
			ok, err := s.SyncCircle(ctx, circle.ID)
			if err != nil {
				s.logger.Error("Failed to sync circle",
					zap.String("circle_id", circle.ID.String()),
					zap.Error(err),
				)
			}
			if ok {
				synced.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	results := &interfaces.SyncResults{
		Total:  len(circles),
		Synced: int(synced.Load()),
		Failed: int(failed.Load()),
	}

	s.logger.Info("Circle sync completed",
		zap.Int("total", results.Total),
		zap.Int("synced", results.Synced),
		zap.Int("failed", results.Failed),
		zap.Duration("duration", time.Since(start)),
	)

	return results, nil
}
