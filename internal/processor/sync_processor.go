package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	awsclient "github.com/cyphera/cyphera-circles/internal/client/aws"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SyncProcessor runs circle reconciliation from Lambda triggers
type SyncProcessor struct {
	sync   interfaces.CircleSyncService
	logger *zap.Logger
}

// NewSyncProcessor creates a new sync processor
func NewSyncProcessor(sync interfaces.CircleSyncService) *SyncProcessor {
	return &SyncProcessor{
		sync:   sync,
		logger: logger.ForComponent(logger.ComponentProcessor),
	}
}

// HandleScheduled reconciles every syncable circle.
func (p *SyncProcessor) HandleScheduled(ctx context.Context) (*interfaces.SyncResults, error) {
	p.logger.Info("Scheduled circle sync started")

	results, err := p.sync.SyncAllCircles(ctx)
	if err != nil {
		p.logger.Error("Scheduled circle sync failed", zap.Error(err))
		return nil, fmt.Errorf("HandleScheduled: %w", err)
	}
	return results, nil
}

// HandleSQSEvent syncs one circle per record. Records whose sync hit a store error are
// reported back as batch item failures so only they are redelivered. Malformed bodies and
// circles that no longer exist are dropped; redelivery cannot fix them.
func (p *SyncProcessor) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	p.logger.Info("Circle sync processor handling SQS event", zap.Int("record_count", len(event.Records)))

	var response events.SQSEventResponse
	synced, skipped := 0, 0

	for _, record := range event.Records {
		log := p.logger.With(zap.String("message_id", record.MessageId))

		msg, err := awsclient.ParseCircleSyncMessage(record.Body)
		if err != nil {
			log.Error("Dropping malformed circle sync message", zap.Error(err))
			continue
		}
		log = log.With(zap.String("circle_id", msg.CircleID.String()))

		ok, err := p.sync.SyncCircle(ctx, msg.CircleID)
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("Dropping circle sync message, circle not found")
			skipped++
			continue
		}
		if err != nil {
			log.Error("Circle sync failed, message will be retried", zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
			continue
		}
		if ok {
			synced++
		} else {
			skipped++
			log.Info("Circle not synced, chain state unavailable")
		}
	}

	p.logger.Info("Circle sync processor finished",
		zap.Int("total", len(event.Records)),
		zap.Int("synced", synced),
		zap.Int("skipped", skipped),
		zap.Int("failed", len(response.BatchItemFailures)),
	)

	return response, nil
}
