package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/cyphera/cyphera-circles/internal/app"
	"github.com/cyphera/cyphera-circles/internal/config"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/processor"
	"go.uber.org/zap"
)

// Trigger modes selected by the TRIGGER env var
const (
	triggerScheduled = "scheduled"
	triggerSQS       = "sqs"
)

type Application struct {
	processor *processor.SyncProcessor
}

// HandleScheduled runs a full reconciliation pass on an EventBridge schedule.
func (a *Application) HandleScheduled(ctx context.Context, event events.CloudWatchEvent) error {
	logger.Info("Entering HandleScheduled for circle sync", zap.String("event_id", event.ID))

	results, err := a.processor.HandleScheduled(ctx)
	if err != nil {
		return err
	}

	logger.Info("Circle sync results",
		zap.Int("total", results.Total),
		zap.Int("synced", results.Synced),
		zap.Int("failed", results.Failed),
	)
	return nil
}

// HandleSQS syncs the circles named in an SQS batch.
func (a *Application) HandleSQS(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	return a.processor.HandleSQSEvent(ctx, event)
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	trigger := os.Getenv("TRIGGER")
	if trigger == "" {
		trigger = triggerScheduled
	}
	logger.Info("Lambda Cold Start: Initializing circle sync processor",
		zap.String("stage", cfg.Stage),
		zap.String("trigger", trigger),
	)

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	handler := &Application{processor: processor.NewSyncProcessor(a.Sync)}

	switch trigger {
	case triggerScheduled:
		lambda.Start(handler.HandleScheduled)
	case triggerSQS:
		lambda.Start(handler.HandleSQS)
	default:
		logger.Fatal("Invalid TRIGGER environment variable",
			zap.String("trigger", trigger),
			zap.Strings("valid", []string{triggerScheduled, triggerSQS}),
		)
	}
}
