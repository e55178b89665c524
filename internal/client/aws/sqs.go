package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Message attribute values for sync queue messages
const (
	MessageTypeAttribute = "MessageType"
	MessageTypeSyncOne   = "circle_sync"
)

// CircleSyncMessage is the SQS body for a single-circle sync request.
type CircleSyncMessage struct {
	CircleID    uuid.UUID `json:"circle_id"`
	RequestedAt time.Time `json:"requested_at"`
}

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SyncQueueClient publishes circle sync requests to SQS.
type SyncQueueClient struct {
	svc      sqsAPI
	queueURL string
}

// NewSyncQueueClient creates a client for queueURL from the default AWS configuration chain.
func NewSyncQueueClient(ctx context.Context, queueURL string) (*SyncQueueClient, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("sync queue URL not provided")
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &SyncQueueClient{svc: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

// EnqueueCircleSync publishes a sync request for circleID and returns the SQS message id.
func (c *SyncQueueClient) EnqueueCircleSync(ctx context.Context, circleID uuid.UUID) (string, error) {
	body, err := json.Marshal(CircleSyncMessage{CircleID: circleID, RequestedAt: time.Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal sync message: %w", err)
	}

	out, err := c.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(c.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			MessageTypeAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(MessageTypeSyncOne),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send sync message: %w", err)
	}

	messageID := aws.ToString(out.MessageId)
	logger.Info("Circle sync enqueued",
		zap.String("circle_id", circleID.String()),
		zap.String("message_id", messageID),
	)
	return messageID, nil
}

// ParseCircleSyncMessage decodes an SQS body produced by EnqueueCircleSync.
func ParseCircleSyncMessage(body string) (CircleSyncMessage, error) {
	var msg CircleSyncMessage
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return msg, fmt.Errorf("failed to parse sync message: %w", err)
	}
	if msg.CircleID == uuid.Nil {
		return msg, fmt.Errorf("sync message missing circle_id")
	}
	return msg, nil
}
