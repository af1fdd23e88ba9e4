package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/kafka"
)

// PaymentRecorder applies gateway payment results to bookings.
type PaymentRecorder interface {
	RecordPaymentSuccess(ctx context.Context, orderID, transactionID, paymentMode string, totalAmountCents int64) error
	RecordPaymentFailure(ctx context.Context, orderID, transactionID, reason string) error
}

// PaymentEventConsumer listens to payment gateway events and records the
// resulting payment state on bookings.
type PaymentEventConsumer struct {
	consumer *kafka.Consumer
	recorder PaymentRecorder
	logger   *zap.Logger
}

// NewPaymentEventConsumer creates a new PaymentEventConsumer.
func NewPaymentEventConsumer(
	brokers []string,
	groupID string,
	recorder PaymentRecorder,
	logger *zap.Logger,
) *PaymentEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicPaymentEvents, logger)
	return &PaymentEventConsumer{
		consumer: consumer,
		recorder: recorder,
		logger:   logger,
	}
}

// Start begins consuming payment events. This blocks until the context is cancelled.
func (c *PaymentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *PaymentEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *PaymentEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from payment topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case PaymentSucceeded:
		return c.handlePaymentSucceeded(ctx, cloudEvent)
	case PaymentFailed:
		return c.handlePaymentFailed(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled payment event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *PaymentEventConsumer) handlePaymentSucceeded(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt PaymentSucceededEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse PaymentSucceededEvent data", zap.Error(err))
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing payment succeeded event",
		zap.String("order_id", evt.OrderID),
		zap.String("transaction_id", evt.TransactionID),
	)

	if err := c.recorder.RecordPaymentSuccess(ctx, evt.OrderID, evt.TransactionID, evt.PaymentMode, evt.TotalAmountCents); err != nil {
		c.logger.Error("failed to record payment success",
			zap.String("order_id", evt.OrderID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (c *PaymentEventConsumer) handlePaymentFailed(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt PaymentFailedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse PaymentFailedEvent data", zap.Error(err))
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing payment failed event",
		zap.String("order_id", evt.OrderID),
		zap.String("reason", evt.Reason),
	)

	if err := c.recorder.RecordPaymentFailure(ctx, evt.OrderID, evt.TransactionID, evt.Reason); err != nil {
		c.logger.Error("failed to record payment failure",
			zap.String("order_id", evt.OrderID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
