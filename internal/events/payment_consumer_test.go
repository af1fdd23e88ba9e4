package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/kafka"
)

type recordedSuccess struct {
	orderID          string
	transactionID    string
	paymentMode      string
	totalAmountCents int64
}

type recordedFailure struct {
	orderID       string
	transactionID string
	reason        string
}

type fakeRecorder struct {
	successes []recordedSuccess
	failures  []recordedFailure
	err       error
}

func (r *fakeRecorder) RecordPaymentSuccess(_ context.Context, orderID, transactionID, paymentMode string, totalAmountCents int64) error {
	if r.err != nil {
		return r.err
	}
	r.successes = append(r.successes, recordedSuccess{orderID, transactionID, paymentMode, totalAmountCents})
	return nil
}

func (r *fakeRecorder) RecordPaymentFailure(_ context.Context, orderID, transactionID, reason string) error {
	if r.err != nil {
		return r.err
	}
	r.failures = append(r.failures, recordedFailure{orderID, transactionID, reason})
	return nil
}

func newTestConsumer(rec *fakeRecorder) *PaymentEventConsumer {
	return &PaymentEventConsumer{recorder: rec, logger: zap.NewNop()}
}

func messageFor(t *testing.T, eventType string, data interface{}) kafkago.Message {
	t.Helper()
	ce, err := kafka.NewCloudEvent("service-payment", eventType, data)
	require.NoError(t, err)
	raw, err := json.Marshal(ce)
	require.NoError(t, err)
	return kafkago.Message{Topic: TopicPaymentEvents, Value: raw}
}

func TestHandlePaymentSucceeded(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestConsumer(rec)

	msg := messageFor(t, PaymentSucceeded, PaymentSucceededEvent{
		OrderID:          "ORD-1",
		TransactionID:    "txn-1",
		PaymentMode:      "card",
		TotalAmountCents: 4700,
		OccurredAt:       time.Now().UTC(),
	})

	require.NoError(t, c.handleMessage(context.Background(), msg))
	require.Len(t, rec.successes, 1)
	assert.Equal(t, "ORD-1", rec.successes[0].orderID)
	assert.Equal(t, "txn-1", rec.successes[0].transactionID)
	assert.Equal(t, "card", rec.successes[0].paymentMode)
	assert.Equal(t, int64(4700), rec.successes[0].totalAmountCents)
}

func TestHandlePaymentFailed(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestConsumer(rec)

	msg := messageFor(t, PaymentFailed, PaymentFailedEvent{
		OrderID:       "ORD-2",
		TransactionID: "txn-2",
		Reason:        "card declined",
		OccurredAt:    time.Now().UTC(),
	})

	require.NoError(t, c.handleMessage(context.Background(), msg))
	require.Len(t, rec.failures, 1)
	assert.Equal(t, "ORD-2", rec.failures[0].orderID)
	assert.Equal(t, "card declined", rec.failures[0].reason)
}

func TestHandleMessageSkipsMalformedAndUnknown(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestConsumer(rec)

	t.Run("malformed payload is not retried", func(t *testing.T) {
		msg := kafkago.Message{Topic: TopicPaymentEvents, Value: []byte("not json")}
		assert.NoError(t, c.handleMessage(context.Background(), msg))
	})

	t.Run("unknown event type is ignored", func(t *testing.T) {
		msg := messageFor(t, "payment.refunded", map[string]string{"order_id": "ORD-3"})
		assert.NoError(t, c.handleMessage(context.Background(), msg))
	})

	assert.Empty(t, rec.successes)
	assert.Empty(t, rec.failures)
}

func TestHandleMessagePropagatesRecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	c := newTestConsumer(rec)

	msg := messageFor(t, PaymentSucceeded, PaymentSucceededEvent{OrderID: "ORD-4"})
	err := c.handleMessage(context.Background(), msg)
	require.Error(t, err)
}
