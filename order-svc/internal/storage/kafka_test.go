package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"savr/order-svc/internal/domain"
	"savr/order-svc/internal/storage"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)
	event := domain.OrderEvent{
		Type:           domain.EventOrderPlaced,
		SessionID:      "session-1",
		OrderID:        "o-1",
		RestaurantID:   "r1",
		RestaurantName: "Spice Route Kitchen",
		Status:         domain.StatusPlaced,
		TotalAmount:    65.5,
		Timestamp:      time.UnixMilli(1739329200000).UTC(),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("session-1"), writer.messages[0].Key)

	var decoded domain.OrderEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisher_PropagatesWriteError(t *testing.T) {
	publisher := storage.NewKafkaPublisher(&recordingWriter{err: errors.New("broker down")})

	err := publisher.PublishOrderEvent(context.Background(), domain.OrderEvent{SessionID: "session-1"})
	assert.EqualError(t, err, "broker down")
}
