package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"savr/notify-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Consumer struct {
	Reader  MessageReader
	Handler OrderEventHandler
	Logger  *zap.SugaredLogger
}

func NewConsumer(reader MessageReader, handler OrderEventHandler, logger *zap.SugaredLogger) *Consumer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Consumer{Reader: reader, Handler: handler, Logger: logger}
}

// Start reads order events until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Infow("order event consumer starting")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.Logger.Infow("order event consumer stopped")
				return
			}
			c.Logger.Errorw("error reading message", "error", err)
			continue
		}
		if err := c.Process(ctx, message); err != nil {
			c.Logger.Errorw("error processing message", "offset", message.Offset, "error", err)
		}
	}
}

func (c *Consumer) Process(ctx context.Context, message kafka.Message) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return err
	}
	return c.Handler.HandleOrderEvent(ctx, event)
}
