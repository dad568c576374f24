package events

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type EventHandler func(ctx context.Context, event model.Event) error

// Consumer is a sarama group handler decoding lifecycle events.
type Consumer struct {
	handle EventHandler
	log    *zap.Logger
}

func NewConsumer(handle EventHandler, log *zap.Logger) *Consumer {
	return &Consumer{
		handle: handle,
		log:    log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks undecodable messages as consumed; a failed handler leaves the offset in place.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("decode event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.handle(session.Context(), event); err != nil {
				consumer.log.Error("handle event", zap.Error(err))
				continue
			}

			consumer.log.Debug("message claimed",
				zap.String("topic", message.Topic),
				zap.Int64("offset", message.Offset),
				zap.Time("timestamp", message.Timestamp))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
