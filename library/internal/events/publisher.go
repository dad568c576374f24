package events

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/model"
	cb "github.com/Astemirdum/library-membership/pkg/circuit_breaker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	breaker  cb.CircuitBreaker
	log      *zap.Logger
}

// NewKafkaPublisher sends each event to topic keyed by entity and id, so events
// of one row keep their order within a partition.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		breaker: cb.New(cb.Config{
			RecordLength:     10,
			Timeout:          10 * time.Second,
			Percentile:       0.5,
			RecoveryRequests: 3,
		}),
		log: log.Named("events"),
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, event model.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Entity + ":" + strconv.FormatInt(event.EntityID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	err = p.breaker.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		p.log.Warn("publish event",
			zap.String("entity", event.Entity),
			zap.Int64("id", event.EntityID),
			zap.String("action", string(event.Action)),
			zap.Error(err))
	}
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type nopPublisher struct {
	log *zap.Logger
}

// NewNopPublisher only logs events. It is used when no broker is configured.
func NewNopPublisher(log *zap.Logger) *nopPublisher {
	return &nopPublisher{log: log.Named("events")}
}

func (p *nopPublisher) Publish(_ context.Context, event model.Event) {
	p.log.Debug("event",
		zap.String("entity", event.Entity),
		zap.Int64("id", event.EntityID),
		zap.String("action", string(event.Action)))
}

func (p *nopPublisher) Close() error { return nil }
