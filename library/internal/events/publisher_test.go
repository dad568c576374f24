package events

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/model"
	cb "github.com/Astemirdum/library-membership/pkg/circuit_breaker"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	event := model.NewEvent("book", 7, model.EventRestored)

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		require.Equal(t, "book:7", string(key))
		require.Equal(t, "library.test", msg.Topic)

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var got model.Event
		require.NoError(t, json.Unmarshal(value, &got))
		require.Equal(t, event.ID, got.ID)
		require.Equal(t, model.EventRestored, got.Action)
		return nil
	})

	p := NewKafkaPublisher(producer, "library.test", zap.NewNop())
	p.Publish(context.Background(), event)
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_FailuresOpenBreaker(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	// half of a ten call window trips the breaker
	for i := 0; i < 5; i++ {
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	}

	p := NewKafkaPublisher(producer, "library.test", zap.NewNop())
	for i := 0; i < 8; i++ {
		p.Publish(context.Background(), model.NewEvent("member", int64(i), model.EventCreated))
	}
	require.Equal(t, cb.Open, p.breaker.State())

	require.NoError(t, p.Close())
}
