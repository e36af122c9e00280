package events

import (
	"context"
	"fmt"
	"time"

	"fieldservice/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

// KafkaPublisher writes events to Kafka with a synchronous producer, so the
// emitter worker learns about every failure.
type KafkaPublisher struct {
	producer sarama.SyncProducer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, timeout time.Duration) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.ClientID = "field-service-backend"
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3
	if timeout > 0 {
		config.Producer.Timeout = timeout
		config.Net.DialTimeout = timeout
	}

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// Publish returns when the broker acknowledged the message or ctx is done,
// whichever comes first.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, payload []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	result := make(chan error, 1)
	go func() {
		_, _, err := p.producer.SendMessage(msg)
		result <- err
	}()

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
