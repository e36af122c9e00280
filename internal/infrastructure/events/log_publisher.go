package events

import (
	"context"

	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogPublisher stands in for the bus when no brokers are configured.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, topic string, key string, payload []byte) error {
	zap.S().Infow("[events] bus not configured; event logged only", "topic", topic, "key", key, "payload", string(payload))
	return nil
}
