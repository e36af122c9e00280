package interfaces

import (
	"context"
	"fieldservice/internal/domain/entities"
)

// IEventEmitter hands domain events to an outbound queue. Emit never blocks on the
// bus and never fails the caller; delivery problems are logged by the emitter.
type IEventEmitter interface {
	Emit(event entities.DomainEvent)
}

// IEventPublisher abstracts the external event bus (e.g. Kafka).
type IEventPublisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte) error
}
