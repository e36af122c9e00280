// Package events ships domain events to the event bus without putting the bus on
// the request path: Emit enqueues, a single worker publishes with a bounded timeout.
package events

import (
	"context"
	"sync"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/metrics"
	"fieldservice/internal/usecase/interfaces"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultQueueSize      = 256
	defaultPublishTimeout = 10 * time.Second
)

// Topics routes each event type to a bus topic.
type Topics map[entities.DomainEventType]string

type AsyncEmitter struct {
	publisher interfaces.IEventPublisher
	topics    Topics
	timeout   time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan entities.DomainEvent
	done   chan struct{}
}

var _ interfaces.IEventEmitter = (*AsyncEmitter)(nil)

// NewAsyncEmitter starts the publishing worker. Call Close to drain and stop it.
func NewAsyncEmitter(publisher interfaces.IEventPublisher, topics Topics, queueSize int, timeout time.Duration) *AsyncEmitter {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	e := &AsyncEmitter{
		publisher: publisher,
		topics:    topics,
		timeout:   timeout,
		queue:     make(chan entities.DomainEvent, queueSize),
		done:      make(chan struct{}),
	}
	go e.run()
	return e
}

// Emit never blocks: a full queue drops the event.
func (e *AsyncEmitter) Emit(event entities.DomainEvent) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		metrics.EventsDropped.Inc()
		zap.S().Warnw("[events] emitter closed; event dropped", "event", event.Type, "aggregate_id", event.AggregateID)
		return
	}
	select {
	case e.queue <- event:
	default:
		metrics.EventsDropped.Inc()
		zap.S().Warnw("[events] queue full; event dropped", "event", event.Type, "aggregate_id", event.AggregateID)
	}
}

// Close stops accepting events and waits until the queued ones were attempted or
// ctx expires.
func (e *AsyncEmitter) Close(ctx context.Context) error {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.queue)
	}
	e.mu.Unlock()

	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *AsyncEmitter) run() {
	defer close(e.done)
	for event := range e.queue {
		e.publish(event)
	}
}

func (e *AsyncEmitter) publish(event entities.DomainEvent) {
	topic, ok := e.topics[event.Type]
	if !ok {
		zap.S().Warnw("[events] no topic for event type", "event", event.Type)
		metrics.EventsPublished.WithLabelValues(string(event.Type), "unrouted").Inc()
		return
	}
	payload, err := Encode(event)
	if err != nil {
		zap.S().Errorw("[events] encode failed", "event", event.Type, "error", err)
		metrics.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	if err := e.publisher.Publish(ctx, topic, event.AggregateID, payload); err != nil {
		zap.S().Errorw("[events] publish failed", "event", event.Type, "topic", topic, "aggregate_id", event.AggregateID, "error", err)
		metrics.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()
		return
	}
	metrics.EventsPublished.WithLabelValues(string(event.Type), "ok").Inc()
	zap.S().Debugw("[events] published", "event", event.Type, "topic", topic, "aggregate_id", event.AggregateID)
}

// Encode flattens the payload next to the "event", "created_at" and "source" keys.
func Encode(event entities.DomainEvent) ([]byte, error) {
	body := make(map[string]any, len(event.Payload)+3)
	for k, v := range event.Payload {
		body[k] = v
	}
	body["event"] = string(event.Type)
	body["created_at"] = event.OccurredAt.UTC().Format(time.RFC3339Nano)
	body["source"] = entities.EventSource
	return json.Marshal(body)
}
