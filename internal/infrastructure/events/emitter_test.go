package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic   string
	key     string
	payload []byte
}

type recordingPublisher struct {
	mu    sync.Mutex
	items []published
	err   error
	block chan struct{}
}

func (p *recordingPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, published{topic: topic, key: key, payload: payload})
	return p.err
}

func (p *recordingPublisher) snapshot() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.items...)
}

var testTopics = Topics{
	entities.EventRequestCreated:       "request-events",
	entities.EventPurchaseOrderCreated: "po-events",
}

func TestEncode_FlattensPayload(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	raw, err := Encode(entities.DomainEvent{
		Type:        entities.EventPurchaseOrderCreated,
		AggregateID: "SN-1",
		OccurredAt:  at,
		Payload:     map[string]any{"poId": "PO-1", "price": "10.5"},
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "PO_CREATED", body["event"])
	assert.Equal(t, "PO-1", body["poId"])
	assert.Equal(t, "10.5", body["price"])
	assert.Equal(t, entities.EventSource, body["source"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body["created_at"])
}

func TestAsyncEmitter_RoutesByTypeAndDrainsOnClose(t *testing.T) {
	pub := &recordingPublisher{}
	e := NewAsyncEmitter(pub, testTopics, 8, time.Second)

	e.Emit(entities.DomainEvent{Type: entities.EventRequestCreated, AggregateID: "SN-1", Payload: map[string]any{"requestId": "SN-1"}})
	e.Emit(entities.DomainEvent{Type: entities.EventPurchaseOrderCreated, AggregateID: "SN-1", Payload: map[string]any{"poId": "PO-1"}})
	require.NoError(t, e.Close(context.Background()))

	items := pub.snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, "request-events", items[0].topic)
	assert.Equal(t, "po-events", items[1].topic)
	assert.Equal(t, "SN-1", items[0].key)
}

func TestAsyncEmitter_PublishFailureIsSwallowed(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	e := NewAsyncEmitter(pub, testTopics, 8, time.Second)

	e.Emit(entities.DomainEvent{Type: entities.EventRequestCreated, AggregateID: "SN-1"})
	require.NoError(t, e.Close(context.Background()))
	assert.Len(t, pub.snapshot(), 1)
}

func TestAsyncEmitter_DropsWhenFullOrClosed(t *testing.T) {
	pub := &recordingPublisher{block: make(chan struct{})}
	e := NewAsyncEmitter(pub, testTopics, 1, time.Second)

	for i := 0; i < 5; i++ {
		e.Emit(entities.DomainEvent{Type: entities.EventRequestCreated, AggregateID: "SN-1"})
	}
	close(pub.block)
	require.NoError(t, e.Close(context.Background()))

	// One in flight plus one queued at most.
	assert.LessOrEqual(t, len(pub.snapshot()), 2)

	e.Emit(entities.DomainEvent{Type: entities.EventRequestCreated, AggregateID: "SN-2"})
	assert.LessOrEqual(t, len(pub.snapshot()), 2)
}

func TestAsyncEmitter_UnroutedEventIsSkipped(t *testing.T) {
	pub := &recordingPublisher{}
	e := NewAsyncEmitter(pub, Topics{}, 4, time.Second)
	e.Emit(entities.DomainEvent{Type: entities.EventRequestCreated, AggregateID: "SN-1"})
	require.NoError(t, e.Close(context.Background()))
	assert.Empty(t, pub.snapshot())
}
