package entities

import "time"

type DomainEventType string

const (
	EventRequestCreated       DomainEventType = "REQUEST_CREATED"
	EventPurchaseOrderCreated DomainEventType = "PO_CREATED"
)

// EventSource tags every event published by this service.
const EventSource = "field-service-backend"

// DomainEvent is a best-effort notification for downstream analytics.
// Payload is flattened into the published JSON next to "event".
type DomainEvent struct {
	Type        DomainEventType
	AggregateID string
	OccurredAt  time.Time
	Payload     map[string]any
}
