package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	RequestsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldservice_requests_created_total",
			Help: "The total number of requests created with their work orders",
		},
	)
	WorkOrderUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldservice_work_order_updates_total",
			Help: "Work order status updates applied, by new status",
		},
		[]string{"status"},
	)
	RequestTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldservice_request_transitions_total",
			Help: "Request status transitions applied, by target status",
		},
		[]string{"status"},
	)
	RequestTransitionsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldservice_request_transitions_skipped_total",
			Help: "Request transitions rejected by the status guard (another writer got there first)",
		},
		[]string{"status"},
	)
	PurchaseOrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldservice_purchase_orders_created_total",
			Help: "The total number of purchase orders created",
		},
	)
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldservice_events_published_total",
			Help: "Domain events handed to the event bus, by event type and result",
		},
		[]string{"event", "result"},
	)
	EventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldservice_events_dropped_total",
			Help: "Domain events dropped because the outbound queue was full or closed",
		},
	)
)
