package service

import (
	"context"
)

// Event names understood by the background worker.
const (
	// EventImportRequested asks the worker to pull and apply a price feed.
	EventImportRequested = "catalog.import.requested"
	// EventOrderPlaced notifies that a basket was checked out.
	EventOrderPlaced = "order.placed"
	// EventOrderStateChanged notifies that a shop advanced an order.
	EventOrderStateChanged = "order.state.changed"
	// EventUserRegistered asks the worker to mail a confirmation key.
	EventUserRegistered = "user.registered"
)

// Event is the envelope published for async processing. Name selects the
// handler; the remaining fields are filled per event kind.
type Event struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Name       string `json:"name"`
	UserID     string `json:"user_id"`
	FeedURL    string `json:"feed_url,omitempty"`    // Import events.
	OrderID    string `json:"order_id,omitempty"`    // Order events.
	OrderState string `json:"order_state,omitempty"` // Order state events.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a domain event for async processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
