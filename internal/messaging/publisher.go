package messaging

import (
	"context"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

// Publisher defines the interface for publishing warehouse events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a warehouse event
	PublishEvent(ctx context.Context, event *domain.WarehouseEvent) error
	// Close closes the connection
	Close()
}

// noopPublisher drops every event; used when no broker is configured
type noopPublisher struct{}

// NewNoopPublisher returns a publisher that discards events
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(context.Context, *domain.WarehouseEvent) error { return nil }

func (noopPublisher) Close() {}
