package domain

import "time"

// EventType names a warehouse lifecycle event
type EventType string

const (
	// EventDeployCompleted is emitted after an ingestion run releases its lease
	EventDeployCompleted EventType = "deploy.completed"
	// EventPassCompleted is emitted after an enrichment pass writes back its classes
	EventPassCompleted EventType = "enrichment.completed"
)

// WarehouseEvent is the envelope published to the message broker
type WarehouseEvent struct {
	EventID    string    `json:"event_id"`
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	// Exactly one of the payloads is set, matching Type
	Run  *RunSummary `json:"run,omitempty"`
	Pass *PassReport `json:"pass,omitempty"`
}
