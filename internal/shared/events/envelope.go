package events

import "time"

// Envelope is the shared event shape used across Enablement Hub services.
// Keep fields backward compatible; consumers dedupe on EventID.
type Envelope struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	SourceService string    `json:"source_service"`
	OccurredAtUTC time.Time `json:"occurred_at_utc"`
	CorrelationID string    `json:"correlation_id"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	Payload       any       `json:"payload"`
}
