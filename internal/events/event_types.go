package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentRequested     EventType = "appointment_requested"
	EventAppointmentStatusChanged EventType = "appointment_status_changed"
	EventDonorRegistered          EventType = "donor_registered"
	EventDonorStatusChanged       EventType = "donor_status_changed"
	EventContactMessageReceived   EventType = "contact_message_received"
	EventContactStatusChanged     EventType = "contact_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RecordID  string      `json:"record_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StatusChangedPayload accompanies the *_status_changed events.
type StatusChangedPayload struct {
	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status"`
}
