package models

import "time"

// Chamber event types.
const (
	EventDeviceToggled   = "DEVICE_TOGGLED"
	EventSettingsUpdated = "SETTINGS_UPDATED"
	EventDryingStarted   = "DRYING_STARTED"
	EventDryingTick      = "DRYING_TICK"
	EventDryingCompleted = "DRYING_COMPLETED"
	EventDryingReset     = "DRYING_RESET"
)

// ChamberEvent is a single change notification / log entry.
type ChamberEvent struct {
	EventID     string    `json:"event_id"`
	ChamberID   string    `json:"chamber_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`            // DEVICE_TOGGLED | SETTINGS_UPDATED | DRYING_* ...
	Title       string    `json:"title,omitempty"` // short heading for toasts
	Description string    `json:"description"`     // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
