// Package events defines the wire format of the dashboard module's bus events.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/devgenius/devgenius/internal/status"
)

// StatusUpdated is published on topics.Updated each time the poller reads a
// snapshot from the provider.
type StatusUpdated struct {
	ID         uuid.UUID       `json:"id"`
	Snapshot   status.Snapshot `json:"snapshot"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewStatusUpdated stamps a snapshot with an ID and the current time.
func NewStatusUpdated(s status.Snapshot) StatusUpdated {
	return StatusUpdated{
		ID:         uuid.New(),
		Snapshot:   s,
		OccurredAt: time.Now().UTC(),
	}
}
