package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry - неизменяемая запись о смене статуса вызова
type HistoryEntry struct {
	ID             int64            `json:"id"`
	OccurrenceID   uuid.UUID        `json:"occurrence_id"`
	PreviousStatus OccurrenceStatus `json:"previous_status"`
	NewStatus      OccurrenceStatus `json:"new_status"`
	ChangedAt      time.Time        `json:"changed_at"`
	Note           string           `json:"note,omitempty"`
}
