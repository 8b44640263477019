package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance - запись об исполнении одного выезда
type Attendance struct {
	ID               uuid.UUID  `json:"id"`
	OccurrenceID     uuid.UUID  `json:"occurrence_id"`
	AmbulanceID      uuid.UUID  `json:"ambulance_id"`
	TeamID           *uuid.UUID `json:"team_id,omitempty"`
	DispatchedAt     time.Time  `json:"dispatched_at"`
	ArrivedAt        *time.Time `json:"arrived_at,omitempty"`
	Distance         float64    `json:"distance"`
	Route            []string   `json:"route"`
	EstimatedMinutes float64    `json:"estimated_minutes"`
	ActualMinutes    *float64   `json:"actual_minutes,omitempty"`
	SLAMaxMinutes    int        `json:"sla_max_minutes"`
	OutsideSLA       *bool      `json:"outside_sla,omitempty"`
}
