package models

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

func (s Severity) Valid() bool {
	return s == SeverityHigh || s == SeverityMedium || s == SeverityLow
}

type OccurrenceStatus string

const (
	StatusOpen       OccurrenceStatus = "OPEN"
	StatusDispatched OccurrenceStatus = "DISPATCHED"
	StatusInService  OccurrenceStatus = "IN_SERVICE"
	StatusConcluded  OccurrenceStatus = "CONCLUDED"
	StatusCancelled  OccurrenceStatus = "CANCELLED"
)

func (s OccurrenceStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// допустимые переходы жизненного цикла вызова
var transitions = map[OccurrenceStatus]map[OccurrenceStatus]bool{
	StatusOpen:       {StatusDispatched: true, StatusCancelled: true},
	StatusDispatched: {StatusInService: true, StatusCancelled: true},
	StatusInService:  {StatusConcluded: true},
	StatusConcluded:  {},
	StatusCancelled:  {},
}

// CanTransition проверяет, разрешён ли переход from -> to
func CanTransition(from, to OccurrenceStatus) bool {
	return transitions[from][to]
}

// IsTerminal - из терминального статуса переходов нет
func (s OccurrenceStatus) IsTerminal() bool {
	return s == StatusConcluded || s == StatusCancelled
}

type Occurrence struct {
	ID                  uuid.UUID        `json:"id"`
	AreaID              string           `json:"area_id"`
	IncidentType        string           `json:"incident_type"`
	Severity            Severity         `json:"severity"`
	Status              OccurrenceStatus `json:"status"`
	OpenedAt            time.Time        `json:"opened_at"`
	ClosedAt            *time.Time       `json:"closed_at,omitempty"`
	Note                string           `json:"note,omitempty"`
	CancelJustification string           `json:"cancel_justification,omitempty"`
}
