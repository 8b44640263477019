package v1

import (
	"time"

	"github.com/google/uuid"
)

// OpenOccurrenceRequest DTO для регистрации вызова
// @Description DTO для регистрации вызова
type OpenOccurrenceRequest struct {
	AreaID       string `json:"area_id" validate:"required"`
	IncidentType string `json:"incident_type" validate:"required,max=120"`
	Severity     string `json:"severity" validate:"required,oneof=HIGH MEDIUM LOW"`
	Note         string `json:"note,omitempty" validate:"max=1000"`
}

// OccurrenceResponse DTO для ответа с информацией о вызове
// @Description DTO для ответа с информацией о вызове
type OccurrenceResponse struct {
	ID                  uuid.UUID  `json:"id"`
	AreaID              string     `json:"area_id"`
	IncidentType        string     `json:"incident_type"`
	Severity            string     `json:"severity"`
	Status              string     `json:"status"`
	OpenedAt            time.Time  `json:"opened_at"`
	ClosedAt            *time.Time `json:"closed_at,omitempty"`
	Note                string     `json:"note,omitempty"`
	CancelJustification string     `json:"cancel_justification,omitempty"`
}

// DispatchRequest DTO для назначения машины на вызов
// @Description DTO для назначения машины на вызов
type DispatchRequest struct {
	OccurrenceID uuid.UUID `json:"occurrence_id" validate:"required"`
	AmbulanceID  uuid.UUID `json:"ambulance_id" validate:"required"`
}

// CancelRequest DTO для отмены вызова
// @Description DTO для отмены вызова
type CancelRequest struct {
	Justification string `json:"justification" validate:"required,max=1000"`
}

// ConcludeRequest DTO для завершения вызова; пустой статус означает AVAILABLE
// @Description DTO для завершения вызова
type ConcludeRequest struct {
	ReleaseStatus string `json:"release_status,omitempty" validate:"omitempty,oneof=AVAILABLE MAINTENANCE INACTIVE"`
}

// CandidateResponse DTO для машины-кандидата
// @Description DTO для машины-кандидата
type CandidateResponse struct {
	AmbulanceID      uuid.UUID  `json:"ambulance_id"`
	Plate            string     `json:"plate"`
	Type             string     `json:"type"`
	HomeAreaID       string     `json:"home_area_id"`
	Distance         float64    `json:"distance"`
	EstimatedMinutes float64    `json:"estimated_minutes"`
	Route            []string   `json:"route"`
	TeamID           *uuid.UUID `json:"team_id,omitempty"`
	TeamDescription  string     `json:"team_description,omitempty"`
}

// AttendanceResponse DTO для выезда
// @Description DTO для выезда
type AttendanceResponse struct {
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

// HistoryResponse DTO для записи истории статусов
// @Description DTO для записи истории статусов
type HistoryResponse struct {
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedAt      time.Time `json:"changed_at"`
	Note           string    `json:"note,omitempty"`
}

// OccurrenceDetailsResponse DTO для карточки вызова
// @Description DTO для карточки вызова
type OccurrenceDetailsResponse struct {
	Occurrence OccurrenceResponse  `json:"occurrence"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
	Ambulance  *AmbulanceResponse  `json:"ambulance,omitempty"`
	Team       *TeamResponse       `json:"team,omitempty"`
	History    []HistoryResponse   `json:"history"`
}

// CreateAmbulanceRequest DTO для регистрации машины
// @Description DTO для регистрации машины
type CreateAmbulanceRequest struct {
	Plate      string `json:"plate" validate:"required,plate"`
	Type       string `json:"type" validate:"required,oneof=BASIC ADVANCED"`
	HomeAreaID string `json:"home_area_id" validate:"required"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE MAINTENANCE INACTIVE UNSTAFFED"`
}

// SetAmbulanceStatusRequest DTO для смены статуса машины
// @Description DTO для смены статуса машины
type SetAmbulanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE MAINTENANCE INACTIVE UNSTAFFED"`
}

// AmbulanceResponse DTO для машины
// @Description DTO для машины
type AmbulanceResponse struct {
	ID         uuid.UUID `json:"id"`
	Plate      string    `json:"plate"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	HomeAreaID string    `json:"home_area_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateProfessionalRequest DTO для регистрации специалиста
// @Description DTO для регистрации специалиста
type CreateProfessionalRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Role    string `json:"role" validate:"required,oneof=PHYSICIAN NURSE DRIVER"`
	Shift   string `json:"shift" validate:"required,oneof=MORNING AFTERNOON NIGHT"`
	Active  *bool  `json:"active,omitempty"`
	Contact string `json:"contact,omitempty" validate:"max=255"`
}

// UpdateProfessionalRequest DTO для изменения специалиста (полная замена)
// @Description DTO для изменения специалиста
type UpdateProfessionalRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Role    string `json:"role" validate:"required,oneof=PHYSICIAN NURSE DRIVER"`
	Shift   string `json:"shift" validate:"required,oneof=MORNING AFTERNOON NIGHT"`
	Active  *bool  `json:"active" validate:"required"`
	Contact string `json:"contact,omitempty" validate:"max=255"`
}

// ProfessionalResponse DTO для специалиста
// @Description DTO для специалиста
type ProfessionalResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	Shift   string    `json:"shift"`
	Active  bool      `json:"active"`
	Contact string    `json:"contact,omitempty"`
}

// TeamRequest DTO для создания и изменения экипажа
// @Description DTO для создания и изменения экипажа
type TeamRequest struct {
	Description string      `json:"description" validate:"max=255"`
	Shift       string      `json:"shift" validate:"required,oneof=MORNING AFTERNOON NIGHT"`
	AmbulanceID *uuid.UUID  `json:"ambulance_id,omitempty"`
	MemberIDs   []uuid.UUID `json:"member_ids" validate:"required,min=1,max=3,dive,required"`
}

// TeamResponse DTO для экипажа
// @Description DTO для экипажа
type TeamResponse struct {
	ID          uuid.UUID   `json:"id"`
	Description string      `json:"description"`
	Shift       string      `json:"shift"`
	AmbulanceID *uuid.UUID  `json:"ambulance_id,omitempty"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
}

// AreaDTO DTO района
// @Description DTO района
type AreaDTO struct {
	ID   string `json:"id" validate:"required,max=64"`
	Name string `json:"name" validate:"required,max=255"`
}

// EdgeDTO DTO ребра графа районов
// @Description DTO ребра графа районов
type EdgeDTO struct {
	From   string  `json:"from" validate:"required"`
	To     string  `json:"to" validate:"required"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

// TopologyRequest DTO для добавления районов и рёбер
// @Description DTO для добавления районов и рёбер
type TopologyRequest struct {
	Areas []AreaDTO `json:"areas" validate:"dive"`
	Edges []EdgeDTO `json:"edges" validate:"dive"`
}

// GraphResponse DTO для результата перестроения графа
// @Description DTO для результата перестроения графа
type GraphResponse struct {
	Areas int `json:"areas"`
	Edges int `json:"edges"`
}
