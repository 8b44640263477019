package models

import (
	"time"

	"github.com/google/uuid"
)

type DashboardStats struct {
	OpenOccurrences     int     `json:"open_occurrences"`
	OccurrencesToday    int     `json:"occurrences_today"`
	AmbulancesTotal     int     `json:"ambulances_total"`
	AmbulancesAvailable int     `json:"ambulances_available"`
	Teams               int     `json:"teams"`
	Professionals       int     `json:"professionals"`
	MeanResponseMinutes float64 `json:"mean_response_minutes"`
}

type AreaOccurrenceCount struct {
	AreaID   string `json:"area_id"`
	AreaName string `json:"area_name"`
	Count    int    `json:"count"`
}

type TypeDistance struct {
	Type            AmbulanceType `json:"type"`
	MeanDistance    float64       `json:"mean_distance"`
	AttendanceCount int           `json:"attendance_count"`
}

// AttendanceReportRow - строка выгрузки выездов
type AttendanceReportRow struct {
	AttendanceID     uuid.UUID
	OccurrenceID     uuid.UUID
	AreaID           string
	Severity         Severity
	Plate            string
	AmbulanceType    AmbulanceType
	DispatchedAt     time.Time
	ArrivedAt        *time.Time
	Distance         float64
	EstimatedMinutes float64
	ActualMinutes    *float64
	OutsideSLA       *bool
}
