package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AmbulanceType string

const (
	AmbulanceBasic    AmbulanceType = "BASIC"
	AmbulanceAdvanced AmbulanceType = "ADVANCED"
)

func (t AmbulanceType) Valid() bool {
	return t == AmbulanceBasic || t == AmbulanceAdvanced
}

type AmbulanceStatus string

const (
	AmbulanceAvailable   AmbulanceStatus = "AVAILABLE"
	AmbulanceBusy        AmbulanceStatus = "BUSY"
	AmbulanceMaintenance AmbulanceStatus = "MAINTENANCE"
	AmbulanceInactive    AmbulanceStatus = "INACTIVE"
	AmbulanceUnstaffed   AmbulanceStatus = "UNSTAFFED"
)

func (s AmbulanceStatus) Valid() bool {
	switch s {
	case AmbulanceAvailable, AmbulanceBusy, AmbulanceMaintenance, AmbulanceInactive, AmbulanceUnstaffed:
		return true
	}
	return false
}

type Ambulance struct {
	ID         uuid.UUID       `json:"id"`
	Plate      string          `json:"plate"`
	Type       AmbulanceType   `json:"type"`
	Status     AmbulanceStatus `json:"status"`
	HomeAreaID string          `json:"home_area_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// старый формат ABC1234 и Mercosul ABC1D23
var plateRe = regexp.MustCompile(`^([A-Z]{3}\d{4}|[A-Z]{3}\d[A-Z]\d{2})$`)

var plateStrip = regexp.MustCompile(`[^A-Za-z0-9]`)

// NormalizePlate приводит номер к каноническому виду (без разделителей, верхний регистр)
// и сообщает, соответствует ли он допустимому формату.
func NormalizePlate(plate string) (string, bool) {
	clean := strings.ToUpper(plateStrip.ReplaceAllString(plate, ""))
	return clean, plateRe.MatchString(clean)
}
