package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RolePhysician Role = "PHYSICIAN"
	RoleNurse     Role = "NURSE"
	RoleDriver    Role = "DRIVER"
)

func (r Role) Valid() bool {
	return r == RolePhysician || r == RoleNurse || r == RoleDriver
}

type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
	ShiftNight     Shift = "NIGHT"
)

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftAfternoon || s == ShiftNight
}

// ShiftAt возвращает смену, в которую попадает момент t:
// утро 06:00–14:00, день 14:00–22:00, ночь 22:00–06:00.
func ShiftAt(t time.Time) Shift {
	h := t.Hour()
	switch {
	case h >= 6 && h < 14:
		return ShiftMorning
	case h >= 14 && h < 22:
		return ShiftAfternoon
	default:
		return ShiftNight
	}
}

type Professional struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Role    Role      `json:"role"`
	Shift   Shift     `json:"shift"`
	Active  bool      `json:"active"`
	Contact string    `json:"contact"`
}
