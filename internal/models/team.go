package models

import "github.com/google/uuid"

// Team - экипаж: машина + упорядоченный список профессионалов на одну смену
type Team struct {
	ID          uuid.UUID   `json:"id"`
	Description string      `json:"description"`
	Shift       Shift       `json:"shift"`
	AmbulanceID *uuid.UUID  `json:"ambulance_id,omitempty"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
}

// HasMember сообщает, входит ли профессионал в экипаж
func (t *Team) HasMember(id uuid.UUID) bool {
	for _, m := range t.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}
