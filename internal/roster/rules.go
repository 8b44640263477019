// Package roster содержит правила формирования экипажей: состав по типу машины
// и исключительность машины и специалистов в пределах смены.
package roster

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

type composition struct {
	physicians, nurses, drivers int
}

var required = map[models.AmbulanceType]composition{
	models.AmbulanceAdvanced: {physicians: 1, nurses: 1, drivers: 1},
	models.AmbulanceBasic:    {physicians: 0, nurses: 1, drivers: 1},
}

func count(members []*models.Professional) composition {
	var c composition
	for _, m := range members {
		switch m.Role {
		case models.RolePhysician:
			c.physicians++
		case models.RoleNurse:
			c.nurses++
		case models.RoleDriver:
			c.drivers++
		}
	}
	return c
}

// ValidateComposition проверяет состав экипажа. Без машины состав должен
// подходить хотя бы под один тип.
func ValidateComposition(ambulance *models.Ambulance, members []*models.Professional) error {
	seen := make(map[uuid.UUID]struct{}, len(members))
	for _, m := range members {
		if _, dup := seen[m.ID]; dup {
			return &apperror.CompositionError{Reason: fmt.Sprintf("professional %s listed twice", m.ID)}
		}
		seen[m.ID] = struct{}{}
	}

	got := count(members)
	if ambulance == nil {
		for _, want := range required {
			if got == want {
				return nil
			}
		}
		return &apperror.CompositionError{Reason: fmt.Sprintf(
			"team must match BASIC or ADVANCED crew, got %d physician(s), %d nurse(s), %d driver(s)",
			got.physicians, got.nurses, got.drivers)}
	}

	want, ok := required[ambulance.Type]
	if !ok {
		return &apperror.CompositionError{Reason: fmt.Sprintf("unknown ambulance type %q", ambulance.Type)}
	}
	if got != want {
		return &apperror.CompositionError{Reason: fmt.Sprintf(
			"%s ambulance requires %d physician(s), %d nurse(s), %d driver(s); got %d, %d, %d",
			ambulance.Type, want.physicians, want.nurses, want.drivers,
			got.physicians, got.nurses, got.drivers)}
	}
	return nil
}

// ValidateMembers - все специалисты активны и работают в смену экипажа
func ValidateMembers(team *models.Team, members []*models.Professional) error {
	for _, m := range members {
		if !m.Active {
			return apperror.Validation("member_ids", fmt.Sprintf("professional %s is inactive", m.ID))
		}
		if m.Shift != team.Shift {
			return apperror.Validation("member_ids", fmt.Sprintf("professional %s works %s shift, team is %s", m.ID, m.Shift, team.Shift))
		}
	}
	return nil
}

// CheckExclusivity отклоняет повторное использование машины или специалиста
// в другом экипаже той же смены. Сам экипаж (по id) из сравнения исключается.
func CheckExclusivity(team *models.Team, sameShift []*models.Team) error {
	for _, other := range sameShift {
		if other.ID == team.ID || other.Shift != team.Shift {
			continue
		}
		if team.AmbulanceID != nil && other.AmbulanceID != nil && *team.AmbulanceID == *other.AmbulanceID {
			return &apperror.ExclusivityError{
				Resource:      "ambulance",
				ResourceID:    team.AmbulanceID.String(),
				ConflictingID: other.ID.String(),
			}
		}
		for _, id := range team.MemberIDs {
			if other.HasMember(id) {
				return &apperror.ExclusivityError{
					Resource:      "professional",
					ResourceID:    id.String(),
					ConflictingID: other.ID.String(),
				}
			}
		}
	}
	return nil
}
