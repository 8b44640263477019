package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func (s *Store) CreateProfessional(ctx context.Context, p *models.Professional) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	s.professionals[p.ID] = cloneProfessional(p)
	tx.onRollback(func() { delete(s.professionals, p.ID) })
	return nil
}

func (s *Store) GetProfessional(ctx context.Context, id uuid.UUID) (*models.Professional, error) {
	defer s.rlock(ctx)()
	p, ok := s.professionals[id]
	if !ok {
		return nil, apperror.NotFound("professional", id.String())
	}
	return cloneProfessional(p), nil
}

func (s *Store) ListProfessionals(ctx context.Context) ([]*models.Professional, error) {
	defer s.rlock(ctx)()
	out := make([]*models.Professional, 0, len(s.professionals))
	for _, p := range s.professionals {
		out = append(out, cloneProfessional(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *Store) UpdateProfessional(ctx context.Context, p *models.Professional) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	prev, ok := s.professionals[p.ID]
	if !ok {
		return apperror.NotFound("professional", p.ID.String())
	}
	s.professionals[p.ID] = cloneProfessional(p)
	tx.onRollback(func() { s.professionals[p.ID] = prev })
	return nil
}

func (s *Store) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	p, ok := s.professionals[id]
	if !ok {
		return apperror.NotFound("professional", id.String())
	}
	delete(s.professionals, id)
	tx.onRollback(func() { s.professionals[id] = p })
	return nil
}

func (s *Store) CreateTeam(ctx context.Context, team *models.Team) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	if _, ok := s.teams[team.ID]; ok {
		return &apperror.ConflictError{Reason: "team " + team.ID.String() + " already exists"}
	}
	s.teams[team.ID] = cloneTeam(team)
	tx.onRollback(func() { delete(s.teams, team.ID) })
	return nil
}

func (s *Store) UpdateTeam(ctx context.Context, team *models.Team) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	prev, ok := s.teams[team.ID]
	if !ok {
		return apperror.NotFound("team", team.ID.String())
	}
	s.teams[team.ID] = cloneTeam(team)
	tx.onRollback(func() { s.teams[team.ID] = prev })
	return nil
}

// DeleteTeam обнуляет ссылки из выездов, как ON DELETE SET NULL в схеме
func (s *Store) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	t, ok := s.teams[id]
	if !ok {
		return apperror.NotFound("team", id.String())
	}
	delete(s.teams, id)
	tx.onRollback(func() { s.teams[id] = t })

	for key, a := range s.attendances {
		if a.TeamID == nil || *a.TeamID != id {
			continue
		}
		prev := a
		updated := cloneAttendance(a)
		updated.TeamID = nil
		s.attendances[key] = updated
		tx.onRollback(func() { s.attendances[key] = prev })
	}
	return nil
}

func (s *Store) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	defer s.rlock(ctx)()
	t, ok := s.teams[id]
	if !ok {
		return nil, apperror.NotFound("team", id.String())
	}
	return cloneTeam(t), nil
}

func (s *Store) ListTeams(ctx context.Context) ([]*models.Team, error) {
	defer s.rlock(ctx)()
	return s.teamsWhere(func(*models.Team) bool { return true }), nil
}

func (s *Store) TeamsOnShift(ctx context.Context, shift models.Shift) ([]*models.Team, error) {
	defer s.rlock(ctx)()
	return s.teamsWhere(func(t *models.Team) bool { return t.Shift == shift }), nil
}

func (s *Store) teamsWhere(keep func(*models.Team) bool) []*models.Team {
	out := make([]*models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if keep(t) {
			out = append(out, cloneTeam(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}
