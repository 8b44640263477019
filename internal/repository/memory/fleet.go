package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func (s *Store) CreateAmbulance(ctx context.Context, a *models.Ambulance) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	for _, other := range s.ambulances {
		if other.Plate == a.Plate {
			return &apperror.ConflictError{Reason: "plate " + a.Plate + " already registered"}
		}
	}
	s.ambulances[a.ID] = cloneAmbulance(a)
	tx.onRollback(func() { delete(s.ambulances, a.ID) })
	return nil
}

func (s *Store) GetAmbulance(ctx context.Context, id uuid.UUID) (*models.Ambulance, error) {
	defer s.rlock(ctx)()
	a, ok := s.ambulances[id]
	if !ok {
		return nil, apperror.NotFound("ambulance", id.String())
	}
	return cloneAmbulance(a), nil
}

func (s *Store) ListAmbulances(ctx context.Context) ([]*models.Ambulance, error) {
	defer s.rlock(ctx)()
	return s.ambulancesWhere(func(*models.Ambulance) bool { return true }), nil
}

func (s *Store) FindAvailableByType(ctx context.Context, t models.AmbulanceType) ([]*models.Ambulance, error) {
	defer s.rlock(ctx)()
	return s.ambulancesWhere(func(a *models.Ambulance) bool {
		return a.Type == t && a.Status == models.AmbulanceAvailable
	}), nil
}

func (s *Store) ambulancesWhere(keep func(*models.Ambulance) bool) []*models.Ambulance {
	out := make([]*models.Ambulance, 0, len(s.ambulances))
	for _, a := range s.ambulances {
		if keep(a) {
			out = append(out, cloneAmbulance(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out
}

// setStatus - сравнение и замена статуса под блокировкой
func (s *Store) setStatus(tx *txState, a *models.Ambulance, to models.AmbulanceStatus) {
	prev, prevUpdated := a.Status, a.UpdatedAt
	a.Status = to
	a.UpdatedAt = time.Now()
	tx.onRollback(func() {
		a.Status = prev
		a.UpdatedAt = prevUpdated
	})
}

func (s *Store) Reserve(ctx context.Context, id uuid.UUID) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	a, ok := s.ambulances[id]
	if !ok {
		return apperror.NotFound("ambulance", id.String())
	}
	if a.Status != models.AmbulanceAvailable {
		return &apperror.AlreadyReservedError{AmbulanceID: id.String()}
	}
	s.setStatus(tx, a, models.AmbulanceBusy)
	return nil
}

func (s *Store) Release(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	a, ok := s.ambulances[id]
	if !ok {
		return apperror.NotFound("ambulance", id.String())
	}
	switch a.Status {
	case status:
		return nil
	case models.AmbulanceBusy:
		s.setStatus(tx, a, status)
		return nil
	default:
		return &apperror.InvalidStateError{Entity: "ambulance", ID: id.String(), Current: string(a.Status), Reason: "only BUSY ambulances can be released"}
	}
}

func (s *Store) SetStatus(ctx context.Context, id uuid.UUID, from, to models.AmbulanceStatus) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	a, ok := s.ambulances[id]
	if !ok {
		return apperror.NotFound("ambulance", id.String())
	}
	if a.Status != from {
		return &apperror.ConflictError{Reason: "ambulance status changed concurrently"}
	}
	s.setStatus(tx, a, to)
	return nil
}

func (s *Store) DeleteAmbulance(ctx context.Context, id uuid.UUID) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	a, ok := s.ambulances[id]
	if !ok {
		return apperror.NotFound("ambulance", id.String())
	}
	delete(s.ambulances, id)
	tx.onRollback(func() { s.ambulances[id] = a })
	return nil
}
