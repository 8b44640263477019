package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func (s *Store) CreateOccurrence(ctx context.Context, o *models.Occurrence) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	if _, ok := s.occurrences[o.ID]; ok {
		return &apperror.ConflictError{Reason: "occurrence " + o.ID.String() + " already exists"}
	}
	s.occurrences[o.ID] = cloneOccurrence(o)
	tx.onRollback(func() { delete(s.occurrences, o.ID) })
	return nil
}

func (s *Store) GetOccurrence(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	defer s.rlock(ctx)()
	o, ok := s.occurrences[id]
	if !ok {
		return nil, apperror.NotFound("occurrence", id.String())
	}
	return cloneOccurrence(o), nil
}

// ListOccurrences - от новых к старым
func (s *Store) ListOccurrences(ctx context.Context, status models.OccurrenceStatus) ([]*models.Occurrence, error) {
	defer s.rlock(ctx)()
	out := make([]*models.Occurrence, 0, len(s.occurrences))
	for _, o := range s.occurrences {
		if status == "" || o.Status == status {
			out = append(out, cloneOccurrence(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OpenedAt.Equal(out[j].OpenedAt) {
			return out[i].OpenedAt.After(out[j].OpenedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *Store) UpdateOccurrenceStatus(ctx context.Context, o *models.Occurrence, from models.OccurrenceStatus) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	cur, ok := s.occurrences[o.ID]
	if !ok {
		return apperror.NotFound("occurrence", o.ID.String())
	}
	if cur.Status != from {
		return &apperror.ConflictError{Reason: "occurrence status changed concurrently"}
	}
	s.occurrences[o.ID] = cloneOccurrence(o)
	tx.onRollback(func() { s.occurrences[o.ID] = cur })
	return nil
}

func (s *Store) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	s.historySeq++
	entry.ID = s.historySeq
	c := *entry
	s.history[entry.OccurrenceID] = append(s.history[entry.OccurrenceID], &c)
	tx.onRollback(func() {
		list := s.history[entry.OccurrenceID]
		s.history[entry.OccurrenceID] = list[:len(list)-1]
	})
	return nil
}

func (s *Store) ListHistory(ctx context.Context, occurrenceID uuid.UUID) ([]*models.HistoryEntry, error) {
	defer s.rlock(ctx)()
	list := s.history[occurrenceID]
	out := make([]*models.HistoryEntry, 0, len(list))
	for _, h := range list {
		c := *h
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) CreateAttendance(ctx context.Context, a *models.Attendance) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	if _, ok := s.attendances[a.OccurrenceID]; ok {
		return &apperror.ConflictError{Reason: "occurrence " + a.OccurrenceID.String() + " already has an attendance"}
	}
	s.attendances[a.OccurrenceID] = cloneAttendance(a)
	tx.onRollback(func() { delete(s.attendances, a.OccurrenceID) })
	return nil
}

func (s *Store) GetAttendanceByOccurrence(ctx context.Context, occurrenceID uuid.UUID) (*models.Attendance, error) {
	defer s.rlock(ctx)()
	a, ok := s.attendances[occurrenceID]
	if !ok {
		return nil, nil
	}
	return cloneAttendance(a), nil
}

func (s *Store) UpdateAttendance(ctx context.Context, a *models.Attendance) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	prev, ok := s.attendances[a.OccurrenceID]
	if !ok || prev.ID != a.ID {
		return apperror.NotFound("attendance", a.ID.String())
	}
	s.attendances[a.OccurrenceID] = cloneAttendance(a)
	tx.onRollback(func() { s.attendances[a.OccurrenceID] = prev })
	return nil
}

func (s *Store) ListAttendances(ctx context.Context, from, to time.Time) ([]*models.Attendance, error) {
	defer s.rlock(ctx)()
	out := make([]*models.Attendance, 0, len(s.attendances))
	for _, a := range s.attendances {
		if !from.IsZero() && a.DispatchedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !a.DispatchedAt.Before(to) {
			continue
		}
		out = append(out, cloneAttendance(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DispatchedAt.Before(out[j].DispatchedAt) })
	return out, nil
}

func (s *Store) CountAttendancesByAmbulance(ctx context.Context, ambulanceID uuid.UUID) (int, error) {
	defer s.rlock(ctx)()
	n := 0
	for _, a := range s.attendances {
		if a.AmbulanceID == ambulanceID {
			n++
		}
	}
	return n, nil
}
