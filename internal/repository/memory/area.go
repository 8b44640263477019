package memory

import (
	"context"
	"sort"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func (s *Store) ListAreas(ctx context.Context) ([]models.Area, error) {
	defer s.rlock(ctx)()
	out := make([]models.Area, 0, len(s.areas))
	for _, a := range s.areas {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListEdges(ctx context.Context) ([]models.Edge, error) {
	defer s.rlock(ctx)()
	out := make([]models.Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out, nil
}

func (s *Store) UpsertArea(ctx context.Context, area *models.Area) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	prev, existed := s.areas[area.ID]
	s.areas[area.ID] = *area
	tx.onRollback(func() {
		if existed {
			s.areas[area.ID] = prev
		} else {
			delete(s.areas, area.ID)
		}
	})
	return nil
}

// UpsertEdge - ребро неориентированное, A-B и B-A это одно ребро
func (s *Store) UpsertEdge(ctx context.Context, edge *models.Edge) error {
	tx, unlock := s.lock(ctx)
	defer unlock()

	k := keyOf(*edge)
	prev, existed := s.edges[k]
	s.edges[k] = *edge
	tx.onRollback(func() {
		if existed {
			s.edges[k] = prev
		} else {
			delete(s.edges, k)
		}
	})
	return nil
}
