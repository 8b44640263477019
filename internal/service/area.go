package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/graph"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// AreaService - топология районов. Граф перестраивается целиком.
type AreaService interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	SaveTopology(ctx context.Context, areas []models.Area, edges []models.Edge) error
	Reload(ctx context.Context) (*graph.Graph, error)
}

type areaService struct {
	repo   AreaRepository
	holder *graph.Holder
	tx     Transactor
	logger *logrus.Logger
}

func NewAreaService(repo AreaRepository, holder *graph.Holder, tx Transactor, logger *logrus.Logger) AreaService {
	return &areaService{
		repo:   repo,
		holder: holder,
		tx:     tx,
		logger: logger,
	}
}

func (s *areaService) ListAreas(ctx context.Context) ([]models.Area, error) {
	if g := s.holder.Load(); g != nil {
		return g.Areas(), nil
	}
	areas, err := s.repo.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}
	return areas, nil
}

// SaveTopology проверяет районы и рёбра построением графа, сохраняет их
// и подменяет текущий граф.
func (s *areaService) SaveTopology(ctx context.Context, areas []models.Area, edges []models.Edge) error {
	storedAreas, err := s.repo.ListAreas(ctx)
	if err != nil {
		return fmt.Errorf("service: could not list areas: %w", err)
	}
	storedEdges, err := s.repo.ListEdges(ctx)
	if err != nil {
		return fmt.Errorf("service: could not list edges: %w", err)
	}
	if _, err := graph.Build(mergeAreas(storedAreas, areas), mergeEdges(storedEdges, edges)); err != nil {
		return fmt.Errorf("service: invalid topology: %w", err)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for i := range areas {
			if err := s.repo.UpsertArea(ctx, &areas[i]); err != nil {
				return err
			}
		}
		for i := range edges {
			if err := s.repo.UpsertEdge(ctx, &edges[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("service: could not save topology: %w", err)
	}
	_, err = s.Reload(ctx)
	return err
}

// Reload строит граф из хранилища и подменяет текущий снимок
func (s *areaService) Reload(ctx context.Context) (*graph.Graph, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "Reload",
	})

	areas, err := s.repo.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}
	edges, err := s.repo.ListEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list edges: %w", err)
	}

	g, err := graph.Build(areas, edges)
	if err != nil {
		log.WithError(err).Error("Stored topology is invalid")
		return nil, fmt.Errorf("service: could not build graph: %w", err)
	}
	s.holder.Swap(g)

	log.WithFields(logrus.Fields{
		"areas": len(areas),
		"edges": g.EdgeCount(),
	}).Info("Area graph reloaded")
	return g, nil
}

func mergeAreas(stored, added []models.Area) []models.Area {
	byID := make(map[string]int, len(stored)+len(added))
	out := make([]models.Area, 0, len(stored)+len(added))
	for _, a := range append(append([]models.Area{}, stored...), added...) {
		if i, ok := byID[a.ID]; ok {
			out[i] = a
			continue
		}
		byID[a.ID] = len(out)
		out = append(out, a)
	}
	return out
}

// mergeEdges заменяет вес уже сохранённого ребра (в любом направлении)
func mergeEdges(stored, added []models.Edge) []models.Edge {
	key := func(e models.Edge) [2]string {
		if e.From > e.To {
			return [2]string{e.To, e.From}
		}
		return [2]string{e.From, e.To}
	}
	byPair := make(map[[2]string]int, len(stored)+len(added))
	out := make([]models.Edge, 0, len(stored)+len(added))
	for _, e := range append(append([]models.Edge{}, stored...), added...) {
		if i, ok := byPair[key(e)]; ok {
			out[i] = e
			continue
		}
		byPair[key(e)] = len(out)
		out = append(out, e)
	}
	return out
}
