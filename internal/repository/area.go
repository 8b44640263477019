package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

type AreaRepository struct {
	db *pgxpool.Pool
}

func NewAreaRepository(db *pgxpool.Pool) service.AreaRepository {
	return &AreaRepository{db: db}
}

func (r *AreaRepository) ListAreas(ctx context.Context) ([]models.Area, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, name FROM areas ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	areas := make([]models.Area, 0)
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return areas, nil
}

func (r *AreaRepository) ListEdges(ctx context.Context) ([]models.Edge, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT area_a, area_b, weight FROM area_edges ORDER BY area_a, area_b;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list edges: %w", err)
	}
	defer rows.Close()

	edges := make([]models.Edge, 0)
	for rows.Next() {
		var e models.Edge
		if err := rows.Scan(&e.From, &e.To, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge row: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return edges, nil
}

func (r *AreaRepository) UpsertArea(ctx context.Context, area *models.Area) error {
	query := `
		INSERT INTO areas (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;
	`
	if _, err := conn(ctx, r.db).Exec(ctx, query, area.ID, area.Name); err != nil {
		return fmt.Errorf("failed to upsert area: %w", err)
	}
	return nil
}

// UpsertEdge хранит ребро с упорядоченными концами
func (r *AreaRepository) UpsertEdge(ctx context.Context, edge *models.Edge) error {
	a, b := edge.From, edge.To
	if a > b {
		a, b = b, a
	}
	query := `
		INSERT INTO area_edges (area_a, area_b, weight) VALUES ($1, $2, $3)
		ON CONFLICT (area_a, area_b) DO UPDATE SET weight = EXCLUDED.weight;
	`
	if _, err := conn(ctx, r.db).Exec(ctx, query, a, b, edge.Weight); err != nil {
		return fmt.Errorf("failed to upsert edge: %w", err)
	}
	return nil
}
