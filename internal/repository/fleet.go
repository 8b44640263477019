package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

const ambulanceColumns = `id, plate, type, status, home_area_id, created_at, updated_at`

type FleetRepository struct {
	db *pgxpool.Pool
}

func NewFleetRepository(db *pgxpool.Pool) service.FleetRepository {
	return &FleetRepository{db: db}
}

func scanAmbulance(row pgx.Row) (*models.Ambulance, error) {
	a := &models.Ambulance{}
	err := row.Scan(&a.ID, &a.Plate, &a.Type, &a.Status, &a.HomeAreaID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *FleetRepository) CreateAmbulance(ctx context.Context, a *models.Ambulance) error {
	query := `
		INSERT INTO ambulances (id, plate, type, status, home_area_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query, a.ID, a.Plate, a.Type, a.Status, a.HomeAreaID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ambulance: %w", conflictOnUnique(err, "plate "+a.Plate+" already registered"))
	}
	return nil
}

func (r *FleetRepository) GetAmbulance(ctx context.Context, id uuid.UUID) (*models.Ambulance, error) {
	query := `SELECT ` + ambulanceColumns + ` FROM ambulances WHERE id = $1;`
	a, err := scanAmbulance(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("ambulance", id.String())
		}
		return nil, fmt.Errorf("failed to get ambulance by id: %w", err)
	}
	return a, nil
}

func (r *FleetRepository) ListAmbulances(ctx context.Context) ([]*models.Ambulance, error) {
	return r.list(ctx, `SELECT `+ambulanceColumns+` FROM ambulances ORDER BY plate;`)
}

func (r *FleetRepository) FindAvailableByType(ctx context.Context, t models.AmbulanceType) ([]*models.Ambulance, error) {
	query := `SELECT ` + ambulanceColumns + ` FROM ambulances WHERE type = $1 AND status = 'AVAILABLE' ORDER BY plate;`
	return r.list(ctx, query, t)
}

func (r *FleetRepository) list(ctx context.Context, query string, args ...any) ([]*models.Ambulance, error) {
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulances: %w", err)
	}
	defer rows.Close()

	ambulances := make([]*models.Ambulance, 0)
	for rows.Next() {
		a, err := scanAmbulance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ambulance row: %w", err)
		}
		ambulances = append(ambulances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return ambulances, nil
}

// Reserve - условный UPDATE: из двух конкурентных вызовов строку обновит только один
func (r *FleetRepository) Reserve(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE ambulances SET status = 'BUSY', updated_at = NOW()
		WHERE id = $1 AND status = 'AVAILABLE';
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to reserve ambulance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.currentStatus(ctx, id); err != nil {
			return err
		}
		return &apperror.AlreadyReservedError{AmbulanceID: id.String()}
	}
	return nil
}

func (r *FleetRepository) Release(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus) error {
	query := `
		UPDATE ambulances SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'BUSY';
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to release ambulance: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	current, err := r.currentStatus(ctx, id)
	if err != nil {
		return err
	}
	if current == status {
		return nil
	}
	return &apperror.InvalidStateError{Entity: "ambulance", ID: id.String(), Current: string(current), Reason: "only BUSY ambulances can be released"}
}

func (r *FleetRepository) SetStatus(ctx context.Context, id uuid.UUID, from, to models.AmbulanceStatus) error {
	query := `
		UPDATE ambulances SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2;
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to set ambulance status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.currentStatus(ctx, id); err != nil {
			return err
		}
		return &apperror.ConflictError{Reason: "ambulance status changed concurrently"}
	}
	return nil
}

func (r *FleetRepository) currentStatus(ctx context.Context, id uuid.UUID) (models.AmbulanceStatus, error) {
	var status models.AmbulanceStatus
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT status FROM ambulances WHERE id = $1;`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.NotFound("ambulance", id.String())
		}
		return "", fmt.Errorf("failed to get ambulance status: %w", err)
	}
	return status, nil
}

func (r *FleetRepository) DeleteAmbulance(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM ambulances WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ambulance: %w", conflictOnReference(err, "ambulance is still referenced"))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("ambulance", id.String())
	}
	return nil
}
