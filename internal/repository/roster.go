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

type RosterRepository struct {
	db *pgxpool.Pool
}

func NewRosterRepository(db *pgxpool.Pool) service.RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) CreateProfessional(ctx context.Context, p *models.Professional) error {
	query := `
		INSERT INTO professionals (id, name, role, shift, active, contact)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := conn(ctx, r.db).Exec(ctx, query, p.ID, p.Name, p.Role, p.Shift, p.Active, p.Contact); err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (r *RosterRepository) GetProfessional(ctx context.Context, id uuid.UUID) (*models.Professional, error) {
	p := &models.Professional{}
	query := `SELECT id, name, role, shift, active, contact FROM professionals WHERE id = $1;`
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Role, &p.Shift, &p.Active, &p.Contact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("professional", id.String())
		}
		return nil, fmt.Errorf("failed to get professional by id: %w", err)
	}
	return p, nil
}

func (r *RosterRepository) ListProfessionals(ctx context.Context) ([]*models.Professional, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, name, role, shift, active, contact FROM professionals ORDER BY name, id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	defer rows.Close()

	list := make([]*models.Professional, 0)
	for rows.Next() {
		p := &models.Professional{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.Shift, &p.Active, &p.Contact); err != nil {
			return nil, fmt.Errorf("failed to scan professional row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return list, nil
}

func (r *RosterRepository) UpdateProfessional(ctx context.Context, p *models.Professional) error {
	query := `UPDATE professionals SET name = $2, role = $3, shift = $4, active = $5, contact = $6 WHERE id = $1;`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, p.ID, p.Name, p.Role, p.Shift, p.Active, p.Contact)
	if err != nil {
		return fmt.Errorf("failed to update professional: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("professional", p.ID.String())
	}
	return nil
}

func (r *RosterRepository) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM professionals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", conflictOnReference(err, "professional is still referenced"))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("professional", id.String())
	}
	return nil
}

// CreateTeam вызывается внутри транзакции: строка экипажа и состав пишутся вместе
func (r *RosterRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	query := `INSERT INTO teams (id, description, shift, ambulance_id) VALUES ($1, $2, $3, $4);`
	if _, err := conn(ctx, r.db).Exec(ctx, query, team.ID, team.Description, team.Shift, team.AmbulanceID); err != nil {
		return fmt.Errorf("failed to create team: %w", conflictOnUnique(err, "ambulance already staffed on this shift"))
	}
	return r.insertMembers(ctx, team)
}

func (r *RosterRepository) UpdateTeam(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET description = $2, shift = $3, ambulance_id = $4 WHERE id = $1;`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, team.ID, team.Description, team.Shift, team.AmbulanceID)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", conflictOnUnique(err, "ambulance already staffed on this shift"))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("team", team.ID.String())
	}
	if _, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM team_members WHERE team_id = $1;`, team.ID); err != nil {
		return fmt.Errorf("failed to clear team members: %w", err)
	}
	return r.insertMembers(ctx, team)
}

// DeleteTeam: состав удаляется каскадом, ссылки из выездов обнуляются (ON DELETE SET NULL)
func (r *RosterRepository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM teams WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("team", id.String())
	}
	return nil
}

func (r *RosterRepository) insertMembers(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO team_members (team_id, professional_id, shift, position)
		VALUES ($1, $2, $3, $4);
	`
	for i, id := range team.MemberIDs {
		if _, err := conn(ctx, r.db).Exec(ctx, query, team.ID, id, team.Shift, i); err != nil {
			return fmt.Errorf("failed to add team member: %w", conflictOnUnique(err, "professional already in a team on this shift"))
		}
	}
	return nil
}

func (r *RosterRepository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	teams, err := r.listTeams(ctx, `WHERE t.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, apperror.NotFound("team", id.String())
	}
	return teams[0], nil
}

func (r *RosterRepository) ListTeams(ctx context.Context) ([]*models.Team, error) {
	return r.listTeams(ctx, ``)
}

func (r *RosterRepository) TeamsOnShift(ctx context.Context, shift models.Shift) ([]*models.Team, error) {
	return r.listTeams(ctx, `WHERE t.shift = $1`, shift)
}

// listTeams собирает экипажи с составом одним запросом; порядок участников сохраняется
func (r *RosterRepository) listTeams(ctx context.Context, where string, args ...any) ([]*models.Team, error) {
	query := `
		SELECT t.id, t.description, t.shift, t.ambulance_id, m.professional_id
		FROM teams t
		LEFT JOIN team_members m ON m.team_id = t.id
		` + where + `
		ORDER BY t.id, m.position;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	var current *models.Team
	for rows.Next() {
		var (
			t        models.Team
			memberID *uuid.UUID
		)
		if err := rows.Scan(&t.ID, &t.Description, &t.Shift, &t.AmbulanceID, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		if current == nil || current.ID != t.ID {
			current = &t
			current.MemberIDs = make([]uuid.UUID, 0, 3)
			teams = append(teams, current)
		}
		if memberID != nil {
			current.MemberIDs = append(current.MemberIDs, *memberID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return teams, nil
}
