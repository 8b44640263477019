package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

const (
	occurrenceColumns = `id, area_id, incident_type, severity, status, opened_at, closed_at, note, cancel_justification`
	attendanceColumns = `id, occurrence_id, ambulance_id, team_id, dispatched_at, arrived_at, distance, route,
		estimated_minutes, actual_minutes, sla_max_minutes, outside_sla`
)

type OccurrenceRepository struct {
	db *pgxpool.Pool
}

func NewOccurrenceRepository(db *pgxpool.Pool) service.OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

func scanOccurrence(row pgx.Row) (*models.Occurrence, error) {
	o := &models.Occurrence{}
	err := row.Scan(&o.ID, &o.AreaID, &o.IncidentType, &o.Severity, &o.Status,
		&o.OpenedAt, &o.ClosedAt, &o.Note, &o.CancelJustification)
	return o, err
}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	a := &models.Attendance{}
	err := row.Scan(&a.ID, &a.OccurrenceID, &a.AmbulanceID, &a.TeamID, &a.DispatchedAt, &a.ArrivedAt,
		&a.Distance, &a.Route, &a.EstimatedMinutes, &a.ActualMinutes, &a.SLAMaxMinutes, &a.OutsideSLA)
	return a, err
}

func (r *OccurrenceRepository) CreateOccurrence(ctx context.Context, o *models.Occurrence) error {
	query := `
		INSERT INTO occurrences (` + occurrenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, o.ID, o.AreaID, o.IncidentType, o.Severity, o.Status,
		o.OpenedAt, o.ClosedAt, o.Note, o.CancelJustification)
	if err != nil {
		return fmt.Errorf("failed to create occurrence: %w", err)
	}
	return nil
}

func (r *OccurrenceRepository) GetOccurrence(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + ` FROM occurrences WHERE id = $1;`
	o, err := scanOccurrence(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("occurrence", id.String())
		}
		return nil, fmt.Errorf("failed to get occurrence by id: %w", err)
	}
	return o, nil
}

func (r *OccurrenceRepository) ListOccurrences(ctx context.Context, status models.OccurrenceStatus) ([]*models.Occurrence, error) {
	query := `
		SELECT ` + occurrenceColumns + ` FROM occurrences
		WHERE $1::text = '' OR status = $1::text
		ORDER BY opened_at DESC, id;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	defer rows.Close()

	list := make([]*models.Occurrence, 0)
	for rows.Next() {
		o, err := scanOccurrence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan occurrence row: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return list, nil
}

// UpdateOccurrenceStatus - compare-and-set по текущему статусу
func (r *OccurrenceRepository) UpdateOccurrenceStatus(ctx context.Context, o *models.Occurrence, from models.OccurrenceStatus) error {
	query := `
		UPDATE occurrences SET status = $2, closed_at = $3, cancel_justification = $4
		WHERE id = $1 AND status = $5;
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, o.ID, o.Status, o.ClosedAt, o.CancelJustification, from)
	if err != nil {
		return fmt.Errorf("failed to update occurrence status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetOccurrence(ctx, o.ID); err != nil {
			return err
		}
		return &apperror.ConflictError{Reason: "occurrence status changed concurrently"}
	}
	return nil
}

func (r *OccurrenceRepository) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	query := `
		INSERT INTO occurrence_history (occurrence_id, previous_status, new_status, changed_at, note)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query, entry.OccurrenceID, entry.PreviousStatus, entry.NewStatus,
		entry.ChangedAt, entry.Note).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

func (r *OccurrenceRepository) ListHistory(ctx context.Context, occurrenceID uuid.UUID) ([]*models.HistoryEntry, error) {
	query := `
		SELECT id, occurrence_id, previous_status, new_status, changed_at, note
		FROM occurrence_history WHERE occurrence_id = $1 ORDER BY id;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, occurrenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	list := make([]*models.HistoryEntry, 0)
	for rows.Next() {
		h := &models.HistoryEntry{}
		if err := rows.Scan(&h.ID, &h.OccurrenceID, &h.PreviousStatus, &h.NewStatus, &h.ChangedAt, &h.Note); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		list = append(list, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return list, nil
}

func (r *OccurrenceRepository) CreateAttendance(ctx context.Context, a *models.Attendance) error {
	query := `
		INSERT INTO attendances (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, a.ID, a.OccurrenceID, a.AmbulanceID, a.TeamID, a.DispatchedAt,
		a.ArrivedAt, a.Distance, a.Route, a.EstimatedMinutes, a.ActualMinutes, a.SLAMaxMinutes, a.OutsideSLA)
	if err != nil {
		return fmt.Errorf("failed to create attendance: %w", conflictOnUnique(err, "occurrence already has an attendance"))
	}
	return nil
}

func (r *OccurrenceRepository) GetAttendanceByOccurrence(ctx context.Context, occurrenceID uuid.UUID) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE occurrence_id = $1;`
	a, err := scanAttendance(conn(ctx, r.db).QueryRow(ctx, query, occurrenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

// UpdateAttendance дописывает данные прибытия
func (r *OccurrenceRepository) UpdateAttendance(ctx context.Context, a *models.Attendance) error {
	query := `
		UPDATE attendances SET arrived_at = $2, actual_minutes = $3, outside_sla = $4
		WHERE id = $1;
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, a.ID, a.ArrivedAt, a.ActualMinutes, a.OutsideSLA)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NotFound("attendance", a.ID.String())
	}
	return nil
}

func (r *OccurrenceRepository) ListAttendances(ctx context.Context, from, to time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + ` FROM attendances
		WHERE ($1::timestamptz IS NULL OR dispatched_at >= $1)
		  AND ($2::timestamptz IS NULL OR dispatched_at < $2)
		ORDER BY dispatched_at;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, nullTime(from), nullTime(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	list := make([]*models.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return list, nil
}

func (r *OccurrenceRepository) CountAttendancesByAmbulance(ctx context.Context, ambulanceID uuid.UUID) (int, error) {
	var count int
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE ambulance_id = $1;`, ambulanceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendances: %w", err)
	}
	return count, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
