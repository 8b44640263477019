package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/metrics"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/sla"
	"github.com/shenikar/ambulance_dispatch/internal/webhook"
)

// OccurrenceService определяет контракт жизненного цикла вызова.
// Мутирующие методы возвращают актуальное состояние после фиксации.
type OccurrenceService interface {
	Open(ctx context.Context, o *models.Occurrence) (*models.Occurrence, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Occurrence, error)
	List(ctx context.Context, status models.OccurrenceStatus) ([]*models.Occurrence, error)
	Details(ctx context.Context, id uuid.UUID) (*models.OccurrenceDetails, error)
	ConfirmArrival(ctx context.Context, id uuid.UUID) (*models.OccurrenceDetails, error)
	Conclude(ctx context.Context, id uuid.UUID, release models.AmbulanceStatus) (*models.OccurrenceDetails, error)
	Cancel(ctx context.Context, id uuid.UUID, justification string) (*models.OccurrenceDetails, error)
}

type occurrenceService struct {
	lifecycle
	fleet  FleetRepository
	roster RosterRepository
	tx     Transactor
	router Router
}

func NewOccurrenceService(
	occurrences OccurrenceRepository,
	fleet FleetRepository,
	roster RosterRepository,
	tx Transactor,
	router Router,
	cache DetailsCache,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	opts ...Option,
) OccurrenceService {
	o := buildOptions(opts)
	return &occurrenceService{
		lifecycle: lifecycle{
			occurrences: occurrences,
			cache:       cache,
			publisher:   publisher,
			logger:      logger,
			now:         o.now,
		},
		fleet:  fleet,
		roster: roster,
		tx:     tx,
		router: router,
	}
}

// Open регистрирует новый вызов в статусе OPEN
func (s *occurrenceService) Open(ctx context.Context, o *models.Occurrence) (*models.Occurrence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "occurrence",
		"method":   "Open",
		"area_id":  o.AreaID,
		"severity": o.Severity,
	})
	log.Info("Attempting to open a new occurrence")

	if !o.Severity.Valid() {
		return nil, apperror.Validation("severity", fmt.Sprintf("unknown severity %q", o.Severity))
	}
	if strings.TrimSpace(o.IncidentType) == "" {
		return nil, apperror.Validation("incident_type", "must not be empty")
	}
	if !s.router.HasArea(o.AreaID) {
		return nil, apperror.Validation("area_id", fmt.Sprintf("unknown area %q", o.AreaID))
	}

	o.ID = uuid.New()
	o.Status = models.StatusOpen
	o.OpenedAt = s.now()
	o.ClosedAt = nil
	o.CancelJustification = ""

	entry := &models.HistoryEntry{
		OccurrenceID: o.ID,
		NewStatus:    models.StatusOpen,
		ChangedAt:    o.OpenedAt,
		Note:         o.Note,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.occurrences.CreateOccurrence(ctx, o); err != nil {
			return err
		}
		return s.occurrences.AppendHistory(ctx, entry)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create occurrence in repository")
		return nil, fmt.Errorf("service: could not open occurrence: %w", err)
	}

	s.committed(ctx, entry, nil)
	log.WithField("occurrence_id", o.ID).Info("Occurrence opened successfully")
	return o, nil
}

// Get получает вызов по ID
func (s *occurrenceService) Get(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	o, err := s.occurrences.GetOccurrence(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get occurrence: %w", err)
	}
	return o, nil
}

// List возвращает вызовы с заданным статусом (все, если статус пустой)
func (s *occurrenceService) List(ctx context.Context, status models.OccurrenceStatus) ([]*models.Occurrence, error) {
	if status != "" && !status.Valid() {
		return nil, apperror.Validation("status", fmt.Sprintf("unknown status %q", status))
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "occurrence",
		"method":  "List",
		"status":  status,
	})

	list, err := s.occurrences.ListOccurrences(ctx, status)
	if err != nil {
		log.WithError(err).Error("Failed to list occurrences from repository")
		return nil, fmt.Errorf("service: could not list occurrences: %w", err)
	}
	log.WithField("count", len(list)).Debug("Occurrences listed successfully")
	return list, nil
}

// Details возвращает карточку вызова; сначала смотрит в кеш
func (s *occurrenceService) Details(ctx context.Context, id uuid.UUID) (*models.OccurrenceDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "Details",
		"occurrence_id": id,
	})

	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read occurrence details from cache")
	}
	metrics.IncCacheLookup(cached != nil)
	if cached != nil {
		return cached, nil
	}

	// версия читается до загрузки: переход, закоммиченный во время чтения,
	// сделает эту запись невидимой для Get
	version, versionErr := s.cache.Version(ctx, id)
	if versionErr != nil {
		log.WithError(versionErr).Warn("Failed to read occurrence details cache version")
	}

	details, err := s.loadDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	if versionErr == nil {
		if err := s.cache.Set(ctx, details, version); err != nil {
			log.WithError(err).Warn("Failed to store occurrence details in cache")
		}
	}
	return details, nil
}

func (s *occurrenceService) loadDetails(ctx context.Context, id uuid.UUID) (*models.OccurrenceDetails, error) {
	o, err := s.occurrences.GetOccurrence(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get occurrence: %w", err)
	}
	details := &models.OccurrenceDetails{Occurrence: o}

	if details.Attendance, err = s.occurrences.GetAttendanceByOccurrence(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get attendance: %w", err)
	}
	if a := details.Attendance; a != nil {
		if details.Ambulance, err = s.fleet.GetAmbulance(ctx, a.AmbulanceID); err != nil {
			return nil, fmt.Errorf("service: could not get ambulance: %w", err)
		}
		if a.TeamID != nil {
			team, err := s.roster.GetTeam(ctx, *a.TeamID)
			var notFound *apperror.NotFoundError
			switch {
			case errors.As(err, &notFound):
			case err != nil:
				return nil, fmt.Errorf("service: could not get team: %w", err)
			default:
				details.Team = team
			}
		}
	}

	if details.History, err = s.occurrences.ListHistory(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get history: %w", err)
	}
	return details, nil
}

// ConfirmArrival: DISPATCHED -> IN_SERVICE, фиксирует время прибытия и исход SLA
func (s *occurrenceService) ConfirmArrival(ctx context.Context, id uuid.UUID) (*models.OccurrenceDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "ConfirmArrival",
		"occurrence_id": id,
	})
	log.Info("Confirming arrival")

	o, err := s.occurrences.GetOccurrence(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get occurrence: %w", err)
	}
	if !models.CanTransition(o.Status, models.StatusInService) {
		return nil, &apperror.InvalidTransitionError{From: string(o.Status), To: string(models.StatusInService)}
	}

	var (
		entry      *models.HistoryEntry
		attendance *models.Attendance
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.occurrences.GetAttendanceByOccurrence(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return &apperror.InvalidStateError{Entity: "occurrence", ID: id.String(), Current: string(o.Status), Reason: "no attendance recorded"}
		}

		arrived := s.now()
		actual := arrived.Sub(a.DispatchedAt).Minutes()
		if actual < 0 {
			actual = 0
		}
		outside := sla.Policy{MaxMinutes: a.SLAMaxMinutes}.Exceeded(actual)
		a.ArrivedAt = &arrived
		a.ActualMinutes = &actual
		a.OutsideSLA = &outside
		if err := s.occurrences.UpdateAttendance(ctx, a); err != nil {
			return err
		}
		attendance = a

		entry, err = s.transition(ctx, o, models.StatusInService, "arrival confirmed")
		return err
	})
	if err != nil {
		log.WithError(err).Warn("Failed to confirm arrival")
		return nil, fmt.Errorf("service: could not confirm arrival: %w", err)
	}

	metrics.IncSLAOutcome(string(o.Severity), *attendance.OutsideSLA)
	s.committed(ctx, entry, &attendance.AmbulanceID)
	log.WithFields(logrus.Fields{
		"actual_minutes": *attendance.ActualMinutes,
		"outside_sla":    *attendance.OutsideSLA,
	}).Info("Arrival confirmed")
	return s.loadDetails(ctx, id)
}

// Conclude: IN_SERVICE -> CONCLUDED, освобождает машину в статус release
func (s *occurrenceService) Conclude(ctx context.Context, id uuid.UUID, release models.AmbulanceStatus) (*models.OccurrenceDetails, error) {
	if release == "" {
		release = models.AmbulanceAvailable
	}
	switch release {
	case models.AmbulanceAvailable, models.AmbulanceMaintenance, models.AmbulanceInactive:
	default:
		return nil, apperror.Validation("release_status", fmt.Sprintf("cannot release ambulance to %q", release))
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":        "occurrence",
		"method":         "Conclude",
		"occurrence_id":  id,
		"release_status": release,
	})
	log.Info("Concluding occurrence")

	o, err := s.occurrences.GetOccurrence(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get occurrence: %w", err)
	}
	if !models.CanTransition(o.Status, models.StatusConcluded) {
		return nil, &apperror.InvalidTransitionError{From: string(o.Status), To: string(models.StatusConcluded)}
	}

	var (
		entry       *models.HistoryEntry
		ambulanceID *uuid.UUID
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		closed := s.now()
		o.ClosedAt = &closed
		var err error
		if entry, err = s.transition(ctx, o, models.StatusConcluded, "attendance completed"); err != nil {
			return err
		}
		a, err := s.occurrences.GetAttendanceByOccurrence(ctx, id)
		if err != nil || a == nil {
			return err
		}
		ambulanceID = &a.AmbulanceID
		return s.fleet.Release(ctx, a.AmbulanceID, release)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to conclude occurrence")
		return nil, fmt.Errorf("service: could not conclude occurrence: %w", err)
	}

	s.committed(ctx, entry, ambulanceID)
	log.Info("Occurrence concluded")
	return s.loadDetails(ctx, id)
}

// Cancel: OPEN/DISPATCHED -> CANCELLED. Требует обоснование; при наличии
// выезда машина возвращается в AVAILABLE.
func (s *occurrenceService) Cancel(ctx context.Context, id uuid.UUID, justification string) (*models.OccurrenceDetails, error) {
	justification = strings.TrimSpace(justification)
	if justification == "" {
		return nil, apperror.Validation("justification", "must not be empty")
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":       "occurrence",
		"method":        "Cancel",
		"occurrence_id": id,
	})
	log.Info("Cancelling occurrence")

	o, err := s.occurrences.GetOccurrence(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get occurrence: %w", err)
	}
	if !models.CanTransition(o.Status, models.StatusCancelled) {
		return nil, &apperror.InvalidTransitionError{From: string(o.Status), To: string(models.StatusCancelled)}
	}

	var (
		entry       *models.HistoryEntry
		ambulanceID *uuid.UUID
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		closed := s.now()
		o.ClosedAt = &closed
		o.CancelJustification = justification
		var err error
		if entry, err = s.transition(ctx, o, models.StatusCancelled, justification); err != nil {
			return err
		}
		a, err := s.occurrences.GetAttendanceByOccurrence(ctx, id)
		if err != nil || a == nil {
			return err
		}
		ambulanceID = &a.AmbulanceID
		return s.fleet.Release(ctx, a.AmbulanceID, models.AmbulanceAvailable)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to cancel occurrence")
		return nil, fmt.Errorf("service: could not cancel occurrence: %w", err)
	}

	s.committed(ctx, entry, ambulanceID)
	log.Info("Occurrence cancelled")
	return s.loadDetails(ctx, id)
}
