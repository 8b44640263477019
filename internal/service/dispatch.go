package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/metrics"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/sla"
	"github.com/shenikar/ambulance_dispatch/internal/webhook"
)

// DispatchService определяет контракт подбора и назначения машин на вызов
type DispatchService interface {
	FindCandidates(ctx context.Context, occurrenceID uuid.UUID) ([]*models.Candidate, error)
	Dispatch(ctx context.Context, occurrenceID, ambulanceID uuid.UUID) (*models.Attendance, error)
}

type dispatchService struct {
	lifecycle
	fleet     FleetRepository
	roster    RosterRepository
	tx        Transactor
	router    Router
	estimator *sla.Estimator
}

func NewDispatchService(
	occurrences OccurrenceRepository,
	fleet FleetRepository,
	roster RosterRepository,
	tx Transactor,
	router Router,
	estimator *sla.Estimator,
	cache DetailsCache,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	opts ...Option,
) DispatchService {
	o := buildOptions(opts)
	return &dispatchService{
		lifecycle: lifecycle{
			occurrences: occurrences,
			cache:       cache,
			publisher:   publisher,
			logger:      logger,
			now:         o.now,
		},
		fleet:     fleet,
		roster:    roster,
		tx:        tx,
		router:    router,
		estimator: estimator,
	}
}

// FindCandidates возвращает машины нужного типа, укладывающиеся в SLA и
// укомплектованные экипажем текущей смены, по возрастанию времени доезда.
// Пустой список не является ошибкой.
func (s *dispatchService) FindCandidates(ctx context.Context, occurrenceID uuid.UUID) ([]*models.Candidate, error) {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"service":       "dispatch",
		"method":        "FindCandidates",
		"occurrence_id": occurrenceID,
	})

	o, err := s.occurrences.GetOccurrence(ctx, occurrenceID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get occurrence: %w", err)
	}
	if o.Status != models.StatusOpen {
		return nil, notOpen(o)
	}

	policy, err := sla.PolicyFor(o.Severity)
	if err != nil {
		return nil, apperror.Validation("severity", err.Error())
	}

	pool, err := s.fleet.FindAvailableByType(ctx, policy.RequiredType)
	if err != nil {
		log.WithError(err).Error("Failed to load available ambulances")
		return nil, fmt.Errorf("service: could not find available ambulances: %w", err)
	}

	staffing, err := s.staffing(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load teams on shift")
		return nil, fmt.Errorf("service: could not load teams on shift: %w", err)
	}

	candidates := make([]*models.Candidate, 0, len(pool))
	for _, amb := range pool {
		dist, route, err := s.router.ShortestDistance(amb.HomeAreaID, o.AreaID)
		if err != nil {
			var noRoute *apperror.NoRouteError
			if errors.As(err, &noRoute) {
				metrics.IncCandidateExcluded("no_route")
				log.WithField("ambulance_id", amb.ID).Debug("Ambulance excluded: no route")
				continue
			}
			return nil, fmt.Errorf("service: could not compute route: %w", err)
		}

		minutes := s.estimator.Minutes(dist)
		if !policy.WithinBudget(minutes) {
			metrics.IncCandidateExcluded("sla_exceeded")
			continue
		}

		team, ok := staffing[amb.ID]
		if !ok {
			metrics.IncCandidateExcluded("unstaffed")
			continue
		}

		candidates = append(candidates, &models.Candidate{
			Ambulance:        amb,
			Team:             team,
			Distance:         dist,
			Route:            route,
			EstimatedMinutes: minutes,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.EstimatedMinutes != b.EstimatedMinutes {
			return a.EstimatedMinutes < b.EstimatedMinutes
		}
		return a.Ambulance.ID.String() < b.Ambulance.ID.String()
	})

	metrics.ObserveCandidateSearch(len(candidates), time.Since(start))
	log.WithFields(logrus.Fields{
		"pool":       len(pool),
		"candidates": len(candidates),
	}).Info("Candidates found")
	return candidates, nil
}

// staffing - экипаж текущей смены для каждой машины
func (s *dispatchService) staffing(ctx context.Context) (map[uuid.UUID]*models.Team, error) {
	teams, err := s.roster.TeamsOnShift(ctx, models.ShiftAt(s.now()))
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]*models.Team, len(teams))
	for _, t := range teams {
		if t.AmbulanceID != nil {
			out[*t.AmbulanceID] = t
		}
	}
	return out, nil
}

// Dispatch резервирует машину, создаёт выезд и переводит вызов в DISPATCHED
// одной транзакцией.
func (s *dispatchService) Dispatch(ctx context.Context, occurrenceID, ambulanceID uuid.UUID) (*models.Attendance, error) {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"service":       "dispatch",
		"method":        "Dispatch",
		"occurrence_id": occurrenceID,
		"ambulance_id":  ambulanceID,
	})
	log.Info("Attempting to dispatch ambulance")

	attendance, entry, err := s.dispatch(ctx, occurrenceID, ambulanceID)
	if err != nil {
		metrics.ObserveDispatch(dispatchResult(err), time.Since(start))
		log.WithError(err).Warn("Dispatch rejected")
		return nil, fmt.Errorf("service: could not dispatch: %w", err)
	}

	metrics.ObserveDispatch(metrics.ResultSuccess, time.Since(start))
	s.committed(ctx, entry, &ambulanceID)
	log.WithField("attendance_id", attendance.ID).Info("Ambulance dispatched successfully")
	return attendance, nil
}

func (s *dispatchService) dispatch(ctx context.Context, occurrenceID, ambulanceID uuid.UUID) (*models.Attendance, *models.HistoryEntry, error) {
	o, err := s.occurrences.GetOccurrence(ctx, occurrenceID)
	if err != nil {
		return nil, nil, err
	}
	if o.Status != models.StatusOpen {
		return nil, nil, notOpen(o)
	}

	policy, err := sla.PolicyFor(o.Severity)
	if err != nil {
		return nil, nil, apperror.Validation("severity", err.Error())
	}

	amb, err := s.fleet.GetAmbulance(ctx, ambulanceID)
	if err != nil {
		return nil, nil, err
	}
	if amb.Type != policy.RequiredType {
		return nil, nil, apperror.Validation("ambulance_id", fmt.Sprintf(
			"%s occurrence requires %s ambulance, got %s", o.Severity, policy.RequiredType, amb.Type))
	}

	dist, route, err := s.router.ShortestDistance(amb.HomeAreaID, o.AreaID)
	if err != nil {
		return nil, nil, err
	}

	staffing, err := s.staffing(ctx)
	if err != nil {
		return nil, nil, err
	}
	team, ok := staffing[amb.ID]
	if !ok {
		return nil, nil, &apperror.InvalidStateError{
			Entity:  "ambulance",
			ID:      amb.ID.String(),
			Current: string(models.AmbulanceUnstaffed),
			Reason:  "no team on current shift",
		}
	}

	teamID := team.ID
	attendance := &models.Attendance{
		ID:               uuid.New(),
		OccurrenceID:     o.ID,
		AmbulanceID:      amb.ID,
		TeamID:           &teamID,
		DispatchedAt:     s.now(),
		Distance:         dist,
		Route:            route,
		EstimatedMinutes: s.estimator.Minutes(dist),
		SLAMaxMinutes:    policy.MaxMinutes,
	}

	var entry *models.HistoryEntry
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.fleet.Reserve(ctx, amb.ID); err != nil {
			var reserved *apperror.AlreadyReservedError
			if errors.As(err, &reserved) {
				return &apperror.ConflictError{Reason: "ambulance is no longer available, refresh candidates", Err: err}
			}
			return err
		}
		if err := s.occurrences.CreateAttendance(ctx, attendance); err != nil {
			return err
		}
		var err error
		entry, err = s.transition(ctx, o, models.StatusDispatched, fmt.Sprintf("ambulance %s dispatched", amb.Plate))
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return attendance, entry, nil
}

func notOpen(o *models.Occurrence) error {
	return &apperror.InvalidStateError{
		Entity:  "occurrence",
		ID:      o.ID.String(),
		Current: string(o.Status),
		Reason:  "occurrence is not OPEN",
		Err:     &apperror.InvalidTransitionError{From: string(o.Status), To: string(models.StatusDispatched)},
	}
}

func dispatchResult(err error) string {
	var conflict *apperror.ConflictError
	if errors.As(err, &conflict) {
		return metrics.ResultConflict
	}
	var state *apperror.InvalidStateError
	var validation *apperror.ValidationError
	var noRoute *apperror.NoRouteError
	if errors.As(err, &state) || errors.As(err, &validation) || errors.As(err, &noRoute) {
		return metrics.ResultRejected
	}
	return metrics.ResultError
}
