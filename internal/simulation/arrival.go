// Package simulation подтверждает прибытие машин по расчётному времени в пути.
// Используется в стенде без реальных экипажей.
package simulation

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

type ArrivalSimulator struct {
	occurrences  service.OccurrenceService
	logger       *logrus.Logger
	interval     time.Duration
	secondsPerKm time.Duration
	now          service.Clock
}

func NewArrivalSimulator(occurrences service.OccurrenceService, logger *logrus.Logger, interval, secondsPerKm time.Duration, now service.Clock) *ArrivalSimulator {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &ArrivalSimulator{
		occurrences:  occurrences,
		logger:       logger,
		interval:     interval,
		secondsPerKm: secondsPerKm,
		now:          now,
	}
}

// Run проверяет выезды каждые interval до отмены контекста
func (s *ArrivalSimulator) Run(ctx context.Context) error {
	s.logger.WithField("interval", s.interval.String()).Info("Arrival simulator started")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Arrival simulator stopped")
			return nil
		case <-ticker.C:
			if _, err := s.Tick(ctx); err != nil && ctx.Err() == nil {
				s.logger.WithError(err).Error("Arrival simulation tick failed")
			}
		}
	}
}

// Tick подтверждает прибытие для всех DISPATCHED вызовов, у которых истекло
// время в пути, и возвращает их число.
func (s *ArrivalSimulator) Tick(ctx context.Context) (int, error) {
	dispatched, err := s.occurrences.List(ctx, models.StatusDispatched)
	if err != nil {
		return 0, err
	}

	confirmed := 0
	for _, o := range dispatched {
		log := s.logger.WithFields(logrus.Fields{
			"service":       "simulation",
			"method":        "Tick",
			"occurrence_id": o.ID,
		})

		details, err := s.occurrences.Details(ctx, o.ID)
		if err != nil {
			log.WithError(err).Warn("Failed to load occurrence details")
			continue
		}
		a := details.Attendance
		if a == nil || a.ArrivedAt != nil {
			continue
		}

		travel := time.Duration(a.Distance * float64(s.secondsPerKm))
		if s.now().Before(a.DispatchedAt.Add(travel)) {
			continue
		}

		_, err = s.occurrences.ConfirmArrival(ctx, o.ID)
		var transition *apperror.InvalidTransitionError
		var conflict *apperror.ConflictError
		switch {
		case errors.As(err, &transition), errors.As(err, &conflict):
			// вызов успели отменить или подтвердить вручную
			log.WithError(err).Debug("Occurrence moved on before simulated arrival")
		case err != nil:
			log.WithError(err).Warn("Failed to confirm simulated arrival")
		default:
			confirmed++
			log.Info("Simulated arrival confirmed")
		}
	}
	return confirmed, nil
}
