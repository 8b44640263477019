package sla

import (
	"fmt"
	"math"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// DefaultSpeedKmPerMinute - скорость перевода расстояния во время (единиц расстояния в минуту)
const DefaultSpeedKmPerMinute = 1.0

type Policy struct {
	RequiredType models.AmbulanceType `json:"required_type"`
	MaxMinutes   int                  `json:"max_minutes"`
}

var policies = map[models.Severity]Policy{
	models.SeverityHigh:   {RequiredType: models.AmbulanceAdvanced, MaxMinutes: 8},
	models.SeverityMedium: {RequiredType: models.AmbulanceBasic, MaxMinutes: 15},
	models.SeverityLow:    {RequiredType: models.AmbulanceBasic, MaxMinutes: 30},
}

func PolicyFor(severity models.Severity) (Policy, error) {
	p, ok := policies[severity]
	if !ok {
		return Policy{}, fmt.Errorf("sla: unknown severity %q", severity)
	}
	return p, nil
}

// Estimator переводит расстояние в минуты по фиксированной скорости.
type Estimator struct {
	speed float64
}

func NewEstimator(speedKmPerMinute float64) *Estimator {
	if speedKmPerMinute <= 0 {
		speedKmPerMinute = DefaultSpeedKmPerMinute
	}
	return &Estimator{speed: speedKmPerMinute}
}

func (e *Estimator) Minutes(distance float64) float64 {
	return distance / e.speed
}

// WithinBudget - true, если оценка не превышает лимит политики
func (p Policy) WithinBudget(minutes float64) bool {
	return minutes <= float64(p.MaxMinutes)
}

// Exceeded сравнивает фактическое время прибытия с лимитом (целые минуты, округление вверх).
func (p Policy) Exceeded(actualMinutes float64) bool {
	return math.Ceil(actualMinutes) > float64(p.MaxMinutes)
}
