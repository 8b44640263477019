package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// FleetService - административные операции над машинами
type FleetService interface {
	CreateAmbulance(ctx context.Context, a *models.Ambulance) (*models.Ambulance, error)
	GetAmbulance(ctx context.Context, id uuid.UUID) (*models.Ambulance, error)
	ListAmbulances(ctx context.Context) ([]*models.Ambulance, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus) (*models.Ambulance, error)
	DeleteAmbulance(ctx context.Context, id uuid.UUID) error
}

type fleetService struct {
	fleet       FleetRepository
	roster      RosterRepository
	occurrences OccurrenceRepository
	router      Router
	tx          Transactor
	cache       DetailsCache
	logger      *logrus.Logger
	now         Clock
}

func NewFleetService(
	fleet FleetRepository,
	roster RosterRepository,
	occurrences OccurrenceRepository,
	router Router,
	tx Transactor,
	cache DetailsCache,
	logger *logrus.Logger,
	opts ...Option,
) FleetService {
	o := buildOptions(opts)
	return &fleetService{
		fleet:       fleet,
		roster:      roster,
		occurrences: occurrences,
		router:      router,
		tx:          tx,
		cache:       cache,
		logger:      logger,
		now:         o.now,
	}
}

// CreateAmbulance нормализует и проверяет номер, тип и базовый район
func (s *fleetService) CreateAmbulance(ctx context.Context, a *models.Ambulance) (*models.Ambulance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "CreateAmbulance",
		"plate":   a.Plate,
	})

	plate, ok := models.NormalizePlate(a.Plate)
	if !ok {
		return nil, apperror.Validation("plate", fmt.Sprintf("invalid plate %q, expected ABC1234 or ABC1D23", a.Plate))
	}
	if !a.Type.Valid() {
		return nil, apperror.Validation("type", fmt.Sprintf("unknown ambulance type %q", a.Type))
	}
	if !s.router.HasArea(a.HomeAreaID) {
		return nil, apperror.Validation("home_area_id", fmt.Sprintf("unknown area %q", a.HomeAreaID))
	}
	if a.Status == "" {
		a.Status = models.AmbulanceAvailable
	}
	if !a.Status.Valid() || a.Status == models.AmbulanceBusy {
		return nil, apperror.Validation("status", fmt.Sprintf("ambulance cannot be created as %q", a.Status))
	}

	a.ID = uuid.New()
	a.Plate = plate
	a.CreatedAt = s.now()
	a.UpdatedAt = a.CreatedAt

	if err := s.fleet.CreateAmbulance(ctx, a); err != nil {
		log.WithError(err).Error("Failed to create ambulance in repository")
		return nil, fmt.Errorf("service: could not create ambulance: %w", err)
	}
	log.WithField("ambulance_id", a.ID).Info("Ambulance created successfully")
	return a, nil
}

func (s *fleetService) GetAmbulance(ctx context.Context, id uuid.UUID) (*models.Ambulance, error) {
	a, err := s.fleet.GetAmbulance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get ambulance: %w", err)
	}
	return a, nil
}

func (s *fleetService) ListAmbulances(ctx context.Context) ([]*models.Ambulance, error) {
	list, err := s.fleet.ListAmbulances(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}
	return list, nil
}

// SetStatus меняет статус вне цикла вызова (обслуживание, списание).
// BUSY выставляется и снимается только диспетчеризацией.
func (s *fleetService) SetStatus(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus) (*models.Ambulance, error) {
	if !status.Valid() || status == models.AmbulanceBusy {
		return nil, apperror.Validation("status", fmt.Sprintf("cannot set status %q", status))
	}

	current, err := s.fleet.GetAmbulance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get ambulance: %w", err)
	}
	if current.Status == models.AmbulanceBusy {
		return nil, &apperror.InvalidStateError{Entity: "ambulance", ID: id.String(), Current: string(current.Status), Reason: "ambulance is on an attendance"}
	}
	if err := s.fleet.SetStatus(ctx, id, current.Status, status); err != nil {
		return nil, fmt.Errorf("service: could not set ambulance status: %w", err)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":      "fleet",
		"method":       "SetStatus",
		"ambulance_id": id,
		"from":         current.Status,
		"to":           status,
	})
	invalidateAllDetails(ctx, s.cache, log)
	log.Info("Ambulance status changed")
	return s.fleet.GetAmbulance(ctx, id)
}

// DeleteAmbulance запрещено для занятой машины, машины с выездами или в экипаже.
// Проверки и удаление идут в одной транзакции: параллельный выезд или экипаж
// не может сослаться на машину между проверкой и удалением.
func (s *fleetService) DeleteAmbulance(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "fleet",
		"method":       "DeleteAmbulance",
		"ambulance_id": id,
	})

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.fleet.GetAmbulance(ctx, id)
		if err != nil {
			return fmt.Errorf("service: could not get ambulance: %w", err)
		}
		if a.Status == models.AmbulanceBusy {
			return &apperror.InvalidStateError{Entity: "ambulance", ID: id.String(), Current: string(a.Status), Reason: "ambulance is on an attendance"}
		}

		n, err := s.occurrences.CountAttendancesByAmbulance(ctx, id)
		if err != nil {
			return fmt.Errorf("service: could not count attendances: %w", err)
		}
		if n > 0 {
			return &apperror.InvalidStateError{Entity: "ambulance", ID: id.String(), Current: string(a.Status), Reason: fmt.Sprintf("referenced by %d attendance(s)", n)}
		}

		teams, err := s.roster.ListTeams(ctx)
		if err != nil {
			return fmt.Errorf("service: could not list teams: %w", err)
		}
		for _, t := range teams {
			if t.AmbulanceID != nil && *t.AmbulanceID == id {
				return &apperror.InvalidStateError{Entity: "ambulance", ID: id.String(), Current: string(a.Status), Reason: "assigned to team " + t.ID.String()}
			}
		}

		if err := s.fleet.DeleteAmbulance(ctx, id); err != nil {
			log.WithError(err).Error("Failed to delete ambulance in repository")
			return fmt.Errorf("service: could not delete ambulance: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	invalidateAllDetails(ctx, s.cache, log)
	log.Info("Ambulance deleted")
	return nil
}
