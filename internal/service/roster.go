package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/roster"
)

// RosterService - специалисты и экипажи; правила состава и исключительности
// проверяются при создании и изменении экипажа.
type RosterService interface {
	CreateProfessional(ctx context.Context, p *models.Professional) (*models.Professional, error)
	ListProfessionals(ctx context.Context) ([]*models.Professional, error)
	UpdateProfessional(ctx context.Context, p *models.Professional) (*models.Professional, error)
	DeleteProfessional(ctx context.Context, id uuid.UUID) error

	CreateTeam(ctx context.Context, team *models.Team) (*models.Team, error)
	UpdateTeam(ctx context.Context, team *models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	TeamsOnShift(ctx context.Context, shift models.Shift) ([]*models.Team, error)
}

type rosterService struct {
	roster RosterRepository
	fleet  FleetRepository
	tx     Transactor
	cache  DetailsCache
	logger *logrus.Logger
}

func NewRosterService(rosterRepo RosterRepository, fleet FleetRepository, tx Transactor, cache DetailsCache, logger *logrus.Logger) RosterService {
	return &rosterService{
		roster: rosterRepo,
		fleet:  fleet,
		tx:     tx,
		cache:  cache,
		logger: logger,
	}
}

func validateProfessional(p *models.Professional) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.Validation("name", "must not be empty")
	}
	if !p.Role.Valid() {
		return apperror.Validation("role", fmt.Sprintf("unknown role %q", p.Role))
	}
	if !p.Shift.Valid() {
		return apperror.Validation("shift", fmt.Sprintf("unknown shift %q", p.Shift))
	}
	return nil
}

func (s *rosterService) CreateProfessional(ctx context.Context, p *models.Professional) (*models.Professional, error) {
	if err := validateProfessional(p); err != nil {
		return nil, err
	}

	p.ID = uuid.New()
	if err := s.roster.CreateProfessional(ctx, p); err != nil {
		return nil, fmt.Errorf("service: could not create professional: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":         "roster",
		"method":          "CreateProfessional",
		"professional_id": p.ID,
		"role":            p.Role,
	}).Info("Professional created successfully")
	return p, nil
}

func (s *rosterService) ListProfessionals(ctx context.Context) ([]*models.Professional, error) {
	list, err := s.roster.ListProfessionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list professionals: %w", err)
	}
	return list, nil
}

// UpdateProfessional меняет данные специалиста. Смена или деактивация
// запрещены, пока он состоит в экипаже: иначе состав экипажа перестал бы
// проходить проверки, с которыми был сохранён.
func (s *rosterService) UpdateProfessional(ctx context.Context, p *models.Professional) (*models.Professional, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "roster",
		"method":          "UpdateProfessional",
		"professional_id": p.ID,
	})

	if err := validateProfessional(p); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.roster.GetProfessional(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("service: could not get professional: %w", err)
		}
		if current.Shift != p.Shift || (current.Active && !p.Active) {
			team, err := s.teamOf(ctx, p.ID)
			if err != nil {
				return err
			}
			if team != nil {
				return &apperror.InvalidStateError{Entity: "professional", ID: p.ID.String(), Current: string(current.Shift), Reason: "member of team " + team.ID.String()}
			}
		}
		if err := s.roster.UpdateProfessional(ctx, p); err != nil {
			return fmt.Errorf("service: could not update professional: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Professional update rejected")
		return nil, err
	}

	log.Info("Professional updated successfully")
	return p, nil
}

// DeleteProfessional запрещено, пока специалист состоит в экипаже.
// Проверка и удаление идут в одной транзакции с сохранением экипажей.
func (s *rosterService) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.roster.GetProfessional(ctx, id)
		if err != nil {
			return fmt.Errorf("service: could not get professional: %w", err)
		}
		team, err := s.teamOf(ctx, id)
		if err != nil {
			return err
		}
		if team != nil {
			return &apperror.InvalidStateError{Entity: "professional", ID: id.String(), Current: string(p.Shift), Reason: "member of team " + team.ID.String()}
		}
		if err := s.roster.DeleteProfessional(ctx, id); err != nil {
			return fmt.Errorf("service: could not delete professional: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"service":         "roster",
		"method":          "DeleteProfessional",
		"professional_id": id,
	}).Info("Professional deleted")
	return nil
}

// teamOf возвращает экипаж, в котором состоит специалист, или nil
func (s *rosterService) teamOf(ctx context.Context, professionalID uuid.UUID) (*models.Team, error) {
	teams, err := s.roster.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list teams: %w", err)
	}
	for _, t := range teams {
		if t.HasMember(professionalID) {
			return t, nil
		}
	}
	return nil, nil
}

func (s *rosterService) CreateTeam(ctx context.Context, team *models.Team) (*models.Team, error) {
	team.ID = uuid.New()
	if err := s.saveTeam(ctx, team, s.roster.CreateTeam); err != nil {
		return nil, fmt.Errorf("service: could not create team: %w", err)
	}
	return team, nil
}

func (s *rosterService) UpdateTeam(ctx context.Context, team *models.Team) (*models.Team, error) {
	if _, err := s.roster.GetTeam(ctx, team.ID); err != nil {
		return nil, fmt.Errorf("service: could not get team: %w", err)
	}
	if err := s.saveTeam(ctx, team, s.roster.UpdateTeam); err != nil {
		return nil, fmt.Errorf("service: could not update team: %w", err)
	}
	invalidateAllDetails(ctx, s.cache, s.logger.WithFields(logrus.Fields{"service": "roster", "method": "UpdateTeam", "team_id": team.ID}))
	return team, nil
}

// DeleteTeam запрещено, пока машина экипажа на выезде. После удаления
// машина и специалисты могут быть удалены или включены в другой экипаж.
func (s *rosterService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "roster",
		"method":  "DeleteTeam",
		"team_id": id,
	})

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		team, err := s.roster.GetTeam(ctx, id)
		if err != nil {
			return fmt.Errorf("service: could not get team: %w", err)
		}
		if team.AmbulanceID != nil {
			a, err := s.fleet.GetAmbulance(ctx, *team.AmbulanceID)
			var notFound *apperror.NotFoundError
			switch {
			case errors.As(err, &notFound):
			case err != nil:
				return fmt.Errorf("service: could not get ambulance: %w", err)
			case a.Status == models.AmbulanceBusy:
				return &apperror.InvalidStateError{Entity: "team", ID: id.String(), Current: string(team.Shift), Reason: "ambulance " + a.ID.String() + " is on an attendance"}
			}
		}
		if err := s.roster.DeleteTeam(ctx, id); err != nil {
			return fmt.Errorf("service: could not delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Team deletion rejected")
		return err
	}

	invalidateAllDetails(ctx, s.cache, log)
	log.Info("Team deleted")
	return nil
}

// saveTeam проверяет правила и сохраняет экипаж в одной транзакции,
// чтобы параллельные изменения той же смены не обошли проверку исключительности.
func (s *rosterService) saveTeam(ctx context.Context, team *models.Team, save func(context.Context, *models.Team) error) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "roster",
		"method":  "saveTeam",
		"team_id": team.ID,
		"shift":   team.Shift,
	})

	if !team.Shift.Valid() {
		return apperror.Validation("shift", fmt.Sprintf("unknown shift %q", team.Shift))
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		members, err := s.members(ctx, team.MemberIDs)
		if err != nil {
			return err
		}

		var ambulance *models.Ambulance
		if team.AmbulanceID != nil {
			ambulance, err = s.fleet.GetAmbulance(ctx, *team.AmbulanceID)
			var notFound *apperror.NotFoundError
			if errors.As(err, &notFound) {
				return apperror.Validation("ambulance_id", notFound.Error())
			}
			if err != nil {
				return err
			}
		}

		if err := roster.ValidateMembers(team, members); err != nil {
			return err
		}
		if err := roster.ValidateComposition(ambulance, members); err != nil {
			return err
		}

		sameShift, err := s.roster.TeamsOnShift(ctx, team.Shift)
		if err != nil {
			return err
		}
		if err := roster.CheckExclusivity(team, sameShift); err != nil {
			return err
		}
		return save(ctx, team)
	})
	if err != nil {
		log.WithError(err).Warn("Team rejected")
		return err
	}

	log.Info("Team saved successfully")
	return nil
}

func (s *rosterService) members(ctx context.Context, ids []uuid.UUID) ([]*models.Professional, error) {
	out := make([]*models.Professional, 0, len(ids))
	for _, id := range ids {
		p, err := s.roster.GetProfessional(ctx, id)
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return nil, apperror.Validation("member_ids", notFound.Error())
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *rosterService) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	t, err := s.roster.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get team: %w", err)
	}
	return t, nil
}

func (s *rosterService) ListTeams(ctx context.Context) ([]*models.Team, error) {
	list, err := s.roster.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list teams: %w", err)
	}
	return list, nil
}

func (s *rosterService) TeamsOnShift(ctx context.Context, shift models.Shift) ([]*models.Team, error) {
	if !shift.Valid() {
		return nil, apperror.Validation("shift", fmt.Sprintf("unknown shift %q", shift))
	}
	list, err := s.roster.TeamsOnShift(ctx, shift)
	if err != nil {
		return nil, fmt.Errorf("service: could not list teams on shift: %w", err)
	}
	return list, nil
}
