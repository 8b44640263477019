// Package seed загружает начальные районы, парк и экипажи из YAML.
// Данные проходят через те же сервисы, что и админ-API, поэтому все правила
// (формат номера, состав, исключительность) проверяются так же.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

type Fixture struct {
	Areas         []models.Area      `yaml:"areas"`
	Edges         []models.Edge      `yaml:"edges"`
	Ambulances    []AmbulanceSeed    `yaml:"ambulances"`
	Professionals []ProfessionalSeed `yaml:"professionals"`
	Teams         []TeamSeed         `yaml:"teams"`
}

type AmbulanceSeed struct {
	Plate    string                 `yaml:"plate"`
	Type     models.AmbulanceType   `yaml:"type"`
	HomeArea string                 `yaml:"home_area"`
	Status   models.AmbulanceStatus `yaml:"status"`
}

// ProfessionalSeed.Key - локальное имя для ссылок из teams
type ProfessionalSeed struct {
	Key     string       `yaml:"key"`
	Name    string       `yaml:"name"`
	Role    models.Role  `yaml:"role"`
	Shift   models.Shift `yaml:"shift"`
	Active  *bool        `yaml:"active"`
	Contact string       `yaml:"contact"`
}

type TeamSeed struct {
	Description string       `yaml:"description"`
	Shift       models.Shift `yaml:"shift"`
	Ambulance   string       `yaml:"ambulance"`
	Members     []string     `yaml:"members"`
}

// Summary - сколько записей создано
type Summary struct {
	Areas         int
	Edges         int
	Ambulances    int
	Professionals int
	Teams         int
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: could not read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: could not parse fixture: %w", err)
	}
	return &f, nil
}

type Loader struct {
	areas  service.AreaService
	fleet  service.FleetService
	roster service.RosterService
	logger *logrus.Logger
}

func NewLoader(areas service.AreaService, fleet service.FleetService, roster service.RosterService, logger *logrus.Logger) *Loader {
	return &Loader{areas: areas, fleet: fleet, roster: roster, logger: logger}
}

// Apply применяет фикстуру. Если в парке уже есть машины, парк и экипажи
// не трогаются: повторный запуск только дополняет топологию.
func (l *Loader) Apply(ctx context.Context, f *Fixture) (*Summary, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service": "seed",
		"method":  "Apply",
	})
	sum := &Summary{}

	if len(f.Areas) > 0 || len(f.Edges) > 0 {
		if err := l.areas.SaveTopology(ctx, f.Areas, f.Edges); err != nil {
			return nil, fmt.Errorf("seed: topology: %w", err)
		}
		sum.Areas, sum.Edges = len(f.Areas), len(f.Edges)
	}

	existing, err := l.fleet.ListAmbulances(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed: could not list ambulances: %w", err)
	}
	if len(existing) > 0 {
		log.WithField("ambulances", len(existing)).Info("Fleet already populated, skipping fleet and roster fixtures")
		return sum, nil
	}

	plates := make(map[string]uuid.UUID, len(f.Ambulances))
	for _, a := range f.Ambulances {
		created, err := l.fleet.CreateAmbulance(ctx, &models.Ambulance{
			Plate:      a.Plate,
			Type:       a.Type,
			HomeAreaID: a.HomeArea,
			Status:     a.Status,
		})
		if err != nil {
			return nil, fmt.Errorf("seed: ambulance %s: %w", a.Plate, err)
		}
		plates[a.Plate] = created.ID
		plates[created.Plate] = created.ID
		sum.Ambulances++
	}

	keys := make(map[string]uuid.UUID, len(f.Professionals))
	for _, p := range f.Professionals {
		active := true
		if p.Active != nil {
			active = *p.Active
		}
		created, err := l.roster.CreateProfessional(ctx, &models.Professional{
			Name:    p.Name,
			Role:    p.Role,
			Shift:   p.Shift,
			Active:  active,
			Contact: p.Contact,
		})
		if err != nil {
			return nil, fmt.Errorf("seed: professional %s: %w", p.Key, err)
		}
		if p.Key != "" {
			keys[p.Key] = created.ID
		}
		sum.Professionals++
	}

	for _, t := range f.Teams {
		team := &models.Team{Description: t.Description, Shift: t.Shift}
		if t.Ambulance != "" {
			id, ok := plates[t.Ambulance]
			if !ok {
				return nil, fmt.Errorf("seed: team %q references unknown ambulance %q", t.Description, t.Ambulance)
			}
			team.AmbulanceID = &id
		}
		for _, key := range t.Members {
			id, ok := keys[key]
			if !ok {
				return nil, fmt.Errorf("seed: team %q references unknown professional %q", t.Description, key)
			}
			team.MemberIDs = append(team.MemberIDs, id)
		}
		if _, err := l.roster.CreateTeam(ctx, team); err != nil {
			return nil, fmt.Errorf("seed: team %q: %w", t.Description, err)
		}
		sum.Teams++
	}

	log.WithFields(logrus.Fields{
		"areas":         sum.Areas,
		"ambulances":    sum.Ambulances,
		"professionals": sum.Professionals,
		"teams":         sum.Teams,
	}).Info("Seed fixture applied")
	return sum, nil
}
