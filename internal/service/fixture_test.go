package service_test

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/ambulance_dispatch/internal/graph"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/repository"
	"github.com/shenikar/ambulance_dispatch/internal/repository/memory"
	"github.com/shenikar/ambulance_dispatch/internal/service"
	"github.com/shenikar/ambulance_dispatch/internal/sla"
	"github.com/shenikar/ambulance_dispatch/internal/webhook"
)

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []webhook.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e webhook.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) statuses() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.PreviousStatus+">"+e.NewStatus)
	}
	return out
}

type fixture struct {
	t         *testing.T
	ctx       context.Context
	store     *memory.Store
	holder    *graph.Holder
	publisher *recordingPublisher
	cache     service.DetailsCache
	logger    *logrus.Logger
	now       time.Time
	plateSeq  int

	areas       service.AreaService
	occurrences service.OccurrenceService
	dispatch    service.DispatchService
	fleet       service.FleetService
	roster      service.RosterService
	reports     service.ReportService
}

// Граф:
//
//	centro -3- norte -4- leste
//	centro -5- sul
//	centro -20- longe
//	centro -45- remoto
func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithCache(t, repository.NoopDetailsCache{})
}

func newFixtureWithCache(t *testing.T, cache service.DetailsCache) *fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	f := &fixture{
		t:         t,
		ctx:       context.Background(),
		store:     memory.NewStore(),
		holder:    graph.NewHolder(nil),
		publisher: &recordingPublisher{},
		cache:     cache,
		logger:    logger,
		now:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	clock := service.WithClock(func() time.Time { return f.now })

	f.areas = service.NewAreaService(f.store, f.holder, f.store, logger)
	f.occurrences = service.NewOccurrenceService(f.store, f.store, f.store, f.store, f.holder, cache, f.publisher, logger, clock)
	f.dispatch = service.NewDispatchService(f.store, f.store, f.store, f.store, f.holder, sla.NewEstimator(sla.DefaultSpeedKmPerMinute), cache, f.publisher, logger, clock)
	f.fleet = service.NewFleetService(f.store, f.store, f.store, f.holder, f.store, cache, logger, clock)
	f.roster = service.NewRosterService(f.store, f.store, f.store, cache, logger)
	f.reports = service.NewReportService(f.store, f.store, f.store, f.store, logger, clock)

	areas := []models.Area{
		{ID: "centro", Name: "Centro"},
		{ID: "norte", Name: "Norte"},
		{ID: "leste", Name: "Leste"},
		{ID: "sul", Name: "Sul"},
		{ID: "longe", Name: "Longe"},
		{ID: "remoto", Name: "Remoto"},
	}
	edges := []models.Edge{
		{From: "centro", To: "norte", Weight: 3},
		{From: "norte", To: "leste", Weight: 4},
		{From: "centro", To: "sul", Weight: 5},
		{From: "centro", To: "longe", Weight: 20},
		{From: "centro", To: "remoto", Weight: 45},
	}
	require.NoError(t, f.areas.SaveTopology(f.ctx, areas, edges))
	return f
}

func (f *fixture) nextPlate() string {
	f.plateSeq++
	return fmt.Sprintf("AMB%04d", f.plateSeq)
}

func (f *fixture) professional(role models.Role, shift models.Shift) *models.Professional {
	f.t.Helper()
	p, err := f.roster.CreateProfessional(f.ctx, &models.Professional{
		Name:   fmt.Sprintf("%s %d", role, f.plateSeq),
		Role:   role,
		Shift:  shift,
		Active: true,
	})
	require.NoError(f.t, err)
	return p
}

func (f *fixture) professionalByID(id uuid.UUID) *models.Professional {
	f.t.Helper()
	list, err := f.roster.ListProfessionals(f.ctx)
	require.NoError(f.t, err)
	for _, p := range list {
		if p.ID == id {
			return p
		}
	}
	f.t.Fatalf("professional %s not found", id)
	return nil
}

func (f *fixture) ambulance(typ models.AmbulanceType, home string) *models.Ambulance {
	f.t.Helper()
	a, err := f.fleet.CreateAmbulance(f.ctx, &models.Ambulance{Plate: f.nextPlate(), Type: typ, HomeAreaID: home})
	require.NoError(f.t, err)
	return a
}

func crewFor(typ models.AmbulanceType) []models.Role {
	if typ == models.AmbulanceAdvanced {
		return []models.Role{models.RolePhysician, models.RoleNurse, models.RoleDriver}
	}
	return []models.Role{models.RoleNurse, models.RoleDriver}
}

// staffed создаёт машину и экипаж утренней смены для неё
func (f *fixture) staffed(typ models.AmbulanceType, home string) (*models.Ambulance, *models.Team) {
	f.t.Helper()
	a := f.ambulance(typ, home)

	members := make([]uuid.UUID, 0, 3)
	for _, role := range crewFor(typ) {
		members = append(members, f.professional(role, models.ShiftMorning).ID)
	}
	id := a.ID
	team, err := f.roster.CreateTeam(f.ctx, &models.Team{
		Description: "Equipe " + a.Plate,
		Shift:       models.ShiftMorning,
		AmbulanceID: &id,
		MemberIDs:   members,
	})
	require.NoError(f.t, err)
	return a, team
}

func (f *fixture) open(severity models.Severity, area string) *models.Occurrence {
	f.t.Helper()
	o, err := f.occurrences.Open(f.ctx, &models.Occurrence{AreaID: area, IncidentType: "trauma", Severity: severity})
	require.NoError(f.t, err)
	return o
}

func (f *fixture) ambulanceStatus(id uuid.UUID) models.AmbulanceStatus {
	f.t.Helper()
	a, err := f.fleet.GetAmbulance(f.ctx, id)
	require.NoError(f.t, err)
	return a.Status
}

func (f *fixture) occurrenceStatus(id uuid.UUID) models.OccurrenceStatus {
	f.t.Helper()
	o, err := f.occurrences.Get(f.ctx, id)
	require.NoError(f.t, err)
	return o.Status
}
