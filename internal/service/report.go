package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// ReportService - агрегаты для панели и отчётов
type ReportService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	OccurrencesByArea(ctx context.Context, from, to time.Time) ([]models.AreaOccurrenceCount, error)
	DistanceByType(ctx context.Context, from, to time.Time) ([]models.TypeDistance, error)
	AttendanceRows(ctx context.Context, from, to time.Time) ([]models.AttendanceReportRow, error)
}

type reportService struct {
	occurrences OccurrenceRepository
	fleet       FleetRepository
	roster      RosterRepository
	areas       AreaRepository
	logger      *logrus.Logger
	now         Clock
}

func NewReportService(occurrences OccurrenceRepository, fleet FleetRepository, roster RosterRepository, areas AreaRepository, logger *logrus.Logger, opts ...Option) ReportService {
	o := buildOptions(opts)
	return &reportService{
		occurrences: occurrences,
		fleet:       fleet,
		roster:      roster,
		areas:       areas,
		logger:      logger,
		now:         o.now,
	}
}

func (s *reportService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	occurrences, err := s.occurrences.ListOccurrences(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("service: could not list occurrences: %w", err)
	}
	ambulances, err := s.fleet.ListAmbulances(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}
	teams, err := s.roster.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list teams: %w", err)
	}
	professionals, err := s.roster.ListProfessionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list professionals: %w", err)
	}
	attendances, err := s.occurrences.ListAttendances(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("service: could not list attendances: %w", err)
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := &models.DashboardStats{
		AmbulancesTotal: len(ambulances),
		Teams:           len(teams),
		Professionals:   len(professionals),
	}
	for _, o := range occurrences {
		if o.Status == models.StatusOpen {
			stats.OpenOccurrences++
		}
		if !o.OpenedAt.Before(dayStart) {
			stats.OccurrencesToday++
		}
	}
	for _, a := range ambulances {
		if a.Status == models.AmbulanceAvailable {
			stats.AmbulancesAvailable++
		}
	}

	var total float64
	var arrived int
	for _, a := range attendances {
		if a.ActualMinutes != nil {
			total += *a.ActualMinutes
			arrived++
		}
	}
	if arrived > 0 {
		stats.MeanResponseMinutes = total / float64(arrived)
	}
	return stats, nil
}

// OccurrencesByArea - число вызовов по районам за период, по убыванию
func (s *reportService) OccurrencesByArea(ctx context.Context, from, to time.Time) ([]models.AreaOccurrenceCount, error) {
	occurrences, err := s.occurrences.ListOccurrences(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("service: could not list occurrences: %w", err)
	}
	areas, err := s.areas.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}

	counts := make(map[string]int, len(areas))
	for _, o := range occurrences {
		if inRange(o.OpenedAt, from, to) {
			counts[o.AreaID]++
		}
	}

	out := make([]models.AreaOccurrenceCount, 0, len(areas))
	for _, a := range areas {
		out = append(out, models.AreaOccurrenceCount{AreaID: a.ID, AreaName: a.Name, Count: counts[a.ID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].AreaID < out[j].AreaID
	})
	return out, nil
}

// DistanceByType - средняя дистанция выезда по типу машины
func (s *reportService) DistanceByType(ctx context.Context, from, to time.Time) ([]models.TypeDistance, error) {
	attendances, err := s.occurrences.ListAttendances(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("service: could not list attendances: %w", err)
	}
	types, err := s.ambulanceIndex(ctx)
	if err != nil {
		return nil, err
	}

	sums := map[models.AmbulanceType]*models.TypeDistance{
		models.AmbulanceBasic:    {Type: models.AmbulanceBasic},
		models.AmbulanceAdvanced: {Type: models.AmbulanceAdvanced},
	}
	for _, a := range attendances {
		amb, ok := types[a.AmbulanceID]
		if !ok {
			continue
		}
		td := sums[amb.Type]
		td.MeanDistance += a.Distance
		td.AttendanceCount++
	}

	out := make([]models.TypeDistance, 0, len(sums))
	for _, t := range []models.AmbulanceType{models.AmbulanceBasic, models.AmbulanceAdvanced} {
		td := *sums[t]
		if td.AttendanceCount > 0 {
			td.MeanDistance /= float64(td.AttendanceCount)
		}
		out = append(out, td)
	}
	return out, nil
}

func (s *reportService) AttendanceRows(ctx context.Context, from, to time.Time) ([]models.AttendanceReportRow, error) {
	attendances, err := s.occurrences.ListAttendances(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("service: could not list attendances: %w", err)
	}
	ambulances, err := s.ambulanceIndex(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AttendanceReportRow, 0, len(attendances))
	for _, a := range attendances {
		o, err := s.occurrences.GetOccurrence(ctx, a.OccurrenceID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get occurrence: %w", err)
		}
		row := models.AttendanceReportRow{
			AttendanceID:     a.ID,
			OccurrenceID:     a.OccurrenceID,
			AreaID:           o.AreaID,
			Severity:         o.Severity,
			DispatchedAt:     a.DispatchedAt,
			ArrivedAt:        a.ArrivedAt,
			Distance:         a.Distance,
			EstimatedMinutes: a.EstimatedMinutes,
			ActualMinutes:    a.ActualMinutes,
			OutsideSLA:       a.OutsideSLA,
		}
		if amb, ok := ambulances[a.AmbulanceID]; ok {
			row.Plate = amb.Plate
			row.AmbulanceType = amb.Type
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DispatchedAt.Before(rows[j].DispatchedAt) })
	return rows, nil
}

func (s *reportService) ambulanceIndex(ctx context.Context) (map[uuid.UUID]*models.Ambulance, error) {
	list, err := s.fleet.ListAmbulances(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}
	out := make(map[uuid.UUID]*models.Ambulance, len(list))
	for _, a := range list {
		out[a.ID] = a
	}
	return out, nil
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(to) {
		return false
	}
	return true
}
