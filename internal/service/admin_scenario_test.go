package service_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func TestFleet_CreateAmbulance(t *testing.T) {
	f := newFixture(t)

	t.Run("Plate is normalized", func(t *testing.T) {
		a, err := f.fleet.CreateAmbulance(f.ctx, &models.Ambulance{Plate: "abc-1d23", Type: models.AmbulanceBasic, HomeAreaID: "sul"})
		require.NoError(t, err)
		assert.Equal(t, "ABC1D23", a.Plate)
		assert.Equal(t, models.AmbulanceAvailable, a.Status)
	})

	t.Run("Duplicate plate", func(t *testing.T) {
		_, err := f.fleet.CreateAmbulance(f.ctx, &models.Ambulance{Plate: "ABC 1D23", Type: models.AmbulanceBasic, HomeAreaID: "sul"})
		var conflict *apperror.ConflictError
		assert.True(t, errors.As(err, &conflict))
	})

	invalid := []struct {
		name  string
		input *models.Ambulance
		field string
	}{
		{"Bad plate", &models.Ambulance{Plate: "12-ABCD", Type: models.AmbulanceBasic, HomeAreaID: "sul"}, "plate"},
		{"Bad type", &models.Ambulance{Plate: "XYZ9876", Type: "HELICOPTER", HomeAreaID: "sul"}, "type"},
		{"Unknown area", &models.Ambulance{Plate: "XYZ9876", Type: models.AmbulanceBasic, HomeAreaID: "nowhere"}, "home_area_id"},
		{"Created busy", &models.Ambulance{Plate: "XYZ9876", Type: models.AmbulanceBasic, HomeAreaID: "sul", Status: models.AmbulanceBusy}, "status"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.fleet.CreateAmbulance(f.ctx, tt.input)
			var validation *apperror.ValidationError
			require.True(t, errors.As(err, &validation))
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}

func TestFleet_SetStatus(t *testing.T) {
	f := newFixture(t)
	amb, _ := f.staffed(models.AmbulanceBasic, "centro")

	a, err := f.fleet.SetStatus(f.ctx, amb.ID, models.AmbulanceMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceMaintenance, a.Status)

	// В обслуживании машина не попадает в кандидаты
	occ := f.open(models.SeverityMedium, "centro")
	candidates, err := f.dispatch.FindCandidates(f.ctx, occ.ID)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	_, err = f.fleet.SetStatus(f.ctx, amb.ID, models.AmbulanceBusy)
	var validation *apperror.ValidationError
	assert.True(t, errors.As(err, &validation))

	_, err = f.fleet.SetStatus(f.ctx, amb.ID, models.AmbulanceAvailable)
	require.NoError(t, err)
	_, err = f.dispatch.Dispatch(f.ctx, occ.ID, amb.ID)
	require.NoError(t, err)

	_, err = f.fleet.SetStatus(f.ctx, amb.ID, models.AmbulanceInactive)
	var state *apperror.InvalidStateError
	assert.True(t, errors.As(err, &state))
}

func TestFleet_DeleteAmbulance(t *testing.T) {
	f := newFixture(t)

	t.Run("Free ambulance", func(t *testing.T) {
		a := f.ambulance(models.AmbulanceBasic, "norte")
		require.NoError(t, f.fleet.DeleteAmbulance(f.ctx, a.ID))
		_, err := f.fleet.GetAmbulance(f.ctx, a.ID)
		var notFound *apperror.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("Assigned to team", func(t *testing.T) {
		a, _ := f.staffed(models.AmbulanceBasic, "norte")
		err := f.fleet.DeleteAmbulance(f.ctx, a.ID)
		var state *apperror.InvalidStateError
		assert.True(t, errors.As(err, &state))
	})

	t.Run("Referenced by attendance", func(t *testing.T) {
		a, team := f.staffed(models.AmbulanceBasic, "norte")
		occ := f.open(models.SeverityLow, "norte")
		_, err := f.dispatch.Dispatch(f.ctx, occ.ID, a.ID)
		require.NoError(t, err)

		err = f.fleet.DeleteAmbulance(f.ctx, a.ID)
		var state *apperror.InvalidStateError
		require.True(t, errors.As(err, &state), "busy")

		_, err = f.occurrences.Cancel(f.ctx, occ.ID, "test")
		require.NoError(t, err)
		team.AmbulanceID = nil
		team.MemberIDs = team.MemberIDs[:2]
		_, err = f.roster.UpdateTeam(f.ctx, team)
		require.NoError(t, err)

		err = f.fleet.DeleteAmbulance(f.ctx, a.ID)
		require.True(t, errors.As(err, &state), "attendance history")
		assert.Contains(t, state.Reason, "attendance")
	})
}

func TestRoster_TeamRules(t *testing.T) {
	f := newFixture(t)
	amb := f.ambulance(models.AmbulanceAdvanced, "centro")
	physician := f.professional(models.RolePhysician, models.ShiftMorning)
	nurse := f.professional(models.RoleNurse, models.ShiftMorning)
	driver := f.professional(models.RoleDriver, models.ShiftMorning)

	id := amb.ID
	team, err := f.roster.CreateTeam(f.ctx, &models.Team{
		Description: "Alfa",
		Shift:       models.ShiftMorning,
		AmbulanceID: &id,
		MemberIDs:   []uuid.UUID{physician.ID, nurse.ID, driver.ID},
	})
	require.NoError(t, err)

	t.Run("Missing physician on ADVANCED", func(t *testing.T) {
		other := f.ambulance(models.AmbulanceAdvanced, "sul")
		oid := other.ID
		_, err := f.roster.CreateTeam(f.ctx, &models.Team{
			Shift:       models.ShiftMorning,
			AmbulanceID: &oid,
			MemberIDs: []uuid.UUID{
				f.professional(models.RoleNurse, models.ShiftMorning).ID,
				f.professional(models.RoleDriver, models.ShiftMorning).ID,
			},
		})
		var composition *apperror.CompositionError
		assert.True(t, errors.As(err, &composition))
	})

	t.Run("Professional already on shift", func(t *testing.T) {
		other := f.ambulance(models.AmbulanceBasic, "sul")
		oid := other.ID
		_, err := f.roster.CreateTeam(f.ctx, &models.Team{
			Shift:       models.ShiftMorning,
			AmbulanceID: &oid,
			MemberIDs:   []uuid.UUID{nurse.ID, f.professional(models.RoleDriver, models.ShiftMorning).ID},
		})
		var exclusivity *apperror.ExclusivityError
		require.True(t, errors.As(err, &exclusivity))
		assert.Equal(t, nurse.ID.String(), exclusivity.ResourceID)
		assert.Equal(t, team.ID.String(), exclusivity.ConflictingID)
	})

	t.Run("Ambulance already on shift", func(t *testing.T) {
		_, err := f.roster.CreateTeam(f.ctx, &models.Team{
			Shift:       models.ShiftMorning,
			AmbulanceID: &id,
			MemberIDs: []uuid.UUID{
				f.professional(models.RolePhysician, models.ShiftMorning).ID,
				f.professional(models.RoleNurse, models.ShiftMorning).ID,
				f.professional(models.RoleDriver, models.ShiftMorning).ID,
			},
		})
		var exclusivity *apperror.ExclusivityError
		require.True(t, errors.As(err, &exclusivity))
		assert.Equal(t, "ambulance", exclusivity.Resource)
	})

	t.Run("Inactive member", func(t *testing.T) {
		p, err := f.roster.CreateProfessional(f.ctx, &models.Professional{
			Name: "Inativo", Role: models.RoleDriver, Shift: models.ShiftMorning, Active: false,
		})
		require.NoError(t, err)
		_, err = f.roster.CreateTeam(f.ctx, &models.Team{
			Shift:     models.ShiftMorning,
			MemberIDs: []uuid.UUID{f.professional(models.RoleNurse, models.ShiftMorning).ID, p.ID},
		})
		var validation *apperror.ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("Unknown member", func(t *testing.T) {
		_, err := f.roster.CreateTeam(f.ctx, &models.Team{
			Shift:     models.ShiftMorning,
			MemberIDs: []uuid.UUID{uuid.New()},
		})
		var validation *apperror.ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("Update keeps own members", func(t *testing.T) {
		team.Description = "Alfa renamed"
		updated, err := f.roster.UpdateTeam(f.ctx, team)
		require.NoError(t, err)
		assert.Equal(t, "Alfa renamed", updated.Description)
	})

	t.Run("Delete member of a team", func(t *testing.T) {
		err := f.roster.DeleteProfessional(f.ctx, physician.ID)
		var state *apperror.InvalidStateError
		assert.True(t, errors.As(err, &state))
	})

	t.Run("Same ambulance on another shift", func(t *testing.T) {
		_, err := f.roster.CreateTeam(f.ctx, &models.Team{
			Shift:       models.ShiftNight,
			AmbulanceID: &id,
			MemberIDs: []uuid.UUID{
				f.professional(models.RolePhysician, models.ShiftNight).ID,
				f.professional(models.RoleNurse, models.ShiftNight).ID,
				f.professional(models.RoleDriver, models.ShiftNight).ID,
			},
		})
		require.NoError(t, err)
	})
}

func TestRoster_UpdateProfessional(t *testing.T) {
	f := newFixture(t)
	_, team := f.staffed(models.AmbulanceBasic, "norte")
	nurse := f.professionalByID(team.MemberIDs[0])

	t.Run("Rename member", func(t *testing.T) {
		changed := *nurse
		changed.Name = "Enfermeira Renomeada"
		changed.Contact = "+55 11 90000-0000"
		updated, err := f.roster.UpdateProfessional(f.ctx, &changed)
		require.NoError(t, err)
		assert.Equal(t, "Enfermeira Renomeada", updated.Name)
	})

	t.Run("Member cannot change shift", func(t *testing.T) {
		changed := *nurse
		changed.Shift = models.ShiftNight
		_, err := f.roster.UpdateProfessional(f.ctx, &changed)
		var state *apperror.InvalidStateError
		require.True(t, errors.As(err, &state))
		assert.Contains(t, state.Reason, team.ID.String())
	})

	t.Run("Member cannot be deactivated", func(t *testing.T) {
		changed := *nurse
		changed.Active = false
		_, err := f.roster.UpdateProfessional(f.ctx, &changed)
		var state *apperror.InvalidStateError
		assert.True(t, errors.As(err, &state))
	})

	t.Run("Rejected update keeps stored values", func(t *testing.T) {
		p := f.professionalByID(nurse.ID)
		assert.Equal(t, models.ShiftMorning, p.Shift)
		assert.True(t, p.Active)
		assert.Equal(t, "Enfermeira Renomeada", p.Name)
	})

	t.Run("Free professional changes shift", func(t *testing.T) {
		p := f.professional(models.RoleDriver, models.ShiftMorning)
		p.Shift = models.ShiftAfternoon
		p.Active = false
		updated, err := f.roster.UpdateProfessional(f.ctx, p)
		require.NoError(t, err)
		assert.Equal(t, models.ShiftAfternoon, updated.Shift)
		assert.False(t, updated.Active)
	})

	t.Run("Invalid role", func(t *testing.T) {
		changed := *nurse
		changed.Role = "SURGEON"
		_, err := f.roster.UpdateProfessional(f.ctx, &changed)
		var validation *apperror.ValidationError
		require.True(t, errors.As(err, &validation))
		assert.Equal(t, "role", validation.Field)
	})

	t.Run("Unknown professional", func(t *testing.T) {
		_, err := f.roster.UpdateProfessional(f.ctx, &models.Professional{
			ID: uuid.New(), Name: "Ninguem", Role: models.RoleNurse, Shift: models.ShiftMorning, Active: true,
		})
		var notFound *apperror.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestRoster_DeleteTeam(t *testing.T) {
	f := newFixture(t)

	t.Run("Frees ambulance and members", func(t *testing.T) {
		a, team := f.staffed(models.AmbulanceBasic, "sul")

		require.NoError(t, f.roster.DeleteTeam(f.ctx, team.ID))
		_, err := f.roster.GetTeam(f.ctx, team.ID)
		var notFound *apperror.NotFoundError
		require.True(t, errors.As(err, &notFound))

		// Бывший участник может сменить смену, а машина и специалисты - быть удалены
		for _, id := range team.MemberIDs {
			require.NoError(t, f.roster.DeleteProfessional(f.ctx, id))
		}
		require.NoError(t, f.fleet.DeleteAmbulance(f.ctx, a.ID))
	})

	t.Run("Busy ambulance", func(t *testing.T) {
		a, team := f.staffed(models.AmbulanceBasic, "norte")
		occ := f.open(models.SeverityLow, "norte")
		_, err := f.dispatch.Dispatch(f.ctx, occ.ID, a.ID)
		require.NoError(t, err)

		err = f.roster.DeleteTeam(f.ctx, team.ID)
		var state *apperror.InvalidStateError
		require.True(t, errors.As(err, &state))
		assert.Equal(t, "team", state.Entity)
		_, err = f.roster.GetTeam(f.ctx, team.ID)
		require.NoError(t, err)

		// После закрытия вызова экипаж удаляется, карточка остаётся доступной без него
		_, err = f.occurrences.Cancel(f.ctx, occ.ID, "test")
		require.NoError(t, err)
		require.NoError(t, f.roster.DeleteTeam(f.ctx, team.ID))

		details, err := f.occurrences.Details(f.ctx, occ.ID)
		require.NoError(t, err)
		assert.Nil(t, details.Team)
		assert.Nil(t, details.Attendance.TeamID)
	})

	t.Run("Unknown team", func(t *testing.T) {
		err := f.roster.DeleteTeam(f.ctx, uuid.New())
		var notFound *apperror.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

// Удаление ресурса и сохранение экипажа, ссылающегося на него, не могут
// пройти оба: проверка и запись идут в одной транзакции.
func TestAdmin_DeleteRacesTeamSave(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 25; i++ {
		amb := f.ambulance(models.AmbulanceBasic, "centro")
		nurse := f.professional(models.RoleNurse, models.ShiftAfternoon)
		driver := f.professional(models.RoleDriver, models.ShiftAfternoon)
		id := amb.ID

		var (
			wg                       sync.WaitGroup
			teamErr, profErr, ambErr error
		)
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, teamErr = f.roster.CreateTeam(f.ctx, &models.Team{
				Shift:       models.ShiftAfternoon,
				AmbulanceID: &id,
				MemberIDs:   []uuid.UUID{nurse.ID, driver.ID},
			})
		}()
		go func() {
			defer wg.Done()
			profErr = f.roster.DeleteProfessional(f.ctx, nurse.ID)
		}()
		go func() {
			defer wg.Done()
			ambErr = f.fleet.DeleteAmbulance(f.ctx, id)
		}()
		wg.Wait()

		if teamErr == nil {
			var state *apperror.InvalidStateError
			require.True(t, errors.As(profErr, &state), "professional deleted while in a team")
			require.True(t, errors.As(ambErr, &state), "ambulance deleted while in a team")
			continue
		}
		var validation *apperror.ValidationError
		require.True(t, errors.As(teamErr, &validation), "unexpected team error: %v", teamErr)
		teams, err := f.roster.ListTeams(f.ctx)
		require.NoError(t, err)
		for _, team := range teams {
			assert.False(t, team.HasMember(nurse.ID))
		}
	}
}

func TestAreas_SaveTopology(t *testing.T) {
	f := newFixture(t)

	err := f.areas.SaveTopology(f.ctx, []models.Area{{ID: "oeste", Name: "Oeste"}}, []models.Edge{{From: "sul", To: "oeste", Weight: 2}})
	require.NoError(t, err)

	areas, err := f.areas.ListAreas(f.ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 7)

	d, route, err := f.holder.ShortestDistance("norte", "oeste")
	require.NoError(t, err)
	assert.Equal(t, 10.0, d)
	assert.Equal(t, []string{"norte", "centro", "sul", "oeste"}, route)

	err = f.areas.SaveTopology(f.ctx, nil, []models.Edge{{From: "sul", To: "oeste", Weight: -1}})
	var validation *apperror.ValidationError
	assert.True(t, errors.As(err, &validation))

	err = f.areas.SaveTopology(f.ctx, nil, []models.Edge{{From: "sul", To: "lua", Weight: 1}})
	assert.True(t, errors.As(err, &validation))

	// Отклонённая топология не меняет граф
	d, _, err = f.holder.ShortestDistance("norte", "oeste")
	require.NoError(t, err)
	assert.Equal(t, 10.0, d)
}

func TestReports(t *testing.T) {
	f := newFixture(t)
	basic, _ := f.staffed(models.AmbulanceBasic, "norte")
	adv, _ := f.staffed(models.AmbulanceAdvanced, "centro")
	f.ambulance(models.AmbulanceBasic, "sul")

	first := f.open(models.SeverityMedium, "centro")
	_, err := f.dispatch.Dispatch(f.ctx, first.ID, basic.ID)
	require.NoError(t, err)

	f.now = f.now.Add(time.Minute)
	second := f.open(models.SeverityHigh, "sul")
	_, err = f.dispatch.Dispatch(f.ctx, second.ID, adv.ID)
	require.NoError(t, err)

	f.open(models.SeverityLow, "sul")

	// 6 и 7 минут в пути
	f.now = f.now.Add(5 * time.Minute)
	_, err = f.occurrences.ConfirmArrival(f.ctx, first.ID)
	require.NoError(t, err)
	f.now = f.now.Add(2 * time.Minute)
	_, err = f.occurrences.ConfirmArrival(f.ctx, second.ID)
	require.NoError(t, err)

	t.Run("Dashboard", func(t *testing.T) {
		stats, err := f.reports.Dashboard(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.OpenOccurrences)
		assert.Equal(t, 3, stats.OccurrencesToday)
		assert.Equal(t, 3, stats.AmbulancesTotal)
		assert.Equal(t, 1, stats.AmbulancesAvailable)
		assert.Equal(t, 2, stats.Teams)
		assert.Equal(t, 5, stats.Professionals)
		assert.InDelta(t, 6.5, stats.MeanResponseMinutes, 1e-9)
	})

	t.Run("Occurrences by area", func(t *testing.T) {
		rows, err := f.reports.OccurrencesByArea(f.ctx, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, rows, 6)
		assert.Equal(t, "sul", rows[0].AreaID)
		assert.Equal(t, 2, rows[0].Count)
		assert.Equal(t, "centro", rows[1].AreaID)
		assert.Equal(t, 1, rows[1].Count)
		assert.Equal(t, 0, rows[5].Count)
	})

	t.Run("Distance by type", func(t *testing.T) {
		rows, err := f.reports.DistanceByType(f.ctx, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, models.TypeDistance{Type: models.AmbulanceBasic, MeanDistance: 3, AttendanceCount: 1}, rows[0])
		assert.Equal(t, models.TypeDistance{Type: models.AmbulanceAdvanced, MeanDistance: 5, AttendanceCount: 1}, rows[1])
	})

	t.Run("Period excludes older attendances", func(t *testing.T) {
		rows, err := f.reports.AttendanceRows(f.ctx, f.now.Add(time.Hour), time.Time{})
		require.NoError(t, err)
		assert.Empty(t, rows)

		rows, err = f.reports.AttendanceRows(f.ctx, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, basic.Plate, rows[0].Plate)
		assert.False(t, *rows[1].OutsideSLA)
	})
}
