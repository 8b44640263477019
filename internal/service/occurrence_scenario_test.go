package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func TestOpen_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		input *models.Occurrence
		field string
	}{
		{"Unknown severity", &models.Occurrence{AreaID: "centro", IncidentType: "trauma", Severity: "CRITICAL"}, "severity"},
		{"Empty incident type", &models.Occurrence{AreaID: "centro", IncidentType: "  ", Severity: models.SeverityLow}, "incident_type"},
		{"Unknown area", &models.Occurrence{AreaID: "atlantida", IncidentType: "trauma", Severity: models.SeverityLow}, "area_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.occurrences.Open(f.ctx, tt.input)
			var validation *apperror.ValidationError
			require.True(t, errors.As(err, &validation))
			assert.Equal(t, tt.field, validation.Field)
		})
	}

	list, err := f.occurrences.List(f.ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLifecycle_DispatchArriveConclude(t *testing.T) {
	f := newFixture(t)
	amb, _ := f.staffed(models.AmbulanceAdvanced, "leste")
	occ := f.open(models.SeverityHigh, "centro")

	_, err := f.dispatch.Dispatch(f.ctx, occ.ID, amb.ID)
	require.NoError(t, err)

	f.now = f.now.Add(10 * time.Minute)
	details, err := f.occurrences.ConfirmArrival(f.ctx, occ.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusInService, details.Occurrence.Status)
	require.NotNil(t, details.Attendance.ArrivedAt)
	assert.Equal(t, f.now, *details.Attendance.ArrivedAt)
	assert.Equal(t, 10.0, *details.Attendance.ActualMinutes)
	assert.True(t, *details.Attendance.OutsideSLA, "10 minutes exceeds the 8 minute budget")
	assert.Equal(t, amb.ID, details.Ambulance.ID)
	assert.NotNil(t, details.Team)

	f.now = f.now.Add(30 * time.Minute)
	details, err = f.occurrences.Conclude(f.ctx, occ.ID, models.AmbulanceMaintenance)
	require.NoError(t, err)

	assert.Equal(t, models.StatusConcluded, details.Occurrence.Status)
	require.NotNil(t, details.Occurrence.ClosedAt)
	assert.Equal(t, f.now, *details.Occurrence.ClosedAt)
	assert.Equal(t, models.AmbulanceMaintenance, f.ambulanceStatus(amb.ID))

	require.Len(t, details.History, 4)
	assert.Equal(t, models.StatusConcluded, details.History[3].NewStatus)
	assert.Equal(t, models.StatusInService, details.History[3].PreviousStatus)
	assert.Equal(t,
		[]string{">OPEN", "OPEN>DISPATCHED", "DISPATCHED>IN_SERVICE", "IN_SERVICE>CONCLUDED"},
		f.publisher.statuses())
}

func TestConfirmArrival_WithinSLA(t *testing.T) {
	f := newFixture(t)
	amb, _ := f.staffed(models.AmbulanceBasic, "sul")
	occ := f.open(models.SeverityMedium, "centro")

	_, err := f.dispatch.Dispatch(f.ctx, occ.ID, amb.ID)
	require.NoError(t, err)

	f.now = f.now.Add(14*time.Minute + 30*time.Second)
	details, err := f.occurrences.ConfirmArrival(f.ctx, occ.ID)
	require.NoError(t, err)
	assert.False(t, *details.Attendance.OutsideSLA)
}

func TestCancel_ReleasesAmbulance(t *testing.T) {
	f := newFixture(t)
	amb, _ := f.staffed(models.AmbulanceBasic, "norte")
	occ := f.open(models.SeverityMedium, "centro")

	_, err := f.dispatch.Dispatch(f.ctx, occ.ID, amb.ID)
	require.NoError(t, err)
	require.Equal(t, models.AmbulanceBusy, f.ambulanceStatus(amb.ID))

	details, err := f.occurrences.Cancel(f.ctx, occ.ID, "  false alarm  ")
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, details.Occurrence.Status)
	assert.Equal(t, "false alarm", details.Occurrence.CancelJustification)
	assert.Equal(t, models.AmbulanceAvailable, f.ambulanceStatus(amb.ID))
	require.Len(t, details.History, 3)
	assert.Equal(t, "false alarm", details.History[2].Note)

	// Машина снова доступна для следующего вызова
	next := f.open(models.SeverityMedium, "centro")
	candidates, err := f.dispatch.FindCandidates(f.ctx, next.ID)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, amb.ID, candidates[0].Ambulance.ID)
}

func TestCancel_OpenOccurrence(t *testing.T) {
	f := newFixture(t)
	occ := f.open(models.SeverityLow, "sul")

	details, err := f.occurrences.Cancel(f.ctx, occ.ID, "duplicate call")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, details.Occurrence.Status)
	assert.Nil(t, details.Attendance)
}

func TestCancel_EmptyJustification(t *testing.T) {
	f := newFixture(t)
	occ := f.open(models.SeverityLow, "sul")

	for _, justification := range []string{"", "   ", "\t\n"} {
		_, err := f.occurrences.Cancel(f.ctx, occ.ID, justification)
		var validation *apperror.ValidationError
		require.True(t, errors.As(err, &validation))
		assert.Equal(t, "justification", validation.Field)
	}
	assert.Equal(t, models.StatusOpen, f.occurrenceStatus(occ.ID))
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	f := newFixture(t)
	amb, _ := f.staffed(models.AmbulanceBasic, "centro")

	concluded := f.open(models.SeverityMedium, "centro")
	_, err := f.dispatch.Dispatch(f.ctx, concluded.ID, amb.ID)
	require.NoError(t, err)
	_, err = f.occurrences.ConfirmArrival(f.ctx, concluded.ID)
	require.NoError(t, err)
	_, err = f.occurrences.Conclude(f.ctx, concluded.ID, "")
	require.NoError(t, err)

	cancelled := f.open(models.SeverityMedium, "centro")
	_, err = f.occurrences.Cancel(f.ctx, cancelled.ID, "caller hung up")
	require.NoError(t, err)

	for _, id := range []uuid.UUID{concluded.ID, cancelled.ID} {
		before := f.occurrenceStatus(id)
		history, err := f.occurrences.Details(f.ctx, id)
		require.NoError(t, err)

		var transition *apperror.InvalidTransitionError

		_, err = f.occurrences.ConfirmArrival(f.ctx, id)
		assert.True(t, errors.As(err, &transition), "confirm arrival")

		_, err = f.occurrences.Conclude(f.ctx, id, "")
		assert.True(t, errors.As(err, &transition), "conclude")

		_, err = f.occurrences.Cancel(f.ctx, id, "too late")
		assert.True(t, errors.As(err, &transition), "cancel")

		_, err = f.dispatch.Dispatch(f.ctx, id, amb.ID)
		assert.True(t, errors.As(err, &transition), "dispatch")
		var state *apperror.InvalidStateError
		assert.True(t, errors.As(err, &state), "dispatch")

		after, err := f.occurrences.Details(f.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, after.Occurrence.Status)
		assert.Len(t, after.History, len(history.History))
	}
	assert.Equal(t, models.AmbulanceAvailable, f.ambulanceStatus(amb.ID))
}

func TestIllegalTransitions(t *testing.T) {
	f := newFixture(t)
	occ := f.open(models.SeverityLow, "centro")

	var transition *apperror.InvalidTransitionError
	_, err := f.occurrences.ConfirmArrival(f.ctx, occ.ID)
	require.True(t, errors.As(err, &transition))
	assert.Equal(t, "OPEN", transition.From)
	assert.Equal(t, "IN_SERVICE", transition.To)

	_, err = f.occurrences.Conclude(f.ctx, occ.ID, "")
	assert.True(t, errors.As(err, &transition))
}

func TestConclude_InvalidReleaseStatus(t *testing.T) {
	f := newFixture(t)
	occ := f.open(models.SeverityLow, "centro")

	_, err := f.occurrences.Conclude(f.ctx, occ.ID, models.AmbulanceBusy)
	var validation *apperror.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestList_FiltersByStatus(t *testing.T) {
	f := newFixture(t)
	f.open(models.SeverityLow, "centro")
	cancelled := f.open(models.SeverityLow, "norte")
	_, err := f.occurrences.Cancel(f.ctx, cancelled.ID, "test")
	require.NoError(t, err)

	open, err := f.occurrences.List(f.ctx, models.StatusOpen)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	all, err := f.occurrences.List(f.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.occurrences.List(f.ctx, "WAITING")
	var validation *apperror.ValidationError
	assert.True(t, errors.As(err, &validation))
}
