package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/config"
	"github.com/shenikar/ambulance_dispatch/internal/graph"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

type serviceMocks struct {
	occurrences *mocks.MockOccurrenceService
	dispatch    *mocks.MockDispatchService
	fleet       *mocks.MockFleetService
	roster      *mocks.MockRosterService
	areas       *mocks.MockAreaService
	reports     *mocks.MockReportService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		occurrences: mocks.NewMockOccurrenceService(ctrl),
		dispatch:    mocks.NewMockDispatchService(ctrl),
		fleet:       mocks.NewMockFleetService(ctrl),
		roster:      mocks.NewMockRosterService(ctrl),
		areas:       mocks.NewMockAreaService(ctrl),
		reports:     mocks.NewMockReportService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{testAPIKey}}

	handler := NewHandler(Services{
		Occurrences: m.occurrences,
		Dispatch:    m.dispatch,
		Fleet:       m.fleet,
		Roster:      m.roster,
		Areas:       m.areas,
		Reports:     m.reports,
	}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestOpenOccurrence_Success(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	openedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	m.occurrences.EXPECT().
		Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *models.Occurrence) (*models.Occurrence, error) {
			assert.Equal(t, models.SeverityHigh, o.Severity)
			o.ID = id
			o.Status = models.StatusOpen
			o.OpenedAt = openedAt
			return o, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/occurrences",
		jsonBody(t, OpenOccurrenceRequest{AreaID: "centro", IncidentType: "cardiac arrest", Severity: "HIGH"}), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp OccurrenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "OPEN", resp.Status)
	assert.Equal(t, openedAt, resp.OpenedAt)
}

func TestOpenOccurrence_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)
	m.occurrences.EXPECT().Open(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/occurrences", bytes.NewBufferString(`{"area_id": "centro"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestOpenOccurrence_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	m.occurrences.EXPECT().Open(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/occurrences",
		jsonBody(t, OpenOccurrenceRequest{AreaID: "centro", IncidentType: "fall", Severity: "URGENT"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'oneof' tag")
}

func TestOpenOccurrence_UnknownArea(t *testing.T) {
	m, router := newTestHandler(t)
	m.occurrences.EXPECT().
		Open(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Validation("area_id", `unknown area "atlantida"`)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/occurrences",
		jsonBody(t, OpenOccurrenceRequest{AreaID: "atlantida", IncidentType: "fall", Severity: "LOW"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "atlantida")
}

func TestListOccurrences_StatusFilter(t *testing.T) {
	m, router := newTestHandler(t)
	list := []*models.Occurrence{{ID: uuid.New(), Status: models.StatusOpen}}
	m.occurrences.EXPECT().List(gomock.Any(), models.StatusOpen).Return(list, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/occurrences?status=OPEN", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []OccurrenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestGetOccurrenceDetails(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		ambulanceID := uuid.New()
		details := &models.OccurrenceDetails{
			Occurrence: &models.Occurrence{ID: id, Status: models.StatusDispatched},
			Attendance: &models.Attendance{ID: uuid.New(), OccurrenceID: id, AmbulanceID: ambulanceID, Route: []string{"norte", "centro"}},
			Ambulance:  &models.Ambulance{ID: ambulanceID, Plate: "ABC1234"},
			History: []*models.HistoryEntry{
				{NewStatus: models.StatusOpen},
				{PreviousStatus: models.StatusOpen, NewStatus: models.StatusDispatched},
			},
		}
		m.occurrences.EXPECT().Details(gomock.Any(), id).Return(details, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/occurrences/"+id.String()+"/details", nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp OccurrenceDetailsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "DISPATCHED", resp.Occurrence.Status)
		assert.Equal(t, []string{"norte", "centro"}, resp.Attendance.Route)
		assert.Equal(t, "ABC1234", resp.Ambulance.Plate)
		assert.Nil(t, resp.Team)
		assert.Len(t, resp.History, 2)
	})

	t.Run("Not found", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.occurrences.EXPECT().
			Details(gomock.Any(), id).
			Return(nil, fmt.Errorf("service: could not get occurrence: %w", apperror.NotFound("occurrence", id.String()))).
			Times(1)

		w := makeRequest(router, "GET", "/api/v1/occurrences/"+id.String()+"/details", nil, authHeader)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, router := newTestHandler(t)
		w := makeRequest(router, "GET", "/api/v1/occurrences/not-a-uuid/details", nil, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid occurrence ID")
	})
}

func TestFindCandidates(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		occurrenceID := uuid.New()
		team := &models.Team{ID: uuid.New(), Description: "Alfa"}
		candidates := []*models.Candidate{{
			Ambulance:        &models.Ambulance{ID: uuid.New(), Plate: "ABC1D23", Type: models.AmbulanceAdvanced, HomeAreaID: "norte"},
			Team:             team,
			Distance:         3,
			Route:            []string{"norte", "centro"},
			EstimatedMinutes: 3,
		}}
		m.dispatch.EXPECT().FindCandidates(gomock.Any(), occurrenceID).Return(candidates, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/dispatch/candidates/"+occurrenceID.String(), nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []CandidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "ABC1D23", resp[0].Plate)
		assert.Equal(t, "Alfa", resp[0].TeamDescription)
		assert.Equal(t, 3.0, resp[0].EstimatedMinutes)
	})

	t.Run("Empty list is not an error", func(t *testing.T) {
		m, router := newTestHandler(t)
		occurrenceID := uuid.New()
		m.dispatch.EXPECT().FindCandidates(gomock.Any(), occurrenceID).Return([]*models.Candidate{}, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/dispatch/candidates/"+occurrenceID.String(), nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Occurrence not open", func(t *testing.T) {
		m, router := newTestHandler(t)
		occurrenceID := uuid.New()
		m.dispatch.EXPECT().
			FindCandidates(gomock.Any(), occurrenceID).
			Return(nil, &apperror.InvalidStateError{Entity: "occurrence", ID: occurrenceID.String(), Current: "CONCLUDED", Reason: "occurrence is not OPEN"}).
			Times(1)

		w := makeRequest(router, "GET", "/api/v1/dispatch/candidates/"+occurrenceID.String(), nil, authHeader)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDispatch(t *testing.T) {
	occurrenceID := uuid.New()
	ambulanceID := uuid.New()
	body := DispatchRequest{OccurrenceID: occurrenceID, AmbulanceID: ambulanceID}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Lost reservation race",
			err:        fmt.Errorf("service: could not dispatch: %w", &apperror.ConflictError{Reason: "ambulance is no longer available, refresh candidates", Err: &apperror.AlreadyReservedError{AmbulanceID: ambulanceID.String()}}),
			wantStatus: http.StatusConflict,
			wantBody:   "refresh candidates",
		},
		{
			name:       "Occurrence already dispatched",
			err:        &apperror.InvalidStateError{Entity: "occurrence", ID: occurrenceID.String(), Current: "DISPATCHED", Reason: "occurrence is not OPEN", Err: &apperror.InvalidTransitionError{From: "DISPATCHED", To: "DISPATCHED"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "not OPEN",
		},
		{
			name:       "Wrong ambulance type",
			err:        apperror.Validation("ambulance_id", "HIGH occurrence requires ADVANCED ambulance, got BASIC"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "requires ADVANCED",
		},
		{
			name:       "Infrastructure failure",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.dispatch.EXPECT().Dispatch(gomock.Any(), occurrenceID, ambulanceID).Return(nil, tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/dispatch", jsonBody(t, body), authHeader)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}

	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		attendance := &models.Attendance{ID: uuid.New(), OccurrenceID: occurrenceID, AmbulanceID: ambulanceID, Distance: 7, SLAMaxMinutes: 8}
		m.dispatch.EXPECT().Dispatch(gomock.Any(), occurrenceID, ambulanceID).Return(attendance, nil).Times(1)

		w := makeRequest(router, "POST", "/api/v1/dispatch", jsonBody(t, body), authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp AttendanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, attendance.ID, resp.ID)
		assert.Equal(t, 8, resp.SLAMaxMinutes)
	})

	t.Run("Missing ambulance", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.dispatch.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "POST", "/api/v1/dispatch", jsonBody(t, map[string]string{"occurrence_id": occurrenceID.String()}), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelOccurrence(t *testing.T) {
	t.Run("Missing justification", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.occurrences.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "POST", "/api/v1/occurrences/"+uuid.New().String()+"/cancel", jsonBody(t, CancelRequest{}), authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "'Justification' failed on the 'required' tag")
	})

	t.Run("Blank justification rejected by service", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.occurrences.EXPECT().
			Cancel(gomock.Any(), id, "   ").
			Return(nil, apperror.Validation("justification", "must not be empty")).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/occurrences/"+id.String()+"/cancel", jsonBody(t, CancelRequest{Justification: "   "}), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Terminal occurrence", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.occurrences.EXPECT().
			Cancel(gomock.Any(), id, "late").
			Return(nil, &apperror.InvalidTransitionError{From: "CONCLUDED", To: "CANCELLED"}).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/occurrences/"+id.String()+"/cancel", jsonBody(t, CancelRequest{Justification: "late"}), authHeader)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "CONCLUDED")
	})

	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.occurrences.EXPECT().
			Cancel(gomock.Any(), id, "false alarm").
			Return(&models.OccurrenceDetails{Occurrence: &models.Occurrence{ID: id, Status: models.StatusCancelled, CancelJustification: "false alarm"}}, nil).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/occurrences/"+id.String()+"/cancel", jsonBody(t, CancelRequest{Justification: "false alarm"}), authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp OccurrenceDetailsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CANCELLED", resp.Occurrence.Status)
		assert.Equal(t, "false alarm", resp.Occurrence.CancelJustification)
	})
}

func TestConcludeOccurrence(t *testing.T) {
	t.Run("Empty body releases to AVAILABLE", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.occurrences.EXPECT().
			Conclude(gomock.Any(), id, models.AmbulanceStatus("")).
			Return(&models.OccurrenceDetails{Occurrence: &models.Occurrence{ID: id, Status: models.StatusConcluded}}, nil).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/occurrences/"+id.String()+"/conclude", nil, authHeader)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Release to maintenance", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.occurrences.EXPECT().
			Conclude(gomock.Any(), id, models.AmbulanceMaintenance).
			Return(&models.OccurrenceDetails{Occurrence: &models.Occurrence{ID: id, Status: models.StatusConcluded}}, nil).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/occurrences/"+id.String()+"/conclude", jsonBody(t, ConcludeRequest{ReleaseStatus: "MAINTENANCE"}), authHeader)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Busy is not a release status", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.occurrences.EXPECT().Conclude(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "POST", "/api/v1/occurrences/"+uuid.New().String()+"/conclude", jsonBody(t, ConcludeRequest{ReleaseStatus: "BUSY"}), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestConfirmArrival_InvalidTransition(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	m.occurrences.EXPECT().
		ConfirmArrival(gomock.Any(), id).
		Return(nil, &apperror.InvalidTransitionError{From: "OPEN", To: "IN_SERVICE"}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/occurrences/"+id.String()+"/confirm-arrival", nil, authHeader)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateAmbulance(t *testing.T) {
	t.Run("Plate with separator passes validation", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.fleet.EXPECT().
			CreateAmbulance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Ambulance) (*models.Ambulance, error) {
				a.ID = uuid.New()
				a.Plate = "ABC1D23"
				a.Status = models.AmbulanceAvailable
				return a, nil
			}).Times(1)

		w := makeRequest(router, "POST", "/api/v1/ambulances",
			jsonBody(t, CreateAmbulanceRequest{Plate: "abc-1d23", Type: "BASIC", HomeAreaID: "sul"}), authHeader)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp AmbulanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ABC1D23", resp.Plate)
	})

	t.Run("Invalid plate", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.fleet.EXPECT().CreateAmbulance(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "POST", "/api/v1/ambulances",
			jsonBody(t, CreateAmbulanceRequest{Plate: "12-3456", Type: "BASIC", HomeAreaID: "sul"}), authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "failed on the 'plate' tag")
	})

	t.Run("Duplicate plate", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.fleet.EXPECT().
			CreateAmbulance(gomock.Any(), gomock.Any()).
			Return(nil, &apperror.ConflictError{Reason: "plate ABC1234 already registered"}).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/ambulances",
			jsonBody(t, CreateAmbulanceRequest{Plate: "ABC1234", Type: "ADVANCED", HomeAreaID: "sul"}), authHeader)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDeleteAmbulance_Referenced(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	m.fleet.EXPECT().
		DeleteAmbulance(gomock.Any(), id).
		Return(&apperror.InvalidStateError{Entity: "ambulance", ID: id.String(), Current: "AVAILABLE", Reason: "referenced by 2 attendance(s)"}).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/ambulances/"+id.String(), nil, authHeader)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateTeam(t *testing.T) {
	t.Run("Exclusivity violation", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.roster.EXPECT().
			CreateTeam(gomock.Any(), gomock.Any()).
			Return(nil, &apperror.ExclusivityError{Resource: "professional", ResourceID: "p1", ConflictingID: "t1"}).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/teams",
			jsonBody(t, TeamRequest{Shift: "MORNING", MemberIDs: []uuid.UUID{uuid.New(), uuid.New()}}), authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already assigned")
	})

	t.Run("Too many members", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.roster.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Times(0)

		members := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
		w := makeRequest(router, "POST", "/api/v1/teams", jsonBody(t, TeamRequest{Shift: "NIGHT", MemberIDs: members}), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateProfessional(t *testing.T) {
	active := false

	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.roster.EXPECT().
			UpdateProfessional(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Professional) (*models.Professional, error) {
				assert.Equal(t, id, p.ID)
				assert.Equal(t, models.ShiftNight, p.Shift)
				assert.False(t, p.Active)
				return p, nil
			}).
			Times(1)

		w := makeRequest(router, "PUT", "/api/v1/professionals/"+id.String(),
			jsonBody(t, UpdateProfessionalRequest{Name: "Ana Souza", Role: "NURSE", Shift: "NIGHT", Active: &active}), authHeader)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ProfessionalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "NIGHT", resp.Shift)
	})

	t.Run("Member of a team", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.roster.EXPECT().
			UpdateProfessional(gomock.Any(), gomock.Any()).
			Return(nil, &apperror.InvalidStateError{Entity: "professional", ID: id.String(), Current: "MORNING", Reason: "member of team t1"}).
			Times(1)

		w := makeRequest(router, "PUT", "/api/v1/professionals/"+id.String(),
			jsonBody(t, UpdateProfessionalRequest{Name: "Ana Souza", Role: "NURSE", Shift: "NIGHT", Active: &active}), authHeader)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Active flag is required", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.roster.EXPECT().UpdateProfessional(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "PUT", "/api/v1/professionals/"+uuid.NewString(),
			jsonBody(t, UpdateProfessionalRequest{Name: "Ana Souza", Role: "NURSE", Shift: "NIGHT"}), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.roster.EXPECT().UpdateProfessional(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "PUT", "/api/v1/professionals/not-a-uuid",
			jsonBody(t, UpdateProfessionalRequest{Name: "Ana Souza", Role: "NURSE", Shift: "NIGHT", Active: &active}), authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteTeam(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.roster.EXPECT().DeleteTeam(gomock.Any(), id).Return(nil).Times(1)

		w := makeRequest(router, "DELETE", "/api/v1/teams/"+id.String(), nil, authHeader)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Ambulance on attendance", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.roster.EXPECT().
			DeleteTeam(gomock.Any(), id).
			Return(&apperror.InvalidStateError{Entity: "team", ID: id.String(), Current: "MORNING", Reason: "ambulance a1 is on an attendance"}).
			Times(1)

		w := makeRequest(router, "DELETE", "/api/v1/teams/"+id.String(), nil, authHeader)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		m, router := newTestHandler(t)
		id := uuid.New()
		m.roster.EXPECT().DeleteTeam(gomock.Any(), id).Return(apperror.NotFound("team", id.String())).Times(1)

		w := makeRequest(router, "DELETE", "/api/v1/teams/"+id.String(), nil, authHeader)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListTeams_ByShift(t *testing.T) {
	m, router := newTestHandler(t)
	m.roster.EXPECT().TeamsOnShift(gomock.Any(), models.ShiftNight).Return([]*models.Team{{ID: uuid.New()}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/teams?shift=NIGHT", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/teams?shift=EVENING", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReloadGraph(t *testing.T) {
	m, router := newTestHandler(t)
	g, err := graph.Build(
		[]models.Area{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]models.Edge{{From: "a", To: "b", Weight: 5}, {From: "b", To: "c", Weight: 3}},
	)
	require.NoError(t, err)
	m.areas.EXPECT().Reload(gomock.Any()).Return(g, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/areas/graph/reload", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"areas": 3, "edges": 2}`, w.Body.String())
}

func TestReports(t *testing.T) {
	t.Run("Occurrences by area with period", func(t *testing.T) {
		m, router := newTestHandler(t)
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		m.reports.EXPECT().
			OccurrencesByArea(gomock.Any(), from, to).
			Return([]models.AreaOccurrenceCount{{AreaID: "centro", AreaName: "Centro", Count: 4}}, nil).
			Times(1)

		w := makeRequest(router, "GET", "/api/v1/reports/occurrences-by-area?from=2026-03-01&to=2026-03-02", nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"area_id":"centro","area_name":"Centro","count":4}]`, w.Body.String())
	})

	t.Run("Invalid date", func(t *testing.T) {
		_, router := newTestHandler(t)
		w := makeRequest(router, "GET", "/api/v1/reports/distance-by-type?from=yesterday", nil, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("XLSX export", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.reports.EXPECT().
			AttendanceRows(gomock.Any(), time.Time{}, time.Time{}).
			Return([]models.AttendanceReportRow{{AttendanceID: uuid.New(), Plate: "ABC1234"}}, nil).
			Times(1)

		w := makeRequest(router, "GET", "/api/v1/reports/attendances.xlsx", nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attendances.xlsx")
		assert.NotZero(t, w.Body.Len())
	})

	t.Run("Dashboard", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.reports.EXPECT().Dashboard(gomock.Any()).Return(&models.DashboardStats{OpenOccurrences: 2}, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/dashboard", nil, authHeader)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"open_occurrences":2`)
	})
}

func TestHealthCheck_NoKeyRequired(t *testing.T) {
	_, router := newTestHandler(t)
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutes_RequireKey(t *testing.T) {
	_, router := newTestHandler(t)
	w := makeRequest(router, "GET", "/api/v1/occurrences", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key", "second-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{"Header key", map[string]string{"X-API-Key": "valid-key"}, http.StatusOK, ""},
		{"Bearer key", map[string]string{"Authorization": "Bearer second-key"}, http.StatusOK, ""},
		{"Missing key", map[string]string{}, http.StatusUnauthorized, "API key required"},
		{"Invalid key", map[string]string{"X-API-Key": "invalid-key"}, http.StatusUnauthorized, "Invalid API key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "GET", "/test", nil, tt.headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperror.Validation("f", "r"), http.StatusBadRequest},
		{&apperror.CompositionError{Reason: "r"}, http.StatusBadRequest},
		{&apperror.ExclusivityError{}, http.StatusBadRequest},
		{apperror.NotFound("team", "1"), http.StatusNotFound},
		{&apperror.ConflictError{Reason: "r"}, http.StatusConflict},
		{&apperror.InvalidStateError{}, http.StatusUnprocessableEntity},
		{&apperror.InvalidTransitionError{}, http.StatusUnprocessableEntity},
		{&apperror.NoRouteError{}, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		got, _ := statusFor(fmt.Errorf("wrapped: %w", tt.err))
		assert.Equal(t, tt.want, got, "%T", tt.err)
	}
}
