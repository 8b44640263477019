package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ambulance_dispatch/internal/apperror"
	"github.com/shenikar/ambulance_dispatch/internal/config"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

// Services - сервисы, которые обслуживает REST API
type Services struct {
	Occurrences service.OccurrenceService
	Dispatch    service.DispatchService
	Fleet       service.FleetService
	Roster      service.RosterService
	Areas       service.AreaService
	Reports     service.ReportService
}

type Handler struct {
	occurrences service.OccurrenceService
	dispatch    service.DispatchService
	fleet       service.FleetService
	roster      service.RosterService
	areas       service.AreaService
	reports     service.ReportService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		occurrences: services.Occurrences,
		dispatch:    services.Dispatch,
		fleet:       services.Fleet,
		roster:      services.Roster,
		areas:       services.Areas,
		reports:     services.Reports,
		logger:      logger,
		validate:    newValidator(),
		cfg:         cfg,
	}
}

// newValidator регистрирует тег plate: ABC1234 или ABC1D23, разделители допускаются
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("plate", func(fl validator.FieldLevel) bool {
		_, ok := models.NormalizePlate(fl.Field().String())
		return ok
	})
	return v
}

// bind разбирает JSON и проверяет его валидатором. allowEmpty разрешает пустое тело.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, dst any, allowEmpty bool) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePeriod читает from/to (RFC3339 или YYYY-MM-DD); отсутствующая граница - без ограничения
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	var bounds [2]time.Time
	for i, key := range []string{"from", "to"} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			if t, err = time.Parse(time.DateOnly, raw); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key + " date"})
				return time.Time{}, time.Time{}, false
			}
		}
		bounds[i] = t
	}
	return bounds[0], bounds[1], true
}

// statusFor сопоставляет типизированную ошибку HTTP-статусу и возвращает её для тела ответа
func statusFor(err error) (int, error) {
	var (
		validation  *apperror.ValidationError
		composition *apperror.CompositionError
		exclusivity *apperror.ExclusivityError
		notFound    *apperror.NotFoundError
		conflict    *apperror.ConflictError
		state       *apperror.InvalidStateError
		transition  *apperror.InvalidTransitionError
		noRoute     *apperror.NoRouteError
	)
	switch {
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation
	case errors.As(err, &composition):
		return http.StatusBadRequest, composition
	case errors.As(err, &exclusivity):
		return http.StatusBadRequest, exclusivity
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound
	case errors.As(err, &state):
		return http.StatusUnprocessableEntity, state
	case errors.As(err, &transition):
		return http.StatusUnprocessableEntity, transition
	case errors.As(err, &noRoute):
		return http.StatusUnprocessableEntity, noRoute
	}
	return http.StatusInternalServerError, err
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, typed := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	log.WithError(err).Warn("Request rejected")
	c.JSON(status, gin.H{"error": typed.Error()})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
