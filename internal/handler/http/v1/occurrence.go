package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// @Summary Open an occurrence
// @Description Register a new emergency occurrence in OPEN status. Requires API key.
// @Tags Occurrences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param occurrence body OpenOccurrenceRequest true "Occurrence intake request"
// @Success 201 {object} OccurrenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /occurrences [post]
func (h *Handler) openOccurrence(c *gin.Context) {
	var input OpenOccurrenceRequest
	log := h.logger.WithField("method", "openOccurrence")
	if !h.bind(c, log, &input, false) {
		return
	}

	o, err := h.occurrences.Open(c.Request.Context(), ToOccurrenceModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ToOccurrenceResponse(o))
}

// @Summary List occurrences
// @Description List occurrences, optionally filtered by status. Requires API key.
// @Tags Occurrences
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter" Enums(OPEN, DISPATCHED, IN_SERVICE, CONCLUDED, CANCELLED)
// @Success 200 {array} OccurrenceResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /occurrences [get]
func (h *Handler) listOccurrences(c *gin.Context) {
	log := h.logger.WithField("method", "listOccurrences")

	list, err := h.occurrences.List(c.Request.Context(), models.OccurrenceStatus(c.Query("status")))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToOccurrenceResponses(list))
}

// @Summary Get occurrence by ID
// @Tags Occurrences
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Occurrence ID"
// @Success 200 {object} OccurrenceResponse
// @Failure 400 {object} map[string]string "Invalid occurrence ID"
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Router /occurrences/{id} [get]
func (h *Handler) getOccurrence(c *gin.Context) {
	id, ok := parseID(c, "id", "occurrence")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getOccurrence").WithField("id", id)

	o, err := h.occurrences.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToOccurrenceResponse(o))
}

// @Summary Get occurrence details
// @Description Occurrence with attendance, ambulance, team and status history. Requires API key.
// @Tags Occurrences
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Occurrence ID"
// @Success 200 {object} OccurrenceDetailsResponse
// @Failure 400 {object} map[string]string "Invalid occurrence ID"
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /occurrences/{id}/details [get]
func (h *Handler) getOccurrenceDetails(c *gin.Context) {
	id, ok := parseID(c, "id", "occurrence")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getOccurrenceDetails").WithField("id", id)

	details, err := h.occurrences.Details(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToDetailsResponse(details))
}

// @Summary Confirm arrival
// @Description DISPATCHED -> IN_SERVICE. Records arrival time and SLA outcome. Requires API key.
// @Tags Occurrences
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Occurrence ID"
// @Success 200 {object} OccurrenceDetailsResponse
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 409 {object} map[string]string "Concurrent status change"
// @Failure 422 {object} map[string]string "Invalid transition"
// @Router /occurrences/{id}/confirm-arrival [post]
func (h *Handler) confirmArrival(c *gin.Context) {
	id, ok := parseID(c, "id", "occurrence")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "confirmArrival").WithField("id", id)

	details, err := h.occurrences.ConfirmArrival(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToDetailsResponse(details))
}

// @Summary Conclude occurrence
// @Description IN_SERVICE -> CONCLUDED. The ambulance is released to release_status (AVAILABLE by default). Requires API key.
// @Tags Occurrences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Occurrence ID"
// @Param request body ConcludeRequest false "Release status"
// @Success 200 {object} OccurrenceDetailsResponse
// @Failure 400 {object} map[string]string "Invalid release status"
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 422 {object} map[string]string "Invalid transition"
// @Router /occurrences/{id}/conclude [post]
func (h *Handler) concludeOccurrence(c *gin.Context) {
	id, ok := parseID(c, "id", "occurrence")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "concludeOccurrence").WithField("id", id)

	var input ConcludeRequest
	if !h.bind(c, log, &input, true) {
		return
	}

	details, err := h.occurrences.Conclude(c.Request.Context(), id, models.AmbulanceStatus(input.ReleaseStatus))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToDetailsResponse(details))
}

// @Summary Cancel occurrence
// @Description OPEN/DISPATCHED -> CANCELLED. Justification is mandatory; a dispatched ambulance returns to AVAILABLE. Requires API key.
// @Tags Occurrences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Occurrence ID"
// @Param request body CancelRequest true "Cancellation justification"
// @Success 200 {object} OccurrenceDetailsResponse
// @Failure 400 {object} map[string]string "Missing justification"
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 422 {object} map[string]string "Invalid transition"
// @Router /occurrences/{id}/cancel [post]
func (h *Handler) cancelOccurrence(c *gin.Context) {
	id, ok := parseID(c, "id", "occurrence")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "cancelOccurrence").WithField("id", id)

	var input CancelRequest
	if !h.bind(c, log, &input, false) {
		return
	}

	details, err := h.occurrences.Cancel(c.Request.Context(), id, input.Justification)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToDetailsResponse(details))
}

// @Summary Find dispatch candidates
// @Description Available ambulances of the required type, within SLA and staffed on the current shift, nearest first. Requires API key.
// @Tags Dispatch
// @Produce json
// @Security ApiKeyAuth
// @Param occurrenceId path string true "Occurrence ID"
// @Success 200 {array} CandidateResponse
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 422 {object} map[string]string "Occurrence is not OPEN"
// @Router /dispatch/candidates/{occurrenceId} [get]
func (h *Handler) findCandidates(c *gin.Context) {
	id, ok := parseID(c, "occurrenceId", "occurrence")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "findCandidates").WithField("occurrence_id", id)

	candidates, err := h.dispatch.FindCandidates(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToCandidateResponses(candidates))
}

// @Summary Dispatch ambulance
// @Description Reserve the ambulance, create the attendance and move the occurrence to DISPATCHED. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DispatchRequest true "Dispatch request"
// @Success 200 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid request or ambulance type mismatch"
// @Failure 404 {object} map[string]string "Occurrence or ambulance not found"
// @Failure 409 {object} map[string]string "Ambulance no longer available, refresh candidates"
// @Failure 422 {object} map[string]string "Occurrence not OPEN or ambulance unstaffed"
// @Router /dispatch [post]
func (h *Handler) dispatchAmbulance(c *gin.Context) {
	var input DispatchRequest
	log := h.logger.WithField("method", "dispatchAmbulance")
	if !h.bind(c, log, &input, false) {
		return
	}

	attendance, err := h.dispatch.Dispatch(c.Request.Context(), input.OccurrenceID, input.AmbulanceID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToAttendanceResponse(attendance))
}
