package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// @Summary Register an ambulance
// @Description Plate is normalised (ABC1234 or ABC1D23) and must be unique. Requires API key.
// @Tags Fleet
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param ambulance body CreateAmbulanceRequest true "Ambulance"
// @Success 201 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Duplicate plate"
// @Router /ambulances [post]
func (h *Handler) createAmbulance(c *gin.Context) {
	var input CreateAmbulanceRequest
	log := h.logger.WithField("method", "createAmbulance")
	if !h.bind(c, log, &input, false) {
		return
	}

	a, err := h.fleet.CreateAmbulance(c.Request.Context(), ToAmbulanceModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ToAmbulanceResponse(a))
}

// @Summary List ambulances
// @Tags Fleet
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AmbulanceResponse
// @Router /ambulances [get]
func (h *Handler) listAmbulances(c *gin.Context) {
	log := h.logger.WithField("method", "listAmbulances")
	list, err := h.fleet.ListAmbulances(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToAmbulanceResponses(list))
}

// @Summary Get ambulance by ID
// @Tags Fleet
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Ambulance ID"
// @Success 200 {object} AmbulanceResponse
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id} [get]
func (h *Handler) getAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAmbulance").WithField("id", id)

	a, err := h.fleet.GetAmbulance(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToAmbulanceResponse(a))
}

// @Summary Change ambulance status
// @Description Maintenance, deactivation and return to service. BUSY is managed by dispatch only. Requires API key.
// @Tags Fleet
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Ambulance ID"
// @Param request body SetAmbulanceStatusRequest true "New status"
// @Success 200 {object} AmbulanceResponse
// @Failure 409 {object} map[string]string "Concurrent status change"
// @Failure 422 {object} map[string]string "Ambulance is on an attendance"
// @Router /ambulances/{id}/status [put]
func (h *Handler) setAmbulanceStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setAmbulanceStatus").WithField("id", id)

	var input SetAmbulanceStatusRequest
	if !h.bind(c, log, &input, false) {
		return
	}

	a, err := h.fleet.SetStatus(c.Request.Context(), id, models.AmbulanceStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToAmbulanceResponse(a))
}

// @Summary Delete ambulance
// @Description Rejected while the ambulance is BUSY, assigned to a team or referenced by an attendance. Requires API key.
// @Tags Fleet
// @Security ApiKeyAuth
// @Param id path string true "Ambulance ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Failure 422 {object} map[string]string "Ambulance still referenced"
// @Router /ambulances/{id} [delete]
func (h *Handler) deleteAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteAmbulance").WithField("id", id)

	if err := h.fleet.DeleteAmbulance(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register a professional
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param professional body CreateProfessionalRequest true "Professional"
// @Success 201 {object} ProfessionalResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /professionals [post]
func (h *Handler) createProfessional(c *gin.Context) {
	var input CreateProfessionalRequest
	log := h.logger.WithField("method", "createProfessional")
	if !h.bind(c, log, &input, false) {
		return
	}

	p, err := h.roster.CreateProfessional(c.Request.Context(), ToProfessionalModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ToProfessionalResponse(p))
}

// @Summary List professionals
// @Tags Roster
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ProfessionalResponse
// @Router /professionals [get]
func (h *Handler) listProfessionals(c *gin.Context) {
	log := h.logger.WithField("method", "listProfessionals")
	list, err := h.roster.ListProfessionals(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToProfessionalResponses(list))
}

// @Summary Update a professional
// @Description Full replacement. Shift change or deactivation is rejected while the professional is a member of a team. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Professional ID"
// @Param professional body UpdateProfessionalRequest true "Professional"
// @Success 200 {object} ProfessionalResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Professional not found"
// @Failure 422 {object} map[string]string "Member of a team"
// @Router /professionals/{id} [put]
func (h *Handler) updateProfessional(c *gin.Context) {
	id, ok := parseID(c, "id", "professional")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateProfessional").WithField("id", id)

	var input UpdateProfessionalRequest
	if !h.bind(c, log, &input, false) {
		return
	}

	p, err := h.roster.UpdateProfessional(c.Request.Context(), ToProfessionalUpdateModel(id, input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToProfessionalResponse(p))
}

// @Summary Delete professional
// @Description Rejected while the professional is a member of a team. Requires API key.
// @Tags Roster
// @Security ApiKeyAuth
// @Param id path string true "Professional ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Professional not found"
// @Failure 422 {object} map[string]string "Member of a team"
// @Router /professionals/{id} [delete]
func (h *Handler) deleteProfessional(c *gin.Context) {
	id, ok := parseID(c, "id", "professional")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteProfessional").WithField("id", id)

	if err := h.roster.DeleteProfessional(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a team
// @Description Composition and same-shift exclusivity are enforced. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param team body TeamRequest true "Team"
// @Success 201 {object} TeamResponse
// @Failure 400 {object} map[string]string "Composition or exclusivity violation"
// @Router /teams [post]
func (h *Handler) createTeam(c *gin.Context) {
	var input TeamRequest
	log := h.logger.WithField("method", "createTeam")
	if !h.bind(c, log, &input, false) {
		return
	}

	team, err := h.roster.CreateTeam(c.Request.Context(), ToTeamModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ToTeamResponse(team))
}

// @Summary Update a team
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Team ID"
// @Param team body TeamRequest true "Team"
// @Success 200 {object} TeamResponse
// @Failure 400 {object} map[string]string "Composition or exclusivity violation"
// @Failure 404 {object} map[string]string "Team not found"
// @Router /teams/{id} [put]
func (h *Handler) updateTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateTeam").WithField("id", id)

	var input TeamRequest
	if !h.bind(c, log, &input, false) {
		return
	}
	model := ToTeamModel(input)
	model.ID = id

	team, err := h.roster.UpdateTeam(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToTeamResponse(team))
}

// @Summary Delete a team
// @Description Rejected while the team's ambulance is on an attendance. Requires API key.
// @Tags Roster
// @Security ApiKeyAuth
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Team not found"
// @Failure 422 {object} map[string]string "Ambulance is on an attendance"
// @Router /teams/{id} [delete]
func (h *Handler) deleteTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteTeam").WithField("id", id)

	if err := h.roster.DeleteTeam(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get team by ID
// @Tags Roster
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Team ID"
// @Success 200 {object} TeamResponse
// @Failure 404 {object} map[string]string "Team not found"
// @Router /teams/{id} [get]
func (h *Handler) getTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getTeam").WithField("id", id)

	team, err := h.roster.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToTeamResponse(team))
}

// @Summary List teams
// @Tags Roster
// @Produce json
// @Security ApiKeyAuth
// @Param shift query string false "Shift filter" Enums(MORNING, AFTERNOON, NIGHT)
// @Success 200 {array} TeamResponse
// @Failure 400 {object} map[string]string "Unknown shift"
// @Router /teams [get]
func (h *Handler) listTeams(c *gin.Context) {
	log := h.logger.WithField("method", "listTeams")

	var (
		list []*models.Team
		err  error
	)
	if shift := models.Shift(c.Query("shift")); shift != "" {
		if !shift.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown shift"})
			return
		}
		list, err = h.roster.TeamsOnShift(c.Request.Context(), shift)
	} else {
		list, err = h.roster.ListTeams(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToTeamResponses(list))
}

// @Summary List areas
// @Tags Areas
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AreaDTO
// @Router /areas [get]
func (h *Handler) listAreas(c *gin.Context) {
	log := h.logger.WithField("method", "listAreas")
	areas, err := h.areas.ListAreas(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	out := make([]AreaDTO, len(areas))
	for i, a := range areas {
		out[i] = AreaDTO{ID: a.ID, Name: a.Name}
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Add areas and edges
// @Description Upserts areas and undirected weighted edges, then rebuilds the graph. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param topology body TopologyRequest true "Areas and edges"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Negative weight or unknown area"
// @Router /areas/topology [post]
func (h *Handler) saveTopology(c *gin.Context) {
	var input TopologyRequest
	log := h.logger.WithField("method", "saveTopology")
	if !h.bind(c, log, &input, false) {
		return
	}

	areas, edges := ToTopology(input)
	if err := h.areas.SaveTopology(c.Request.Context(), areas, edges); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reload area graph
// @Description Rebuilds the routing graph from storage and swaps it in atomically. Requires API key.
// @Tags Areas
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} GraphResponse
// @Failure 500 {object} map[string]string "Stored topology is invalid"
// @Router /areas/graph/reload [post]
func (h *Handler) reloadGraph(c *gin.Context) {
	log := h.logger.WithField("method", "reloadGraph")
	g, err := h.areas.Reload(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, GraphResponse{Areas: len(g.Areas()), Edges: g.EdgeCount()})
}
