package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/ambulance_dispatch/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// @Summary Dashboard counters
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardStats
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")
	stats, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Occurrences by area
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Period start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Period end, exclusive"
// @Success 200 {array} models.AreaOccurrenceCount
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /reports/occurrences-by-area [get]
func (h *Handler) occurrencesByArea(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "occurrencesByArea")

	rows, err := h.reports.OccurrencesByArea(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Mean distance by ambulance type
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Period start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Period end, exclusive"
// @Success 200 {array} models.TypeDistance
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /reports/distance-by-type [get]
func (h *Handler) distanceByType(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "distanceByType")

	rows, err := h.reports.DistanceByType(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Export attendances
// @Description XLSX workbook with one row per attendance in the period. Requires API key.
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param from query string false "Period start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Period end, exclusive"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /reports/attendances.xlsx [get]
func (h *Handler) exportAttendances(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "exportAttendances")

	rows, err := h.reports.AttendanceRows(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteAttendances(&buf, rows); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "attendances.xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
