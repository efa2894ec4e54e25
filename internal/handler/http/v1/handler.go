package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/floodguard/sos_dispatch_system/internal/config"
	"github.com/floodguard/sos_dispatch_system/internal/models"
	"github.com/floodguard/sos_dispatch_system/internal/service"
)

type Handler struct {
	sosService service.SosService
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

func NewHandler(sosService service.SosService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sosService: sosService,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// @Summary Create an SOS report
// @Description Intake of a new SOS report. The report starts pending with empty unit sets.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body CreateReportRequest true "Report intake request"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /sos [post]
func (h *Handler) createReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &models.SosReport{
		Location: &models.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		UrgencyScore: req.UrgencyScore,
		FormAnswers:  req.FormAnswers,
	}
	if err := h.sosService.CreateReport(c.Request.Context(), report); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ReportToResponse(report))
}

// @Summary Triage listing of SOS reports
// @Description Ranked listing of reports. sort=urgency orders active reports by urgency score, sort=nearest by distance from the operator location (lat/lng query params, falling back to the configured default).
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param sort query string false "Ranking policy: urgency or nearest" default(urgency)
// @Param lat query number false "Operator latitude"
// @Param lng query number false "Operator longitude"
// @Success 200 {object} TriageResponse
// @Failure 400 {object} map[string]string "Unknown ranking policy"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /sos [get]
func (h *Handler) listTriage(c *gin.Context) {
	policy := service.RankPolicy(c.DefaultQuery("sort", string(service.RankByUrgency)))
	if policy != service.RankByUrgency && policy != service.RankByNearest {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown ranking policy %q", policy)})
		return
	}

	operator := parseOperatorLocation(c)
	list, err := h.sosService.RankReports(c.Request.Context(), policy, operator)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TriageResponse{
		Policy:   string(policy),
		Active:   RankedToResponses(list.Active),
		Resolved: RankedToResponses(list.Resolved),
	})
}

// @Summary Get an SOS report
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /sos/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	report, err := h.sosService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportToResponse(report))
}

// @Summary Dispatch units to an SOS report
// @Description Unions the given rescuer/volunteer ids into the report's assignment sets. Idempotent: already-assigned ids are counted separately, never an error. A successful dispatch marks the report responding.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param units body AssignUnitsRequest true "Unit ids to dispatch"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "No units selected"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report already resolved"
// @Router /sos/{id}/units [post]
func (h *Handler) assignUnits(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	var req AssignUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.sosService.AssignUnits(c.Request.Context(), id, req.RescuerIDs, req.VolunteerIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DispatchResponse{
		Report:          ReportToResponse(result.Report),
		NewlyAssigned:   result.NewlyAssigned,
		AlreadyAssigned: result.AlreadyAssigned,
		Message:         fmt.Sprintf("%d unit(s) dispatched", result.NewlyAssigned),
	})
}

// @Summary Remove a unit from an SOS report
// @Description Removes the unit from the set named by the kind query param. Removing an absent id is a no-op. The report returns to pending only when both sets end up empty.
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param unitId path string true "Unit ID"
// @Param kind query string true "Unit kind: rescuer or volunteer"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid unit kind"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report already resolved"
// @Router /sos/{id}/units/{unitId} [delete]
func (h *Handler) removeUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	kind := service.UnitKind(c.Query("kind"))
	if kind != service.UnitRescuer && kind != service.UnitVolunteer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be rescuer or volunteer"})
		return
	}

	report, err := h.sosService.RemoveUnit(c.Request.Context(), id, c.Param("unitId"), kind)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportToResponse(report))
}

// @Summary Resolve an SOS report
// @Description Marks the report safely concluded. Terminal: the resolved timestamp is set once and the assignment sets are frozen.
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report already resolved"
// @Router /sos/{id}/resolve [post]
func (h *Handler) resolveReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	report, err := h.sosService.Resolve(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportToResponse(report))
}

// @Summary Report history view
// @Description Audit partition of all reports: active, resolved or all. Recomputed per request, never cached.
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param view query string false "Partition: active, resolved or all" default(all)
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Unknown view"
// @Router /sos/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	view := service.HistoryView(c.DefaultQuery("view", string(service.HistoryAll)))
	if view != service.HistoryActive && view != service.HistoryResolved && view != service.HistoryAll {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown history view %q", view)})
		return
	}

	reports, err := h.sosService.History(c.Request.Context(), view)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportsToResponses(reports))
}

// @Summary List dispatchable rescuers
// @Tags Personnel
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RescuerResponse
// @Router /personnel/rescuers [get]
func (h *Handler) listRescuers(c *gin.Context) {
	rescuers, err := h.sosService.ListRescuers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RescuersToResponses(rescuers))
}

// @Summary List dispatchable volunteers
// @Tags Personnel
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} VolunteerResponse
// @Router /personnel/volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	volunteers, err := h.sosService.ListVolunteers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, VolunteersToResponses(volunteers))
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps the service error taxonomy onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, service.ErrNoSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no units selected"})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "operation not allowed in current report state"})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "report store unavailable"})
	default:
		h.logger.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseOperatorLocation reads the optional operator coordinate from the
// query string. Returns nil when either coordinate is missing or malformed,
// which makes the service fall back to the configured default.
func parseOperatorLocation(c *gin.Context) *models.Location {
	latStr, latOK := c.GetQuery("lat")
	lngStr, lngOK := c.GetQuery("lng")
	if !latOK || !lngOK {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}
	return &models.Location{Latitude: lat, Longitude: lng}
}
